package driver

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apexts/internal/token"
)

func TestTokenize(t *testing.T) {
	root := writeTree(t, map[string]string{"Account.cls": accountSrc})

	res, err := Tokenize(filepath.Join(root, "Account.cls"), 0)
	require.NoError(t, err)
	require.NotEmpty(t, res.Tokens)
	assert.Equal(t, token.EOF, res.Tokens[len(res.Tokens)-1].Kind)
	assert.Equal(t, 0, res.Bag.Len())
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "Nope.cls"), 0)
	require.Error(t, err)
}
