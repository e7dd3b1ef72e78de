package driver

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverSortedAndFiltered(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b/Zeta.cls":           "",
		"a/Alpha.cls":          "",
		"a/Alpha.cls-meta.xml": "",
		"Upper.CLS":            "",
		"readme.md":            "",
	})

	files, err := Discover(root, ".cls")
	require.NoError(t, err)

	rel := make([]string, len(files))
	for i, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel[i] = filepath.ToSlash(r)
	}
	assert.Equal(t, []string{"Upper.CLS", "a/Alpha.cls", "b/Zeta.cls"}, rel)
}

func TestDiscoverSingleFile(t *testing.T) {
	root := writeTree(t, map[string]string{"Account.cls": accountSrc})
	path := filepath.Join(root, "Account.cls")

	files, err := Discover(path, "cls")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), ".cls")
	require.Error(t, err)
}
