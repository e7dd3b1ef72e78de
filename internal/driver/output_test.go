package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutputCreatesParentsAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types", "generated", "types.d.ts")

	require.NoError(t, WriteOutput(path, "interface A {}\n"))
	require.NoError(t, WriteOutput(path, "interface B {}\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "interface B {}\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteOutputFailsOnDirectory(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, WriteOutput(dir, "x"))
}
