package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apexts/internal/diag"
	"apexts/internal/parser"
	"apexts/internal/project"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	require.NoError(t, err)

	key := project.OptionsDigest("k")
	var out DiskPayload
	hit, err := cache.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Path: "A.cls", ClassName: "A"}))
	hit, err = cache.Get(key, &out)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "A", out.ClassName)

	require.NoError(t, cache.DropAll())
	hit, err = cache.Get(key, &DiskPayload{})
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	hit, err := cache.Get(project.Digest{}, &DiskPayload{})
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.Put(project.Digest{}, &DiskPayload{}))
	assert.NoError(t, cache.DropAll())
}

func TestConvertDirServesFromCache(t *testing.T) {
	root := mixedTree(t)
	cache, err := OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	opts := Options{Cache: cache}

	first, err := ConvertDir(context.Background(), root, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Cached)

	second, err := ConvertDir(context.Background(), root, opts)
	require.NoError(t, err)
	assert.Equal(t, 4, second.Cached)

	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t,
		diag.FormatShortDiagnostics(first.Bag.Items(), first.FileSet, true),
		diag.FormatShortDiagnostics(second.Bag.Items(), second.FileSet, true))

	broken := second.Files[1]
	assert.Equal(t, parser.StatusFailed, broken.Status)
	assert.True(t, errors.Is(broken.Err, ErrStructural))
	assert.Equal(t, "Account.cls", second.Classes[0].Path)
}

func TestCacheKeyTracksOptions(t *testing.T) {
	root := writeTree(t, map[string]string{"Account.cls": accountSrc})
	cache, err := OpenDiskCache(t.TempDir())
	require.NoError(t, err)

	_, err = ConvertDir(context.Background(), root, Options{Cache: cache})
	require.NoError(t, err)

	other, err := ConvertDir(context.Background(), root, Options{Cache: cache, ExportMarker: "@other"})
	require.NoError(t, err)
	assert.Equal(t, 0, other.Cached)
	assert.Equal(t, 0, other.Succeeded)
	assert.Equal(t, 1, other.Skipped)
}

func TestCacheContentChangeMisses(t *testing.T) {
	root := writeTree(t, map[string]string{"Account.cls": accountSrc})
	cache, err := OpenDiskCache(t.TempDir())
	require.NoError(t, err)

	_, err = ConvertDir(context.Background(), root, Options{Cache: cache})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "Account.cls"), []byte(contactSrc), 0o644))
	res, err := ConvertDir(context.Background(), root, Options{Cache: cache})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cached)
	assert.Equal(t, "Contact", res.Classes[0].Name)
}
