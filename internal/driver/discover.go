package driver

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"apexts/internal/source"
)

// Discover returns every file under root whose extension matches ext
// (case-insensitive), sorted lexicographically. A root that is itself a
// matching file yields just that file.
func Discover(root, ext string) ([]string, error) {
	ext = normalizeExt(ext)

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", root)
	}
	if !info.IsDir() {
		if hasExt(root, ext) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasExt(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", root)
	}

	sort.Strings(files)
	return files, nil
}

func hasExt(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// normalizeExt: "" → ".cls", "cls" → ".cls".
func normalizeExt(ext string) string {
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

// DisplayPath is the name a discovered file is reported under: relative to
// root with forward slashes, or the file name when root is the file itself.
func DisplayPath(root, path string) string {
	base := root
	if !isDir(root) {
		base = filepath.Dir(root)
	}
	rel, err := source.RelativePath(path, base)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return rel
}
