package diagfmt

import (
	"path/filepath"

	"apexts/internal/source"
)

// hasLocation is false for diagnostics that are not tied to a file,
// e.g. OBS6001 timings, and for spans outside fs.
func hasLocation(fs *source.FileSet, span source.Span, positional bool) bool {
	return positional && fs != nil && int(span.File) < fs.Len()
}

func displayPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.ToSlash(filepath.Join(fs.BaseDir(), f.Path))
	case PathModeBasename:
		return filepath.Base(f.Path)
	}
	return f.RelPath
}
