package driver

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// WriteOutput writes text to path, creating parent directories. The file is
// replaced atomically so a reader never sees a partial declaration file.
func WriteOutput(path, text string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory: %s", dir)
	}
	f, err := os.CreateTemp(dir, ".apexts-*")
	if err != nil {
		return errors.Wrapf(err, "failed to write output file: %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()
	if _, err = f.WriteString(text); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to write output file: %s", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "failed to write output file: %s", path)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write output file: %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "failed to write output file: %s", path)
	}
	return nil
}
