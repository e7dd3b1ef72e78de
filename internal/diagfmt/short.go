package diagfmt

import (
	"fmt"
	"io"

	"apexts/internal/diag"
	"apexts/internal/source"
)

// Short пишет стабильный однострочный формат (см. diag.FormatShortDiagnostics).
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	if bag == nil {
		return nil
	}
	text := diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes)
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
