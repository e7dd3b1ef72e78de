package diagfmt

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"apexts/internal/diag"
	"apexts/internal/source"
)

type palette struct {
	err, warn, info, note, code, path, caret *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:   mk(color.FgRed, color.Bold),
		warn:  mk(color.FgYellow, color.Bold),
		info:  mk(color.FgCyan, color.Bold),
		note:  mk(color.FgBlue),
		code:  mk(color.Faint),
		path:  mk(color.Bold),
		caret: mk(color.FgGreen, color.Bold),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		positional := d.Code != diag.ObsTimings
		header := fmt.Sprintf("%s %s: %s",
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message)

		if hasLocation(fs, d.Primary, positional) {
			f := fs.Get(d.Primary.File)
			start, _ := fs.Resolve(d.Primary)
			fmt.Fprintf(w, "%s: %s\n", pal.path.Sprintf("%s:%d:%d", displayPath(fs, f, opts.PathMode), start.Line, start.Col), header)
			writeSnippet(w, fs, d.Primary, pal)
		} else {
			fmt.Fprintln(w, header)
		}

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if hasLocation(fs, n.Span, positional) {
				f := fs.Get(n.Span.File)
				start, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"), displayPath(fs, f, opts.PathMode), start.Line, start.Col, n.Msg)
				writeSnippet(w, fs, n.Span, pal)
				continue
			}
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
		}
	}
}

// writeSnippet печатает первую строку span и подчёркивание под ней.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, pal palette) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	gutter := fmt.Sprintf("%4d | ", start.Line)
	fmt.Fprintf(w, "%s%s\n", gutter, expandTabs(line))

	prefix := runeColumns(line, start.Col-1)
	width := 1
	switch {
	case span.Empty():
		// пустой span (EOF, позиция вставки) подчёркиваем одним символом
	case end.Line == start.Line:
		width = runeColumns(line, end.Col-1) - prefix
	default:
		width = utf8.RuneCountInString(expandTabs(line)) - prefix
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", len(gutter)), strings.Repeat(" ", prefix), pal.caret.Sprint(marker))
}

// runeColumns: ширина первых n байт строки в колонках (tab = 4).
func runeColumns(line string, n uint32) int {
	if int(n) >= len(line) {
		return utf8.RuneCountInString(expandTabs(line))
	}
	return utf8.RuneCountInString(expandTabs(line[:n]))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
