package parser

import (
	"testing"

	"apexts/internal/diag"
	"apexts/internal/source"
)

func parseSource(t *testing.T, src string) (Result, *diag.Bag, *source.File) {
	t.Helper()
	return parseWith(t, src, Options{})
}

func parseWith(t *testing.T, src string, opts Options) (Result, *diag.Bag, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("classes/Account.cls", []byte(src))
	bag := diag.NewBag(100)
	opts.Reporter = diag.BagReporter{Bag: bag}
	return ParseFile(fs.Get(id), opts), bag, fs.Get(id)
}

func memberNames(res Result) []string {
	if res.Class == nil {
		return nil
	}
	out := make([]string, 0, len(res.Class.Members))
	for _, m := range res.Class.Members {
		out = append(out, m.Name)
	}
	return out
}

func codesOf(bag *diag.Bag) []diag.Code {
	out := make([]diag.Code, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
