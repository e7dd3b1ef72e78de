package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"apexts/internal/diag"
	"apexts/internal/source"
)

const src = "public class Account {\n    public String name;\n}\n"

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSetWithBase("/work")
	id := fs.AddVirtual("classes/Account.cls", []byte(src))

	bag := diag.NewBag(10)
	// "name" во второй строке: 23 (начало строки) + 18
	nameSpan := source.Span{File: id, Start: 41, End: 45}
	bag.Add(diag.NewWarning(diag.MemMissingRemote, nameSpan,
		"Skipping field 'name' in class 'Account' (missing @AuraEnabled)").
		WithNote(source.Span{File: id, Start: 13, End: 20}, "class declared here"))
	return bag, fs
}

func TestPrettyPlain(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})

	want := strings.Join([]string{
		"classes/Account.cls:2:19: WARNING MEM3001: Skipping field 'name' in class 'Account' (missing @AuraEnabled)",
		"   2 |     public String name;",
		"                         ^~~~",
		"  note: classes/Account.cls:1:14: class declared here",
		"   1 | public class Account {",
		"                    ^~~~~~~",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyPathModes(t *testing.T) {
	bag, fs := sampleBag(t)
	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeRelative, "classes/Account.cls:2:19"},
		{PathModeBasename, "Account.cls:2:19"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Errorf("mode %d: got %q", tt.mode, buf.String())
		}
		if strings.Contains(buf.String(), "note:") {
			t.Errorf("notes must be hidden without ShowNotes")
		}
	}
}

func TestPrettyColorWrapsSeverity(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestPrettyTimingsWithoutLocation(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("A.cls", []byte(src))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, "timings (pipeline): total 1.00 ms"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if got := buf.String(); got != "INFO OBS6001: timings (pipeline): total 1.00 ms\n" {
		t.Fatalf("got %q", got)
	}
}

func TestParsePathMode(t *testing.T) {
	if m, ok := ParsePathMode("basename"); !ok || m != PathModeBasename {
		t.Fatalf("basename -> %v %v", m, ok)
	}
	if _, ok := ParsePathMode("weird"); ok {
		t.Fatal("unknown mode accepted")
	}
}

func TestPrettyEmptySpanCaret(t *testing.T) {
	fs := source.NewFileSetWithBase("/work")
	id := fs.AddVirtual("classes/Account.cls", []byte(src))
	bag := diag.NewBag(1)
	// позиция сразу после "Account" в первой строке
	bag.Add(diag.NewError(diag.SynUnclosedBrace, source.Span{File: id, Start: 20, End: 20}, "expected '{'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := strings.Join([]string{
		"classes/Account.cls:1:21: ERROR SYN2007: expected '{'",
		"   1 | public class Account {",
		"                           ^",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}
