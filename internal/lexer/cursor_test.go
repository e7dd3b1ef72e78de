package lexer

import (
	"testing"

	"apexts/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("Test.cls", []byte(content))
	return fs.Get(id)
}

// "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for i, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF at %d", i)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("byte %d: got %q, want %q", i, got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF")
	}
	if cursor.Bump() != 0 || cursor.Peek() != 0 {
		t.Fatal("reads past EOF must return 0")
	}
}

func TestMarkResetAndSpan(t *testing.T) {
	cursor := NewCursor(createFile("hello"))
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("span = %v, want 0..2", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Fatalf("reset failed, off=%d", cursor.Off)
	}
	cursor.BumpN(10)
	if !cursor.EOF() || cursor.Off != 5 {
		t.Fatalf("BumpN must stop at limit, off=%d", cursor.Off)
	}
}

func TestPeekLookahead(t *testing.T) {
	cursor := NewCursor(createFile("/**x"))
	if b, ok := cursor.PeekAt(3); !ok || b != 'x' {
		t.Fatalf("PeekAt(3) = %q %v", b, ok)
	}
	if _, ok := cursor.PeekAt(4); ok {
		t.Fatal("PeekAt past limit must fail")
	}
	if !cursor.HasPrefix("/**") || cursor.HasPrefix("/**/") || cursor.HasPrefix("/**xy") {
		t.Fatal("HasPrefix mismatch")
	}
	if cursor.Off != 0 {
		t.Fatal("lookahead must not move the cursor")
	}
}
