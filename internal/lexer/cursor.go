package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"apexts/internal/source"
)

// Cursor: байтовая позиция внутри одного файла.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32 // exclusive; len(File.Content)
}

func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: limit}
}

func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// Peek returns the current byte or 0 at EOF.
func (c *Cursor) Peek() byte {
	b, _ := c.PeekAt(0)
	return b
}

// PeekAt смотрит на n байт вперёд, не двигая курсор.
func (c *Cursor) PeekAt(n uint32) (byte, bool) {
	i := c.Off + n
	if i < c.Off || i >= c.Limit {
		return 0, false
	}
	return c.File.Content[i], true
}

// HasPrefix reports whether the remaining input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	for i := range len(s) {
		b, ok := c.PeekAt(uint32(i)) //nolint:gosec // i < len(s), строки-префиксы короткие
		if !ok || b != s[i] {
			return false
		}
	}
	return true
}

// Bump consumes one byte and returns it; at EOF it returns 0.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// BumpN consumes up to n bytes.
func (c *Cursor) BumpN(n uint32) {
	if c.Limit-c.Off < n {
		c.Off = c.Limit
		return
	}
	c.Off += n
}

// Mark: сохранённая позиция для SpanFrom/Reset.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

func (c *Cursor) SkipToEOF() { c.Off = c.Limit }
