package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"apexts/internal/ast"
	"apexts/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed class:
// 1) class.Span is non-empty, in the right file and within content bounds
// 2) class.Body lies inside class.Span and the name lies before the body
// 3) every member span is non-empty, inside class.Body and starts no earlier than the previous one
// 4) member name spans and parameter spans lie inside their member span
func CheckSpanInvariants(c *ast.ClassDecl, sf *source.File) error {
	if c == nil || sf == nil {
		return fmt.Errorf("nil class or file")
	}

	if c.Span.End <= c.Span.Start {
		return fmt.Errorf("class span is empty: %v", c.Span)
	}
	if c.Span.File != sf.ID {
		return fmt.Errorf("class span points to different file id: got=%d want=%d", c.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if c.Span.End > lenContent {
		return fmt.Errorf("class span end beyond content: %d > %d", c.Span.End, lenContent)
	}

	if !c.Span.Contains(c.Body) {
		return fmt.Errorf("body span %v is outside class span %v", c.Body, c.Span)
	}
	if c.NameSpan.End > c.Body.Start {
		return fmt.Errorf("class name %v is not before body %v", c.NameSpan, c.Body)
	}

	var prev uint32
	for i := range c.Members {
		m := &c.Members[i]
		sp := m.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("member %q: empty span %v", m.Name, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("member %q: span file mismatch: got=%d want=%d", m.Name, sp.File, sf.ID)
		}
		if !c.Body.Contains(sp) {
			return fmt.Errorf("member %q: span %v is outside body %v", m.Name, sp, c.Body)
		}
		if sp.Start < prev {
			return fmt.Errorf("member %q: span %v starts before previous member (%d)", m.Name, sp, prev)
		}
		prev = sp.Start
		if !sp.Contains(m.NameSpan) {
			return fmt.Errorf("member %q: name span %v outside member span %v", m.Name, m.NameSpan, sp)
		}
		for _, prm := range m.Params {
			if !sp.Contains(prm.Span) {
				return fmt.Errorf("member %q: param %q span %v outside member span", m.Name, prm.Name, prm.Span)
			}
		}
	}
	return nil
}
