package ast

import "apexts/internal/source"

// ClassDecl is the single top-level class of a file.
type ClassDecl struct {
	Name        string
	File        source.FileID
	Path        string
	Exported    bool
	Doc         string
	Modifiers   Modifiers
	Annotations []Annotation
	Extends     string
	Members     []Member
	// Span covers the header from the first annotation/modifier to the closing brace.
	Span     source.Span
	NameSpan source.Span
	Body     source.Span
}

// RemoteFields returns remote-callable fields in source order.
func (c *ClassDecl) RemoteFields() []Member {
	return c.filter(func(m *Member) bool { return m.Kind == MemberField && m.Remote })
}

// RemoteMethods returns remote-callable methods in source order, static or not.
func (c *ClassDecl) RemoteMethods() []Member {
	return c.filter(func(m *Member) bool { return m.Kind == MemberMethod && m.Remote })
}

func (c *ClassDecl) filter(keep func(*Member) bool) []Member {
	out := make([]Member, 0, len(c.Members))
	for i := range c.Members {
		if keep(&c.Members[i]) {
			out = append(out, c.Members[i])
		}
	}
	return out
}

// Retarget rewrites every span to the given file; used when a class
// restored from cache is attached to a freshly built FileSet.
func (c *ClassDecl) Retarget(id source.FileID) {
	c.File = id
	c.Span = c.Span.WithFile(id)
	c.NameSpan = c.NameSpan.WithFile(id)
	c.Body = c.Body.WithFile(id)
	retargetAnnotations(c.Annotations, id)
	for i := range c.Members {
		m := &c.Members[i]
		m.Span = m.Span.WithFile(id)
		m.NameSpan = m.NameSpan.WithFile(id)
		retargetType(&m.Type, id)
		retargetAnnotations(m.Annotations, id)
		for j := range m.Params {
			m.Params[j].Span = m.Params[j].Span.WithFile(id)
			retargetType(&m.Params[j].Type, id)
		}
	}
}

func retargetAnnotations(list []Annotation, id source.FileID) {
	for i := range list {
		list[i].Span = list[i].Span.WithFile(id)
	}
}

func retargetType(t *TypeExpr, id source.FileID) {
	t.Span = t.Span.WithFile(id)
	for i := range t.Args {
		retargetType(&t.Args[i], id)
	}
}
