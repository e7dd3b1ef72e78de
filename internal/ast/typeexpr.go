package ast

import (
	"strings"

	"apexts/internal/source"
)

type TypeKind uint8

const (
	// TypeNamed: скаляр или пользовательский тип; Args заполнены для Iterable<T> и т.п.
	TypeNamed TypeKind = iota
	TypeList
	TypeSet
	TypeMap
	// TypeArray: `T[]`, Args[0] это T.
	TypeArray
)

func (k TypeKind) String() string {
	switch k {
	case TypeNamed:
		return "named"
	case TypeList:
		return "list"
	case TypeSet:
		return "set"
	case TypeMap:
		return "map"
	case TypeArray:
		return "array"
	}
	return "unknown"
}

// TypeExpr is a type as written in source.
//
// Invariants: TypeList, TypeSet and TypeArray have exactly one argument,
// TypeMap has exactly two. Name keeps the source spelling (possibly
// qualified, "Schema.SObjectType"); it is empty for TypeArray.
type TypeExpr struct {
	Kind TypeKind
	Name string
	Args []TypeExpr
	Span source.Span
}

// Elem returns the element type of a list, set or array.
func (t TypeExpr) Elem() TypeExpr {
	if len(t.Args) == 0 {
		return TypeExpr{}
	}
	return t.Args[0]
}

// String renders the type back in Apex syntax.
func (t TypeExpr) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t TypeExpr) write(b *strings.Builder) {
	if t.Kind == TypeArray {
		t.Elem().write(b)
		b.WriteString("[]")
		return
	}
	b.WriteString(t.Name)
	if len(t.Args) == 0 {
		return
	}
	b.WriteByte('<')
	for i, a := range t.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.write(b)
	}
	b.WriteByte('>')
}
