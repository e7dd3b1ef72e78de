package ast

import "apexts/internal/source"

type MemberKind uint8

const (
	MemberField MemberKind = iota
	MemberMethod
)

func (k MemberKind) String() string {
	if k == MemberMethod {
		return "method"
	}
	return "field"
}

// Param: параметр метода, порядок как в исходнике.
type Param struct {
	Name  string
	Type  TypeExpr
	Final bool
	Span  source.Span
}

// Member is a field (including properties) or a method of a class body.
// Type is the field type or the method return type.
type Member struct {
	Kind        MemberKind
	Name        string
	Type        TypeExpr
	Params      []Param
	Modifiers   Modifiers
	Annotations []Annotation
	// Remote: член помечен удалённой аннотацией (@AuraEnabled по умолчанию).
	Remote   bool
	Property bool
	Span     source.Span
	NameSpan source.Span
}

func (m *Member) IsStatic() bool { return m.Modifiers.Has(ModStatic) }
