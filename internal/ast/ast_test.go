package ast

import (
	"testing"

	"apexts/internal/source"
)

func TestTypeExprString(t *testing.T) {
	id := TypeExpr{Kind: TypeNamed, Name: "Id"}
	listOfID := TypeExpr{Kind: TypeList, Name: "List", Args: []TypeExpr{id}}
	m := TypeExpr{Kind: TypeMap, Name: "Map", Args: []TypeExpr{{Kind: TypeNamed, Name: "String"}, listOfID}}
	arr := TypeExpr{Kind: TypeArray, Args: []TypeExpr{m}}

	if got := arr.String(); got != "Map<String, List<Id>>[]" {
		t.Fatalf("String() = %q", got)
	}
	if arr.Elem().Kind != TypeMap {
		t.Fatalf("Elem kind = %v", arr.Elem().Kind)
	}
}

func TestModifiersString(t *testing.T) {
	m := ModStatic | ModPublic | ModWithSharing
	if got := m.String(); got != "public static with sharing" {
		t.Fatalf("String() = %q", got)
	}
	if !m.Has(ModStatic) || m.Has(ModFinal) {
		t.Fatal("Has mismatch")
	}
}

func TestAnnotationLookup(t *testing.T) {
	list := []Annotation{
		{Name: "IsTest"},
		{Name: "auraenabled", Params: []AnnotationParam{{Key: "Cacheable", Value: "true"}}},
	}
	a, ok := FindAnnotation(list, "AuraEnabled")
	if !ok {
		t.Fatal("annotation not found")
	}
	if v, ok := a.Param("cacheable"); !ok || v != "true" {
		t.Fatalf("Param = %q, %v", v, ok)
	}
}

func TestRemoteFilteringAndRetarget(t *testing.T) {
	c := &ClassDecl{
		Name: "Account",
		Members: []Member{
			{Kind: MemberField, Name: "name", Remote: true, Span: source.Span{File: 3}},
			{Kind: MemberField, Name: "secret"},
			{Kind: MemberMethod, Name: "get", Remote: true, Modifiers: ModStatic,
				Params: []Param{{Name: "id", Type: TypeExpr{Args: []TypeExpr{{}}}}}},
		},
	}
	if f := c.RemoteFields(); len(f) != 1 || f[0].Name != "name" {
		t.Fatalf("RemoteFields = %v", f)
	}
	ms := c.RemoteMethods()
	if len(ms) != 1 || !ms[0].IsStatic() {
		t.Fatalf("RemoteMethods = %v", ms)
	}

	c.Retarget(7)
	if c.Members[0].Span.File != 7 || c.Members[2].Params[0].Type.Args[0].Span.File != 7 {
		t.Fatal("spans not retargeted")
	}
}
