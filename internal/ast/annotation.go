package ast

import (
	"apexts/internal/source"
	"apexts/internal/token"
)

// AnnotationParam is one `key=value` pair; a bare key has an empty Value.
type AnnotationParam struct {
	Key   string
	Value string
}

// Annotation описывает `@Name` или `@Name(key=value ...)`.
type Annotation struct {
	Name   string
	Params []AnnotationParam
	Span   source.Span
}

// Is reports whether the annotation has the given name, ignoring case.
func (a Annotation) Is(name string) bool {
	return token.EqualFold(a.Name, name)
}

// Param returns the value of the named parameter (case-insensitive key).
func (a Annotation) Param(key string) (string, bool) {
	for _, p := range a.Params {
		if token.EqualFold(p.Key, key) {
			return p.Value, true
		}
	}
	return "", false
}

// FindAnnotation returns the first annotation with the given name.
func FindAnnotation(list []Annotation, name string) (Annotation, bool) {
	for _, a := range list {
		if a.Is(name) {
			return a, true
		}
	}
	return Annotation{}, false
}
