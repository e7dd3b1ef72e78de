// Package typemap converts Apex type expressions into TypeScript type syntax.
package typemap

import (
	"fmt"
	"sort"
	"strings"

	"apexts/internal/ast"
	"apexts/internal/token"
)

// TypeMapping defines how Apex scalar types map to TypeScript types.
// Keys are case-folded Apex names.
var TypeMapping = map[string]string{
	"string":   "string",
	"id":       "string",
	"integer":  "number",
	"long":     "number",
	"double":   "number",
	"decimal":  "number",
	"boolean":  "boolean",
	"date":     "string",
	"datetime": "string",
	"time":     "string",
	"object":   "any",
	"blob":     "string",
	"void":     "void",
}

const systemPrefix = "system."

// Mapper is a pure TypeExpr → TypeScript converter. The zero value uses
// only the built-in table.
type Mapper struct {
	overrides map[string]string
}

// New creates a Mapper; overrides win over TypeMapping (keys are case-insensitive).
func New(overrides map[string]string) *Mapper {
	m := &Mapper{overrides: make(map[string]string, len(overrides))}
	for k, v := range overrides {
		m.overrides[token.Fold(k)] = v
	}
	return m
}

// Overrides returns the override table sorted by key; used for the options digest.
func (m *Mapper) Overrides() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.overrides))
	for k, v := range m.overrides {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Map never fails: unknown identifiers pass through unchanged.
func (m *Mapper) Map(t ast.TypeExpr) string {
	switch t.Kind {
	case ast.TypeList, ast.TypeSet, ast.TypeArray:
		return arrayOf(m.Map(t.Elem()))
	case ast.TypeMap:
		if len(t.Args) != 2 {
			return "Record<string, any>"
		}
		return fmt.Sprintf("Record<%s, %s>", m.Map(t.Args[0]), m.Map(t.Args[1]))
	}

	if len(t.Args) == 0 {
		if ts, ok := m.scalar(t.Name); ok {
			return ts
		}
		return t.Name
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = m.Map(a)
	}
	return fmt.Sprintf("%s<%s>", t.Name, strings.Join(args, ", "))
}

// scalar ищет имя в переопределениях, затем в TypeMapping. Встроенные
// типы можно писать с префиксом пространства имён: System.String == String.
func (m *Mapper) scalar(name string) (string, bool) {
	key := token.Fold(name)
	bare := strings.TrimPrefix(key, systemPrefix)
	if m != nil {
		if ts, ok := m.overrides[key]; ok {
			return ts, true
		}
		if ts, ok := m.overrides[bare]; ok {
			return ts, true
		}
	}
	ts, ok := TypeMapping[bare]
	return ts, ok
}

// arrayOf добавляет "[]", беря в скобки объединения из переопределений ("string | null").
func arrayOf(elem string) string {
	if strings.ContainsAny(elem, "|&") || strings.Contains(elem, "=>") {
		return "(" + elem + ")[]"
	}
	return elem + "[]"
}
