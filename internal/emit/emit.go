// Package emit renders exported classes as a TypeScript declaration file.
//
// Layout: one `interface` block per class (remote fields only), followed by
// one `declare module "<namespace>/<Class>.<method>"` block per static remote
// method. Interfaces are not exported so the file stays a global script and
// ambient module declarations remain valid next to them.
package emit

import (
	"fmt"
	"strings"

	"apexts/internal/ast"
	"apexts/internal/diag"
	"apexts/internal/typemap"
)

const (
	DefaultNamespace = "@salesforce/apex"
	GeneratedHeader  = "// Code generated by apexts. DO NOT EDIT."
)

type Options struct {
	Namespace string // пусто → DefaultNamespace
	Header    bool
	Mapper    *typemap.Mapper
}

type Emitter struct {
	opts   Options
	mapper *typemap.Mapper
}

// Stats counts what ended up in the output.
type Stats struct {
	Interfaces          int
	Modules             int
	DuplicateInterfaces int
	DuplicateModules    int
}

func New(opts Options) *Emitter {
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	opts.Namespace = strings.TrimSuffix(opts.Namespace, "/")
	mapper := opts.Mapper
	if mapper == nil {
		mapper = typemap.New(nil)
	}
	return &Emitter{opts: opts, mapper: mapper}
}

// ModulePath returns "<namespace>/<Class>.<method>".
func (e *Emitter) ModulePath(className, method string) string {
	return e.opts.Namespace + "/" + className + "." + method
}

// Emit renders classes in the given order. Duplicates are reported to rep:
// a class whose name was already emitted is dropped (EMT5002), a module path
// already emitted is dropped (EMT5001); the first occurrence always wins.
func (e *Emitter) Emit(classes []*ast.ClassDecl, rep diag.Reporter) (string, Stats) {
	var stats Stats
	blocks := make([]string, 0, len(classes)*2)
	modules := make([]string, 0, len(classes))

	seenClass := make(map[string]*ast.ClassDecl, len(classes))
	seenModule := make(map[string]ast.Member)

	for _, c := range classes {
		if c == nil {
			continue
		}
		if first, ok := seenClass[c.Name]; ok {
			stats.DuplicateInterfaces++
			if rep != nil {
				diag.ReportError(rep, diag.EmitDuplicateInterface, c.NameSpan,
					fmt.Sprintf("duplicate interface '%s'; class skipped", c.Name)).
					WithNote(first.NameSpan, "first declared here").
					Emit()
			}
			continue
		}
		seenClass[c.Name] = c
		blocks = append(blocks, e.Interface(c))
		stats.Interfaces++

		for _, m := range c.RemoteMethods() {
			if !m.IsStatic() {
				continue
			}
			path := e.ModulePath(c.Name, m.Name)
			if first, ok := seenModule[path]; ok {
				stats.DuplicateModules++
				if rep != nil {
					diag.ReportError(rep, diag.EmitDuplicateModule, m.NameSpan,
						fmt.Sprintf("duplicate module %q; method skipped", path)).
						WithNote(first.NameSpan, "first declared here").
						Emit()
				}
				continue
			}
			seenModule[path] = m
			modules = append(modules, e.Module(c.Name, &m))
			stats.Modules++
		}
	}

	blocks = append(blocks, modules...)
	if len(blocks) == 0 {
		return "", stats
	}

	var b strings.Builder
	if e.opts.Header {
		b.WriteString(GeneratedHeader)
		b.WriteString("\n\n")
	}
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteByte('\n')
	return b.String(), stats
}

// Interface renders the interface block of one class.
func (e *Emitter) Interface(c *ast.ClassDecl) string {
	fields := c.RemoteFields()
	if len(fields) == 0 {
		return fmt.Sprintf("interface %s {}", c.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "interface %s {\n", c.Name)
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s: %s;\n", f.Name, e.mapper.Map(f.Type))
	}
	b.WriteString("}")
	return b.String()
}

// Module renders the ambient module of one static remote method.
func (e *Emitter) Module(className string, m *ast.Member) string {
	var b strings.Builder
	fmt.Fprintf(&b, "declare module %q {\n", e.ModulePath(className, m.Name))
	fmt.Fprintf(&b, "  export default function %s(%s): Promise<%s>;\n", functionName(m.Name), e.params(m.Params), e.mapper.Map(m.Type))
	b.WriteString("}")
	return b.String()
}

func (e *Emitter) params(params []ast.Param) string {
	if len(params) == 0 {
		return ""
	}
	props := make([]string, len(params))
	for i, p := range params {
		props[i] = p.Name + ": " + e.mapper.Map(p.Type)
	}
	return "params: { " + strings.Join(props, ", ") + " }"
}

// jsReserved: имена, допустимые в Apex, но не годные как имя функции в TS.
var jsReserved = map[string]struct{}{
	"await": {}, "break": {}, "case": {}, "catch": {}, "const": {}, "continue": {},
	"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {}, "enum": {},
	"export": {}, "extends": {}, "false": {}, "finally": {}, "for": {}, "function": {},
	"if": {}, "implements": {}, "import": {}, "in": {}, "instanceof": {}, "interface": {},
	"let": {}, "new": {}, "null": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "return": {}, "static": {}, "super": {}, "switch": {}, "this": {},
	"throw": {}, "true": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "yield": {},
}

// functionName returns the local name of the default export. Reserved words
// become an anonymous default export; the import name is chosen by the caller anyway.
func functionName(name string) string {
	if _, ok := jsReserved[name]; ok {
		return ""
	}
	return name
}
