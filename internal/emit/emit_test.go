package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apexts/internal/ast"
	"apexts/internal/diag"
	"apexts/internal/source"
	"apexts/internal/typemap"
)

func named(name string) ast.TypeExpr {
	return ast.TypeExpr{Kind: ast.TypeNamed, Name: name}
}

func field(name string, typ ast.TypeExpr, remote bool) ast.Member {
	return ast.Member{Kind: ast.MemberField, Name: name, Type: typ, Remote: remote}
}

func method(name string, ret ast.TypeExpr, static bool, params ...ast.Param) ast.Member {
	m := ast.Member{Kind: ast.MemberMethod, Name: name, Type: ret, Remote: true, Params: params}
	if static {
		m.Modifiers = ast.ModStatic | ast.ModPublic
	}
	return m
}

func accountClass() *ast.ClassDecl {
	return &ast.ClassDecl{
		Name:     "Account",
		Exported: true,
		Members: []ast.Member{
			field("name", named("String"), true),
			field("age", named("Integer"), true),
			field("secret", named("String"), false),
			method("getAccountById", named("Account"), true, ast.Param{Name: "accountId", Type: named("Id")}),
			method("refresh", named("void"), false),
		},
	}
}

func TestAccountOutput(t *testing.T) {
	out, stats := New(Options{}).Emit([]*ast.ClassDecl{accountClass()}, nil)

	want := `interface Account {
  name: string;
  age: number;
}

declare module "@salesforce/apex/Account.getAccountById" {
  export default function getAccountById(params: { accountId: string }): Promise<Account>;
}
`
	assert.Equal(t, want, out)
	assert.Equal(t, Stats{Interfaces: 1, Modules: 1}, stats)
}

func TestInterfacesBeforeModules(t *testing.T) {
	a := &ast.ClassDecl{Name: "A", Members: []ast.Member{method("list", ast.TypeExpr{Kind: ast.TypeList, Args: []ast.TypeExpr{named("A")}}, true)}}
	b := &ast.ClassDecl{Name: "B", Members: []ast.Member{
		field("when", named("Datetime"), true),
		method("save", named("Boolean"), true,
			ast.Param{Name: "data", Type: ast.TypeExpr{Kind: ast.TypeMap, Args: []ast.TypeExpr{named("String"), named("Object")}}},
			ast.Param{Name: "dryRun", Type: named("Boolean")}),
	}}

	out, _ := New(Options{Namespace: "@salesforce/apex/"}).Emit([]*ast.ClassDecl{a, b}, nil)
	want := `interface A {}

interface B {
  when: string;
}

declare module "@salesforce/apex/A.list" {
  export default function list(): Promise<A[]>;
}

declare module "@salesforce/apex/B.save" {
  export default function save(params: { data: Record<string, any>, dryRun: boolean }): Promise<boolean>;
}
`
	assert.Equal(t, want, out)
}

func TestHeaderAndNamespace(t *testing.T) {
	e := New(Options{Header: true, Namespace: "c"})
	out, _ := e.Emit([]*ast.ClassDecl{{Name: "X"}}, nil)
	assert.Equal(t, GeneratedHeader+"\n\ninterface X {}\n", out)
	assert.Equal(t, "c/X.run", e.ModulePath("X", "run"))
}

func TestEmptyInput(t *testing.T) {
	out, stats := New(Options{}).Emit(nil, nil)
	assert.Empty(t, out)
	assert.Zero(t, stats.Interfaces)
}

func TestDuplicates(t *testing.T) {
	first := accountClass()
	first.NameSpan = source.Span{File: 0, Start: 13, End: 20}
	dup := accountClass()
	dup.NameSpan = source.Span{File: 1, Start: 13, End: 20}

	overloaded := &ast.ClassDecl{Name: "Util", Members: []ast.Member{
		method("find", named("String"), true, ast.Param{Name: "id", Type: named("Id")}),
		method("find", named("String"), true, ast.Param{Name: "name", Type: named("String")}),
	}}

	bag := diag.NewBag(10)
	out, stats := New(Options{}).Emit([]*ast.ClassDecl{first, dup, overloaded}, diag.BagReporter{Bag: bag})

	assert.Equal(t, Stats{Interfaces: 2, Modules: 2, DuplicateInterfaces: 1, DuplicateModules: 1}, stats)
	assert.Contains(t, out, "find(params: { id: string })")
	assert.NotContains(t, out, "find(params: { name: string })")

	require.Equal(t, 2, bag.Len())
	assert.Equal(t, diag.EmitDuplicateInterface, bag.Items()[0].Code)
	assert.Equal(t, diag.EmitDuplicateModule, bag.Items()[1].Code)
	require.Len(t, bag.Items()[0].Notes, 1)
	assert.Equal(t, first.NameSpan, bag.Items()[0].Notes[0].Span)
}

func TestMapperOverrides(t *testing.T) {
	e := New(Options{Mapper: typemap.New(map[string]string{"Date": "Date"})})
	c := &ast.ClassDecl{Name: "Event", Members: []ast.Member{field("on", named("Date"), true)}}
	assert.Equal(t, "interface Event {\n  on: Date;\n}", e.Interface(c))
}

func TestDeterministic(t *testing.T) {
	e := New(Options{})
	classes := []*ast.ClassDecl{accountClass()}
	a, _ := e.Emit(classes, nil)
	b, _ := e.Emit(classes, nil)
	assert.Equal(t, a, b)
}
