package parser

import (
	"fmt"
	"strings"

	"apexts/internal/ast"
	"apexts/internal/token"
)

// parseType: QualifiedName [ '<' Type {',' Type} '>' ] { '[' ']' }
// '>' всегда отдельный токен, поэтому `List<List<Id>>` закрывается двумя Gt.
func (p *Parser) parseType() (ast.TypeExpr, bool) {
	start := p.pos
	if !p.at(token.Ident) {
		return ast.TypeExpr{}, false
	}
	name := p.parseQualifiedName()
	t := ast.TypeExpr{Kind: ast.TypeNamed, Name: name}

	if p.at(token.Lt) {
		p.advance()
		for {
			arg, ok := p.parseType()
			if !ok {
				return ast.TypeExpr{}, false
			}
			t.Args = append(t.Args, arg)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			if p.at(token.Gt) {
				p.advance()
				break
			}
			return ast.TypeExpr{}, false
		}
	}
	t.Span = p.spanFrom(start)
	p.classifyContainer(&t)

	for p.at(token.LBracket) && p.peekAt(1).Kind == token.RBracket {
		p.advance()
		p.advance()
		t = ast.TypeExpr{Kind: ast.TypeArray, Args: []ast.TypeExpr{t}, Span: p.spanFrom(start)}
	}
	return t, true
}

// classifyContainer распознаёт List/Set/Map (в т.ч. System.List) и проверяет арность.
// Без '<...>' имя остаётся обычным именованным типом.
func (p *Parser) classifyContainer(t *ast.TypeExpr) {
	if len(t.Args) == 0 {
		return
	}
	name := strings.TrimPrefix(token.Fold(t.Name), "system.")
	var kind ast.TypeKind
	want := 1
	switch name {
	case "list":
		kind = ast.TypeList
	case "set":
		kind = ast.TypeSet
	case "map":
		kind, want = ast.TypeMap, 2
	default:
		return
	}
	if len(t.Args) != want {
		if p.badType == nil {
			p.badType = &badType{
				span: t.Span,
				msg:  fmt.Sprintf("%s expects %d type argument(s), got %d", t.Name, want, len(t.Args)),
			}
		}
		return
	}
	t.Kind = kind
}
