package parser

import (
	"fmt"

	"apexts/internal/ast"
	"apexts/internal/diag"
	"apexts/internal/token"
)

// parseMembers обходит тело класса на глубине 1 (между p.pos и p.limit).
func (p *Parser) parseMembers(cls *ast.ClassDecl) {
	for !p.atEnd() {
		start := p.pos
		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
			continue
		case token.LBrace: // блок инициализации экземпляра
			p.skipGroup()
			continue
		}

		annots, mods := p.parsePrefix()
		tok := p.peek()
		switch {
		case tok.Kind == token.LBrace: // static { ... }
			p.skipGroup()
			continue
		case tok.Kind == token.KwClass || tok.Kind == token.KwInterface || tok.Kind == token.KwEnum:
			p.skipNestedDecl()
			continue
		case tok.Kind == token.Ident && token.EqualFold(tok.Text, cls.Name) && p.peekAt(1).Kind == token.LParen:
			// конструктор
			p.advance()
			p.skipGroup()
			p.skipBodyOrSemicolon()
			continue
		}

		p.badType = nil
		members, ok := p.parseMember(start, annots, mods)
		if !ok {
			p.recover(start)
			continue
		}
		for _, m := range members {
			p.admit(cls, m)
		}
	}
}

func (p *Parser) parseMember(start int, annots []ast.Annotation, mods ast.Modifiers) ([]ast.Member, bool) {
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	nameTok := p.peek()
	if nameTok.Kind != token.Ident {
		return nil, false
	}
	p.advance()

	base := ast.Member{
		Name:        nameTok.Text,
		NameSpan:    nameTok.Span,
		Type:        typ,
		Modifiers:   mods,
		Annotations: annots,
	}

	switch p.peek().Kind {
	case token.LParen:
		params, ok := p.parseParams()
		if !ok {
			return nil, false
		}
		base.Kind = ast.MemberMethod
		base.Params = params
		p.skipBodyOrSemicolon()
		base.Span = p.spanFrom(start)
		return []ast.Member{base}, true

	case token.LBrace: // свойство { get; set; }
		p.skipGroup()
		base.Kind = ast.MemberField
		base.Property = true
		base.Span = p.spanFrom(start)
		return []ast.Member{base}, true

	case token.Semicolon, token.Assign, token.Comma:
		base.Kind = ast.MemberField
		return p.parseDeclarators(start, base)
	}
	return nil, false
}

// parseDeclarators: `Integer a = 1, b, c;` → по полю на каждое имя.
func (p *Parser) parseDeclarators(start int, base ast.Member) ([]ast.Member, bool) {
	var out []ast.Member
	cur := base
	for {
		if p.at(token.Assign) {
			p.advance()
			p.skipInitializer()
		}
		cur.Span = p.spanFrom(start)
		out = append(out, cur)

		switch p.peek().Kind {
		case token.Comma:
			p.advance()
			nameTok := p.peek()
			if nameTok.Kind != token.Ident {
				return nil, false
			}
			start = p.pos
			p.advance()
			cur = base
			cur.Name = nameTok.Text
			cur.NameSpan = nameTok.Span
		case token.Semicolon:
			p.advance()
			return out, true
		default:
			return nil, false
		}
	}
}

// parseParams: '(' [ [final] Type name { ',' [final] Type name } ] ')'
// Запятые внутри <...> разбираются parseType и разделителями не считаются.
func (p *Parser) parseParams() ([]ast.Param, bool) {
	p.advance() // '('
	params := []ast.Param{}
	if p.at(token.RParen) {
		p.advance()
		return params, true
	}
	for {
		pstart := p.pos
		for p.at(token.At) {
			p.parseAnnotation()
		}
		final := false
		if p.at(token.KwFinal) {
			p.advance()
			final = true
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		nameTok := p.peek()
		if nameTok.Kind != token.Ident {
			return nil, false
		}
		p.advance()
		params = append(params, ast.Param{
			Name:  nameTok.Text,
			Type:  typ,
			Final: final,
			Span:  p.spanFrom(pstart),
		})

		switch p.peek().Kind {
		case token.Comma:
			p.advance()
		case token.RParen:
			p.advance()
			return params, true
		default:
			return nil, false
		}
	}
}

// admit проверяет удалённую аннотацию и добавляет член в класс.
// Не больше одной диагностики на член.
func (p *Parser) admit(cls *ast.ClassDecl, m ast.Member) {
	if p.badType != nil {
		diag.ReportWarning(p.rep, diag.SynTypeArity, m.NameSpan,
			fmt.Sprintf("Skipping %s '%s' in class '%s': %s", m.Kind, m.Name, cls.Name, p.badType.msg)).
			WithNote(p.badType.span, "type written here").
			Emit()
		return
	}
	_, m.Remote = ast.FindAnnotation(m.Annotations, p.opts.RemoteAnnotation)
	if !m.Remote {
		diag.ReportWarning(p.rep, diag.MemMissingRemote, m.NameSpan,
			fmt.Sprintf("Skipping %s '%s' in class '%s' (missing @%s)", m.Kind, m.Name, cls.Name, p.opts.RemoteAnnotation)).
			Emit()
	}
	cls.Members = append(cls.Members, m)
}
