package parser

import (
	"apexts/internal/ast"
	"apexts/internal/token"
)

var modifierByKind = map[token.Kind]ast.Modifiers{
	token.KwPublic:     ast.ModPublic,
	token.KwPrivate:    ast.ModPrivate,
	token.KwProtected:  ast.ModProtected,
	token.KwGlobal:     ast.ModGlobal,
	token.KwStatic:     ast.ModStatic,
	token.KwFinal:      ast.ModFinal,
	token.KwOverride:   ast.ModOverride,
	token.KwVirtual:    ast.ModVirtual,
	token.KwAbstract:   ast.ModAbstract,
	token.KwTransient:  ast.ModTransient,
	token.KwWebservice: ast.ModWebservice,
	token.KwTestMethod: ast.ModTestMethod,
}

// parsePrefix собирает аннотации и модификаторы в любом порядке:
// `@AuraEnabled public static`, `public @AuraEnabled static`, `with sharing`.
func (p *Parser) parsePrefix() ([]ast.Annotation, ast.Modifiers) {
	var annots []ast.Annotation
	var mods ast.Modifiers
	for !p.atEnd() {
		tok := p.peek()
		if tok.Kind == token.At {
			annots = append(annots, p.parseAnnotation())
			continue
		}
		if m, ok := modifierByKind[tok.Kind]; ok {
			p.advance()
			mods |= m
			continue
		}
		if m, ok := p.sharingModifier(); ok {
			p.advance()
			p.advance()
			mods |= m
			continue
		}
		break
	}
	return annots, mods
}

// with/without/inherited: контекстные слова, только перед `sharing`.
func (p *Parser) sharingModifier() (ast.Modifiers, bool) {
	tok, next := p.peek(), p.peekAt(1)
	if tok.Kind != token.Ident || next.Kind != token.Ident || !token.EqualFold(next.Text, "sharing") {
		return 0, false
	}
	switch token.Fold(tok.Text) {
	case "with":
		return ast.ModWithSharing, true
	case "without":
		return ast.ModWithoutSharing, true
	case "inherited":
		return ast.ModInheritedSharing, true
	}
	return 0, false
}

// parseAnnotation: '@' Name [ '(' key[=value] {[,] key[=value]} ')' ]
func (p *Parser) parseAnnotation() ast.Annotation {
	at := p.advance()
	a := ast.Annotation{}
	if tok := p.peek(); tok.Kind == token.Ident || tok.IsKeyword() {
		a.Name = p.advance().Text
	}
	if p.at(token.LParen) {
		p.advance()
		a.Params = p.parseAnnotationParams()
	}
	a.Span = at.Span.Cover(p.lastSpan)
	return a
}

func (p *Parser) parseAnnotationParams() []ast.AnnotationParam {
	var params []ast.AnnotationParam
	for !p.atEnd() {
		tok := p.peek()
		switch {
		case tok.Kind == token.RParen:
			p.advance()
			return params
		case tok.Kind == token.Comma:
			p.advance()
		case tok.Kind == token.Ident || tok.IsKeyword():
			param := ast.AnnotationParam{Key: p.advance().Text}
			if p.at(token.Assign) {
				p.advance()
				param.Value = p.annotationValue()
			}
			params = append(params, param)
		case tok.Kind == token.LParen || tok.Kind == token.LBrace || tok.Kind == token.LBracket:
			p.skipGroup()
		default:
			p.advance()
		}
	}
	return params
}

func (p *Parser) annotationValue() string {
	tok := p.peek()
	switch {
	case tok.Kind == token.StringLit:
		p.advance()
		return unquote(tok.Text)
	case tok.Kind == token.RParen || tok.Kind == token.Comma:
		return ""
	case tok.Kind == token.Op && tok.Text == "-":
		p.advance()
		return "-" + p.advance().Text
	}
	return p.advance().Text
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
