package parser

import (
	"fmt"
	"strings"

	"apexts/internal/ast"
	"apexts/internal/diag"
	"apexts/internal/token"
)

// extractClass ищет первый `class Name` на глубине 0.
// Заголовок объявления начинается после последнего `;` или `}` верхнего уровня.
func (p *Parser) extractClass() Result {
	depth := 0
	headerStart := 0
	for i := 0; i < len(p.toks); i++ {
		tok := p.toks[i]
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				headerStart = i + 1
			}
		case token.Semicolon:
			if depth == 0 {
				headerStart = i + 1
			}
		case token.KwInterface, token.KwEnum:
			if depth == 0 {
				p.reportNonClass(i)
				return Result{Status: StatusNonClass}
			}
		case token.KwClass:
			if depth == 0 && i+1 < len(p.toks) && p.toks[i+1].Kind == token.Ident {
				return p.parseClassAt(headerStart, i)
			}
		}
	}

	diag.ReportError(p.rep, diag.SynNoClass, p.toks[0].Span, "no top-level class declaration found").Emit()
	return Result{Status: StatusFailed}
}

// reportNonClass оставляет info-диагностику: файл пропущен, но это видно в `diag` и `gen -v`.
func (p *Parser) reportNonClass(kwIdx int) {
	kw := p.toks[kwIdx]
	span := kw.Span
	name := ""
	if next := p.toks[min(kwIdx+1, len(p.toks)-1)]; next.Kind == token.Ident {
		name = " '" + next.Text + "'"
		span = next.Span
	}
	diag.ReportInfo(p.rep, diag.SynNonClass, span,
		fmt.Sprintf("top-level %s%s is not a class; file skipped", token.Fold(kw.Text), name)).Emit()
}

func (p *Parser) parseClassAt(headerStart, kwIdx int) Result {
	nameTok := p.toks[kwIdx+1]
	cls := &ast.ClassDecl{
		Name:     nameTok.Text,
		File:     p.file.ID,
		Path:     p.file.RelPath,
		NameSpan: nameTok.Span,
	}

	for i := headerStart; i <= kwIdx; i++ {
		if doc, ok := p.toks[i].Doc(); ok {
			cls.Doc = doc.Text
		}
	}
	cls.Exported = containsMarker(cls.Doc, p.opts.ExportMarker)

	p.pos, p.limit = headerStart, kwIdx
	for !p.atEnd() {
		annots, mods := p.parsePrefix()
		cls.Annotations = append(cls.Annotations, annots...)
		cls.Modifiers |= mods
		if !p.atEnd() && len(annots) == 0 && mods == 0 {
			p.advance()
		}
	}

	p.pos, p.limit = kwIdx+2, len(p.toks)-1
	open := -1
	for open < 0 {
		tok := p.peek()
		switch tok.Kind {
		case token.LBrace:
			open = p.pos
		case token.KwExtends:
			p.advance()
			if p.at(token.Ident) {
				cls.Extends = p.parseQualifiedName()
			}
		case token.Semicolon, token.RBrace, token.EOF:
			diag.ReportError(p.rep, diag.SynUnclosedBrace, nameTok.Span,
				fmt.Sprintf("expected '{' after class header of '%s'", cls.Name)).Emit()
			return Result{Status: StatusFailed, ClassName: cls.Name}
		default:
			p.advance()
		}
	}

	if !cls.Exported {
		return Result{Status: StatusUnmarked, ClassName: cls.Name}
	}

	closeIdx, ok := p.matchBrace(open)
	if !ok {
		diag.ReportError(p.rep, diag.SynUnclosedBrace, p.toks[open].Span,
			fmt.Sprintf("unclosed body of class '%s'", cls.Name)).
			WithNote(nameTok.Span, "class declared here").
			Emit()
		return Result{Status: StatusFailed, ClassName: cls.Name}
	}

	cls.Span = p.toks[min(headerStart, kwIdx)].Span.Cover(p.toks[closeIdx].Span)
	cls.Body = p.toks[open].Span.Cover(p.toks[closeIdx].Span)

	p.pos, p.limit = open+1, closeIdx
	p.parseMembers(cls)

	return Result{Class: cls, ClassName: cls.Name, Status: StatusConverted}
}

func (p *Parser) parseQualifiedName() string {
	name := p.advance().Text
	for p.at(token.Dot) && p.peekAt(1).Kind == token.Ident {
		p.advance()
		name += "." + p.advance().Text
	}
	return name
}

// containsMarker ищет маркер как отдельное слово: "@tsexport" не совпадает с "@tsexported".
func containsMarker(doc, marker string) bool {
	if doc == "" || marker == "" {
		return false
	}
	from := 0
	for {
		rel := strings.Index(doc[from:], marker)
		if rel < 0 {
			return false
		}
		idx := from + rel
		end := idx + len(marker)
		before := idx == 0 || !isWordByte(doc[idx-1]) || !isWordByte(marker[0])
		after := end == len(doc) || !isWordByte(doc[end])
		if before && after {
			return true
		}
		from = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
