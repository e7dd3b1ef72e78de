package parser

import "apexts/internal/token"

// recover пропускает нераспознанную конструкцию до `;` или сбалансированного `{}`
// на той же глубине. Гарантирует продвижение хотя бы на один токен.
func (p *Parser) recover(start int) {
	if p.pos == start && !p.atEnd() && !p.at(token.LBrace) && !p.at(token.Semicolon) {
		p.advance()
	}
	for !p.atEnd() {
		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.LBrace:
			p.skipGroup()
			return
		case token.LParen, token.LBracket:
			p.skipGroup()
		default:
			p.advance()
		}
	}
}

func (p *Parser) skipBodyOrSemicolon() {
	switch p.peek().Kind {
	case token.LBrace:
		p.skipGroup()
	case token.Semicolon:
		p.advance()
	}
}

// skipInitializer пропускает выражение до `,` или `;` на глубине 0.
func (p *Parser) skipInitializer() {
	for !p.atEnd() {
		switch p.peek().Kind {
		case token.Comma, token.Semicolon:
			return
		case token.LParen, token.LBracket, token.LBrace:
			p.skipGroup()
		case token.KwNew:
			// `new Map<String, Integer>()`: запятая внутри <...> не разделитель
			p.advance()
			saved := p.badType
			p.parseType()
			p.badType = saved
		default:
			p.advance()
		}
	}
}

// skipNestedDecl пропускает вложенный class/interface/enum целиком.
func (p *Parser) skipNestedDecl() {
	for !p.atEnd() {
		switch p.peek().Kind {
		case token.LBrace:
			p.skipGroup()
			return
		case token.Semicolon:
			p.advance()
			return
		default:
			p.advance()
		}
	}
}
