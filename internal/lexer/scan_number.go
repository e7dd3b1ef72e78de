package lexer

import (
	"apexts/internal/diag"
	"apexts/internal/token"
)

// Поддержка: 0, 123, 123L, 1.5, .5, 1.5d, 1e10, 2.5E-3.
// Суффиксы остаются в Token.Text; Kind ставим IntLit/FloatLit по факту.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть: точка только если за ней цифра ("a.b()" и "1.toString" не трогаем)
	if lx.isNumberAfterDot() {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			lx.cursor.Reset(mark)
			sp = lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	switch lx.cursor.Peek() {
	case 'l', 'L':
		if kind == token.IntLit {
			lx.cursor.Bump()
		}
	case 'd', 'D':
		lx.cursor.Bump()
		kind = token.FloatLit
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
