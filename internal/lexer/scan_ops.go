package lexer

import (
	"fmt"

	"apexts/internal/diag"
	"apexts/internal/token"
)

// Все операторы односимвольные: тела методов пропускаются парсером,
// поэтому '>' всегда отдельный Gt, и "Map<String, List<Integer>>" закрывается двумя Gt.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	r, _ := lx.peekRune()
	ch := lx.cursor.Bump()
	switch ch {
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case ',':
		return emit(token.Comma)
	case ';':
		return emit(token.Semicolon)
	case '.':
		return emit(token.Dot)
	case '=':
		return emit(token.Assign)
	case '@':
		return emit(token.At)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case '+', '-', '*', '/', '%', '!', '&', '|', '^', '~':
		return emit(token.Op)
	}

	// неизвестный символ: съедаем руну целиком
	if ch >= utf8RuneSelf {
		lx.cursor.Reset(start)
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", r))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
