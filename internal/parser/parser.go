// Package parser extracts the exported class of an Apex file and the
// fields and methods of its body.
//
// The parser works on the full token slice of one file: the class body is
// found by brace balance first, then members are recognised by shape
// (annotations, modifiers, type, name, then '(' / ';' / '=' / ',' / '{').
// Method bodies and initializers are skipped by bracket balance and never
// interpreted.
package parser

import (
	"strings"

	"apexts/internal/ast"
	"apexts/internal/diag"
	"apexts/internal/lexer"
	"apexts/internal/source"
	"apexts/internal/token"
)

const (
	DefaultExportMarker     = "@tsexport"
	DefaultRemoteAnnotation = "AuraEnabled"
)

// Status describes what happened to a file.
type Status uint8

const (
	// StatusConverted: экспортируемый класс найден и разобран.
	StatusConverted Status = iota
	// StatusUnmarked: класс без маркера экспорта, пропущен без диагностик.
	StatusUnmarked
	// StatusNonClass: файл объявляет interface или enum верхнего уровня.
	StatusNonClass
	// StatusFailed: структурная ошибка (лексер, нет класса, несбалансированные скобки).
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusUnmarked:
		return "unmarked"
	case StatusNonClass:
		return "non-class"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

type Options struct {
	ExportMarker     string // пусто → DefaultExportMarker
	RemoteAnnotation string // пусто → DefaultRemoteAnnotation; ведущий '@' допускается
	Reporter         diag.Reporter
	MaxTokenLength   uint32
}

func (o Options) withDefaults() Options {
	if o.ExportMarker == "" {
		o.ExportMarker = DefaultExportMarker
	}
	o.RemoteAnnotation = strings.TrimPrefix(o.RemoteAnnotation, "@")
	if o.RemoteAnnotation == "" {
		o.RemoteAnnotation = DefaultRemoteAnnotation
	}
	return o
}

type Result struct {
	// Class is nil unless Status is StatusConverted.
	Class     *ast.ClassDecl
	ClassName string
	Status    Status
	Tokens    int
}

// Parser: состояние парсера на один файл
type Parser struct {
	file     *source.File
	toks     []token.Token
	pos      int
	limit    int // индекс, на котором текущий разбор останавливается
	opts     Options
	rep      *countingReporter
	lastSpan source.Span
	badType  *badType
}

type badType struct {
	span source.Span
	msg  string
}

// countingReporter считает ошибки, чтобы отличить структурный сбой от предупреждений.
type countingReporter struct {
	next   diag.Reporter
	errors int
}

func (r *countingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if sev == diag.SevError {
		r.errors++
	}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}

// ParseFile lexes and parses one Apex file.
func ParseFile(file *source.File, opts Options) Result {
	opts = opts.withDefaults()
	rep := &countingReporter{}
	if opts.Reporter != nil {
		rep.next = diag.NewDedupReporter(opts.Reporter)
	}

	lx := lexer.New(file, lexer.Options{Reporter: rep, MaxTokenLength: opts.MaxTokenLength})
	toks := lx.All()
	if rep.errors > 0 {
		return Result{Status: StatusFailed, Tokens: len(toks)}
	}

	p := &Parser{
		file:  file,
		toks:  toks,
		limit: len(toks) - 1,
		opts:  opts,
		rep:   rep,
	}
	res := p.extractClass()
	res.Tokens = len(toks)
	if rep.errors > 0 {
		res.Status = StatusFailed
		res.Class = nil
	}
	return res
}

func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

// peekAt смотрит на n токенов вперёд, не выходя за limit (там всегда "EOF").
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= p.limit {
		return token.Token{Kind: token.EOF, Span: p.toks[p.limit].Span}
	}
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atEnd() bool {
	return p.pos >= p.limit
}

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) spanFrom(start int) source.Span {
	return p.toks[start].Span.Cover(p.lastSpan)
}

// matchBrace возвращает индекс '}' парного к '{' на позиции open.
func (p *Parser) matchBrace(open int) (int, bool) {
	depth := 0
	for i := open; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func closerOf(k token.Kind) (token.Kind, bool) {
	switch k {
	case token.LBrace:
		return token.RBrace, true
	case token.LParen:
		return token.RParen, true
	case token.LBracket:
		return token.RBracket, true
	}
	return token.Invalid, false
}

// skipGroup пропускает сбалансированную группу (), [] или {} начиная с открывающей скобки.
// Внутри считаются только скобки того же вида.
func (p *Parser) skipGroup() {
	open := p.peek().Kind
	closeKind, ok := closerOf(open)
	if !ok {
		p.advance()
		return
	}
	depth := 0
	for !p.atEnd() {
		switch p.advance().Kind {
		case open:
			depth++
		case closeKind:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}
