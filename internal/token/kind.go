package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal (including the 'L' suffix form).
	IntLit
	// FloatLit represents a decimal literal.
	FloatLit
	// StringLit represents a quoted string literal.
	StringLit

	// KwClass represents the 'class' keyword.
	KwClass
	// KwInterface represents the 'interface' keyword.
	KwInterface
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwExtends represents the 'extends' keyword.
	KwExtends
	// KwImplements represents the 'implements' keyword.
	KwImplements
	KwPublic
	KwPrivate
	KwProtected
	KwGlobal
	KwStatic
	KwFinal
	KwOverride
	KwVirtual
	KwAbstract
	KwTransient
	KwWebservice
	KwTestMethod
	KwNew
	KwTrue
	KwFalse
	KwNull

	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// Lt represents '<'.
	Lt
	// Gt represents '>'.
	Gt
	// Comma represents ','.
	Comma
	// Semicolon represents ';'.
	Semicolon
	// Dot represents '.'.
	Dot
	// Assign represents '='.
	Assign
	// At represents '@'.
	At
	// Question represents '?'.
	Question
	// Colon represents ':'.
	Colon
	// Op is any other operator character (+ - * / % ! & | ^ ~).
	// Member bodies are skipped, so operators are never interpreted.
	Op
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	IntLit:       "IntLit",
	FloatLit:     "FloatLit",
	StringLit:    "StringLit",
	KwClass:      "KwClass",
	KwInterface:  "KwInterface",
	KwEnum:       "KwEnum",
	KwExtends:    "KwExtends",
	KwImplements: "KwImplements",
	KwPublic:     "KwPublic",
	KwPrivate:    "KwPrivate",
	KwProtected:  "KwProtected",
	KwGlobal:     "KwGlobal",
	KwStatic:     "KwStatic",
	KwFinal:      "KwFinal",
	KwOverride:   "KwOverride",
	KwVirtual:    "KwVirtual",
	KwAbstract:   "KwAbstract",
	KwTransient:  "KwTransient",
	KwWebservice: "KwWebservice",
	KwTestMethod: "KwTestMethod",
	KwNew:        "KwNew",
	KwTrue:       "KwTrue",
	KwFalse:      "KwFalse",
	KwNull:       "KwNull",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LParen:       "LParen",
	RParen:       "RParen",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	Lt:           "Lt",
	Gt:           "Gt",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Dot:          "Dot",
	Assign:       "Assign",
	At:           "At",
	Question:     "Question",
	Colon:        "Colon",
	Op:           "Op",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
