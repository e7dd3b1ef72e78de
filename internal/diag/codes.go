package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005

	// Структура файла и объявления
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnclosedParen   Code = 2006
	SynUnclosedBrace   Code = 2007
	SynNoClass         Code = 2101
	SynNonClass        Code = 2102
	SynTypeArity       Code = 2202

	// Члены класса
	MemInfo          Code = 3000
	MemMissingRemote Code = 3001

	// IO
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
	IOCacheError     Code = 4003

	// Эмиттер
	EmitInfo               Code = 5000
	EmitDuplicateModule    Code = 5001
	EmitDuplicateInterface Code = 5002

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexTokenTooLong:             "Token exceeds maximum length",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed class body",
	SynNoClass:                  "No top-level class declaration",
	SynNonClass:                 "Top-level interface or enum skipped",
	SynTypeArity:                "Container type has wrong number of type arguments",
	MemInfo:                     "Member information",
	MemMissingRemote:            "Member skipped: missing remote annotation",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
	IOCacheError:                "Cache error",
	EmitInfo:                    "Emitter information",
	EmitDuplicateModule:         "Duplicate ambient module path",
	EmitDuplicateInterface:      "Duplicate interface name",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("MEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("EMT%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
