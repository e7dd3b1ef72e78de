package token

import (
	"strings"

	"golang.org/x/text/cases"
)

var keywords = map[string]Kind{
	"class":      KwClass,
	"interface":  KwInterface,
	"enum":       KwEnum,
	"extends":    KwExtends,
	"implements": KwImplements,
	"public":     KwPublic,
	"private":    KwPrivate,
	"protected":  KwProtected,
	"global":     KwGlobal,
	"static":     KwStatic,
	"final":      KwFinal,
	"override":   KwOverride,
	"virtual":    KwVirtual,
	"abstract":   KwAbstract,
	"transient":  KwTransient,
	"webservice": KwWebservice,
	"testmethod": KwTestMethod,
	"new":        KwNew,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
}

// LookupKeyword возвращает Kind ключевого слова и true, если ident им является.
// Apex регистронезависим: "Class", "PUBLIC" тоже ключевые слова.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[Fold(ident)]
	return k, ok
}

// Fold returns the case-folded form used for every case-insensitive
// comparison of Apex names (keywords, annotations, scalar type names).
func Fold(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			// cases.Caser хранит состояние, поэтому создаём новый на каждый вызов
			return cases.Fold().String(s)
		}
	}
	return strings.ToLower(s)
}

// EqualFold reports whether a and b are the same Apex name.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
