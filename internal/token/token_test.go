package token_test

import (
	"testing"

	"apexts/internal/source"
	"apexts/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.FloatLit, token.StringLit, token.KwTrue, token.KwFalse, token.KwNull}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwClass, token.Op, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsModifier(t *testing.T) {
	mods := []token.Kind{
		token.KwPublic, token.KwPrivate, token.KwProtected, token.KwGlobal, token.KwStatic,
		token.KwFinal, token.KwOverride, token.KwVirtual, token.KwAbstract, token.KwTransient,
		token.KwWebservice, token.KwTestMethod,
	}
	for _, k := range mods {
		if !tok(k).IsModifier() {
			t.Fatalf("%v should be a modifier", k)
		}
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be a keyword", k)
		}
	}
	if tok(token.KwClass).IsModifier() {
		t.Fatal("class is not a modifier")
	}
}

func TestLookupKeywordCaseInsensitive(t *testing.T) {
	for _, spelling := range []string{"class", "Class", "CLASS", "cLaSs"} {
		k, ok := token.LookupKeyword(spelling)
		if !ok || k != token.KwClass {
			t.Fatalf("%q must be the class keyword, got %v (%v)", spelling, k, ok)
		}
	}
	if _, ok := token.LookupKeyword("AuraEnabled"); ok {
		t.Fatal("AuraEnabled is not a keyword")
	}
	if _, ok := token.LookupKeyword("void"); ok {
		t.Fatal("void is a type name, not a keyword")
	}
}

func TestFold(t *testing.T) {
	if token.Fold("AuraEnabled") != "auraenabled" {
		t.Fatalf("unexpected fold %q", token.Fold("AuraEnabled"))
	}
	if !token.EqualFold("Straße", "STRASSE") {
		t.Fatal("full case folding expected for non-ASCII names")
	}
}

func TestDocReturnsLastDocBlock(t *testing.T) {
	tk := token.Token{
		Kind: token.KwPublic,
		Leading: []token.Trivia{
			{Kind: token.TriviaDocBlock, Text: "/** first */"},
			{Kind: token.TriviaNewline, Text: "\n"},
			{Kind: token.TriviaBlockComment, Text: "/* plain */"},
			{Kind: token.TriviaDocBlock, Text: "/** second @tsexport */"},
		},
	}
	doc, ok := tk.Doc()
	if !ok || doc.Text != "/** second @tsexport */" {
		t.Fatalf("expected last doc block, got %q (%v)", doc.Text, ok)
	}
	if _, ok := tok(token.Ident).Doc(); ok {
		t.Fatal("token without trivia has no doc")
	}
}
