package parser

import (
	"testing"

	"apexts/internal/ast"
	"apexts/internal/diag"
)

func TestClassStatus(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		status Status
		codes  []diag.Code
	}{
		{"marked", "/** @tsexport */\npublic class A {}", StatusConverted, nil},
		{"unmarked", "public class A { public String x; }", StatusUnmarked, nil},
		{"marker not a word", "/** @tsexported */ public class A {}", StatusUnmarked, nil},
		{"plain block comment", "/* @tsexport */ public class A {}", StatusUnmarked, nil},
		{"marker among text", "/**\n * Account DTO.\n * @tsexport\n */\npublic class A {}", StatusConverted, nil},
		{"interface file", "/** @tsexport */ public interface Shape { Integer area(); }", StatusNonClass, []diag.Code{diag.SynNonClass}},
		{"enum file", "public enum Color { RED, GREEN }", StatusNonClass, []diag.Code{diag.SynNonClass}},
		{"no class", "// nothing here\n", StatusFailed, []diag.Code{diag.SynNoClass}},
		{"unclosed body", "/** @tsexport */ public class A { public String x;", StatusFailed, []diag.Code{diag.SynUnclosedBrace}},
		{"missing body", "/** @tsexport */ public class A;", StatusFailed, []diag.Code{diag.SynUnclosedBrace}},
		{"lexer error", "/** @tsexport */ public class A { String s = 'abc\n; }", StatusFailed, []diag.Code{diag.LexUnterminatedString}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, bag, _ := parseSource(t, tt.src)
			if res.Status != tt.status {
				t.Fatalf("status = %v, want %v (diags: %v)", res.Status, tt.status, bag.Items())
			}
			got := codesOf(bag)
			if len(got) != len(tt.codes) {
				t.Fatalf("codes = %v, want %v", got, tt.codes)
			}
			for i := range got {
				if got[i] != tt.codes[i] {
					t.Fatalf("codes = %v, want %v", got, tt.codes)
				}
			}
			if res.Status != StatusConverted && res.Class != nil {
				t.Fatalf("class must be nil for status %v", res.Status)
			}
		})
	}
}

func TestClassHeader(t *testing.T) {
	src := "/** @tsexport */\n@JsonAccess(serializable='always' deserializable=never)\nglobal without sharing class Order extends Base.Entity {}"
	res, bag, _ := parseSource(t, src)
	if res.Status != StatusConverted {
		t.Fatalf("status = %v, diags: %v", res.Status, bag.Items())
	}
	c := res.Class
	if c.Name != "Order" || c.Extends != "Base.Entity" {
		t.Fatalf("name=%q extends=%q", c.Name, c.Extends)
	}
	if c.Modifiers != ast.ModGlobal|ast.ModWithoutSharing {
		t.Fatalf("modifiers = %q", c.Modifiers)
	}
	a, ok := ast.FindAnnotation(c.Annotations, "jsonaccess")
	if !ok {
		t.Fatal("class annotation lost")
	}
	if v, _ := a.Param("serializable"); v != "always" {
		t.Fatalf("serializable = %q", v)
	}
	if v, _ := a.Param("deserializable"); v != "never" {
		t.Fatalf("deserializable = %q", v)
	}
}

func TestCustomExportMarker(t *testing.T) {
	res, _, _ := parseWith(t, "/** @export-ts */ public class A {}", Options{ExportMarker: "@export-ts"})
	if res.Status != StatusConverted {
		t.Fatalf("status = %v", res.Status)
	}
}

func TestContainsMarker(t *testing.T) {
	tests := []struct {
		doc  string
		want bool
	}{
		{"/** @tsexport */", true},
		{"/**@tsexport*/", true},
		{"/** @tsexports */", false},
		{"/** x@tsexport */", true},
		{"/** */", false},
	}
	for _, tt := range tests {
		if got := containsMarker(tt.doc, "@tsexport"); got != tt.want {
			t.Errorf("containsMarker(%q) = %v, want %v", tt.doc, got, tt.want)
		}
	}
}

func TestNonClassNote(t *testing.T) {
	res, bag, _ := parseSource(t, "public enum Color { RED, GREEN }")
	if res.Status != StatusNonClass || bag.Len() != 1 {
		t.Fatalf("status = %v, diags = %v", res.Status, bag.Items())
	}
	d := bag.Items()[0]
	if d.Severity != diag.SevInfo || d.Message != "top-level enum 'Color' is not a class; file skipped" {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("non-class file must not report warnings or errors")
	}
}
