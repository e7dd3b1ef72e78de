package fuzztests

import (
	"context"
	"testing"
	"time"

	"apexts/internal/ast"
	"apexts/internal/diag"
	"apexts/internal/emit"
	"apexts/internal/parser"
	"apexts/internal/source"
	"apexts/internal/testkit"
)

// parseTimeout is the maximum time allowed for converting a single input.
// If it takes longer, it indicates a potential infinite loop in recovery.
const parseTimeout = 5 * time.Second

func FuzzParserExtractsClass(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.cls", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(128)
		res := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})

		switch res.Status {
		case parser.StatusConverted:
			if res.Class == nil {
				t.Fatalf("converted status without class")
			}
			if err := testkit.CheckSpanInvariants(res.Class, file); err != nil {
				t.Fatalf("span invariants: %v", err)
			}
			if bag.HasErrors() {
				t.Fatalf("converted status with errors in bag")
			}
		case parser.StatusFailed:
			if res.Class != nil {
				t.Fatalf("failed status must not carry a class")
			}
		}
	})
}

// FuzzConvertNoHang checks that parse plus emit finishes on any input.
func FuzzConvertNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// конструкции, на которых восстановление парсера особенно легко зациклить
	f.Add([]byte("/** @tsexport */ public class A { @AuraEnabled public String"))
	f.Add([]byte("/** @tsexport */ public class A { @AuraEnabled public static void f(List<String x) {} }"))
	f.Add([]byte("/** @tsexport */ public class A { public String x = new Map<String,>{; }"))
	f.Add([]byte("/** @tsexport */ public class A { @ @ @ }"))
	f.Add([]byte("/** @tsexport */ public class A { ))) }"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.cls", input)
			file := fs.Get(fileID)

			bag := diag.NewBag(128)
			rep := diag.BagReporter{Bag: bag}
			res := parser.ParseFile(file, parser.Options{Reporter: rep})
			if res.Class == nil {
				return
			}
			_, _ = emit.New(emit.Options{}).Emit([]*ast.ClassDecl{res.Class}, rep)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("conversion hang detected: took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	out := append([]byte(nil), input[:maxLen]...)
	return append(out, "..."...)
}
