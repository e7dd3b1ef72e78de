package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addApexSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.cls файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".cls") {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

var apexSeeds = []string{
	`/** @tsexport */
public with sharing class AccountDto {
    @AuraEnabled public String name;
    @AuraEnabled public Integer count { get; set; }
    @AuraEnabled
    public static List<Account> find(String term, Map<String, Decimal> weights) {
        return [SELECT Id FROM Account WHERE Name = :term];
    }
}`,
	`/** @tsexport */ global class Wrapper { @AuraEnabled(cacheable=true) global static Set<Id> ids() { return null; } }`,
	`/** @tsexport */ public class Broken { @AuraEnabled public String name`,
	`/** @tsexport */ public class Nested { public class Inner { } @AuraEnabled public Inner value; }`,
	`public class Plain { @AuraEnabled public String name; }`,
	`/** @tsexport */ public interface Shape { Decimal area(); }`,
	`/** @tsexport */ public enum Color { RED, GREEN }`,
	`/** @tsexport */ public class Strings { @AuraEnabled public String s = 'it\'s {;} // not a comment'; }`,
	`/* unterminated comment`,
	`'unterminated string`,
	`/** @tsexport */ public class Init { @AuraEnabled public Map<String, Integer> m = new Map<String, Integer>{ 'a' => 1, 'b' => 2 }; }`,
	"/** @tsexport */ public class Deep { void f() { { { { } } } } }",
}

func addApexSeeds(f *testing.F) {
	for _, seed := range apexSeeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
