package version

import (
	"testing"

	"github.com/fatih/color"
)

func withVersion(t *testing.T, v, commit string) {
	t.Helper()
	origVersion, origCommit := Version, GitCommit
	Version, GitCommit = v, commit
	t.Cleanup(func() { Version, GitCommit = origVersion, origCommit })
}

func TestColoredPlain(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	tests := []struct{ in, want string }{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.2.3-rc.1+build.123", "1.2.3-rc.1+build.123"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		withVersion(t, tt.in, "")
		if got := Colored(); got != tt.want {
			t.Errorf("Colored(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColoredWithColor(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	withVersion(t, "1.2.3", "")
	if got := Colored(); got == "1.2.3" {
		t.Fatal("expected ANSI escapes around version parts")
	}
}

func TestCurrentAndShortCommit(t *testing.T) {
	withVersion(t, "1.0.0", "1234567890abcdef")
	info := Current()
	if info.Version != "1.0.0" || info.GitCommit != "1234567890abcdef" {
		t.Fatalf("info = %+v", info)
	}
	if got := ShortCommit(); got != "1234567" {
		t.Fatalf("ShortCommit = %q", got)
	}
	withVersion(t, "1.0.0", "abc")
	if got := ShortCommit(); got != "abc" {
		t.Fatalf("ShortCommit = %q", got)
	}
}
