package driver

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"apexts/internal/emit"
)

func TestVerdict(t *testing.T) {
	tests := []struct {
		name   string
		res    Result
		strict bool
		want   error
	}{
		{"clean", Result{Succeeded: 3}, true, nil},
		{"partial failure", Result{Succeeded: 1, Failed: 2}, false, nil},
		{"partial failure strict", Result{Succeeded: 1, Failed: 2}, true, ErrStructural},
		{"nothing converted", Result{Failed: 1, Skipped: 4}, false, ErrNothingConverted},
		{"only skipped", Result{Skipped: 2}, true, nil},
		{"duplicates", Result{Succeeded: 2, Stats: emit.Stats{DuplicateModules: 1}}, false, nil},
		{"duplicates strict", Result{Succeeded: 2, Stats: emit.Stats{DuplicateInterfaces: 1}}, true, ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.res.Verdict(tt.strict)
			if tt.want == nil {
				assert.NoError(t, err)
				assert.Equal(t, 0, ExitCode(err))
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, 1, ExitCode(err))
		})
	}
}

func TestVerdictHintMentionsSkipped(t *testing.T) {
	err := (&Result{Failed: 1, Skipped: 1}).Verdict(false)
	assert.True(t, errors.Is(err, ErrNothingConverted))
	hints := errors.GetAllHints(err)
	assert.Contains(t, hints, "1 other file(s) parsed but were skipped (no export marker, or a top-level interface/enum)")
	assert.Contains(t, hints, "run `apexts diag` on the input directory to see every diagnostic")

	err = (&Result{Failed: 2}).Verdict(false)
	for _, h := range errors.GetAllHints(err) {
		assert.NotContains(t, h, "skipped")
	}
}
