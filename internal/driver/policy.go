package driver

import "github.com/cockroachdb/errors"

var (
	// ErrNothingConverted: at least one file failed and none succeeded.
	ErrNothingConverted = errors.New("no file converted")
	// ErrDuplicate marks strict-mode failures caused by duplicate declarations.
	ErrDuplicate = errors.New("duplicate declaration")
)

// Duplicates returns how many interfaces and modules were dropped as duplicates.
func (r *Result) Duplicates() int {
	if r == nil {
		return 0
	}
	return r.Stats.DuplicateInterfaces + r.Stats.DuplicateModules
}

// Verdict applies the exit policy to a finished run:
//   - nil when at least one file succeeded or nothing failed;
//   - ErrNothingConverted when every attempted file failed;
//   - in strict mode, ErrStructural on any failed file and ErrDuplicate on
//     any dropped duplicate.
func (r *Result) Verdict(strict bool) error {
	if r == nil {
		return nil
	}
	if r.Succeeded == 0 && r.Failed > 0 {
		err := errors.Mark(errors.Newf("%d file(s) failed and none converted", r.Failed), ErrNothingConverted)
		if r.Skipped > 0 {
			err = errors.WithHintf(err,
				"%d other file(s) parsed but were skipped (no export marker, or a top-level interface/enum)", r.Skipped)
		}
		return errors.WithHint(err, "run `apexts diag` on the input directory to see every diagnostic")
	}
	if !strict {
		return nil
	}
	if r.Failed > 0 {
		return errors.Mark(errors.Newf("%d file(s) failed (strict mode)", r.Failed), ErrStructural)
	}
	if n := r.Duplicates(); n > 0 {
		return errors.Mark(errors.Newf("%d duplicate declaration(s) dropped (strict mode)", n), ErrDuplicate)
	}
	return nil
}

// ExitCode maps a verdict to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
