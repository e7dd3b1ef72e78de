package driver

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"apexts/internal/ast"
	"apexts/internal/diag"
	"apexts/internal/parser"
	"apexts/internal/project"
	"apexts/internal/source"
)

var (
	// ErrStructural marks files that could not be parsed at all: lexer errors,
	// no class declaration, unbalanced braces.
	ErrStructural = errors.New("structural parse error")
	// ErrLoad marks files that could not be read.
	ErrLoad = errors.New("load failed")
)

// FileResult is the outcome of converting one file.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Class     *ast.ClassDecl // nil unless Status is StatusConverted
	ClassName string
	Status    parser.Status
	Bag       *diag.Bag
	Err       error
	Cached    bool
}

// Converted reports whether the file produced an exported class.
func (r FileResult) Converted() bool { return r.Status == parser.StatusConverted && r.Class != nil }

// Failed reports whether the file counts as a failure for the exit policy.
func (r FileResult) Failed() bool { return r.Status == parser.StatusFailed }

// ConvertFile lexes and parses one file of fs. It never panics on malformed
// input and never touches other files, so calls for different ids may run
// concurrently.
func ConvertFile(fs *source.FileSet, id source.FileID, opts Options) FileResult {
	opts = opts.withDefaults()
	file := fs.Get(id)
	log := opts.Logger

	res := FileResult{
		Path:   file.RelPath,
		FileID: id,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}

	var key project.Digest
	if opts.Cache != nil {
		key = project.Combine(project.Digest(file.Hash), opts.digest())
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			log.Debugw("cache entry unreadable", "file", res.Path, "error", err)
		case hit && payload.Schema == diskCacheSchemaVersion:
			payload.restore(&res, id)
			log.Debugw("cache hit", "file", res.Path, "status", res.Status.String())
			return res
		}
	}

	popts := opts.parserOptions()
	popts.Reporter = diag.BagReporter{Bag: res.Bag}
	pr := parser.ParseFile(file, popts)

	res.Class = pr.Class
	res.ClassName = pr.ClassName
	res.Status = pr.Status
	finish(&res, log)

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, newDiskPayload(&res)); err != nil {
			diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.IOCacheError,
				source.Span{File: id}, fmt.Sprintf("cache write failed: %v", err)).Emit()
		}
	}
	return res
}

// finish attaches the error value and logs the outcome.
func finish(res *FileResult, log *zap.SugaredLogger) {
	switch res.Status {
	case parser.StatusConverted:
		c := res.Class
		log.Debugf("Parsing class: %s", c.Name)
		for _, m := range c.Members {
			if !m.Remote {
				continue
			}
			switch m.Kind {
			case ast.MemberField:
				log.Debugf("  Field: %s (%s)", m.Name, m.Type.String())
			case ast.MemberMethod:
				log.Debugf("  Method: %s (%s) -> %s", m.Name, paramList(m.Params), m.Type.String())
			}
		}
	case parser.StatusFailed:
		res.Err = errors.Mark(errors.Newf("%s: structural parse error", res.Path), ErrStructural)
		log.Warnw("file skipped", "file", res.Path, "errors", res.Bag.Count(diag.SevError))
	}
}

func paramList(params []ast.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type.String() + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

// loadFailure builds the result for a file that could not be read. The file
// is registered as an empty entry so that the diagnostic has a path.
func loadFailure(fs *source.FileSet, path string, cause error, opts Options) FileResult {
	id := fs.Add(path, nil, 0)
	file := fs.Get(id)
	res := FileResult{
		Path:   file.RelPath,
		FileID: id,
		Status: parser.StatusFailed,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
		Err:    errors.Mark(errors.Wrapf(cause, "load %s", file.RelPath), ErrLoad),
	}
	diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOLoadFileError,
		source.Span{File: id}, fmt.Sprintf("cannot read file: %v", cause)).Emit()
	opts.Logger.Warnw("file unreadable", "file", res.Path, "error", cause)
	return res
}
