package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"apexts/internal/ast"
	"apexts/internal/buildpipeline"
	"apexts/internal/diag"
	"apexts/internal/emit"
	"apexts/internal/observ"
	"apexts/internal/parser"
	"apexts/internal/source"
)

// Result is the aggregated outcome of ConvertDir. Files and Classes follow
// discovery order regardless of the number of jobs.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Classes []*ast.ClassDecl
	Output  string
	Stats   emit.Stats
	Bag     *diag.Bag

	Succeeded int
	Failed    int
	Skipped   int
	NonClass  int // из Skipped: interface/enum верхнего уровня
	Cached    int

	Timing observ.Report
}

// ConvertDir converts every matching file under dir and renders the
// declaration file. The returned error covers discovery and cancellation
// only; per-file problems live in Files and Bag.
func ConvertDir(ctx context.Context, dir string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	log := opts.Logger
	timer := observ.NewTimer()

	done := timer.Track("discover")
	paths, err := Discover(dir, opts.Extension)
	if err != nil {
		return nil, err
	}
	done(fmt.Sprintf("%d files", len(paths)))
	log.Debugw("discovered files", "dir", dir, "count", len(paths))

	base := dir
	if !isDir(dir) {
		base = filepath.Dir(dir)
	}
	fs := source.NewFileSetWithBase(base)
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = DisplayPath(dir, p)
	}
	res := &Result{
		FileSet: fs,
		Files:   make([]FileResult, len(paths)),
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	for _, name := range names {
		buildpipeline.Emit(opts.Progress, buildpipeline.Event{File: name, Stage: buildpipeline.StageDiscover, Status: buildpipeline.StatusQueued})
	}

	// FileSet не потокобезопасен на запись: загрузка последовательная.
	done = timer.Track("load")
	ids := make([]source.FileID, len(paths))
	loaded := make([]bool, len(paths))
	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "load")
		}
		id, err := fs.Load(p)
		if err != nil {
			res.Files[i] = loadFailure(fs, p, err, opts)
			buildpipeline.Emit(opts.Progress, buildpipeline.Event{File: names[i], Stage: buildpipeline.StageLoad, Status: buildpipeline.StatusError, Err: err})
			continue
		}
		ids[i] = id
		loaded[i] = true
	}
	done("")

	done = timer.Track("parse")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i := range paths {
		if !loaded[i] {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buildpipeline.Emit(opts.Progress, buildpipeline.Event{File: names[i], Stage: buildpipeline.StageParse, Status: buildpipeline.StatusWorking})
			start := time.Now()
			fr := ConvertFile(fs, ids[i], opts)
			// Каждая горутина пишет только в свой индекс.
			res.Files[i] = fr
			buildpipeline.Emit(opts.Progress, buildpipeline.Event{
				File:    names[i],
				Stage:   buildpipeline.StageParse,
				Status:  progressStatus(fr),
				Err:     fr.Err,
				Elapsed: time.Since(start),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "convert")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "convert")
	}

	for i := range res.Files {
		fr := &res.Files[i]
		res.Bag.Merge(fr.Bag)
		if fr.Cached {
			res.Cached++
		}
		switch {
		case fr.Converted():
			res.Succeeded++
			res.Classes = append(res.Classes, fr.Class)
		case fr.Failed():
			res.Failed++
		default:
			res.Skipped++
			if fr.Status == parser.StatusNonClass {
				res.NonClass++
			}
		}
	}
	done(fmt.Sprintf("%d converted, %d cached", res.Succeeded, res.Cached))

	done = timer.Track("emit")
	buildpipeline.Emit(opts.Progress, buildpipeline.Event{Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusWorking})
	em := emit.New(emit.Options{Namespace: opts.Namespace, Header: opts.Header, Mapper: opts.Mapper})
	emitBag := diag.NewBag(opts.MaxDiagnostics)
	res.Output, res.Stats = em.Emit(res.Classes, diag.BagReporter{Bag: emitBag})
	res.Bag.Merge(emitBag)
	buildpipeline.Emit(opts.Progress, buildpipeline.Event{Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusDone})
	done(fmt.Sprintf("%d interfaces, %d modules", res.Stats.Interfaces, res.Stats.Modules))

	res.Timing = timer.Report()
	if opts.Timings {
		appendTimingDiagnostic(res.Bag, dir, res.Timing)
	}
	log.Debugw("conversion finished",
		"succeeded", res.Succeeded, "failed", res.Failed, "skipped", res.Skipped,
		"interfaces", res.Stats.Interfaces, "modules", res.Stats.Modules)
	return res, nil
}

func progressStatus(fr FileResult) buildpipeline.Status {
	switch {
	case fr.Failed():
		return buildpipeline.StatusError
	case fr.Cached:
		return buildpipeline.StatusCached
	case fr.Status != parser.StatusConverted:
		return buildpipeline.StatusSkipped
	}
	return buildpipeline.StatusDone
}

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// appendTimingDiagnostic кладёт отчёт таймера в Bag как info OBS6001
// без позиции; JSON-представление идёт в note.
func appendTimingDiagnostic(bag *diag.Bag, path string, report observ.Report) {
	payload := timingPayload{Kind: "pipeline", Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	d := diag.ReportInfo(nil, diag.ObsTimings, source.Span{},
		fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)).
		WithNote(source.Span{}, string(data)).
		Diagnostic()
	if bag.Add(d) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(d)
	bag.Merge(overflow)
}
