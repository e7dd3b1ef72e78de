// Package buildpipeline defines the progress events emitted while a
// directory of Apex classes is converted.
package buildpipeline

import "time"

// Stage describes a pipeline phase.
type Stage string

const (
	// StageDiscover walks the input directory.
	StageDiscover Stage = "discover"
	// StageLoad reads one file.
	StageLoad Stage = "load"
	// StageParse lexes and parses one file.
	StageParse Stage = "parse"
	// StageEmit renders the declaration text (whole run).
	StageEmit Stage = "emit"
	// StageWrite writes the output file (whole run).
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	// StatusSkipped: файл без маркера экспорта или не класс.
	StatusSkipped Status = "skipped"
	// StatusCached: результат взят из дискового кэша.
	StatusCached Status = "cached"
	StatusError  Status = "error"
)

// Terminal reports whether no further events are expected for the file.
func (s Status) Terminal() bool {
	switch s {
	case StatusDone, StatusSkipped, StatusCached, StatusError:
		return true
	}
	return false
}

// Event reports progress for a file (or for the overall pipeline when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: per-file events arrive from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}
