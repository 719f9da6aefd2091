// Package pipeline describes progress of a multi-file run: which file is in
// which stage and how it ended.
package pipeline

import "time"

// Stage describes a phase a file goes through.
type Stage string

const (
	// StageRead is loading and normalizing the file.
	StageRead Stage = "read"
	// StageLex is tokenization.
	StageLex Stage = "lex"
	// StageParse is parsing the token stream.
	StageParse Stage = "parse"
)

// Weight is the share of the per-file work finished once the stage starts.
func (s Stage) Weight() float64 {
	switch s {
	case StageRead:
		return 0.1
	case StageLex:
		return 0.3
	case StageParse:
		return 0.7
	default:
		return 0
	}
}

// Label is the progress-bar text for a file working in the stage.
func (s Stage) Label() string {
	switch s {
	case StageRead:
		return "reading"
	case StageLex:
		return "lexing"
	case StageParse:
		return "parsing"
	default:
		return ""
	}
}

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusCached  Status = "cached"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Final reports whether no more events follow for the file.
func (s Status) Final() bool {
	return s == StatusDone || s == StatusError || s == StatusCached
}

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}
