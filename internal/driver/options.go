package driver

import (
	"hylo/internal/observ"
	"hylo/internal/pipeline"
)

// SourceExt is the extension of hylo source files.
const SourceExt = ".hy"

// ParseMode selects the top-level grammar rule.
type ParseMode uint8

const (
	// ModeProgram parses `expr ;` statements until the input ends.
	ModeProgram ParseMode = iota
	// ModeExpr parses a single expression and ignores trailing tokens.
	ModeExpr
)

// Options configures a driver run. The zero value is usable.
type Options struct {
	Mode           ParseMode
	MaxDiagnostics int // 0 - без ограничения
	Jobs           int // 0 - GOMAXPROCS
	Cache          *DiskCache
	Progress       pipeline.ProgressSink
	Timer          *observ.Timer
}
