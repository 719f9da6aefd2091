package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff   Level = iota
	LevelError       // ring buffer only, dumped when a run fails
	LevelPhase       // driver + phase boundaries
	LevelFile        // per-file events
	LevelDebug       // everything
)

var levelNames = [...]string{
	LevelOff:   "off",
	LevelError: "error",
	LevelPhase: "phase",
	LevelFile:  "file",
	LevelDebug: "debug",
}

// String returns the string representation of Level.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|file|debug)", s)
}

// ShouldEmit returns true if the given scope should emit at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelError:
		return scope <= ScopeFile
	case LevelPhase:
		return scope <= ScopePhase
	case LevelFile:
		return scope <= ScopeFile
	case LevelDebug:
		return true
	default:
		return false
	}
}
