package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a stage.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a stage.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event.
// Lower numeric values represent coarser events.
type Scope uint8

const (
	// ScopeDriver is one CLI command.
	ScopeDriver Scope = iota + 1
	// ScopePhase is tokenize, parse or cache access for a whole run.
	ScopePhase
	// ScopeFile is one source file.
	ScopeFile
	// ScopeToken is per-token detail.
	ScopeToken
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePhase:
		return "phase"
	case ScopeFile:
		return "file"
	case ScopeToken:
		return "token"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // глобальный монотонный номер
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корня
	Name     string // e.g. "tokenize", "file:src/main.hy"
	Detail   string
	Elapsed  time.Duration // только для KindSpanEnd
	Extra    map[string]string
}
