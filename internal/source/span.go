package source

import (
	"fmt"
)

// Span is a pair of absolute character offsets into one Text.
// Both ends are inclusive; Start <= Stop.
type Span struct {
	Start uint32 `json:"start"` // смещение в символах, включительно
	Stop  uint32 `json:"stop"`  // смещение в символах, включительно
}

// At returns a one-character span.
func At(off uint32) Span {
	return Span{Start: off, Stop: off}
}

// Len returns the number of characters covered by the span.
func (s Span) Len() uint32 {
	if s.Stop < s.Start {
		return 0
	}
	return s.Stop - s.Start + 1
}

// Contains reports whether off lies inside the span.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off <= s.Stop
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.Stop)
}

// Cover returns the smallest span that includes both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.Stop > s.Stop {
		s.Stop = other.Stop
	}
	return s
}
