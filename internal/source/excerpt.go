package source

import (
	"fmt"
	"unicode"
)

// Excerpt is the slice of source lines touched by a span, prepared for
// underlining. Marks are 0-based rune columns: MarkStart on the first line,
// MarkStop (exclusive) on the last line.
type Excerpt struct {
	Lines     []string
	FirstLine uint32 // 1-based номер Lines[0]
	MarkStart int
	MarkStop  int
}

// SingleLine reports whether the excerpt covers exactly one line.
func (e Excerpt) SingleLine() bool {
	return len(e.Lines) == 1
}

// Width is the underline width on the first line, at least 1.
func (e Excerpt) Width() int {
	if len(e.Lines) == 0 {
		return 1
	}
	stop := e.MarkStop
	if !e.SingleLine() {
		stop = len([]rune(e.Lines[0]))
	}
	return max(1, stop-e.MarkStart)
}

// Excerpt extracts every line touched by [start, end].
// Passing an invalid range is a programming error and panics.
func (t *Text) Excerpt(start, end uint32) Excerpt {
	if start > end || end >= t.total {
		panic(fmt.Sprintf("source: invalid excerpt range %d-%d (len %d)", start, end, t.total))
	}
	first, last := t.lineIndex(start), t.lineIndex(end)
	ex := Excerpt{
		Lines:     make([]string, 0, last-first+1),
		FirstLine: t.LineAndColumn(start).Line,
		MarkStart: int(start - t.lines[first].Start),
		MarkStop:  int(end-t.lines[last].Start) + 1,
	}
	for i := first; i <= last; i++ {
		ex.Lines = append(ex.Lines, t.lines[i].Body())
	}
	return ex.clampMarks()
}

// Trim strips leading whitespace from the first line, trailing whitespace
// from the last line and both ends of interior lines. Marks are shifted to
// stay on the same characters and clamped to the trimmed text.
// Trim is idempotent.
func (e Excerpt) Trim() Excerpt {
	n := len(e.Lines)
	if n == 0 {
		return e
	}
	out := Excerpt{
		Lines:     make([]string, n),
		FirstLine: e.FirstLine,
		MarkStart: e.MarkStart,
		MarkStop:  e.MarkStop,
	}
	for i, line := range e.Lines {
		chars := []rune(line)
		lead := 0
		if i == 0 || i < n-1 {
			lead = leadingSpace(chars)
		}
		chars = chars[lead:]
		if i == n-1 || i > 0 {
			chars = chars[:len(chars)-trailingSpace(chars)]
		}
		if i == 0 {
			out.MarkStart = max(0, out.MarkStart-lead)
			if n == 1 {
				out.MarkStop = max(0, out.MarkStop-lead)
			}
		}
		out.Lines[i] = string(chars)
	}
	return out.clampMarks()
}

func (e Excerpt) clampMarks() Excerpt {
	if len(e.Lines) == 0 {
		e.MarkStart, e.MarkStop = 0, 0
		return e
	}
	firstLen := len([]rune(e.Lines[0]))
	lastLen := len([]rune(e.Lines[len(e.Lines)-1]))
	e.MarkStart = min(max(0, e.MarkStart), firstLen)
	e.MarkStop = min(max(0, e.MarkStop), lastLen)
	if e.SingleLine() && e.MarkStop < e.MarkStart {
		e.MarkStop = e.MarkStart
	}
	return e
}

func leadingSpace(chars []rune) int {
	n := 0
	for n < len(chars) && unicode.IsSpace(chars[n]) {
		n++
	}
	return n
}

func trailingSpace(chars []rune) int {
	n := 0
	for n < len(chars) && unicode.IsSpace(chars[len(chars)-1-n]) {
		n++
	}
	return n
}
