package source

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Text owns the characters of one source document split into lines.
// Every line, including the last one, ends with a synthetic '\n', so
// Len() is always one more than the number of characters in the input.
// Text is immutable after Build and safe for concurrent reads.
type Text struct {
	lines  []Line
	starts []uint32 // начало каждой строки, для бинпоиска
	total  uint32
}

// Build splits s on '\n' and indexes every character by absolute offset.
func Build(s string) *Text {
	parts := strings.Split(s, "\n")
	t := &Text{
		lines:  make([]Line, 0, len(parts)),
		starts: make([]uint32, 0, len(parts)),
	}

	var off uint32
	for _, part := range parts {
		chars := []rune(part)
		chars = append(chars, '\n')
		n, err := safecast.Conv[uint32](len(chars))
		if err != nil {
			panic(fmt.Errorf("line length overflow: %w", err))
		}
		t.lines = append(t.lines, Line{
			Chars: chars,
			Start: off,
			End:   off + n - 1,
		})
		t.starts = append(t.starts, off)
		off += n
	}
	t.total = off
	return t
}

// Len returns the total number of characters including synthetic newlines.
func (t *Text) Len() uint32 {
	return t.total
}

// LineCount returns the number of lines.
func (t *Text) LineCount() int {
	return len(t.lines)
}

// Line returns the 1-based line n.
func (t *Text) Line(n uint32) (Line, bool) {
	if n == 0 || int(n) > len(t.lines) {
		return Line{}, false
	}
	return t.lines[n-1], true
}

// lineIndex returns the 0-based index of the line containing off.
// Offsets past the end resolve to the last line.
func (t *Text) lineIndex(off uint32) int {
	// бинпоиск: находим наибольший starts[i] <= off
	lo, hi := 0, len(t.starts)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if t.starts[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return 0
	}
	return hi
}

// CharAt returns the character at off, or false when off is out of range.
func (t *Text) CharAt(off uint32) (rune, bool) {
	if off >= t.total {
		return 0, false
	}
	line := t.lines[t.lineIndex(off)]
	return line.Chars[off-line.Start], true
}

// Substring returns the characters in [start, end], both inclusive.
// It reports false when start > end or end is out of range.
func (t *Text) Substring(start, end uint32) (string, bool) {
	if start > end || end >= t.total {
		return "", false
	}
	var sb strings.Builder
	for i := t.lineIndex(start); i < len(t.lines); i++ {
		line := t.lines[i]
		if line.Start > end {
			break
		}
		from := uint32(0)
		if start > line.Start {
			from = start - line.Start
		}
		to := line.End - line.Start
		if end < line.End {
			to = end - line.Start
		}
		sb.WriteString(string(line.Chars[from : to+1]))
	}
	return sb.String(), true
}

// SpanText is Substring over a span.
func (t *Text) SpanText(sp Span) (string, bool) {
	return t.Substring(sp.Start, sp.Stop)
}

// LineAndColumn maps an absolute offset to a 1-based line and column.
// Offsets past the end are reported relative to the last line.
func (t *Text) LineAndColumn(off uint32) Position {
	idx := t.lineIndex(off)
	lineNo, err := safecast.Conv[uint32](idx + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return Position{Line: lineNo, Column: off - t.lines[idx].Start + 1}
}
