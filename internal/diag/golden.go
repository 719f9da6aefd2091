package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"hylo/internal/source"
)

// TextLookup finds the source text an error's FileName refers to.
type TextLookup func(fileName string) (*source.Text, bool)

// FileSetLookup adapts a FileSet to TextLookup.
func FileSetLookup(fs *source.FileSet) TextLookup {
	return func(name string) (*source.Text, bool) {
		if fs == nil {
			return nil, false
		}
		f, ok := fs.GetByPath(name)
		if !ok {
			return nil, false
		}
		return f.Text, true
	}
}

type goldenError struct {
	Code    string
	Path    string
	Line    uint32
	Column  uint32
	Message string
}

// FormatGolden renders errors into a stable, single-line-per-entry
// representation suitable for golden files and short CLI output:
//
//	error E0001 path:line:col message
//
// Notes are emitted as extra "note" lines when includeNotes is set.
func FormatGolden(errs []*Error, lookup TextLookup, includeNotes bool) string {
	if len(errs) == 0 {
		return ""
	}
	rendered := make([]goldenError, 0, len(errs))
	notes := make(map[int][]string)
	for _, e := range errs {
		if e == nil {
			continue
		}
		g := goldenError{
			Code:    e.Kind.Code(),
			Path:    normalizePath(e.File()),
			Message: sanitizeMessage(e.Message),
		}
		if lookup != nil {
			if txt, ok := lookup(e.FileName); ok && e.Span.Start < txt.Len() {
				pos := txt.LineAndColumn(e.Span.Start)
				g.Line, g.Column = pos.Line, pos.Column
			}
		}
		if includeNotes {
			for _, n := range e.Notes {
				notes[len(rendered)] = append(notes[len(rendered)], sanitizeMessage(n))
			}
		}
		rendered = append(rendered, g)
	}

	order := make([]int, len(rendered))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		di, dj := rendered[order[a]], rendered[order[b]]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	lines := make([]string, 0, len(rendered))
	for _, idx := range order {
		d := rendered[idx]
		lines = append(lines, fmt.Sprintf("error %s %s:%d:%d %s", d.Code, d.Path, d.Line, d.Column, d.Message))
		for _, n := range notes[idx] {
			lines = append(lines, fmt.Sprintf("note %s %s:%d:%d %s", d.Code, d.Path, d.Line, d.Column, n))
		}
	}
	return strings.Join(lines, "\n")
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
