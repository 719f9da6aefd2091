package diag

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"hylo/internal/source"
)

// Painter decorates parts of a rendered report. Implementations must not
// change the visible width of the text they receive.
type Painter interface {
	Header(s string) string
	Gutter(s string) string
	Marker(s string) string
	Note(s string) string
}

type plainPainter struct{}

func (plainPainter) Header(s string) string { return s }
func (plainPainter) Gutter(s string) string { return s }
func (plainPainter) Marker(s string) string { return s }
func (plainPainter) Note(s string) string   { return s }

// Plain is a Painter that leaves text untouched.
var Plain Painter = plainPainter{}

// Render formats the error as plain text. src may be nil, in which case no
// source context is printed.
func (e *Error) Render(src *source.Text) string {
	return e.RenderWith(src, Plain)
}

// RenderWith formats the error using p for decoration.
func (e *Error) RenderWith(src *source.Text, p Painter) string {
	if p == nil {
		p = Plain
	}
	var b strings.Builder
	b.WriteString(p.Header(fmt.Sprintf("error[%s]: %s", e.Kind.Code(), e.Kind.Name())))
	b.WriteByte('\n')

	if src == nil || !e.spanFits(src) {
		fmt.Fprintf(&b, "%s %s\n", p.Gutter("   -->"), e.File())
		b.WriteString(p.Gutter("    |"))
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%s %s\n", p.Gutter("    |"), p.Marker(e.Message))
		e.writeNotes(&b, p)
		return b.String()
	}

	pos := src.LineAndColumn(e.Span.Start)
	fmt.Fprintf(&b, "%s %s:%d:%d\n", p.Gutter("   -->"), e.File(), pos.Line, pos.Column)
	b.WriteString(p.Gutter("    |"))
	b.WriteByte('\n')

	ex := src.Excerpt(e.Span.Start, e.Span.Stop).Trim()
	for i, line := range ex.Lines {
		lineNo := int(ex.FirstLine) + i
		fmt.Fprintf(&b, "%s %s\n", p.Gutter(fmt.Sprintf("%3d |", lineNo)), line)
		// подчёркивание только под строкой, где начинается span
		if i != 0 {
			continue
		}
		marker := strings.Repeat("^", ex.Width())
		if e.Message != "" {
			marker += " " + e.Message
		}
		fmt.Fprintf(&b, "%s %s%s\n", p.Gutter("    |"), padTo(line, ex.MarkStart), p.Marker(marker))
	}
	e.writeNotes(&b, p)
	return b.String()
}

func (e *Error) writeNotes(b *strings.Builder, p Painter) {
	for _, note := range e.Notes {
		fmt.Fprintf(b, "%s %s\n", p.Gutter("    ="), p.Note("note: "+note))
	}
}

func (e *Error) spanFits(src *source.Text) bool {
	return e.Span.Start <= e.Span.Stop && e.Span.Stop < src.Len()
}

// padTo returns whitespace as wide as the first col characters of line.
// Tabs are kept so the caret lines up in any tab width.
func padTo(line string, col int) string {
	var b strings.Builder
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
