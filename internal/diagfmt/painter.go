package diagfmt

import (
	"github.com/fatih/color"

	"hylo/internal/diag"
)

type colorPainter struct {
	header *color.Color
	gutter *color.Color
	marker *color.Color
	note   *color.Color
}

// NewPainter returns a diag.Painter that paints with ANSI colors when
// enabled, and diag.Plain otherwise.
func NewPainter(enabled bool) diag.Painter {
	if !enabled {
		return diag.Plain
	}
	p := colorPainter{
		header: color.New(color.FgRed, color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		marker: color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
	}
	// цвет решает вызывающий, а не проверка TTY внутри fatih/color
	for _, c := range []*color.Color{p.header, p.gutter, p.marker, p.note} {
		c.EnableColor()
	}
	return p
}

func (p colorPainter) Header(s string) string { return p.header.Sprint(s) }
func (p colorPainter) Gutter(s string) string { return p.gutter.Sprint(s) }
func (p colorPainter) Marker(s string) string { return p.marker.Sprint(s) }
func (p colorPainter) Note(s string) string   { return p.note.Sprint(s) }
