package diagfmt

import (
	"encoding/json"
	"io"

	"hylo/internal/diag"
	"hylo/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	Start     uint32 `json:"start"`
	Stop      uint32 `json:"stop"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Code     string       `json:"code"`
	Kind     string       `json:"kind"`
	Message  string       `json:"message"`
	ExitCode int          `json:"exit_code"`
	Location LocationJSON `json:"location"`
	Notes    []string     `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput converts errors into the JSON document shape.
// Count is the number of errors before truncation by opts.Max.
func BuildDiagnosticsOutput(errs []*diag.Error, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(errs))}
	for _, e := range errs {
		if e == nil {
			continue
		}
		out.Count++
		if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
			continue
		}
		d := DiagnosticJSON{
			Code:     e.Kind.Code(),
			Kind:     e.Kind.Name(),
			Message:  e.Message,
			ExitCode: e.Kind.ExitCode(),
			Location: LocationJSON{File: e.File(), Start: e.Span.Start, Stop: e.Span.Stop},
		}
		if f, ok := lookupFile(fs, e.FileName); ok {
			d.Location.File = formatPath(f, fs, opts.PathMode)
			if opts.IncludePositions && e.Span.Stop < f.Text.Len() {
				start := f.Text.LineAndColumn(e.Span.Start)
				end := f.Text.LineAndColumn(e.Span.Stop)
				d.Location.StartLine, d.Location.StartCol = start.Line, start.Column
				d.Location.EndLine, d.Location.EndCol = end.Line, end.Column
			}
		}
		if opts.IncludeNotes {
			d.Notes = e.Notes
		}
		out.Diagnostics = append(out.Diagnostics, d)
	}
	return out
}

// JSON writes errors as an indented JSON document.
func JSON(w io.Writer, errs []*diag.Error, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(errs, fs, opts))
}
