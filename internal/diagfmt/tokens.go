package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"hylo/internal/source"
	"hylo/internal/token"
)

// TokenOutput is one token in JSON listings.
type TokenOutput struct {
	Kind   string      `json:"kind"`
	Value  string      `json:"value"`
	Span   source.Span `json:"span"`
	Line   uint32      `json:"line,omitempty"`
	Column uint32      `json:"column,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
// номер, токен и позиция line:col-line:col. txt may be nil.
func FormatTokensPretty(w io.Writer, toks []token.Container, txt *source.Text) error {
	for i, tc := range toks {
		if _, err := fmt.Fprintf(w, "%3d: %-28s", i+1, tc.Token.String()); err != nil {
			return err
		}
		if txt != nil && tc.Span.Stop < txt.Len() {
			start := txt.LineAndColumn(tc.Span.Start)
			end := txt.LineAndColumn(tc.Span.Stop)
			fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Column, end.Line, end.Column)
		} else {
			fmt.Fprintf(w, " at %s", tc.Span)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensShort prints the token spellings on one line.
func FormatTokensShort(w io.Writer, toks []token.Container) error {
	for i, tc := range toks {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprint(w, sep+tc.Token.Lexeme()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, toks []token.Container, txt *source.Text) error {
	output := make([]TokenOutput, 0, len(toks))
	for _, tc := range toks {
		out := TokenOutput{
			Kind:  tc.Token.Kind.String(),
			Value: tc.Token.Lexeme(),
			Span:  tc.Span,
		}
		if tc.Token.Kind == token.String {
			out.Value = tc.Token.Text
		}
		if txt != nil && tc.Span.Stop < txt.Len() {
			pos := txt.LineAndColumn(tc.Span.Start)
			out.Line, out.Column = pos.Line, pos.Column
		}
		output = append(output, out)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
