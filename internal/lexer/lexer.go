package lexer

import (
	"errors"
	"io"

	"hylo/internal/diag"
	"hylo/internal/source"
	"hylo/internal/token"
)

// Lexer turns a source.Text into spanned tokens. It stops at the first
// error; there is no recovery and no partial output.
type Lexer struct {
	src    *source.Text
	cursor Cursor
	opts   Options
}

// New creates a lexer positioned at the start of src.
func New(src *source.Text, opts Options) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
		opts:   opts,
	}
}

// Tokenize lexes the whole text. On failure the returned error is a *diag.Error
// and no tokens are returned.
func Tokenize(src *source.Text, opts Options) ([]token.Container, error) {
	lx := New(src, opts)
	out := make([]token.Container, 0, src.Len()/4+1)
	for {
		tok, err := lx.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
}

// Next возвращает следующий токен. В конце текста возвращает io.EOF,
// при ошибке: *diag.Error. Каждая ветка сдвигает курсор, так что цикл не зависает.
func (lx *Lexer) Next() (token.Container, error) {
	lx.skipWhitespace()
	if lx.cursor.EOF() {
		return token.Container{}, io.EOF
	}

	ch := lx.cursor.Peek()
	if p, ok := token.LookupPunct(ch); ok {
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return token.Container{Token: token.NewPunct(p), Span: lx.cursor.SpanFrom(start)}, nil
	}

	switch {
	case ch == '"' || ch == '\'':
		return lx.scanString()
	case isWordStart(ch):
		return lx.scanWord(), nil
	case isDigit(ch):
		return lx.scanNumber()
	case token.IsOperatorStart(ch):
		return lx.scanOperator()
	default:
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return token.Container{}, lx.errorf(diag.SyntaxError, lx.cursor.SpanFrom(start), "the token is invalid")
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) errorf(kind diag.Kind, sp source.Span, format string, args ...any) *diag.Error {
	return diag.New(kind, sp, lx.opts.FileName).WithMessagef(format, args...)
}
