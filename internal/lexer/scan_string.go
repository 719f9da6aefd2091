package lexer

import (
	"fmt"

	"hylo/internal/diag"
	"hylo/internal/source"
	"hylo/internal/token"
)

// scanString читает строку до такой же кавычки, какой она открыта.
// Перевод строки внутри разрешён; первый из них запоминаем для span ошибки.
func (lx *Lexer) scanString() (token.Container, error) {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	firstNewline, sawNewline := uint32(0), false
	for !lx.cursor.EOF() {
		r := lx.cursor.Peek()
		if r == quote {
			closing := lx.cursor.Off
			lx.cursor.Bump()
			text := ""
			if closing > uint32(start)+1 {
				text, _ = lx.src.Substring(uint32(start)+1, closing-1)
			}
			return token.Container{
				Token: token.NewString(text),
				Span:  source.Span{Start: uint32(start), Stop: closing},
			}, nil
		}
		if r == '\n' && !sawNewline {
			firstNewline, sawNewline = lx.cursor.Off, true
		}
		lx.cursor.Bump()
	}

	// синтетический '\n' в конце текста гарантирует, что перевод строки был
	stop := lx.src.Len() - 1
	if sawNewline {
		stop = firstNewline
	}
	return token.Container{}, diag.New(diag.StringNotTerminated, source.Span{Start: uint32(start), Stop: stop}, lx.opts.FileName).
		WithMessage("the string is not terminated").
		WithNote(fmt.Sprintf("close the string with %c", quote))
}
