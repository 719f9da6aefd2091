package lexer

import (
	"hylo/internal/token"
)

// scanWord читает идентификатор; true/false становятся Boolean.
func (lx *Lexer) scanWord() token.Container {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isWordContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	word, _ := lx.src.SpanText(sp)
	if v, ok := token.LookupBool(word); ok {
		return token.Container{Token: token.NewBool(v), Span: sp}
	}
	return token.Container{Token: token.NewWord(word), Span: sp}
}
