package lexer

import (
	"strconv"

	"hylo/internal/diag"
	"hylo/internal/token"
)

// scanNumber жадно читает цифры и точки. Любая точка делает число float;
// количество точек не проверяем, это делает strconv.
func (lx *Lexer) scanNumber() (token.Container, error) {
	start := lx.cursor.Mark()
	isFloat := false
	for !lx.cursor.EOF() {
		r := lx.cursor.Peek()
		if r == '.' {
			isFloat = true
		} else if !isDigit(r) {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text, _ := lx.src.SpanText(sp)

	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Container{}, lx.errorf(diag.SyntaxError, sp, "the float is not valid")
		}
		return token.Container{Token: token.NewFloat(v), Span: sp}, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token.Container{}, lx.errorf(diag.SyntaxError, sp, "the integer is not valid")
	}
	return token.Container{Token: token.NewInt(v), Span: sp}, nil
}
