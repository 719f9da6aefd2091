package lexer

import (
	"hylo/internal/diag"
	"hylo/internal/token"
)

// scanOperator: не больше двух символов. Если следующий символ тоже может
// начинать оператор, пробуем пару целиком, иначе один символ.
// Отката к одному символу нет: "=-" это ошибка, а не '=' и '-'.
func (lx *Lexer) scanOperator() (token.Container, error) {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()
	spelling := string(first)
	if !lx.cursor.EOF() && token.IsOperatorStart(lx.cursor.Peek()) {
		spelling += string(lx.cursor.Bump())
	}
	sp := lx.cursor.SpanFrom(start)

	op, ok := token.LookupOperator(spelling)
	if !ok {
		return token.Container{}, lx.errorf(diag.SyntaxError, sp, "the operator is invalid")
	}
	return token.Container{Token: token.NewOperator(op), Span: sp}, nil
}
