package lexer

import (
	"hylo/internal/source"
)

// Cursor представляет собой позицию в тексте (в символах, не в байтах)
type Cursor struct {
	Text *source.Text
	Off  uint32
}

// NewCursor creates a cursor at the start of txt.
func NewCursor(txt *source.Text) Cursor {
	return Cursor{Text: txt}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= c.Text.Len()
}

// Peek читает текущий символ, если есть, иначе возвращает 0
func (c *Cursor) Peek() rune {
	r, ok := c.Text.CharAt(c.Off)
	if !ok {
		return 0
	}
	return r
}

// Peek2 читает текущий и следующий символ, если оба есть
func (c *Cursor) Peek2() (r0, r1 rune, ok bool) {
	if c.Off+1 >= c.Text.Len() {
		return 0, 0, false
	}
	r0, _ = c.Text.CharAt(c.Off)
	r1, _ = c.Text.CharAt(c.Off + 1)
	return r0, r1, true
}

// Bump перемещает курсор на один символ вперед и возвращает прочитанный символ
func (c *Cursor) Bump() rune {
	r, ok := c.Text.CharAt(c.Off)
	if !ok {
		return 0
	}
	c.Off++
	return r
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span от метки до последнего прочитанного символа включительно.
// Если ничего не прочитано, span состоит из одного символа под меткой.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	start := uint32(m)
	if c.Off <= start {
		return source.At(start)
	}
	return source.Span{Start: start, Stop: c.Off - 1}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next character if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.Peek() == r {
		c.Off++
		return true
	}
	return false
}
