package lexer

import (
	"unicode"
)

// ===== Классификаторы =====

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// Слово начинается с буквы или '_', продолжается буквами, цифрами и '_'.
func isWordStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isWordContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// только ASCII: '٣' не начинает число
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
