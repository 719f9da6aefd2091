package token

var boolWords = map[string]bool{
	"true":  true,
	"false": false,
}

// LookupBool возвращает значение, если слово является булевым литералом.
// Регистрозависимо: True и FALSE остаются обычными словами.
func LookupBool(word string) (value, ok bool) {
	value, ok = boolWords[word]
	return value, ok
}
