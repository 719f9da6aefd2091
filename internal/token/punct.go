package token

// Punct is a punctuation variant.
type Punct uint8

const (
	// Semicolon is ';'.
	Semicolon Punct = iota + 1
	// Comma is ','.
	Comma
	// LParen is '('.
	LParen
	// RParen is ')'.
	RParen
	// LBrace is '{'.
	LBrace
	// RBrace is '}'.
	RBrace
	// LBracket is '['.
	LBracket
	// RBracket is ']'.
	RBracket
)

var punctNames = [...]string{
	Semicolon: "Semicolon",
	Comma:     "Comma",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
}

var punctByRune = map[rune]Punct{
	';': Semicolon,
	',': Comma,
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	'[': LBracket,
	']': RBracket,
}

func (p Punct) String() string {
	if int(p) < len(punctNames) && punctNames[p] != "" {
		return punctNames[p]
	}
	return "Punct(?)"
}

// Symbol returns the source spelling of the punctuation.
func (p Punct) Symbol() string {
	for r, q := range punctByRune {
		if q == p {
			return string(r)
		}
	}
	return ""
}

// LookupPunct maps a single character to punctuation.
func LookupPunct(r rune) (Punct, bool) {
	p, ok := punctByRune[r]
	return p, ok
}
