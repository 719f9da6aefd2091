package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid indicates a zero-value token.
	Invalid Kind = iota
	// Int is a 64-bit signed integer literal.
	Int
	// Float is a 64-bit float literal.
	Float
	// String is a quoted string literal.
	String
	// Boolean is true or false.
	Boolean
	// Word is an identifier.
	Word
	// Operator is one of the Op values.
	Operator
	// Punctuation is one of the Punct values.
	Punctuation
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	Int:         "Int",
	Float:       "Float",
	String:      "String",
	Boolean:     "Boolean",
	Word:        "Word",
	Operator:    "Operator",
	Punctuation: "Punctuation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
