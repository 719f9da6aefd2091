package token

import (
	"fmt"
	"strconv"

	"hylo/internal/source"
)

// Token is a tagged value: Kind selects which of the payload fields is meaningful.
type Token struct {
	Kind  Kind    `msgpack:"k"`
	Int   int64   `msgpack:"i,omitempty"`
	Float float64 `msgpack:"f,omitempty"`
	Text  string  `msgpack:"t,omitempty"` // String и Word
	Bool  bool    `msgpack:"b,omitempty"`
	Op    Op      `msgpack:"o,omitempty"`
	Punct Punct   `msgpack:"p,omitempty"`
}

// Container pairs a token with the span it was read from.
type Container struct {
	Token Token       `msgpack:"tok"`
	Span  source.Span `msgpack:"span"`
}

// NewInt creates an Int token.
func NewInt(v int64) Token { return Token{Kind: Int, Int: v} }

// NewFloat creates a Float token.
func NewFloat(v float64) Token { return Token{Kind: Float, Float: v} }

// NewString creates a String token.
func NewString(s string) Token { return Token{Kind: String, Text: s} }

// NewBool creates a Boolean token.
func NewBool(v bool) Token { return Token{Kind: Boolean, Bool: v} }

// NewWord creates a Word token.
func NewWord(s string) Token { return Token{Kind: Word, Text: s} }

// NewOperator creates an Operator token.
func NewOperator(op Op) Token { return Token{Kind: Operator, Op: op} }

// NewPunct creates a Punctuation token.
func NewPunct(p Punct) Token { return Token{Kind: Punctuation, Punct: p} }

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Int, Float, String, Boolean:
		return true
	default:
		return false
	}
}

// IsOp reports whether the token is the given operator.
func (t Token) IsOp(op Op) bool {
	return t.Kind == Operator && t.Op == op
}

// IsPunct reports whether the token is the given punctuation.
func (t Token) IsPunct(p Punct) bool {
	return t.Kind == Punctuation && t.Punct == p
}

// String renders the token the way dumps and golden files show it, e.g. Word("let").
func (t Token) String() string {
	switch t.Kind {
	case Int:
		return fmt.Sprintf("Int(%d)", t.Int)
	case Float:
		return fmt.Sprintf("Float(%s)", strconv.FormatFloat(t.Float, 'g', -1, 64))
	case String:
		return fmt.Sprintf("String(%q)", t.Text)
	case Boolean:
		return fmt.Sprintf("Boolean(%t)", t.Bool)
	case Word:
		return fmt.Sprintf("Word(%q)", t.Text)
	case Operator:
		return fmt.Sprintf("Operator(%s)", t.Op)
	case Punctuation:
		return fmt.Sprintf("Punctuation(%s)", t.Punct)
	default:
		return "Invalid"
	}
}

// Lexeme returns a short source-like spelling, used in parser messages.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Int:
		return strconv.FormatInt(t.Int, 10)
	case Float:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	case String:
		return strconv.Quote(t.Text)
	case Boolean:
		return strconv.FormatBool(t.Bool)
	case Word:
		return t.Text
	case Operator:
		return t.Op.Symbol()
	case Punctuation:
		return t.Punct.Symbol()
	default:
		return "?"
	}
}
