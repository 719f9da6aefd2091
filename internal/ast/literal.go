package ast

import (
	"strconv"

	"hylo/internal/source"
)

// LitKind enumerates literal payloads.
type LitKind uint8

const (
	// LitInt is a 64-bit signed integer.
	LitInt LitKind = iota + 1
	// LitFloat is a 64-bit float.
	LitFloat
	// LitString is a string without its quotes.
	LitString
	// LitBool is true or false.
	LitBool
	// LitWord is an identifier.
	LitWord
)

var litKindNames = [...]string{
	LitInt:    "Int",
	LitFloat:  "Float",
	LitString: "String",
	LitBool:   "Bool",
	LitWord:   "Word",
}

func (k LitKind) String() string {
	if int(k) < len(litKindNames) && litKindNames[k] != "" {
		return litKindNames[k]
	}
	return "LitKind(?)"
}

// Literal is a leaf: a value or a bare word, with the span it came from.
type Literal struct {
	Lit   LitKind
	Int   int64
	Float float64
	Text  string // LitString и LitWord
	Bool  bool
	Loc   source.Span
}

// Value returns the literal as source-like text.
func (l *Literal) Value() string {
	switch l.Lit {
	case LitInt:
		return strconv.FormatInt(l.Int, 10)
	case LitFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LitString:
		return strconv.Quote(l.Text)
	case LitBool:
		return strconv.FormatBool(l.Bool)
	default:
		return l.Text
	}
}
