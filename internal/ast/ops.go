package ast

import (
	"hylo/internal/source"
	"hylo/internal/token"
)

// UnaryOpKind enumerates prefix operators.
type UnaryOpKind uint8

const (
	// UnaryNot is '!'.
	UnaryNot UnaryOpKind = iota + 1
	// UnaryNegative is '-'.
	UnaryNegative
)

// String returns the symbol representation of a unary operator.
func (k UnaryOpKind) String() string {
	switch k {
	case UnaryNot:
		return "!"
	case UnaryNegative:
		return "-"
	}
	return "?"
}

// UnaryOp carries the operator span so diagnostics can point at it.
type UnaryOp struct {
	Kind UnaryOpKind
	Span source.Span
}

// BinaryOpKind enumerates infix operators.
type BinaryOpKind uint8

const (
	// Арифметические

	// BinaryAdd represents the addition operator (+).
	BinaryAdd BinaryOpKind = iota + 1
	// BinarySub represents the subtraction operator (-).
	BinarySub
	// BinaryMul represents the multiplication operator (*).
	BinaryMul
	// BinaryDiv represents the division operator (/).
	BinaryDiv

	// Сравнения

	BinaryGreater
	BinaryLess
	BinaryGreaterEqual
	BinaryLessEqual
	BinaryIsEqual
	BinaryIsNotEqual

	// Логические

	BinaryAnd
	BinaryOr

	// BinaryDot is member access; the parser builds Member nodes for it.
	BinaryDot
)

var binarySymbols = [...]string{
	BinaryAdd:          "+",
	BinarySub:          "-",
	BinaryMul:          "*",
	BinaryDiv:          "/",
	BinaryGreater:      ">",
	BinaryLess:         "<",
	BinaryGreaterEqual: ">=",
	BinaryLessEqual:    "<=",
	BinaryIsEqual:      "==",
	BinaryIsNotEqual:   "!=",
	BinaryAnd:          "&&",
	BinaryOr:           "||",
	BinaryDot:          ".",
}

// String returns the symbol representation of a binary operator.
func (k BinaryOpKind) String() string {
	if int(k) < len(binarySymbols) && binarySymbols[k] != "" {
		return binarySymbols[k]
	}
	return "?"
}

// BinaryOp carries the operator span so diagnostics can point at it.
type BinaryOp struct {
	Kind BinaryOpKind
	Span source.Span
}

// BinaryFromToken maps an operator token to its binary kind.
func BinaryFromToken(op token.Op) (BinaryOpKind, bool) {
	switch op {
	case token.Plus:
		return BinaryAdd, true
	case token.Minus:
		return BinarySub, true
	case token.Multiply:
		return BinaryMul, true
	case token.Divide:
		return BinaryDiv, true
	case token.GreaterThan:
		return BinaryGreater, true
	case token.LessThan:
		return BinaryLess, true
	case token.GreaterThanOrEqual:
		return BinaryGreaterEqual, true
	case token.LessThanOrEqual:
		return BinaryLessEqual, true
	case token.IsEqual:
		return BinaryIsEqual, true
	case token.IsNotEqual:
		return BinaryIsNotEqual, true
	case token.And:
		return BinaryAnd, true
	case token.Or:
		return BinaryOr, true
	case token.Dot:
		return BinaryDot, true
	}
	return 0, false
}

// UnaryFromToken maps an operator token to its unary kind.
func UnaryFromToken(op token.Op) (UnaryOpKind, bool) {
	switch op {
	case token.Exclamation:
		return UnaryNot, true
	case token.Minus:
		return UnaryNegative, true
	}
	return 0, false
}
