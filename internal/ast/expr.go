package ast

import (
	"hylo/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprLit represents a literal or a bare word.
	ExprLit ExprKind = iota + 1
	// ExprUnary represents a prefix operator applied to an operand.
	ExprUnary
	// ExprBinary represents an infix operator.
	ExprBinary
	// ExprCall represents a call with a parenthesized argument list.
	ExprCall
	// ExprMember represents member access through '.'.
	ExprMember
	// ExprEnd is returned when the token stream ran out where an operand was expected.
	ExprEnd
)

var exprKindNames = [...]string{
	ExprLit:    "Literal",
	ExprUnary:  "Unary",
	ExprBinary: "Binary",
	ExprCall:   "Call",
	ExprMember: "Member",
	ExprEnd:    "End",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) && exprKindNames[k] != "" {
		return exprKindNames[k]
	}
	return "ExprKind(?)"
}

// Expr is a node of the expression tree. The tree is strictly owned:
// no node is shared between parents and nothing is mutated after parsing.
type Expr interface {
	Kind() ExprKind
	// Span covers every token the node was built from.
	Span() source.Span
	exprNode()
}

// Unary is a prefix operator; `--x` nests as Unary(Unary(x)).
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary is a left-associative infix chain link.
type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

// Call applies Callee to Args. Parens spans from '(' to ')'.
type Call struct {
	Callee Expr
	Args   []Expr
	Parens source.Span
}

// Member is `Object . Member`. Member is a full expression, not just a word:
// `a.b+c` is Member(a, Binary(b + c)).
type Member struct {
	Object Expr
	Dot    source.Span
	Member Expr
}

// End marks exhausted input. At points just past the last token.
type End struct {
	At source.Span
}

func (*Literal) Kind() ExprKind { return ExprLit }
func (*Unary) Kind() ExprKind   { return ExprUnary }
func (*Binary) Kind() ExprKind  { return ExprBinary }
func (*Call) Kind() ExprKind    { return ExprCall }
func (*Member) Kind() ExprKind  { return ExprMember }
func (*End) Kind() ExprKind     { return ExprEnd }

func (l *Literal) Span() source.Span { return l.Loc }

func (u *Unary) Span() source.Span {
	return u.Op.Span.Cover(spanOf(u.Operand, u.Op.Span))
}

func (b *Binary) Span() source.Span {
	sp := spanOf(b.Left, b.Op.Span).Cover(b.Op.Span)
	return sp.Cover(spanOf(b.Right, b.Op.Span))
}

func (c *Call) Span() source.Span {
	return spanOf(c.Callee, c.Parens).Cover(c.Parens)
}

func (m *Member) Span() source.Span {
	return spanOf(m.Object, m.Dot).Cover(spanOf(m.Member, m.Dot))
}

func (e *End) Span() source.Span { return e.At }

// spanOf ignores End operands so a trailing "1 +" still points at real tokens.
func spanOf(e Expr, fallback source.Span) source.Span {
	if e == nil || e.Kind() == ExprEnd {
		return fallback
	}
	return e.Span()
}

func (*Literal) exprNode() {}
func (*Unary) exprNode()   {}
func (*Binary) exprNode()  {}
func (*Call) exprNode()    {}
func (*Member) exprNode()  {}
func (*End) exprNode()     {}

// IsEnd reports whether e is the end-of-input sentinel.
func IsEnd(e Expr) bool {
	return e != nil && e.Kind() == ExprEnd
}
