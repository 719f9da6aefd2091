package ast

import (
	"testing"

	"hylo/internal/source"
	"hylo/internal/token"
)

func lit(v int64, at uint32) *Literal {
	return &Literal{Lit: LitInt, Int: v, Loc: source.At(at)}
}

func TestSpanCoversChildren(t *testing.T) {
	// 1 + f(2)
	call := &Call{
		Callee: &Literal{Lit: LitWord, Text: "f", Loc: source.At(4)},
		Args:   []Expr{lit(2, 6)},
		Parens: source.Span{Start: 5, Stop: 7},
	}
	bin := &Binary{Left: lit(1, 0), Op: BinaryOp{Kind: BinaryAdd, Span: source.At(2)}, Right: call}
	if got := bin.Span(); got != (source.Span{Start: 0, Stop: 7}) {
		t.Fatalf("Span() = %v", got)
	}

	// "1 +" c хвостом End: span не выходит за оператор
	trailing := &Binary{Left: lit(1, 0), Op: BinaryOp{Kind: BinaryAdd, Span: source.At(2)}, Right: &End{At: source.At(4)}}
	if got := trailing.Span(); got != (source.Span{Start: 0, Stop: 2}) {
		t.Fatalf("Span() with End = %v", got)
	}
}

func TestFormatAndInspect(t *testing.T) {
	e := &Member{
		Object: &Literal{Lit: LitWord, Text: "a", Loc: source.At(0)},
		Dot:    source.At(1),
		Member: &Unary{Op: UnaryOp{Kind: UnaryNegative, Span: source.At(2)}, Operand: &Literal{Lit: LitString, Text: "s", Loc: source.Span{Start: 3, Stop: 5}}},
	}
	if got := Format(e); got != `(. a (- "s"))` {
		t.Fatalf("Format() = %s", got)
	}

	var kinds []ExprKind
	Inspect(e, func(n Expr) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != ExprUnary
	})
	want := []ExprKind{ExprMember, ExprLit, ExprUnary}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("visited %v, want %v", kinds, want)
		}
	}
	if len(Children(e)) != 2 || Children(lit(1, 0)) != nil {
		t.Fatal("Children mismatch")
	}
}

func TestOperatorMapping(t *testing.T) {
	tests := []struct {
		op   token.Op
		want BinaryOpKind
	}{
		{token.Plus, BinaryAdd},
		{token.Minus, BinarySub},
		{token.Multiply, BinaryMul},
		{token.Divide, BinaryDiv},
		{token.IsEqual, BinaryIsEqual},
		{token.And, BinaryAnd},
		{token.Dot, BinaryDot},
	}
	for _, tt := range tests {
		got, ok := BinaryFromToken(tt.op)
		if !ok || got != tt.want {
			t.Errorf("BinaryFromToken(%v) = %v,%v", tt.op, got, ok)
		}
	}
	if _, ok := BinaryFromToken(token.Equals); ok {
		t.Error("'=' is not a binary operator in expressions")
	}
	if k, ok := UnaryFromToken(token.Exclamation); !ok || k != UnaryNot {
		t.Error("'!' must map to UnaryNot")
	}
	if _, ok := UnaryFromToken(token.Plus); ok {
		t.Error("'+' is not a prefix operator")
	}
}
