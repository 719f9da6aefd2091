package token_test

import (
	"testing"

	"hylo/internal/token"
)

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		in   string
		want token.Op
		ok   bool
	}{
		{"+", token.Plus, true},
		{"-", token.Minus, true},
		{"*", token.Multiply, true},
		{"/", token.Divide, true},
		{"=", token.Equals, true},
		{"!", token.Exclamation, true},
		{">", token.GreaterThan, true},
		{"<", token.LessThan, true},
		{"==", token.IsEqual, true},
		{"!=", token.IsNotEqual, true},
		{">=", token.GreaterThanOrEqual, true},
		{"<=", token.LessThanOrEqual, true},
		{"&&", token.And, true},
		{"||", token.Or, true},
		{".", token.Dot, true},
		{"->", token.Arrow, true},
		{"&", 0, false},
		{"|", 0, false},
		{"=-", 0, false},
		{"++", 0, false},
	}
	for _, tt := range tests {
		got, ok := token.LookupOperator(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("LookupOperator(%q) = %v,%v; want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && got.Symbol() != tt.in {
			t.Errorf("%v.Symbol() = %q, want %q", got, got.Symbol(), tt.in)
		}
	}
}

func TestLookupPunct(t *testing.T) {
	for _, r := range ";,()[]{}" {
		p, ok := token.LookupPunct(r)
		if !ok {
			t.Fatalf("%q must be punctuation", r)
		}
		if p.Symbol() != string(r) {
			t.Fatalf("%v.Symbol() = %q, want %q", p, p.Symbol(), string(r))
		}
	}
	if _, ok := token.LookupPunct('.'); ok {
		t.Fatal("'.' is an operator, not punctuation")
	}
}

func TestLookupBool(t *testing.T) {
	if v, ok := token.LookupBool("true"); !ok || !v {
		t.Fatal("true must resolve to Boolean(true)")
	}
	if v, ok := token.LookupBool("false"); !ok || v {
		t.Fatal("false must resolve to Boolean(false)")
	}
	if _, ok := token.LookupBool("True"); ok {
		t.Fatal("keywords are case sensitive")
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.NewInt(10), "Int(10)"},
		{token.NewFloat(1.5), "Float(1.5)"},
		{token.NewString("hi"), `String("hi")`},
		{token.NewBool(true), "Boolean(true)"},
		{token.NewWord("let"), `Word("let")`},
		{token.NewOperator(token.Equals), "Operator(Equals)"},
		{token.NewPunct(token.Semicolon), "Punctuation(Semicolon)"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if !token.NewInt(1).IsLiteral() || token.NewWord("x").IsLiteral() {
		t.Error("IsLiteral mismatch")
	}
}
