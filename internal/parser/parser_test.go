package parser

import (
	"testing"

	"hylo/internal/ast"
	"hylo/internal/source"
)

func TestParseProgram(t *testing.T) {
	prog, err := ParseProgram(lex(t, "a; f(1);\n b + 2"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "(call f 1)", "(+ b 2)"}
	if len(prog.Stmts) != len(want) {
		t.Fatalf("got %d statements", len(prog.Stmts))
	}
	for i, s := range prog.Stmts {
		if got := ast.Format(s.X); got != want[i] {
			t.Errorf("stmt %d = %s, want %s", i, got, want[i])
		}
	}
	if prog.Stmts[0].Semi == nil || *prog.Stmts[0].Semi != source.At(1) {
		t.Errorf("first semicolon = %v", prog.Stmts[0].Semi)
	}
	if prog.Stmts[2].Semi != nil {
		t.Error("last statement has no semicolon")
	}
}

func TestParseProgramEmpty(t *testing.T) {
	prog, err := ParseProgram(nil, Options{})
	if err != nil || len(prog.Stmts) != 0 {
		t.Fatalf("got %v, %v", prog, err)
	}
}

func TestParseProgramRequiresSemicolon(t *testing.T) {
	_, err := ParseProgram(lex(t, "let a = 10;"), Options{FileName: "m.hy"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "E0001 SyntaxError m.hy: expected ';' after expression, found `a`" {
		t.Fatalf("error = %q", err.Error())
	}
}
