// Package testkit holds structural checks shared by the lexer, parser and
// driver tests.
package testkit

import (
	"fmt"

	"hylo/internal/ast"
	"hylo/internal/source"
	"hylo/internal/token"
)

// CheckTokenInvariants verifies a token stream against its source:
//  1. every span is non-empty and lies inside the text
//  2. spans are strictly increasing and do not overlap
//  3. words, operators and punctuation spell exactly their source text
//  4. a string token spans its quotes plus the text between them
func CheckTokenInvariants(toks []token.Container, txt *source.Text) error {
	if txt == nil {
		return fmt.Errorf("nil text")
	}
	for i, tc := range toks {
		sp := tc.Span
		if sp.Stop < sp.Start {
			return fmt.Errorf("token %d %v: inverted span %v", i, tc.Token, sp)
		}
		if sp.Stop >= txt.Len() {
			return fmt.Errorf("token %d %v: span %v beyond text length %d", i, tc.Token, sp, txt.Len())
		}
		if i > 0 && sp.Start <= toks[i-1].Span.Stop {
			return fmt.Errorf("token %d %v: span %v overlaps previous %v", i, tc.Token, sp, toks[i-1].Span)
		}
		text, _ := txt.SpanText(sp)
		switch tc.Token.Kind {
		case token.Word, token.Operator, token.Punctuation:
			if text != tc.Token.Lexeme() {
				return fmt.Errorf("token %d: source %q does not match %v", i, text, tc.Token)
			}
		case token.String:
			if got := uint32(len([]rune(tc.Token.Text))) + 2; got != sp.Len() {
				return fmt.Errorf("token %d: string span %v has length %d, want %d", i, sp, sp.Len(), got)
			}
		}
	}
	return nil
}

// CheckSpanInvariants verifies an expression tree against its source:
//  1. every node span is non-empty and lies inside the text
//  2. every child span is contained in its parent's span
//
// End sentinels are skipped: they point past the consumed input.
func CheckSpanInvariants(e ast.Expr, txt *source.Text) error {
	if e == nil || txt == nil {
		return fmt.Errorf("nil expression or text")
	}
	var err error
	ast.Inspect(e, func(n ast.Expr) bool {
		if err != nil || ast.IsEnd(n) {
			return false
		}
		sp := n.Span()
		if sp.Stop < sp.Start || sp.Stop >= txt.Len() {
			err = fmt.Errorf("%s %s: span %v outside text of length %d", n.Kind(), ast.Format(n), sp, txt.Len())
			return false
		}
		for _, child := range ast.Children(n) {
			if child == nil || ast.IsEnd(child) {
				continue
			}
			cs := child.Span()
			if cs.Start < sp.Start || cs.Stop > sp.Stop {
				err = fmt.Errorf("%s %s: child span %v escapes parent %v", n.Kind(), ast.Format(n), cs, sp)
				return false
			}
		}
		return true
	})
	return err
}
