package ast

import (
	"strings"
)

// Format renders e as a compact s-expression, e.g. (+ 1 (* 2 3)).
// Used by tests and the sexpr output of the CLI.
func Format(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Literal:
		b.WriteString(n.Value())
	case *Unary:
		b.WriteString("(")
		b.WriteString(n.Op.Kind.String())
		b.WriteString(" ")
		writeExpr(b, n.Operand)
		b.WriteString(")")
	case *Binary:
		b.WriteString("(")
		b.WriteString(n.Op.Kind.String())
		b.WriteString(" ")
		writeExpr(b, n.Left)
		b.WriteString(" ")
		writeExpr(b, n.Right)
		b.WriteString(")")
	case *Call:
		b.WriteString("(call ")
		writeExpr(b, n.Callee)
		for _, a := range n.Args {
			b.WriteString(" ")
			writeExpr(b, a)
		}
		b.WriteString(")")
	case *Member:
		b.WriteString("(. ")
		writeExpr(b, n.Object)
		b.WriteString(" ")
		writeExpr(b, n.Member)
		b.WriteString(")")
	case *End:
		b.WriteString("<end>")
	}
}
