package ast

// Inspect walks the tree in depth-first order, calling fn for each node.
// Children are skipped when fn returns false.
func Inspect(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case *Unary:
		Inspect(n.Operand, fn)
	case *Binary:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *Call:
		Inspect(n.Callee, fn)
		for _, a := range n.Args {
			Inspect(a, fn)
		}
	case *Member:
		Inspect(n.Object, fn)
		Inspect(n.Member, fn)
	}
}

// Children returns the direct children of e in source order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *Unary:
		return []Expr{n.Operand}
	case *Binary:
		return []Expr{n.Left, n.Right}
	case *Call:
		return append([]Expr{n.Callee}, n.Args...)
	case *Member:
		return []Expr{n.Object, n.Member}
	}
	return nil
}
