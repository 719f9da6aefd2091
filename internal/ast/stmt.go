package ast

import (
	"hylo/internal/source"
)

// ExprStmt is an expression terminated by ';' (or by the end of input).
type ExprStmt struct {
	X Expr
	// Semi is nil when the statement ran into the end of input.
	Semi *source.Span
}

// Program is the parsed file: statements in source order.
type Program struct {
	Stmts []ExprStmt
}
