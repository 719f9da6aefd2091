package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"hylo/internal/ast"
	"hylo/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatExprTree пишет выражение деревом с ├─ / └─ ветками.
// Positions are printed as line:col when txt is given, raw offsets otherwise.
func FormatExprTree(w io.Writer, e ast.Expr, txt *source.Text) error {
	var b strings.Builder
	writeTree(&b, buildExprNode(e, txt), "", true, true)
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatProgramTree prints every statement of prog as its own subtree.
func FormatProgramTree(w io.Writer, prog *ast.Program, txt *source.Text) error {
	root := &treeNode{label: fmt.Sprintf("Program (%d statements)", len(prog.Stmts))}
	for i, st := range prog.Stmts {
		node := &treeNode{label: fmt.Sprintf("Stmt[%d]", i)}
		if st.Semi == nil {
			node.label += " (no ';')"
		}
		node.children = append(node.children, buildExprNode(st.X, txt))
		root.children = append(root.children, node)
	}
	var b strings.Builder
	writeTree(&b, root, "", true, true)
	_, err := io.WriteString(w, b.String())
	return err
}

func buildExprNode(e ast.Expr, txt *source.Text) *treeNode {
	if e == nil {
		return &treeNode{label: "<nil>"}
	}
	at := formatSpan(e.Span(), txt)
	switch n := e.(type) {
	case *ast.Literal:
		return &treeNode{label: fmt.Sprintf("%s %s (%s)", n.Lit, n.Value(), at)}
	case *ast.Unary:
		return &treeNode{
			label:    fmt.Sprintf("Unary %s (%s)", n.Op.Kind, at),
			children: []*treeNode{buildExprNode(n.Operand, txt)},
		}
	case *ast.Binary:
		return &treeNode{
			label:    fmt.Sprintf("Binary %s (%s)", n.Op.Kind, at),
			children: []*treeNode{buildExprNode(n.Left, txt), buildExprNode(n.Right, txt)},
		}
	case *ast.Call:
		node := &treeNode{
			label:    fmt.Sprintf("Call (%s)", at),
			children: []*treeNode{{label: "Callee", children: []*treeNode{buildExprNode(n.Callee, txt)}}},
		}
		args := &treeNode{label: fmt.Sprintf("Args (%d)", len(n.Args))}
		for _, a := range n.Args {
			args.children = append(args.children, buildExprNode(a, txt))
		}
		node.children = append(node.children, args)
		return node
	case *ast.Member:
		return &treeNode{
			label:    fmt.Sprintf("Member (%s)", at),
			children: []*treeNode{buildExprNode(n.Object, txt), buildExprNode(n.Member, txt)},
		}
	case *ast.End:
		return &treeNode{label: fmt.Sprintf("End (%s)", at)}
	default:
		return &treeNode{label: fmt.Sprintf("%T", e)}
	}
}

func writeTree(b *strings.Builder, n *treeNode, prefix string, last, root bool) {
	switch {
	case root:
		b.WriteString(n.label)
	case last:
		b.WriteString(prefix + "└─ " + n.label)
	default:
		b.WriteString(prefix + "├─ " + n.label)
	}
	b.WriteByte('\n')

	childPrefix := prefix
	if !root {
		if last {
			childPrefix += "   "
		} else {
			childPrefix += "│  "
		}
	}
	for i, c := range n.children {
		writeTree(b, c, childPrefix, i == len(n.children)-1, false)
	}
}

func formatSpan(sp source.Span, txt *source.Text) string {
	if txt == nil || sp.Stop >= txt.Len() {
		return sp.String()
	}
	start := txt.LineAndColumn(sp.Start)
	end := txt.LineAndColumn(sp.Stop)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Column, end.Line, end.Column)
}
