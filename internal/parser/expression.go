package parser

import (
	"hylo/internal/ast"
	"hylo/internal/token"
)

// Уровни приоритета, от слабого к сильному:
//
//	expr    := term
//	term    := factor (('+' | '-') factor)*
//	factor  := unary (('*' | '/') unary)*
//	unary   := ('-' | '!') unary | postfix
//	postfix := primary ( '(' args ')' | '.' expr )*

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseTerm()
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinaryChain(p.parseFactor, token.Plus, token.Minus)
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	return p.parseBinaryChain(p.parseUnary, token.Multiply, token.Divide)
}

// parseBinaryChain строит левоассоциативную цепочку итеративно:
// накопленное выражение становится левым ребёнком нового узла.
func (p *Parser) parseBinaryChain(operand func() (ast.Expr, error), ops ...token.Op) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.matchOp(ops...)
		if !ok {
			return left, nil
		}
		opTok := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		kind, _ := ast.BinaryFromToken(op)
		left = &ast.Binary{
			Left:  left,
			Op:    ast.BinaryOp{Kind: kind, Span: opTok.Span},
			Right: right,
		}
	}
}

func (p *Parser) matchOp(ops ...token.Op) (token.Op, bool) {
	for _, op := range ops {
		if p.atOp(op) {
			return op, true
		}
	}
	return 0, false
}

// parseUnary правоассоциативен: --x это Negative(Negative(x)).
func (p *Parser) parseUnary() (ast.Expr, error) {
	if op, ok := p.matchOp(token.Minus, token.Exclamation); ok {
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		kind, _ := ast.UnaryFromToken(op)
		return &ast.Unary{
			Op:      ast.UnaryOp{Kind: kind, Span: opTok.Span},
			Operand: operand,
		}, nil
	}
	return p.parsePostfix()
}

// parsePrimary разбирает литералы и слова. Пустой поток даёт End.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return &ast.End{At: p.endSpan()}, nil
	}

	lit := &ast.Literal{Loc: tok.Span}
	switch tok.Token.Kind {
	case token.Int:
		lit.Lit, lit.Int = ast.LitInt, tok.Token.Int
	case token.Float:
		lit.Lit, lit.Float = ast.LitFloat, tok.Token.Float
	case token.String:
		lit.Lit, lit.Text = ast.LitString, tok.Token.Text
	case token.Boolean:
		lit.Lit, lit.Bool = ast.LitBool, tok.Token.Bool
	case token.Word:
		lit.Lit, lit.Text = ast.LitWord, tok.Token.Text
	default:
		return nil, p.errAt(tok.Span, "expected an expression, found `%s`", tok.Token.Lexeme())
	}
	p.advance()
	return lit, nil
}
