package parser

import (
	"hylo/internal/ast"
	"hylo/internal/token"
)

// parsePostfix навешивает вызовы и доступ к членам слева направо.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.atPunct(token.LParen):
			expr, err = p.parseCallExpr(expr)
		case p.atOp(token.Dot):
			expr, err = p.parseMemberExpr(expr)
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseCallExpr(callee ast.Expr) (ast.Expr, error) {
	lparen := p.advance() // съедаем '('

	var args []ast.Expr
	if !p.atPunct(token.RParen) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.atPunct(token.Comma) {
				break
			}
			p.advance() // съедаем ','
		}
	}

	if !p.atPunct(token.RParen) {
		return nil, p.errAt(lparen.Span, "expected ')' after function arguments").
			WithNote("add `)` to close the argument list")
	}
	rparen := p.advance()
	return &ast.Call{
		Callee: callee,
		Args:   args,
		Parens: lparen.Span.Cover(rparen.Span),
	}, nil
}

// parseMemberExpr: справа от '.' разбирается целое выражение, не только слово.
func (p *Parser) parseMemberExpr(object ast.Expr) (ast.Expr, error) {
	dot := p.advance()
	member, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Member{
		Object: object,
		Dot:    dot.Span,
		Member: member,
	}, nil
}
