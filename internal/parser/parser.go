package parser

import (
	"hylo/internal/ast"
	"hylo/internal/token"
)

// Options configures a Parser.
type Options struct {
	// FileName is attached to every error; it is only used for display.
	FileName string
}

// Parser: состояние парсера на один поток токенов.
// Разбор останавливается на первой ошибке, восстановления нет.
type Parser struct {
	toks []token.Container
	pos  int
	opts Options
}

// New creates a parser over toks. The slice is only read.
func New(toks []token.Container, opts Options) *Parser {
	return &Parser{toks: toks, opts: opts}
}

// ParseExpr parses a single expression from the start of toks.
// Tokens after the expression are left unread. When toks is empty the
// result is the end-of-input sentinel. Errors are *diag.Error.
func ParseExpr(toks []token.Container, opts Options) (ast.Expr, error) {
	return New(toks, opts).ParseExpression()
}

// ParseProgram parses `expr ;` statements until the tokens run out.
// The last statement may omit its semicolon.
func ParseProgram(toks []token.Container, opts Options) (*ast.Program, error) {
	return New(toks, opts).ParseProgram()
}

// ParseExpression parses one expression at the cursor.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	return p.parseExpr()
}

// ParseProgram parses statements from the cursor to the end.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.eof() {
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt := ast.ExprStmt{X: x}
		switch {
		case p.atPunct(token.Semicolon):
			semi := p.advance().Span
			stmt.Semi = &semi
		case p.eof():
		default:
			tok, _ := p.peek()
			return nil, p.errAt(tok.Span, "expected ';' after expression, found `%s`", tok.Token.Lexeme()).
				WithNote("only `+ - * /`, calls and member access are supported in expressions")
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// Remaining returns the number of unread tokens.
func (p *Parser) Remaining() int {
	return len(p.toks) - p.pos
}
