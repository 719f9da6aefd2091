package parser

import (
	"fmt"

	"hylo/internal/diag"
	"hylo/internal/source"
	"hylo/internal/token"
)

func (p *Parser) eof() bool {
	return p.pos >= len(p.toks)
}

// peek: текущий токен без потребления
func (p *Parser) peek() (token.Container, bool) {
	if p.eof() {
		return token.Container{}, false
	}
	return p.toks[p.pos], true
}

func (p *Parser) atOp(op token.Op) bool {
	tok, ok := p.peek()
	return ok && tok.Token.IsOp(op)
}

func (p *Parser) atPunct(pu token.Punct) bool {
	tok, ok := p.peek()
	return ok && tok.Token.IsPunct(pu)
}

// advance: съедает следующий токен
func (p *Parser) advance() token.Container {
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

// endSpan: позиция сразу после последнего токена потока
func (p *Parser) endSpan() source.Span {
	if len(p.toks) == 0 {
		return source.At(0)
	}
	last := p.toks[len(p.toks)-1].Span
	return source.At(last.Stop + 1)
}

func (p *Parser) errAt(sp source.Span, format string, args ...any) *diag.Error {
	return diag.New(diag.SyntaxError, sp, p.opts.FileName).WithMessage(fmt.Sprintf(format, args...))
}
