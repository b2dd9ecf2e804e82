// Package parser builds an expression tree from a token sequence using
// precedence climbing: each call consumes one prefix operand, then loops
// over infix operators whose left binding power exceeds the caller's
// threshold. Equal left/right power makes an operator left-associative;
// a lower right power makes it right-associative.
package parser

import (
	"errors"
	"fmt"

	"github.com/agenthands/calcvm/pkg/compiler/ast"
	"github.com/agenthands/calcvm/pkg/compiler/lexer"
)

var (
	ErrInvalidPrefixToken = errors.New("parser: token cannot start an expression")
	ErrExpectedOperand    = errors.New("parser: expected operand")
	ErrExpectedCloseParen = errors.New("parser: expected ')'")
	ErrUnexpectedEOF      = errors.New("parser: unexpected end of input")
)

// unaryBindingPower exceeds every infix left binding power, so a prefix
// operator captures exactly one primary term as its operand.
const unaryBindingPower = 10

func leftBindingPower(k lexer.Kind) uint8 {
	switch k {
	case lexer.KindPlus, lexer.KindMinus:
		return 1
	case lexer.KindStar, lexer.KindSlash, lexer.KindPercent:
		return 2
	case lexer.KindCaret:
		return 4
	}
	return 0
}

func rightBindingPower(k lexer.Kind) uint8 {
	switch k {
	case lexer.KindPlus, lexer.KindMinus:
		return 1
	case lexer.KindStar, lexer.KindSlash, lexer.KindPercent:
		return 2
	case lexer.KindCaret:
		return 3
	}
	return 0
}

type Parser struct {
	tokens []lexer.Token
	index  int
}

// Parse consumes a token sequence and returns the expression root.
// A sequence that is immediately EOF carries no expression at all and
// yields (nil, nil), distinct from a syntax error.
func Parse(tokens []lexer.Token) (ast.Node, error) {
	p := &Parser{tokens: tokens}
	if p.current().Kind == lexer.KindEOF {
		return nil, nil
	}
	return p.parseExpression(0)
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.index]
}

// advance returns the current token and moves past it. The EOF sentinel
// is never consumed, so the slice is never overrun.
func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.index]
	if tok.Kind != lexer.KindEOF {
		p.index++
	}
	return tok
}

func (p *Parser) parseExpression(minBP uint8) (ast.Node, error) {
	if p.current().Kind == lexer.KindEOF {
		return nil, fmt.Errorf("%w at offset %d", ErrUnexpectedEOF, p.current().Start)
	}

	lhs, err := p.parsePrefix(p.advance())
	if err != nil {
		return nil, err
	}

	for {
		next := p.current()
		if leftBindingPower(next.Kind) <= minBP {
			break
		}

		op := p.advance()
		rhs, err := p.parseOperand(rightBindingPower(op.Kind), op)
		if err != nil {
			return nil, err
		}

		start, _ := lhs.Span()
		_, end := rhs.Span()
		lhs = &ast.Binary{Op: op.Kind, Left: lhs, Right: rhs, Start: start, End: end}
	}

	return lhs, nil
}

func (p *Parser) parsePrefix(tok lexer.Token) (ast.Node, error) {
	switch tok.Kind {
	case lexer.KindNumber:
		return &ast.Number{Value: tok.Value, Start: tok.Start, End: tok.End}, nil

	case lexer.KindPlus, lexer.KindMinus:
		child, err := p.parseOperand(unaryBindingPower, tok)
		if err != nil {
			return nil, err
		}
		_, end := child.Span()
		return &ast.Unary{Op: tok.Kind, Child: child, Start: tok.Start, End: end}, nil

	case lexer.KindLParen:
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.Kind != lexer.KindRParen {
			return nil, fmt.Errorf("%w, got %s at offset %d", ErrExpectedCloseParen, closing.Kind, closing.Start)
		}
		// The parens contribute no node of their own.
		return inner, nil

	default:
		return nil, fmt.Errorf("%w: %s at offset %d", ErrInvalidPrefixToken, tok.Kind, tok.Start)
	}
}

// parseOperand parses the required operand of op. Running out of tokens
// here is an ExpectedOperand failure, not a bare EOF.
func (p *Parser) parseOperand(minBP uint8, op lexer.Token) (ast.Node, error) {
	if p.current().Kind == lexer.KindEOF {
		return nil, fmt.Errorf("%w after %s at offset %d", ErrExpectedOperand, op.Kind, op.Start)
	}
	return p.parseExpression(minBP)
}
