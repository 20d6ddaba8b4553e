package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"newt/internal/arith"
	"newt/internal/lexer"
	"newt/internal/token"
	"newt/internal/util"
	"newt/internal/value"
)

const PROMPT = ">> "

// Start runs the read-eval-print loop over the arithmetic operator set.
func Start(cfg util.Configuration, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	rt := arith.New(cfg)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		evaluated := Eval(rt, line)
		if evaluated != nil {
			io.WriteString(out, evaluated.Inspect())
			io.WriteString(out, "\n")
		}
	}
}

// Eval evaluates a single expression line and returns the resulting value,
// or an error sentinel.
func Eval(rt *arith.Arith, line string) value.Value {
	p := &parser{l: lexer.New(line), rt: rt}
	p.next()
	p.next()

	result := p.parseAdditive()
	if value.IsError(result) {
		return result
	}
	if p.cur.Type != token.EOF {
		return parseError(p.cur)
	}
	return result
}

// parser is a small recursive-descent evaluator over the expression token
// set. Operands are evaluated as they are parsed; there is no AST. This is
// a driver for the operator handlers, not the language parser.
type parser struct {
	l    *lexer.Lexer
	rt   *arith.Arith
	cur  token.Token
	peek token.Token
}

func (p *parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *parser) parseAdditive() value.Value {
	left := p.parseMultiplicative()
	for !value.IsError(left) {
		switch p.cur.Type {
		case token.PLUS:
			p.next()
			right := p.parseMultiplicative()
			if value.IsError(right) {
				return right
			}
			left = p.rt.Addition(left, right)
		case token.MINUS:
			p.next()
			right := p.parseMultiplicative()
			if value.IsError(right) {
				return right
			}
			left = p.rt.NumberArithmetic(arith.OpSubtraction, left, right)
		default:
			return left
		}
	}
	return left
}

func (p *parser) parseMultiplicative() value.Value {
	left := p.parsePower()
	for !value.IsError(left) {
		var op arith.Op
		switch p.cur.Type {
		case token.ASTERISK:
			op = arith.OpMultiplication
		case token.SLASH:
			op = arith.OpDivision
		case token.PERCENT:
			op = arith.OpRemainder
		default:
			return left
		}
		p.next()
		right := p.parsePower()
		if value.IsError(right) {
			return right
		}
		left = p.rt.NumberArithmetic(op, left, right)
	}
	return left
}

func (p *parser) parsePower() value.Value {
	base := p.parseUnary()
	if value.IsError(base) {
		return base
	}
	if p.cur.Type != token.POWER {
		return base
	}
	p.next()
	// right associative
	exponent := p.parsePower()
	if value.IsError(exponent) {
		return exponent
	}
	return p.rt.NumberArithmetic(arith.OpExponentiation, base, exponent)
}

func (p *parser) parseUnary() value.Value {
	switch p.cur.Type {
	case token.PLUS:
		p.next()
		return p.rt.Unary(p.parseUnary(), true)
	case token.MINUS:
		p.next()
		return p.rt.Unary(p.parseUnary(), false)
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() value.Value {
	switch p.cur.Type {
	case token.NUMBER:
		f, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			return parseError(p.cur)
		}
		p.next()
		return &value.Number{Value: f}
	case token.BIGINT:
		v := value.ParseBigInt(p.cur.Literal, 10)
		p.next()
		return v
	case token.STRING:
		s := p.cur.Literal
		p.next()
		return &value.String{Value: s}
	case token.LBRACE:
		if p.peek.Type != token.RBRACE {
			return parseError(p.peek)
		}
		p.next()
		p.next()
		return &value.Object{}
	case token.LPAREN:
		p.next()
		inner := p.parseAdditive()
		if value.IsError(inner) {
			return inner
		}
		if p.cur.Type != token.RPAREN {
			return parseError(p.cur)
		}
		p.next()
		return inner
	default:
		return parseError(p.cur)
	}
}

func parseError(tok token.Token) *value.Error {
	if tok.Type == token.EOF {
		return value.NewError(value.COMMON_ERROR, "unexpected end of expression")
	}
	return value.NewError(value.COMMON_ERROR, "unexpected token %q at position %d", tok.Literal, tok.Position)
}
