package formula

import (
	"fmt"
	"strconv"
)

var functions = map[string]bool{
	"sqrt": true,
	"log":  true,
	"abs":  true,
	"exp":  true,
}

// Parse reads an index formula. Both template form ({NIR} - {RED}) and
// built form (b_nir - b_red) are accepted; either spelling produces a
// variable node.
func Parse(input string) (Expr, error) {
	p := &parser{input: input}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("formula: unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return e, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if p.peek() == '-' {
		p.pos++
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unary{x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	// Right-associative, and unary minus binds looser than '^'.
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binary{op: '^', l: base, r: exp}, nil
}

func (p *parser) parseAtom() (Expr, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("formula: missing ')' at offset %d", p.pos)
		}
		p.pos++
		return e, nil
	case c == '{':
		p.pos++
		name := p.scanIdent()
		if name == "" || p.peek() != '}' {
			return nil, fmt.Errorf("formula: malformed role placeholder at offset %d", p.pos)
		}
		p.pos++
		return variable{name: name}, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.scanNumber()
	case isIdentStart(c):
		name := p.scanIdent()
		if functions[name] {
			if p.peek() != '(' {
				return nil, fmt.Errorf("formula: %s requires an argument", name)
			}
			p.pos++
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.peek() != ')' {
				return nil, fmt.Errorf("formula: missing ')' after %s at offset %d", name, p.pos)
			}
			p.pos++
			return call{fn: name, arg: arg}, nil
		}
		return variable{name: name}, nil
	case c == 0:
		return nil, fmt.Errorf("formula: unexpected end of expression")
	}
	return nil, fmt.Errorf("formula: unexpected %q at offset %d", c, p.pos)
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

func (p *parser) scanIdent() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) scanNumber() (Expr, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && (p.input[p.pos] >= '0' && p.input[p.pos] <= '9' || p.input[p.pos] == '.') {
		p.pos++
	}
	// Scientific notation, as emitted for the division guard.
	if p.pos < len(p.input) && (p.input[p.pos] == 'e' || p.input[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if p.pos < len(p.input) && (p.input[p.pos] == '+' || p.input[p.pos] == '-') {
			p.pos++
		}
		if p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
			for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
				p.pos++
			}
		} else {
			p.pos = mark
		}
	}
	text := p.input[start:p.pos]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("formula: bad number %q at offset %d", text, start)
	}
	return num{value: value, text: text}, nil
}
