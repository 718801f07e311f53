// SPDX-License-Identifier: MIT

package expr

import "fmt"

// parser is a recursive-descent parser over a pre-lexed token slice.
type parser struct {
	toks    []token
	pos     int
	varName string
}

func parse(text, varName string) (node, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, varName: varName}
	if p.peek().kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	n, err := p.sum()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.unexpected(t)
	}

	return n, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) unexpected(t token) error {
	return fmt.Errorf("%w at offset %d: unexpected %s", ErrSyntax, t.pos, t.describe())
}

func (p *parser) isOp(ops ...byte) (byte, bool) {
	t := p.peek()
	if t.kind != tokOp {
		return 0, false
	}
	for _, op := range ops {
		if t.op == op {
			return op, true
		}
	}

	return 0, false
}

// sum = product { ("+" | "-") product }
func (p *parser) sum() (node, error) {
	left, err := p.product()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp('+', '-')
		if !ok {
			return left, nil
		}
		p.next()
		right, err := p.product()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}
}

// product = unary { ("*" | "/") unary }
func (p *parser) product() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp('*', '/')
		if !ok {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}
}

// unary = ("+" | "-") unary | power
func (p *parser) unary() (node, error) {
	if op, ok := p.isOp('+', '-'); ok {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == '-' {
			return negation{x: x}, nil
		}

		return x, nil
	}

	return p.power()
}

// power = primary [ "^" unary ]
func (p *parser) power() (node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if _, ok := p.isOp('^'); !ok {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}

	return binary{op: '^', l: base, r: exp}, nil
}

// primary = number | name | name "(" sum ")" | "(" sum ")"
func (p *parser) primary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNum:
		return num{v: t.num}, nil
	case tokLParen:
		inner, err := p.sum()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, p.unexpected(c)
		}

		return inner, nil
	case tokName:
		return p.name(t)
	}

	return nil, p.unexpected(t)
}

func (p *parser) name(t token) (node, error) {
	if t.text == p.varName {
		return variable{name: t.text}, nil
	}
	if v, ok := constants[t.text]; ok {
		return constant{name: t.text, v: v}, nil
	}
	if _, ok := functions[t.text]; !ok {
		return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownSymbol, t.text, t.pos)
	}
	if open := p.next(); open.kind != tokLParen {
		return nil, fmt.Errorf("%w at offset %d: function %s needs parentheses", ErrSyntax, t.pos, t.text)
	}
	arg, err := p.sum()
	if err != nil {
		return nil, err
	}
	if c := p.next(); c.kind != tokRParen {
		return nil, p.unexpected(c)
	}

	return call{fn: t.text, arg: arg}, nil
}
