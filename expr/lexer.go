// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNum
	tokName
	tokOp // + - * / ^
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int
	text string
	num  float64
	op   byte
}

func (t token) describe() string {
	if t.kind == tokEOF {
		return "end of input"
	}

	return strconv.Quote(t.text)
}

// lex splits text into tokens. "**" is folded into "^".
func lex(text string) ([]token, error) {
	src := []rune(text)
	var out []token
	i := 0
	for i < len(src) {
		r := src[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || (r == '.' && i+1 < len(src) && unicode.IsDigit(src[i+1])):
			start := i
			i = scanNumber(src, i)
			lit := string(src[start:i])
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, fmt.Errorf("%w at offset %d: bad number %q", ErrSyntax, start, lit)
			}
			out = append(out, token{kind: tokNum, pos: start, text: lit, num: v})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(src) && (unicode.IsLetter(src[i]) || unicode.IsDigit(src[i]) || src[i] == '_') {
				i++
			}
			out = append(out, token{kind: tokName, pos: start, text: string(src[start:i])})
		case r == '*' && i+1 < len(src) && src[i+1] == '*':
			out = append(out, token{kind: tokOp, pos: i, text: "**", op: '^'})
			i += 2
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
			out = append(out, token{kind: tokOp, pos: i, text: string(r), op: byte(r)})
			i++
		case r == '(':
			out = append(out, token{kind: tokLParen, pos: i, text: "("})
			i++
		case r == ')':
			out = append(out, token{kind: tokRParen, pos: i, text: ")"})
			i++
		default:
			return nil, fmt.Errorf("%w at offset %d: unexpected character %q", ErrSyntax, i, r)
		}
	}

	return append(out, token{kind: tokEOF, pos: len(src)}), nil
}

// scanNumber consumes digits, an optional fraction and an optional exponent.
// The exponent marker is only taken when digits follow, so "2e" stays 2 then e.
func scanNumber(src []rune, i int) int {
	for i < len(src) && unicode.IsDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && unicode.IsDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && unicode.IsDigit(src[j]) {
			for j < len(src) && unicode.IsDigit(src[j]) {
				j++
			}
			i = j
		}
	}

	return i
}
