/*
Copyright © 2023-2026 The lpseries authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package lpseries

import (
	"fmt"
	"strconv"

	"github.com/lpseries/lpseries/mip"
)

// Formula is a parsed constraint formula: two linear expressions over
// frame columns joined by exactly one relational operator.
//
// The grammar is deliberately small:
//
//	formula = expr ("<=" | "==" | ">=") expr
//	expr    = term { ("+" | "-") term }
//	term    = factor { ("*" | "/") factor }
//	factor  = ["+" | "-"] ( number | ident | "(" expr ")" )
//
// Identifiers name frame columns; names that are not valid identifiers
// can be written in backticks. Products must have at least one constant
// operand and divisors must be nonzero constants, so that every row
// evaluates to a linear expression.
type Formula struct {
	src   string
	lhs   node
	rhs   node
	sense mip.Sense
}

// Sense returns the formula's relational operator.
func (f *Formula) Sense() mip.Sense {
	return f.sense
}

func (f *Formula) String() string {
	return f.src
}

// ParseFormula parses a constraint formula. Malformed input, including
// zero or more than one relational operator, yields a *FormulaError.
// Column names are resolved later, row by row, against a frame.
func ParseFormula(formula string) (*Formula, error) {
	p := &parser{src: formula}
	if err := p.lex(); err != nil {
		return nil, err
	}

	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	op := p.next()
	if op.kind != tokRelop {
		return nil, p.errorAt(op, "expected a relational operator (<=, == or >=)")
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if end := p.next(); end.kind != tokEOF {
		if end.kind == tokRelop {
			return nil, p.errorAt(end, "only one relational operator is allowed")
		}
		return nil, p.errorAt(end, "unexpected trailing input")
	}

	return &Formula{src: formula, lhs: lhs, rhs: rhs, sense: op.sense}, nil
}

// evalRow evaluates both sides against row i of the frame.
func (f *Formula) evalRow(frame interface {
	exprFor(name string, i int) (mip.LinExpr, error)
}, i int) (lhs, rhs mip.LinExpr, err error) {
	ev := evaluator{src: f.src, frame: frame, row: i}
	lhs, err = ev.eval(f.lhs)
	if err != nil {
		return mip.LinExpr{}, mip.LinExpr{}, err
	}
	rhs, err = ev.eval(f.rhs)
	if err != nil {
		return mip.LinExpr{}, mip.LinExpr{}, err
	}
	return lhs, rhs, nil
}

// exprFor resolves a formula identifier against the frame's columns.
func (f *Frame[K]) exprFor(name string, i int) (mip.LinExpr, error) {
	col, ok := f.cols[name]
	if !ok {
		return mip.LinExpr{}, &ColumnError{Column: name}
	}
	e, ok := col.exprAt(i)
	if !ok {
		return mip.LinExpr{}, &MissingDataError{What: fmt.Sprintf("column %q", name)}
	}
	return e, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokRelop
)

type token struct {
	kind  tokenKind
	pos   int
	text  string
	num   float64
	sense mip.Sense
}

type parser struct {
	src    string
	tokens []token
	cursor int
}

func (p *parser) lex() error {
	i := 0
	for i < len(p.src) {
		c := p.src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+':
			p.emit(token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			p.emit(token{kind: tokMinus, pos: i})
			i++
		case c == '*':
			p.emit(token{kind: tokStar, pos: i})
			i++
		case c == '/':
			p.emit(token{kind: tokSlash, pos: i})
			i++
		case c == '(':
			p.emit(token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			p.emit(token{kind: tokRParen, pos: i})
			i++
		case c == '<' || c == '>' || c == '=':
			if i+1 >= len(p.src) || p.src[i+1] != '=' {
				return &FormulaError{Formula: p.src, Pos: i, Msg: fmt.Sprintf("unexpected %q, relational operators are <=, == and >=", string(c))}
			}
			sense := mip.Equal
			switch c {
			case '<':
				sense = mip.LessEqual
			case '>':
				sense = mip.GreaterEqual
			}
			p.emit(token{kind: tokRelop, pos: i, sense: sense})
			i += 2
		case c == '`':
			end := i + 1
			for end < len(p.src) && p.src[end] != '`' {
				end++
			}
			if end >= len(p.src) {
				return &FormulaError{Formula: p.src, Pos: i, Msg: "unterminated backquoted name"}
			}
			if end == i+1 {
				return &FormulaError{Formula: p.src, Pos: i, Msg: "empty backquoted name"}
			}
			p.emit(token{kind: tokIdent, pos: i, text: p.src[i+1 : end]})
			i = end + 1
		case isDigit(c) || c == '.':
			end := i
			for end < len(p.src) && (isDigit(p.src[end]) || p.src[end] == '.') {
				end++
			}
			if end < len(p.src) && (p.src[end] == 'e' || p.src[end] == 'E') {
				end++
				if end < len(p.src) && (p.src[end] == '+' || p.src[end] == '-') {
					end++
				}
				for end < len(p.src) && isDigit(p.src[end]) {
					end++
				}
			}
			num, err := strconv.ParseFloat(p.src[i:end], 64)
			if err != nil {
				return &FormulaError{Formula: p.src, Pos: i, Msg: fmt.Sprintf("malformed number %q", p.src[i:end])}
			}
			p.emit(token{kind: tokNumber, pos: i, num: num})
			i = end
		case isIdentStart(c):
			end := i
			for end < len(p.src) && isIdentPart(p.src[end]) {
				end++
			}
			p.emit(token{kind: tokIdent, pos: i, text: p.src[i:end]})
			i = end
		default:
			return &FormulaError{Formula: p.src, Pos: i, Msg: fmt.Sprintf("unexpected character %q", string(c))}
		}
	}
	p.emit(token{kind: tokEOF, pos: len(p.src)})
	return nil
}

func (p *parser) emit(t token) {
	p.tokens = append(p.tokens, t)
}

func (p *parser) next() token {
	t := p.tokens[p.cursor]
	if t.kind != tokEOF {
		p.cursor++
	}
	return t
}

func (p *parser) peek() token {
	return p.tokens[p.cursor]
}

func (p *parser) errorAt(t token, msg string) error {
	return &FormulaError{Formula: p.src, Pos: t.pos, Msg: msg}
}

type node interface {
	pos() int
}

type numNode struct {
	at  int
	val float64
}

type identNode struct {
	at   int
	name string
}

type unaryNode struct {
	at  int
	neg bool
	x   node
}

type binNode struct {
	at   int
	op   tokenKind
	l, r node
}

func (n numNode) pos() int   { return n.at }
func (n identNode) pos() int { return n.at }
func (n unaryNode) pos() int { return n.at }
func (n binNode) pos() int   { return n.at }

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch t := p.peek(); t.kind {
		case tokPlus, tokMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = binNode{at: t.pos, op: t.kind, l: left, r: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch t := p.peek(); t.kind {
		case tokStar, tokSlash:
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = binNode{at: t.pos, op: t.kind, l: left, r: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseFactor() (node, error) {
	switch t := p.next(); t.kind {
	case tokPlus, tokMinus:
		x, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return unaryNode{at: t.pos, neg: t.kind == tokMinus, x: x}, nil
	case tokNumber:
		return numNode{at: t.pos, val: t.num}, nil
	case tokIdent:
		return identNode{at: t.pos, name: t.text}, nil
	case tokLParen:
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorAt(closing, "expected ')'")
		}
		return x, nil
	case tokEOF:
		return nil, p.errorAt(t, "unexpected end of formula")
	default:
		return nil, p.errorAt(t, "expected a number, column name or '('")
	}
}

type evaluator struct {
	src   string
	frame interface {
		exprFor(name string, i int) (mip.LinExpr, error)
	}
	row int
}

func (ev evaluator) eval(n node) (mip.LinExpr, error) {
	switch x := n.(type) {
	case numNode:
		return mip.Constant(x.val), nil
	case identNode:
		return ev.frame.exprFor(x.name, ev.row)
	case unaryNode:
		e, err := ev.eval(x.x)
		if err != nil {
			return mip.LinExpr{}, err
		}
		if x.neg {
			e = e.Scale(-1)
		}
		return e, nil
	case binNode:
		l, err := ev.eval(x.l)
		if err != nil {
			return mip.LinExpr{}, err
		}
		r, err := ev.eval(x.r)
		if err != nil {
			return mip.LinExpr{}, err
		}
		switch x.op {
		case tokPlus:
			return l.Plus(r), nil
		case tokMinus:
			return l.Minus(r), nil
		case tokStar:
			switch {
			case l.IsConstant():
				return r.Scale(l.Offset()), nil
			case r.IsConstant():
				return l.Scale(r.Offset()), nil
			default:
				return mip.LinExpr{}, &FormulaError{Formula: ev.src, Pos: x.at, Msg: "product of two non-constant operands is not linear"}
			}
		case tokSlash:
			if !r.IsConstant() {
				return mip.LinExpr{}, &FormulaError{Formula: ev.src, Pos: x.at, Msg: "division by a non-constant operand is not linear"}
			}
			if r.Offset() == 0 {
				return mip.LinExpr{}, &FormulaError{Formula: ev.src, Pos: x.at, Msg: "division by zero"}
			}
			return l.Scale(1 / r.Offset()), nil
		default:
			panic("unrecognized binary operator")
		}
	default:
		panic("unrecognized formula node")
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
