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

package mip

import (
	"math"
	"sort"
)

// Term is one coefficient×variable product within a LinExpr.
type Term struct {
	Var   *Var
	Coeff float64
}

// LinExpr is a linear expression: a sum of coefficient×variable terms
// plus a constant. The zero value is the constant 0. LinExpr is a value
// type; arithmetic methods return new expressions and never mutate the
// receiver.
type LinExpr struct {
	terms  []Term
	offset float64
}

// Constant builds an expression holding just a constant.
func Constant(c float64) LinExpr {
	return LinExpr{offset: c}
}

// VarExpr builds the expression 1.0 × v.
func VarExpr(v *Var) LinExpr {
	return LinExpr{terms: []Term{{Var: v, Coeff: 1}}}
}

// TermExpr builds the expression coeff × v.
func TermExpr(coeff float64, v *Var) LinExpr {
	return LinExpr{terms: []Term{{Var: v, Coeff: coeff}}}
}

func (e LinExpr) Terms() []Term {
	return append([]Term(nil), e.terms...)
}

func (e LinExpr) Offset() float64 {
	return e.offset
}

// IsConstant reports whether the expression carries no variable terms.
func (e LinExpr) IsConstant() bool {
	return len(e.terms) == 0
}

func (e LinExpr) Plus(other LinExpr) LinExpr {
	terms := make([]Term, 0, len(e.terms)+len(other.terms))
	terms = append(terms, e.terms...)
	terms = append(terms, other.terms...)
	return LinExpr{terms: terms, offset: e.offset + other.offset}
}

func (e LinExpr) Minus(other LinExpr) LinExpr {
	return e.Plus(other.Scale(-1))
}

func (e LinExpr) Scale(factor float64) LinExpr {
	terms := make([]Term, len(e.terms))
	for i, t := range e.terms {
		terms[i] = Term{Var: t.Var, Coeff: t.Coeff * factor}
	}
	return LinExpr{terms: terms, offset: e.offset * factor}
}

func (e LinExpr) AddTerm(v *Var, coeff float64) LinExpr {
	terms := make([]Term, 0, len(e.terms)+1)
	terms = append(terms, e.terms...)
	terms = append(terms, Term{Var: v, Coeff: coeff})
	return LinExpr{terms: terms, offset: e.offset}
}

func (e LinExpr) AddConstant(c float64) LinExpr {
	return LinExpr{terms: e.terms, offset: e.offset + c}
}

// HasNaN reports whether any coefficient or the constant is NaN. NaN
// marks missing data; expressions containing it must never reach the
// model.
func (e LinExpr) HasNaN() bool {
	if math.IsNaN(e.offset) {
		return true
	}
	for _, t := range e.terms {
		if t.Var == nil || math.IsNaN(t.Coeff) {
			return true
		}
	}
	return false
}

// Value evaluates the expression against the current solution.
func (e LinExpr) Value() (float64, error) {
	total := e.offset
	for _, t := range e.terms {
		x, err := t.Var.X()
		if err != nil {
			return 0, err
		}
		total += t.Coeff * x
	}
	return total, nil
}

// aggregate folds duplicate variables into single terms, dropping
// zero coefficients, and returns the terms sorted by variable index.
func (e LinExpr) aggregate() []Term {
	byVar := make(map[*Var]float64, len(e.terms))
	for _, t := range e.terms {
		byVar[t.Var] += t.Coeff
	}
	out := make([]Term, 0, len(byVar))
	for v, c := range byVar {
		if c == 0 {
			continue
		}
		out = append(out, Term{Var: v, Coeff: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var.index < out[j].Var.index })
	return out
}
