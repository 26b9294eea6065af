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
	"math"

	"github.com/lpseries/lpseries/mip"
	"github.com/lpseries/lpseries/series"
)

// Value specifies a per-label numeric input to a bulk operation: a
// constant broadcast to every label, a column of a frame, or a series
// aligned with the target index. The zero Value means "use the
// operation's default". Each variant is resolved explicitly up front;
// resolution failures happen before any model mutation.
type Value struct {
	kind   valueKind
	scalar float64
	column string
	series any
}

type valueKind int

const (
	valueDefault valueKind = iota
	valueScalar
	valueColumn
	valueSeries
)

// Scalar broadcasts a constant to every label.
func Scalar(v float64) Value {
	return Value{kind: valueScalar, scalar: v}
}

// Column references a column of the frame the operation runs on. Only
// the frame-based operations accept it.
func Column(name string) Value {
	return Value{kind: valueColumn, column: name}
}

// FromSeries takes per-label values from a series aligned with the
// operation's index.
func FromSeries[K comparable](s *series.Series[K, float64]) Value {
	return Value{kind: valueSeries, series: s}
}

// resolveValue turns a Value into one float per label of ix, in index
// order. frame may be nil for index-based operations; def is the value
// used when v is the zero Value.
func resolveValue[K comparable](v Value, what string, ix *series.Index[K], frame *Frame[K], def float64) ([]float64, error) {
	switch v.kind {
	case valueDefault:
		return broadcast(def, ix.Len()), nil
	case valueScalar:
		if math.IsNaN(v.scalar) {
			return nil, &MissingDataError{What: fmt.Sprintf("'%s' value", what)}
		}
		return broadcast(v.scalar, ix.Len()), nil
	case valueColumn:
		if frame == nil {
			return nil, fmt.Errorf("'%s': column reference %q requires a frame-based call", what, v.column)
		}
		col, err := frame.Float64Col(v.column)
		if err != nil {
			return nil, err
		}
		return checkNaN(col.Values(), what)
	case valueSeries:
		s, ok := v.series.(*series.Series[K, float64])
		if !ok {
			return nil, fmt.Errorf("'%s': series labels do not match the target index type", what)
		}
		aligned, err := s.Reindex(ix)
		if err != nil {
			return nil, err
		}
		return checkNaN(aligned.Values(), what)
	default:
		panic("unrecognized value kind")
	}
}

func broadcast(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func checkNaN(values []float64, what string) ([]float64, error) {
	for _, v := range values {
		if math.IsNaN(v) {
			return nil, &MissingDataError{What: fmt.Sprintf("'%s' series", what)}
		}
	}
	return values, nil
}

// Side specifies one side of a bulk constraint: a constant, or a
// series of expressions, variables or numbers aligned with the other
// side.
type Side struct {
	kind     sideKind
	constant float64
	series   any
}

type sideKind int

const (
	sideConstant sideKind = iota
	sideExprs
	sideVars
	sideFloats
)

// Constant broadcasts a constant right hand side to every label.
func Constant(v float64) Side {
	return Side{kind: sideConstant, constant: v}
}

// Exprs uses a series of linear expressions.
func Exprs[K comparable](s *series.Series[K, mip.LinExpr]) Side {
	return Side{kind: sideExprs, series: s}
}

// Vars uses a series of variables, each treated as the expression
// 1.0 × v.
func Vars[K comparable](s *series.Series[K, *mip.Var]) Side {
	return Side{kind: sideVars, series: s}
}

// Floats uses a series of constants.
func Floats[K comparable](s *series.Series[K, float64]) Side {
	return Side{kind: sideFloats, series: s}
}

// resolveSide turns a Side into one expression per label of ix, in
// index order.
func resolveSide[K comparable](side Side, what string, ix *series.Index[K]) ([]mip.LinExpr, error) {
	toExprs := func(s *series.Series[K, mip.LinExpr]) ([]mip.LinExpr, error) {
		aligned, err := s.Reindex(ix)
		if err != nil {
			return nil, err
		}
		exprs := aligned.Values()
		for _, e := range exprs {
			if e.HasNaN() {
				return nil, &MissingDataError{What: fmt.Sprintf("'%s' series", what)}
			}
		}
		return exprs, nil
	}

	switch side.kind {
	case sideConstant:
		if math.IsNaN(side.constant) {
			return nil, &MissingDataError{What: fmt.Sprintf("'%s' value", what)}
		}
		exprs := make([]mip.LinExpr, ix.Len())
		for i := range exprs {
			exprs[i] = mip.Constant(side.constant)
		}
		return exprs, nil
	case sideExprs:
		s, ok := side.series.(*series.Series[K, mip.LinExpr])
		if !ok {
			return nil, fmt.Errorf("'%s': series labels do not match the target index type", what)
		}
		return toExprs(s)
	case sideVars:
		s, ok := side.series.(*series.Series[K, *mip.Var])
		if !ok {
			return nil, fmt.Errorf("'%s': series labels do not match the target index type", what)
		}
		return toExprs(AsExprs(s))
	case sideFloats:
		s, ok := side.series.(*series.Series[K, float64])
		if !ok {
			return nil, fmt.Errorf("'%s': series labels do not match the target index type", what)
		}
		return toExprs(series.Map(s, mip.Constant))
	default:
		panic("unrecognized side kind")
	}
}
