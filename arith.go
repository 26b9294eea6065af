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
	"math"

	"github.com/lpseries/lpseries/mip"
	"github.com/lpseries/lpseries/series"
)

// AsExprs converts a series of variables into a series of expressions,
// each 1.0 × v. A nil handle becomes a NaN constant, so missing
// entries stay detectable downstream.
func AsExprs[K comparable](s *series.Series[K, *mip.Var]) *series.Series[K, mip.LinExpr] {
	return series.Map(s, func(v *mip.Var) mip.LinExpr {
		if v == nil {
			return mip.Constant(math.NaN())
		}
		return mip.VarExpr(v)
	})
}

// Add pairs two expression series label by label. The right series
// must cover exactly the left's labels, in any order.
func Add[K comparable](a, b *series.Series[K, mip.LinExpr]) (*series.Series[K, mip.LinExpr], error) {
	return series.Zip(a, b, mip.LinExpr.Plus)
}

// Sub subtracts b from a label by label.
func Sub[K comparable](a, b *series.Series[K, mip.LinExpr]) (*series.Series[K, mip.LinExpr], error) {
	return series.Zip(a, b, mip.LinExpr.Minus)
}

// Scale multiplies every expression by a constant factor.
func Scale[K comparable](s *series.Series[K, mip.LinExpr], factor float64) *series.Series[K, mip.LinExpr] {
	return series.Map(s, func(e mip.LinExpr) mip.LinExpr {
		return e.Scale(factor)
	})
}

// AddConst adds a constant to every expression.
func AddConst[K comparable](s *series.Series[K, mip.LinExpr], c float64) *series.Series[K, mip.LinExpr] {
	return series.Map(s, func(e mip.LinExpr) mip.LinExpr {
		return e.AddConstant(c)
	})
}

// MulSeries multiplies expressions by per-label coefficients, aligned
// label by label.
func MulSeries[K comparable](s *series.Series[K, mip.LinExpr], coeffs *series.Series[K, float64]) (*series.Series[K, mip.LinExpr], error) {
	return series.Zip(s, coeffs, func(e mip.LinExpr, c float64) mip.LinExpr {
		return e.Scale(c)
	})
}

// Sum folds a series of expressions into one.
func Sum[K comparable](s *series.Series[K, mip.LinExpr]) mip.LinExpr {
	var total mip.LinExpr
	for i := 0; i < s.Len(); i++ {
		total = total.Plus(s.ValueAt(i))
	}
	return total
}

// SumVars folds a series of variables into one expression with unit
// coefficients.
func SumVars[K comparable](s *series.Series[K, *mip.Var]) mip.LinExpr {
	var total mip.LinExpr
	for i := 0; i < s.Len(); i++ {
		if v := s.ValueAt(i); v != nil {
			total = total.AddTerm(v, 1)
		}
	}
	return total
}

// Dot computes the inner product of per-label coefficients and
// variables, after aligning the coefficients to the variables' index.
func Dot[K comparable](coeffs *series.Series[K, float64], vars *series.Series[K, *mip.Var]) (mip.LinExpr, error) {
	aligned, err := coeffs.Reindex(vars.Index())
	if err != nil {
		return mip.LinExpr{}, err
	}
	var total mip.LinExpr
	for i := 0; i < vars.Len(); i++ {
		if v := vars.ValueAt(i); v != nil {
			total = total.AddTerm(v, aligned.ValueAt(i))
		}
	}
	return total, nil
}

// GroupSum sums expressions by group key. The result's index lists the
// groups in order of first appearance, so repeated runs over the same
// input produce identical output.
func GroupSum[K, G comparable](s *series.Series[K, mip.LinExpr], key func(K) G) (*series.Series[G, mip.LinExpr], error) {
	var order []G
	sums := make(map[G]mip.LinExpr)
	for i := 0; i < s.Len(); i++ {
		g := key(s.Index().At(i))
		if _, ok := sums[g]; !ok {
			order = append(order, g)
		}
		sums[g] = sums[g].Plus(s.ValueAt(i))
	}
	exprs := make([]mip.LinExpr, len(order))
	for i, g := range order {
		exprs[i] = sums[g]
	}
	out, err := series.New(series.NewIndex(order...), exprs)
	if err != nil {
		return nil, err
	}
	return out.Rename(s.Name()), nil
}

// GroupSumVars is GroupSum over a series of variables.
func GroupSumVars[K, G comparable](s *series.Series[K, *mip.Var], key func(K) G) (*series.Series[G, mip.LinExpr], error) {
	return GroupSum(AsExprs(s), key)
}
