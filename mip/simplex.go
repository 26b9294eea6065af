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
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// The solver translates the model into the standard form expected by
// gonum's simplex (min c'x, Ax = b, x >= 0):
//
//   - a variable with a finite lower bound is shifted: x = lb + t
//   - a variable bounded only from above is mirrored: x = ub - t
//   - a free variable is split: x = t+ - t-
//
// Finite upper bounds on shifted variables become inequality rows,
// inequality rows get slack columns. Row provenance is tracked so that
// duals can be mapped back to the model's constraints.

type bound struct {
	lo, hi float64
}

type stdCol struct {
	orig int
	sign float64
}

type rowOrigin struct {
	constr  int
	negated bool
	// bound rows come from finite upper bounds, not model constraints
	bound bool
}

type stdForm struct {
	cols []stdCol
	base []float64
	c    []float64

	// inequality rows: grows[i] · t <= gh[i]
	grows   [][]float64
	gh      []float64
	gorigin []rowOrigin

	// equality rows: arows[i] · t = ah[i]
	arows   [][]float64
	ah      []float64
	aorigin []rowOrigin
}

var errBoundsConflict = errors.New("conflicting variable bounds")

// collectBounds snapshots the committed variables' bounds.
func (m *Model) collectBounds() []bound {
	bounds := make([]bound, m.liveVars)
	for i := 0; i < m.liveVars; i++ {
		bounds[i] = bound{lo: m.vars[i].lb, hi: m.vars[i].ub}
	}
	return bounds
}

// buildStandard translates committed variables and constraints into
// standard form under the given (possibly tightened) bounds.
func (m *Model) buildStandard(bounds []bound) (*stdForm, error) {
	f := &stdForm{base: make([]float64, m.liveVars)}

	// column index of the first transformed column per original var
	firstCol := make([]int, m.liveVars)

	for j := 0; j < m.liveVars; j++ {
		v := m.vars[j]
		lo, hi := bounds[j].lo, bounds[j].hi
		if lo > hi+m.tol {
			return nil, errBoundsConflict
		}
		obj := v.obj
		if m.dir == Maximize {
			obj = -obj
		}
		firstCol[j] = len(f.cols)
		switch {
		case !math.IsInf(lo, -1):
			// x = lo + t, t >= 0
			f.base[j] = lo
			f.cols = append(f.cols, stdCol{orig: j, sign: 1})
			f.c = append(f.c, obj)
			if !math.IsInf(hi, 1) {
				row := make([]float64, 0)
				f.grows = append(f.grows, row)
				f.gh = append(f.gh, hi-lo)
				f.gorigin = append(f.gorigin, rowOrigin{bound: true})
			}
		case !math.IsInf(hi, 1):
			// x = hi - t, t >= 0
			f.base[j] = hi
			f.cols = append(f.cols, stdCol{orig: j, sign: -1})
			f.c = append(f.c, -obj)
		default:
			// free: x = t+ - t-
			f.cols = append(f.cols, stdCol{orig: j, sign: 1}, stdCol{orig: j, sign: -1})
			f.c = append(f.c, obj, -obj)
		}
	}

	ncols := len(f.cols)

	// fill in the upper-bound rows now that the column count is known
	gi := 0
	for j := 0; j < m.liveVars; j++ {
		lo, hi := bounds[j].lo, bounds[j].hi
		if !math.IsInf(lo, -1) && !math.IsInf(hi, 1) {
			row := make([]float64, ncols)
			row[firstCol[j]] = 1
			f.grows[gi] = row
			gi++
		}
	}

	for k := 0; k < m.liveConstrs; k++ {
		c := m.constrs[k]
		row := make([]float64, ncols)
		rhs := c.rhs
		for _, t := range c.terms {
			j := t.Var.index
			rhs -= t.Coeff * f.base[j]
			ci := firstCol[j]
			row[ci] += t.Coeff * f.cols[ci].sign
			if ci+1 < ncols && f.cols[ci+1].orig == j {
				row[ci+1] += t.Coeff * f.cols[ci+1].sign
			}
		}
		switch c.sense {
		case LessEqual:
			f.grows = append(f.grows, row)
			f.gh = append(f.gh, rhs)
			f.gorigin = append(f.gorigin, rowOrigin{constr: k})
		case GreaterEqual:
			neg := make([]float64, ncols)
			for i, a := range row {
				neg[i] = -a
			}
			f.grows = append(f.grows, neg)
			f.gh = append(f.gh, -rhs)
			f.gorigin = append(f.gorigin, rowOrigin{constr: k, negated: true})
		case Equal:
			f.arows = append(f.arows, row)
			f.ah = append(f.ah, rhs)
			f.aorigin = append(f.aorigin, rowOrigin{constr: k})
		}
	}

	return f, nil
}

// equalityForm appends slack columns to the inequality rows and stacks
// everything into the single equality system required by lp.Simplex.
func (f *stdForm) equalityForm() (c []float64, a *mat.Dense, b []float64, origins []rowOrigin) {
	ncols := len(f.cols)
	ng := len(f.grows)
	na := len(f.arows)
	nrows := ng + na
	if nrows == 0 {
		return nil, nil, nil, nil
	}

	total := ncols + ng
	c = make([]float64, total)
	copy(c, f.c)

	a = mat.NewDense(nrows, total, nil)
	b = make([]float64, nrows)
	origins = make([]rowOrigin, nrows)

	for i, row := range f.grows {
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, ncols+i, 1)
		b[i] = f.gh[i]
		origins[i] = f.gorigin[i]
	}
	for i, row := range f.arows {
		for j, v := range row {
			a.Set(ng+i, j, v)
		}
		b[ng+i] = f.ah[i]
		origins[ng+i] = f.aorigin[i]
	}
	return c, a, b, origins
}

// relaxation is the solved LP relaxation of the model under a node's
// bounds, in the original variable space. zmin is the objective in
// minimization direction, including the base offset of the standard
// form, so values from nodes with different bounds are comparable.
type relaxation struct {
	x    []float64
	zmin float64

	form    *stdForm
	eqc     []float64
	eqa     *mat.Dense
	eqb     []float64
	origins []rowOrigin
}

// solveRelaxation solves the LP relaxation under the given bounds.
func (m *Model) solveRelaxation(bounds []bound) (*relaxation, error) {
	f, err := m.buildStandard(bounds)
	if err != nil {
		return nil, ErrModelInfeasible
	}

	c, a, b, origins := f.equalityForm()

	var t []float64
	var zmin float64
	if a == nil {
		// no rows at all: each column sits at zero unless its cost is
		// negative, in which case the problem is unbounded
		for _, cj := range f.c {
			if cj < 0 {
				return nil, ErrModelUnbounded
			}
		}
		t = make([]float64, len(f.cols))
	} else {
		z, x, err := lp.Simplex(c, a, b, m.tol, nil)
		if err != nil {
			return nil, mapSimplexError(err)
		}
		zmin = z
		t = x
	}

	x := make([]float64, len(f.base))
	copy(x, f.base)
	for i, col := range f.cols {
		x[col.orig] += col.sign * t[i]
	}

	// the simplex objective is taken over the shifted columns; add the
	// contribution of the bases so zmin is absolute, not per-node
	for j, base := range f.base {
		obj := m.vars[j].obj
		if m.dir == Maximize {
			obj = -obj
		}
		zmin += obj * base
	}

	return &relaxation{x: x, zmin: zmin, form: f, eqc: c, eqa: a, eqb: b, origins: origins}, nil
}

func mapSimplexError(err error) error {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return ErrModelInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return ErrModelUnbounded
	default:
		return ErrNumericalFailure
	}
}

// computeDuals recovers constraint duals by solving the explicit dual
// of the equality form: max b'y subject to A'y <= c, y free. The dual
// is itself converted to standard form (y split into u - w, slack s)
// and handed to the same simplex. Returns one value per committed
// constraint, in the model's optimization direction.
func (m *Model) computeDuals(rel *relaxation) ([]float64, error) {
	duals := make([]float64, m.liveConstrs)
	if rel.eqa == nil {
		return duals, nil
	}

	nrows, ncols := rel.eqa.Dims()
	// variables: u (nrows), w (nrows), s (ncols)
	total := 2*nrows + ncols
	c := make([]float64, total)
	for i := 0; i < nrows; i++ {
		c[i] = -rel.eqb[i]
		c[nrows+i] = rel.eqb[i]
	}

	a := mat.NewDense(ncols, total, nil)
	b := make([]float64, ncols)
	for j := 0; j < ncols; j++ {
		for i := 0; i < nrows; i++ {
			aij := rel.eqa.At(i, j)
			a.Set(j, i, aij)
			a.Set(j, nrows+i, -aij)
		}
		a.Set(j, 2*nrows+j, 1)
		b[j] = rel.eqc[j]
	}

	_, y, err := lp.Simplex(c, a, b, m.tol, nil)
	if err != nil {
		return nil, mapSimplexError(err)
	}

	for i, origin := range rel.origins {
		if origin.bound {
			continue
		}
		pi := y[i] - y[nrows+i]
		if origin.negated {
			pi = -pi
		}
		if m.dir == Maximize {
			pi = -pi
		}
		duals[origin.constr] = pi
	}
	return duals, nil
}

// computeRedcosts derives reduced costs from the duals:
// rc_j = obj_j − Σ_k pi_k a_kj.
func (m *Model) computeRedcosts(duals []float64) []float64 {
	rc := make([]float64, m.liveVars)
	for j := 0; j < m.liveVars; j++ {
		rc[j] = m.vars[j].obj
	}
	for k := 0; k < m.liveConstrs; k++ {
		for _, t := range m.constrs[k].terms {
			rc[t.Var.index] -= duals[k] * t.Coeff
		}
	}
	return rc
}
