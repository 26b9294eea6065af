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

	"github.com/lpseries/lpseries/mip"
	"github.com/lpseries/lpseries/series"
)

// ConstrSpec configures a bulk constraint creation.
type ConstrSpec struct {
	// Name is the base name; full names are built from the index
	// labels. Empty means the model assigns defaults.
	Name string

	Formatter Formatter

	// AutoUpdate commits the new constraints immediately.
	AutoUpdate bool
}

// AddConstrs creates one constraint per label of the left hand side's
// index, pairing lhs and rhs entries label by label. The rhs must
// cover exactly the lhs labels (any order); constant right hand sides
// are broadcast. All rows are validated before the first constraint is
// created, so a failing call leaves the model untouched.
func AddConstrs[K comparable](m *mip.Model, lhs *series.Series[K, mip.LinExpr], sense mip.Sense, rhs Side, spec ConstrSpec) (*series.Series[K, *mip.Constr], error) {
	ix := lhs.Index()
	senses := make([]mip.Sense, ix.Len())
	for i := range senses {
		senses[i] = sense
	}
	return addConstrs(m, ix, lhs.Values(), senses, rhs, spec)
}

// AddSensedConstrs is AddConstrs with a per-label sense.
func AddSensedConstrs[K comparable](m *mip.Model, lhs *series.Series[K, mip.LinExpr], senses *series.Series[K, mip.Sense], rhs Side, spec ConstrSpec) (*series.Series[K, *mip.Constr], error) {
	ix := lhs.Index()
	aligned, err := senses.Reindex(ix)
	if err != nil {
		return nil, err
	}
	return addConstrs(m, ix, lhs.Values(), aligned.Values(), rhs, spec)
}

// AddVarConstrs is AddConstrs with a series of variables on the left,
// each treated as the expression 1.0 × v.
func AddVarConstrs[K comparable](m *mip.Model, lhs *series.Series[K, *mip.Var], sense mip.Sense, rhs Side, spec ConstrSpec) (*series.Series[K, *mip.Constr], error) {
	return AddConstrs(m, AsExprs(lhs), sense, rhs, spec)
}

// AddFrameConstrs creates one constraint per row of the frame from a
// formula such as "2*x + y <= capacity". Identifiers name frame
// columns; the formula must contain exactly one relational operator
// (<=, == or >=) and both sides must be linear in the frame's variable
// and expression columns. See ParseFormula for the accepted grammar.
func AddFrameConstrs[K comparable](m *mip.Model, f *Frame[K], formula string, spec ConstrSpec) (*series.Series[K, *mip.Constr], error) {
	parsed, err := ParseFormula(formula)
	if err != nil {
		return nil, err
	}

	ix := f.Index()
	n := ix.Len()
	lhs := make([]mip.LinExpr, n)
	senses := make([]mip.Sense, n)
	for i := 0; i < n; i++ {
		l, r, err := parsed.evalRow(f, i)
		if err != nil {
			return nil, err
		}
		lhs[i] = l.Minus(r)
		senses[i] = parsed.sense
	}
	return addConstrs(m, ix, lhs, senses, Constant(0), spec)
}

func addConstrs[K comparable](m *mip.Model, ix *series.Index[K], lhs []mip.LinExpr, senses []mip.Sense, rhs Side, spec ConstrSpec) (*series.Series[K, *mip.Constr], error) {
	if err := ix.CheckUnique(); err != nil {
		return nil, err
	}
	for _, e := range lhs {
		if e.HasNaN() {
			return nil, &MissingDataError{What: "left hand side"}
		}
	}
	right, err := resolveSide(rhs, "rhs", ix)
	if err != nil {
		return nil, err
	}

	// Rows are normalized to expr <sense> constant before any model
	// mutation: variable terms move left, constants move right.
	rows := make([]mip.LinExpr, ix.Len())
	for i := range rows {
		rows[i] = lhs[i].Minus(right[i])
	}
	names := buildNames(spec.Name, ix, spec.Formatter)

	// every row must pass before the first one is added, so a bad
	// sense or a foreign variable cannot leave partial constraints
	for i := range rows {
		if err := m.CheckConstr(rows[i], senses[i], 0, names[i]); err != nil {
			return nil, fmt.Errorf("constraint for label %v: %w", ix.At(i), err)
		}
	}

	constrs := make([]*mip.Constr, ix.Len())
	for i := range constrs {
		c, err := m.AddConstr(rows[i], senses[i], 0, names[i])
		if err != nil {
			return nil, fmt.Errorf("adding constraint for label %v: %w", ix.At(i), err)
		}
		constrs[i] = c
	}
	if spec.AutoUpdate {
		m.Update()
	}

	out, err := series.New(ix, constrs)
	if err != nil {
		return nil, err
	}
	return out.Rename(spec.Name), nil
}
