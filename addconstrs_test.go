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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpseries/lpseries/mip"
	"github.com/lpseries/lpseries/series"
)

const (
	delta = 0.0000001 // acceptable numerical deviation for test results
)

func TestAddConstrsAligned(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	vars, err := AddVars(m, ix, VarSpec{Name: "x"})
	require.NoError(t, err)

	// rhs in reversed label order must be realigned
	rhs, _ := series.New(series.NewIndex("b", "a"), []float64{20, 10})
	constrs, err := AddConstrs(m, AsExprs(vars), mip.LessEqual, Floats(rhs), ConstrSpec{Name: "cap", AutoUpdate: true})
	require.NoError(t, err)

	assert.True(t, constrs.Index().Equal(ix))
	assert.Equal(t, 2, m.NumConstrs())

	ca, _ := constrs.At("a")
	assert.Equal(t, 10.0, ca.RHS())
	assert.Equal(t, mip.LessEqual, ca.Sense())
	assert.Equal(t, "cap[a]", ca.Name())

	cb, _ := constrs.At("b")
	assert.Equal(t, 20.0, cb.RHS())
}

func TestAddConstrsConstantRHS(t *testing.T) {
	m := newTestModel(t)

	vars, _ := AddVars(m, series.NewIndex(0, 1, 2), VarSpec{})
	constrs, err := AddConstrs(m, AsExprs(vars), mip.GreaterEqual, Constant(5), ConstrSpec{AutoUpdate: true})
	require.NoError(t, err)

	for i := 0; i < constrs.Len(); i++ {
		assert.Equal(t, 5.0, constrs.ValueAt(i).RHS())
	}
}

func TestAddConstrsMovesConstantsRight(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a")

	vars, _ := AddVars(m, ix, VarSpec{})
	// x + 3 <= 10 becomes x <= 7
	lhs := AddConst(AsExprs(vars), 3)
	constrs, err := AddConstrs(m, lhs, mip.LessEqual, Constant(10), ConstrSpec{AutoUpdate: true})
	require.NoError(t, err)

	assert.Equal(t, 7.0, constrs.ValueAt(0).RHS())
	row := constrs.ValueAt(0).Row()
	require.Len(t, row.Terms(), 1)
	assert.InDelta(t, 1.0, row.Terms()[0].Coeff, delta)
}

func TestAddConstrsAlignmentFailureLeavesModelUntouched(t *testing.T) {
	m := newTestModel(t)

	vars, _ := AddVars(m, series.NewIndex("a", "b"), VarSpec{})
	rhs, _ := series.New(series.NewIndex("a", "z"), []float64{1, 2})

	_, err := AddConstrs(m, AsExprs(vars), mip.LessEqual, Floats(rhs), ConstrSpec{})
	require.Error(t, err)

	var alignErr *series.AlignmentError
	assert.ErrorAs(t, err, &alignErr)
	assert.Empty(t, m.Constrs())
}

func TestAddConstrsMissingData(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	vars, _ := AddVars(m, ix, VarSpec{})
	rhs, _ := series.New(ix, []float64{1, math.NaN()})

	_, err := AddConstrs(m, AsExprs(vars), mip.LessEqual, Floats(rhs), ConstrSpec{})
	var missing *MissingDataError
	assert.ErrorAs(t, err, &missing)
	assert.Empty(t, m.Constrs())
}

func TestAddSensedConstrs(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("lo", "hi")

	vars, _ := AddVars(m, ix, VarSpec{})
	senses, _ := series.New(ix, []mip.Sense{mip.GreaterEqual, mip.LessEqual})

	constrs, err := AddSensedConstrs(m, AsExprs(vars), senses, Constant(5), ConstrSpec{AutoUpdate: true})
	require.NoError(t, err)

	lo, _ := constrs.At("lo")
	hi, _ := constrs.At("hi")
	assert.Equal(t, mip.GreaterEqual, lo.Sense())
	assert.Equal(t, mip.LessEqual, hi.Sense())
}

func TestAddSensedConstrsInvalidSenseLeavesModelUntouched(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex(0, 1)

	vars, _ := AddVars(m, ix, VarSpec{})
	// only the second row carries the bad sense
	senses, _ := series.New(ix, []mip.Sense{mip.LessEqual, mip.Sense('x')})

	_, err := AddSensedConstrs(m, AsExprs(vars), senses, Constant(1), ConstrSpec{})
	require.Error(t, err)
	assert.Empty(t, m.Constrs())
}

func TestAddConstrsForeignVariableLeavesModelUntouched(t *testing.T) {
	m1 := newTestModel(t)
	m2 := newTestModel(t)
	ix := series.NewIndex("a", "b")

	ours, _ := AddVars(m1, ix, VarSpec{})
	theirs, _ := AddVars(m2, ix, VarSpec{})

	// the first row is fine, the second references another model
	lhs, err := series.New(ix, []mip.LinExpr{
		mip.VarExpr(ours.ValueAt(0)),
		mip.VarExpr(theirs.ValueAt(1)),
	})
	require.NoError(t, err)

	_, err = AddConstrs(m1, lhs, mip.LessEqual, Constant(1), ConstrSpec{})
	require.Error(t, err)
	assert.Empty(t, m1.Constrs())
}

func TestAddVarConstrsExprRHS(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	x, _ := AddVars(m, ix, VarSpec{Name: "x"})
	y, _ := AddVars(m, ix, VarSpec{Name: "y"})

	constrs, err := AddVarConstrs(m, x, mip.LessEqual, Exprs(Scale(AsExprs(y), 2)), ConstrSpec{AutoUpdate: true})
	require.NoError(t, err)

	// x - 2y <= 0 per row
	row := constrs.ValueAt(0).Row()
	assert.Len(t, row.Terms(), 2)
	assert.Equal(t, 0.0, constrs.ValueAt(0).RHS())
}

func TestBulkBinarySelection(t *testing.T) {
	m, err := mip.NewModel("pick", mip.Maximize)
	require.NoError(t, err)

	items := series.NewIndex("a", "b", "c", "d", "e")
	value, _ := series.New(items, []float64{5, 1, 4, 2, 3})

	pick, err := AddVars(m, items, VarSpec{Name: "pick", Type: mip.Binary, Obj: FromSeries(value)})
	require.NoError(t, err)

	_, err = m.AddConstr(SumVars(pick), mip.Equal, 3, "choose3")
	require.NoError(t, err)

	require.NoError(t, m.Optimize())

	obj, err := m.ObjVal()
	require.NoError(t, err)
	assert.InDelta(t, 12.0, obj, delta)

	chosen, err := GetX(pick)
	require.NoError(t, err)

	total := 0.0
	for i := 0; i < chosen.Len(); i++ {
		total += chosen.ValueAt(i)
	}
	assert.InDelta(t, 3.0, total, delta)

	for _, label := range []string{"a", "c", "e"} {
		v, _ := chosen.At(label)
		assert.InDelta(t, 1.0, v, delta, "expected %s to be picked", label)
	}
}
