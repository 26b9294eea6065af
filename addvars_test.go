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

func newTestModel(t *testing.T) *mip.Model {
	t.Helper()

	m, err := mip.NewModel("test", mip.Minimize)
	require.NoError(t, err)
	return m
}

func TestAddVarsReturnsAlignedHandles(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b", "c")

	vars, err := AddVars(m, ix, VarSpec{Name: "x", AutoUpdate: true})
	require.NoError(t, err)

	assert.True(t, vars.Index().Equal(ix))
	assert.Equal(t, 3, m.NumVars())

	seen := make(map[*mip.Var]bool)
	for i := 0; i < vars.Len(); i++ {
		v := vars.ValueAt(i)
		require.NotNil(t, v)
		assert.False(t, seen[v], "handles must be distinct")
		seen[v] = true
	}
}

func TestAddVarsDefaults(t *testing.T) {
	m := newTestModel(t)

	vars, err := AddVars(m, series.NewIndex(0, 1), VarSpec{AutoUpdate: true})
	require.NoError(t, err)

	v := vars.ValueAt(0)
	lb, ub := v.Bounds()
	assert.Equal(t, 0.0, lb)
	assert.True(t, math.IsInf(ub, 1))
	assert.Equal(t, 0.0, v.Obj())
	assert.Equal(t, mip.Continuous, v.Type())
	// unnamed variables get model defaults
	assert.Equal(t, "C0", v.Name())
}

func TestAddVarsScalarAndSeriesInputs(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	// series given in reversed label order must be realigned
	ub, err := series.New(series.NewIndex("b", "a"), []float64{20, 10})
	require.NoError(t, err)

	vars, err := AddVars(m, ix, VarSpec{
		Name:       "x",
		LB:         Scalar(1),
		UB:         FromSeries(ub),
		Obj:        Scalar(3),
		AutoUpdate: true,
	})
	require.NoError(t, err)

	va, _ := vars.At("a")
	lb, hi := va.Bounds()
	assert.Equal(t, 1.0, lb)
	assert.Equal(t, 10.0, hi)

	vb, _ := vars.At("b")
	_, hi = vb.Bounds()
	assert.Equal(t, 20.0, hi)
	assert.Equal(t, 3.0, vb.Obj())
}

func TestAddVarsAlignmentFailureLeavesModelUntouched(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	lb, _ := series.New(series.NewIndex("a", "z"), []float64{1, 2})
	_, err := AddVars(m, ix, VarSpec{LB: FromSeries(lb)})
	require.Error(t, err)

	var alignErr *series.AlignmentError
	assert.ErrorAs(t, err, &alignErr)
	assert.Empty(t, m.Vars())
}

func TestAddVarsMissingDataLeavesModelUntouched(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	obj, _ := series.New(ix, []float64{1, math.NaN()})
	_, err := AddVars(m, ix, VarSpec{Obj: FromSeries(obj)})
	require.Error(t, err)

	var missing *MissingDataError
	assert.ErrorAs(t, err, &missing)
	assert.Empty(t, m.Vars())
}

func TestAddVarsRejectsDuplicateLabels(t *testing.T) {
	m := newTestModel(t)

	_, err := AddVars(m, series.NewIndex("a", "a"), VarSpec{})
	require.Error(t, err)

	var alignErr *series.AlignmentError
	assert.ErrorAs(t, err, &alignErr)
	assert.Empty(t, m.Vars())
}

func TestAddVarsNamesFromIndex(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("jan", "feb")

	vars, err := AddVars(m, ix, VarSpec{Name: "make", AutoUpdate: true})
	require.NoError(t, err)

	assert.Equal(t, "make[jan]", vars.ValueAt(0).Name())
	assert.Equal(t, "make[feb]", vars.ValueAt(1).Name())
	assert.Equal(t, "make", vars.Name())
}

func TestAddVarsNameSeries(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex(1, 2)

	names, _ := series.New(ix, []string{"first", "second"})
	vars, err := AddVars(m, ix, VarSpec{NameSeries: names, AutoUpdate: true})
	require.NoError(t, err)

	assert.Equal(t, "first", vars.ValueAt(0).Name())
	assert.Equal(t, "second", vars.ValueAt(1).Name())

	// empty names are missing data
	bad, _ := series.New(ix, []string{"", "x"})
	_, err = AddVars(m, ix, VarSpec{NameSeries: bad})
	var missing *MissingDataError
	assert.ErrorAs(t, err, &missing)
}

func TestAddVarsBinaryType(t *testing.T) {
	m := newTestModel(t)

	vars, err := AddVars(m, series.NewIndex("a"), VarSpec{Type: mip.Binary, AutoUpdate: true})
	require.NoError(t, err)

	v := vars.ValueAt(0)
	assert.Equal(t, mip.Binary, v.Type())
	lb, ub := v.Bounds()
	assert.Equal(t, 0.0, lb)
	assert.Equal(t, 1.0, ub)
}

func TestAddVarsInvalidType(t *testing.T) {
	m := newTestModel(t)

	_, err := AddVars(m, series.NewIndex("a"), VarSpec{Type: mip.VarType('Q')})
	assert.Error(t, err)
}

func TestAddVarsPendingWithoutAutoUpdate(t *testing.T) {
	m := newTestModel(t)

	vars, err := AddVars(m, series.NewIndex("a"), VarSpec{Name: "x"})
	require.NoError(t, err)

	_, err = vars.ValueAt(0).FloatAttr("LB")
	assert.ErrorIs(t, err, mip.ErrPendingUpdate)

	m.Update()
	_, err = vars.ValueAt(0).FloatAttr("LB")
	assert.NoError(t, err)
}

func TestAddSeriesVars(t *testing.T) {
	m := newTestModel(t)

	demand, _ := series.New(series.NewIndex("a", "b"), []float64{5, 7})
	vars, err := AddSeriesVars(m, demand, VarSpec{Name: "x", AutoUpdate: true})
	require.NoError(t, err)

	assert.True(t, vars.Index().Equal(demand.Index()))
}

func TestAddFrameVarsColumnRefs(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	cap_, _ := series.New(ix, []float64{10, 20})
	f := NewFrame(ix)
	require.NoError(t, f.AddFloats("capacity", cap_))

	vars, err := AddFrameVars(m, f, VarSpec{Name: "x", UB: Column("capacity"), AutoUpdate: true})
	require.NoError(t, err)

	_, ub := vars.ValueAt(1).Bounds()
	assert.Equal(t, 20.0, ub)

	// unknown column
	_, err = AddFrameVars(m, f, VarSpec{UB: Column("nope")})
	var colErr *ColumnError
	assert.ErrorAs(t, err, &colErr)
}

func TestColumnRefRequiresFrame(t *testing.T) {
	m := newTestModel(t)

	_, err := AddVars(m, series.NewIndex("a"), VarSpec{UB: Column("capacity")})
	assert.Error(t, err)
}

func BenchmarkAddVars(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m, _ := mip.NewModel("bench", mip.Minimize)
		ix := series.RangeIndex(1000)
		if _, err := AddVars(m, ix, VarSpec{Name: "x"}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAddConstrs(b *testing.B) {
	m, _ := mip.NewModel("bench", mip.Minimize)
	ix := series.RangeIndex(1000)
	vars, _ := AddVars(m, ix, VarSpec{Name: "x"})
	lhs := AsExprs(vars)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := AddConstrs(m, lhs, mip.LessEqual, Constant(1), ConstrSpec{}); err != nil {
			b.Fatal(err)
		}
	}
}
