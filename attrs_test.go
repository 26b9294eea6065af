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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpseries/lpseries/mip"
	"github.com/lpseries/lpseries/series"
)

func TestGetAttrAligned(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	ub, _ := series.New(ix, []float64{5, 9})
	vars, err := AddVars(m, ix, VarSpec{Name: "x", UB: FromSeries(ub), AutoUpdate: true})
	require.NoError(t, err)

	got, err := GetAttr(vars, "UB")
	require.NoError(t, err)

	assert.True(t, got.Index().Equal(ix))
	assert.Equal(t, []float64{5, 9}, got.Values())
	assert.Equal(t, "UB", got.Name())
}

func TestGetAttrPendingHandles(t *testing.T) {
	m := newTestModel(t)

	vars, _ := AddVars(m, series.NewIndex("a"), VarSpec{})
	_, err := GetAttr(vars, "UB")
	assert.ErrorIs(t, err, mip.ErrPendingUpdate)
}

func TestGetStringAttr(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	vars, _ := AddVars(m, ix, VarSpec{Name: "x", AutoUpdate: true})
	names, err := GetStringAttr(vars, "VarName")
	require.NoError(t, err)

	assert.Equal(t, []string{"x[a]", "x[b]"}, names.Values())
}

func TestSetAttrBroadcastAndSeries(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	vars, _ := AddVars(m, ix, VarSpec{AutoUpdate: true})

	require.NoError(t, SetAttr(vars, "Obj", Scalar(4)))
	objs, _ := GetAttr(vars, "Obj")
	assert.Equal(t, []float64{4, 4}, objs.Values())

	// per-label values given in reversed order
	lb, _ := series.New(series.NewIndex("b", "a"), []float64{2, 1})
	require.NoError(t, SetAttr(vars, "LB", FromSeries(lb)))
	lbs, _ := GetAttr(vars, "LB")
	assert.Equal(t, []float64{1, 2}, lbs.Values())
}

func TestSetAttrRequiresValue(t *testing.T) {
	m := newTestModel(t)
	vars, _ := AddVars(m, series.NewIndex("a"), VarSpec{AutoUpdate: true})

	assert.Error(t, SetAttr(vars, "Obj", Value{}))
}

func TestSetAttrAlignmentFailureWritesNothing(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	vars, _ := AddVars(m, ix, VarSpec{AutoUpdate: true})
	bad, _ := series.New(series.NewIndex("a", "z"), []float64{7, 8})

	err := SetAttr(vars, "Obj", FromSeries(bad))
	require.Error(t, err)

	objs, _ := GetAttr(vars, "Obj")
	assert.Equal(t, []float64{0, 0}, objs.Values())
}

func TestSetAttrReadOnly(t *testing.T) {
	m := newTestModel(t)
	vars, _ := AddVars(m, series.NewIndex("a"), VarSpec{AutoUpdate: true})

	err := SetAttr(vars, "X", Scalar(1))
	var attrErr *mip.AttrError
	assert.ErrorAs(t, err, &attrErr)
}

func TestSetStringAttrVariants(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	vars, _ := AddVars(m, ix, VarSpec{AutoUpdate: true})

	require.NoError(t, SetStringAttr(vars, "VType", "I"))
	types, _ := GetStringAttr(vars, "VType")
	assert.Equal(t, []string{"I", "I"}, types.Values())

	names, _ := series.New(ix, []string{"first", "second"})
	require.NoError(t, SetStringAttrSeries(vars, "VarName", names))
	got, _ := GetStringAttr(vars, "VarName")
	assert.Equal(t, []string{"first", "second"}, got.Values())
}

func TestConstrAttrs(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	vars, _ := AddVars(m, ix, VarSpec{})
	rhs, _ := series.New(ix, []float64{3, 4})
	constrs, err := AddConstrs(m, AsExprs(vars), mip.GreaterEqual, Floats(rhs), ConstrSpec{Name: "c", AutoUpdate: true})
	require.NoError(t, err)

	got, err := GetAttr(constrs, "RHS")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, got.Values())

	senses, err := GetStringAttr(constrs, "Sense")
	require.NoError(t, err)
	assert.Equal(t, []string{">", ">"}, senses.Values())
}

func TestSolutionAttrsRoundTrip(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	demand, _ := series.New(ix, []float64{3, 4})
	x, err := AddVars(m, ix, VarSpec{Name: "x", Obj: Scalar(1)})
	require.NoError(t, err)

	constrs, err := AddVarConstrs(m, x, mip.GreaterEqual, Floats(demand), ConstrSpec{Name: "meet"})
	require.NoError(t, err)

	require.NoError(t, m.Optimize())

	sol, err := GetX(x)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, sol.Values()[0], delta)
	assert.InDelta(t, 4.0, sol.Values()[1], delta)

	slack, err := GetAttr(constrs, "Slack")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, slack.Values()[0], delta)

	pi, err := GetAttr(constrs, "Pi")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pi.Values()[0], delta)
	assert.InDelta(t, 1.0, pi.Values()[1], delta)
}

func TestGetValue(t *testing.T) {
	m := newTestModel(t)
	ix := series.NewIndex("a", "b")

	demand, _ := series.New(ix, []float64{3, 4})
	x, _ := AddVars(m, ix, VarSpec{Name: "x", Obj: Scalar(1)})
	_, err := AddVarConstrs(m, x, mip.GreaterEqual, Floats(demand), ConstrSpec{})
	require.NoError(t, err)
	require.NoError(t, m.Optimize())

	doubled, err := GetValue(Scale(AsExprs(x), 2))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, doubled.Values()[0], delta)
	assert.InDelta(t, 8.0, doubled.Values()[1], delta)
}
