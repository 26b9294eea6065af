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

/*
Package lpseries builds optimization models from labeled data.

It sits between the series containers of package series and the solver
of package mip: bulk operations create one variable or constraint per
index label, keep the handles on the same index in the same order, and
read solution attributes back as aligned series. Inputs given as series
are matched by label, never by position; a label-set mismatch aborts
the operation before the model is touched.

A small production planning example:

	periods := series.NewIndex("jan", "feb", "mar")
	demand, _ := series.New(periods, []float64{30, 40, 20})

	m, _ := mip.NewModel("plan", mip.Minimize)
	make_, _ := lpseries.AddVars(m, periods, lpseries.VarSpec{Name: "make", Obj: lpseries.Scalar(2)})
	_, _ = lpseries.AddVarConstrs(m, make_, mip.GreaterEqual, lpseries.Floats(demand), lpseries.ConstrSpec{Name: "meet"})

	if err := m.Optimize(); err != nil {
		// handle infeasibility etc.
	}
	made, _ := lpseries.GetX(make_)

Frames bundle several aligned columns, and constraints over them can be
written as formulas:

	f := lpseries.NewFrame(periods)
	_ = f.AddFloats("capacity", capacity)
	f, _ = f.WithVars(m, lpseries.VarSpec{Name: "x"})
	f, _ = f.WithConstrs(m, "x <= capacity", lpseries.ConstrSpec{Name: "cap"})
*/
package lpseries
