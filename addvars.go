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

// VarSpec configures a bulk variable creation. The zero value creates
// continuous, unnamed variables with bounds [0, +inf) and zero
// objective coefficient, matching the defaults of the underlying
// model.
type VarSpec struct {
	// Name is the base name; full names are built from the index
	// labels (see Formatter). Empty means the model assigns defaults.
	Name string

	// NameSeries gives every variable an explicit name, overriding
	// Name-based formatting. It must be a *series.Series[K, string]
	// aligned with the target index.
	NameSeries any

	// LB, UB and Obj accept Scalar, FromSeries or, for the
	// frame-based calls, Column values.
	LB  Value
	UB  Value
	Obj Value

	// Type applies to all created variables. Per-label types are
	// deliberately not supported in the frame form: a one-character
	// type string would be ambiguous with a column name.
	Type mip.VarType

	Formatter Formatter

	// AutoUpdate commits the new variables immediately, so names and
	// bounds can be inspected right after the call. Off by default:
	// frequent updates are wasted work when building large models.
	AutoUpdate bool
}

// AddVars creates one decision variable per label of the index and
// returns them as a series on that same index, in the same order. The
// index must be free of duplicate labels, and every series-valued
// input must align with it exactly; all inputs are validated before
// the first variable is created, so a failing call leaves the model
// untouched.
func AddVars[K comparable](m *mip.Model, ix *series.Index[K], spec VarSpec) (*series.Series[K, *mip.Var], error) {
	return addVars(m, ix, nil, spec)
}

// AddSeriesVars creates one variable per label of the series' index.
// The series' values are not consulted, only its labels.
func AddSeriesVars[K comparable, V any](m *mip.Model, s *series.Series[K, V], spec VarSpec) (*series.Series[K, *mip.Var], error) {
	return addVars(m, s.Index(), nil, spec)
}

// AddFrameVars creates one variable per row of the frame. LB, UB and
// Obj may reference frame columns via Column.
func AddFrameVars[K comparable](m *mip.Model, f *Frame[K], spec VarSpec) (*series.Series[K, *mip.Var], error) {
	return addVars(m, f.Index(), f, spec)
}

func addVars[K comparable](m *mip.Model, ix *series.Index[K], frame *Frame[K], spec VarSpec) (*series.Series[K, *mip.Var], error) {
	if err := ix.CheckUnique(); err != nil {
		return nil, err
	}

	vtype := spec.Type
	if vtype == 0 {
		vtype = mip.Continuous
	}
	switch vtype {
	case mip.Continuous, mip.Binary, mip.Integer:
	default:
		return nil, fmt.Errorf("invalid variable type %q", byte(vtype))
	}

	lb, err := resolveValue(spec.LB, "lb", ix, frame, 0)
	if err != nil {
		return nil, err
	}
	ub, err := resolveValue(spec.UB, "ub", ix, frame, math.Inf(1))
	if err != nil {
		return nil, err
	}
	obj, err := resolveValue(spec.Obj, "obj", ix, frame, 0)
	if err != nil {
		return nil, err
	}

	names, err := resolveNames(spec, ix)
	if err != nil {
		return nil, err
	}

	vars := make([]*mip.Var, ix.Len())
	for i := range vars {
		v, err := m.AddVar(lb[i], ub[i], obj[i], vtype, names[i])
		if err != nil {
			return nil, fmt.Errorf("adding variable for label %v: %w", ix.At(i), err)
		}
		vars[i] = v
	}
	if spec.AutoUpdate {
		m.Update()
	}

	out, err := series.New(ix, vars)
	if err != nil {
		return nil, err
	}
	return out.Rename(spec.Name), nil
}

func resolveNames[K comparable](spec VarSpec, ix *series.Index[K]) ([]string, error) {
	if spec.NameSeries == nil {
		return buildNames(spec.Name, ix, spec.Formatter), nil
	}
	s, ok := spec.NameSeries.(*series.Series[K, string])
	if !ok {
		return nil, fmt.Errorf("'name': series labels do not match the target index type")
	}
	aligned, err := s.Reindex(ix)
	if err != nil {
		return nil, err
	}
	names := aligned.Values()
	for _, n := range names {
		if n == "" {
			return nil, &MissingDataError{What: "'name' series"}
		}
	}
	return names, nil
}
