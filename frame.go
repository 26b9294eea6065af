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

// Frame is a collection of named columns sharing one index. Columns
// hold numbers, variable handles or expressions; the frame-based bulk
// operations resolve column references and formula identifiers against
// it. Missing cells (NaN numbers, nil handles) are representable but
// rejected by the bulk creators.
type Frame[K comparable] struct {
	index *series.Index[K]
	order []string
	cols  map[string]frameColumn
}

// frameColumn is the internal per-position view of a column: every
// column kind can yield an expression per row.
type frameColumn interface {
	exprAt(i int) (mip.LinExpr, bool)
}

type floatColumn []float64

func (c floatColumn) exprAt(i int) (mip.LinExpr, bool) {
	if math.IsNaN(c[i]) {
		return mip.LinExpr{}, false
	}
	return mip.Constant(c[i]), true
}

type varColumn []*mip.Var

func (c varColumn) exprAt(i int) (mip.LinExpr, bool) {
	if c[i] == nil {
		return mip.LinExpr{}, false
	}
	return mip.VarExpr(c[i]), true
}

type exprColumn []mip.LinExpr

func (c exprColumn) exprAt(i int) (mip.LinExpr, bool) {
	if c[i].HasNaN() {
		return mip.LinExpr{}, false
	}
	return c[i], true
}

// NewFrame creates an empty frame over the given index.
func NewFrame[K comparable](ix *series.Index[K]) *Frame[K] {
	return &Frame[K]{index: ix, cols: make(map[string]frameColumn)}
}

func (f *Frame[K]) Index() *series.Index[K] {
	return f.index
}

// Columns returns the column names in insertion order.
func (f *Frame[K]) Columns() []string {
	return append([]string(nil), f.order...)
}

func (f *Frame[K]) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// clone returns a shallow copy sharing column data, used by the
// chaining helpers so that the input frame stays untouched.
func (f *Frame[K]) clone() *Frame[K] {
	out := &Frame[K]{
		index: f.index,
		order: append([]string(nil), f.order...),
		cols:  make(map[string]frameColumn, len(f.cols)+1),
	}
	for name, col := range f.cols {
		out.cols[name] = col
	}
	return out
}

func (f *Frame[K]) add(name string, col frameColumn) error {
	if name == "" {
		return fmt.Errorf("column name must not be empty")
	}
	if _, ok := f.cols[name]; ok {
		return fmt.Errorf("column %q already exists", name)
	}
	f.cols[name] = col
	f.order = append(f.order, name)
	return nil
}

// AddFloats adds a numeric column, aligning the series to the frame's
// index.
func (f *Frame[K]) AddFloats(name string, s *series.Series[K, float64]) error {
	aligned, err := s.Reindex(f.index)
	if err != nil {
		return err
	}
	return f.add(name, floatColumn(aligned.Values()))
}

// AddVarCol adds a column of variable handles.
func (f *Frame[K]) AddVarCol(name string, s *series.Series[K, *mip.Var]) error {
	aligned, err := s.Reindex(f.index)
	if err != nil {
		return err
	}
	return f.add(name, varColumn(aligned.Values()))
}

// AddExprCol adds a column of linear expressions.
func (f *Frame[K]) AddExprCol(name string, s *series.Series[K, mip.LinExpr]) error {
	aligned, err := s.Reindex(f.index)
	if err != nil {
		return err
	}
	return f.add(name, exprColumn(aligned.Values()))
}

// Float64Col returns a numeric column as a series. Referencing a
// non-numeric column is an error.
func (f *Frame[K]) Float64Col(name string) (*series.Series[K, float64], error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, &ColumnError{Column: name}
	}
	fc, ok := col.(floatColumn)
	if !ok {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	s, err := series.New(f.index, fc)
	if err != nil {
		return nil, err
	}
	return s.Rename(name), nil
}

// VarCol returns a column of variable handles as a series.
func (f *Frame[K]) VarCol(name string) (*series.Series[K, *mip.Var], error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, &ColumnError{Column: name}
	}
	vc, ok := col.(varColumn)
	if !ok {
		return nil, fmt.Errorf("column %q does not hold variables", name)
	}
	s, err := series.New(f.index, vc)
	if err != nil {
		return nil, err
	}
	return s.Rename(name), nil
}

// ExprCol returns any column as a series of expressions: numbers become
// constants and variables become 1.0 × v terms. Missing cells yield a
// *MissingDataError.
func (f *Frame[K]) ExprCol(name string) (*series.Series[K, mip.LinExpr], error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, &ColumnError{Column: name}
	}
	exprs := make([]mip.LinExpr, f.index.Len())
	for i := range exprs {
		e, ok := col.exprAt(i)
		if !ok {
			return nil, &MissingDataError{What: fmt.Sprintf("column %q", name)}
		}
		exprs[i] = e
	}
	s, err := series.New(f.index, exprs)
	if err != nil {
		return nil, err
	}
	return s.Rename(name), nil
}

// WithVars adds one variable per row (see AddFrameVars) and returns a
// new frame with the variables appended as column spec.Name. The
// receiver is left unchanged.
func (f *Frame[K]) WithVars(m *mip.Model, spec VarSpec) (*Frame[K], error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("WithVars requires a name for the appended column")
	}
	vars, err := AddFrameVars(m, f, spec)
	if err != nil {
		return nil, err
	}
	out := f.clone()
	if err := out.add(spec.Name, varColumn(vars.Values())); err != nil {
		return nil, err
	}
	return out, nil
}

// WithConstrs adds one constraint per row from a formula (see
// AddFrameConstrs) and returns a new frame with the constraints
// appended as column spec.Name. The receiver is left unchanged.
func (f *Frame[K]) WithConstrs(m *mip.Model, formula string, spec ConstrSpec) (*Frame[K], error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("WithConstrs requires a name for the appended column")
	}
	constrs, err := AddFrameConstrs(m, f, formula, spec)
	if err != nil {
		return nil, err
	}
	out := f.clone()
	if err := out.add(spec.Name, constrColumn(constrs.Values())); err != nil {
		return nil, err
	}
	return out, nil
}

// constrColumn stores created constraint handles when chaining; it
// cannot appear in expressions.
type constrColumn []*mip.Constr

func (c constrColumn) exprAt(i int) (mip.LinExpr, bool) {
	return mip.LinExpr{}, false
}

// ConstrCol returns a column of constraint handles as a series.
func (f *Frame[K]) ConstrCol(name string) (*series.Series[K, *mip.Constr], error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, &ColumnError{Column: name}
	}
	cc, ok := col.(constrColumn)
	if !ok {
		return nil, fmt.Errorf("column %q does not hold constraints", name)
	}
	s, err := series.New(f.index, cc)
	if err != nil {
		return nil, err
	}
	return s.Rename(name), nil
}
