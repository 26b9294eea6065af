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

// GetAttr reads a numeric attribute from every handle in the series
// and returns the values on the same index, in the same order. The
// result is named after the attribute. Attribute errors (unknown
// attribute, unsolved model, pending update) are wrapped with the
// offending label only; errors.Is and errors.As still match the
// underlying error.
func GetAttr[K comparable, H mip.Handle](s *series.Series[K, H], attr string) (*series.Series[K, float64], error) {
	out := make([]float64, s.Len())
	for i := 0; i < s.Len(); i++ {
		v, err := s.ValueAt(i).FloatAttr(attr)
		if err != nil {
			return nil, fmt.Errorf("reading %s of %v: %w", attr, s.Index().At(i), err)
		}
		out[i] = v
	}
	res, err := series.New(s.Index(), out)
	if err != nil {
		return nil, err
	}
	return res.Rename(attr), nil
}

// GetStringAttr reads a string attribute from every handle in the
// series, aligned like GetAttr.
func GetStringAttr[K comparable, H mip.Handle](s *series.Series[K, H], attr string) (*series.Series[K, string], error) {
	out := make([]string, s.Len())
	for i := 0; i < s.Len(); i++ {
		v, err := s.ValueAt(i).StringAttr(attr)
		if err != nil {
			return nil, fmt.Errorf("reading %s of %v: %w", attr, s.Index().At(i), err)
		}
		out[i] = v
	}
	res, err := series.New(s.Index(), out)
	if err != nil {
		return nil, err
	}
	return res.Rename(attr), nil
}

// SetAttr writes a numeric attribute on every handle in the series.
// Scalars broadcast; series values are aligned to the handles' index
// first, and the whole write is rejected before the first handle is
// touched if alignment fails or values are missing.
func SetAttr[K comparable, H mip.Handle](s *series.Series[K, H], attr string, v Value) error {
	if v.kind == valueDefault {
		return fmt.Errorf("setting %s: no value given", attr)
	}
	values, err := resolveValue(v, attr, s.Index(), nil, 0)
	if err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		if err := s.ValueAt(i).SetFloatAttr(attr, values[i]); err != nil {
			return fmt.Errorf("setting %s of %v: %w", attr, s.Index().At(i), err)
		}
	}
	return nil
}

// SetStringAttr broadcasts one string to every handle in the series.
func SetStringAttr[K comparable, H mip.Handle](s *series.Series[K, H], attr, value string) error {
	for i := 0; i < s.Len(); i++ {
		if err := s.ValueAt(i).SetStringAttr(attr, value); err != nil {
			return fmt.Errorf("setting %s of %v: %w", attr, s.Index().At(i), err)
		}
	}
	return nil
}

// SetStringAttrSeries writes per-label strings, aligned to the
// handles' index first.
func SetStringAttrSeries[K comparable, H mip.Handle](s *series.Series[K, H], attr string, values *series.Series[K, string]) error {
	aligned, err := values.Reindex(s.Index())
	if err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		if err := s.ValueAt(i).SetStringAttr(attr, aligned.ValueAt(i)); err != nil {
			return fmt.Errorf("setting %s of %v: %w", attr, s.Index().At(i), err)
		}
	}
	return nil
}

// GetValue evaluates every expression in the series at the model's
// current solution.
func GetValue[K comparable](s *series.Series[K, mip.LinExpr]) (*series.Series[K, float64], error) {
	out := make([]float64, s.Len())
	for i := 0; i < s.Len(); i++ {
		v, err := s.ValueAt(i).Value()
		if err != nil {
			return nil, fmt.Errorf("evaluating expression at %v: %w", s.Index().At(i), err)
		}
		out[i] = v
	}
	res, err := series.New(s.Index(), out)
	if err != nil {
		return nil, err
	}
	return res.Rename(s.Name()), nil
}

// GetX is shorthand for reading solution values of a variable series.
func GetX[K comparable](s *series.Series[K, *mip.Var]) (*series.Series[K, float64], error) {
	return GetAttr(s, "X")
}
