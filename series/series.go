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

package series

import "fmt"

// Series is an ordered mapping from the labels of an Index to values.
// The index is shared, not copied; values are owned by the series.
type Series[K comparable, V any] struct {
	index  *Index[K]
	values []V
	name   string
}

// New builds a series over the given index. The number of values must
// match the index length.
func New[K comparable, V any](ix *Index[K], values []V) (*Series[K, V], error) {
	if len(values) != ix.Len() {
		return nil, fmt.Errorf("series length %d does not match index length %d", len(values), ix.Len())
	}
	return &Series[K, V]{index: ix, values: append([]V(nil), values...)}, nil
}

// Fill builds a series holding the same value for every label.
func Fill[K comparable, V any](ix *Index[K], value V) *Series[K, V] {
	values := make([]V, ix.Len())
	for i := range values {
		values[i] = value
	}
	return &Series[K, V]{index: ix, values: values}
}

// Build constructs a series by calling f for each label in index order.
func Build[K comparable, V any](ix *Index[K], f func(label K) V) *Series[K, V] {
	values := make([]V, ix.Len())
	for i := range values {
		values[i] = f(ix.At(i))
	}
	return &Series[K, V]{index: ix, values: values}
}

func (s *Series[K, V]) Index() *Index[K] {
	return s.index
}

func (s *Series[K, V]) Len() int {
	return s.index.Len()
}

func (s *Series[K, V]) Name() string {
	return s.name
}

// Rename returns a shallow copy of the series with the given name.
func (s *Series[K, V]) Rename(name string) *Series[K, V] {
	out := *s
	out.name = name
	return &out
}

// At returns the value stored for a label. For an index with duplicate
// labels, the first occurrence wins.
func (s *Series[K, V]) At(label K) (V, bool) {
	i, ok := s.index.Position(label)
	if !ok {
		var zero V
		return zero, false
	}
	return s.values[i], true
}

// ValueAt returns the value at position i in index order.
func (s *Series[K, V]) ValueAt(i int) V {
	return s.values[i]
}

// Values returns a copy of the values in index order.
func (s *Series[K, V]) Values() []V {
	return append([]V(nil), s.values...)
}

// Reindex returns the series' values reordered to the target index.
// The label sets must match exactly; a mismatch or duplicate labels on
// either side yields an *AlignmentError. When the orders already agree
// the values are copied through without lookups.
func (s *Series[K, V]) Reindex(target *Index[K]) (*Series[K, V], error) {
	what := "series"
	if s.name != "" {
		what = fmt.Sprintf("series %q", s.name)
	}
	if err := target.checkAligned(s.index, what); err != nil {
		return nil, err
	}
	out := &Series[K, V]{index: target, values: make([]V, target.Len()), name: s.name}
	if target.Equal(s.index) {
		copy(out.values, s.values)
		return out, nil
	}
	for i := 0; i < target.Len(); i++ {
		j, _ := s.index.Position(target.At(i))
		out.values[i] = s.values[j]
	}
	return out, nil
}

// Map applies f to every value, producing a new series on the same
// index.
func Map[K comparable, V, W any](s *Series[K, V], f func(V) W) *Series[K, W] {
	values := make([]W, len(s.values))
	for i, v := range s.values {
		values[i] = f(v)
	}
	return &Series[K, W]{index: s.index, values: values, name: s.name}
}

// Zip combines two aligned series element-wise. The right series is
// reordered to the left one's index if needed; mismatched label sets
// yield an *AlignmentError.
func Zip[K comparable, U, V, W any](a *Series[K, U], b *Series[K, V], f func(U, V) W) (*Series[K, W], error) {
	br, err := b.Reindex(a.index)
	if err != nil {
		return nil, err
	}
	values := make([]W, len(a.values))
	for i := range a.values {
		values[i] = f(a.values[i], br.values[i])
	}
	return &Series[K, W]{index: a.index, values: values}, nil
}
