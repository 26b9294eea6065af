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

// Package series provides ordered label-indexed containers with strict
// alignment semantics. An Index is an ordered set of labels; a Series
// maps each label of its index to one value. Two containers may only be
// combined element-wise when their label sets match exactly; anything
// else is an *AlignmentError, never a silent reindex or fill.
package series

import (
	"fmt"
	"strings"
)

// AlignmentError reports an index mismatch or duplicate labels. It is
// returned by every operation that requires two containers to share a
// label set, and by bulk operations given an index with duplicates.
type AlignmentError struct {
	msg string
}

func (e *AlignmentError) Error() string {
	return e.msg
}

func alignmentErrorf(format string, args ...interface{}) *AlignmentError {
	return &AlignmentError{msg: fmt.Sprintf(format, args...)}
}

// formatLabels renders up to max labels for error messages.
func formatLabels[K comparable](labels []K, max int) string {
	parts := make([]string, 0, max+1)
	for i, l := range labels {
		if i == max {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, fmt.Sprintf("%v", l))
	}
	return strings.Join(parts, ", ")
}

// Index is an ordered collection of unique-by-intent labels with O(1)
// position lookup. Duplicate labels are representable (so that callers
// can build an index from raw data and inspect it), but every aligning
// operation rejects them.
type Index[K comparable] struct {
	labels []K
	pos    map[K]int
	dups   []K
	names  []string
}

// NewIndex builds an index from the given labels, preserving order.
func NewIndex[K comparable](labels ...K) *Index[K] {
	ix := &Index[K]{
		labels: append([]K(nil), labels...),
		pos:    make(map[K]int, len(labels)),
	}
	seen := make(map[K]bool)
	for i, l := range labels {
		if _, ok := ix.pos[l]; ok {
			if !seen[l] {
				ix.dups = append(ix.dups, l)
				seen[l] = true
			}
			continue
		}
		ix.pos[l] = i
	}
	return ix
}

// RangeIndex builds an integer index 0..n-1.
func RangeIndex(n int) *Index[int] {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}
	return NewIndex(labels...)
}

// Named attaches level names to the index, used when formatting
// variable and constraint names from multi-level labels. It returns the
// receiver for chaining.
func (ix *Index[K]) Named(names ...string) *Index[K] {
	ix.names = append([]string(nil), names...)
	return ix
}

// Names returns the level names, or nil if none were set.
func (ix *Index[K]) Names() []string {
	return ix.names
}

func (ix *Index[K]) Len() int {
	return len(ix.labels)
}

// At returns the label at position i.
func (ix *Index[K]) At(i int) K {
	return ix.labels[i]
}

// Labels returns a copy of the labels in index order.
func (ix *Index[K]) Labels() []K {
	return append([]K(nil), ix.labels...)
}

// Position returns the position of a label within the index.
func (ix *Index[K]) Position(label K) (int, bool) {
	i, ok := ix.pos[label]
	return i, ok
}

func (ix *Index[K]) Contains(label K) bool {
	_, ok := ix.pos[label]
	return ok
}

func (ix *Index[K]) HasDuplicates() bool {
	return len(ix.dups) > 0
}

// CheckUnique returns an *AlignmentError naming the duplicated labels,
// or nil if all labels are unique.
func (ix *Index[K]) CheckUnique() error {
	if len(ix.dups) == 0 {
		return nil
	}
	return alignmentErrorf("index contains duplicate labels: %s", formatLabels(ix.dups, 5))
}

// Equal reports whether both indexes hold the same labels in the same
// order. This is the fast path for alignment: no reordering is needed.
func (ix *Index[K]) Equal(other *Index[K]) bool {
	if ix == other {
		return true
	}
	if len(ix.labels) != len(other.labels) {
		return false
	}
	for i, l := range ix.labels {
		if other.labels[i] != l {
			return false
		}
	}
	return true
}

// EqualSet reports whether both indexes hold the same label set,
// irrespective of order. Indexes with duplicates never compare equal.
func (ix *Index[K]) EqualSet(other *Index[K]) bool {
	if ix.HasDuplicates() || other.HasDuplicates() {
		return false
	}
	if len(ix.labels) != len(other.labels) {
		return false
	}
	for l := range ix.pos {
		if !other.Contains(l) {
			return false
		}
	}
	return true
}

// checkAligned verifies that other covers exactly the same label set as
// ix, returning an *AlignmentError naming the missing and extra labels
// otherwise.
func (ix *Index[K]) checkAligned(other *Index[K], what string) error {
	if err := ix.CheckUnique(); err != nil {
		return err
	}
	if err := other.CheckUnique(); err != nil {
		return err
	}
	if ix.EqualSet(other) {
		return nil
	}
	var missing, extra []K
	for _, l := range ix.labels {
		if !other.Contains(l) {
			missing = append(missing, l)
		}
	}
	for _, l := range other.labels {
		if !ix.Contains(l) {
			extra = append(extra, l)
		}
	}
	switch {
	case len(missing) > 0 && len(extra) > 0:
		return alignmentErrorf("%s not aligned: missing labels [%s], unexpected labels [%s]",
			what, formatLabels(missing, 5), formatLabels(extra, 5))
	case len(missing) > 0:
		return alignmentErrorf("%s not aligned: missing labels [%s]", what, formatLabels(missing, 5))
	default:
		return alignmentErrorf("%s not aligned: unexpected labels [%s]", what, formatLabels(extra, 5))
	}
}
