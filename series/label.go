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

// Leveled is implemented by multi-level labels. Name formatting renders
// the levels comma-joined; per-level formatters are matched against the
// index's level names by position.
type Leveled interface {
	Levels() []any
}

// Pair is a two-level label. Any comparable struct works as a label;
// Pair and Triple are provided so that ad-hoc multi-level indexes get
// comma-joined name formatting without further ceremony.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

func (p Pair[A, B]) Levels() []any {
	return []any{p.First, p.Second}
}

// Triple is a three-level label.
type Triple[A, B, C comparable] struct {
	First  A
	Second B
	Third  C
}

func (t Triple[A, B, C]) Levels() []any {
	return []any{t.First, t.Second, t.Third}
}
