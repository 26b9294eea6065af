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

import "fmt"

// MissingDataError reports NaN or nil values in an input to a bulk
// operation. Constraints and variables are never built from partial
// data; callers must fill or drop missing entries explicitly first.
type MissingDataError struct {
	What string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("%s has missing values", e.What)
}

// ColumnError reports a reference to a column that does not exist in
// the frame at hand.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("no column named %q", e.Column)
}

// FormulaError reports a malformed or ambiguous constraint formula.
type FormulaError struct {
	Formula string
	Pos     int
	Msg     string
}

func (e *FormulaError) Error() string {
	return fmt.Sprintf("formula %q: %s (offset %d)", e.Formula, e.Msg, e.Pos)
}
