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

package mip

type SolveStatus int

const (
	SolutionOptimal SolveStatus = iota + 1
	SolutionSuboptimal
)

type SolveError int

const (
	ErrModelInfeasible SolveError = iota + 1
	ErrModelUnbounded
	ErrNoFeasibleFound
	ErrNumericalFailure
	ErrNodeLimit
)

// Error returns a string representation of the given error value.
func (e SolveError) Error() string {
	switch e {
	case ErrModelInfeasible:
		return "model is infeasible"
	case ErrModelUnbounded:
		return "model is unbounded"
	case ErrNoFeasibleFound:
		return "no integer feasible solution found"
	case ErrNumericalFailure:
		return "numerical failure while solving"
	case ErrNodeLimit:
		return "node limit reached before the search completed"
	default:
		panic("unrecognized error")
	}
}

// solution holds the result of the last successful Optimize call.
// x and redcosts are indexed by variable, duals by constraint. duals
// and redcosts are nil when the model has integer variables.
type solution struct {
	status   SolveStatus
	x        []float64
	obj      float64
	duals    []float64
	redcosts []float64
}
