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

import (
	"context"
	"errors"
	"math"
)

// Optimize solves the model. Pending variables and constraints are
// committed first. On success the solution is available through X,
// ObjVal, Slack and the other solution attributes; on failure a
// SolveError describes why no solution exists.
//
// Models without integer variables are solved in a single simplex run,
// and constraint duals and reduced costs are recovered. Models with
// integer or binary variables go through branch and bound on the LP
// relaxation; duals are not available for those.
func (m *Model) Optimize() error {
	return m.OptimizeWithContext(context.Background())
}

// OptimizeWithContext behaves like Optimize but gives up when the
// context is done. Cancellation is observed between branch-and-bound
// nodes, not inside a simplex run.
func (m *Model) OptimizeWithContext(ctx context.Context) error {
	m.Update()
	m.sol = nil

	m.logger.Print("optimize: ", m.liveVars, " variables, ", m.liveConstrs, " constraints")

	if err := ctx.Err(); err != nil {
		return err
	}

	if m.liveVars == 0 {
		m.sol = &solution{status: SolutionOptimal}
		return nil
	}

	bounds := m.collectBounds()

	if !m.hasIntVars() {
		rel, err := m.solveRelaxation(bounds)
		if err != nil {
			return err
		}
		sol := &solution{status: SolutionOptimal, x: rel.x, obj: m.objectiveAt(rel.x)}
		if duals, err := m.computeDuals(rel); err == nil {
			sol.duals = duals
			sol.redcosts = m.computeRedcosts(duals)
		} else {
			// primal solution stands; Pi and RC just stay unavailable
			m.logger.Print("dual recovery failed: ", err)
		}
		m.sol = sol
		m.logger.Print("optimal objective ", sol.obj)
		return nil
	}

	return m.branchAndBound(ctx, bounds)
}

func (m *Model) hasIntVars() bool {
	for i := 0; i < m.liveVars; i++ {
		if m.vars[i].vtype != Continuous {
			return true
		}
	}
	return false
}

// branchAndBound explores subproblems with tightened variable bounds,
// keeping the best integer-feasible solution found as incumbent and
// pruning nodes whose relaxation cannot improve on it.
func (m *Model) branchAndBound(ctx context.Context, root []bound) error {
	rel, err := m.solveRelaxation(root)
	if err != nil {
		return err
	}

	if j, ok := m.fractionalVar(rel.x); !ok {
		m.finishMIP(rel.x)
		return nil
	} else {
		queue := m.branch(root, rel.x, j)

		var incumbent []float64
		incumbentZ := math.Inf(1)
		nodes := 0

		for len(queue) > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}

			var nb []bound
			nb, queue = queue[0], queue[1:]

			nodes++
			if nodes > m.nodeLimit {
				return ErrNodeLimit
			}

			cand, err := m.solveRelaxation(nb)
			switch {
			case errors.Is(err, ErrModelInfeasible):
				continue
			case errors.Is(err, ErrModelUnbounded):
				return ErrModelUnbounded
			case err != nil:
				return err
			}

			if cand.zmin >= incumbentZ-1e-9 {
				continue
			}

			if j, ok := m.fractionalVar(cand.x); ok {
				queue = append(queue, m.branch(nb, cand.x, j)...)
			} else {
				incumbent = cand.x
				incumbentZ = cand.zmin
				m.logger.Print("branch-and-bound: node ", nodes, " new incumbent ", m.objectiveAt(cand.x))
			}
		}

		if incumbent == nil {
			return ErrNoFeasibleFound
		}
		m.finishMIP(incumbent)
		return nil
	}
}

// fractionalVar returns the first integer-typed variable whose
// relaxation value is fractional beyond the integrality tolerance.
func (m *Model) fractionalVar(x []float64) (int, bool) {
	for j := 0; j < m.liveVars; j++ {
		if m.vars[j].vtype == Continuous {
			continue
		}
		if math.Abs(x[j]-math.Round(x[j])) > intTolerance {
			return j, true
		}
	}
	return 0, false
}

// branch splits a node on variable j: one child capped at floor(x_j),
// the other raised to ceil(x_j).
func (m *Model) branch(bounds []bound, x []float64, j int) [][]bound {
	down := append([]bound(nil), bounds...)
	up := append([]bound(nil), bounds...)
	down[j].hi = math.Min(down[j].hi, math.Floor(x[j]))
	up[j].lo = math.Max(up[j].lo, math.Ceil(x[j]))
	return [][]bound{down, up}
}

// finishMIP snaps integer variables to whole numbers and records the
// solution. Duals stay nil for MIP solves.
func (m *Model) finishMIP(x []float64) {
	for j := 0; j < m.liveVars; j++ {
		if m.vars[j].vtype != Continuous {
			x[j] = math.Round(x[j])
		}
	}
	m.sol = &solution{status: SolutionOptimal, x: x, obj: m.objectiveAt(x)}
	m.logger.Print("optimal objective ", m.sol.obj)
}

func (m *Model) objectiveAt(x []float64) float64 {
	total := 0.0
	for j := 0; j < m.liveVars; j++ {
		total += m.vars[j].obj * x[j]
	}
	return total
}
