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
Package mip models and solves linear and mixed-integer programs.

A model collects variables and linear constraints, then Optimize solves
the LP relaxation with gonum's simplex method and closes any remaining
integrality gap by branch and bound. As an example, the problem:

	Maximize:
	  z = x + 2 y
	Subject to:
	  x + y <= 4
	  x - y >= -2
	  0 <= x <= 3, y >= 0

can be expressed as:

	model, _ := mip.NewModel("example", mip.Maximize)
	x, _ := model.AddVar(0, 3, 1, mip.Continuous, "x")
	y, _ := model.AddVar(0, math.Inf(1), 2, mip.Continuous, "y")

	model.AddConstr(mip.VarExpr(x).AddTerm(y, 1), mip.LessEqual, 4, "cap")
	model.AddConstr(mip.VarExpr(x).AddTerm(y, -1), mip.GreaterEqual, -2, "bal")

	if err := model.Optimize(); err != nil {
		// handle infeasible/unbounded models
	}
	obj, _ := model.ObjVal()
	xv, _ := x.X()

Newly added variables and constraints are pending until Update is
called (Optimize updates implicitly); attribute reads on pending
handles fail with ErrPendingUpdate.
*/
package mip

import (
	"fmt"
	"math"
)

type Direction int

const (
	Minimize Direction = iota
	Maximize
)

const (
	defaultTolerance = 1e-9
	defaultNodeLimit = 100000
	intTolerance     = 1e-6
)

// Model holds a linear or mixed-integer program under construction and,
// after Optimize, its solution. A model is not safe for concurrent use.
type Model struct {
	name   string
	dir    Direction
	logger Logger

	vars    []*Var
	constrs []*Constr

	// counts committed by the last Update call; handles past these
	// positions are pending
	liveVars    int
	liveConstrs int

	tol       float64
	nodeLimit int

	sol *solution
}

// NewModel instantiates a new model, providing a name (purely
// informational) and an optimization direction (either Minimize or
// Maximize).
func NewModel(name string, dir Direction, opts ...Option) (*Model, error) {
	model := &Model{
		name:      name,
		dir:       dir,
		logger:    noopLogger{},
		tol:       defaultTolerance,
		nodeLimit: defaultNodeLimit,
	}

	for _, opt := range opts {
		if err := opt(model); err != nil {
			return nil, fmt.Errorf("applying model option: %w", err)
		}
	}

	return model, nil
}

// Name returns the name provided upon instantiation of a model.
func (m *Model) Name() string {
	return m.name
}

func (m *Model) Direction() Direction {
	return m.dir
}

// SetDirection changes the direction of the model's optimization.
func (m *Model) SetDirection(dir Direction) {
	m.dir = dir
	m.sol = nil
}

// NumVars returns the number of committed variables. Variables added
// since the last Update call are not counted.
func (m *Model) NumVars() int {
	return m.liveVars
}

// NumConstrs returns the number of committed constraints.
func (m *Model) NumConstrs() int {
	return m.liveConstrs
}

// Vars returns the model's variables, committed and pending, in
// creation order.
func (m *Model) Vars() []*Var {
	return append([]*Var(nil), m.vars...)
}

// Constrs returns the model's constraints, committed and pending, in
// creation order.
func (m *Model) Constrs() []*Constr {
	return append([]*Constr(nil), m.constrs...)
}

// AddVar adds a variable with the given bounds, objective coefficient,
// type and name. Empty names are replaced by a unique default. The
// variable is pending until the next Update call.
func (m *Model) AddVar(lb, ub, obj float64, vtype VarType, name string) (*Var, error) {
	if !validVarType(vtype) {
		return nil, fmt.Errorf("invalid variable type %q", byte(vtype))
	}
	if math.IsNaN(lb) || math.IsNaN(ub) || math.IsNaN(obj) {
		return nil, fmt.Errorf("variable %q: bounds and objective must not be NaN", name)
	}
	if vtype == Binary {
		lb = math.Max(lb, 0)
		ub = math.Min(ub, 1)
	}
	v := &Var{
		model: m,
		index: len(m.vars),
		lb:    lb,
		ub:    ub,
		obj:   obj,
		vtype: vtype,
		name:  name,
	}
	if name == "" {
		v.name = fmt.Sprintf("C%d", v.index)
	}
	m.vars = append(m.vars, v)
	m.sol = nil
	return v, nil
}

// AddBinaryVar is a convenience function for adding a single binary
// variable with zero objective coefficient.
func (m *Model) AddBinaryVar(name string) (*Var, error) {
	return m.AddVar(0, 1, 0, Binary, name)
}

// CheckConstr validates the constraint "expr sense rhs" without adding
// it: the sense must be recognized, no NaN may appear, and every
// variable must belong to this model. AddConstr runs the same checks;
// bulk callers use CheckConstr to validate every row before the first
// one mutates the model.
func (m *Model) CheckConstr(expr LinExpr, sense Sense, rhs float64, name string) error {
	if !validSense(sense) {
		return fmt.Errorf("%q is not a valid constraint sense", sense.String())
	}
	if expr.HasNaN() || math.IsNaN(rhs) {
		return fmt.Errorf("constraint %q: expression and rhs must not contain NaN", name)
	}
	for _, t := range expr.aggregate() {
		if t.Var.model != m {
			return fmt.Errorf("constraint %q: variable %q belongs to a different model", name, t.Var.name)
		}
	}
	return nil
}

// AddConstr adds the constraint "expr sense rhs" to the model. The
// expression's constant is folded into the right hand side. The
// constraint is pending until the next Update call.
func (m *Model) AddConstr(expr LinExpr, sense Sense, rhs float64, name string) (*Constr, error) {
	if err := m.CheckConstr(expr, sense, rhs, name); err != nil {
		return nil, err
	}
	terms := expr.aggregate()
	c := &Constr{
		model: m,
		index: len(m.constrs),
		terms: terms,
		sense: sense,
		rhs:   rhs - expr.offset,
		name:  name,
	}
	if name == "" {
		c.name = fmt.Sprintf("R%d", c.index)
	}
	m.constrs = append(m.constrs, c)
	m.sol = nil
	return c, nil
}

// Update commits pending variables and constraints, making their
// attributes readable.
func (m *Model) Update() {
	m.liveVars = len(m.vars)
	m.liveConstrs = len(m.constrs)
}

// ObjVal returns the objective value of the current solution.
func (m *Model) ObjVal() (float64, error) {
	if m.sol == nil {
		return 0, ErrNoSolution
	}
	return m.sol.obj, nil
}

// Status reports the status of the current solution.
func (m *Model) Status() (SolveStatus, error) {
	if m.sol == nil {
		return 0, ErrNoSolution
	}
	return m.sol.status, nil
}
