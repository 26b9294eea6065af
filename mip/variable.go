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

import "fmt"

type VarType byte

const (
	Continuous VarType = 'C'
	Binary     VarType = 'B'
	Integer    VarType = 'I'
)

func (t VarType) String() string {
	return string(t)
}

func validVarType(t VarType) bool {
	return t == Continuous || t == Binary || t == Integer
}

// Var is a handle to one decision variable. It is owned by its model
// and stays valid for the model's lifetime.
//
// A variable is bound to its model. Attempting to use a variable
// created in one model within a different model results in an error
// from the operation concerned.
type Var struct {
	model *Model
	index int
	lb    float64
	ub    float64
	obj   float64
	vtype VarType
	name  string
	start float64
}

func (v *Var) Name() string {
	return v.name
}

func (v *Var) Type() VarType {
	return v.vtype
}

func (v *Var) Bounds() (lower, upper float64) {
	return v.lb, v.ub
}

func (v *Var) Obj() float64 {
	return v.obj
}

// SetBounds sets the boundaries for the given variable. Pass
// math.Inf(-1) / math.Inf(1) for an unbounded side.
func (v *Var) SetBounds(lower, upper float64) {
	v.lb = lower
	v.ub = upper
}

func (v *Var) SetObj(obj float64) {
	v.obj = obj
}

// X returns the value of the variable in the current solution.
func (v *Var) X() (float64, error) {
	if err := v.checkSolved(); err != nil {
		return 0, err
	}
	return v.model.sol.x[v.index], nil
}

// RC returns the reduced cost of the variable in the current solution.
// Reduced costs are only available for models without integer
// variables.
func (v *Var) RC() (float64, error) {
	if err := v.checkSolved(); err != nil {
		return 0, err
	}
	if v.model.sol.redcosts == nil {
		return 0, &AttrError{Attr: "RC", Reason: "not available for models with integer variables"}
	}
	return v.model.sol.redcosts[v.index], nil
}

func (v *Var) pending() bool {
	return v.index >= v.model.liveVars
}

func (v *Var) checkLive() error {
	if v.pending() {
		return ErrPendingUpdate
	}
	return nil
}

func (v *Var) checkSolved() error {
	if err := v.checkLive(); err != nil {
		return err
	}
	if v.model.sol == nil {
		return ErrNoSolution
	}
	return nil
}

func (v *Var) String() string {
	if v.pending() {
		return "<var *awaiting model update*>"
	}
	return fmt.Sprintf("<var %s>", v.name)
}
