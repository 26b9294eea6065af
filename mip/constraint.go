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

type Sense byte

const (
	LessEqual    Sense = '<'
	Equal        Sense = '='
	GreaterEqual Sense = '>'
)

func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case Equal:
		return "=="
	case GreaterEqual:
		return ">="
	default:
		return fmt.Sprintf("Sense(%q)", byte(s))
	}
}

func validSense(s Sense) bool {
	return s == LessEqual || s == Equal || s == GreaterEqual
}

// Constr is a handle to one linear constraint, stored in normalized
// form: aggregated terms on the left, constant folded into the right
// hand side.
type Constr struct {
	model *Model
	index int
	terms []Term
	sense Sense
	rhs   float64
	name  string
}

func (c *Constr) Name() string {
	return c.name
}

func (c *Constr) Sense() Sense {
	return c.sense
}

func (c *Constr) RHS() float64 {
	return c.rhs
}

func (c *Constr) SetRHS(rhs float64) {
	c.rhs = rhs
}

// Row returns the constraint's left hand side as an expression.
func (c *Constr) Row() LinExpr {
	return LinExpr{terms: append([]Term(nil), c.terms...)}
}

// Slack returns rhs − activity for the current solution, for every
// sense.
func (c *Constr) Slack() (float64, error) {
	if err := c.checkSolved(); err != nil {
		return 0, err
	}
	activity := 0.0
	for _, t := range c.terms {
		activity += t.Coeff * c.model.sol.x[t.Var.index]
	}
	return c.rhs - activity, nil
}

// Pi returns the constraint's dual value in the current solution. Duals
// are only available for models without integer variables.
func (c *Constr) Pi() (float64, error) {
	if err := c.checkSolved(); err != nil {
		return 0, err
	}
	if c.model.sol.duals == nil {
		return 0, &AttrError{Attr: "Pi", Reason: "not available for models with integer variables"}
	}
	return c.model.sol.duals[c.index], nil
}

func (c *Constr) pending() bool {
	return c.index >= c.model.liveConstrs
}

func (c *Constr) checkLive() error {
	if c.pending() {
		return ErrPendingUpdate
	}
	return nil
}

func (c *Constr) checkSolved() error {
	if err := c.checkLive(); err != nil {
		return err
	}
	if c.model.sol == nil {
		return ErrNoSolution
	}
	return nil
}

func (c *Constr) String() string {
	if c.pending() {
		return "<constr *awaiting model update*>"
	}
	return fmt.Sprintf("<constr %s>", c.name)
}
