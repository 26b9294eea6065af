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
	"errors"
	"fmt"
)

var (
	// ErrPendingUpdate is returned when a handle added since the last
	// Update call is queried.
	ErrPendingUpdate = errors.New("handle is awaiting model update")

	// ErrNoSolution is returned when a solution attribute is read
	// before a successful Optimize call.
	ErrNoSolution = errors.New("no solution available")
)

// AttrError reports an unknown, read-only or currently unavailable
// attribute.
type AttrError struct {
	Attr   string
	Reason string
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("attribute %q: %s", e.Attr, e.Reason)
}

func unknownAttr(name string) *AttrError {
	return &AttrError{Attr: name, Reason: "unknown attribute"}
}

func readOnlyAttr(name string) *AttrError {
	return &AttrError{Attr: name, Reason: "attribute is read-only"}
}

// Handle is the common attribute surface of Var and Constr, keyed by
// Gurobi-flavored attribute names ("LB", "X", "Pi", "VarName", ...).
// Bulk accessors dispatch through it without knowing the handle kind.
type Handle interface {
	FloatAttr(name string) (float64, error)
	SetFloatAttr(name string, value float64) error
	StringAttr(name string) (string, error)
	SetStringAttr(name string, value string) error
}

func (v *Var) FloatAttr(name string) (float64, error) {
	if err := v.checkLive(); err != nil {
		return 0, err
	}
	switch name {
	case "LB":
		return v.lb, nil
	case "UB":
		return v.ub, nil
	case "Obj":
		return v.obj, nil
	case "Start":
		return v.start, nil
	case "X":
		return v.X()
	case "RC":
		return v.RC()
	default:
		return 0, unknownAttr(name)
	}
}

func (v *Var) SetFloatAttr(name string, value float64) error {
	switch name {
	case "LB":
		v.lb = value
	case "UB":
		v.ub = value
	case "Obj":
		v.obj = value
	case "Start":
		v.start = value
	case "X", "RC":
		return readOnlyAttr(name)
	default:
		return unknownAttr(name)
	}
	return nil
}

func (v *Var) StringAttr(name string) (string, error) {
	if err := v.checkLive(); err != nil {
		return "", err
	}
	switch name {
	case "VarName":
		return v.name, nil
	case "VType":
		return v.vtype.String(), nil
	default:
		return "", unknownAttr(name)
	}
}

func (v *Var) SetStringAttr(name string, value string) error {
	switch name {
	case "VarName":
		v.name = value
	case "VType":
		if len(value) != 1 || !validVarType(VarType(value[0])) {
			return &AttrError{Attr: name, Reason: fmt.Sprintf("invalid variable type %q", value)}
		}
		v.vtype = VarType(value[0])
	default:
		return unknownAttr(name)
	}
	return nil
}

func (c *Constr) FloatAttr(name string) (float64, error) {
	if err := c.checkLive(); err != nil {
		return 0, err
	}
	switch name {
	case "RHS":
		return c.rhs, nil
	case "Slack":
		return c.Slack()
	case "Pi":
		return c.Pi()
	default:
		return 0, unknownAttr(name)
	}
}

func (c *Constr) SetFloatAttr(name string, value float64) error {
	switch name {
	case "RHS":
		c.rhs = value
	case "Slack", "Pi":
		return readOnlyAttr(name)
	default:
		return unknownAttr(name)
	}
	return nil
}

func (c *Constr) StringAttr(name string) (string, error) {
	if err := c.checkLive(); err != nil {
		return "", err
	}
	switch name {
	case "ConstrName":
		return c.name, nil
	case "Sense":
		return string(c.sense), nil
	default:
		return "", unknownAttr(name)
	}
}

func (c *Constr) SetStringAttr(name string, value string) error {
	switch name {
	case "ConstrName":
		c.name = value
	case "Sense":
		return readOnlyAttr(name)
	default:
		return unknownAttr(name)
	}
	return nil
}
