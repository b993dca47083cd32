package model

import (
	"fmt"
	"math"
)

// Variable is one decision variable of a Model: an opaque key, an
// optional display name, a bound interval [lo, hi] and a continuity tag.
// Model.AddVariable creates it free, with bounds (−∞, +∞).
//
// Setters are chainable and return the receiver:
//
//	x := m.AddVariable().WithName("x").WithBounds(2, 5)
type Variable struct {
	key     VariableKey
	name    string
	lower   float64
	upper   float64
	varType VarType
}

// Key returns the variable's arena key.
func (v *Variable) Key() VariableKey {
	return v.key
}

// Name returns the display name, or "x<key>" when none was set.
func (v *Variable) Name() string {
	if v.name == "" {
		return fmt.Sprintf("x%d", v.key)
	}

	return v.name
}

// LowerBound returns the lower bound (possibly −∞).
func (v *Variable) LowerBound() float64 {
	return v.lower
}

// UpperBound returns the upper bound (possibly +∞).
func (v *Variable) UpperBound() float64 {
	return v.upper
}

// Type returns the continuity tag.
func (v *Variable) Type() VarType {
	return v.varType
}

// WithName sets the display name.
func (v *Variable) WithName(name string) *Variable {
	v.name = name

	return v
}

// WithLowerBound sets the lower bound.
func (v *Variable) WithLowerBound(lo float64) *Variable {
	v.lower = lo

	return v
}

// WithUpperBound sets the upper bound.
func (v *Variable) WithUpperBound(hi float64) *Variable {
	v.upper = hi

	return v
}

// WithBounds sets both bounds.
func (v *Variable) WithBounds(lo, hi float64) *Variable {
	v.lower, v.upper = lo, hi

	return v
}

// NonNegative constrains the variable to x ≥ 0.
func (v *Variable) NonNegative() *Variable {
	v.lower = 0

	return v
}

// NonPositive constrains the variable to x ≤ 0.
func (v *Variable) NonPositive() *Variable {
	v.upper = 0

	return v
}

// Free removes both bounds.
func (v *Variable) Free() *Variable {
	v.lower, v.upper = math.Inf(-1), math.Inf(1)

	return v
}

// Expr returns the expression 1·x for this variable.
func (v *Variable) Expr() *LinearExpr {
	return TermExpr(v.key, 1)
}

// validate reports ErrInvalidBounds when lo > hi or a bound is NaN.
func (v *Variable) validate() error {
	if math.IsNaN(v.lower) || math.IsNaN(v.upper) || v.lower > v.upper {
		return fmt.Errorf("%s [%g, %g]: %w", v.Name(), v.lower, v.upper, ErrInvalidBounds)
	}

	return nil
}
