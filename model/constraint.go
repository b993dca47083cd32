package model

import "fmt"

// Constraint is one linear constraint lhs (≤ | = | ≥) rhs.
// It is created by Model.AddConstraint and completed by one of Le, Ge or
// Eq; a constraint left without a sense fails validation.
type Constraint struct {
	key      ConstraintKey
	name     string
	lhs      *LinearExpr
	sense    ConstraintSense
	rhs      float64
	senseSet bool
}

// Key returns the constraint's arena key.
func (c *Constraint) Key() ConstraintKey {
	return c.key
}

// Name returns the display name, or "c<key>" when none was set.
func (c *Constraint) Name() string {
	if c.name == "" {
		return fmt.Sprintf("c%d", c.key)
	}

	return c.name
}

// LHS returns the left-hand side expression.
func (c *Constraint) LHS() *LinearExpr {
	return c.lhs
}

// Sense returns the constraint relation.
func (c *Constraint) Sense() ConstraintSense {
	return c.sense
}

// RHS returns the right-hand side constant.
func (c *Constraint) RHS() float64 {
	return c.rhs
}

// WithName sets the display name.
func (c *Constraint) WithName(name string) *Constraint {
	c.name = name

	return c
}

// Le completes the constraint as lhs ≤ rhs.
func (c *Constraint) Le(rhs float64) *Constraint {
	c.sense, c.rhs, c.senseSet = LessEqual, rhs, true

	return c
}

// Ge completes the constraint as lhs ≥ rhs.
func (c *Constraint) Ge(rhs float64) *Constraint {
	c.sense, c.rhs, c.senseSet = GreaterEqual, rhs, true

	return c
}

// Eq completes the constraint as lhs = rhs.
func (c *Constraint) Eq(rhs float64) *Constraint {
	c.sense, c.rhs, c.senseSet = Equal, rhs, true

	return c
}

// String implements fmt.Stringer for debugging.
func (c *Constraint) String() string {
	return fmt.Sprintf("%s: %s %s %g", c.Name(), c.lhs, c.sense, c.rhs)
}

// validate reports ErrIncompleteConstraint when no sense was set.
func (c *Constraint) validate() error {
	if !c.senseSet {
		return fmt.Errorf("%s: %w", c.Name(), ErrIncompleteConstraint)
	}

	return nil
}
