package model

import "fmt"

// Objective pairs an optimization direction with a linear expression.
type Objective struct {
	sense ObjectiveSense
	expr  *LinearExpr
}

// Sense returns the optimization direction.
func (o *Objective) Sense() ObjectiveSense {
	return o.sense
}

// Expr returns the objective expression.
func (o *Objective) Expr() *LinearExpr {
	return o.expr
}

// String implements fmt.Stringer for debugging.
func (o *Objective) String() string {
	return fmt.Sprintf("%s %s", o.sense, o.expr)
}
