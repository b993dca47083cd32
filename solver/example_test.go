package solver_test

import (
	"fmt"

	"github.com/katalvlaran/linprog/model"
	"github.com/katalvlaran/linprog/solver"
)

// ExampleSolve maximizes 3x + 4y over a small polytope and prints the
// unique optimal vertex.
func ExampleSolve() {
	m := model.New()
	x := m.AddVariable().WithName("x").NonNegative()
	y := m.AddVariable().WithName("y").NonNegative()
	m.SetObjective(model.Maximize, x.Expr().Scale(3).Plus(y.Expr().Scale(4)))
	m.AddConstraint(x.Expr().Plus(y.Expr().Scale(2))).Le(14)
	m.AddConstraint(x.Expr().Scale(3).Minus(y.Expr())).Le(0)
	m.AddConstraint(x.Expr().Minus(y.Expr())).Le(2)

	sol, err := solver.Solve(m, nil)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	obj, _ := sol.ObjectiveValue()
	fmt.Printf("status: %s\n", sol.Status())
	fmt.Printf("objective: %g\n", obj)
	fmt.Printf("x = %g, y = %g\n", sol.Value(x.Key()), sol.Value(y.Key()))

	// Output:
	// status: Optimal
	// objective: 30
	// x = 2, y = 6
}
