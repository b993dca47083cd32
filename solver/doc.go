// Package solver is the front door of linprog: it validates a model,
// standardizes it, runs the two-phase simplex and lifts the canonical
// answer back to user space.
//
//	m := model.New()
//	x1 := m.AddVariable().NonNegative()
//	x2 := m.AddVariable().NonNegative()
//	x3 := m.AddVariable().NonNegative()
//	m.SetObjective(model.Maximize, model.Sum(x1.Expr(), x2.Expr(), x3.Expr()))
//	m.AddConstraint(x1.Expr()).Le(10)
//	m.AddConstraint(x2.Expr().Plus(x3.Expr())).Le(5)
//
//	sol, err := solver.Solve(m, nil)
//	// sol.Status() == simplex.Optimal, objective 15, x1 = 10
//
// Error vs status: malformed input (empty model, inverted bounds) and
// numerical breakdown return errors; Infeasible, Unbounded and
// IterationLimit are legitimate solver results and are carried inside
// the Solution status.
//
// A Solve call is synchronous and CPU-bound; it owns all intermediate
// state, never mutates the model, and different models may be solved
// from different goroutines without coordination.
package solver
