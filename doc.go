// Package linprog is an in-memory linear programming toolkit: build a
// model with natural builder syntax, standardize it, and solve it with a
// deterministic two-phase simplex.
//
// 🚀 What is linprog?
//
//	A pure-Go LP solver that brings together:
//		• Modeling: arena-keyed variables, constraints & objectives
//		• Expressions: sorted sparse linear expressions with safe arithmetic
//		• Standardization: arbitrary bounds & senses → maximize c·x, A·x = b, x ≥ 0
//		• Simplex: two-phase dense tableau, Dantzig pricing, Bland tie-break
//		• Solutions: user-space values, signed objective, status & timing
//
// ✨ Why choose linprog?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed (Model, Config) reproduces the exact pivot sequence
//   - Pure Go – no cgo, no external LP engine
//   - Honest statuses – Infeasible/Unbounded/IterationLimit are results, not errors
//
// Everything is organized under four subpackages:
//
//	model/    — Variable, LinearExpr, Constraint, Objective & the Model arena
//	standard/ — compilation to canonical form + the variable back-map
//	simplex/  — the slack tableau and the two-phase pivot loop
//	solver/   — configuration, orchestration and solution reconstruction
//
// Quick ASCII example:
//
//	maximize  x + y
//	s.t.      x + 2y ≤ 14
//	          3x − y ≤ 0
//	          x −  y ≤ 2
//
//	m := model.New()
//	x := m.AddVariable().NonNegative()
//	y := m.AddVariable().NonNegative()
//	m.SetObjective(model.Maximize, x.Expr().Plus(y.Expr()))
//	m.AddConstraint(x.Expr().Plus(y.Expr().Scale(2))).Le(14)
//	m.AddConstraint(x.Expr().Scale(3).Minus(y.Expr())).Le(0)
//	m.AddConstraint(x.Expr().Minus(y.Expr())).Le(2)
//	sol, err := solver.Solve(m, nil)
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/linprog
package linprog
