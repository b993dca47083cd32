// Package model defines the user-facing view of a linear program:
// variables, sparse linear expressions, constraints and the objective,
// all held in an arena owned by Model and addressed by opaque keys.
//
// Entities are built with chainable setters instead of operator
// overloading:
//
//	m := model.New()
//	x := m.AddVariable().WithName("x").NonNegative()
//	y := m.AddVariable().WithName("y").WithBounds(2, 5)
//
//	profit := x.Expr().Scale(3).Plus(y.Expr().Scale(4))
//	m.AddConstraint(x.Expr().Plus(y.Expr())).Le(10)
//	m.SetObjective(model.Maximize, profit)
//
// Design principles:
//   - Arena-and-key: the solver core receives keys and indexes, never
//     pointers; VariableKey is a stable handle into the Model arena.
//   - Strict sentinels: only errors from types.go; validation is eager
//     and happens before any solving work is done.
//   - Normalized expressions: LinearExpr is always key-sorted,
//     duplicate-free and pruned; every arithmetic result re-establishes
//     these invariants.
//
// The model is a passive snapshot: solving never mutates it, and two
// goroutines may solve two different Models concurrently.
package model
