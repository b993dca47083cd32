// Package standard compiles a user-level model into the canonical form
//
//	maximize c·x  subject to  A·x = b,  x ≥ 0,  b ≥ 0
//
// required by the simplex engine, and retains the bidirectional mapping
// needed to lift a canonical solution back to user space.
//
// Variable transformation (per user variable with bounds [lo, hi]):
//
//	lo = 0,  hi = +∞   →  Direct:    x  = x'
//	lo ∈ ℝ,  hi = +∞   →  Shifted:   x  = x' + lo
//	lo = −∞, hi ∈ ℝ    →  Negated:   x  = hi − x'
//	lo ∈ ℝ,  hi ∈ ℝ    →  Shifted + range row x' ≤ hi − lo
//	lo = −∞, hi = +∞   →  FreeSplit: x  = x⁺ − x⁻
//
// Constraint transformation: substitute, fold constants into the RHS,
// flip rows with a negative RHS, then append a slack column (≤), a
// surplus plus an artificial column (≥), or an artificial column (=).
//
// Column ordering is contractual: structural columns in variable
// insertion order (split/shift expansions in-line), then one
// slack/surplus column per row in row order, then one artificial column
// per row in row order. Rows are ordered range rows first (variable
// order, as they are emitted during variable transformation), then user
// constraints in insertion order.
//
// Determinism: the same Model always produces the same CanonicalForm,
// bit for bit.
package standard
