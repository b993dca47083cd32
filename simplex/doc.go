// Package simplex implements a two-phase primal simplex over a dense
// slack tableau.
//
// The tableau is a (m+1)×(n+1) row-major matrix: one row per canonical
// constraint, a reduced-objective z-row, one column per canonical
// variable and a right-hand-side column. The z-row stores the negated
// reduced costs, so a pivot treats it exactly like any constraint row.
//
// Phase I runs only when the standardizer introduced artificial
// columns: it maximizes w = −Σ artificials from the identity basis the
// artificials provide. An optimum below −ε proves infeasibility;
// otherwise artificials still basic at zero are pivoted out, redundant
// rows are dropped, the artificial columns are pinned, and Phase II
// restores the real objective.
//
// Pivot selection:
//   - Entering: Dantzig's rule — the most positive reduced cost wins;
//     exact ties resolve to the smallest column index by scan order.
//   - Leaving: minimal-ratio test over rows with a usable pivot entry;
//     ties break by Bland's rule (smallest basic column index).
//   - Degeneracy: after a run of non-improving pivots the entering rule
//     falls back to Bland's smallest-index choice, which together with
//     the Bland leaving tie-break guarantees finite termination on
//     cycling instances; Dantzig resumes once the objective improves.
//
// Termination is one of Optimal, Infeasible, Unbounded or
// IterationLimit, all carried as statuses; an error is returned only
// when a pivot produces NaN/Inf or the auxiliary basis cannot be
// resolved.
//
// Determinism: for a fixed (CanonicalForm, Options) pair the pivot
// sequence, final basis and values reproduce bit-for-bit on one
// IEEE-754 platform.
package simplex
