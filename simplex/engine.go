package simplex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linprog/standard"
)

// Solve runs the two-phase simplex on a canonical form and returns the
// canonical solution. Infeasible, Unbounded and IterationLimit are
// statuses on the solution, not errors; the only error condition is
// ErrNumericalFailure.
//
// Contracts:
//   - cf must come from standard.Standardize (b ≥ 0, identity basis
//     available from slacks/artificials).
//   - opts may be nil; zero fields fall back to the documented defaults.
//
// Complexity: O(iterations · m · n); at most MaxIterations pivots.
func Solve(cf *standard.CanonicalForm, opts *Options) (*CanonicalSolution, error) {
	e := &engine{cf: cf, opts: normalize(opts)}
	e.t = NewTableau(cf, e.opts)

	status, err := e.solve()
	if err != nil {
		return nil, err
	}

	return &CanonicalSolution{
		Status:     status,
		Objective:  e.t.Objective(),
		X:          e.t.Solution(),
		Iterations: e.iterations,
	}, nil
}

// degenerateStallLimit is the number of consecutive non-improving
// pivots after which entering selection falls back from Dantzig to
// Bland's smallest-index rule. Combined with the Bland leaving
// tie-break this guarantees finite termination on cycling instances
// (Beale); Dantzig resumes as soon as the objective moves again.
const degenerateStallLimit = 16

// engine holds one solve's mutable state.
type engine struct {
	cf         *standard.CanonicalForm
	t          *Tableau
	opts       Options
	iterations int
	stall      int
}

// solve runs Phase I when artificials exist, then Phase II.
func (e *engine) solve() (Status, error) {
	if e.cf.NumArtificial > 0 {
		status, err := e.phaseOne()
		if err != nil || status != Optimal {
			return status, err
		}
	}

	// Phase II: restore the real objective and optimize. Artificial
	// columns stay in the tableau with zero cost but are pinned out of
	// the entering choice.
	e.t.SetObjective(func(j int) float64 { return e.cf.C.AtVec(j) })

	return e.run()
}

// phaseOne maximizes w = −Σ artificials from the artificial identity
// basis. It returns Optimal exactly when a feasible basis for the real
// problem is ready.
func (e *engine) phaseOne() (Status, error) {
	e.t.SetObjective(func(j int) float64 {
		if e.cf.IsArtificial(j) {
			return -1
		}

		return 0
	})

	status, err := e.run()
	if err != nil {
		return status, err
	}
	switch status {
	case IterationLimit:
		return IterationLimit, nil
	case Unbounded:
		// w ≤ 0 by construction; an unbounded auxiliary is a structural
		// impossibility.
		return NotStarted, fmt.Errorf("auxiliary objective unbounded: %w", ErrNumericalFailure)
	}

	if e.t.Objective() < -e.opts.Tolerance {
		return Infeasible, nil
	}

	// Feasible. Clear artificials that remained basic at zero: pivot
	// each out on any usable non-artificial column, or drop the row as
	// redundant when none exists.
	for r := 0; r < e.t.NumRows(); {
		if !e.cf.IsArtificial(e.t.Basis(r)) {
			r++
			continue
		}
		j := e.pivotOutColumn(r)
		if j < 0 {
			e.t.DropRow(r)
			continue
		}
		if err := e.t.Pivot(r, j); err != nil {
			return NotStarted, err
		}
		r++
	}

	return Optimal, nil
}

// pivotOutColumn finds a non-artificial, non-basic column with a usable
// entry in row r, or −1 when the row is redundant.
func (e *engine) pivotOutColumn(r int) int {
	for j := 0; j < e.t.NumCols(); j++ {
		if e.cf.IsArtificial(j) || e.t.IsBasic(j) {
			continue
		}
		if math.Abs(e.t.At(r, j)) >= e.opts.PivotTolerance {
			return j
		}
	}

	return -1
}

// run is the shared pivot loop of both phases.
func (e *engine) run() (Status, error) {
	e.stall = 0
	for {
		j := e.entering()
		if j < 0 {
			return Optimal, nil
		}
		r := e.leaving(j)
		if r < 0 {
			return Unbounded, nil
		}
		before := e.t.Objective()
		if err := e.t.Pivot(r, j); err != nil {
			return NotStarted, err
		}
		if e.t.Objective() > before+e.opts.Tolerance {
			e.stall = 0
		} else {
			e.stall++
		}
		if e.iterations++; e.iterations >= e.opts.MaxIterations {
			return IterationLimit, nil
		}
	}
}

// entering applies Dantzig's rule: the non-basic, non-artificial column
// with the most positive reduced cost; exact ties resolve to the
// smallest index by scan order. After a degenerate stall it applies
// Bland's rule instead: the smallest such index wins outright.
// Returns −1 at optimality.
func (e *engine) entering() int {
	bland := e.stall >= degenerateStallLimit
	best, bestCost := -1, e.opts.Tolerance
	for j := 0; j < e.t.NumCols(); j++ {
		if e.t.IsBasic(j) || e.cf.IsArtificial(j) {
			continue
		}
		c := e.t.ReducedCost(j)
		if bland && c > e.opts.Tolerance {
			return j
		}
		if c > bestCost {
			best, bestCost = j, c
		}
	}

	return best
}

// leaving applies the minimal-ratio test over rows whose entry in
// column j is positive and usable (≥ ε_pivot), breaking ratio ties by
// Bland's rule (smallest basic column index).
// Returns −1 when no row limits the entering column (unbounded).
func (e *engine) leaving(j int) int {
	best, bestRatio := -1, math.Inf(1)
	for i := 0; i < e.t.NumRows(); i++ {
		a := e.t.At(i, j)
		if a < e.opts.PivotTolerance {
			continue
		}
		ratio := e.t.RHS(i) / a
		switch {
		case best < 0 || ratio < bestRatio-e.opts.Tolerance:
			best, bestRatio = i, ratio
		case math.Abs(ratio-bestRatio) <= e.opts.Tolerance && e.t.Basis(i) < e.t.Basis(best):
			// Bland tie-break; keep the smaller ratio of the tied pair.
			best, bestRatio = i, math.Min(ratio, bestRatio)
		}
	}

	return best
}

// normalize fills zero option fields with the documented defaults.
func normalize(opts *Options) Options {
	o := DefaultOptions()
	if opts == nil {
		return o
	}
	if opts.MaxIterations > 0 {
		o.MaxIterations = opts.MaxIterations
	}
	if opts.Tolerance > 0 {
		o.Tolerance = opts.Tolerance
	}
	if opts.PivotTolerance > 0 {
		o.PivotTolerance = opts.PivotTolerance
	}
	if opts.ZeroTolerance > 0 {
		o.ZeroTolerance = opts.ZeroTolerance
	}

	return o
}
