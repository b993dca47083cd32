package solver

import (
	"time"

	"github.com/katalvlaran/linprog/model"
	"github.com/katalvlaran/linprog/simplex"
	"github.com/katalvlaran/linprog/standard"
)

// Solve optimizes the model and returns its Solution.
//
// Stage 1 (Standardize): eager validation, then compilation to
// canonical form (model.ErrEmptyModel, model.ErrInvalidBounds and
// model.ErrIncompleteConstraint surface here).
// Stage 2 (Simplex): two-phase pivot loop
// (simplex.ErrNumericalFailure is the only engine error; Infeasible,
// Unbounded and IterationLimit become statuses).
// Stage 3 (Reconstruct): canonical values are lifted back through the
// variable back-map and the objective is re-signed and offset.
//
// cfg may be nil; zero fields fall back to the defaults of
// DefaultConfig.
func Solve(m *model.Model, cfg *Config) (*Solution, error) {
	start := time.Now()
	c := normalize(cfg)

	cf, err := standard.Standardize(m, c.PruneTolerance)
	if err != nil {
		return nil, err
	}

	opts := engineOptions(c)
	canon, err := simplex.Solve(cf, &opts)
	if err != nil {
		return nil, err
	}

	return reconstruct(cf, canon, time.Since(start)), nil
}

// reconstruct lifts a canonical solution to user space.
//
// Each user variable is rebuilt per its mapping:
//
//	Direct:    x = x[col]
//	Shifted:   x = x[col] + shift
//	Negated:   x = −x[col] + shift
//	FreeSplit: x = x[pos] − x[neg]
//
// The objective is re-negated when the user objective was a
// minimization and the tracked constant offset is added. Non-optimal
// statuses yield an empty value map and no objective value.
func reconstruct(cf *standard.CanonicalForm, canon *simplex.CanonicalSolution, elapsed time.Duration) *Solution {
	sol := &Solution{
		status:     canon.Status,
		values:     make(map[model.VariableKey]float64),
		iterations: canon.Iterations,
		solveTime:  elapsed,
	}
	if canon.Status != simplex.Optimal {
		return sol
	}

	for key, mp := range cf.Mappings {
		var v float64
		switch mp.Kind {
		case standard.Direct:
			v = canon.X[mp.Col]
		case standard.Shifted:
			v = canon.X[mp.Col] + mp.Shift
		case standard.Negated:
			v = -canon.X[mp.Col] + mp.Shift
		case standard.FreeSplit:
			v = canon.X[mp.Col] - canon.X[mp.NegCol]
		}
		sol.values[model.VariableKey(key)] = v
	}

	z := canon.Objective
	if cf.Negated {
		z = -z
	}
	sol.objective, sol.hasObj = z+cf.ConstOffset, true

	return sol
}
