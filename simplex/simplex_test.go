package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/model"
	"github.com/katalvlaran/linprog/simplex"
	"github.com/katalvlaran/linprog/standard"
)

// canonical standardizes a model for engine-level tests.
func canonical(t *testing.T, m *model.Model) *standard.CanonicalForm {
	t.Helper()
	cf, err := standard.Standardize(m, 0)
	require.NoError(t, err)

	return cf
}

// TestSolve_SimpleOptimal drives one pivot: maximize x subject to
// x ≤ 10.
func TestSolve_SimpleOptimal(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	m.AddConstraint(x.Expr()).Le(10)
	m.SetObjective(model.Maximize, x.Expr())

	sol, err := simplex.Solve(canonical(t, m), nil)
	require.NoError(t, err)

	assert.Equal(t, simplex.Optimal, sol.Status)
	assert.InDelta(t, 10.0, sol.Objective, 1e-9)
	assert.InDelta(t, 10.0, sol.X[0], 1e-9)
	assert.Equal(t, 1, sol.Iterations)
}

// TestSolve_Unbounded verifies the missing-ratio detection.
func TestSolve_Unbounded(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	y := m.AddVariable().NonNegative()
	m.AddConstraint(y.Expr()).Le(1)
	m.SetObjective(model.Maximize, x.Expr())

	sol, err := simplex.Solve(canonical(t, m), nil)
	require.NoError(t, err)
	assert.Equal(t, simplex.Unbounded, sol.Status)
}

// TestSolve_InfeasiblePhaseOne verifies that a Phase I optimum below −ε
// (an artificial left positive) is reported as infeasibility.
func TestSolve_InfeasiblePhaseOne(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	m.AddConstraint(x.Expr()).Le(1)
	m.AddConstraint(x.Expr()).Ge(2)
	m.SetObjective(model.Maximize, x.Expr())

	sol, err := simplex.Solve(canonical(t, m), nil)
	require.NoError(t, err)
	assert.Equal(t, simplex.Infeasible, sol.Status)
}

// TestSolve_EqualityNeedsPhaseOne verifies a Phase I hand-off into an
// optimal Phase II on an equality-constrained problem.
func TestSolve_EqualityNeedsPhaseOne(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	y := m.AddVariable().NonNegative()
	m.AddConstraint(x.Expr().Scale(2).Plus(y.Expr())).Eq(10)
	m.SetObjective(model.Maximize, x.Expr().Plus(y.Expr()))

	sol, err := simplex.Solve(canonical(t, m), nil)
	require.NoError(t, err)

	assert.Equal(t, simplex.Optimal, sol.Status)
	assert.InDelta(t, 10.0, sol.Objective, 1e-9)
}

// TestSolve_RedundantRowDropped verifies the pivot-out-or-drop policy:
// a duplicated equality leaves one artificial basic at zero whose row
// has no usable column and must be dropped.
func TestSolve_RedundantRowDropped(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	y := m.AddVariable().NonNegative()
	sum := x.Expr().Plus(y.Expr())
	m.AddConstraint(sum).Eq(2)
	m.AddConstraint(sum).Eq(2)
	m.SetObjective(model.Maximize, sum)

	sol, err := simplex.Solve(canonical(t, m), nil)
	require.NoError(t, err)

	assert.Equal(t, simplex.Optimal, sol.Status)
	assert.InDelta(t, 2.0, sol.Objective, 1e-9)
}

// TestSolve_IterationLimit verifies the pivot budget maps to the
// IterationLimit status, not an error.
func TestSolve_IterationLimit(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	y := m.AddVariable().NonNegative()
	m.AddConstraint(x.Expr().AddTerm(y.Key(), 2)).Le(14)
	m.AddConstraint(x.Expr().Scale(3).AddTerm(y.Key(), -1)).Le(0)
	m.SetObjective(model.Maximize, x.Expr().Scale(3).AddTerm(y.Key(), 4))

	sol, err := simplex.Solve(canonical(t, m), &simplex.Options{MaxIterations: 1})
	require.NoError(t, err)

	assert.Equal(t, simplex.IterationLimit, sol.Status)
	assert.Equal(t, 1, sol.Iterations)
}

// TestSolve_NoConstraints verifies both degenerate empty-tableau paths.
func TestSolve_NoConstraints(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	m.SetObjective(model.Maximize, x.Expr())
	sol, err := simplex.Solve(canonical(t, m), nil)
	require.NoError(t, err)
	assert.Equal(t, simplex.Unbounded, sol.Status)

	m2 := model.New()
	y := m2.AddVariable().NonNegative()
	m2.SetObjective(model.Minimize, y.Expr())
	sol, err = simplex.Solve(canonical(t, m2), nil)
	require.NoError(t, err)
	assert.Equal(t, simplex.Optimal, sol.Status)
	assert.InDelta(t, 0.0, sol.Objective, 1e-12)
}

// TestTableau_PivotMaintainsUnitColumns checks the basis invariant:
// after every pivot each basic column is a unit vector with its 1 in
// the basis row.
func TestTableau_PivotMaintainsUnitColumns(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	y := m.AddVariable().NonNegative()
	m.AddConstraint(x.Expr().AddTerm(y.Key(), 2)).Le(14)
	m.AddConstraint(x.Expr().AddTerm(y.Key(), -1)).Le(2)
	m.SetObjective(model.Maximize, x.Expr().Plus(y.Expr()))
	cf := canonical(t, m)

	tb := simplex.NewTableau(cf, simplex.DefaultOptions())
	tb.SetObjective(func(j int) float64 { return cf.C.AtVec(j) })

	require.NoError(t, tb.Pivot(0, 1)) // y enters row 0
	require.NoError(t, tb.Pivot(1, 0)) // x enters row 1

	for r := 0; r < tb.NumRows(); r++ {
		j := tb.Basis(r)
		for i := 0; i < tb.NumRows(); i++ {
			want := 0.0
			if i == r {
				want = 1.0
			}
			assert.InDelta(t, want, tb.At(i, j), 1e-12, "basic column %d, row %d", j, i)
		}
		assert.InDelta(t, 0.0, tb.ZRow(j), 1e-12, "basic column %d must be priced out", j)
	}
}

// TestTableau_SetObjectivePricesOutBasis verifies z-row consistency
// when an objective is loaded onto a non-trivial basis.
func TestTableau_SetObjectivePricesOutBasis(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	m.AddConstraint(x.Expr()).Le(4)
	m.SetObjective(model.Maximize, x.Expr().Scale(5))
	cf := canonical(t, m)

	tb := simplex.NewTableau(cf, simplex.DefaultOptions())
	tb.SetObjective(func(j int) float64 { return cf.C.AtVec(j) })
	require.NoError(t, tb.Pivot(0, 0)) // make x basic

	// Reload the same objective on the pivoted basis: the objective
	// value must be re-derived, not reset.
	tb.SetObjective(func(j int) float64 { return cf.C.AtVec(j) })
	assert.InDelta(t, 20.0, tb.Objective(), 1e-12)
	assert.InDelta(t, 0.0, tb.ZRow(0), 1e-12)
}

// TestTableau_DropRow verifies bookkeeping after removing a redundant
// row.
func TestTableau_DropRow(t *testing.T) {
	m := model.New()
	x := m.AddVariable().NonNegative()
	m.AddConstraint(x.Expr()).Le(1)
	m.AddConstraint(x.Expr()).Le(2)
	m.AddConstraint(x.Expr()).Le(3)
	m.SetObjective(model.Maximize, x.Expr())
	cf := canonical(t, m)

	tb := simplex.NewTableau(cf, simplex.DefaultOptions())
	dropped := tb.Basis(1)
	tb.DropRow(1)

	require.Equal(t, 2, tb.NumRows())
	assert.False(t, tb.IsBasic(dropped), "dropped row's basic column leaves the basis")
	assert.Equal(t, 3.0, tb.RHS(1), "rows after the dropped one shift up")
	for r := 0; r < tb.NumRows(); r++ {
		assert.True(t, tb.IsBasic(tb.Basis(r)))
	}
}
