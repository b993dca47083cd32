package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/model"
	"github.com/katalvlaran/linprog/simplex"
	"github.com/katalvlaran/linprog/standard"
)

// benchForm builds a deterministic dense-ish LP with n variables and n
// nested ≤ rows; every variable carries a positive coefficient in some
// row, so the problem is bounded.
func benchForm(tb testing.TB, n int) *standard.CanonicalForm {
	tb.Helper()
	m := model.New()
	vars := make([]*model.Variable, n)
	for i := range vars {
		vars[i] = m.AddVariable().NonNegative()
	}
	obj := model.NewExpr()
	for i := range vars {
		row := model.NewExpr()
		for j := 0; j <= i; j++ {
			row.AddTerm(vars[j].Key(), float64(1+(i*j)%3))
		}
		m.AddConstraint(row).Le(float64(10 + i))
		obj.AddTerm(vars[i].Key(), float64(1+i%5))
	}
	m.SetObjective(model.Maximize, obj)

	cf, err := standard.Standardize(m, 0)
	require.NoError(tb, err)

	return cf
}

func BenchmarkSolve_25x25(b *testing.B) {
	cf := benchForm(b, 25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(cf, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_100x100(b *testing.B) {
	cf := benchForm(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(cf, nil); err != nil {
			b.Fatal(err)
		}
	}
}
