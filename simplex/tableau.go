package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linprog/standard"
)

// Tableau is the mutable simplex state: m constraint rows and one z-row,
// each of width n+1 with the right-hand side in the last cell, plus the
// basis bookkeeping.
//
// Invariants across pivots:
//  1. len(basis) == m; basis and non-basic columns partition 0..n-1.
//  2. Every basic column is a unit vector with its 1 in the basis row.
//  3. Every right-hand side stays ≥ −ε (primal feasibility).
type Tableau struct {
	m, n  int
	rows  [][]float64 // m rows of length n+1
	z     []float64   // reduced-objective row, length n+1
	basis []int       // basis[r] = canonical column basic in row r
	inBy  []int       // inBy[j] = row where column j is basic, or -1

	zeroTol float64
}

// NewTableau builds the tableau for a canonical form: [A | b] per row,
// a zeroed z-row and the standardizer's identity starting basis.
// Complexity: O(m·n).
func NewTableau(cf *standard.CanonicalForm, opts Options) *Tableau {
	t := &Tableau{
		m:       cf.NumRows,
		n:       cf.NumCols,
		rows:    make([][]float64, cf.NumRows),
		z:       make([]float64, cf.NumCols+1),
		basis:   cf.InitialBasis(),
		inBy:    make([]int, cf.NumCols),
		zeroTol: opts.ZeroTolerance,
	}
	for j := range t.inBy {
		t.inBy[j] = -1
	}
	for r := 0; r < t.m; r++ {
		row := make([]float64, t.n+1)
		for j := 0; j < t.n; j++ {
			row[j] = cf.A.At(r, j)
		}
		row[t.n] = cf.B.AtVec(r)
		t.rows[r] = row
		t.inBy[t.basis[r]] = r
	}

	return t
}

// NumRows returns the active row count (rows may be dropped as
// redundant after Phase I).
func (t *Tableau) NumRows() int {
	return t.m
}

// NumCols returns the column count.
func (t *Tableau) NumCols() int {
	return t.n
}

// Basis returns the basic column of row r.
func (t *Tableau) Basis(r int) int {
	return t.basis[r]
}

// IsBasic reports whether column j is currently basic.
func (t *Tableau) IsBasic(j int) bool {
	return t.inBy[j] >= 0
}

// At returns tableau entry (r, j); j == NumCols addresses the RHS cell.
func (t *Tableau) At(r, j int) float64 {
	return t.rows[r][j]
}

// RHS returns the right-hand side of row r, i.e. the value of its basic
// variable.
func (t *Tableau) RHS(r int) float64 {
	return t.rows[r][t.n]
}

// ZRow returns z-row entry j: the negated reduced cost of column j.
// j == NumCols addresses the current objective value.
func (t *Tableau) ZRow(j int) float64 {
	return t.z[j]
}

// ReducedCost returns c̄_j = −z[j] for column j.
func (t *Tableau) ReducedCost(j int) float64 {
	return -t.z[j]
}

// Objective returns the current objective value carried in the z-row.
func (t *Tableau) Objective() float64 {
	return t.z[t.n]
}

// SetObjective loads a fresh objective c (indexed by canonical column)
// into the z-row and prices out the current basis so that every basic
// column's z-entry is zero.
// Complexity: O(m·n).
func (t *Tableau) SetObjective(c func(j int) float64) {
	for j := 0; j < t.n; j++ {
		t.z[j] = -c(j)
	}
	t.z[t.n] = 0
	for r := 0; r < t.m; r++ {
		if f := t.z[t.basis[r]]; f != 0 {
			floats.AddScaled(t.z, -f, t.rows[r])
		}
	}
	t.flush(t.z)
}

// Pivot exchanges basis roles on (r, j): row r is scaled so T[r,j] = 1,
// then column j is eliminated from every other row including z.
// Returns ErrNumericalFailure if the update produced NaN or Inf.
// Complexity: O(m·n).
func (t *Tableau) Pivot(r, j int) error {
	p := t.rows[r][j]
	floats.Scale(1/p, t.rows[r])
	t.rows[r][j] = 1 // exact unit, regardless of rounding
	for i := 0; i < t.m; i++ {
		if i == r {
			continue
		}
		if f := t.rows[i][j]; f != 0 {
			floats.AddScaled(t.rows[i], -f, t.rows[r])
			t.rows[i][j] = 0
		}
	}
	if f := t.z[j]; f != 0 {
		floats.AddScaled(t.z, -f, t.rows[r])
		t.z[j] = 0
	}

	// Basis bookkeeping: j replaces the previous basic column of row r.
	t.inBy[t.basis[r]] = -1
	t.basis[r] = j
	t.inBy[j] = r

	// Flush denormal residue and guard against numerical blow-up.
	for i := 0; i < t.m; i++ {
		if err := t.checkFinite(t.flush(t.rows[i])); err != nil {
			return err
		}
	}

	return t.checkFinite(t.flush(t.z))
}

// DropRow removes row r from the tableau (used for redundant rows whose
// artificial stayed basic at zero with no pivot candidate).
// Complexity: O(m).
func (t *Tableau) DropRow(r int) {
	t.inBy[t.basis[r]] = -1
	t.rows = append(t.rows[:r], t.rows[r+1:]...)
	t.basis = append(t.basis[:r], t.basis[r+1:]...)
	t.m--
	for i := r; i < t.m; i++ {
		t.inBy[t.basis[i]] = i
	}
}

// Solution extracts the current basic solution: basic columns take their
// row's RHS, non-basic columns are zero.
// Complexity: O(n + m).
func (t *Tableau) Solution() []float64 {
	x := make([]float64, t.n)
	for r := 0; r < t.m; r++ {
		x[t.basis[r]] = t.rows[r][t.n]
	}

	return x
}

// flush rounds entries below the zero tolerance to exactly 0 and
// returns the row for chaining.
func (t *Tableau) flush(row []float64) []float64 {
	for i, v := range row {
		if v != 0 && math.Abs(v) < t.zeroTol {
			row[i] = 0
		}
	}

	return row
}

// checkFinite reports ErrNumericalFailure when a row contains NaN/Inf.
func (t *Tableau) checkFinite(row []float64) error {
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite tableau entry %g: %w", v, ErrNumericalFailure)
		}
	}

	return nil
}
