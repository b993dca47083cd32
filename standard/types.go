package standard

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/model"
)

// noOrigin marks a RowOrigin / Column field that points at nothing.
const noOrigin = -1

// ColumnKind classifies a canonical column.
type ColumnKind int

const (
	// ColumnStructural columns carry (a part of) a user variable.
	ColumnStructural ColumnKind = iota

	// ColumnSlack columns absorb the gap of a ≤ row.
	ColumnSlack

	// ColumnSurplus columns absorb the excess of a ≥ row (coefficient −1).
	ColumnSurplus

	// ColumnArtificial columns seed the Phase I basis and must be zero in
	// any feasible solution.
	ColumnArtificial
)

// String returns the kind name.
func (k ColumnKind) String() string {
	switch k {
	case ColumnStructural:
		return "structural"
	case ColumnSlack:
		return "slack"
	case ColumnSurplus:
		return "surplus"
	case ColumnArtificial:
		return "artificial"
	default:
		return "?"
	}
}

// Column annotates one canonical column: its kind, the user variable it
// carries (structural columns) or the row it was appended for
// (slack/surplus/artificial columns). Unset references are −1.
type Column struct {
	Kind     ColumnKind
	Variable model.VariableKey
	Row      int
}

// MappingKind classifies how a user variable decomposes into canonical
// columns.
type MappingKind int

const (
	// Direct: user var equals canonical column Col.
	Direct MappingKind = iota

	// Shifted: user var = x[Col] + Shift.
	Shifted

	// Negated: user var = −x[Col] + Shift.
	Negated

	// FreeSplit: user var = x[Col] − x[NegCol].
	FreeSplit
)

// Mapping describes the decomposition of one user variable.
type Mapping struct {
	Kind   MappingKind
	Col    int
	NegCol int
	Shift  float64
}

// RowOrigin records where a canonical row came from: a user constraint,
// or the range row of a bounded user variable. Unset references are −1.
type RowOrigin struct {
	Constraint model.ConstraintKey
	Variable   model.VariableKey
}

// CanonicalForm is the standardizer output consumed by the simplex
// engine: maximize C·x subject to A·x = B, x ≥ 0, with B ≥ 0.
//
// Rows and columns carry enough annotation to recover the user-space
// solution: Mappings is indexed by model.VariableKey, Columns and Rows
// by canonical index. SlackCol and ArtCol give, per row, the index of
// its slack/surplus column and artificial column (−1 when absent); every
// row has either a slack or an artificial, which together form the
// identity starting basis.
type CanonicalForm struct {
	NumRows int // m
	NumCols int // n

	A *mat.Dense    // m×n constraint matrix
	B *mat.VecDense // m right-hand sides, all ≥ 0
	C *mat.VecDense // n objective coefficients (maximization)

	Columns  []Column
	Rows     []RowOrigin
	Mappings []Mapping

	SlackCol []int
	ArtCol   []int

	// NumArtificial is the number of artificial columns; Phase I runs
	// only when it is positive.
	NumArtificial int

	// Negated records that the user objective was a minimization and was
	// negated on entry; ConstOffset is the user-space constant to add to
	// the re-signed engine objective.
	Negated     bool
	ConstOffset float64
}

// InitialBasis returns the contractual starting basis: per row, the
// artificial column when one exists, otherwise the slack column.
// Complexity: O(m).
func (cf *CanonicalForm) InitialBasis() []int {
	basis := make([]int, cf.NumRows)
	for r := 0; r < cf.NumRows; r++ {
		if cf.ArtCol[r] >= 0 {
			basis[r] = cf.ArtCol[r]
		} else {
			basis[r] = cf.SlackCol[r]
		}
	}

	return basis
}

// IsArtificial reports whether canonical column j is artificial.
func (cf *CanonicalForm) IsArtificial(j int) bool {
	return cf.Columns[j].Kind == ColumnArtificial
}
