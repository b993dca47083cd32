package standard

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/model"
)

// pendingRow is one canonical row while the column layout is still open:
// structural coefficients, a normalized sense and a right-hand side.
type pendingRow struct {
	coefs  []float64 // indexed by structural column
	sense  model.ConstraintSense
	rhs    float64
	origin RowOrigin
}

// Standardize compiles a validated Model into its CanonicalForm.
// Substituted coefficients with magnitude below pruneTol are dropped
// from the canonical matrix; pruneTol ≤ 0 falls back to
// model.PruneTolerance.
//
// Stage 1 (Validate): eager model validation; no allocation on error.
// Stage 2 (Variables): assign structural columns per the transform
// table, emitting range rows for doubly-bounded variables in-line.
// Stage 3 (Constraints): substitute, fold constants right, flip
// negative right-hand sides.
// Stage 4 (Columns): append slack/surplus then artificial columns in
// row order and assemble A, b, c.
//
// Complexity: O(m·n) time and memory for the dense canonical matrix.
func Standardize(m *model.Model, pruneTol float64) (*CanonicalForm, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if pruneTol <= 0 {
		pruneTol = model.PruneTolerance
	}

	cf := &CanonicalForm{}

	// Stage 2: variables → structural columns, mappings, range rows.
	cf.Mappings = make([]Mapping, m.NumVariables())
	var rows []*pendingRow
	for _, v := range m.Variables() {
		key := v.Key()
		lo, hi := v.LowerBound(), v.UpperBound()
		switch {
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			pos := cf.addColumn(ColumnStructural, key, noOrigin)
			neg := cf.addColumn(ColumnStructural, key, noOrigin)
			cf.Mappings[key] = Mapping{Kind: FreeSplit, Col: pos, NegCol: neg}
		case math.IsInf(lo, -1):
			col := cf.addColumn(ColumnStructural, key, noOrigin)
			cf.Mappings[key] = Mapping{Kind: Negated, Col: col, NegCol: noOrigin, Shift: hi}
		case math.IsInf(hi, 1):
			col := cf.addColumn(ColumnStructural, key, noOrigin)
			if lo == 0 {
				cf.Mappings[key] = Mapping{Kind: Direct, Col: col, NegCol: noOrigin}
			} else {
				cf.Mappings[key] = Mapping{Kind: Shifted, Col: col, NegCol: noOrigin, Shift: lo}
			}
		default:
			// Both bounds finite: shift to lo and cap the width by a range row.
			col := cf.addColumn(ColumnStructural, key, noOrigin)
			cf.Mappings[key] = Mapping{Kind: Shifted, Col: col, NegCol: noOrigin, Shift: lo}
			rows = append(rows, &pendingRow{
				sense:  model.LessEqual,
				rhs:    hi - lo,
				origin: RowOrigin{Constraint: noOrigin, Variable: key},
			})
		}
	}
	nStruct := len(cf.Columns)

	// Materialize range-row coefficient vectors now that the structural
	// width is fixed.
	for _, row := range rows {
		row.coefs = make([]float64, nStruct)
		row.coefs[cf.Mappings[row.origin.Variable].Col] = 1
	}

	// Stage 3: user constraints.
	for _, c := range m.Constraints() {
		row := &pendingRow{
			coefs:  make([]float64, nStruct),
			sense:  c.Sense(),
			origin: RowOrigin{Constraint: c.Key(), Variable: noOrigin},
		}
		shift := substitute(cf.Mappings, c.LHS(), row.coefs)
		row.rhs = c.RHS() - c.LHS().Constant() - shift
		prune(row.coefs, pruneTol)
		rows = append(rows, row)
	}

	// Normalize: every right-hand side must be non-negative.
	for _, row := range rows {
		if row.rhs < 0 {
			row.rhs = -row.rhs
			for j := range row.coefs {
				row.coefs[j] = -row.coefs[j]
			}
			switch row.sense {
			case model.LessEqual:
				row.sense = model.GreaterEqual
			case model.GreaterEqual:
				row.sense = model.LessEqual
			}
		}
	}

	// Stage 4: slack/surplus columns per row in row order, then
	// artificial columns per row in row order.
	cf.NumRows = len(rows)
	cf.Rows = make([]RowOrigin, cf.NumRows)
	cf.SlackCol = make([]int, cf.NumRows)
	cf.ArtCol = make([]int, cf.NumRows)
	for r, row := range rows {
		cf.Rows[r] = row.origin
		switch row.sense {
		case model.LessEqual:
			cf.SlackCol[r] = cf.addColumn(ColumnSlack, noOrigin, r)
		case model.GreaterEqual:
			cf.SlackCol[r] = cf.addColumn(ColumnSurplus, noOrigin, r)
		default:
			cf.SlackCol[r] = noOrigin
		}
	}
	for r, row := range rows {
		if row.sense == model.GreaterEqual || row.sense == model.Equal {
			cf.ArtCol[r] = cf.addColumn(ColumnArtificial, noOrigin, r)
			cf.NumArtificial++
		} else {
			cf.ArtCol[r] = noOrigin
		}
	}
	cf.NumCols = len(cf.Columns)

	// Assemble the dense canonical system.
	cf.A = mat.NewDense(max(cf.NumRows, 1), max(cf.NumCols, 1), nil)
	cf.B = mat.NewVecDense(max(cf.NumRows, 1), nil)
	for r, row := range rows {
		for j, coef := range row.coefs {
			cf.A.Set(r, j, coef)
		}
		if cf.SlackCol[r] >= 0 {
			if row.sense == model.GreaterEqual {
				cf.A.Set(r, cf.SlackCol[r], -1)
			} else {
				cf.A.Set(r, cf.SlackCol[r], 1)
			}
		}
		if cf.ArtCol[r] >= 0 {
			cf.A.Set(r, cf.ArtCol[r], 1)
		}
		cf.B.SetVec(r, row.rhs)
	}

	// Objective: minimization is negated on entry; the constant part and
	// substitution shifts are folded into a user-space offset.
	obj := m.Objective()
	expr := obj.Expr()
	cf.Negated = obj.Sense() == model.Minimize
	if cf.Negated {
		expr = expr.Negate()
	}
	cVec := make([]float64, max(cf.NumCols, 1))
	shift := substitute(cf.Mappings, expr, cVec)
	prune(cVec, pruneTol)
	cf.C = mat.NewVecDense(max(cf.NumCols, 1), cVec)
	engineConst := expr.Constant() + shift
	if cf.Negated {
		cf.ConstOffset = -engineConst
	} else {
		cf.ConstOffset = engineConst
	}

	return cf, nil
}

// addColumn appends a canonical column and returns its index.
func (cf *CanonicalForm) addColumn(kind ColumnKind, v model.VariableKey, row int) int {
	cf.Columns = append(cf.Columns, Column{Kind: kind, Variable: v, Row: row})

	return len(cf.Columns) - 1
}

// substitute writes the canonical coefficients of expr into out (indexed
// by structural column) per the variable mappings, and returns the
// constant contributed by the shifts (Σ coefᵢ·shiftᵢ over shifted and
// negated variables).
func substitute(mappings []Mapping, expr *model.LinearExpr, out []float64) float64 {
	shift := 0.0
	for _, t := range expr.Terms() {
		mp := mappings[t.Key]
		switch mp.Kind {
		case Direct:
			out[mp.Col] += t.Coef
		case Shifted:
			out[mp.Col] += t.Coef
			shift += t.Coef * mp.Shift
		case Negated:
			out[mp.Col] -= t.Coef
			shift += t.Coef * mp.Shift
		case FreeSplit:
			out[mp.Col] += t.Coef
			out[mp.NegCol] -= t.Coef
		}
	}

	return shift
}

// prune zeroes coefficients below the tolerance, mirroring the
// expression-layer invariant after substitution may have merged split
// or negated parts.
func prune(coefs []float64, tol float64) {
	for j, c := range coefs {
		if c != 0 && math.Abs(c) < tol {
			coefs[j] = 0
		}
	}
}
