package solver

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/linprog/model"
	"github.com/katalvlaran/linprog/simplex"
)

// Solution is the user-facing outcome of one solve: a status, the
// objective value (present only when Optimal), the reconstructed
// user-space variable values, and solve accounting.
//
// A Solution owns its value map and stays valid after the model is
// discarded.
type Solution struct {
	status     simplex.Status
	objective  float64
	hasObj     bool
	values     map[model.VariableKey]float64
	iterations int
	solveTime  time.Duration
}

// Status returns the terminal solver status.
func (s *Solution) Status() simplex.Status {
	return s.status
}

// IsOptimal reports whether an optimal solution was found.
func (s *Solution) IsOptimal() bool {
	return s.status.IsOptimal()
}

// ObjectiveValue returns the user-space objective value; ok is false
// unless the status is Optimal.
func (s *Solution) ObjectiveValue() (value float64, ok bool) {
	return s.objective, s.hasObj
}

// Value returns the value of a variable, or 0 when the solution carries
// no value for it (non-optimal statuses, unknown keys).
func (s *Solution) Value(key model.VariableKey) float64 {
	return s.values[key]
}

// Values returns a copy of the variable-value map. The map is empty for
// non-optimal statuses.
func (s *Solution) Values() map[model.VariableKey]float64 {
	out := make(map[model.VariableKey]float64, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}

	return out
}

// Iterations returns the number of simplex pivots performed.
func (s *Solution) Iterations() int {
	return s.iterations
}

// SolveTime returns the wall-clock duration of the solve.
func (s *Solution) SolveTime() time.Duration {
	return s.solveTime
}

// String implements fmt.Stringer with a compact report.
func (s *Solution) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "status: %s\n", s.status)
	if s.hasObj {
		fmt.Fprintf(&sb, "objective: %.6g\n", s.objective)
	} else {
		sb.WriteString("objective: none\n")
	}
	keys := make([]model.VariableKey, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Fprintf(&sb, "  x%d = %.6g\n", k, s.values[k])
	}
	fmt.Fprintf(&sb, "iterations: %d, time: %s", s.iterations, s.solveTime)

	return sb.String()
}
