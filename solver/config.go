package solver

import "github.com/katalvlaran/linprog/simplex"

// Default configuration values; see Config.
const (
	// DefaultMaxIterations bounds the total pivot count of one solve.
	DefaultMaxIterations = simplex.DefaultMaxIterations

	// DefaultTolerance is the feasibility/optimality epsilon.
	DefaultTolerance = simplex.DefaultTolerance

	// DefaultPivotTolerance is the smallest usable pivot magnitude.
	DefaultPivotTolerance = simplex.DefaultPivotTolerance

	// DefaultPruneTolerance drops canonical coefficients below this
	// magnitude during standardization.
	DefaultPruneTolerance = 1e-10
)

// Config carries the recognized solver options.
//
// Fields:
//   - MaxIterations  — pivot budget across both simplex phases (default 1000).
//   - Tolerance      — ε for feasibility and optimality decisions (default 1e-9).
//   - PivotTolerance — ε for pivot-entry selection (default 1e-9).
//   - PruneTolerance — ε for coefficient pruning (default 1e-10).
//
// Zero fields fall back to their defaults, so the zero Config and a nil
// *Config both mean "all defaults".
type Config struct {
	MaxIterations  int
	Tolerance      float64
	PivotTolerance float64
	PruneTolerance float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxIterations:  DefaultMaxIterations,
		Tolerance:      DefaultTolerance,
		PivotTolerance: DefaultPivotTolerance,
		PruneTolerance: DefaultPruneTolerance,
	}
}

// normalize fills zero fields with defaults.
func normalize(cfg *Config) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if cfg.MaxIterations > 0 {
		c.MaxIterations = cfg.MaxIterations
	}
	if cfg.Tolerance > 0 {
		c.Tolerance = cfg.Tolerance
	}
	if cfg.PivotTolerance > 0 {
		c.PivotTolerance = cfg.PivotTolerance
	}
	if cfg.PruneTolerance > 0 {
		c.PruneTolerance = cfg.PruneTolerance
	}

	return c
}

// engineOptions maps a Config onto the simplex option set.
func engineOptions(c Config) simplex.Options {
	return simplex.Options{
		MaxIterations:  c.MaxIterations,
		Tolerance:      c.Tolerance,
		PivotTolerance: c.PivotTolerance,
		ZeroTolerance:  simplex.DefaultZeroTolerance,
	}
}
