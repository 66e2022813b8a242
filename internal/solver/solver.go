// Package solver implements fixed-point iterative numeric methods,
// currently Newton's method for square roots.
package solver

import (
	"math"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// Default solver parameters. Options fields left at zero fall back to these.
const (
	// DefaultInit is the starting estimate for the iteration.
	DefaultInit = 1.0
	// DefaultEpsilon is the default convergence tolerance. It bounds the
	// absolute error of the squared estimate, |x² - a|, not of the
	// estimate itself.
	DefaultEpsilon = 0.01
	// DefaultMaxIterations caps the iteration count so the solver always
	// terminates, even for pathological tolerances. Newton's method for
	// square roots converges quadratically, so 100 iterations is far more
	// than any representable input needs.
	DefaultMaxIterations = 100
)

// Options configures a square root computation. The zero value selects all
// documented defaults.
type Options struct {
	// Init is the starting estimate. Must be positive; zero selects
	// DefaultInit.
	Init float64
	// Epsilon is the convergence tolerance on |estimate² - target|.
	// Must be positive; zero selects DefaultEpsilon.
	Epsilon float64
	// MaxIterations bounds the iteration count. Zero selects
	// DefaultMaxIterations.
	MaxIterations int
}

// normalized resolves zero fields to their defaults.
func (o Options) normalized() Options {
	if o.Init == 0 {
		o.Init = DefaultInit
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// Result holds the outcome of a converged square root computation.
type Result struct {
	// Estimate is the computed square root approximation.
	Estimate float64
	// Iterations is the number of Newton steps performed. Zero when the
	// input short-circuits (a == 0).
	Iterations int
}

// SqrtNewton computes the square root of a by Newton's fixed-point
// iteration:
//
//	x := 0.5 * (x + a/x)
//
// until |x² - a| <= eps. Note that eps bounds the error of the squared
// estimate, not of the estimate itself: for a=16 with the default eps the
// result is within 0.01 of 16 when squared, which is a looser guarantee on
// the root.
//
// Preconditions and special cases:
//   - a < 0 (or NaN) returns a ValidationError immediately.
//   - a == 0 returns 0 directly, bypassing iteration entirely; the first
//     Newton step would otherwise divide by the estimate as it approaches
//     zero and stall.
//   - Exhausting MaxIterations returns a ConvergenceError carrying the
//     last estimate.
func SqrtNewton(a float64, opts Options) (Result, error) {
	if math.IsNaN(a) || a < 0 {
		return Result{}, apperrors.NewValidationError("a", "square root requires a non-negative argument, got %g", a)
	}
	if a == 0 {
		return Result{Estimate: 0, Iterations: 0}, nil
	}

	opts = opts.normalized()
	if opts.Init <= 0 || math.IsNaN(opts.Init) {
		return Result{}, apperrors.NewValidationError("init", "starting estimate must be positive, got %g", opts.Init)
	}
	if opts.Epsilon <= 0 || math.IsNaN(opts.Epsilon) {
		return Result{}, apperrors.NewValidationError("eps", "tolerance must be positive, got %g", opts.Epsilon)
	}
	if opts.MaxIterations < 0 {
		return Result{}, apperrors.NewValidationError("max-iterations", "iteration cap must be positive, got %d", opts.MaxIterations)
	}

	x := opts.Init
	if converged(x, a, opts.Epsilon) {
		return Result{Estimate: x, Iterations: 0}, nil
	}

	for i := 1; i <= opts.MaxIterations; i++ {
		x = 0.5 * (x + a/x)
		if converged(x, a, opts.Epsilon) {
			return Result{Estimate: x, Iterations: i}, nil
		}
	}

	return Result{}, apperrors.ConvergenceError{
		Target:       a,
		LastEstimate: x,
		Iterations:   opts.MaxIterations,
	}
}

// converged reports whether the squared estimate is within eps of the target.
func converged(x, a, eps float64) bool {
	return math.Abs(x*x-a) <= eps
}
