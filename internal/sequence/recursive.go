package sequence

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/progress"
)

// Recursive computes F(n) by direct translation of the recurrence:
//
//	F(n) = F(n-1) + F(n-2), F(1) = 1, F(0) = 0.
//
// The base cases terminate the recursion for every n >= 0; dropping them
// would recurse forever, which is why the guard below is mandatory and not
// a recoverable runtime condition. Running time is O(2^n), so the
// calculator rejects indices above Options.RecursionLimit instead of
// silently taking hours. It exists to demonstrate exponential blow-up
// against the iterative and fast-doubling forms.
type Recursive struct{}

// Verify interface compliance.
var _ Calculator = (*Recursive)(nil)

// Name returns the canonical algorithm name.
func (c *Recursive) Name() string { return "recursive" }

// Calculate computes F(n) recursively. Indices above the recursion limit
// return a ValidationError immediately; the recursion itself is not
// cancellable mid-flight, which is acceptable at the guarded sizes (worst
// case tens of milliseconds around the default limit of 40).
func (c *Recursive) Calculate(ctx context.Context, report progress.ProgressCallback, n uint64, opts Options) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.CalculationError{Cause: err}
	}
	if report == nil {
		report = progress.NoOpCallback
	}

	limit := opts.recursionLimit()
	if n > uint64(limit) {
		return nil, apperrors.NewValidationError("n",
			"index %d exceeds the recursion limit %d for the recursive algorithm; use iterative or fast-doubling", n, limit)
	}

	report(0.0)
	result := fibRecursive(n)
	report(1.0)

	return new(big.Int).SetUint64(result), nil
}

// fibRecursive is the unmemoized textbook recurrence. Valid for n <= 92;
// the public guard never lets larger indices reach it, so all intermediate
// values fit in a uint64.
func fibRecursive(n uint64) uint64 {
	if n < 2 {
		return n
	}
	return fibRecursive(n-1) + fibRecursive(n-2)
}
