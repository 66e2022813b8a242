package sequence

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/progress"
)

// Iterative computes F(n) with two rolling accumulators.
//
// Each step advances the pair (F(k), F(k+1)) to (F(k+1), F(k)+F(k+1)), so
// the whole run needs O(n) big.Int additions and O(1) working memory
// regardless of n.
type Iterative struct{}

// Verify interface compliance.
var _ Calculator = (*Iterative)(nil)

// Name returns the canonical algorithm name.
func (c *Iterative) Name() string { return "iterative" }

// Calculate computes F(n) iteratively. It checks ctx every
// CancelCheckInterval iterations and reports progress at the same cadence.
func (c *Iterative) Calculate(ctx context.Context, report progress.ProgressCallback, n uint64, _ Options) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.CalculationError{Cause: err}
	}
	if report == nil {
		report = progress.NoOpCallback
	}

	if n == 0 {
		report(1.0)
		return big.NewInt(0), nil
	}

	// a holds F(k), b holds F(k+1); start at k=0.
	a := big.NewInt(0)
	b := big.NewInt(1)
	for k := uint64(1); k <= n; k++ {
		a.Add(a, b)
		a, b = b, a

		if k%CancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, apperrors.CalculationError{Cause: err}
			}
			report(float64(k) / float64(n))
		}
	}

	report(1.0)
	return a, nil
}
