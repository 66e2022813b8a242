package sequence

import (
	"context"
	"math/big"
	"math/bits"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/progress"
)

// FastDoubling computes F(n) with the doubling identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)^2 + F(k+1)^2
//
// Processing n one bit at a time from the most significant bit gives
// O(log n) big.Int multiplications, which makes it the right default for
// large indices.
type FastDoubling struct{}

// Verify interface compliance.
var _ Calculator = (*FastDoubling)(nil)

// Name returns the canonical algorithm name.
func (c *FastDoubling) Name() string { return "fast-doubling" }

// Calculate computes F(n) via fast doubling. The context is checked and
// progress reported once per bit of n.
func (c *FastDoubling) Calculate(ctx context.Context, report progress.ProgressCallback, n uint64, _ Options) (*big.Int, error) {
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

	// fk holds F(k), fk1 holds F(k+1), where k is the prefix of n made of
	// the bits consumed so far. Scratch values are reused across rounds.
	fk := big.NewInt(0)
	fk1 := big.NewInt(1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	numBits := bits.Len64(n)
	for i := numBits - 1; i >= 0; i-- {
		// Doubling step: k -> 2k.
		// t1 = F(k) * (2*F(k+1) - F(k))
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)
		// t2 = F(k)^2 + F(k+1)^2
		t2.Mul(fk, fk)
		t2.Add(t2, new(big.Int).Mul(fk1, fk1))

		if n&(1<<uint(i)) == 0 {
			// k' = 2k: F(k') = t1, F(k'+1) = t2.
			fk.Set(t1)
			fk1.Set(t2)
		} else {
			// k' = 2k+1: F(k') = t2, F(k'+1) = t1 + t2.
			fk.Set(t2)
			fk1.Add(t1, t2)
		}

		if err := ctx.Err(); err != nil {
			return nil, apperrors.CalculationError{Cause: err}
		}
		report(float64(numBits-i) / float64(numBits))
	}

	return fk, nil
}
