package sequence

// ─────────────────────────────────────────────────────────────────────────────
// Algorithm Guard Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultRecursionLimit is the highest index the naive recursive
	// calculator accepts by default. The recursive form performs roughly
	// F(n) additions, so each extra term multiplies the running time by
	// the golden ratio; around n=40 a modern CPU already needs about a
	// second, and n=90 would outlive the hardware.
	DefaultRecursionLimit = 40

	// MaxRecursionLimit caps user-supplied recursion limits. F(93) is the
	// first term that overflows uint64, and the recursive implementation
	// accumulates in native integers before converting to big.Int.
	MaxRecursionLimit = 92

	// CancelCheckInterval is the number of loop iterations between context
	// cancellation checks in the iterative calculator. Checking every
	// iteration would dominate the cost of the additions themselves.
	CancelCheckInterval = 1024

	// MaxUint64Term is the largest index whose Fibonacci number fits in a
	// uint64. Beyond it arbitrary precision is mandatory.
	MaxUint64Term = 93
)

// GrowthFactor is log2(phi), where phi ≈ 1.618 (golden ratio).
// Used to estimate the bit length of F(n) for memory reporting.
const GrowthFactor = 0.69424
