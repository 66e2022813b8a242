package sequence

import (
	"context"
	"math/big"
	"strings"

	"github.com/agbru/numcalc/internal/progress"
)

// Options carries the tunable parameters shared by all calculators.
// The zero value is usable: zero fields fall back to the package defaults.
type Options struct {
	// RecursionLimit is the highest index the recursive calculator accepts.
	// Zero means DefaultRecursionLimit. Values above MaxRecursionLimit are
	// rejected at validation time by the config layer.
	RecursionLimit int
}

// recursionLimit resolves the effective recursion limit.
func (o Options) recursionLimit() int {
	if o.RecursionLimit <= 0 {
		return DefaultRecursionLimit
	}
	return o.RecursionLimit
}

// Calculator is the common contract of all Fibonacci implementations.
// Implementations must be stateless: every Calculate call operates on local
// state only, so a single Calculator value is safe for concurrent use.
type Calculator interface {
	// Name returns the canonical algorithm name (e.g., "iterative").
	Name() string

	// Calculate computes F(n). It honors ctx cancellation, reports
	// normalized progress through report, and returns a ValidationError
	// when n violates the algorithm's guard.
	Calculate(ctx context.Context, report progress.ProgressCallback, n uint64, opts Options) (*big.Int, error)
}

// CalculatorFactory provides access to the registered calculators.
type CalculatorFactory interface {
	// List returns the canonical names of all registered calculators.
	List() []string
	// Get returns the calculator with the given name (case-insensitive).
	Get(name string) (Calculator, bool)
	// GetAll returns every registered calculator in registration order.
	GetAll() []Calculator
}

// defaultFactory is the standard registry of calculators.
type defaultFactory struct {
	calculators []Calculator
}

// NewDefaultFactory creates a factory containing the three standard
// implementations: iterative, recursive, and fast-doubling.
func NewDefaultFactory() CalculatorFactory {
	return &defaultFactory{
		calculators: []Calculator{
			&Iterative{},
			&Recursive{},
			&FastDoubling{},
		},
	}
}

// List returns the canonical names of all registered calculators.
func (f *defaultFactory) List() []string {
	names := make([]string, len(f.calculators))
	for i, c := range f.calculators {
		names[i] = c.Name()
	}
	return names
}

// Get returns the calculator with the given name, matching case-insensitively.
func (f *defaultFactory) Get(name string) (Calculator, bool) {
	for _, c := range f.calculators {
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
	}
	return nil, false
}

// GetAll returns every registered calculator.
func (f *defaultFactory) GetAll() []Calculator {
	out := make([]Calculator, len(f.calculators))
	copy(out, f.calculators)
	return out
}
