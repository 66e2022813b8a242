package sequence

import (
	"context"
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// calc is a shorthand that computes F(n) with the given calculator and
// default options.
func calc(t *testing.T, c Calculator, n uint64) *big.Int {
	t.Helper()
	result, err := c.Calculate(context.Background(), nil, n, Options{})
	if err != nil {
		t.Fatalf("%s: Calculate(%d) returned error: %v", c.Name(), n, err)
	}
	return result
}

// TestKnownValues verifies every calculator against hand-checked terms,
// including both base cases of the F(0)=0, F(1)=1 convention.
func TestKnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n        uint64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{2, "1"},
		{3, "2"},
		{4, "3"},
		{5, "5"},
		{10, "55"},
		{20, "6765"},
		{40, "102334155"},
	}

	for _, c := range []Calculator{&Iterative{}, &Recursive{}, &FastDoubling{}} {
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()
			for _, tt := range tests {
				if got := calc(t, c, tt.n); got.String() != tt.expected {
					t.Errorf("%s: F(%d) = %s, want %s", c.Name(), tt.n, got.String(), tt.expected)
				}
			}
		})
	}
}

// TestLargeValues verifies the unbounded calculators beyond the uint64 range.
func TestLargeValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		n        uint64
		expected string
	}{
		{"F(92) max uint64", 92, "7540113804746346429"},
		{"F(93) overflows uint64", 93, "12200160415121876738"},
		{"F(94) requires big.Int", 94, "19740274219868223167"},
		{"F(100)", 100, "354224848179261915075"},
		{"F(200)", 200, "280571172992510140037611932413038677189525"},
	}

	for _, c := range []Calculator{&Iterative{}, &FastDoubling{}} {
		for _, tt := range tests {
			t.Run(c.Name()+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				if got := calc(t, c, tt.n); got.String() != tt.expected {
					t.Errorf("F(%d) = %s, want %s", tt.n, got.String(), tt.expected)
				}
			})
		}
	}
}

// TestAllCalculatorsAgree cross-checks the three implementations for every
// index the recursive form accepts.
func TestAllCalculatorsAgree(t *testing.T) {
	t.Parallel()
	iterative := &Iterative{}
	recursive := &Recursive{}
	doubling := &FastDoubling{}

	for n := uint64(0); n <= DefaultRecursionLimit; n++ {
		it := calc(t, iterative, n)
		rec := calc(t, recursive, n)
		dbl := calc(t, doubling, n)

		if it.Cmp(rec) != 0 {
			t.Errorf("F(%d): iterative = %s, recursive = %s", n, it, rec)
		}
		if it.Cmp(dbl) != 0 {
			t.Errorf("F(%d): iterative = %s, fast-doubling = %s", n, it, dbl)
		}
	}
}

// TestRecursive_Guard verifies the recursion limit guard.
func TestRecursive_Guard(t *testing.T) {
	t.Parallel()
	recursive := &Recursive{}

	t.Run("default limit rejects n=41", func(t *testing.T) {
		t.Parallel()
		_, err := recursive.Calculate(context.Background(), nil, DefaultRecursionLimit+1, Options{})
		var validationErr apperrors.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if validationErr.Field != "n" {
			t.Errorf("Field = %q, want %q", validationErr.Field, "n")
		}
	})

	t.Run("custom limit is honored", func(t *testing.T) {
		t.Parallel()
		opts := Options{RecursionLimit: 10}
		if _, err := recursive.Calculate(context.Background(), nil, 10, opts); err != nil {
			t.Errorf("n at the limit should succeed, got %v", err)
		}
		if _, err := recursive.Calculate(context.Background(), nil, 11, opts); err == nil {
			t.Error("n above the limit should fail")
		}
	})
}

// TestCancellation verifies that an already-canceled context aborts every
// calculator before any work is done.
func TestCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, c := range []Calculator{&Iterative{}, &Recursive{}, &FastDoubling{}} {
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()
			_, err := c.Calculate(ctx, nil, 1_000_000, Options{})
			if !apperrors.IsContextError(err) {
				t.Errorf("expected a context error, got %v", err)
			}
		})
	}
}

// TestProgressReporting verifies that progress ends at 1.0 and stays within
// the normalized range.
func TestProgressReporting(t *testing.T) {
	t.Parallel()

	for _, c := range []Calculator{&Iterative{}, &FastDoubling{}} {
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()
			var values []float64
			report := func(v float64) { values = append(values, v) }

			if _, err := c.Calculate(context.Background(), report, 10_000, Options{}); err != nil {
				t.Fatalf("Calculate returned error: %v", err)
			}

			if len(values) == 0 {
				t.Fatal("no progress reported")
			}
			for _, v := range values {
				if v < 0.0 || v > 1.0 {
					t.Errorf("progress value %v out of range", v)
				}
			}
			if last := values[len(values)-1]; last != 1.0 {
				t.Errorf("final progress = %v, want 1.0", last)
			}
		})
	}
}

// TestDefaultFactory tests calculator registration and lookup.
func TestDefaultFactory(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	t.Run("List returns all three algorithms", func(t *testing.T) {
		t.Parallel()
		names := factory.List()
		want := []string{"iterative", "recursive", "fast-doubling"}
		if len(names) != len(want) {
			t.Fatalf("List() = %v, want %v", names, want)
		}
		for i, name := range want {
			if names[i] != name {
				t.Errorf("List()[%d] = %q, want %q", i, names[i], name)
			}
		}
	})

	t.Run("Get is case-insensitive", func(t *testing.T) {
		t.Parallel()
		c, ok := factory.Get("Fast-Doubling")
		if !ok {
			t.Fatal("Get should find fast-doubling regardless of case")
		}
		if c.Name() != "fast-doubling" {
			t.Errorf("Name() = %q, want %q", c.Name(), "fast-doubling")
		}
	})

	t.Run("Get rejects unknown names", func(t *testing.T) {
		t.Parallel()
		if _, ok := factory.Get("matrix"); ok {
			t.Error("Get should not find an unregistered calculator")
		}
	})

	t.Run("GetAll returns a defensive copy", func(t *testing.T) {
		t.Parallel()
		all := factory.GetAll()
		all[0] = nil
		if again := factory.GetAll(); again[0] == nil {
			t.Error("GetAll should not expose internal state")
		}
	})
}
