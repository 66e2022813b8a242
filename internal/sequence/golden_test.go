package sequence

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/agbru/numcalc/internal/progress"
)

// loadGolden reads the oracle file produced by cmd/generate-golden.
func loadGolden(t *testing.T) map[uint64]string {
	t.Helper()

	f, err := os.Open("testdata/fib_golden.txt")
	if err != nil {
		t.Fatalf("failed to open golden file: %v", err)
	}
	defer f.Close()

	golden := make(map[uint64]string)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx, value, ok := strings.Cut(line, "\t")
		if !ok {
			t.Fatalf("malformed golden line: %q", line)
		}
		n, err := strconv.ParseUint(idx, 10, 64)
		if err != nil {
			t.Fatalf("malformed golden index %q: %v", idx, err)
		}
		golden[n] = value
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	return golden
}

func TestCalculators_Golden(t *testing.T) {
	t.Parallel()

	golden := loadGolden(t)
	factory := NewDefaultFactory()

	for _, name := range factory.List() {
		calc, ok := factory.Get(name)
		if !ok {
			t.Fatalf("factory lists %q but cannot resolve it", name)
		}

		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for n, want := range golden {
				// The recursive calculator is exponential; anything past
				// the low twenties is too slow for a unit test.
				if name == "recursive" && n > 25 {
					continue
				}

				got, err := calc.Calculate(context.Background(), progress.NoOpCallback, n, Options{})
				if err != nil {
					t.Fatalf("Calculate(%d) failed: %v", n, err)
				}
				if got.String() != want {
					t.Errorf("Calculate(%d) = %s, want %s", n, got, want)
				}
			}
		})
	}
}
