package orchestration

import (
	"testing"

	"github.com/agbru/numcalc/internal/progress"
)

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		count     int
		wantNil   bool
		wantMulti bool
	}{
		{name: "several calculators", count: 3, wantMulti: true},
		{name: "single calculator", count: 1, wantMulti: false},
		{name: "zero calculators", count: 0, wantNil: true},
		{name: "negative count", count: -1, wantNil: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			agg := NewProgressAggregator(tc.count)
			if tc.wantNil {
				if agg != nil {
					t.Fatalf("NewProgressAggregator(%d) = %v, want nil", tc.count, agg)
				}
				return
			}
			if agg == nil {
				t.Fatalf("NewProgressAggregator(%d) = nil, want an aggregator", tc.count)
			}
			if agg.NumCalculators() != tc.count {
				t.Errorf("NumCalculators() = %d, want %d", agg.NumCalculators(), tc.count)
			}
			if agg.IsMultiCalculator() != tc.wantMulti {
				t.Errorf("IsMultiCalculator() = %v, want %v", agg.IsMultiCalculator(), tc.wantMulti)
			}
		})
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(2)

	got := agg.Update(progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.5})
	if got.CalculatorIndex != 0 || got.Value != 0.5 {
		t.Errorf("Update echoed index %d value %v, want 0 and 0.5", got.CalculatorIndex, got.Value)
	}
	// One calculator at 0.5, the other untouched.
	if got.AverageProgress != 0.25 {
		t.Errorf("AverageProgress = %v, want 0.25", got.AverageProgress)
	}

	got = agg.Update(progress.ProgressUpdate{CalculatorIndex: 1, Value: 0.5})
	if got.AverageProgress != 0.5 {
		t.Errorf("AverageProgress = %v after both at 0.5, want 0.5", got.AverageProgress)
	}
}

func TestProgressAggregator_CalculateAverage(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(2)

	if avg := agg.CalculateAverage(); avg != 0.0 {
		t.Errorf("initial CalculateAverage() = %v, want 0", avg)
	}

	agg.Update(progress.ProgressUpdate{CalculatorIndex: 0, Value: 1.0})
	if avg := agg.CalculateAverage(); avg != 0.5 {
		t.Errorf("CalculateAverage() = %v after one finished, want 0.5", avg)
	}
}

func TestProgressAggregator_GetETA_NoData(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(1)

	if eta := agg.GetETA(); eta != 0 {
		t.Errorf("GetETA() = %v with no samples, want 0", eta)
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()

	t.Run("discards buffered updates", func(t *testing.T) {
		t.Parallel()
		ch := make(chan progress.ProgressUpdate, 5)
		for _, v := range []float64{0.1, 0.2, 0.3} {
			ch <- progress.ProgressUpdate{CalculatorIndex: 0, Value: v}
		}
		close(ch)

		DrainChannel(ch) // must return once the channel closes
	})

	t.Run("returns on an empty closed channel", func(t *testing.T) {
		t.Parallel()
		ch := make(chan progress.ProgressUpdate)
		close(ch)

		DrainChannel(ch)
	})
}
