package orchestration

import (
	"time"

	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/progress"
)

// ProgressAggregator folds per-calculator progress updates into a single
// average with an ETA estimate. The CLI reporter and the dashboard both
// consume it, so the aggregation rules live here rather than in either
// front end.
type ProgressAggregator struct {
	state          *format.ProgressWithETA
	numCalculators int
}

// NewProgressAggregator builds an aggregator tracking numCalculators
// independent progress streams. A non-positive count returns nil; callers
// then fall back to DrainChannel.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:          format.NewProgressWithETA(numCalculators),
		numCalculators: numCalculators,
	}
}

// AggregatedProgress is the aggregate view after folding in one update.
type AggregatedProgress struct {
	// CalculatorIndex identifies the stream the update came from.
	CalculatorIndex int
	// Value is that stream's own progress, 0.0 to 1.0.
	Value float64
	// AverageProgress is the mean across every tracked stream.
	AverageProgress float64
	// ETA extrapolates the remaining time from the smoothed rate.
	ETA time.Duration
}

// Update folds one progress update into the aggregate and returns the
// resulting view.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.CalculatorIndex, update.Value)
	return AggregatedProgress{
		CalculatorIndex: update.CalculatorIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage reads the current mean without folding in an update;
// the CLI ticker uses it for periodic redraws between updates.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA reads the current ETA estimate without folding in an update.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumCalculators reports how many progress streams are tracked.
func (a *ProgressAggregator) NumCalculators() int {
	return a.numCalculators
}

// IsMultiCalculator reports whether more than one stream is tracked.
func (a *ProgressAggregator) IsMultiCalculator() bool {
	return a.numCalculators > 1
}

// DrainChannel consumes and discards updates until the channel closes.
// The producer side always sends; discarding here keeps it from blocking
// when no aggregator exists.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
