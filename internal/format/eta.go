package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// etaSmoothing is the exponential smoothing factor applied to the observed
// progress rate. Lower values favor the historical rate and keep the ETA
// from jumping around on bursty progress updates.
const etaSmoothing = 0.3

// ProgressState encapsulates the aggregated progress of concurrent
// calculations. It maintains the individual progress of each calculator and
// computes the average, providing a consolidated progress view when several
// algorithms run in parallel.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates a ProgressState tracking numCalculators entries.
func NewProgressState(numCalculators int) *ProgressState {
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records a new progress value for a specific calculator. Values are
// clamped to [0, 1]; out-of-range indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = clamp(value)
}

// CalculateAverage computes the average progress across all tracked
// calculators, 0.0 to 1.0.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numCalculators)
}

// ProgressWithETA extends ProgressState with a smoothed progress-rate
// estimate from which a remaining-time figure is derived. Safe for
// concurrent use.
type ProgressWithETA struct {
	*ProgressState

	mu             sync.Mutex
	numCalculators int
	startTime      time.Time
	lastUpdateTime time.Time
	lastProgress   float64
	progressRate   float64 // average progress fraction per second, smoothed
}

// NewProgressWithETA creates an ETA-aware progress tracker for
// numCalculators concurrent calculators.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState:  NewProgressState(numCalculators),
		numCalculators: numCalculators,
		startTime:      time.Now(),
	}
}

// UpdateWithETA records a progress value and returns the new average
// progress together with the current ETA estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ProgressState.Update(index, value)
	avg := p.ProgressState.CalculateAverage()

	now := time.Now()
	if !p.lastUpdateTime.IsZero() {
		dt := now.Sub(p.lastUpdateTime).Seconds()
		if dt > 0 && avg > p.lastProgress {
			rate := (avg - p.lastProgress) / dt
			if p.progressRate == 0 {
				p.progressRate = rate
			} else {
				p.progressRate = etaSmoothing*rate + (1-etaSmoothing)*p.progressRate
			}
		}
	}
	p.lastUpdateTime = now
	p.lastProgress = avg

	return avg, p.etaLocked(avg)
}

// GetETA returns the current ETA estimate without recording an update.
// Returns 0 when not enough data has been observed yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.etaLocked(p.ProgressState.CalculateAverage())
}

// etaLocked derives the remaining time from the smoothed rate. Caller must
// hold the mutex.
func (p *ProgressWithETA) etaLocked(avg float64) time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1.0 - avg
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining / p.progressRate * float64(time.Second))
}

// FormatETA renders a remaining-time estimate compactly. Non-positive
// durations mean "not enough data yet".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		minutes := int(eta.Minutes())
		seconds := int(eta.Seconds()) % 60
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		hours := int(eta.Hours())
		minutes := int(eta.Minutes()) % 60
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
}

// FormatProgressBarWithETA renders a bracketed textual progress bar with a
// percentage and ETA suffix, e.g. "[████░░░░] 50.0% | ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	progress = clamp(progress)
	if width < 1 {
		width = 1
	}

	filled := int(progress * float64(width))
	var bar strings.Builder
	bar.Grow(width)
	for i := 0; i < width; i++ {
		if i < filled {
			bar.WriteRune('█')
		} else {
			bar.WriteRune('░')
		}
	}

	return fmt.Sprintf("[%s] %.1f%% | ETA: %s", bar.String(), progress*100, FormatETA(eta))
}

// clamp bounds a progress value to the [0.0, 1.0] range.
func clamp(value float64) float64 {
	if value < 0.0 {
		return 0.0
	}
	if value > 1.0 {
		return 1.0
	}
	return value
}
