// Package progress defines the types used to report calculation progress
// from the numeric algorithms to the presentation layers (CLI spinner, TUI).
// Algorithms report through a ProgressCallback and never know who listens.
package progress

// ProgressUpdate represents a single progress notification from one
// calculator. Updates flow through a buffered channel so a slow consumer
// never blocks the calculation itself.
type ProgressUpdate struct {
	// CalculatorIndex identifies which calculator sent the update when
	// several run concurrently.
	CalculatorIndex int
	// Value is the normalized progress, 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives a normalized progress value (0.0 to 1.0).
// Implementations must be cheap; algorithms call them from their hot loop.
type ProgressCallback func(value float64)

// NoOpCallback ignores all progress reports. Use it when progress display
// is disabled.
func NoOpCallback(float64) {}

// NewChannelCallback creates a callback that forwards clamped progress
// values to ch, tagged with the calculator index. The send is non-blocking:
// when the channel buffer is full the update is dropped rather than stalling
// the calculation.
func NewChannelCallback(ch chan<- ProgressUpdate, calculatorIndex int) ProgressCallback {
	return func(value float64) {
		select {
		case ch <- ProgressUpdate{CalculatorIndex: calculatorIndex, Value: Clamp(value)}:
		default:
		}
	}
}

// Clamp bounds a progress value to the [0.0, 1.0] range.
func Clamp(value float64) float64 {
	if value < 0.0 {
		return 0.0
	}
	if value > 1.0 {
		return 1.0
	}
	return value
}
