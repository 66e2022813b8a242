package tui

import (
	"time"

	"github.com/agbru/numcalc/internal/orchestration"
)

// ProgressMsg carries an aggregated progress update from the calculation
// goroutines into the bubbletea event loop.
type ProgressMsg struct {
	CalculatorIndex int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel has been closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the per-calculator results of a comparison run.
type ComparisonResultsMsg struct {
	Results []orchestration.CalculationResult
}

// FinalResultMsg carries the winning result of a completed run.
type FinalResultMsg struct {
	Result orchestration.CalculationResult
	Opts   orchestration.PresentationOptions
}

// ErrorMsg carries a failed run.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives the periodic UI refresh.
type TickMsg time.Time

// MemStatsMsg carries a Go runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// CalculationCompleteMsg signals that the orchestration finished.
// Generation guards against stale messages after a restart.
type CalculationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the execution context was canceled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
