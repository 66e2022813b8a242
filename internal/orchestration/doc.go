// Package orchestration coordinates concurrent execution of the numeric
// calculators and aggregates their results for comparison. It decouples
// business logic from presentation via the ProgressReporter and
// ResultPresenter interfaces.
package orchestration
