package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/instrument"
	"github.com/agbru/numcalc/internal/progress"
	"github.com/agbru/numcalc/internal/sequence"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking calculation
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// tracerName identifies this package's spans.
const tracerName = "github.com/agbru/numcalc/internal/orchestration"

// ExecuteCalculations orchestrates the concurrent execution of one or more
// sequence calculations.
//
// It manages the lifecycle of calculation goroutines, collects their results,
// and coordinates the display of progress updates. This function is the core
// of the application's concurrency model. Each calculation runs in its own
// span and is timed individually; a failing calculator never prevents the
// others from completing.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - calculators: A slice of calculators to execute.
//   - n: The sequence index to calculate.
//   - opts: The calculation options shared by all calculators.
//   - progressReporter: The progress reporter for displaying updates (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []CalculationResult: A slice containing the results of each calculation.
func ExecuteCalculations(ctx context.Context, calculators []sequence.Calculator, n uint64, opts sequence.Options, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "ExecuteCalculations",
		trace.WithAttributes(
			attribute.Int64("calc.n", int64(n)),
			attribute.Int("calc.count", len(calculators)),
		))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan progress.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		idx, calculator := i, calc
		report := progress.NewChannelCallback(progressChan, idx)
		g.Go(func() error {
			calcCtx, calcSpan := tracer.Start(gctx, "Calculate",
				trace.WithAttributes(attribute.String("calc.algorithm", calculator.Name())))
			defer calcSpan.End()

			startTime := time.Now()
			timed, err := instrument.MeasureCtx(calcCtx, func(ctx context.Context) (*big.Int, error) {
				return calculator.Calculate(ctx, report, n, opts)
			})
			duration := timed.Elapsed
			if err != nil {
				// The decorator discards the elapsed time on failure;
				// the comparison table still wants it.
				duration = time.Since(startTime)
				calcSpan.RecordError(err)
			}
			results[idx] = CalculationResult{
				Name: calculator.Name(), Result: timed.Value, Duration: duration, Err: err,
			}
			// Errors are recorded per slot, not bubbled: one failing
			// algorithm must not cancel its siblings.
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple algorithms and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful calculations, and displays a comparative table. All successful
// calculators must agree on the value; a disagreement is a critical failure
// regardless of how many succeeded.
//
// Parameters:
//   - results: The slice of calculation results to analyze.
//   - popts: The presentation options.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CalculationResult, popts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *CalculationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		return presenter.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && res.Result.Cmp(firstValidResult.Result) != 0 {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, popts, out)
	return apperrors.ExitSuccess
}
