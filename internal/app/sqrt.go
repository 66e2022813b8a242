package app

import (
	"context"
	"io"

	"github.com/agbru/numcalc/internal/cli"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/instrument"
	"github.com/agbru/numcalc/internal/solver"
)

// runSqrt executes the square root solver command. The solver is a bounded
// fixed-point iteration, so unlike the sequence path it needs no timeout or
// signal lifecycle.
func (a *Application) runSqrt(_ context.Context, out io.Writer) int {
	timed, err := instrument.Measure(func() (solver.Result, error) {
		return solver.SqrtNewton(a.Config.SqrtArg, a.Config.ToSolverOptions())
	})
	if err != nil {
		return apperrors.HandleCalculationError(err, timed.Elapsed, a.ErrWriter, cli.CLIColorProvider{})
	}

	cli.DisplaySqrtResult(out, a.Config.SqrtArg, timed.Value, timed.Elapsed, a.Config.Quiet)
	return apperrors.ExitSuccess
}
