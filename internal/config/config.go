// Package config parses and validates the application configuration from
// command-line flags and environment variables.
//
// Resolution chain (highest priority first):
//  1. CLI flags (--algo, --eps, ...)
//  2. Environment variables (NUMCALC_ALGO, NUMCALC_EPS, ...)
//  3. Static defaults below
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/sequence"
	"github.com/agbru/numcalc/internal/solver"
)

// EnvPrefix is the prefix of all environment variables read by this package.
const EnvPrefix = "NUMCALC_"

// Default configuration values.
const (
	DefaultN       = 10
	DefaultAlgo    = "all"
	DefaultTimeout = 1 * time.Minute
)

// AppConfig holds the complete, validated application configuration.
type AppConfig struct {
	// N is the Fibonacci index to calculate.
	N uint64
	// Algo selects the sequence algorithm ("all" compares every one).
	Algo string
	// RecursionLimit overrides the recursive calculator's guard (0 = default).
	RecursionLimit int

	// SqrtMode is true when --sqrt was given; the solver runs instead of
	// the sequence calculators.
	SqrtMode bool
	// SqrtArg is the value whose square root is computed.
	SqrtArg float64
	// SqrtInit is the starting estimate for Newton iteration (0 = default).
	SqrtInit float64
	// SqrtEpsilon is the convergence tolerance on the squared estimate
	// (0 = default). See the solver package for the exact semantics.
	SqrtEpsilon float64
	// SqrtMaxIter caps the Newton iteration count (0 = default).
	SqrtMaxIter int

	// Timeout bounds the total execution time.
	Timeout time.Duration
	// Quiet suppresses everything except the bare result.
	Quiet bool
	// Verbose enables debug logging and detailed output.
	Verbose bool
	// Details shows per-run performance details.
	Details bool
	// ShowValue prints the full calculated value (large results are
	// truncated by default).
	ShowValue bool
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// NoColor disables ANSI colors.
	NoColor bool

	// Serve is the listen address of the HTTP API (empty = no server).
	Serve string
	// TUI launches the interactive dashboard.
	TUI bool
	// Interactive launches the REPL session.
	Interactive bool
	// Completion selects a shell to generate a completion script for.
	Completion string
}

// ToSequenceOptions converts the configuration into sequence calculator
// options.
func (c AppConfig) ToSequenceOptions() sequence.Options {
	return sequence.Options{RecursionLimit: c.RecursionLimit}
}

// ToSolverOptions converts the configuration into solver options.
func (c AppConfig) ToSolverOptions() solver.Options {
	return solver.Options{
		Init:          c.SqrtInit,
		Epsilon:       c.SqrtEpsilon,
		MaxIterations: c.SqrtMaxIter,
	}
}

// ParseConfig parses command-line arguments into a validated AppConfig.
// Environment variables override defaults but never explicit flags.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for usage and error output.
//   - availableAlgos: The registered algorithm names, for validation.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{
		N:       DefaultN,
		Algo:    DefaultAlgo,
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Uint64Var(&cfg.N, "n", cfg.N, "Fibonacci index to calculate")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, fmt.Sprintf("algorithm to use: %s, or \"all\" to compare", strings.Join(availableAlgos, ", ")))
	fs.IntVar(&cfg.RecursionLimit, "recursion-limit", 0, "max index accepted by the recursive algorithm (default 40)")

	fs.Float64Var(&cfg.SqrtArg, "sqrt", 0, "compute the square root of this value instead of Fibonacci")
	fs.Float64Var(&cfg.SqrtInit, "init", 0, "starting estimate for Newton iteration (default 1)")
	fs.Float64Var(&cfg.SqrtEpsilon, "eps", 0, "convergence tolerance on the squared estimate (default 0.01)")
	fs.IntVar(&cfg.SqrtMaxIter, "max-iter", 0, "iteration cap for Newton's method (default 100)")

	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum execution time")
	fs.BoolVar(&cfg.Quiet, "q", false, "quiet mode: print only the result (for scripts)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "quiet mode: print only the result (for scripts)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose output")
	fs.BoolVar(&cfg.Details, "details", false, "show performance details")
	fs.BoolVar(&cfg.ShowValue, "value", false, "print the full result value without truncation")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the result to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the result to this file")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")

	fs.StringVar(&cfg.Serve, "serve", "", "serve the HTTP API on this address (e.g. :8080)")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "launch the interactive REPL")
	fs.BoolVar(&cfg.Interactive, "i", false, "launch the interactive REPL")
	fs.StringVar(&cfg.Completion, "completion", "", "generate a shell completion script: bash, zsh or fish")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	cfg.SqrtMode = isFlagSetAny(fs, "sqrt")
	applyEnvOverrides(fs, &cfg)

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate enforces cross-field configuration invariants.
func validate(cfg AppConfig, availableAlgos []string) error {
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}

	if cfg.SqrtMode {
		// Value-level validation (a >= 0, eps > 0, ...) belongs to the
		// solver; only flag combinations are checked here.
		return nil
	}

	if !strings.EqualFold(cfg.Algo, "all") {
		found := false
		for _, name := range availableAlgos {
			if strings.EqualFold(name, cfg.Algo) {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown algorithm %q (available: %s, all)",
				cfg.Algo, strings.Join(availableAlgos, ", "))
		}
	}

	if cfg.RecursionLimit < 0 {
		return apperrors.NewConfigError("recursion limit must be positive, got %d", cfg.RecursionLimit)
	}
	if cfg.RecursionLimit > sequence.MaxRecursionLimit {
		return apperrors.NewConfigError("recursion limit %d exceeds the maximum %d",
			cfg.RecursionLimit, sequence.MaxRecursionLimit)
	}

	return nil
}
