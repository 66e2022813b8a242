package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies ANSI color codes for error display. A nil provider
// disables colorization. The interface keeps this package free of any
// dependency on the UI layer.
type ColorProvider interface {
	// Red returns the escape code for error text.
	Red() string
	// Yellow returns the escape code for highlighted values.
	Yellow() string
	// Reset returns the escape code that clears formatting.
	Reset() string
}

// HandleCalculationError inspects a calculation error, writes a diagnostic
// message to out, and returns the corresponding process exit code.
//
// The mapping is:
//   - context.DeadlineExceeded / TimeoutError -> ExitErrorTimeout
//   - context.Canceled                        -> ExitErrorCanceled
//   - ValidationError / ConfigError           -> ExitErrorConfig
//   - ConvergenceError and anything else      -> ExitErrorGeneric
//
// Parameters:
//   - err: The calculation error to handle. Must not be nil.
//   - duration: How long the operation ran before failing.
//   - out: The writer for the diagnostic message.
//   - colors: Optional color provider; nil disables colors.
//
// Returns:
//   - int: The exit code to return to the OS.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	var timeoutErr TimeoutError
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "\n%sTimeout:%s operation exceeded its time limit after %s%s%s.\n",
			red, reset, yellow, duration, reset)
		return ExitErrorTimeout

	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "\n%sCanceled:%s operation interrupted after %s%s%s.\n",
			red, reset, yellow, duration, reset)
		return ExitErrorCanceled
	}

	var validationErr ValidationError
	var configErr ConfigError
	if errors.As(err, &validationErr) || errors.As(err, &configErr) {
		fmt.Fprintf(out, "\n%sInvalid input:%s %v\n", red, reset, err)
		return ExitErrorConfig
	}

	fmt.Fprintf(out, "\n%sError:%s %v\n", red, reset, err)
	return ExitErrorGeneric
}
