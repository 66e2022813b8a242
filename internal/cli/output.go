// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/solver"
	"github.com/agbru/numcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// ShowValue enables the calculated value display when true (disabled by default).
	ShowValue bool
}

// WriteResultToFile writes a calculation result to a file.
//
// Parameters:
//   - result: The calculated sequence term.
//   - n: The index of the term.
//   - duration: The calculation duration.
//   - algo: The algorithm name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result *big.Int, n uint64, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Fibonacci Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# N: %d\n", n)
	fmt.Fprintf(file, "# Bits: %d\n", result.BitLen())
	fmt.Fprintf(file, "# Digits: %d\n", len(result.String()))
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "F(%d) =\n%s\n", n, result.String())

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting.
//
// Parameters:
//   - result: The calculated sequence term.
//   - n: The index.
//   - duration: The calculation duration.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(result *big.Int, n uint64, duration time.Duration) string {
	return result.String()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result *big.Int, n uint64, duration time.Duration) {
	fmt.Fprintln(out, FormatQuietResult(result, n, duration))
}

// DisplayResult displays a calculation result with optional detail sections.
// Large values are truncated to their leading and trailing digits unless
// verbose output was requested.
//
// Parameters:
//   - result: The calculated sequence term.
//   - n: The index.
//   - duration: The calculation duration.
//   - verbose: Print the full value regardless of size.
//   - details: Print the detailed result analysis section.
//   - showValue: Print the calculated value itself.
//   - out: The output writer.
func DisplayResult(result *big.Int, n uint64, duration time.Duration, verbose, details, showValue bool, out io.Writer) {
	if result == nil {
		return
	}

	resultStr := result.String()
	numDigits := len(resultStr)

	fmt.Fprintf(out, "\nResult binary size: %s%d%s bits\n",
		ui.ColorCyan(), result.BitLen(), ui.ColorReset())

	if details {
		fmt.Fprintf(out, "\n--- Detailed result analysis ---\n")
		fmt.Fprintf(out, "Calculation time:  %s%s%s\n",
			ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
		fmt.Fprintf(out, "Number of digits:  %s%d%s\n",
			ui.ColorCyan(), numDigits, ui.ColorReset())
	}

	if !showValue {
		return
	}

	fmt.Fprintf(out, "\n--- Calculated value ---\n")
	if !verbose && numDigits > TruncationLimit {
		fmt.Fprintf(out, "F(%d) = %s%s...%s%s (truncated)\n",
			n, ui.ColorGreen(), resultStr[:DisplayEdges], resultStr[numDigits-DisplayEdges:], ui.ColorReset())
		fmt.Fprintf(out, "Tip: use %s-v%s to display all %d digits.\n",
			ui.ColorYellow(), ui.ColorReset(), numDigits)
	} else if numDigits > TruncationLimit {
		fmt.Fprintf(out, "F(%d) =\n%s%s%s\n", n, ui.ColorGreen(), resultStr, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "F(%d) = %s%s%s\n",
			n, ui.ColorGreen(), format.FormatNumberString(resultStr), ui.ColorReset())
	}
}

// DisplaySqrtResult displays the outcome of a square root approximation.
// In quiet mode only the estimate is printed, for scripting.
//
// Parameters:
//   - out: The output writer.
//   - a: The value whose root was approximated.
//   - res: The solver result.
//   - duration: The calculation duration.
//   - quiet: Print only the estimate.
func DisplaySqrtResult(out io.Writer, a float64, res solver.Result, duration time.Duration, quiet bool) {
	if quiet {
		fmt.Fprintf(out, "%g\n", res.Estimate)
		return
	}

	fmt.Fprintf(out, "\n--- Square Root Approximation ---\n")
	fmt.Fprintf(out, "sqrt(%s%g%s) ≈ %s%g%s\n",
		ui.ColorMagenta(), a, ui.ColorReset(),
		ui.ColorGreen(), res.Estimate, ui.ColorReset())
	fmt.Fprintf(out, "Iterations:       %s%d%s\n", ui.ColorCyan(), res.Iterations, ui.ColorReset())
	fmt.Fprintf(out, "Calculation time: %s%s%s\n",
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplayResultWithConfig displays a result with the given output configuration.
// This is a unified function that handles all output modes.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result *big.Int, n uint64, duration time.Duration, algo string, config OutputConfig) error {
	// Handle quiet mode
	if config.Quiet {
		DisplayQuietResult(out, result, n, duration)
	} else {
		// Use standard display
		DisplayResult(result, n, duration, config.Verbose, true, config.ShowValue, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(result, n, duration, algo, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
