// Command numcalc computes Fibonacci terms and Newton square roots from the
// command line, with optional HTTP API and TUI dashboard modes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/numcalc/internal/app"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "numcalc: %v\n", err)
		os.Exit(1)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
