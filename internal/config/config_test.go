package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

var testAlgos = []string{"iterative", "recursive", "fast-doubling"}

// parse is a shorthand for ParseConfig with discarded usage output.
func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("numcalc", args, io.Discard, testAlgos)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.N != DefaultN {
		t.Errorf("N = %d, want %d", cfg.N, DefaultN)
	}
	if cfg.Algo != DefaultAlgo {
		t.Errorf("Algo = %q, want %q", cfg.Algo, DefaultAlgo)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.SqrtMode {
		t.Error("SqrtMode should be off by default")
	}
}

func TestParseConfig_FibonacciFlags(t *testing.T) {
	cfg, err := parse(t, "-n", "42", "--algo", "iterative", "--timeout", "30s", "-q")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.N != 42 {
		t.Errorf("N = %d, want 42", cfg.N)
	}
	if cfg.Algo != "iterative" {
		t.Errorf("Algo = %q, want %q", cfg.Algo, "iterative")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set")
	}
}

func TestParseConfig_SqrtMode(t *testing.T) {
	t.Run("sqrt flag enables sqrt mode", func(t *testing.T) {
		cfg, err := parse(t, "--sqrt", "16", "--eps", "0.001", "--init", "2", "--max-iter", "50")
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if !cfg.SqrtMode {
			t.Fatal("SqrtMode should be enabled")
		}
		if cfg.SqrtArg != 16 {
			t.Errorf("SqrtArg = %g, want 16", cfg.SqrtArg)
		}
		opts := cfg.ToSolverOptions()
		if opts.Epsilon != 0.001 || opts.Init != 2 || opts.MaxIterations != 50 {
			t.Errorf("solver options = %+v", opts)
		}
	})

	t.Run("negative argument passes through to the solver", func(t *testing.T) {
		// Value validation is the solver's job; config must not coerce it.
		cfg, err := parse(t, "--sqrt", "-4")
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.SqrtArg != -4 {
			t.Errorf("SqrtArg = %g, want -4", cfg.SqrtArg)
		}
	})
}

func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown algorithm", []string{"--algo", "matrix"}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"negative recursion limit", []string{"--recursion-limit", "-5"}},
		{"excessive recursion limit", []string{"--recursion-limit", "93"}},
		{"positional argument", []string{"17"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parse(t, "--help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseConfig_AlgoCaseInsensitive(t *testing.T) {
	cfg, err := parse(t, "--algo", "Fast-Doubling")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Algo != "Fast-Doubling" {
		t.Errorf("Algo = %q, want the user's spelling preserved", cfg.Algo)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env applies when flag absent", func(t *testing.T) {
		t.Setenv("NUMCALC_N", "77")
		t.Setenv("NUMCALC_ALGO", "iterative")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.N != 77 {
			t.Errorf("N = %d, want 77 from env", cfg.N)
		}
		if cfg.Algo != "iterative" {
			t.Errorf("Algo = %q, want %q from env", cfg.Algo, "iterative")
		}
	})

	t.Run("explicit flag beats env", func(t *testing.T) {
		t.Setenv("NUMCALC_N", "77")

		cfg, err := parse(t, "-n", "5")
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.N != 5 {
			t.Errorf("N = %d, want 5 from flag", cfg.N)
		}
	})

	t.Run("invalid env value is ignored", func(t *testing.T) {
		t.Setenv("NUMCALC_N", "not-a-number")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.N != DefaultN {
			t.Errorf("N = %d, want default %d", cfg.N, DefaultN)
		}
	})

	t.Run("boolean env accepts yes", func(t *testing.T) {
		t.Setenv("NUMCALC_QUIET", "yes")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if !cfg.Quiet {
			t.Error("Quiet should be set from env")
		}
	})

	t.Run("env duration override", func(t *testing.T) {
		t.Setenv("NUMCALC_TIMEOUT", "90s")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.Timeout != 90*time.Second {
			t.Errorf("Timeout = %v, want 90s from env", cfg.Timeout)
		}
	})
}

func TestToSequenceOptions(t *testing.T) {
	cfg := AppConfig{RecursionLimit: 25}
	if opts := cfg.ToSequenceOptions(); opts.RecursionLimit != 25 {
		t.Errorf("RecursionLimit = %d, want 25", opts.RecursionLimit)
	}
}
