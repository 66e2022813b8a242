// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the NUMCALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"N", []string{"n"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.N = parsed
		}
	}},
	{"RECURSION_LIMIT", []string{"recursion-limit"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.RecursionLimit = parsed
		}
	}},
	{"EPS", []string{"eps"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SqrtEpsilon = parsed
		}
	}},
	{"MAX_ITER", []string{"max-iter"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SqrtMaxIter = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) {
		c.Algo = v
	}},
	{"SERVE", []string{"serve"}, func(c *AppConfig, v string) {
		c.Serve = v
	}},

	// Boolean overrides
	{"QUIET", []string{"q", "quiet"}, func(c *AppConfig, v string) {
		if parsed, ok := parseEnvBool(v); ok {
			c.Quiet = parsed
		}
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		if parsed, ok := parseEnvBool(v); ok {
			c.NoColor = parsed
		}
	}},
}

// applyEnvOverrides applies the envOverrides table to cfg. An environment
// variable only takes effect when its corresponding flag was not explicitly
// set on the command line.
func applyEnvOverrides(fs *flag.FlagSet, cfg *AppConfig) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := lookupEnv(o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}

// lookupEnv reads an environment variable with the package prefix applied.
func lookupEnv(key string) string {
	return os.Getenv(EnvPrefix + key)
}

// parseEnvBool parses a boolean environment value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive).
func parseEnvBool(v string) (value, ok bool) {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}
