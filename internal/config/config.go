// Package config provides the configuration management for billionfib.
// It defines the configuration structure, parses command-line flags with
// environment overrides, and validates the result.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/billionfib/internal/errors"
	"github.com/agbru/billionfib/internal/fibonacci"
	"github.com/agbru/billionfib/internal/fibonacci/memory"
	"github.com/agbru/billionfib/internal/karatsuba"
)

// EnvPrefix is the prefix for all environment variables read by billionfib.
const EnvPrefix = "BILLIONFIB_"

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultN is the default Fibonacci index to calculate.
	DefaultN int64 = fibonacci.DefaultN
	// DefaultCutoff is the default Karatsuba cutoff in bits. Zero asks for
	// the adaptive estimate.
	DefaultCutoff = karatsuba.DefaultCutoff
	// DefaultBase is the default base-case multiplier.
	DefaultBase = "native"
	// DefaultTable is the default last index of the printed sequence.
	DefaultTable = fibonacci.TableSize
	// DefaultGCMode is the default garbage collector policy.
	DefaultGCMode = string(memory.GCModeAuto)
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the index of the Fibonacci number to compute. It is signed so a
	// negative request reaches validation instead of failing flag parsing.
	N int64
	// Cutoff is the Karatsuba base-case threshold in bits.
	Cutoff int
	// Base names the base-case multiplier (see karatsuba.Bases).
	Base string
	// OutputFile is where the decimal result is written. Empty means
	// Fib-<N>.txt in the working directory.
	OutputFile string
	// Table is the last index of the sequence printed after the result.
	// A negative value disables the table.
	Table int
	// Quiet suppresses everything except errors and the sequence.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
	// Details adds a system, memory and multiplication report.
	Details bool
	// NoColor disables colored output (NO_COLOR is also honored).
	NoColor bool
	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string
	// GCMode is one of auto, aggressive or disabled.
	GCMode string
	// Calibrate runs the cutoff calibration instead of the demo.
	Calibrate bool
	// Verify computes F(N) with every registered base and compares them.
	Verify bool
	// Timeout bounds the whole run; zero disables it.
	Timeout time.Duration
}

// OutputPath returns the result file path.
func (c AppConfig) OutputPath() string {
	if c.OutputFile != "" {
		return c.OutputFile
	}
	return DefaultOutputPath(c.N)
}

// DefaultOutputPath returns the default result file name for index n.
func DefaultOutputPath(n int64) string {
	return fmt.Sprintf("Fib-%d.txt", n)
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableBases: the registered base multiplier names.
//
// Returns a ValidationError for a negative N and a ConfigError for anything
// else out of range.
func (c AppConfig) Validate(availableBases []string) error {
	if c.N < 0 {
		return apperrors.ValidationError{Field: "n", Message: fmt.Sprintf("must be non-negative, got %d", c.N)}
	}
	if c.Cutoff < karatsuba.MinCutoff {
		return apperrors.NewConfigError("cutoff %d is below the minimum of %d bits", c.Cutoff, karatsuba.MinCutoff)
	}
	if c.Timeout < 0 {
		return apperrors.NewConfigError("timeout cannot be negative: %s", c.Timeout)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if _, err := memory.ParseGCMode(c.GCMode); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	for _, b := range availableBases {
		if b == c.Base {
			return nil
		}
	}
	return apperrors.NewConfigError("unrecognized base multiplier: '%s'. Valid bases are: [%s]", c.Base, strings.Join(availableBases, ", "))
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// environment overrides for flags that were not set, resolves the adaptive
// cutoff and validates the result.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage information are printed.
//   - availableBases: The registered base multiplier names.
//
// Returns flag.ErrHelp unchanged when -h or --help is requested.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableBases []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	baseHelp := fmt.Sprintf("Base-case multiplier, one of [%s].", strings.Join(availableBases, ", "))

	config := AppConfig{}
	fs.Int64Var(&config.N, "n", DefaultN, "Index n of the Fibonacci number to compute.")
	fs.IntVar(&config.Cutoff, "cutoff", DefaultCutoff, "Karatsuba cutoff in bits (0 for a hardware estimate, minimum 64).")
	fs.StringVar(&config.Base, "base", DefaultBase, baseHelp)
	fs.StringVar(&config.OutputFile, "output", "", "Result file path (default Fib-<n>.txt).")
	fs.StringVar(&config.OutputFile, "o", "", "Result file path (shorthand).")
	fs.IntVar(&config.Table, "table", DefaultTable, "Print F(0)..F(table) after the result (negative to disable).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Display system, memory and multiplication details.")
	fs.BoolVar(&config.Details, "d", false, "Alias for --details.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&config.GCMode, "gc", DefaultGCMode, "Garbage collector policy: auto, aggressive or disabled.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Time a range of cutoffs and report the fastest.")
	fs.BoolVar(&config.Verify, "verify", false, "Compute with every base multiplier and compare the results.")
	fs.DurationVar(&config.Timeout, "timeout", 0, "Maximum run time, checked between phases (0 for none).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&config, fs)
	config = ApplyAdaptiveCutoff(config)
	config.Base = strings.ToLower(config.Base)
	config.GCMode = strings.ToLower(config.GCMode)

	if err := config.Validate(availableBases); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// setCustomUsage replaces the default usage text with a short synopsis
// followed by the flag list.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\n", fs.Name())
		fmt.Fprintf(out, "Computes F(n) with fast doubling over Karatsuba multiplication,\n")
		fmt.Fprintf(out, "writes it to a file and prints the first terms of the sequence.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEvery flag can also be set through a %s<NAME> environment variable,\n", EnvPrefix)
		fmt.Fprintf(out, "e.g. %sN=1000 or %sMETRICS_ADDR=:9090.\n", EnvPrefix, EnvPrefix)
	}
}
