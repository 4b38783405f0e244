// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over environment variables,
// which take priority over adaptive defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/limbcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "LIMBCALC_"

// Default values applied before flags and environment overrides.
const (
	DefaultTimeout    = 5 * time.Minute
	DefaultIterations = 100000
	DefaultMaxLimbs   = 64
)

// AppConfig holds the complete runtime configuration of the application.
type AppConfig struct {
	// Operation evaluation.
	Op          string // operation name (and, or, xor, ..., cmp, cmpx, add, sub, mul)
	Left        string // left operand, comma-separated hex limbs, least significant first
	Right       string // right operand, same encoding
	DestLen     int    // destination length in limbs; 0 means the longer operand
	LeftSigned  bool
	RightSigned bool
	Branchless  bool

	// Differential verification.
	Verify     bool
	Iterations int
	MaxLimbs   int
	Seed       int64
	Workers    int

	// Calibration.
	Calibrate          bool
	AutoCalibrate      bool
	CalibrationProfile string

	// Execution control and output.
	Timeout     time.Duration
	Verbose     bool
	Quiet       bool
	OutputFile  string
	TUI         bool
	Interactive bool
	MetricsAddr string
	Completion  string
	ShowVersion bool
}

// DefaultConfig returns the configuration used before any flag or
// environment override is applied.
func DefaultConfig() AppConfig {
	return AppConfig{
		Op:         "and",
		Timeout:    DefaultTimeout,
		Iterations: DefaultIterations,
		MaxLimbs:   DefaultMaxLimbs,
		Seed:       time.Now().UnixNano(),
	}
}

// RegisterFlags declares every CLI flag on fs, binding them to cfg.
// Short aliases share the destination with their long form.
func RegisterFlags(fs *flag.FlagSet, cfg *AppConfig) {
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation to evaluate (and, nand, or, nor, xor, xnor, less, greater, leq, geq, not, cmp, cmpx, add, sub, neg, mul, div)")
	fs.StringVar(&cfg.Left, "left", cfg.Left, "left operand as comma-separated hex limbs, least significant first")
	fs.StringVar(&cfg.Right, "right", cfg.Right, "right operand as comma-separated hex limbs, least significant first")
	fs.IntVar(&cfg.DestLen, "dest-len", cfg.DestLen, "destination length in limbs (0 = length of the longer operand)")
	fs.BoolVar(&cfg.LeftSigned, "left-signed", cfg.LeftSigned, "treat the left operand as signed")
	fs.BoolVar(&cfg.RightSigned, "right-signed", cfg.RightSigned, "treat the right operand as signed")
	fs.BoolVar(&cfg.Branchless, "branchless", cfg.Branchless, "forbid data-dependent branches on operand values")

	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "cross-check the accelerated path against the portable path")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "number of randomized verification cases")
	fs.IntVar(&cfg.MaxLimbs, "max-limbs", cfg.MaxLimbs, "maximum operand length generated during verification")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the verification case generator")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "verification worker count (0 = number of CPUs)")

	fs.BoolVar(&cfg.Calibrate, "calibrate", cfg.Calibrate, "measure branch strategy and unroll performance, then exit")
	fs.BoolVar(&cfg.AutoCalibrate, "auto-calibrate", cfg.AutoCalibrate, "calibrate silently when no cached profile exists")
	fs.StringVar(&cfg.CalibrationProfile, "calibration-profile", cfg.CalibrationProfile, "path to the calibration profile file")

	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "global execution timeout")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress progress output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "suppress progress output (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write the result to a file instead of stdout")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "write the result to a file instead of stdout (shorthand)")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "run the interactive terminal explorer")
	fs.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "start an interactive calculator session")
	fs.BoolVar(&cfg.Interactive, "i", cfg.Interactive, "start an interactive calculator session (shorthand)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "address for the Prometheus metrics endpoint (empty = disabled)")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "generate a shell completion script (bash, zsh, fish, powershell)")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "print version information and exit")
	fs.BoolVar(&cfg.ShowVersion, "V", cfg.ShowVersion, "print version information and exit (shorthand)")
}

// ParseConfig parses args into an AppConfig, applying environment
// overrides for any flag not explicitly given. Output written by the
// flag package (usage text) goes to w.
func ParseConfig(args []string, w io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("limbcalc", flag.ContinueOnError)
	fs.SetOutput(w)
	RegisterFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return cfg, apperrors.NewConfigError("invalid arguments: %v", err)
	}

	applyEnvOverrides(&cfg, fs)
	cfg = ApplyAdaptiveDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var validOps = map[string]bool{
	"and": true, "nand": true, "or": true, "nor": true,
	"xor": true, "xnor": true, "less": true, "greater": true,
	"leq": true, "geq": true, "not": true, "cmp": true, "cmpx": true,
}

// Validate checks field ranges and cross-field consistency.
func (c AppConfig) Validate() error {
	if !validOps[c.Op] {
		return apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", c.Op)}
	}
	if c.DestLen < 0 {
		return apperrors.ValidationError{Field: "dest-len", Message: "must be non-negative"}
	}
	if c.Iterations <= 0 {
		return apperrors.ValidationError{Field: "iterations", Message: "must be greater than zero"}
	}
	if c.MaxLimbs <= 0 {
		return apperrors.ValidationError{Field: "max-limbs", Message: "must be greater than zero"}
	}
	if c.Workers < 0 {
		return apperrors.ValidationError{Field: "workers", Message: "must be non-negative"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be greater than zero"}
	}
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("--verbose and --quiet are mutually exclusive")
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish", "powershell", "ps":
	default:
		return apperrors.ValidationError{Field: "completion", Message: fmt.Sprintf("unsupported shell %q", c.Completion)}
	}
	return nil
}
