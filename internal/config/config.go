package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTolerance is the number of readings the dampener may remove
	// per report. Zero means the strict rule applies unmodified; safety
	// checks should not forgive bad readings unless the user asks for it.
	DefaultTolerance = 0

	// DefaultConcurrency is the number of reports evaluated in parallel.
	// Evaluation is pure and CPU-bound, so a small fan-out captures most
	// of the benefit without hurting small inputs.
	DefaultConcurrency = 8

	// AppName is the application name used for XDG directory paths.
	AppName = "levelcheck"
)

// Config holds all configuration options for levelcheck.
// This struct is populated from CLI flags (seeded by an optional config
// file) and passed through the application via dependency injection
// rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is small. If the configuration grows
// significantly, consider refactoring into sub-structs.
type Config struct {
	// Tolerance is the maximum number of readings that may be removed
	// from a report while still finding a safe selection of the rest.
	// Must be non-negative.
	Tolerance int

	// Concurrency is the number of reports evaluated in parallel.
	// Must be positive. Concurrency 1 gives sequential evaluation with
	// identical results.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .levelcheck in the current
	// directory, the XDG config directory, and the home directory.
	ConfigFilePath string

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// ShowAll lists every report with its classification in the output,
	// not just the aggregate counts.
	ShowAll bool

	// Inputs is the list of input file paths. "-" or an empty list means
	// read from standard input.
	Inputs []string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because some defaults are non-zero (concurrency). This also
// serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Tolerance:   DefaultTolerance,
		Concurrency: DefaultConcurrency,
	}
}

// XDGConfigDir returns the XDG config directory for levelcheck.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/levelcheck
// On macOS: ~/Library/Application Support/levelcheck
// On Windows: %APPDATA%\levelcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// A negative tolerance has no meaning; zero disables the dampener.
	if c.Tolerance < 0 {
		return ErrNegativeTolerance
	}

	// Concurrency must be positive; zero would mean no evaluation.
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// JSONReport and MarkdownReport are mutually exclusive.
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
