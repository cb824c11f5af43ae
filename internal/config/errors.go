package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNegativeTolerance is returned when the tolerance is negative.
	// Use 0 to disable the dampener.
	ErrNegativeTolerance = errors.New("invalid tolerance: must be non-negative")

	// ErrInvalidConcurrency is returned when the concurrency is not
	// positive. A concurrency of zero would mean no evaluation at all.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
