package model

// Classification represents the safety outcome of a single report.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and counting. The String() method provides
// human-readable output when needed.
type Classification int

const (
	// ClassificationSafe indicates the report satisfies the strict rule
	// with no readings removed: strictly monotonic in one fixed direction,
	// every adjacent step in [1,3].
	ClassificationSafe Classification = iota

	// ClassificationDampened indicates the report fails the strict rule but
	// becomes safe after removing readings within the configured tolerance.
	// Only reported when the tolerance is greater than zero.
	ClassificationDampened

	// ClassificationUnsafe indicates no permitted removal makes the
	// report safe. Empty reports are always unsafe.
	ClassificationUnsafe
)

// String returns a human-readable representation of the classification.
func (c Classification) String() string {
	switch c {
	case ClassificationSafe:
		return "SAFE"
	case ClassificationDampened:
		return "DAMPENED"
	case ClassificationUnsafe:
		return "UNSAFE"
	default:
		return "UNKNOWN"
	}
}

// Passing reports whether the classification counts toward the safe total.
// Both strictly safe and dampened reports pass.
func (c Classification) Passing() bool {
	return c == ClassificationSafe || c == ClassificationDampened
}
