package safety

// Trend is the direction a safe report must hold for its whole length.
// It is derived once from the first two readings and never re-derived
// mid-sequence.
//
// Design decision: We use an explicit two-valued type rather than
// re-comparing adjacent pairs ad hoc, so the per-step check receives the
// direction it must enforce instead of guessing it from local context.
type Trend int

const (
	// TrendAscending means every reading must be strictly greater than
	// the previous one.
	TrendAscending Trend = iota

	// TrendDescending means every reading must be strictly less than
	// the previous one.
	TrendDescending
)

// String returns a human-readable representation of the trend.
func (t Trend) String() string {
	switch t {
	case TrendAscending:
		return "ascending"
	case TrendDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// trendOf returns the trend fixed by the first two readings.
// Callers must ensure len(levels) >= 2; a shorter sequence has no
// defined direction (and is trivially safe anyway).
//
// Equal first readings yield TrendDescending. The choice is irrelevant
// for the outcome: a zero first step already violates the minimum step
// under either trend.
func trendOf(levels []int) Trend {
	if levels[0] < levels[1] {
		return TrendAscending
	}
	return TrendDescending
}
