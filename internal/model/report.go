package model

// Report is one parsed input line: an ordered sequence of non-negative
// integer levels. Order is significant and duplicates are permitted.
//
// Design decision: Report wraps a plain []int rather than defining methods
// on a named slice type directly in the evaluator package, because the
// parser, evaluator, and writers all share it. The evaluator treats a
// Report as immutable; nothing in this repository mutates Levels after
// construction.
type Report struct {
	// Levels holds the readings in input order.
	// A line with no parseable tokens yields an empty (non-nil-safe) slice;
	// an empty report is always classified unsafe by the evaluator.
	Levels []int `json:"levels"`
}

// NewReport creates a Report from the given levels.
func NewReport(levels []int) Report {
	return Report{Levels: levels}
}

// Len returns the number of levels in the report.
func (r Report) Len() int {
	return len(r.Levels)
}

// Empty reports whether the report contains no levels.
func (r Report) Empty() bool {
	return len(r.Levels) == 0
}
