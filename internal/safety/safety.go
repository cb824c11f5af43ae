package safety

import (
	"github.com/nao1215/levelcheck/internal/model"
	"github.com/nao1215/levelcheck/internal/parser"
)

// Step bounds for adjacent readings. A step is valid when the signed
// difference, taken in the report's trend direction, lies in
// [MinStep, MaxStep].
const (
	// MinStep is the smallest permitted adjacent difference.
	// A zero step (repeated reading) is never safe.
	MinStep = 1

	// MaxStep is the largest permitted adjacent difference.
	MaxStep = 3
)

// IsSafe reports whether the report satisfies the strict safety rule with
// no readings removed: strictly monotonic in the direction fixed by the
// first two readings, with every adjacent difference in [MinStep, MaxStep].
//
// Reports of length 0 or 1 are vacuously safe: there is no pair to violate
// the rule. Note that CountSafe and IsSafeWithTolerance treat an empty
// *original* report as unsafe before this rule is ever consulted; the
// vacuous-truth path only matters for selections produced by the dampener.
func IsSafe(report model.Report) bool {
	return isSafeLevels(report.Levels)
}

// isSafeLevels is the strict rule over a raw level slice. The dampener
// calls it directly on candidate selections to avoid re-wrapping them
// in a Report per combination.
func isSafeLevels(levels []int) bool {
	if len(levels) < 2 {
		return true
	}

	trend := trendOf(levels)
	for i := 0; i < len(levels)-1; i++ {
		if !stepOK(levels[i], levels[i+1], trend) {
			return false
		}
	}
	return true
}

// stepOK reports whether the step from cur to next is valid under the
// given trend: correct direction and magnitude in [MinStep, MaxStep].
// Both conditions collapse into one range check on the signed difference
// taken in trend direction.
func stepOK(cur, next int, trend Trend) bool {
	diff := next - cur
	if trend == TrendDescending {
		diff = -diff
	}
	return diff >= MinStep && diff <= MaxStep
}

// IsSafeWithTolerance reports whether the report is safe when up to
// tolerance readings may be removed. Removal preserves the relative order
// of the surviving readings and need not be contiguous.
//
// An empty report is unsafe for every tolerance. This is checked against
// the original report before any removal is considered, and deliberately
// differs from the strict rule's vacuous truth for empty selections: a
// blank input line carries no evidence of safety, while an empty
// selection is only ever reached by dampening a non-empty report.
//
// With tolerance >= len(report) the required selection length clamps to
// zero and the empty selection tests safe under the strict rule, so a
// large enough tolerance makes any non-empty report safe.
//
// The search is existential: choose-(len-tolerance) index combinations are
// enumerated in lexicographic order and the first safe selection wins.
// This is exponential in the tolerance; see the package documentation.
func IsSafeWithTolerance(report model.Report, tolerance int) bool {
	if report.Empty() {
		return false
	}
	if tolerance <= 0 {
		return IsSafe(report)
	}

	levels := report.Levels
	keep := len(levels) - tolerance
	if keep < 0 {
		keep = 0
	}

	// candidate is reused across combinations to avoid per-combination
	// allocations.
	candidate := make([]int, keep)
	safe := false
	combinations(len(levels), keep, func(indices []int) bool {
		for i, idx := range indices {
			candidate[i] = levels[idx]
		}
		if isSafeLevels(candidate) {
			safe = true
			return false
		}
		return true
	})

	return safe
}

// CountSafe returns the number of reports that are safe under the given
// tolerance. An empty collection yields zero. The count is a pure
// aggregation: evaluating the same collection twice yields the same
// result.
func CountSafe(reports []model.Report, tolerance int) int {
	count := 0
	for _, report := range reports {
		if IsSafeWithTolerance(report, tolerance) {
			count++
		}
	}
	return count
}

// Classify returns the classification of a single report under the given
// tolerance. A report is Safe when it passes the strict rule, Dampened
// when it only passes with removals, and Unsafe otherwise. Empty reports
// are always Unsafe, matching IsSafeWithTolerance.
func Classify(report model.Report, tolerance int) model.Classification {
	if report.Empty() {
		return model.ClassificationUnsafe
	}
	if IsSafe(report) {
		return model.ClassificationSafe
	}
	if tolerance > 0 && IsSafeWithTolerance(report, tolerance) {
		return model.ClassificationDampened
	}
	return model.ClassificationUnsafe
}

// Evaluate parses the given lines into reports and counts how many are
// safe under the given tolerance. It is the whole-tool contract in one
// call: lines in, safe count out.
func Evaluate(lines []string, tolerance int) int {
	return CountSafe(parser.ParseLines(lines), tolerance)
}
