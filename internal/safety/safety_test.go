package safety

import (
	"testing"

	"github.com/nao1215/levelcheck/internal/model"
)

// TestIsSafe tests the strict rule with no removals.
func TestIsSafe(t *testing.T) {
	t.Parallel()

	t.Run("empty report is vacuously safe", func(t *testing.T) {
		t.Parallel()
		if !IsSafe(model.NewReport(nil)) {
			t.Error("expected empty report to be safe under the strict rule")
		}
	})

	t.Run("single reading is vacuously safe", func(t *testing.T) {
		t.Parallel()
		if !IsSafe(model.NewReport([]int{1})) {
			t.Error("expected single-reading report to be safe")
		}
	})

	tests := []struct {
		name   string
		levels []int
		want   bool
	}{
		{"ascending with valid steps", []int{1, 2}, true},
		{"ascending full range steps", []int{1, 3, 6, 7, 9}, true},
		{"descending with valid steps", []int{7, 6, 4, 2, 1}, true},
		{"minimal gap pair", []int{1, 3}, true},
		{"step of four is out of range", []int{1, 5}, false},
		{"zero step is out of range", []int{1, 1}, false},
		{"direction reverses mid-sequence", []int{1, 3, 1}, false},
		{"out of range step mid-sequence", []int{1, 2, 7, 8, 9}, false},
		{"out of range step while descending", []int{9, 7, 6, 2, 1}, false},
		{"repeated reading mid-sequence", []int{8, 6, 4, 4, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsSafe(model.NewReport(tt.levels)); got != tt.want {
				t.Errorf("IsSafe(%v) = %v, want %v", tt.levels, got, tt.want)
			}
		})
	}
}

// TestIsSafeWithTolerance tests the dampened rule.
func TestIsSafeWithTolerance(t *testing.T) {
	t.Parallel()

	t.Run("empty report is unsafe regardless of tolerance", func(t *testing.T) {
		t.Parallel()
		for _, tolerance := range []int{0, 1, 5} {
			if IsSafeWithTolerance(model.NewReport(nil), tolerance) {
				t.Errorf("expected empty report to be unsafe at tolerance %d", tolerance)
			}
		}
	})

	t.Run("tolerance zero delegates to strict rule", func(t *testing.T) {
		t.Parallel()
		if !IsSafeWithTolerance(model.NewReport([]int{1, 2}), 0) {
			t.Error("expected [1 2] to be safe at tolerance 0")
		}
		if IsSafeWithTolerance(model.NewReport([]int{1, 5}), 0) {
			t.Error("expected [1 5] to be unsafe at tolerance 0")
		}
	})

	tests := []struct {
		name      string
		levels    []int
		tolerance int
		want      bool
	}{
		{"one removal fixes direction reversal", []int{1, 3, 2, 4, 5}, 1, true},
		{"one removal fixes repeated reading", []int{8, 6, 4, 4, 1}, 1, true},
		{"one removal fixes out of range step", []int{1, 3, 2}, 1, true},
		{"removing first reading fixes report", []int{1, 7, 6, 3, 1}, 1, true},
		{"removing last reading fixes report", []int{9, 7, 6, 5, 1}, 1, true},
		{"no single removal can fix report", []int{9, 7, 6, 2, 1}, 1, false},
		{"no single removal can fix ascending report", []int{1, 2, 7, 8, 9}, 1, false},
		{"already safe report stays safe", []int{7, 6, 4, 2, 1}, 1, true},
		{"two removals fix what one cannot", []int{9, 7, 6, 2, 1}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := IsSafeWithTolerance(model.NewReport(tt.levels), tt.tolerance)
			if got != tt.want {
				t.Errorf("IsSafeWithTolerance(%v, %d) = %v, want %v",
					tt.levels, tt.tolerance, got, tt.want)
			}
		})
	}

	t.Run("tolerance at report length clamps to empty selection", func(t *testing.T) {
		t.Parallel()
		// The required selection length clamps to zero, and the empty
		// selection is vacuously safe under the strict rule. Even a
		// report no removal sequence can otherwise fix passes here.
		if !IsSafeWithTolerance(model.NewReport([]int{5, 5, 5}), 3) {
			t.Error("expected report to be safe when tolerance equals its length")
		}
		if !IsSafeWithTolerance(model.NewReport([]int{5, 5, 5}), 10) {
			t.Error("expected report to be safe when tolerance exceeds its length")
		}
	})
}

// TestCountSafe tests the aggregation over a report collection.
func TestCountSafe(t *testing.T) {
	t.Parallel()

	t.Run("empty collection counts zero", func(t *testing.T) {
		t.Parallel()
		if got := CountSafe(nil, 0); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("counts strictly safe reports", func(t *testing.T) {
		t.Parallel()
		reports := []model.Report{
			model.NewReport([]int{1, 3}),
			model.NewReport([]int{1, 2}),
		}
		if got := CountSafe(reports, 0); got != 2 {
			t.Errorf("expected 2, got %d", got)
		}
	})

	t.Run("empty report counts unsafe at tolerance zero", func(t *testing.T) {
		t.Parallel()
		reports := []model.Report{
			model.NewReport(nil),
			model.NewReport([]int{1, 2}),
		}
		if got := CountSafe(reports, 0); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		reports := []model.Report{
			model.NewReport([]int{7, 6, 4, 2, 1}),
			model.NewReport([]int{1, 3, 2, 4, 5}),
			model.NewReport(nil),
		}
		first := CountSafe(reports, 1)
		second := CountSafe(reports, 1)
		if first != second {
			t.Errorf("expected identical counts, got %d then %d", first, second)
		}
	})
}

// TestClassify tests the per-report classification.
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		levels    []int
		tolerance int
		want      model.Classification
	}{
		{"strictly safe report", []int{1, 3, 6, 7, 9}, 1, model.ClassificationSafe},
		{"dampened report", []int{1, 3, 2, 4, 5}, 1, model.ClassificationDampened},
		{"unsafe report", []int{9, 7, 6, 2, 1}, 1, model.ClassificationUnsafe},
		{"dampenable report without tolerance", []int{1, 3, 2, 4, 5}, 0, model.ClassificationUnsafe},
		{"empty report", nil, 1, model.ClassificationUnsafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(model.NewReport(tt.levels), tt.tolerance)
			if got != tt.want {
				t.Errorf("Classify(%v, %d) = %v, want %v",
					tt.levels, tt.tolerance, got, tt.want)
			}
		})
	}

	t.Run("agrees with IsSafeWithTolerance", func(t *testing.T) {
		t.Parallel()
		reports := []model.Report{
			model.NewReport(nil),
			model.NewReport([]int{1}),
			model.NewReport([]int{1, 2}),
			model.NewReport([]int{1, 5}),
			model.NewReport([]int{1, 3, 2}),
			model.NewReport([]int{9, 7, 6, 2, 1}),
		}
		for _, tolerance := range []int{0, 1, 2} {
			for _, report := range reports {
				passing := Classify(report, tolerance).Passing()
				safe := IsSafeWithTolerance(report, tolerance)
				if passing != safe {
					t.Errorf("Classify(%v, %d).Passing() = %v, IsSafeWithTolerance = %v",
						report.Levels, tolerance, passing, safe)
				}
			}
		}
	})
}

// TestEvaluate tests the end-to-end lines-in, count-out contract.
func TestEvaluate(t *testing.T) {
	t.Parallel()

	lines := []string{
		"7 6 4 2 1",
		"1 2 7 8 9",
		"9 7 6 2 1",
		"1 3 2 4 5",
		"8 6 4 4 1",
		"1 3 6 7 9",
	}

	t.Run("strict rule counts two safe reports", func(t *testing.T) {
		t.Parallel()
		if got := Evaluate(lines, 0); got != 2 {
			t.Errorf("Evaluate(sample, 0) = %d, want 2", got)
		}
	})

	t.Run("dampener rescues two more reports", func(t *testing.T) {
		t.Parallel()
		if got := Evaluate(lines, 1); got != 4 {
			t.Errorf("Evaluate(sample, 1) = %d, want 4", got)
		}
	})

	t.Run("no lines counts zero", func(t *testing.T) {
		t.Parallel()
		if got := Evaluate(nil, 0); got != 0 {
			t.Errorf("Evaluate(nil, 0) = %d, want 0", got)
		}
	})

	t.Run("line with no numeric tokens counts unsafe", func(t *testing.T) {
		t.Parallel()
		if got := Evaluate([]string{"no numbers here"}, 0); got != 0 {
			t.Errorf("Evaluate(non-numeric line, 0) = %d, want 0", got)
		}
	})
}

// TestTrendString tests the trend representation.
func TestTrendString(t *testing.T) {
	t.Parallel()

	if TrendAscending.String() != "ascending" {
		t.Errorf("expected 'ascending', got %q", TrendAscending.String())
	}
	if TrendDescending.String() != "descending" {
		t.Errorf("expected 'descending', got %q", TrendDescending.String())
	}
	if Trend(42).String() != "unknown" {
		t.Errorf("expected 'unknown', got %q", Trend(42).String())
	}
}
