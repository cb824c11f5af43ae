package model

import "time"

// ReportResult is the evaluation outcome for a single report.
type ReportResult struct {
	// Index is the zero-based position of the report in the input.
	Index int `json:"index"`

	// Report is the evaluated report.
	Report Report `json:"report"`

	// Classification is the safety outcome.
	Classification Classification `json:"-"`

	// ClassificationText is the human-readable classification for
	// serialization.
	ClassificationText string `json:"classification"`
}

// NewReportResult creates a ReportResult with the classification text
// populated from the classification.
func NewReportResult(index int, report Report, classification Classification) ReportResult {
	return ReportResult{
		Index:              index,
		Report:             report,
		Classification:     classification,
		ClassificationText: classification.String(),
	}
}

// Summary is the aggregate result of evaluating a report collection.
// It is the structure the report writers render.
//
// Design decision: We build a separate summary struct rather than having
// writers walk the raw results because:
// 1. It provides a consistent, curated view for all output formats
// 2. It serializes cleanly to JSON for tools that want structured output
// 3. It separates presentation concerns from evaluation
type Summary struct {
	// Source names the evaluated input (file path or "stdin").
	Source string `json:"source"`

	// DateEvaluated is when the evaluation was performed.
	DateEvaluated time.Time `json:"date_evaluated"`

	// Tolerance is the maximum number of readings the dampener may remove.
	Tolerance int `json:"tolerance"`

	// TotalReports is the number of reports evaluated.
	TotalReports int `json:"total_reports"`

	// SafeCount is the number of strictly safe reports.
	SafeCount int `json:"safe_count"`

	// DampenedCount is the number of reports made safe by the dampener.
	// Always zero when Tolerance is zero.
	DampenedCount int `json:"dampened_count"`

	// UnsafeCount is the number of reports no permitted removal can fix.
	UnsafeCount int `json:"unsafe_count"`

	// Results contains the per-report outcomes in input order.
	Results []ReportResult `json:"results,omitempty"`
}

// NewSummary builds a Summary from per-report results.
// Results must be in input order; the summary keeps them as-is.
func NewSummary(source string, tolerance int, results []ReportResult) *Summary {
	s := &Summary{
		Source:        source,
		DateEvaluated: time.Now(),
		Tolerance:     tolerance,
		TotalReports:  len(results),
		Results:       results,
	}

	for _, r := range results {
		switch r.Classification {
		case ClassificationSafe:
			s.SafeCount++
		case ClassificationDampened:
			s.DampenedCount++
		case ClassificationUnsafe:
			s.UnsafeCount++
		}
	}

	return s
}

// PassingCount returns the number of reports counting as safe,
// including those rescued by the dampener.
func (s *Summary) PassingCount() int {
	return s.SafeCount + s.DampenedCount
}
