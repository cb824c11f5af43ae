package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/levelcheck/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// maxLevels truncates displayed level sequences in the per-report
	// listing. Zero means no truncation.
	maxLevels int
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithMaxLevels limits how many levels of each report are shown in the
// per-report listing. Zero disables truncation.
func WithMaxLevels(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.maxLevels = n
	}
}

// defaultMaxLevels keeps listing lines readable for typical terminals.
const defaultMaxLevels = 16

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		maxLevels:  defaultMaxLevels,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(summary *model.Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeCounts(&sb, summary)
	w.writeReports(&sb, summary)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with evaluation information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                        LEVELCHECK REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Source:     %s\n", summary.Source))
	sb.WriteString(fmt.Sprintf("Date:       %s\n", summary.DateEvaluated.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Tolerance:  %d\n", summary.Tolerance))
	sb.WriteString(fmt.Sprintf("Reports:    %d\n", summary.TotalReports))
	sb.WriteString("\n")
}

// writeCounts writes the classification summary section.
func (w *SimpleWriter) writeCounts(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("CLASSIFICATION SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  %-10s %d\n", displayLabel(model.ClassificationSafe)+":", summary.SafeCount))
	if summary.Tolerance > 0 {
		sb.WriteString(fmt.Sprintf("  %-10s %d\n", displayLabel(model.ClassificationDampened)+":", summary.DampenedCount))
	}
	sb.WriteString(fmt.Sprintf("  %-10s %d\n", displayLabel(model.ClassificationUnsafe)+":", summary.UnsafeCount))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  Total safe reports: %d\n", summary.PassingCount()))
	sb.WriteString("\n")
}

// writeReports writes the per-report listing.
// The listing is skipped when the summary carries no per-report results.
func (w *SimpleWriter) writeReports(sb *strings.Builder, summary *model.Summary) {
	if len(summary.Results) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("REPORTS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, result := range summary.Results {
		indicator := w.indicator(result.Classification)
		sb.WriteString(fmt.Sprintf("  [%s] #%-4d %-9s %s\n",
			indicator,
			result.Index+1,
			displayLabel(result.Classification),
			formatLevels(result.Report.Levels, w.maxLevels),
		))
	}
	sb.WriteString("\n")
}

// indicator returns a visual indicator for the classification.
func (w *SimpleWriter) indicator(c model.Classification) string {
	switch c {
	case model.ClassificationSafe:
		return "+"
	case model.ClassificationDampened:
		return "~"
	case model.ClassificationUnsafe:
		return "!"
	default:
		return "?"
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by levelcheck\n")
	sb.WriteString("https://github.com/nao1215/levelcheck\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
