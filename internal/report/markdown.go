package report

import (
	"io"
	"strconv"

	"github.com/nao1215/levelcheck/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeCounts(md, summary)
	w.writeReports(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with evaluation information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *model.Summary) {
	md.H1("Levelcheck Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + summary.Source + "`"},
			{"Date", summary.DateEvaluated.Format("2006-01-02 15:04:05 MST")},
			{"Tolerance", strconv.Itoa(summary.Tolerance)},
			{"Reports", strconv.Itoa(summary.TotalReports)},
		},
	})
	md.PlainText("")
}

// writeCounts writes the classification summary section.
func (w *MarkdownWriter) writeCounts(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Classification Summary")
	md.PlainText("")

	rows := [][]string{
		{"🟢 " + displayLabel(model.ClassificationSafe), strconv.Itoa(summary.SafeCount)},
	}
	if summary.Tolerance > 0 {
		rows = append(rows, []string{"🟡 " + displayLabel(model.ClassificationDampened), strconv.Itoa(summary.DampenedCount)})
	}
	rows = append(rows,
		[]string{"🔴 " + displayLabel(model.ClassificationUnsafe), strconv.Itoa(summary.UnsafeCount)},
		[]string{"**Total safe**", "**" + strconv.Itoa(summary.PassingCount()) + "**"},
	)

	md.Table(markdown.TableSet{
		Header: []string{"Classification", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if summary.TotalReports > 0 {
		w.writePieChart(md, summary)
	}

	w.writeAlert(md, summary)
}

// writePieChart writes a mermaid pie chart for the classification
// distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Report Classification Distribution"),
		piechart.WithShowData(true),
	)

	if summary.SafeCount > 0 {
		chart.LabelAndIntValue(displayLabel(model.ClassificationSafe), uint64(summary.SafeCount))
	}
	if summary.DampenedCount > 0 {
		chart.LabelAndIntValue(displayLabel(model.ClassificationDampened), uint64(summary.DampenedCount))
	}
	if summary.UnsafeCount > 0 {
		chart.LabelAndIntValue(displayLabel(model.ClassificationUnsafe), uint64(summary.UnsafeCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary *model.Summary) {
	switch {
	case summary.TotalReports == 0:
		md.Note("No reports were evaluated.")
	case summary.UnsafeCount == 0:
		md.Tipf("All %d report(s) are safe.", summary.TotalReports)
	case summary.PassingCount() == 0:
		md.Cautionf("No safe reports: all %d report(s) violate the safety rule.", summary.TotalReports)
	default:
		md.Warningf("%d of %d report(s) are unsafe.", summary.UnsafeCount, summary.TotalReports)
	}
	md.PlainText("")
}

// writeReports writes the per-report listing table.
// The listing is skipped when the summary carries no per-report results.
func (w *MarkdownWriter) writeReports(md *markdown.Markdown, summary *model.Summary) {
	if len(summary.Results) == 0 {
		return
	}

	md.H2("Reports")
	md.PlainText("")

	rows := make([][]string, len(summary.Results))
	for i, result := range summary.Results {
		rows[i] = []string{
			strconv.Itoa(result.Index + 1),
			displayLabel(result.Classification),
			"`" + formatLevels(result.Report.Levels, defaultMaxLevels) + "`",
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Classification", "Levels"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [levelcheck](https://github.com/nao1215/levelcheck)*")
}
