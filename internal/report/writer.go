package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/levelcheck/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Writer defines the interface for report output.
// Implementations write evaluation summaries in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or in-memory
// buffers with the same API.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *model.Summary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write summaries, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the summary to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(summary *model.Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// titleCaser renders classification names for display ("Safe" rather
// than the enum's "SAFE").
var titleCaser = cases.Title(language.English)

// displayLabel returns the display form of a classification.
func displayLabel(c model.Classification) string {
	return titleCaser.String(strings.ToLower(c.String()))
}

// formatLevels renders a level sequence for display, truncating long
// sequences after maxLevels readings.
func formatLevels(levels []int, maxLevels int) string {
	if maxLevels > 0 && len(levels) > maxLevels {
		return fmt.Sprintf("%v (+%d more)",
			strings.Trim(fmt.Sprint(levels[:maxLevels]), "[]"),
			len(levels)-maxLevels)
	}
	return strings.Trim(fmt.Sprint(levels), "[]")
}
