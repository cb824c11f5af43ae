// Package report renders evaluation summaries in multiple output formats.
//
// Three formats are supported: human-readable text for terminal display,
// GitHub Flavored Markdown for documentation and sharing, and JSON
// (produced at the command layer with encoding/json). All formats render
// the same model.Summary; the per-report listing is included whenever the
// summary carries per-report results.
package report
