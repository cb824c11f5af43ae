package log

import (
	"io"
	"log/slog"
)

// NewLogger creates the application logger writing to w.
// Verbose enables slog.LevelDebug; otherwise only warnings and errors are
// emitted. Evaluation results never go through the logger — they belong to
// the report writers — so the default level can stay quiet without hiding
// output the user asked for.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
