package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/levelcheck/internal/config"
	"github.com/nao1215/levelcheck/internal/log"
	"github.com/nao1215/levelcheck/internal/model"
	"github.com/nao1215/levelcheck/internal/parser"
	"github.com/nao1215/levelcheck/internal/pipeline"
	"github.com/nao1215/levelcheck/internal/report"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file ...]",
		Short: "Evaluate level reports against the safety rule",
		Long: `Check reads level reports and counts how many are safe.

Each input line is one report: whitespace-separated integer readings.
Tokens that are not non-negative integers are silently ignored. A report
is safe when its readings are strictly monotonic in one fixed direction
and every adjacent pair differs by 1 to 3 inclusive.

With --tolerance N the dampener may remove up to N readings from a report
(preserving the order of the rest) to make it safe. A report that only
passes with removals is classified as dampened; it still counts as safe.

Examples:
  # Evaluate reports from a file with the strict rule
  levelcheck check input.txt

  # Allow one reading to be removed per report
  levelcheck check --tolerance 1 input.txt

  # Read reports from standard input
  cat input.txt | levelcheck check

  # Output JSON report
  levelcheck check --json input.txt

  # List every report with its classification
  levelcheck check --all input.txt

Configuration file (.levelcheck) example:
  tolerance: 1
  format: text
  show_all: false`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Evaluation flags
	cmd.Flags().IntP("tolerance", "t", config.DefaultTolerance,
		"Maximum number of readings the dampener may remove per report")
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of reports evaluated in parallel")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .levelcheck in current, XDG config, or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().BoolP("all", "a", false,
		"List every report with its classification, not just the counts")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	// Build config from the optional config file and flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cfg, cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the optional config file and cobra
// command flags. File values seed the defaults; flags the user actually
// set always win.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags override file values only when the user set them.
	if cmd.Flags().Changed("tolerance") {
		if cfg.Tolerance, err = cmd.Flags().GetInt("tolerance"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("concurrency") {
		if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("json") {
		if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("markdown") {
		if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("all") {
		if cfg.ShowAll, err = cmd.Flags().GetBool("all"); err != nil {
			return nil, err
		}
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Positional arguments are input files; none means stdin.
	cfg.Inputs = args

	return cfg, nil
}

// runCheck evaluates every input source and renders one summary per source.
//
// An unreadable input is a hard error: a missing input file indicates a
// configuration mistake the user must fix, so it aborts the run instead of
// being silently skipped.
func runCheck(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	logger.Info("starting check",
		"inputs", cfg.Inputs,
		"tolerance", cfg.Tolerance,
		"concurrency", cfg.Concurrency,
	)

	evaluator := pipeline.NewBatchEvaluator(cfg.Tolerance,
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithLogger(logger),
	)

	for _, source := range inputSources(cfg) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		reports, err := readReports(source)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", source, err)
		}

		results, err := evaluator.EvaluateAll(ctx, reports)
		if err != nil {
			return err
		}

		summary := model.NewSummary(source, cfg.Tolerance, results)
		if !cfg.ShowAll {
			// Aggregate counts only; the per-report listing is opt-in.
			summary.Results = nil
		}

		if err := outputReport(cfg, stdout, summary); err != nil {
			return fmt.Errorf("failed to write report for %s: %w", source, err)
		}
	}

	return nil
}

// stdinSource is the source name used for standard input.
const stdinSource = "stdin"

// inputSources returns the input names to evaluate. No inputs means stdin;
// "-" also names stdin.
func inputSources(cfg *config.Config) []string {
	if len(cfg.Inputs) == 0 {
		return []string{stdinSource}
	}
	return cfg.Inputs
}

// readReports parses all reports from the named source.
func readReports(source string) ([]model.Report, error) {
	if source == stdinSource || source == "-" {
		return parser.ParseReader(os.Stdin)
	}

	f, err := os.Open(source) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parser.ParseReader(f)
}

// outputReport outputs the summary in the requested format.
func outputReport(cfg *config.Config, stdout io.Writer, summary *model.Summary) error {
	// Determine output destination
	output := stdout
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	// JSON output
	if cfg.JSONReport {
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(summary)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output)
	_, err := writer.Write(summary)
	return err
}
