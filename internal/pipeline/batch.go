package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nao1215/levelcheck/internal/model"
	"github.com/nao1215/levelcheck/internal/safety"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of reports evaluated in parallel when
// no explicit concurrency is configured. Evaluation is CPU-bound and
// cheap per report, so a small fixed fan-out is enough; the exact value
// only matters for very large inputs.
const DefaultConcurrency = 8

// BatchEvaluator evaluates a collection of reports concurrently.
// It uses errgroup to manage goroutines and respect the concurrency limit.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled
// worker pool because it is simpler and handles cancellation correctly.
// Each report gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
type BatchEvaluator struct {
	// tolerance is the maximum number of readings the dampener may remove
	// per report.
	tolerance int

	// concurrency is the maximum number of reports evaluated in parallel.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// Option configures a BatchEvaluator.
type Option func(*BatchEvaluator)

// WithConcurrency sets the maximum number of parallel evaluations.
// Values below 1 are ignored. Concurrency 1 makes evaluation sequential.
func WithConcurrency(n int) Option {
	return func(b *BatchEvaluator) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for batch progress logging.
func WithLogger(logger *slog.Logger) Option {
	return func(b *BatchEvaluator) {
		b.logger = logger
	}
}

// NewBatchEvaluator creates a BatchEvaluator for the given tolerance.
func NewBatchEvaluator(tolerance int, opts ...Option) *BatchEvaluator {
	b := &BatchEvaluator{
		tolerance:   tolerance,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// EvaluateAll evaluates every report and returns the per-report results in
// input order. Because each evaluation is pure and independent, the result
// is identical regardless of the concurrency setting.
//
// The only error is context cancellation; partially filled results are not
// returned in that case.
func (b *BatchEvaluator) EvaluateAll(ctx context.Context, reports []model.Report) ([]model.ReportResult, error) {
	b.logger.Debug("starting batch evaluation",
		"reports", len(reports),
		"tolerance", b.tolerance,
		"concurrency", b.concurrency,
	)

	// Pre-allocate results to maintain input order.
	results := make([]model.ReportResult, len(reports))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, report := range reports {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result := model.NewReportResult(i, report, safety.Classify(report, b.tolerance))

			mu.Lock()
			results[i] = result
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Debug("batch evaluation complete", "reports", len(reports))
	return results, nil
}

// EvaluateAllWithCallback evaluates every report and invokes callback once
// per report as results become available. Completion order is not input
// order; the callback receives the result's original index and must be
// safe for concurrent use when concurrency is greater than 1.
func (b *BatchEvaluator) EvaluateAllWithCallback(
	ctx context.Context,
	reports []model.Report,
	callback func(result model.ReportResult),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, report := range reports {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			callback(model.NewReportResult(i, report, safety.Classify(report, b.tolerance)))
			return nil
		})
	}

	return g.Wait()
}
