// Package pipeline evaluates report collections, optionally in parallel.
//
// Each report's evaluation is a pure function of its levels and the
// tolerance, with no shared state between reports, so a collection can be
// fanned out across goroutines without changing the result. The batch
// evaluator uses errgroup with a concurrency limit and preserves input
// order in its output; running with concurrency 1 gives fully sequential
// evaluation with identical counts.
package pipeline
