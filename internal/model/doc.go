// Package model defines the core data structures for levelcheck.
// It contains the Report type (one parsed line of levels), the safety
// classification enum, and the evaluation summary consumed by the
// report writers.
package model
