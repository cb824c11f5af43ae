// Package main provides the entry point for the levelcheck CLI.
//
// Levelcheck evaluates level reports (lines of whitespace-separated
// integer readings) against a monotonicity-and-bounded-step safety rule,
// optionally tolerating a limited number of removed readings.
//
// Usage:
//
//	levelcheck check input.txt
//	levelcheck check --tolerance 1 input.txt
//
// See --help for all available options.
package main

// main is the entry point for levelcheck.
func main() {
	Execute()
}
