// Package parser turns line-oriented text input into level reports.
//
// Parsing is intentionally forgiving: each line is split on whitespace and
// every token that parses as a non-negative integer is kept in input order,
// while malformed tokens are silently dropped. Parsing therefore never
// fails; a line with no numeric tokens yields an empty report, which the
// evaluator classifies as unsafe.
package parser
