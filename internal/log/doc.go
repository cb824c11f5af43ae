// Package log provides consistent logger construction for levelcheck,
// built on top of the standard slog package.
//
// All commands obtain their logger here so that level handling and
// formatting stay uniform: warnings and errors by default, debug output
// when verbose mode is enabled.
package log
