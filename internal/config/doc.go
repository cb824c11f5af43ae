// Package config provides configuration structures and utilities for
// levelcheck. It defines the evaluation options (tolerance, concurrency)
// and report output preferences, populated from CLI flags with optional
// defaults from a .levelcheck YAML file.
package config
