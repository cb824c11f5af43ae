package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitCmd tests configuration file generation.
func TestInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates configuration file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), configFileName)

		out, err := runCommand(t, "init", "-o", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Created configuration file") {
			t.Errorf("expected creation message, got %q", out)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read generated config: %v", err)
		}
		if !strings.Contains(string(data), "tolerance:") {
			t.Errorf("expected tolerance key in template, got:\n%s", data)
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "dir", configFileName)

		if _, err := runCommand(t, "init", "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected config file to exist: %v", err)
		}
	})

	t.Run("refuses to overwrite existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), configFileName)
		if err := os.WriteFile(path, []byte("tolerance: 2\n"), 0600); err != nil {
			t.Fatalf("failed to write existing config: %v", err)
		}

		if _, err := runCommand(t, "init", "-o", path); err == nil {
			t.Error("expected error when file exists")
		}
	})

	t.Run("force overwrites existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), configFileName)
		if err := os.WriteFile(path, []byte("tolerance: 2\n"), 0600); err != nil {
			t.Fatalf("failed to write existing config: %v", err)
		}

		if _, err := runCommand(t, "init", "-o", path, "-f"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read config: %v", err)
		}
		if !strings.Contains(string(data), "levelcheck configuration") {
			t.Errorf("expected template content, got:\n%s", data)
		}
	})

	t.Run("generated template loads cleanly", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		configPath := filepath.Join(dir, configFileName)

		if _, err := runCommand(t, "init", "-o", configPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		inputPath := filepath.Join(dir, "input.txt")
		if err := os.WriteFile(inputPath, []byte("1 2 3\n"), 0600); err != nil {
			t.Fatalf("failed to write input: %v", err)
		}

		out, err := runCommand(t, "check", "-c", configPath, inputPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Total safe reports: 1") {
			t.Errorf("expected evaluation with template config, got:\n%s", out)
		}
	})
}
