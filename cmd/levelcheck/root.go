// Package main provides the entry point for the levelcheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for levelcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levelcheck",
		Short: "Safety checker for level reports",
		Long: `Levelcheck evaluates level reports against a safety rule.

A report is one input line of whitespace-separated integer readings. It is
safe when the readings are strictly monotonic in one direction and every
adjacent pair differs by 1 to 3. With a tolerance greater than zero, the
dampener may remove up to that many readings to make a report safe.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
