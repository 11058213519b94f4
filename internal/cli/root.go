// Package cli provides the command-line interface for the reporting client.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/littlefrontender/reporter/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reporter",
		Short: "Report test results with source-code context",
		Long: `Reporter is a test-reporting client.

It reads test-run results files, derives readable titles from test
identifiers, enriches failures with an annotated excerpt of the source
code around the failing line, and pushes the structured run to a remote
reporting server.

Pushing is optional: without a configured server URL, reporter renders
the run locally and exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewReportCommand())
	rootCmd.AddCommand(commands.NewSnippetCommand())
	rootCmd.AddCommand(commands.NewTitleCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
