package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/littlefrontender/reporter/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a reporter configuration file without reporting anything.

Checks:
  - YAML syntax
  - Server URL format (when set)
  - Snippet window bounds and language hint
  - Vendor directory names`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
	if cfg.Server.URL != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  Server: %s\n", cfg.Server.URL)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "  Server: not configured (runs render locally)")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Snippet window: %d before, %d lines max, language %s\n",
		cfg.Snippet.Before, cfg.Snippet.Limit, cfg.Snippet.Language)

	return nil
}
