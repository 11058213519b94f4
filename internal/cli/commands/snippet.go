package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/littlefrontender/reporter/pkg/stacktrace"
)

// SnippetOptions holds command-line options for the snippet command.
type SnippetOptions struct {
	Language   string
	Before     int
	Limit      int
	VendorDirs []string
}

// NewSnippetCommand creates the snippet command.
func NewSnippetCommand() *cobra.Command {
	opts := &SnippetOptions{}

	cmd := &cobra.Command{
		Use:   "snippet <trace-file|->",
		Short: "Extract a source snippet from a stack trace",
		Long: `Read a raw stack trace from a file (or stdin with "-"), locate the
first project-owned source reference, and print an annotated excerpt of
the code around the failing line.

Frames under vendor directories and paths that don't exist locally are
skipped. With --before 0 and a language, emission stops at the next test
or method declaration so the snippet doesn't bleed into the next body.

Exit codes:
  0 - Snippet printed
  1 - No usable source reference in the trace
  2 - Runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnippet(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Language, "lang", "l", "auto", "Language hint (php|python|ruby|ts|js|java|auto)")
	cmd.Flags().IntVarP(&opts.Before, "before", "b", stacktrace.DefaultBefore, "Lookback lines above the failing line")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", stacktrace.DefaultLimit, "Maximum snippet lines")
	cmd.Flags().StringSliceVar(&opts.VendorDirs, "vendor-dir", nil, "Vendor directory segment to reject (can be repeated)")

	return cmd
}

func runSnippet(cmd *cobra.Command, args []string, opts *SnippetOptions) error {
	trace, err := readTrace(args[0])
	if err != nil {
		return err
	}

	lang, err := stacktrace.ParseLanguage(opts.Language)
	if err != nil {
		return err
	}
	if lang == stacktrace.LangNone {
		lang = stacktrace.DetectLanguage(trace)
	}

	exOpts := []stacktrace.Option{
		stacktrace.WithWindow(opts.Before, opts.Limit),
		stacktrace.WithLanguage(lang),
	}
	if len(opts.VendorDirs) > 0 {
		exOpts = append(exOpts, stacktrace.WithVendorDirs(opts.VendorDirs))
	}

	snippet, err := stacktrace.New(exOpts...).FromTrace(trace)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	if snippet == "" {
		fmt.Fprintln(os.Stderr, "No usable source reference found in trace")
		ExitCode = 1
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), snippet)
	return nil
}

func readTrace(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg) // #nosec G304 -- user-provided trace path is expected
	if err != nil {
		return "", fmt.Errorf("reading trace file: %w", err)
	}
	return string(data), nil
}
