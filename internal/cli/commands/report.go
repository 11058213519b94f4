package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/littlefrontender/reporter/pkg/client"
	"github.com/littlefrontender/reporter/pkg/config"
	"github.com/littlefrontender/reporter/pkg/output"
	"github.com/littlefrontender/reporter/pkg/result"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ReportOptions holds command-line options for the report command.
type ReportOptions struct {
	Config  string
	Output  string
	Verbose bool
	Quiet   bool

	// Server options
	URL      string
	APIKey   string
	RunID    string
	RunTitle string
	Env      string
	NoPush   bool
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report <results-file>...",
		Short: "Report a test run with source-code context",
		Long: `Load one or more JSON results files (glob patterns allowed), enrich
failed tests with an annotated source snippet extracted from their stack
traces, and render the run.

When a reporting server is configured (config file, environment, or
flags), the run is also pushed: a run is created (or reused via run_id),
each test result is posted into it, and the run is closed with its
terminal status. Push failures are printed to stderr but do not fail the
report.

Exit codes:
  0 - All tests passed or were skipped
  1 - Run contains failed tests
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (defaults to environment variables)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show run times and artifacts")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	// Server flags
	cmd.Flags().StringVar(&opts.URL, "url", "", "Reporting server URL")
	cmd.Flags().StringVar(&opts.APIKey, "api-key", "", "Reporting server API key")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "Existing run ID to report into")
	cmd.Flags().StringVar(&opts.RunTitle, "run-title", "", "Title for the created run")
	cmd.Flags().StringVar(&opts.Env, "env", "", "Environment label for the run")
	cmd.Flags().BoolVar(&opts.NoPush, "no-push", false, "Render locally without pushing")

	return cmd
}

func runReport(cmd *cobra.Command, args []string, opts *ReportOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadReportConfig(ctx, opts)
	if err != nil {
		return err
	}

	// Load and merge results files
	run, sources, err := result.LoadAll(args)
	if err != nil {
		return fmt.Errorf("loading results: %w", err)
	}

	if len(run.Tests) == 0 {
		return fmt.Errorf("no tests found in: %v", args)
	}

	// Enrich failures with snippets, titles, and artifacts
	lang, autoDetect := cfg.Language()
	enrichOpts := result.EnrichOptions{
		Before:     cfg.Snippet.Before,
		Limit:      cfg.Snippet.Limit,
		Language:   lang,
		AutoDetect: autoDetect,
		VendorDirs: cfg.VendorDirs,
	}
	if err := result.Enrich(run, enrichOpts); err != nil {
		return fmt.Errorf("enriching run: %w", err)
	}

	report := output.NewReport(run, sources)

	// Push before rendering so the remote report URL shows up locally.
	// Push errors are logged but don't fail the report.
	if cfg.Server.URL != "" && !opts.NoPush {
		report.Metadata.RunURL = pushRun(ctx, cfg, run)
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Set exit code based on results
	if report.HasFailures() {
		ExitCode = 1
	}

	return nil
}

// loadReportConfig resolves the configuration from file or environment,
// then applies flag overrides.
func loadReportConfig(ctx context.Context, opts *ReportOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if opts.Config != "" {
		cfg, err = config.Load(ctx, opts.Config)
	} else {
		cfg, err = config.FromEnvironment()
	}
	if err != nil {
		return nil, err
	}

	if opts.URL != "" {
		cfg.Server.URL = opts.URL
	}
	if opts.APIKey != "" {
		cfg.Server.APIKey = opts.APIKey
	}
	if opts.RunID != "" {
		cfg.Server.RunID = opts.RunID
	}
	if opts.RunTitle != "" {
		cfg.Server.RunTitle = opts.RunTitle
	}
	if opts.Env != "" {
		cfg.Server.Environment = opts.Env
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func createFormatter(opts *ReportOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// pushRun sends the run to the reporting server and returns the remote
// report URL, if any. Errors are printed to stderr.
func pushRun(ctx context.Context, cfg *config.Config, run *result.Run) string {
	c := client.New(client.Config{
		URL:     cfg.Server.URL,
		APIKey:  cfg.Server.APIKey,
		Timeout: cfg.Server.Timeout,
	})

	runID := cfg.Server.RunID
	runURL := ""

	if runID == "" {
		ref, resp := c.CreateRun(ctx, client.RunParams{
			Title:       cfg.Server.RunTitle,
			Environment: cfg.Server.Environment,
		})
		if ref == nil {
			fmt.Fprintf(os.Stderr, "Push: failed to create run (%v)\n", resp.Error)
			return ""
		}
		runID = ref.UID
		runURL = ref.URL
	}

	failed := 0
	for _, test := range run.Tests {
		resp := c.AddTest(ctx, runID, client.NewTestPayload(test))
		if !resp.Success() {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Push: %d of %d test results failed to send\n", failed, len(run.Tests))
	}

	status := client.FinishPassed
	if run.HasFailures() {
		status = client.FinishFailed
	}
	summary := run.Summary()
	resp := c.FinishRun(ctx, runID, client.FinishParams{
		StatusEvent: status,
		Duration:    summary.RunTimeMs,
	})
	if !resp.Success() {
		fmt.Fprintf(os.Stderr, "Push: failed to finish run (%v)\n", resp.Error)
	} else {
		fmt.Fprintf(os.Stderr, "Push: run %s reported (%d, %s)\n", runID, resp.StatusCode, resp.Duration)
	}

	return runURL
}
