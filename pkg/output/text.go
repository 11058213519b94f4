package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/littlefrontender/reporter/pkg/result"
)

// TextFormatter formats run reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "Run: %d tests, %d passed, %d failed, %d skipped\n",
		report.Summary.Total,
		report.Summary.Passed,
		report.Summary.Failed,
		report.Summary.Skipped)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	// Header
	fmt.Fprintln(w, "=== Test Run Report ===")
	fmt.Fprintln(w)

	for _, test := range report.Tests {
		f.formatTest(test, w)
	}

	// Summary
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d tests, %d passed, %d failed, %d skipped\n",
		report.Summary.Total,
		report.Summary.Passed,
		report.Summary.Failed,
		report.Summary.Skipped)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Total run time: %.1fms\n", report.Summary.RunTimeMs)
		if len(report.Metadata.Sources) > 0 {
			fmt.Fprintf(w, "Sources: %s\n", strings.Join(report.Metadata.Sources, ", "))
		}
	}

	if report.Metadata.RunURL != "" {
		fmt.Fprintf(w, "Report: %s\n", report.Metadata.RunURL)
	}

	return nil
}

func (f *TextFormatter) formatTest(test *result.Test, w io.Writer) {
	fmt.Fprintf(w, "[%s] %s\n", statusTag(test.Status), displayTitle(test))

	if f.opts.Verbose && test.RunTimeMs > 0 {
		fmt.Fprintf(w, "  Run time: %.1fms\n", test.RunTimeMs)
	}

	if test.Status != result.StatusFailed {
		return
	}

	if test.Message != "" {
		fmt.Fprintf(w, "  %s\n", test.Message)
	}

	if test.Snippet != "" {
		for _, line := range strings.Split(test.Snippet, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	if f.opts.Verbose && len(test.Files) > 0 {
		fmt.Fprintf(w, "  Artifacts: %s\n", strings.Join(test.Files, ", "))
	}

	fmt.Fprintln(w)
}

func displayTitle(test *result.Test) string {
	title := test.HumanizedTitle
	if title == "" {
		title = test.Title
	}
	if test.Suite != "" {
		return test.Suite + " > " + title
	}
	return title
}

func statusTag(s result.Status) string {
	switch s {
	case result.StatusPassed:
		return "PASS"
	case result.StatusFailed:
		return "FAIL"
	case result.StatusSkipped:
		return "SKIP"
	default:
		return strings.ToUpper(string(s))
	}
}
