// Package output provides formatting and output generation for run reports.
package output

import (
	"time"

	"github.com/littlefrontender/reporter/pkg/result"
)

// Report is the complete local output for a run.
type Report struct {
	// Summary provides aggregate counts.
	Summary result.Summary

	// Tests contains the enriched test results.
	Tests []*result.Test

	// Metadata provides context about the run.
	Metadata Metadata
}

// Metadata provides context about the reported run.
type Metadata struct {
	// Sources lists the results files that fed the run.
	Sources []string

	// ReportedAt is when the report was generated.
	ReportedAt time.Time

	// RunURL is the remote report URL, when the run was pushed.
	RunURL string
}

// NewReport creates a Report from an enriched run.
func NewReport(run *result.Run, sources []string) *Report {
	return &Report{
		Summary: run.Summary(),
		Tests:   run.Tests,
		Metadata: Metadata{
			Sources:    sources,
			ReportedAt: time.Now(),
		},
	}
}

// HasFailures returns true if any test failed.
func (r *Report) HasFailures() bool {
	return r.Summary.Failed > 0
}
