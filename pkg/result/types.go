// Package result models a test run and loads it from results files.
package result

import "time"

// Status is the outcome of a single test.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Test is one test case within a run.
type Test struct {
	// Fields read from the results file.
	Title     string   `json:"title"`
	Suite     string   `json:"suite,omitempty"`
	Status    Status   `json:"status"`
	Message   string   `json:"message,omitempty"`
	Trace     string   `json:"trace,omitempty"`
	RunTimeMs float64  `json:"run_time_ms,omitempty"`
	Files     []string `json:"files,omitempty"`
	Steps     []string `json:"steps,omitempty"`

	// Fields filled in by enrichment.
	ID             string `json:"id,omitempty"`
	SuiteID        string `json:"suite_id,omitempty"`
	HumanizedTitle string `json:"humanized_title,omitempty"`
	Snippet        string `json:"snippet,omitempty"`
}

// Run is a complete test run.
type Run struct {
	Tests     []*Test   `json:"tests"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int

	// RunTimeMs is the summed test duration.
	RunTimeMs float64
}

// Summary computes aggregate counts for the run.
func (r *Run) Summary() Summary {
	var s Summary
	for _, t := range r.Tests {
		s.Total++
		s.RunTimeMs += t.RunTimeMs
		switch t.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

// HasFailures returns true if any test in the run failed.
func (r *Run) HasFailures() bool {
	for _, t := range r.Tests {
		if t.Status == StatusFailed {
			return true
		}
	}
	return false
}
