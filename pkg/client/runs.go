package client

import (
	"context"

	"github.com/littlefrontender/reporter/pkg/result"
)

// RunParams describes a run to create on the reporting server.
type RunParams struct {
	Title       string `json:"title,omitempty"`
	Environment string `json:"env,omitempty"`
}

// RunRef identifies a run created on the reporting server.
type RunRef struct {
	UID string `json:"uid"`
	URL string `json:"url,omitempty"`
}

// FinishStatus is the terminal status event for a run.
type FinishStatus string

const (
	FinishPassed FinishStatus = "finish"
	FinishFailed FinishStatus = "fail"
)

// FinishParams closes out a run.
type FinishParams struct {
	StatusEvent FinishStatus `json:"status_event"`
	Duration    float64      `json:"duration,omitempty"`
}

// TestPayload is one test result as the reporting API expects it.
type TestPayload struct {
	TestID     string   `json:"test_id,omitempty"`
	Title      string   `json:"title"`
	SuiteTitle string   `json:"suite_title,omitempty"`
	SuiteID    string   `json:"suite_id,omitempty"`
	Status     string   `json:"status"`
	Message    string   `json:"message,omitempty"`
	Stack      string   `json:"stack,omitempty"`
	Code       string   `json:"code,omitempty"`
	RunTime    float64  `json:"run_time,omitempty"`
	Artifacts  []string `json:"artifacts,omitempty"`
	Steps      []string `json:"steps,omitempty"`
}

// NewTestPayload converts an enriched test into its wire form. The
// humanized title is preferred when enrichment produced one.
func NewTestPayload(t *result.Test) TestPayload {
	displayTitle := t.HumanizedTitle
	if displayTitle == "" {
		displayTitle = t.Title
	}

	return TestPayload{
		TestID:     t.ID,
		Title:      displayTitle,
		SuiteTitle: t.Suite,
		SuiteID:    t.SuiteID,
		Status:     string(t.Status),
		Message:    t.Message,
		Stack:      t.Trace,
		Code:       t.Snippet,
		RunTime:    t.RunTimeMs,
		Artifacts:  t.Files,
		Steps:      t.Steps,
	}
}

// CreateRun registers a new run and returns its reference.
// The returned RunRef is nil when the request failed.
func (c *Client) CreateRun(ctx context.Context, params RunParams) (*RunRef, *Response) {
	ref := &RunRef{}
	resp := c.send(ctx, "POST", "/api/reporter", params, ref)
	if !resp.Success() || ref.UID == "" {
		return nil, resp
	}
	return ref, resp
}

// AddTest reports a single test result into an existing run.
func (c *Client) AddTest(ctx context.Context, runID string, test TestPayload) *Response {
	return c.send(ctx, "POST", "/api/reporter/"+runID+"/testrun", test, nil)
}

// FinishRun closes out a run with its terminal status.
func (c *Client) FinishRun(ctx context.Context, runID string, params FinishParams) *Response {
	return c.send(ctx, "PUT", "/api/reporter/"+runID, params, nil)
}
