package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func resetExitCode(t *testing.T) {
	t.Helper()
	ExitCode = 0
	t.Cleanup(func() { ExitCode = 0 })
}

func TestRunReport_LocalOnly(t *testing.T) {
	resetExitCode(t)
	tmpDir := t.TempDir()

	results := filepath.Join(tmpDir, "results.json")
	writeFile(t, results, `{"tests": [{"title": "allGood", "status": "passed"}]}`)

	cmd := NewReportCommand()
	cmd.SetArgs([]string{"--no-push", "-q", results})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", ExitCode)
	}
}

func TestRunReport_FailuresSetExitCode(t *testing.T) {
	resetExitCode(t)
	tmpDir := t.TempDir()

	results := filepath.Join(tmpDir, "results.json")
	writeFile(t, results, `{"tests": [
		{"title": "ok", "status": "passed"},
		{"title": "broken", "status": "failed", "message": "boom"}
	]}`)

	cmd := NewReportCommand()
	cmd.SetArgs([]string{"--no-push", "-q", results})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if ExitCode != 1 {
		t.Errorf("Expected exit code 1 for failures, got %d", ExitCode)
	}
}

func TestRunReport_NoTests(t *testing.T) {
	resetExitCode(t)
	tmpDir := t.TempDir()

	results := filepath.Join(tmpDir, "empty.json")
	writeFile(t, results, `{"tests": []}`)

	cmd := NewReportCommand()
	cmd.SetArgs([]string{"--no-push", results})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for empty run")
	}
}

func TestRunReport_BadOutputFormat(t *testing.T) {
	resetExitCode(t)
	tmpDir := t.TempDir()

	results := filepath.Join(tmpDir, "results.json")
	writeFile(t, results, `{"tests": [{"title": "a", "status": "passed"}]}`)

	cmd := NewReportCommand()
	cmd.SetArgs([]string{"--no-push", "-o", "xml", results})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for unknown output format")
	}
}

func TestRunReport_PushesToServer(t *testing.T) {
	resetExitCode(t)

	var mu sync.Mutex
	var requests []string
	var addedTitles []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		requests = append(requests, r.Method+" "+r.URL.Path)

		switch {
		case r.Method == "POST" && r.URL.Path == "/api/reporter":
			_, _ = w.Write([]byte(`{"uid":"run-9","url":"` + "http://reports/run-9" + `"}`))
		case r.Method == "POST" && r.URL.Path == "/api/reporter/run-9/testrun":
			body, _ := io.ReadAll(r.Body)
			var payload struct {
				Title string `json:"title"`
			}
			_ = json.Unmarshal(body, &payload)
			addedTitles = append(addedTitles, payload.Title)
			w.WriteHeader(http.StatusCreated)
		case r.Method == "PUT" && r.URL.Path == "/api/reporter/run-9":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	results := filepath.Join(tmpDir, "results.json")
	writeFile(t, results, `{"tests": [
		{"title": "testUserCanLogin", "status": "passed"},
		{"title": "brokenFlow", "status": "failed", "message": "boom"}
	]}`)

	cmd := NewReportCommand()
	cmd.SetArgs([]string{"--url", server.URL, "--api-key", "k", "-q", results})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()

	want := []string{
		"POST /api/reporter",
		"POST /api/reporter/run-9/testrun",
		"POST /api/reporter/run-9/testrun",
		"PUT /api/reporter/run-9",
	}
	if len(requests) != len(want) {
		t.Fatalf("Unexpected requests: %v", requests)
	}
	for i, r := range want {
		if requests[i] != r {
			t.Errorf("Request %d: expected %s, got %s", i, r, requests[i])
		}
	}

	// Enrichment humanized the identifier before pushing
	if len(addedTitles) != 2 || addedTitles[0] != "User Can Login" {
		t.Errorf("Unexpected pushed titles: %v", addedTitles)
	}

	if ExitCode != 1 {
		t.Errorf("Expected exit code 1 for failures, got %d", ExitCode)
	}
}

func TestRunReport_ReusesRunID(t *testing.T) {
	resetExitCode(t)

	var mu sync.Mutex
	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		requests = append(requests, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	results := filepath.Join(tmpDir, "results.json")
	writeFile(t, results, `{"tests": [{"title": "a", "status": "passed"}]}`)

	cmd := NewReportCommand()
	cmd.SetArgs([]string{"--url", server.URL, "--run-id", "existing-run", "-q", results})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()

	for _, r := range requests {
		if r == "POST /api/reporter" {
			t.Errorf("Should not create a run when run-id is given: %v", requests)
		}
	}
	if requests[len(requests)-1] != "PUT /api/reporter/existing-run" {
		t.Errorf("Expected finish on existing run, got %v", requests)
	}
}

func TestRunReport_PushFailureIsNonFatal(t *testing.T) {
	resetExitCode(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	results := filepath.Join(tmpDir, "results.json")
	writeFile(t, results, `{"tests": [{"title": "a", "status": "passed"}]}`)

	cmd := NewReportCommand()
	cmd.SetArgs([]string{"--url", server.URL, "-q", results})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Push failure should not fail the report: %v", err)
	}
	if ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", ExitCode)
	}
}

func TestRunReport_ConfigFile(t *testing.T) {
	resetExitCode(t)
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	writeFile(t, configPath, `
snippet:
  before: 1
  limit: 3
`)

	results := filepath.Join(tmpDir, "results.json")
	writeFile(t, results, `{"tests": [{"title": "a", "status": "passed"}]}`)

	cmd := NewReportCommand()
	cmd.SetArgs([]string{"-c", configPath, "--no-push", "-q", results})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Report with config failed: %v", err)
	}
}
