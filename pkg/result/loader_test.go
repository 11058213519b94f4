package result

import (
	"os"
	"path/filepath"
	"testing"
)

func writeResults(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write results: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeResults(t, tmpDir, "results.json", `{
		"tests": [
			{"title": "userCanLogin", "status": "passed", "run_time_ms": 12.5},
			{"title": "userCannotReuseToken", "status": "failed", "message": "expected 401", "trace": "at /app/test.js:3:1"}
		]
	}`)

	run, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(run.Tests) != 2 {
		t.Fatalf("Expected 2 tests, got %d", len(run.Tests))
	}
	if run.Tests[0].Status != StatusPassed {
		t.Errorf("Expected first test passed, got %s", run.Tests[0].Status)
	}
	if run.Tests[1].Message != "expected 401" {
		t.Errorf("Unexpected message: %s", run.Tests[1].Message)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/results.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeResults(t, tmpDir, "bad.json", "{not json")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestLoadAll_MergesShards(t *testing.T) {
	tmpDir := t.TempDir()
	writeResults(t, tmpDir, "shard-1.json", `{"tests": [{"title": "a", "status": "passed"}]}`)
	writeResults(t, tmpDir, "shard-2.json", `{"tests": [{"title": "b", "status": "failed"}]}`)

	run, files, err := LoadAll([]string{filepath.Join(tmpDir, "shard-*.json")})
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(files) != 2 {
		t.Errorf("Expected 2 files, got %d", len(files))
	}
	if len(run.Tests) != 2 {
		t.Errorf("Expected 2 merged tests, got %d", len(run.Tests))
	}
	if !run.HasFailures() {
		t.Error("Expected merged run to carry the failure")
	}
}

func TestRun_Summary(t *testing.T) {
	run := &Run{Tests: []*Test{
		{Title: "a", Status: StatusPassed, RunTimeMs: 10},
		{Title: "b", Status: StatusFailed, RunTimeMs: 5},
		{Title: "c", Status: StatusSkipped},
		{Title: "d", Status: StatusPassed, RunTimeMs: 2.5},
	}}

	s := run.Summary()
	if s.Total != 4 || s.Passed != 2 || s.Failed != 1 || s.Skipped != 1 {
		t.Errorf("Unexpected summary: %+v", s)
	}
	if s.RunTimeMs != 17.5 {
		t.Errorf("Expected 17.5ms total, got %v", s.RunTimeMs)
	}
}
