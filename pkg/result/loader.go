package result

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Load reads a single JSON results file.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided results path is expected
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}

	run := &Run{}
	if err := json.Unmarshal(data, run); err != nil {
		return nil, fmt.Errorf("parsing results file %s: %w", path, err)
	}

	return run, nil
}

// LoadAll expands the given paths and glob patterns and merges every
// matching results file into a single run. Sharded test runs write one
// file per shard; files are visited in sorted path order, so the merged
// run is stable regardless of glob match order.
func LoadAll(patterns []string) (*Run, []string, error) {
	files, err := ExpandGlobs(patterns)
	if err != nil {
		return nil, nil, err
	}

	merged := &Run{}
	for _, file := range files {
		run, err := Load(file)
		if err != nil {
			return nil, nil, err
		}
		merged.Tests = append(merged.Tests, run.Tests...)
		if merged.CreatedAt.IsZero() || (!run.CreatedAt.IsZero() && run.CreatedAt.Before(merged.CreatedAt)) {
			merged.CreatedAt = run.CreatedAt
		}
	}

	return merged, files, nil
}

// ExpandGlobs expands a list of file paths and glob patterns into a
// deduplicated list of matching file paths. Patterns that don't match any
// files are returned as-is (the caller should handle file-not-found errors).
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			// Pattern didn't match anything - include it as literal path
			// for a better error message later.
			if !seen[pattern] {
				seen[pattern] = true
				result = append(result, pattern)
			}
			continue
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	// Sort for deterministic ordering
	sort.Strings(result)

	return result, nil
}
