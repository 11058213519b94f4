package stacktrace

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Frame is one file:line reference parsed from a stack trace.
type Frame struct {
	// Path is the source file path. It exists on disk and is a regular file.
	Path string

	// Line is the 1-based line number reported by the trace.
	Line int
}

// pathPattern matches a syntactically plausible file path: path characters
// ending in a dotted extension.
var pathPattern = regexp.MustCompile(`^[\w~./\\-]+\.\w+$`)

// FirstFrame scans the trace for the first line referencing an existing
// project-owned source file and returns it parsed into a Frame.
//
// Candidate lines pass through a filter pipeline: must contain a colon,
// must carry a whitespace-delimited path:line token, the path must look
// like a file path, must not sit under a vendor directory, must exist on
// disk and must be a regular file. The first survivor wins; filesystem
// checks only run on lines that already passed the string filters.
func (e *Extractor) FirstFrame(trace string) (*Frame, bool) {
	for _, line := range strings.Split(trace, "\n") {
		if !strings.Contains(line, ":") {
			continue
		}

		token := frameToken(line)
		if token == "" {
			continue
		}

		idx := strings.Index(token, ":")
		path := token[:idx]
		if !pathPattern.MatchString(path) {
			continue
		}
		if e.isVendorPath(path) {
			continue
		}

		num := parseLineNumber(token[idx+1:])
		if num < 1 {
			continue
		}

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		return &Frame{Path: path, Line: num}, true
	}

	return nil, false
}

// frameToken isolates the path:line fragment embedded among other text on a
// stack line. Returns "" when no whitespace-delimited token carries a colon.
func frameToken(line string) string {
	for _, field := range strings.Fields(strings.TrimSpace(line)) {
		// Trace formats wrap the location in brackets or punctuation,
		// e.g. "(/src/app.js:3:7)".
		field = strings.Trim(field, "()[]<>,\"'")
		if strings.Contains(field, ":") {
			return field
		}
	}
	return ""
}

// parseLineNumber reads the leading digits of the fragment after the first
// colon. Column suffixes (":12:5") are ignored.
func parseLineNumber(s string) int {
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func (e *Extractor) isVendorPath(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, seg := range strings.Split(normalized, "/") {
		for _, vendor := range e.vendorDirs {
			if seg == vendor {
				return true
			}
		}
	}
	return false
}
