package stacktrace

import "strings"

// Line is one rendered source line.
type Line struct {
	// Num is the absolute 1-based line number in the source file.
	Num int

	// Text is the original line content.
	Text string

	// Target marks the line the trace reported as failing. At most one
	// line in a window carries it.
	Target bool
}

// Window is a contiguous slice of a source file around a target line.
type Window []Line

// Render slices the file contents into a window around the 1-based target
// line using the extractor's geometry.
//
// The window covers the limit indices starting before lines above the
// target; indices before the first line or past end-of-file are skipped
// without padding, so a target near the top of the file yields a short
// window rather than one sliding below target+before. When no
// lookback was requested and a language hint is set, emission stops early
// once at least three lines are out and a line matches the language's
// next-declaration heuristic, so a snippet does not bleed into the next
// test body.
//
// Returns an empty window when no target line is given, or when the start
// index would be non-positive with no lookback requested.
func (e *Extractor) Render(contents string, target int) Window {
	if target < 1 {
		return nil
	}

	start := (target - 1) - e.before
	if e.before == 0 && start <= 0 {
		return nil
	}
	// Lines above the file count against the limit instead of refilling
	// below the target.
	end := start + e.limit
	if start < 0 {
		start = 0
	}

	lines := strings.Split(contents, "\n")

	var window Window
	for i := start; i < end && i < len(lines); i++ {
		text := lines[i]
		if e.before == 0 && len(window) >= 3 && nextDeclaration(e.lang, text) {
			break
		}
		window = append(window, Line{
			Num:    i + 1,
			Text:   text,
			Target: i+1 == target,
		})
	}

	return window
}
