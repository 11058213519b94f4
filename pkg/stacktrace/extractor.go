// Package stacktrace locates the first project-owned source reference in a
// raw stack trace and renders an annotated excerpt of the code around it.
package stacktrace

import (
	"os"
)

// Default window geometry for trace-driven snippets.
const (
	DefaultBefore = 3
	DefaultLimit  = 7
)

// DefaultVendorDirs are directory segments that mark third-party code.
// Frames under these never surface as snippet candidates.
var DefaultVendorDirs = []string{"node_modules", "vendor"}

// Extractor renders source snippets from stack traces.
type Extractor struct {
	before     int
	limit      int
	lang       Language
	vendorDirs []string
}

// Option configures the Extractor.
type Option func(*Extractor)

// WithWindow sets the lookback line count and the total line limit.
func WithWindow(before, limit int) Option {
	return func(e *Extractor) {
		if before >= 0 {
			e.before = before
		}
		if limit > 0 {
			e.limit = limit
		}
	}
}

// WithLanguage sets the language hint used for early termination of
// windows rendered without lookback.
func WithLanguage(lang Language) Option {
	return func(e *Extractor) {
		e.lang = lang
	}
}

// WithVendorDirs replaces the directory segments treated as third-party code.
func WithVendorDirs(dirs []string) Option {
	return func(e *Extractor) {
		if len(dirs) > 0 {
			e.vendorDirs = dirs
		}
	}
}

// New creates an Extractor with default settings.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		before:     DefaultBefore,
		limit:      DefaultLimit,
		lang:       LangNone,
		vendorDirs: DefaultVendorDirs,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromTrace finds the first valid code frame in the trace, reads its file
// and returns the annotated window around the failing line.
//
// Returns "" with a nil error when the trace contains no usable frame;
// callers treat that as "no enrichment available". A read error after the
// existence check (the file vanished, permissions changed) is returned
// as-is since snippet enrichment is best-effort.
func (e *Extractor) FromTrace(trace string) (string, error) {
	frame, ok := e.FirstFrame(trace)
	if !ok {
		return "", nil
	}

	data, err := os.ReadFile(frame.Path) // #nosec G304 -- path comes from the trace under inspection
	if err != nil {
		return "", err
	}

	window := e.Render(string(data), frame.Line)
	if len(window) == 0 {
		return "", nil
	}

	return window.Annotate(), nil
}
