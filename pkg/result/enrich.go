package result

import (
	"fmt"
	"strings"

	"github.com/littlefrontender/reporter/pkg/stacktrace"
	"github.com/littlefrontender/reporter/pkg/title"
)

// EnrichOptions controls how a run is enriched before reporting.
type EnrichOptions struct {
	// Before and Limit set the snippet window geometry.
	Before int
	Limit  int

	// Language selects the snippet stop heuristics. When AutoDetect is
	// set, LangNone means "guess per test from its trace".
	Language   stacktrace.Language
	AutoDetect bool

	// VendorDirs are directory segments rejected as snippet sources.
	VendorDirs []string
}

// DefaultEnrichOptions returns the standard enrichment settings.
func DefaultEnrichOptions() EnrichOptions {
	return EnrichOptions{
		Before:     stacktrace.DefaultBefore,
		Limit:      stacktrace.DefaultLimit,
		Language:   stacktrace.LangNone,
		AutoDetect: true,
		VendorDirs: stacktrace.DefaultVendorDirs,
	}
}

// Enrich fills the derived fields on every test in the run: ID tags are
// parsed out of titles, identifier titles are humanized, ANSI escapes are
// stripped from failure output, and failed tests gain a source snippet and
// any artifacts referenced by their trace.
//
// A test without a usable frame simply gets no snippet; only a file that
// vanished between the existence check and the read surfaces as an error.
func Enrich(run *Run, opts EnrichOptions) error {
	for _, t := range run.Tests {
		enrichTitle(t)

		t.Message = StripANSI(t.Message)
		t.Trace = StripANSI(t.Trace)

		if t.Status != StatusFailed || t.Trace == "" {
			continue
		}

		lang := opts.Language
		if opts.AutoDetect && lang == stacktrace.LangNone {
			lang = stacktrace.DetectLanguage(t.Trace)
		}

		ex := stacktrace.New(
			stacktrace.WithWindow(opts.Before, opts.Limit),
			stacktrace.WithLanguage(lang),
			stacktrace.WithVendorDirs(opts.VendorDirs),
		)

		snippet, err := ex.FromTrace(t.Trace)
		if err != nil {
			return fmt.Errorf("reading source for %q: %w", t.Title, err)
		}
		t.Snippet = snippet

		t.Files = append(t.Files, stacktrace.ExtractArtifacts(t.Trace)...)
	}

	return nil
}

// enrichTitle parses ID tags off the test title and derives the display
// title from what remains.
func enrichTitle(t *Test) {
	if id, ok := title.ParseID(t.Title); ok {
		t.ID = id
	}
	if id, ok := title.ParseSuiteID(t.Suite); ok {
		t.SuiteID = id
	}

	stripped := title.StripIDs(t.Title)
	if strings.ContainsAny(stripped, " \t") {
		// Already a phrase; nothing to humanize.
		t.HumanizedTitle = stripped
	} else {
		t.HumanizedTitle = title.Humanize(stripped)
	}
	t.Suite = title.StripIDs(t.Suite)
}
