package title

import (
	"regexp"
	"strings"
)

var (
	testIDPattern  = regexp.MustCompile(`@T([0-9a-f]{8})`)
	suiteIDPattern = regexp.MustCompile(`@S([0-9a-f]{8})`)
	idTagPattern   = regexp.MustCompile(`\s?@[TS][0-9a-f]{8}`)
	spaceRun       = regexp.MustCompile(`\s{2,}`)
)

// ParseID extracts the test-ID tag from a title, e.g. "@T8acca9eb".
func ParseID(s string) (string, bool) {
	m := testIDPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseSuiteID extracts the suite-ID tag from a title, e.g. "@S12ab34cd".
func ParseSuiteID(s string) (string, bool) {
	m := suiteIDPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StripIDs removes test- and suite-ID tags from a title and collapses the
// whitespace they leave behind.
func StripIDs(s string) string {
	s = idTagPattern.ReplaceAllString(s, "")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
