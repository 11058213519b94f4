package result

import "regexp"

// ansiPattern matches ANSI escape sequences (colors, cursor movement)
// that test frameworks leave in failure output.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
