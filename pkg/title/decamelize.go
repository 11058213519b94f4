// Package title turns code identifiers into readable display titles and
// parses test-ID tags embedded in them.
package title

import (
	"regexp"
	"strings"
	"unicode"
)

// Separator is the delimiter inserted between words.
const Separator = "_"

var (
	// caseBoundary splits a lowercase-or-digit character from the
	// uppercase character that follows it.
	caseBoundary = regexp.MustCompile(`([a-z\d])([A-Z])`)

	// acronymTail splits a run of two or more uppercase characters from a
	// trailing uppercase+lowercase pair.
	acronymTail = regexp.MustCompile(`([A-Z]{2,})([A-Z][a-z])`)
)

// Decamelize converts a mixed-case identifier into separator-delimited
// lowercase tokens: "dataForUSACounties" becomes "data_for_USA_counties".
//
// The transform runs three passes in a fixed order, each consuming the
// previous pass's output:
//  1. insert a separator at every lower-to-upper case boundary
//  2. lowercase uppercase characters isolated between non-uppercase
//     neighbors
//  3. split acronym runs from a following capitalized word, lowercasing
//     its leading pair
func Decamelize(s string) string {
	s = caseBoundary.ReplaceAllString(s, "${1}"+Separator+"${2}")
	s = lowerIsolated(s)
	s = acronymTail.ReplaceAllStringFunc(s, func(m string) string {
		return m[:len(m)-2] + Separator + strings.ToLower(m[len(m)-2:])
	})
	return s
}

// lowerIsolated lowercases every uppercase character whose neighbors are
// neither uppercase nor digits. Decisions are made against the input, so
// earlier replacements do not affect later ones.
func lowerIsolated(s string) string {
	in := []rune(s)
	out := make([]rune, len(in))
	copy(out, in)

	isUpperOrDigit := func(r rune) bool {
		return unicode.IsUpper(r) || unicode.IsDigit(r)
	}

	for i, r := range in {
		if !unicode.IsUpper(r) {
			continue
		}
		if i > 0 && isUpperOrDigit(in[i-1]) {
			continue
		}
		if i < len(in)-1 && isUpperOrDigit(in[i+1]) {
			continue
		}
		out[i] = unicode.ToLower(r)
	}

	return string(out)
}
