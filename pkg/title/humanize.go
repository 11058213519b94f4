package title

import (
	"regexp"
	"strings"
	"unicode"
)

var separatorRun = regexp.MustCompile(Separator + `(.)`)

// Leading tokens stripped from humanized titles. Test frameworks prefix
// test method names with these; they carry no meaning in a display title.
var strippedPrefixes = []string{"Test ", "Should "}

// Humanize converts an identifier into a readable phrase suitable as a
// display title: "shouldReturnTrue" becomes "Return True". Any input,
// including the empty string, produces some output.
func Humanize(s string) string {
	s = Decamelize(s)
	s = separatorRun.ReplaceAllStringFunc(s, func(m string) string {
		return " " + strings.ToUpper(m[len(Separator):])
	})
	s = strings.TrimSpace(s)
	s = capitalizeWords(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " A ", " a ")
	s = strings.ReplaceAll(s, " The ", " the ")
	for _, prefix := range strippedPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	return s
}

// capitalizeWords uppercases the first character of the string and the
// first character after each space.
func capitalizeWords(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if i == 0 || rs[i-1] == ' ' {
			rs[i] = unicode.ToUpper(r)
		}
	}
	return string(rs)
}
