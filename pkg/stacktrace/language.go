package stacktrace

import (
	"fmt"
	"regexp"
	"strings"
)

// Language identifies the test framework language that produced a trace.
// It only selects the heuristic stop patterns applied when rendering a
// window without lookback.
type Language string

const (
	LangPHP    Language = "php"
	LangPython Language = "python"
	LangRuby   Language = "ruby"
	LangTS     Language = "ts"
	LangJS     Language = "js"
	LangJava   Language = "java"
	LangNone   Language = "none"
)

// ParseLanguage converts a user-supplied string into a Language.
// Empty and "auto" map to LangNone; the caller decides whether to detect.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "php":
		return LangPHP, nil
	case "python", "py":
		return LangPython, nil
	case "ruby", "rb":
		return LangRuby, nil
	case "ts", "typescript":
		return LangTS, nil
	case "js", "javascript":
		return LangJS, nil
	case "java":
		return LangJava, nil
	case "", "auto", "none":
		return LangNone, nil
	default:
		return LangNone, fmt.Errorf("unknown language %q (use php, python, ruby, ts, js, java, or auto)", s)
	}
}

// stopPredicate reports whether a source line starts the next test or
// method declaration.
type stopPredicate func(line string) bool

func trimmedPrefix(prefix string) stopPredicate {
	return func(line string) bool {
		return strings.HasPrefix(strings.TrimSpace(line), prefix)
	}
}

func contains(sub string) stopPredicate {
	return func(line string) bool {
		return strings.Contains(line, sub)
	}
}

// stopPredicates maps each language to its next-declaration heuristics,
// evaluated with short-circuit OR.
var stopPredicates = map[Language][]stopPredicate{
	LangPHP: {
		trimmedPrefix("#["),
		contains("public function test"),
		contains(" function test"),
	},
	LangPython: {
		contains(" def "),
	},
	LangRuby: {
		trimmedPrefix("it '"),
		trimmedPrefix(`it "`),
		contains(" def "),
	},
	LangTS: {
		contains("it("),
		contains("test("),
		contains("describe("),
	},
	LangJS: {
		contains("it("),
		contains("test("),
		contains("describe("),
	},
	LangJava: {
		contains("@Test"),
		contains("public void"),
		contains("void test"),
	},
}

func nextDeclaration(lang Language, line string) bool {
	for _, match := range stopPredicates[lang] {
		if match(line) {
			return true
		}
	}
	return false
}

// languageSignature is a trace shape that hints at a language.
type languageSignature struct {
	lang    Language
	pattern *regexp.Regexp
}

// signatures are ordered by specificity; file extensions beat frame-shape
// heuristics.
var signatures = []languageSignature{
	{LangPython, regexp.MustCompile(`\.py[:"]|Traceback \(most recent call last\)`)},
	{LangRuby, regexp.MustCompile(`\.rb:\d+`)},
	{LangPHP, regexp.MustCompile(`\.php[:(]`)},
	{LangJava, regexp.MustCompile(`\.java:\d+|^\s*at [\w.$]+\(`)},
	{LangTS, regexp.MustCompile(`\.tsx?:\d+`)},
	{LangJS, regexp.MustCompile(`\.[cm]?jsx?:\d+`)},
}

// DetectLanguage guesses the language from the shape of a trace. Each line
// is tested against the signature table; the language with the most
// matching lines wins, with table order breaking ties. Returns LangNone
// when nothing matches.
func DetectLanguage(trace string) Language {
	counts := make(map[Language]int)
	for _, line := range strings.Split(trace, "\n") {
		for _, sig := range signatures {
			if sig.pattern.MatchString(line) {
				counts[sig.lang]++
				break
			}
		}
	}

	best := LangNone
	bestCount := 0
	for _, sig := range signatures {
		if counts[sig.lang] > bestCount {
			best = sig.lang
			bestCount = counts[sig.lang]
		}
	}
	return best
}
