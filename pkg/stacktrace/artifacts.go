package stacktrace

import (
	"os"
	"regexp"
)

// artifactPattern matches file:// URLs pointing at media or report files
// that test frameworks embed in failure output.
var artifactPattern = regexp.MustCompile(`file://(\S+\.(?:png|avi|webm|jpg|html|txt))`)

// ExtractArtifacts returns the local paths of file:// artifact URLs found
// in the trace, in order of appearance. Paths that do not exist on disk
// are dropped; verbatim repeats are kept.
func ExtractArtifacts(trace string) []string {
	var paths []string
	for _, match := range artifactPattern.FindAllStringSubmatch(trace, -1) {
		path := match[1]
		if _, err := os.Stat(path); err != nil {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
