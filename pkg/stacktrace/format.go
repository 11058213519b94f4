package stacktrace

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// targetStyle emphasizes the failing line. lipgloss degrades to plain text
// when output is not a terminal.
var targetStyle = lipgloss.NewStyle().Bold(true)

// Annotate renders the window as a line-numbered excerpt. Ordinary lines
// read "<num> | <text>"; the target line reads "<num> > <text>" with the
// text emphasized.
func (w Window) Annotate() string {
	var b strings.Builder
	for i, line := range w {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line.Target {
			fmt.Fprintf(&b, "%d > %s", line.Num, targetStyle.Render(line.Text))
		} else {
			fmt.Fprintf(&b, "%d | %s", line.Num, line.Text)
		}
	}
	return b.String()
}
