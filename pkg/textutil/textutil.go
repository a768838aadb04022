// Package textutil holds small text-formatting helpers for help output.
package textutil

import "strings"

// Wrap splits text into lines of at most width characters, breaking on
// word boundaries. Runs of whitespace collapse to single spaces. A word
// longer than width occupies a line on its own. Empty or all-whitespace
// text yields nil.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
		}
	}
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			flush()
		}
		if line.Len() == 0 && len(word) > width {
			lines = append(lines, word)
			continue
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	flush()
	return lines
}
