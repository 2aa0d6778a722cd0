package aggregate

import "strings"

// cleanTerm folds no-break spaces and collapses runs of whitespace, which
// keyword tools tend to leave in exported terms.
func cleanTerm(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u3000", " ")
	return strings.Join(strings.Fields(s), " ")
}
