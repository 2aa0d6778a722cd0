package aggregate

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ParseVolume turns a monthly search count cell into an integer. Full-width
// digits are folded first, then thousands separators are dropped. Anything
// that still does not parse, or parses negative, counts as zero.
func ParseVolume(s string) int64 {
	s = width.Narrow.String(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
