package report

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// VolumeUnit is the suffix for multiples of 10,000 (man).
const VolumeUnit = "万"

// FormatVolume renders aggregate volumes: 10,000 and up as one-decimal
// multiples of VolumeUnit, 1,000 and up with thousands separators, the
// rest as plain integers.
func FormatVolume(n int64) string {
	switch {
	case n >= 10000:
		return strconv.FormatFloat(float64(n)/10000, 'f', 1, 64) + VolumeUnit
	case n >= 1000:
		return humanize.Comma(n)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatCount renders exact numbers with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
