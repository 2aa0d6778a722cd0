package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{9999, "9,999"},
		{10000, "1.0万"},
		{12345, "1.2万"},
		{99999, "10.0万"},
		{1000000, "100.0万"},
		{123456789, "12345.7万"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVolume(tt.in), "FormatVolume(%d)", tt.in)
	}

	assert.NotContains(t, FormatVolume(9999), VolumeUnit)
	assert.NotContains(t, FormatVolume(9999), ".")
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "500", FormatCount(500))
	assert.Equal(t, "2,500", FormatCount(2500))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
}
