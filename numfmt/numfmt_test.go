package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		v    float64
		min  int
		want string
	}{
		{+0.0, 0, "0"},
		{math.Copysign(0, -1), 0, "0"},
		{math.Copysign(0, -1), 2, "0.00"},

		{+100.0000, 0, "100"},
		{+100.1000, 0, "100.1"},
		{+100.1010, 0, "100.101"},
		{-100.0000, 0, "-100"},
		{-100.1000, 0, "-100.1"},
		{-100.1010, 0, "-100.101"},

		{+100.0000, 1, "100.0"},
		{+100.1000, 1, "100.1"},
		{+100.1010, 1, "100.101"},
		{-100.0000, 1, "-100.0"},
		{-100.1000, 1, "-100.1"},
		{-100.1010, 1, "-100.101"},

		{+100.0000, 4, "100.0000"},
		{+100.1000, 4, "100.1000"},
		{+100.1010, 4, "100.1010"},
		{-100.0000, 4, "-100.0000"},
		{-100.1000, 4, "-100.1000"},
		{-100.1010, 4, "-100.1010"},

		{0.1, 0, "0.1"},
		{0.5, -3, "0.5"},
		{1e21, 0, "1000000000000000000000"},
		{1.5e-7, 0, "0.00000015"},
		{123456789.125, 2, "123456789.125"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Format(tc.v, tc.min), "Format(%v, %d)", tc.v, tc.min)
	}
}

func TestFormatNonFinite(t *testing.T) {
	assert.Equal(t, "inf", Format(math.Inf(1), 2))
	assert.Equal(t, "-inf", Format(math.Inf(-1), 0))
	assert.Equal(t, "nan", Format(math.NaN(), 0))
}

func TestFormat32(t *testing.T) {
	assert.Equal(t, "0.1", Format32(0.1, 0))
	assert.Equal(t, "2.5000", Format32(2.5, 4))
	assert.Equal(t, "0", Format32(float32(math.Copysign(0, -1)), 0))
	assert.Equal(t, "0.10000000149011612", Format(float64(float32(0.1)), 0))
}

func TestAppendInt(t *testing.T) {
	assert.Equal(t, "0", string(AppendInt(nil, 0)))
	assert.Equal(t, "-2147483648", string(AppendInt(nil, math.MinInt32)))
	assert.Equal(t, "2147483647", string(AppendInt(nil, math.MaxInt32)))

	var buf []byte
	buf = AppendInt(buf, 1)
	buf = AppendInt(buf, -2)
	buf = AppendInt(buf, 3)
	assert.Equal(t, "1-23", string(buf))
}

func TestMinFractionalDigits(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"General", 0},
		{"0", 0},
		{"0.00", 2},
		{"#,##0.000", 3},
		{"0.0#", 1},
		{"0.00%", 2},
		{"0.0000;-0.0000", 4},
		{"", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MinFractionalDigits(tc.pattern), "MinFractionalDigits(%q)", tc.pattern)
	}
}

func TestFormatPattern(t *testing.T) {
	assert.Equal(t, "100.00", FormatPattern(100, "0.00"))
	assert.Equal(t, "100.101", FormatPattern(100.101, "0.00"))
	assert.Equal(t, "-3", FormatPattern(-3, "General"))
}
