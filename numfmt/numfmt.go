// Package numfmt renders floating-point values as plain decimal text with
// the fewest digits that identify the value.
//
// The public entry point is [Format].  [Format32] does the same for float32
// values, [FormatPattern] takes the minimum fractional-digit count from an
// Excel-style number format, and [AppendInt] appends integers.
//
// Output never uses scientific notation or grouping separators, and the
// decimal marker is always '.'.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/nfp"
)

// Format renders val with the shortest fractional part that round-trips it,
// padded with trailing zeros to at least minFractionalDigits digits.
//
//	Format(100, 0)      == "100"
//	Format(100.101, 0)  == "100.101"
//	Format(100, 4)      == "100.0000"
//	Format(-0.0, 0)     == "0"
//
// A value equal to zero never carries a sign.  With minFractionalDigits <= 0
// an integral value has no decimal point.  Non-finite values render as
// "inf", "-inf" and "nan".
func Format(val float64, minFractionalDigits int) string {
	return format(val, 64, minFractionalDigits)
}

// Format32 is like [Format] but chooses the shortest digits that round-trip
// val as a float32, so Format32(0.1, 0) is "0.1".
func Format32(val float32, minFractionalDigits int) string {
	return format(float64(val), 32, minFractionalDigits)
}

// FormatPattern renders val with [Format], taking the minimum number of
// fractional digits from pattern as described in [MinFractionalDigits].
func FormatPattern(val float64, pattern string) string {
	return Format(val, MinFractionalDigits(pattern))
}

// AppendInt appends the decimal form of v to dst and returns the extended
// buffer.
func AppendInt(dst []byte, v int64) []byte {
	return strconv.AppendInt(dst, v, 10)
}

// ── float rendering ───────────────────────────────────────────────────────────

func format(val float64, bitSize int, minFrac int) string {
	switch {
	case math.IsNaN(val):
		return "nan"
	case math.IsInf(val, 1):
		return "inf"
	case math.IsInf(val, -1):
		return "-inf"
	}
	if val == 0 {
		// Drop the sign of negative zero.
		val = 0
	}
	return padFraction(strconv.FormatFloat(val, 'f', -1, bitSize), minFrac)
}

// padFraction extends the fractional part of the plain decimal string s with
// zeros until it has at least minFrac digits.
func padFraction(s string, minFrac int) string {
	if minFrac <= 0 {
		return s
	}
	have := 0
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		have = len(s) - dot - 1
	} else {
		s += "."
	}
	if have >= minFrac {
		return s
	}
	return s + strings.Repeat("0", minFrac-have)
}

// ── format-string inspection ─────────────────────────────────────────────────

// MinFractionalDigits returns the number of '0' placeholders that follow the
// decimal point in the first section of an Excel-style number format.
//
//	"0.00"       → 2
//	"#,##0.000"  → 3
//	"0.0#"       → 1
//	"General"    → 0
//
// '#' placeholders are optional digits and do not raise the minimum.  The
// fraction ends at the first token after the decimal point that is not a
// digit placeholder, so exponent digits in "0.00E+00" are not counted.
// Grouping, percent and literal tokens are otherwise ignored.
func MinFractionalDigits(pattern string) int {
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(pattern)
	if len(sections) == 0 {
		return 0
	}

	n := 0
	afterDecimal := false
	for _, tok := range sections[0].Items {
		switch tok.TType {
		case nfp.TokenTypeDecimalPoint:
			if afterDecimal {
				return n
			}
			afterDecimal = true
		case nfp.TokenTypeZeroPlaceHolder:
			if afterDecimal {
				n += len(tok.TValue)
			}
		case nfp.TokenTypeHashPlaceHolder:
		default:
			if afterDecimal {
				return n
			}
		}
	}
	return n
}
