// Package lexnum converts between free-form numeric text and numbers.
//
// # Parsing
//
// [TryParseString] reads the number at the start of a string into a
// caller-provided variable.  The grammar is lenient: surrounding whitespace,
// an optional sign, a leading or trailing decimal point and an exponent are
// all accepted, and anything after the number is ignored.
//
//	var f float64
//	if lexnum.TryParseString(&f, "  2.5 apples") {
//	    fmt.Println(f) // 2.5
//	}
//
//	var n int32
//	lexnum.TryParseString(&n, "6.0e-10") // n == 6: integers ignore the fraction and exponent
//
// Floating-point targets also accept "inf", "infinity", "nan" and
// "nan(ind)" in any case.  Integer targets reject them, and also reject
// input such as ".5" that has no digit before the decimal point.
//
// The variable is written only on success.  For the token itself (its
// digits and where it ends) use [parse.Scan].
//
// # Formatting
//
// [SanitizeFloat] renders a float64 with the fewest fractional digits that
// round-trip it, but never fewer than a caller-supplied minimum:
//
//	lexnum.SanitizeFloat(100, 0)      // "100"
//	lexnum.SanitizeFloat(100.101, 0)  // "100.101"
//	lexnum.SanitizeFloat(100, 4)      // "100.0000"
//
// Package [numfmt] offers float32 and pattern-driven variants.
package lexnum

import (
	"github.com/TsubasaBE/go-lexnum/numfmt"
	"github.com/TsubasaBE/go-lexnum/parse"
)

// Version is the current version of the go-lexnum library.
const Version = "1.0.0"

// TryParseString parses the numeric prefix of s into *dst and reports
// whether it succeeded.  *dst is left unchanged on failure.
func TryParseString[T parse.Number](dst *T, s string) bool {
	return parse.Into(dst, s)
}

// SanitizeFloat renders v as plain decimal text with at least
// minFractionalDigits fractional digits.  See [numfmt.Format].
func SanitizeFloat(v float64, minFractionalDigits int) string {
	return numfmt.Format(v, minFractionalDigits)
}
