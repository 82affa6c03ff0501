// Package parse extracts a number from the start of free-form text.
//
// The grammar is lenient: leading whitespace is skipped, a sign is optional,
// whitespace may separate the integer digits from the decimal point, and
// anything after a well-formed token is ignored.  Floating-point parsing
// additionally accepts "inf", "infinity", "nan" and "nan(ind)" in any case.
//
// A single scanning pass serves both target kinds.  [Integer] differs from
// [Float] in three places only:
//
//   - special tokens are never attempted
//   - at least one digit must precede the decimal point
//   - fractional digits and the exponent are recognised but do not affect
//     the value
//
// The public entry points are [TryParse], [Parse] and [Into].  Every
// function in this package is pure and safe for concurrent use.
package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/TsubasaBE/go-lexnum/internal/charclass"
)

// Kind selects the numeric representation a parse produces.
type Kind uint8

const (
	// Float produces an IEEE-754 value.
	Float Kind = iota
	// Integer produces a signed integer from the integer-part digits.
	Integer
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Integer:
		return "int"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is the number recognised at the start of an input.
type Token struct {
	// Neg is set when the token carried a leading '-'.
	Neg bool
	// Special is non-None for a non-finite literal; the digit fields are
	// then empty.
	Special Special
	// IntDigits and FracDigits are the digit runs before and after the
	// decimal point.  Either may be empty, but not both.
	IntDigits  string
	FracDigits string
	// Point reports whether a decimal point was consumed.
	Point bool
	// ExpDigits holds the exponent digits, empty when no exponent was
	// present.
	ExpDigits string
	ExpNeg    bool
	// End is the byte offset just past the token, leading whitespace
	// included.  Input beyond End was not inspected.
	End int
}

// Scan matches the longest well-formed numeric token at the start of input
// for the given kind.  It reports false when no token can be matched.
func Scan(input string, kind Kind) (Token, bool) {
	c := cursor{s: input}
	c.skipSpace()

	var tok Token
	if b, ok := c.peek(); ok && charclass.IsSign(b) {
		tok.Neg = b == '-'
		c.pos++
	}

	if kind == Float {
		if sp, n := matchSpecial(c.rest()); sp != None {
			c.pos += n
			tok.Special = sp
			tok.End = c.pos
			return tok, true
		}
	}

	tok.IntDigits = c.digits()
	if kind == Integer && tok.IntDigits == "" {
		return Token{}, false
	}

	if c.skipSpaceBeforePoint() {
		tok.Point = true
		tok.FracDigits = c.digitsAfterPoint()
	}
	if tok.IntDigits == "" && tok.FracDigits == "" {
		return Token{}, false
	}

	if digits, neg, ok := c.exponent(); ok {
		tok.ExpDigits = digits
		tok.ExpNeg = neg
	}
	tok.End = c.pos
	return tok, true
}

// Literal returns the token in canonical form ("-12.5e-3", "inf", "nan"),
// suitable for [strconv.ParseFloat].  Whitespace inside the input is
// not reproduced.
func (t Token) Literal() string {
	var sb strings.Builder
	if t.Neg {
		sb.WriteByte('-')
	}
	switch t.Special {
	case Infinity:
		sb.WriteString("inf")
		return sb.String()
	case NaN, IndeterminateNaN:
		return "nan"
	}
	if t.IntDigits == "" {
		sb.WriteByte('0')
	} else {
		sb.WriteString(t.IntDigits)
	}
	if t.FracDigits != "" {
		sb.WriteByte('.')
		sb.WriteString(t.FracDigits)
	}
	if t.ExpDigits != "" {
		sb.WriteByte('e')
		if t.ExpNeg {
			sb.WriteByte('-')
		}
		sb.WriteString(t.ExpDigits)
	}
	return sb.String()
}

// Float converts the token to a floating-point value rounded to bitSize
// (32 or 64) bits.  Out-of-range magnitudes become ±Inf or round toward
// zero, as standard decimal conversion does.
func (t Token) Float(bitSize int) float64 {
	switch t.Special {
	case Infinity:
		if t.Neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case NaN, IndeterminateNaN:
		return math.NaN()
	}
	// The literal is always well formed, so the only possible error is
	// ErrRange, and v already holds the saturated value in that case.
	v, _ := strconv.ParseFloat(t.Literal(), bitSize)
	return v
}

// Int returns the signed integer-part digits of the token.  The fraction and
// exponent are ignored.  It reports false for special tokens, for tokens with
// no integer-part digits, and when the value does not fit in bitSize bits.
func (t Token) Int(bitSize int) (int64, bool) {
	if t.Special != None || t.IntDigits == "" {
		return 0, false
	}
	lit := t.IntDigits
	if t.Neg {
		lit = "-" + lit
	}
	v, err := strconv.ParseInt(lit, 10, bitSize)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Value is the result of [TryParse].  Exactly one of Float and Int is
// meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Float float64
	Int   int64
}

// TryParse parses the numeric prefix of input as the requested kind.
// Integer results are 64-bit.  On failure the returned Value is zero and
// carries no partial state.
func TryParse(input string, kind Kind) (Value, bool) {
	tok, ok := Scan(input, kind)
	if !ok {
		return Value{}, false
	}
	if kind == Float {
		return Value{Kind: Float, Float: tok.Float(64)}, true
	}
	v, ok := tok.Int(64)
	if !ok {
		return Value{}, false
	}
	return Value{Kind: Integer, Int: v}, true
}
