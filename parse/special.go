package parse

import "github.com/TsubasaBE/go-lexnum/internal/charclass"

// Special identifies a non-finite floating-point literal.
type Special uint8

const (
	// None marks an ordinary finite token.
	None Special = iota
	// Infinity is "inf" or "infinity", signed by the preceding sign.
	Infinity
	// NaN is "nan".
	NaN
	// IndeterminateNaN is "nan(ind)".  It yields the same value as NaN.
	IndeterminateNaN
)

func (s Special) String() string {
	switch s {
	case None:
		return "none"
	case Infinity:
		return "inf"
	case NaN:
		return "nan"
	case IndeterminateNaN:
		return "nan(ind)"
	}
	return "unknown"
}

// matchSpecial tests rest for a case-insensitive special-token prefix and
// returns the token kind and the number of bytes it spans.  Longer spellings
// are tried first so that "infinity" and "nan(ind)" are consumed whole.
func matchSpecial(rest string) (Special, int) {
	switch {
	case charclass.HasPrefixFold(rest, "infinity"):
		return Infinity, len("infinity")
	case charclass.HasPrefixFold(rest, "inf"):
		return Infinity, len("inf")
	case charclass.HasPrefixFold(rest, "nan(ind)"):
		return IndeterminateNaN, len("nan(ind)")
	case charclass.HasPrefixFold(rest, "nan"):
		return NaN, len("nan")
	}
	return None, 0
}
