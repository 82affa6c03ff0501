// Package charclass provides the character predicates shared by the
// numeric scanners in go-lexnum.
//
// It exists solely to keep the classification rules in one place; it has no
// public-API contract of its own.  All callers are within the same module.
package charclass

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsSpace reports whether b is one of the whitespace characters tolerated
// around a numeric token: space, tab, carriage return, line feed.
//
// Vertical tab and form feed are deliberately not included.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// IsSign reports whether b is '+' or '-'.
func IsSign(b byte) bool { return b == '+' || b == '-' }

// IsExponentMarker reports whether b introduces an exponent ('e' or 'E').
func IsExponentMarker(b byte) bool { return b == 'e' || b == 'E' }

// HasPrefixFold reports whether s begins with prefix, comparing ASCII
// letters case-insensitively.  prefix must be lower case.
func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}
