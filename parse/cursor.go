package parse

import "github.com/TsubasaBE/go-lexnum/internal/charclass"

// cursor is a read position over an immutable input string.  The position
// only ever moves forward; lookahead helpers inspect bytes past pos without
// committing to them.
type cursor struct {
	s   string
	pos int
}

// peek returns the byte at the current position.
func (c *cursor) peek() (byte, bool) {
	if c.pos >= len(c.s) {
		return 0, false
	}
	return c.s[c.pos], true
}

// rest returns the unread remainder of the input.
func (c *cursor) rest() string {
	return c.s[c.pos:]
}

// skipSpace consumes a run of whitespace.
func (c *cursor) skipSpace() {
	for c.pos < len(c.s) && charclass.IsSpace(c.s[c.pos]) {
		c.pos++
	}
}

// digits consumes and returns a maximal run of decimal digits, which may be
// empty.
func (c *cursor) digits() string {
	start := c.pos
	for c.pos < len(c.s) && charclass.IsDigit(c.s[c.pos]) {
		c.pos++
	}
	return c.s[start:c.pos]
}

// skipSpaceBeforePoint looks past any whitespace for a decimal point.  When
// one is found the whitespace and the point are consumed and true is
// returned; otherwise nothing is consumed.
func (c *cursor) skipSpaceBeforePoint() bool {
	i := c.pos
	for i < len(c.s) && charclass.IsSpace(c.s[i]) {
		i++
	}
	if i < len(c.s) && c.s[i] == '.' {
		c.pos = i + 1
		return true
	}
	return false
}

// digitsAfterPoint reads the fractional digits that start immediately after
// a decimal point.  Whitespace is not skipped here: " 6 . 2" has an empty
// fraction.
func (c *cursor) digitsAfterPoint() string {
	return c.digits()
}

// exponent consumes an exponent suffix (e, optional sign, one or more
// digits) that starts immediately at the current position.  It returns the
// exponent digits and whether the exponent is negative.  A marker that is
// not followed by a well-formed exponent is left unconsumed.
func (c *cursor) exponent() (digits string, neg bool, ok bool) {
	i := c.pos
	if i >= len(c.s) || !charclass.IsExponentMarker(c.s[i]) {
		return "", false, false
	}
	i++
	if i < len(c.s) && charclass.IsSign(c.s[i]) {
		neg = c.s[i] == '-'
		i++
	}
	start := i
	for i < len(c.s) && charclass.IsDigit(c.s[i]) {
		i++
	}
	if i == start {
		return "", false, false
	}
	c.pos = i
	return c.s[start:i], neg, true
}
