package interval

import "math"

// scanCursor walks a phrase left to right. It keeps the original string
// alongside the shrinking unscanned suffix; the byte offset reported in
// errors is the length difference between the two. The input is never
// copied.
type scanCursor struct {
	original string
	rest     string
}

func newScanCursor(s string) scanCursor {
	return scanCursor{original: s, rest: s}
}

// offset is the byte distance from the start of the original input to
// the current position. Used only for error reporting.
func (c *scanCursor) offset() int {
	return len(c.original) - len(c.rest)
}

func (c *scanCursor) empty() bool {
	return c.rest == ""
}

// skipSpaces advances past a run of space characters. Idempotent.
func (c *scanCursor) skipSpaces() {
	i := 0
	for i < len(c.rest) && c.rest[i] == ' ' {
		i++
	}
	c.rest = c.rest[i:]
}

// parseMinus consumes a leading '-' and reports whether it did.
func (c *scanCursor) parseMinus() bool {
	if len(c.rest) > 0 && c.rest[0] == '-' {
		c.rest = c.rest[1:]
		return true
	}
	return false
}

// parseNumber consumes a maximal run of ASCII digits with at most one
// decimal point; a second point ends the number before it. It returns
// the integer part and the fractional part in [0, 1).
//
// Fails with ErrNoNumber when no digits were consumed before anything
// else, or when the input holds only a lone point. A trailing point
// after at least one digit is consumed and yields a zero fraction.
func (c *scanCursor) parseNumber() (int64, float64, *ParseError) {
	var (
		number   int64
		fraction float64
		scale    = 1.0 // divisor for the next fractional digit
		sawPoint bool
		i        int
	)
	for i < len(c.rest) {
		b := c.rest[i]
		if b == '.' {
			if sawPoint {
				break
			}
			sawPoint = true
		} else if isDigitByte(b) {
			d := int64(b - '0')
			if !sawPoint {
				if number > (math.MaxInt64-d)/10 {
					return 0, 0, errOf(ErrNumberOutOfRange)
				}
				number = number*10 + d
			} else {
				scale /= 10
				fraction += float64(d) * scale
			}
		} else {
			break
		}
		i++
	}
	// At least one digit must have been consumed: a single consumed byte
	// is only acceptable when it is not the decimal point.
	if i == 0 || (i == 1 && sawPoint) {
		return 0, 0, errAt(ErrNoNumber, c.offset())
	}
	c.rest = c.rest[i:]
	return number, fraction, nil
}

// parseUnit matches u's pattern at the current position, consuming the
// match. The cursor is unchanged when the pattern does not match.
func (c *scanCursor) parseUnit(u *timeUnit) bool {
	loc := u.re.FindStringIndex(c.rest)
	if loc == nil {
		return false
	}
	c.rest = c.rest[loc[1]:]
	return true
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
