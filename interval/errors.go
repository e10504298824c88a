package interval

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	ErrEmpty                    ErrorKind = iota // input was empty or all spaces
	ErrNoNumber                                  // a number was expected but not found
	ErrNoUnit                                    // no recognizable unit token
	ErrUnitOutOfSequence                         // unit repeated or out of descending order
	ErrCalendarUnitWithoutDate                   // year/month used with no reference date permitted
	ErrCalendarUnitWithFraction                  // fractional amount given to a year/month term
	ErrDateOutOfRange                            // calendar arithmetic left the representable range
	ErrNumberOutOfRange                          // integer or duration arithmetic overflowed
)

// errorKindNames maps ErrorKind values to their string names.
var errorKindNames = [...]string{
	ErrEmpty:                    "EmptyInput",
	ErrNoNumber:                 "NoNumber",
	ErrNoUnit:                   "NoUnit",
	ErrUnitOutOfSequence:        "UnitOutOfSequence",
	ErrCalendarUnitWithoutDate:  "CalendarUnitWithoutDate",
	ErrCalendarUnitWithFraction: "CalendarUnitWithFraction",
	ErrDateOutOfRange:           "DateOutOfRange",
	ErrNumberOutOfRange:         "NumberOutOfRange",
}

// String returns the name of the kind.
func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is the error returned by all parse functions, with some
// attempt made to be specific. Pos is the byte offset into the original
// input where the failure was detected; it is -1 for kinds that have no
// meaningful position (EmptyInput, CalendarUnitWithoutDate,
// CalendarUnitWithFraction, DateOutOfRange, NumberOutOfRange).
//
// Note that DateOutOfRange only catches the date used for year and
// month math going out of range. Other overflows are NumberOutOfRange.
type ParseError struct {
	Kind ErrorKind
	Pos  int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrEmpty:
		return "interval: input was empty or had only spaces"
	case ErrNoNumber:
		return fmt.Sprintf("interval: expected a number at position %d", e.Pos)
	case ErrNoUnit:
		return fmt.Sprintf("interval: no recognizable unit at position %d", e.Pos)
	case ErrUnitOutOfSequence:
		return fmt.Sprintf("interval: unit out of sequence at position %d; units must appear in strictly descending order", e.Pos)
	case ErrCalendarUnitWithoutDate:
		return "interval: year or month used without a permitted reference date"
	case ErrCalendarUnitWithFraction:
		return "interval: years and months cannot have fractional amounts"
	case ErrDateOutOfRange:
		return "interval: date went out of range while adjusting years or months"
	case ErrNumberOutOfRange:
		return "interval: a number or duration went out of range"
	}
	return fmt.Sprintf("interval: %s", e.Kind)
}

// errOf builds a ParseError with no meaningful position.
func errOf(kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind, Pos: -1}
}

// errAt builds a positioned ParseError.
func errAt(kind ErrorKind, pos int) *ParseError {
	return &ParseError{Kind: kind, Pos: pos}
}

// diagnoseUnitError classifies the failure when no eligible unit
// matched at the cursor's position. It re-examines the table entries
// the scan already advanced past: a match on a calendar entry while
// calendar units are disallowed means the phrase needed a reference
// date; any other match means the unit was repeated or out of order;
// no match at all means the token is not a unit.
func diagnoseUnitError(c *scanCursor, tried int, allowCalendar bool) *ParseError {
	pos := c.offset()
	for i := 0; i < tried && i < len(units); i++ {
		if !units[i].re.MatchString(c.rest) {
			continue
		}
		if units[i].calendar && !allowCalendar {
			return errOf(ErrCalendarUnitWithoutDate)
		}
		return errAt(ErrUnitOutOfSequence, pos)
	}
	return errAt(ErrNoUnit, pos)
}
