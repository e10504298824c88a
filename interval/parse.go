// The interval state machine: accumulation and calendar resolution.
package interval

import (
	"math"
	"time"
)

// Supported calendar year range for month offsetting. Stepping a date
// outside it fails with ErrDateOutOfRange.
const (
	minYear = -262144
	maxYear = 262143
)

// maxWholeSeconds is the largest magnitude of whole seconds
// representable in a time.Duration.
const maxWholeSeconds = math.MaxInt64 / int64(time.Second)

// parse drives the scan over s. A nil getDate disallows calendar units
// entirely; otherwise getDate is invoked at most once, on the first
// year or month term, to materialize the reference date.
func parse(s string, getDate func() time.Time) (time.Duration, error) {
	allowCalendar := getDate != nil

	var (
		seconds     int64     // running total of whole seconds
		refDate     time.Time // fixed at the first calendar term
		offsetDate  time.Time // refDate shifted by each calendar term
		haveDates   bool
		subtracting bool
	)

	// The unit cursor marks the table boundary already consumed; a term
	// can only match at or after it, which enforces strictly descending
	// unit order structurally.
	cursor := 0
	if !allowCalendar {
		cursor = calendarUnits // years and months unreachable
	}

	c := newScanCursor(s)
	c.skipSpaces()
	if c.empty() {
		return 0, errOf(ErrEmpty)
	}

outer:
	for !c.empty() {
		// Each leading minus toggles the sign; pairs cancel. The flag
		// persists across terms until toggled again.
		for c.parseMinus() {
			subtracting = !subtracting
			c.skipSpaces()
		}
		number, fraction, perr := c.parseNumber()
		if perr != nil {
			return 0, perr
		}
		c.skipSpaces()
		for i := cursor; i < len(units); i++ {
			cursor = i + 1
			u := &units[i]
			if !c.parseUnit(u) {
				continue
			}
			if u.calendar {
				if fraction > 0 {
					return 0, errOf(ErrCalendarUnitWithFraction)
				}
				if !haveDates {
					refDate = getDate()
					offsetDate = refDate
					haveDates = true
				}
				months := number
				if i == unitYears {
					if number > math.MaxInt64/12 {
						return 0, errOf(ErrNumberOutOfRange)
					}
					months = number * 12
				}
				shifted, perr := addMonths(offsetDate, months, subtracting)
				if perr != nil {
					return 0, perr
				}
				offsetDate = shifted
			} else {
				seconds, perr = accumulate(seconds, number, fraction, u.seconds, subtracting)
				if perr != nil {
					return 0, perr
				}
			}
			c.skipSpaces()
			continue outer
		}
		return 0, diagnoseUnitError(&c, cursor, allowCalendar)
	}

	if haveDates {
		// Month offsetting preserves the clock components, so the net
		// calendar offset is an exact number of whole seconds.
		var perr *ParseError
		seconds, perr = checkedAdd(seconds, offsetDate.Unix()-refDate.Unix())
		if perr != nil {
			return 0, perr
		}
	}
	return time.Duration(seconds) * time.Second, nil
}

// accumulate folds one non-calendar term into the running total. The
// fractional part is scaled by the unit's seconds and truncated toward
// zero before it is applied.
func accumulate(total, number int64, fraction float64, unitSeconds int64, subtracting bool) (int64, *ParseError) {
	if number > math.MaxInt64/unitSeconds {
		return 0, errOf(ErrNumberOutOfRange)
	}
	whole := number * unitSeconds
	frac := int64(fraction * float64(unitSeconds))
	if subtracting {
		whole = -whole
		frac = -frac
	}
	total, perr := checkedAdd(total, whole)
	if perr != nil {
		return 0, perr
	}
	return checkedAdd(total, frac)
}

// checkedAdd adds two second counts, failing when the sum overflows or
// leaves the range representable by a time.Duration.
func checkedAdd(a, b int64) (int64, *ParseError) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, errOf(ErrNumberOutOfRange)
	}
	if sum > maxWholeSeconds || sum < -maxWholeSeconds {
		return 0, errOf(ErrNumberOutOfRange)
	}
	return sum, nil
}

// addMonths shifts t by the given number of months (subtracting when
// subtract is set), clamping the day-of-month to the last valid day of
// the target month and preserving the clock time and location.
func addMonths(t time.Time, months int64, subtract bool) (time.Time, *ParseError) {
	if subtract {
		months = -months
	}
	year, month, day := t.Date()
	total := int64(year)*12 + int64(month) - 1
	shifted := total + months
	if (months > 0 && shifted < total) || (months < 0 && shifted > total) {
		return time.Time{}, errOf(ErrDateOutOfRange)
	}
	newYear := shifted / 12
	rem := shifted % 12
	if rem < 0 {
		rem += 12
		newYear--
	}
	if newYear < minYear || newYear > maxYear {
		return time.Time{}, errOf(ErrDateOutOfRange)
	}
	newMonth := time.Month(rem + 1)
	if last := daysIn(int(newYear), newMonth); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(int(newYear), newMonth, day, hour, min, sec, t.Nanosecond(), t.Location()), nil
}

// daysIn returns the number of days in the given month of the
// proleptic Gregorian calendar.
func daysIn(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
	return 31
}
