// Package interval parses short human-typed duration phrases like
// "1 year 3 months 15 minutes" into a signed time.Duration.
//
// A phrase is a sequence of terms, each an optionally negated number
// followed by a unit name. Units must appear in strictly descending
// order of size and may not repeat:
//
//	[-] <int> y(ears)  [-] <int> mo(nths)  [-] <num> w(eeks)
//	[-] <num> d(ays)   [-] <num> h(ours)   [-] <num> m(inutes)
//	[-] <num> s(econds)
//
// Unit names are case-insensitive and accept the full name, an optional
// plural "s", or a standard abbreviation ("5w3d1h30m30s" works). Runs
// of spaces are permitted anywhere a separator is expected. Numbers for
// weeks and below may carry one fractional point; years and months must
// be whole.
//
// Four entry points differ only in how years and months are resolved:
//
//   - Parse forbids years and months outright.
//   - ParseWithDate resolves them as calendar offsets from a given date.
//   - ParseWithLazyDate obtains that date from a supplier, on demand.
//   - ParseWithNow resolves them against the current system time.
//
// Calendar terms shift a working date month by month, clamping the day
// to the end of shorter months (February 1 plus one month lands on
// February 29 or 28 depending on the year), and the net offset between
// the shifted date and the reference date is folded into the result.
// The lazy supplier is invoked at most once per call, and only if a
// year or month term actually appears.
//
// Failures are reported as *ParseError values carrying a classified
// kind and, where it applies, the byte offset into the input.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Results are bounded by time.Duration, roughly ±292 years; larger
//     totals return NumberOutOfRange.
//   - Calendar arithmetic supports years −262144 through 262143.
//   - Unit names are English only.
package interval

import "time"

// Parse parses a phrase like "15 days 12 hours". It can include weeks,
// days, hours, minutes and seconds. It can not include years or months.
func Parse(s string) (time.Duration, error) {
	return parse(s, nil)
}

// ParseWithDate parses a phrase like "1 year 15 days". Years and months
// are evaluated as a calendar offset from date.
func ParseWithDate(s string, date time.Time) (time.Duration, error) {
	return parse(s, func() time.Time { return date })
}

// ParseWithLazyDate parses a phrase like "1 year 15 days". Years and
// months are evaluated as a calendar offset from the date produced by
// the supplier, which is invoked at most once, and not at all when the
// phrase contains no year or month term. This avoids constructing the
// date when it turns out not to be needed.
//
// A nil supplier disallows years and months, like Parse.
func ParseWithLazyDate(s string, date func() time.Time) (time.Duration, error) {
	return parse(s, date)
}

// ParseWithNow parses a phrase like "1 year 15 days". Years and months
// are evaluated as a calendar offset from the current system time.
func ParseWithNow(s string) (time.Duration, error) {
	return parse(s, time.Now)
}
