package interval

import "regexp"

// Indices into the unit table, in strictly descending granularity.
const (
	unitYears = iota
	unitMonths
	unitWeeks
	unitDays
	unitHours
	unitMinutes
	unitSeconds
)

// calendarUnits is the number of leading table entries resolved through
// date arithmetic instead of a fixed seconds constant. When no reference
// date is permitted, the unit cursor starts past them.
const calendarUnits = 2

// timeUnit describes one entry of the unit table.
type timeUnit struct {
	seconds  int64 // seconds per unit; zero for calendar units
	calendar bool  // resolved via date offsetting rather than seconds
	re       *regexp.Regexp
}

// units is the fixed unit table, ordered from years down to seconds.
// The matchers accept the unit name, its plural, or a standard
// abbreviation, case-insensitively, anchored at the start of the
// remaining input. Built once at package init and read-only afterwards,
// so it is safely shared across concurrent parses.
var units = [7]timeUnit{
	unitYears:   {calendar: true, re: regexp.MustCompile(`(?i)^y(?:ears?)?`)},
	unitMonths:  {calendar: true, re: regexp.MustCompile(`(?i)^mo(?:nths?)?`)},
	unitWeeks:   {seconds: 7 * 24 * 60 * 60, re: regexp.MustCompile(`(?i)^w(?:eeks?)?`)},
	unitDays:    {seconds: 24 * 60 * 60, re: regexp.MustCompile(`(?i)^d(?:ays?)?`)},
	unitHours:   {seconds: 60 * 60, re: regexp.MustCompile(`(?i)^h(?:(?:ou)?rs?)?`)},
	unitMinutes: {seconds: 60, re: regexp.MustCompile(`(?i)^m(?:in(?:ute)?s?)?`)},
	unitSeconds: {seconds: 1, re: regexp.MustCompile(`(?i)^s(?:ec(?:ond)?s?)?`)},
}
