// Package almanac derives calendrical symbols from a birth date: tropical
// zodiac placements, the Tzolkin day-sign and tone, the Chinese sexagenary
// year, the numerological Life Path, and a placeholder energy type.
//
// The algorithms are deliberately simplified approximations, not
// ephemeris-grade astronomy. Their deterministic output is the contract;
// every resolver is a pure function of the input date (and optional time).
package almanac

import (
	"strings"
	"time"
)

// Date is a plain calendar date. Month and Day are 1-based.
type Date struct {
	Year  int
	Month int
	Day   int
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"January 2, 2006",
	"2 January 2006",
}

// ParseDate parses a date string in any of the accepted layouts.
// Returns false for unparseable input; callers fall back to their
// documented defaults rather than erroring.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, true
		}
	}
	return Date{}, false
}

// BirthTime is a known clock time of birth.
type BirthTime struct {
	Hour   int
	Minute int
}

// unknownTimeSentinels are the inputs treated as "birth time not known".
// An unknown time suppresses time-dependent placements; it is never
// interpreted as midnight.
var unknownTimeSentinels = map[string]bool{
	"":        true,
	"unknown": true,
	"unk":     true,
	"?":       true,
}

// ParseBirthTime parses a birth time string. It returns false for the
// unknown sentinels and for anything unparseable.
func ParseBirthTime(s string) (BirthTime, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if unknownTimeSentinels[s] {
		return BirthTime{}, false
	}
	for _, layout := range []string{"15:04", "3:04pm", "3pm", "15"} {
		if t, err := time.Parse(layout, s); err == nil {
			return BirthTime{Hour: t.Hour(), Minute: t.Minute()}, true
		}
	}
	return BirthTime{}, false
}
