// Package calendar formats and parses calendar dates (dates without a time
// of day) used for exercise log entries and log range filters.
//
// Dates are stored in a single canonical form, see [Layout]. Caller supplied
// dates are parsed leniently from a fixed set of common layouts and are
// reduced to their civil date at 00:00 UTC, so two values can be compared
// without any time zone drift.
package calendar

import (
	"errors"
	"strings"
	"time"
)

// Layout is the canonical representation of a stored date, e.g.
// "Mon Jan 01 2024".
const Layout = "Mon Jan 02 2006"

// ErrInvalidDate is returned by [Parse] when no supported layout matches.
var ErrInvalidDate = errors.New("invalid date")

// layouts accepted by Parse, tried in order.
var layouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	Layout,
	"Mon Jan 2 2006",
	"Jan 02 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"02 Jan 2006",
	"2 January 2006",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.RFC1123,
	time.RFC1123Z,
}

// Parse converts s into the civil date it denotes, at 00:00 UTC.
// Leading and trailing whitespace is ignored.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Day(t), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// Format renders the civil date of t in the canonical [Layout].
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Normalize parses s and renders it back in the canonical layout.
func Normalize(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(t), nil
}

// Day truncates t to its civil date in t's own location and returns that
// date at 00:00 UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the canonical string of the civil date of now.
func Today(now time.Time) string {
	return Format(Day(now))
}
