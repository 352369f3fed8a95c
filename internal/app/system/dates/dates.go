// Package dates provides the calendar-date value type used for announcement
// visibility windows.
//
// Dates travel and persist as strings in exact YYYY-MM-DD form; comparisons
// inside the app are done on parsed values, never on the raw strings.
package dates

import (
	"time"
)

// Layout is the wire and storage format for calendar dates.
const Layout = "2006-01-02"

// Date is a calendar date with no time-of-day or zone component.
type Date struct {
	t time.Time
}

// Parse converts a string in exact YYYY-MM-DD form into a Date.
// Anything else is rejected: short components like 2024-1-5, other
// separators, out-of-range values like 2024-02-30, free text.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// Valid reports whether s parses as a YYYY-MM-DD date.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// FromTime truncates a time.Time to its UTC calendar date.
func FromTime(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC calendar date.
func Today() Date {
	return FromTime(time.Now())
}

// Before reports whether d is chronologically before o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is chronologically after o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether d and o are the same calendar date.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// String renders the date in YYYY-MM-DD form.
func (d Date) String() string { return d.t.Format(Layout) }
