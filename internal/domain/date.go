package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates throughout the application.
// Dates cross every boundary (JSON bodies, the persisted collection) in this form.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component and no time zone.
// The zero value means "not set" — an empty date field on a form decodes to it.
// Dates are comparable with == because they hold plain calendar fields rather
// than a time.Time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a YYYY-MM-DD string into a Date.
// An empty string yields the zero Date with no error, matching the behaviour
// of an untouched date input on a form.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// DateOf truncates a time.Time to its calendar date in the time's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the Date as a time.Time at UTC midnight.
// Using UTC for all date arithmetic keeps day differences exact — there are
// no DST transitions to shorten or lengthen a day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after d, rolling over month and
// year boundaries. Negative n moves backwards.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Time().After(other.Time()) }

// String formats the date as YYYY-MM-DD. The zero date formats as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string, or "" when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string. "" and null decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: must be a string", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// InclusiveDays returns the number of calendar days spanned by the two dates,
// counting both endpoints: a trip starting and ending the same day spans 1 day.
// The result is symmetric under swapping the arguments — rejecting end-before-
// start is deliberately left to ValidateTripForm.
func InclusiveDays(a, b Date) int {
	days := int(b.Time().Sub(a.Time()).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days + 1
}

// DayLabel returns a human-readable label ("Friday, Mar 1") for day number
// `day` of an itinerary starting at start. Day numbers are 1-based, so day 1
// labels start itself.
func DayLabel(start Date, day int) string {
	return start.AddDays(day - 1).Time().Format("Monday, Jan 2")
}

// FormatLong renders a date for display in list views, e.g. "March 1, 2024".
func FormatLong(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("January 2, 2006")
}
