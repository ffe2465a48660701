package domain

import (
	"fmt"
	"time"
)

// isoLayout is the textual form every date in the system travels in.
// Lexicographic comparison of this form is chronological comparison.
const isoLayout = "2006-01-02"

// Date is an optional calendar date in ISO YYYY-MM-DD form. The zero value
// means absent ("not yet set"), which the list provider models by omitting
// the field; a present Date always holds a validated value.
type Date struct {
	value string
}

// ParseDate validates s as an ISO calendar date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(isoLayout, s); err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{value: s}, nil
}

// MustDate panics on invalid input; intended for fixtures and tests.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf keeps the calendar date of t, dropping the time of day.
func DateOf(t time.Time) Date {
	return Date{value: t.Format(isoLayout)}
}

// Present reports whether the date is set.
func (d Date) Present() bool {
	return d.value != ""
}

// String returns the ISO form, or the empty string when absent.
func (d Date) String() string {
	return d.value
}

// After reports whether d sorts after other. Both dates must be present;
// an absent date never sorts after anything.
func (d Date) After(other Date) bool {
	return d.Present() && other.Present() && d.value > other.value
}

// Equal reports whether both dates hold the same value (or are both absent).
func (d Date) Equal(other Date) bool {
	return d.value == other.value
}
