// Package date provides the calendar primitives of the tax engine: a day
// granularity Date, the ledger timestamp format and the tax year Range.
package date

import (
	"fmt"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// TimestampFormat is the format of ledger timestamps ("2021-03-04 10:11:12").
const TimestampFormat = "2006-01-02 15:04:05"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the day of t, in t's location.
func Of(t time.Time) Date { return New(t.Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// ParseTimestamp parses a ledger timestamp. Ledger timestamps carry no zone
// and are read as UTC.
func ParseTimestamp(str string) (time.Time, error) {
	t, err := time.Parse(TimestampFormat, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q want format %q: %w", str, TimestampFormat, err)
	}
	return t, nil
}
