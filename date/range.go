package date

import (
	"fmt"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// TaxYear returns the calendar year range of year.
func TaxYear(year int) Range {
	return Range{From: New(year, time.January, 1), To: New(year, time.December, 31)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// ContainsTime is Contains for the day of t.
func (r Range) ContainsTime(t time.Time) bool { return r.Contains(Of(t)) }

// MonthsHeld returns the number of calendar months of the range during which
// a position acquired on the given day is held, counting the acquisition
// month in full. Positions acquired before the range are held all its months;
// positions acquired after it none.
func (r Range) MonthsHeld(acquired Date) int {
	total := r.months()
	switch {
	case acquired.Before(r.From):
		return total
	case acquired.After(r.To):
		return 0
	}
	return (r.To.Year()-acquired.Year())*12 + int(r.To.Month()-acquired.Month()) + 1
}

func (r Range) months() int {
	return (r.To.Year()-r.From.Year())*12 + int(r.To.Month()-r.From.Month()) + 1
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
