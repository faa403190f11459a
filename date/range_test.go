package date

import (
	"testing"
	"time"
)

func TestTaxYear_Contains(t *testing.T) {
	r := TaxYear(2021)
	testCases := []struct {
		on   Date
		want bool
	}{
		{on: New(2020, time.December, 31), want: false},
		{on: New(2021, time.January, 1), want: true},
		{on: New(2021, time.June, 15), want: true},
		{on: New(2021, time.December, 31), want: true},
		{on: New(2022, time.January, 1), want: false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.on); got != tc.want {
			t.Errorf("TaxYear(2021).Contains(%v) = %v, want %v", tc.on, got, tc.want)
		}
	}
	if !r.ContainsTime(time.Date(2021, time.December, 31, 23, 59, 59, 0, time.UTC)) {
		t.Error("ContainsTime() rejected the last second of the year")
	}
}

func TestRange_MonthsHeld(t *testing.T) {
	r := TaxYear(2021)
	testCases := []struct {
		name     string
		acquired Date
		want     int
	}{
		{name: "carried from previous year", acquired: New(2019, time.May, 3), want: 12},
		{name: "january", acquired: New(2021, time.January, 20), want: 12},
		{name: "march", acquired: New(2021, time.March, 1), want: 10},
		{name: "december", acquired: New(2021, time.December, 31), want: 1},
		{name: "after the range", acquired: New(2022, time.January, 1), want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.MonthsHeld(tc.acquired); got != tc.want {
				t.Errorf("MonthsHeld(%v) = %d, want %d", tc.acquired, got, tc.want)
			}
		})
	}
}
