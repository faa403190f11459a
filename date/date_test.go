package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2021, time.February, 30)
	if want := New(2021, time.March, 2); got != want {
		t.Errorf("New(2021, 2, 30) = %v, want %v", got, want)
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2020-11-05 14:32:01")
	if err != nil {
		t.Fatalf("ParseTimestamp() error = %v", err)
	}
	want := time.Date(2020, time.November, 5, 14, 32, 1, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseTimestamp() = %v, want %v", got, want)
	}

	if _, err := ParseTimestamp("2020-11-05T14:32:01Z"); err == nil {
		t.Error("ParseTimestamp() accepted an RFC3339 timestamp")
	}
}
