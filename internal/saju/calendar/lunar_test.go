package calendar

import (
	"errors"
	"testing"
	"time"
)

func wantSolar(t *testing.T, got time.Time, y int, m time.Month, d int) {
	t.Helper()
	if got.Year() != y || got.Month() != m || got.Day() != d {
		t.Errorf("solar date = %v, want %04d-%02d-%02d", got.Format("2006-01-02"), y, m, d)
	}
}

// 설날 dates anchor the conversion against known calendar facts.
func TestToSolarNewYearAnchors(t *testing.T) {
	c := NewLunarGoConverter()

	solar, adjusted, err := c.ToSolar(2023, 1, 1, false)
	if err != nil || adjusted {
		t.Fatalf("2023-01-01: adjusted=%v err=%v", adjusted, err)
	}
	wantSolar(t, solar, 2023, time.January, 22)

	solar, adjusted, err = c.ToSolar(2024, 1, 1, false)
	if err != nil || adjusted {
		t.Fatalf("2024-01-01: adjusted=%v err=%v", adjusted, err)
	}
	wantSolar(t, solar, 2024, time.February, 10)
}

// Lunar month 1 of 2023 ran Jan 22 through Feb 19, 29 days. Day 30 must
// retry as day 29 and surface the adjustment.
func TestToSolarDay30InShortMonth(t *testing.T) {
	c := NewLunarGoConverter()

	solar, adjusted, err := c.ToSolar(2023, 1, 30, false)
	if err != nil {
		t.Fatalf("day 30 in 29-day month: %v", err)
	}
	if !adjusted {
		t.Error("adjustment not reported")
	}
	wantSolar(t, solar, 2023, time.February, 19)

	// month 2 of 2023 had a real day 30 (Mar 21): no adjustment
	solar, adjusted, err = c.ToSolar(2023, 2, 30, false)
	if err != nil || adjusted {
		t.Fatalf("day 30 in 30-day month: adjusted=%v err=%v", adjusted, err)
	}
	wantSolar(t, solar, 2023, time.March, 21)
}

func TestToSolarLeapMonth(t *testing.T) {
	c := NewLunarGoConverter()

	if m := c.LeapMonth(2023); m != 2 {
		t.Fatalf("leap month of 2023 = %d, want 2", m)
	}
	if m := c.LeapMonth(2024); m != 0 {
		t.Fatalf("leap month of 2024 = %d, want none", m)
	}

	// 윤2월 of 2023 began Mar 22
	solar, adjusted, err := c.ToSolar(2023, 2, 1, true)
	if err != nil || adjusted {
		t.Fatalf("valid leap month: adjusted=%v err=%v", adjusted, err)
	}
	wantSolar(t, solar, 2023, time.March, 22)
}

// A leap flag for a month that is not the year's leap month downgrades to
// the regular month. 단오 2023 (5-5) fell on Jun 22, so 5-1 is Jun 18.
func TestToSolarSpuriousLeapDowngrades(t *testing.T) {
	c := NewLunarGoConverter()

	solar, adjusted, err := c.ToSolar(2023, 5, 1, true)
	if err != nil || adjusted {
		t.Fatalf("spurious leap: adjusted=%v err=%v", adjusted, err)
	}
	wantSolar(t, solar, 2023, time.June, 18)

	plain, _, err := c.ToSolar(2023, 5, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if !solar.Equal(plain) {
		t.Errorf("downgraded leap %v != regular %v", solar, plain)
	}
}

func TestToSolarRangeErrors(t *testing.T) {
	c := NewLunarGoConverter()
	var re *RangeError

	if _, _, err := c.ToSolar(1899, 1, 1, false); !errors.As(err, &re) {
		t.Errorf("year 1899: got %v, want RangeError", err)
	}
	if _, _, err := c.ToSolar(2023, 13, 1, false); !errors.As(err, &re) {
		t.Errorf("month 13: got %v, want RangeError", err)
	}
	if _, _, err := c.ToSolar(2023, 1, 31, false); !errors.As(err, &re) {
		t.Errorf("day 31: got %v, want RangeError", err)
	}
}

func TestFromSolarRoundTrip(t *testing.T) {
	c := NewLunarGoConverter()

	y, m, d, leap := c.FromSolar(time.Date(2023, 3, 22, 0, 0, 0, 0, time.UTC))
	if y != 2023 || m != 2 || d != 1 || !leap {
		t.Errorf("FromSolar(2023-03-22) = %d-%d-%d leap=%v, want 2023-2-1 leap=true", y, m, d, leap)
	}

	y, m, d, leap = c.FromSolar(time.Date(2023, 1, 22, 0, 0, 0, 0, time.UTC))
	if y != 2023 || m != 1 || d != 1 || leap {
		t.Errorf("FromSolar(2023-01-22) = %d-%d-%d leap=%v, want 2023-1-1", y, m, d, leap)
	}
}
