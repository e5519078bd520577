package calendar

import (
	"fmt"
	"time"

	lunarcal "github.com/6tail/lunar-go/calendar"
)

// LunarGoConverter adapts github.com/6tail/lunar-go to the LunarConverter
// interface. The library panics on impossible lunar dates, so every call
// runs behind a recover that surfaces a ConversionError instead.
type LunarGoConverter struct {
	minYear int
	maxYear int
}

var _ LunarConverter = (*LunarGoConverter)(nil)

// NewLunarGoConverter returns a converter bounded to [1900,2100].
func NewLunarGoConverter() *LunarGoConverter {
	return &LunarGoConverter{minYear: DefaultMinYear, maxYear: DefaultMaxYear}
}

// ToSolar converts a lunar date to its solar equivalent. A leap flag for a
// month that is not that year's leap month downgrades to the regular
// month. A day-30 input in a 29-day month retries once with day 29 and
// reports adjusted=true; any other failure is a ConversionError.
func (c *LunarGoConverter) ToSolar(year, month, day int, leap bool) (time.Time, bool, error) {
	if year < c.minYear || year > c.maxYear {
		return time.Time{}, false, &RangeError{Field: "lunar year", Value: year, Min: c.minYear, Max: c.maxYear}
	}
	if month < 1 || month > 12 {
		return time.Time{}, false, &RangeError{Field: "lunar month", Value: month, Min: 1, Max: 12}
	}
	if day < 1 || day > 30 {
		return time.Time{}, false, &RangeError{Field: "lunar day", Value: day, Min: 1, Max: 30}
	}

	if leap && c.LeapMonth(year) != month {
		leap = false
	}

	solar, err := convert(year, month, day, leap)
	if err == nil {
		return solar, false, nil
	}
	if day == 30 {
		solar, retryErr := convert(year, month, 29, leap)
		if retryErr == nil {
			return solar, true, nil
		}
	}
	return time.Time{}, false, err
}

// FromSolar converts a solar date to its lunar representation.
func (c *LunarGoConverter) FromSolar(date time.Time) (year, month, day int, leap bool) {
	l := lunarcal.NewSolarFromYmd(date.Year(), int(date.Month()), date.Day()).GetLunar()
	month = l.GetMonth()
	if month < 0 {
		return l.GetYear(), -month, l.GetDay(), true
	}
	return l.GetYear(), month, l.GetDay(), false
}

// LeapMonth returns the year's leap month, 0 when there is none.
func (c *LunarGoConverter) LeapMonth(year int) int {
	var m int
	func() {
		defer func() { recover() }()
		m = lunarcal.NewLunarYear(year).GetLeapMonth()
	}()
	return m
}

// LunarNewYear returns the solar date of 설날 for the given lunar year.
func (c *LunarGoConverter) LunarNewYear(year int) (time.Time, error) {
	t, _, err := c.ToSolar(year, 1, 1, false)
	return t, err
}

func convert(year, month, day int, leap bool) (solar time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ConversionError{Reason: fmt.Sprintf("%04d-%02d-%02d leap=%v: %v", year, month, day, leap, r)}
		}
	}()
	m := month
	if leap {
		m = -month
	}
	s := lunarcal.NewLunarFromYmd(year, m, day).GetSolar()
	return time.Date(s.GetYear(), time.Month(s.GetMonth()), s.GetDay(), 0, 0, 0, 0, time.UTC), nil
}
