// Package calendar turns a birth instant into a four-pillar chart. The
// month pillar uses a fixed approximate solar-term boundary table rather
// than astronomical term dates; boundary-day births can differ from
// almanacs that use the exact dates.
package calendar

import (
	"strconv"
	"strings"
	"time"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
)

const (
	// DefaultMinYear and DefaultMaxYear bound accepted birth years.
	DefaultMinYear = 1900
	DefaultMaxYear = 2100

	// The day-pillar epoch: 1900-01-01 is 기축일 (stem 5, branch 1).
	epochStem   = 5
	epochBranch = 1
)

var epochDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// solarTermDay holds the approximate first day of each solar-term month.
// Index 1..12 is the saju month; the boundary falls in calendar month
// sajuMonth+1 (입춘 = month 1 begins around Feb 4).
var solarTermDay = [13]int{0, 4, 6, 5, 6, 6, 7, 8, 8, 8, 7, 7, 6}

var solarTermNames = [13]string{"", "입춘", "경칩", "청명", "입하", "망종", "소서", "입추", "백로", "한로", "입동", "대설", "소한"}

// monthBranch maps the saju month (1-12) to its fixed branch: 인월 first.
var monthBranch = [13]alphabet.Branch{0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 1}

// monthStemStart gives, per year stem, the stem of the first saju month.
var monthStemStart = [alphabet.NumStems]alphabet.Stem{2, 4, 6, 8, 0, 2, 4, 6, 8, 0}

// hourStemStart gives, per day stem, the stem of the midnight (자시) bucket.
var hourStemStart = [alphabet.NumStems]alphabet.Stem{0, 2, 4, 6, 8, 0, 2, 4, 6, 8}

// BirthInput is the raw birth description handed to the calculator.
type BirthInput struct {
	Year, Month, Day int
	Time             string // "HH:MM"
	Gender           models.Gender
	Calendar         models.Calendar
	LeapMonth        bool // lunar input only
}

// LunarConverter is the external lunisolar collaborator. ToSolar reports
// adjusted=true when the documented day-1 retry was applied.
type LunarConverter interface {
	ToSolar(year, month, day int, leap bool) (solar time.Time, adjusted bool, err error)
}

// Calculator builds charts. Safe for concurrent use; all state is
// read-only after construction.
type Calculator struct {
	minYear int
	maxYear int
	lunar   LunarConverter
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithYearBounds overrides the accepted birth-year range.
func WithYearBounds(min, max int) Option {
	return func(c *Calculator) {
		c.minYear = min
		c.maxYear = max
	}
}

// NewCalculator returns a chart calculator using the given lunar
// collaborator for lunar-calendar inputs.
func NewCalculator(lunar LunarConverter, opts ...Option) *Calculator {
	c := &Calculator{
		minYear: DefaultMinYear,
		maxYear: DefaultMaxYear,
		lunar:   lunar,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate resolves the input to a solar instant and derives the four
// pillars.
func (c *Calculator) Calculate(in BirthInput) (*models.Chart, error) {
	hour, minute, err := parseTime(in.Time)
	if err != nil {
		return nil, err
	}
	if in.Year < c.minYear || in.Year > c.maxYear {
		return nil, &RangeError{Field: "year", Value: in.Year, Min: c.minYear, Max: c.maxYear}
	}
	if in.Month < 1 || in.Month > 12 {
		return nil, &RangeError{Field: "month", Value: in.Month, Min: 1, Max: 12}
	}

	date := time.Date(in.Year, time.Month(in.Month), in.Day, hour, minute, 0, 0, time.UTC)
	dayAdjusted := false
	if in.Calendar == models.Lunar {
		if c.lunar == nil {
			return nil, &ConversionError{Reason: "no lunar converter configured"}
		}
		solar, adjusted, err := c.lunar.ToSolar(in.Year, in.Month, in.Day, in.LeapMonth)
		if err != nil {
			return nil, err
		}
		date = time.Date(solar.Year(), solar.Month(), solar.Day(), hour, minute, 0, 0, time.UTC)
		dayAdjusted = adjusted
	} else {
		if in.Day < 1 || in.Day > daysInMonth(in.Year, in.Month) {
			return nil, &RangeError{Field: "day", Value: in.Day, Min: 1, Max: daysInMonth(in.Year, in.Month)}
		}
	}

	yearP := YearPillar(date.Year())
	monthP, adjMonth := MonthPillar(date.Year(), int(date.Month()), date.Day())
	dayP := DayPillar(date)
	hourP := HourPillar(dayP.Stem, hour)

	return &models.Chart{
		Year:          yearP,
		Month:         monthP,
		Day:           dayP,
		Hour:          hourP,
		Born:          date,
		Calendar:      in.Calendar,
		Gender:        in.Gender,
		AdjustedMonth: adjMonth,
		DayAdjusted:   dayAdjusted,
	}, nil
}

// YearPillar derives the year pillar: year 4 of the proleptic calendar is
// the first sexagenary year.
func YearPillar(year int) models.Pillar {
	return models.Pillar{
		Stem:   alphabet.Stem(mod(year-4, alphabet.NumStems)),
		Branch: alphabet.Branch(mod(year-4, alphabet.NumBranches)),
	}
}

// MonthPillar derives the month pillar from the solar-term boundary table
// and returns the adjusted saju month it resolved to. A January date before
// 소한 belongs to the previous year's 11th saju month, and the year stem
// used for the month-stem start shifts back accordingly.
func MonthPillar(year, month, day int) (models.Pillar, int) {
	adjMonth := solarTermMonth(month, day)
	adjYear := year
	if month == 1 && day < solarTermDay[12] {
		adjYear = year - 1
	} else if month == 2 && day < solarTermDay[1] {
		adjYear = year - 1
		adjMonth = 12
	}

	yearStem := alphabet.Stem(mod(adjYear-4, alphabet.NumStems))
	stem := alphabet.Stem(mod(int(monthStemStart[yearStem])+adjMonth-1, alphabet.NumStems))
	return models.Pillar{Stem: stem, Branch: monthBranch[adjMonth]}, adjMonth
}

// solarTermMonth maps a calendar date to its saju month (1-12).
func solarTermMonth(month, day int) int {
	if month == 1 {
		if day < solarTermDay[12] {
			return 11
		}
		return 12
	}
	// Calendar month m holds the boundary of saju month m-1.
	termMonth := month - 1
	if day >= solarTermDay[termMonth] {
		return termMonth
	}
	if termMonth > 1 {
		return termMonth - 1
	}
	return 12
}

// SolarTermInfo describes the term governing a calendar date.
type SolarTermInfo struct {
	Name    string
	IsAfter bool
}

// SolarTerm returns the solar term governing the given calendar date.
func SolarTerm(month, day int) SolarTermInfo {
	m := solarTermMonth(month, day)
	after := true
	if month == 1 {
		after = day >= solarTermDay[12]
	} else {
		after = day >= solarTermDay[month-1]
	}
	return SolarTermInfo{Name: solarTermNames[m], IsAfter: after}
}

// DayPillar derives the day pillar via the fixed 1900-01-01 epoch. Offsets
// may be negative for pre-epoch dates and are normalized before the
// modulo.
func DayPillar(date time.Time) models.Pillar {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(d.Sub(epochDate).Hours() / 24)
	return models.Pillar{
		Stem:   alphabet.Stem(mod(epochStem+offset, alphabet.NumStems)),
		Branch: alphabet.Branch(mod(epochBranch+offset, alphabet.NumBranches)),
	}
}

// DayOffset returns the number of days between the epoch and the date.
func DayOffset(date time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(epochDate).Hours() / 24)
}

// HourPillar derives the hour pillar. The twelve 2-hour buckets start at
// 자시, which wraps 23:00-00:59.
func HourPillar(dayStem alphabet.Stem, hour int) models.Pillar {
	branch := HourBranch(hour)
	stem := alphabet.Stem(mod(int(hourStemStart[dayStem])+int(branch), alphabet.NumStems))
	return models.Pillar{Stem: stem, Branch: branch}
}

// HourBranch maps an hour of day to its 2-hour bucket branch.
func HourBranch(hour int) alphabet.Branch {
	return alphabet.Branch(((hour + 1) / 2) % alphabet.NumBranches)
}

func parseTime(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, &FormatError{Field: "time", Value: s}
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, &FormatError{Field: "time", Value: s}
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, &FormatError{Field: "time", Value: s}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, &FormatError{Field: "time", Value: s}
	}
	return hour, minute, nil
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
