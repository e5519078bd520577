package calendar

import (
	"errors"
	"testing"
	"time"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
)

func TestYearPillar(t *testing.T) {
	// Year 4 is the sexagenary epoch: 갑자.
	if p := YearPillar(4); p.Stem != 0 || p.Branch != 0 {
		t.Fatalf("year 4 = %v%v, want 갑자", p.Stem, p.Branch)
	}
	// 1984 is the modern 갑자 year.
	if p := YearPillar(1984); p.Stem != 0 || p.Branch != 0 {
		t.Fatalf("1984 = %v%v, want 갑자", p.Stem, p.Branch)
	}
	// 1990 is 경오.
	if p := YearPillar(1990); p.Stem != 6 || p.Branch != 6 {
		t.Fatalf("1990 = %v%v, want 경오", p.Stem, p.Branch)
	}
}

func TestDayPillarEpoch(t *testing.T) {
	p := DayPillar(time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC))
	if p.Stem != 5 || p.Branch != 1 {
		t.Fatalf("1900-01-01 = (%d,%d), want (5,1) 기축", p.Stem, p.Branch)
	}
}

func TestDayPillarKnownOffset(t *testing.T) {
	d := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	if got := DayOffset(d); got != 32826 {
		t.Fatalf("day offset = %d, want 32826", got)
	}
	p := DayPillar(d)
	// Offset formula result must agree with the independent 60-cycle
	// ordinal lookup.
	ord := alphabet.SexagenaryOrdinal(p.Stem, p.Branch)
	if ord < 0 {
		t.Fatalf("day pillar %v%v violates parity", p.Stem, p.Branch)
	}
	if alphabet.Stem(ord%10) != p.Stem || alphabet.Branch(ord%12) != p.Branch {
		t.Fatalf("ordinal %d does not reproduce pillar (%d,%d)", ord, p.Stem, p.Branch)
	}
	if p.Stem != 1 || p.Branch != 7 {
		t.Fatalf("1990-05-15 = (%d,%d), want (1,7) 을미", p.Stem, p.Branch)
	}
}

func TestDayPillarPreEpoch(t *testing.T) {
	// One day before the epoch steps back one in both cycles.
	p := DayPillar(time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC))
	if p.Stem != 4 || p.Branch != 0 {
		t.Fatalf("1899-12-31 = (%d,%d), want (4,0) 무자", p.Stem, p.Branch)
	}
}

func TestMonthPillarBoundaries(t *testing.T) {
	cases := []struct {
		year, month, day int
		wantMonth        int
		wantBranch       alphabet.Branch
	}{
		{1990, 5, 15, 4, 5},  // after 입하: 사월
		{1990, 5, 5, 3, 4},   // before 입하: 진월
		{1990, 2, 4, 1, 2},   // 입춘 day: 인월
		{1990, 2, 3, 12, 1},  // before 입춘: prior year 축월
		{1990, 1, 6, 12, 1},  // 소한 day: 축월
		{1990, 1, 5, 11, 0},  // before 소한: prior year 자월
		{1990, 12, 10, 11, 0}, // after 대설: 자월
	}
	for _, c := range cases {
		p, adj := MonthPillar(c.year, c.month, c.day)
		if adj != c.wantMonth {
			t.Errorf("%d-%02d-%02d adjusted month = %d, want %d", c.year, c.month, c.day, adj, c.wantMonth)
		}
		if p.Branch != c.wantBranch {
			t.Errorf("%d-%02d-%02d month branch = %v, want %v", c.year, c.month, c.day, p.Branch, c.wantBranch)
		}
	}
}

func TestMonthStemDerivation(t *testing.T) {
	// 1990 is a 경 year, whose first saju month starts at 무; saju month 4
	// is therefore 신.
	p, _ := MonthPillar(1990, 5, 15)
	if p.Stem != 7 {
		t.Fatalf("1990-05-15 month stem = %v, want 신", p.Stem)
	}
	// January before 소한 uses the previous year's stem.
	p, _ = MonthPillar(1990, 1, 5)
	prevYearStem := alphabet.Stem(mod(1989-4, alphabet.NumStems))
	want := alphabet.Stem(mod(int(monthStemStart[prevYearStem])+11-1, alphabet.NumStems))
	if p.Stem != want {
		t.Fatalf("1990-01-05 month stem = %v, want %v", p.Stem, want)
	}
}

func TestHourBranchBuckets(t *testing.T) {
	cases := map[int]alphabet.Branch{
		23: 0, 0: 0, // 자시 wraps midnight
		1: 1, 2: 1,
		11: 6, 12: 6,
		14: 7,
		21: 11, 22: 11,
	}
	for hour, want := range cases {
		if got := HourBranch(hour); got != want {
			t.Errorf("HourBranch(%d) = %v, want %v", hour, got, want)
		}
	}
}

func TestHourPillar(t *testing.T) {
	// 을 day at 14:30 is 계미시.
	p := HourPillar(1, 14)
	if p.Stem != 9 || p.Branch != 7 {
		t.Fatalf("을일 14h = (%d,%d), want (9,7)", p.Stem, p.Branch)
	}
	// 갑 day midnight bucket is 갑자시.
	p = HourPillar(0, 0)
	if p.Stem != 0 || p.Branch != 0 {
		t.Fatalf("갑일 0h = (%d,%d), want (0,0)", p.Stem, p.Branch)
	}
}

func TestCalculateParityInvariant(t *testing.T) {
	c := NewCalculator(nil)
	dates := []BirthInput{
		{Year: 1990, Month: 5, Day: 15, Time: "14:30", Gender: models.Male, Calendar: models.Solar},
		{Year: 1900, Month: 1, Day: 1, Time: "00:00", Gender: models.Female, Calendar: models.Solar},
		{Year: 2024, Month: 2, Day: 4, Time: "23:59", Gender: models.Male, Calendar: models.Solar},
		{Year: 2000, Month: 12, Day: 31, Time: "11:00", Gender: models.Female, Calendar: models.Solar},
	}
	for _, in := range dates {
		chart, err := c.Calculate(in)
		if err != nil {
			t.Fatalf("calculate %+v: %v", in, err)
		}
		for _, p := range chart.Pillars() {
			if p.Stem%2 != alphabet.Stem(p.Branch%2) {
				t.Fatalf("%+v produced parity-violating pillar %v%v", in, p.Stem, p.Branch)
			}
			if p.Ordinal() < 0 {
				t.Fatalf("pillar %v%v has no sexagenary ordinal", p.Stem, p.Branch)
			}
		}
	}
}

func TestCalculateInputErrors(t *testing.T) {
	c := NewCalculator(nil)

	_, err := c.Calculate(BirthInput{Year: 1990, Month: 5, Day: 15, Time: "noon", Calendar: models.Solar})
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Errorf("malformed time: got %v, want FormatError", err)
	}

	_, err = c.Calculate(BirthInput{Year: 1800, Month: 5, Day: 15, Time: "12:00", Calendar: models.Solar})
	var re *RangeError
	if !errors.As(err, &re) {
		t.Errorf("year 1800: got %v, want RangeError", err)
	}

	_, err = c.Calculate(BirthInput{Year: 1990, Month: 2, Day: 30, Time: "12:00", Calendar: models.Solar})
	if !errors.As(err, &re) {
		t.Errorf("Feb 30: got %v, want RangeError", err)
	}

	_, err = c.Calculate(BirthInput{Year: 1990, Month: 5, Day: 15, Time: "12:00", Calendar: models.Lunar})
	var ce *ConversionError
	if !errors.As(err, &ce) {
		t.Errorf("lunar without converter: got %v, want ConversionError", err)
	}
}

type stubLunar struct {
	solar    time.Time
	adjusted bool
	err      error
}

func (s *stubLunar) ToSolar(year, month, day int, leap bool) (time.Time, bool, error) {
	return s.solar, s.adjusted, s.err
}

func TestCalculateLunarAdjustment(t *testing.T) {
	conv := &stubLunar{solar: time.Date(1990, 6, 8, 0, 0, 0, 0, time.UTC), adjusted: true}
	c := NewCalculator(conv)
	chart, err := c.Calculate(BirthInput{Year: 1990, Month: 5, Day: 30, Time: "14:30", Gender: models.Male, Calendar: models.Lunar})
	if err != nil {
		t.Fatalf("lunar calculate: %v", err)
	}
	if !chart.DayAdjusted {
		t.Error("day adjustment not surfaced on chart")
	}
	if chart.Born.Month() != 6 || chart.Born.Day() != 8 {
		t.Errorf("converted date = %v", chart.Born)
	}
}

func TestCalculateDeterminism(t *testing.T) {
	c := NewCalculator(nil)
	in := BirthInput{Year: 1990, Month: 5, Day: 15, Time: "14:30", Gender: models.Male, Calendar: models.Solar}
	first, err := c.Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := c.Calculate(in)
		if err != nil {
			t.Fatal(err)
		}
		if *again != *first {
			t.Fatalf("repeat calculation diverged: %+v vs %+v", again, first)
		}
	}
}
