package models

import (
	"time"

	"SajuCore/internal/saju/alphabet"
)

// Gender conditions major-fortune direction and some compatibility
// adjustments.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Calendar identifies the calendar system a birth date was given in.
type Calendar string

const (
	Solar Calendar = "solar"
	Lunar Calendar = "lunar"
)

// Pillar is one stem/branch pair of a chart. Sexagenary parity holds for
// every pillar the calculator produces: stem index and branch index always
// share parity.
type Pillar struct {
	Stem   alphabet.Stem
	Branch alphabet.Branch
}

// Ordinal returns the pillar's sexagenary ordinal in [0,60), or -1 for a
// parity-violating pair.
func (p Pillar) Ordinal() int { return alphabet.SexagenaryOrdinal(p.Stem, p.Branch) }

// Name returns the combined Korean name, e.g. "갑자".
func (p Pillar) Name() string { return p.Stem.String() + p.Branch.String() }

// Chart is a four-pillar birth chart. Built once by the calculator and
// never mutated by downstream analyzers.
type Chart struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
	Hour  Pillar

	Born     time.Time // solar birth instant after any lunar conversion
	Calendar Calendar
	Gender   Gender

	// AdjustedMonth is the solar-term month (1-12) the month pillar was
	// derived from, which can differ from the calendar month near term
	// boundaries.
	AdjustedMonth int
	// DayAdjusted is set when a lunar day-30 input was converted via the
	// documented day-1 retry.
	DayAdjusted bool
}

// Pillars returns the four pillars in year/month/day/hour order.
func (c *Chart) Pillars() [4]Pillar {
	return [4]Pillar{c.Year, c.Month, c.Day, c.Hour}
}

// Position names a pillar slot within a chart.
type Position int

const (
	PosYear Position = iota
	PosMonth
	PosDay
	PosHour
)

func (p Position) String() string {
	switch p {
	case PosYear:
		return "year"
	case PosMonth:
		return "month"
	case PosDay:
		return "day"
	case PosHour:
		return "hour"
	default:
		return "unknown"
	}
}

// Positions enumerates the four pillar slots in canonical order.
func Positions() [4]Position {
	return [4]Position{PosYear, PosMonth, PosDay, PosHour}
}

// DayMaster returns the day stem, the reference point for ten-god typing
// and strength analysis.
func (c *Chart) DayMaster() alphabet.Stem { return c.Day.Stem }

// Branches returns the four branches in pillar order.
func (c *Chart) Branches() []alphabet.Branch {
	return []alphabet.Branch{c.Year.Branch, c.Month.Branch, c.Day.Branch, c.Hour.Branch}
}

// Stems returns the four stems in pillar order.
func (c *Chart) Stems() []alphabet.Stem {
	return []alphabet.Stem{c.Year.Stem, c.Month.Stem, c.Day.Stem, c.Hour.Stem}
}
