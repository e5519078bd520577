// Package analysis derives element distribution, ten-god typing and
// day-master strength from a chart. Everything here is a pure function of
// its inputs; nothing is cached or persisted.
package analysis

import (
	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
)

// TenGod is one of the ten relation types between a stem and the day
// master.
type TenGod int

const (
	Companion      TenGod = iota // 비견: same element, same polarity
	RobWealth                    // 겁재: same element, opposite polarity
	EatingGod                    // 식신: day generates, same polarity
	HurtingOfficer               // 상관: day generates, opposite polarity
	IndirectWealth               // 편재: day controls, same polarity
	DirectWealth                 // 정재: day controls, opposite polarity
	IndirectPower                // 편관: controls day, same polarity
	DirectPower                  // 정관: controls day, opposite polarity
	IndirectSeal                 // 편인: generates day, same polarity
	DirectSeal                   // 정인: generates day, opposite polarity
	NumTenGods = 10
)

var tenGodNames = [NumTenGods]string{"비견", "겁재", "식신", "상관", "편재", "정재", "편관", "정관", "편인", "정인"}

func (g TenGod) String() string {
	if g < 0 || int(g) >= NumTenGods {
		return "?"
	}
	return tenGodNames[g]
}

// TenGodByName resolves a Korean ten-god name to its value.
func TenGodByName(name string) (TenGod, bool) {
	for i, n := range tenGodNames {
		if n == name {
			return TenGod(i), true
		}
	}
	return 0, false
}

// Category groups the ten gods into five camps.
type Category int

const (
	CatSelf     Category = iota // 비견 겁재
	CatOutput                   // 식신 상관
	CatWealth                   // 편재 정재
	CatPower                    // 편관 정관
	CatResource                 // 편인 정인
)

func (c Category) String() string {
	switch c {
	case CatSelf:
		return "self"
	case CatOutput:
		return "output"
	case CatWealth:
		return "wealth"
	case CatPower:
		return "power"
	case CatResource:
		return "resource"
	default:
		return "unknown"
	}
}

// Category returns the camp a ten god belongs to.
func (g TenGod) Category() Category { return Category(g / 2) }

// strengthFactor is the base weight of each ten-god relation.
var strengthFactor = [NumTenGods]float64{1.0, 0.9, 0.8, 0.85, 0.85, 0.9, 0.95, 1.0, 0.85, 0.9}

// TenGodOf types a stem against the day master. Total over all 100 stem
// pairs: every distinct element pair is related, so the fallthrough is
// unreachable for valid stems.
func TenGodOf(day, other alphabet.Stem) TenGod {
	samePolarity := day.Polarity() == other.Polarity()
	pick := func(same, opposite TenGod) TenGod {
		if samePolarity {
			return same
		}
		return opposite
	}
	switch alphabet.ElementRelation(day.Element(), other.Element()) {
	case alphabet.RelSame:
		return pick(Companion, RobWealth)
	case alphabet.RelGenerates:
		return pick(EatingGod, HurtingOfficer)
	case alphabet.RelControls:
		return pick(IndirectWealth, DirectWealth)
	case alphabet.RelControlledBy:
		return pick(IndirectPower, DirectPower)
	case alphabet.RelGeneratedBy:
		return pick(IndirectSeal, DirectSeal)
	}
	return Companion
}

// RelationStrength scores a day/other stem relation in [0,1] from the base
// factor, an element modifier and a polarity modifier.
func RelationStrength(day, other alphabet.Stem) float64 {
	g := TenGodOf(day, other)
	s := strengthFactor[g]

	switch alphabet.ElementRelation(day.Element(), other.Element()) {
	case alphabet.RelSame:
		s *= 1.2
	case alphabet.RelGenerates, alphabet.RelGeneratedBy:
		s *= 1.1
	case alphabet.RelControls, alphabet.RelControlledBy:
		s *= 0.9
	}
	if day.Polarity() == other.Polarity() {
		s *= 0.95
	}

	if s > 1 {
		return 1
	}
	if s < 0 {
		return 0
	}
	return s
}

// TenGodEntry is one typed stem in a chart.
type TenGodEntry struct {
	Position models.Position
	Stem     alphabet.Stem
	God      TenGod
	Strength float64
}

// TenGodReading is the full ten-god typing of a chart.
type TenGodReading struct {
	DayMaster alphabet.Stem
	Relations []TenGodEntry
	// Counts includes visible stems at weight 1 and hidden stems at the
	// weight the branch table declares.
	Counts    [NumTenGods]float64
	Dominant  []TenGod
	Lacking   []TenGod
}

// CategoryTotals sums counts per camp.
func (r *TenGodReading) CategoryTotals() [5]float64 {
	var out [5]float64
	for g, n := range r.Counts {
		out[TenGod(g).Category()] += n
	}
	return out
}

// TenGods types every non-day stem against the day master and accumulates
// the hidden-stem weighted distribution.
func TenGods(chart *models.Chart) (*TenGodReading, error) {
	if chart == nil || !chart.Day.Stem.Valid() {
		return nil, &MissingDayMasterError{}
	}
	day := chart.DayMaster()
	reading := &TenGodReading{DayMaster: day}

	positions := models.Positions()
	for i, p := range chart.Pillars() {
		pos := positions[i]
		if pos != models.PosDay {
			g := TenGodOf(day, p.Stem)
			reading.Relations = append(reading.Relations, TenGodEntry{
				Position: pos,
				Stem:     p.Stem,
				God:      g,
				Strength: RelationStrength(day, p.Stem),
			})
			reading.Counts[g]++
		}
		for _, h := range p.Branch.HiddenStems() {
			reading.Counts[TenGodOf(day, h.Stem)] += h.Weight
		}
	}

	max := 0.0
	for _, n := range reading.Counts {
		if n > max {
			max = n
		}
	}
	for g, n := range reading.Counts {
		if n == max && max > 0 {
			reading.Dominant = append(reading.Dominant, TenGod(g))
		}
		if n == 0 {
			reading.Lacking = append(reading.Lacking, TenGod(g))
		}
	}
	return reading, nil
}

// MissingDayMasterError reports a chart without a usable day stem. This is
// a data defect, not a user input problem.
type MissingDayMasterError struct{}

func (e *MissingDayMasterError) Error() string { return "chart has no day master stem" }
