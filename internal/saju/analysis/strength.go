package analysis

import (
	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
)

// StrengthBand is the five-way day-master strength classification.
type StrengthBand string

const (
	VeryWeak   StrengthBand = "very_weak"
	Weak       StrengthBand = "weak"
	Balanced   StrengthBand = "balanced"
	Strong     StrengthBand = "strong"
	VeryStrong StrengthBand = "very_strong"
)

// Season keys the per-element seasonal multipliers. The four transitional
// earth months get their own keys.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
	SpringEarth
	SummerEarth
	AutumnEarth
	WinterEarth
)

var seasonNames = [...]string{"spring", "summer", "autumn", "winter", "spring_earth", "summer_earth", "autumn_earth", "winter_earth"}

func (s Season) String() string {
	if s < 0 || int(s) >= len(seasonNames) {
		return "unknown"
	}
	return seasonNames[s]
}

// branchSeason maps the month branch to its season.
var branchSeason = [alphabet.NumBranches]Season{
	0:  Winter,      // 자
	1:  WinterEarth, // 축
	2:  Spring,      // 인
	3:  Spring,      // 묘
	4:  SpringEarth, // 진
	5:  Summer,      // 사
	6:  Summer,      // 오
	7:  SummerEarth, // 미
	8:  Autumn,      // 신
	9:  Autumn,      // 유
	10: AutumnEarth, // 술
	11: Winter,      // 해
}

// seasonalStrength[season][element] scales a branch's contribution to the
// day master by how the season treats the day element.
var seasonalStrength = [8][5]float64{
	Spring:      {1.5, 1.2, 0.8, 0.6, 0.9},
	Summer:      {0.9, 1.5, 1.2, 0.6, 0.5},
	Autumn:      {0.6, 0.8, 0.9, 1.5, 1.2},
	Winter:      {1.2, 0.5, 0.6, 0.9, 1.5},
	SpringEarth: {1.3, 1.1, 1.0, 0.7, 0.8},
	SummerEarth: {0.8, 1.3, 1.3, 0.7, 0.6},
	AutumnEarth: {0.7, 0.7, 1.1, 1.3, 1.1},
	WinterEarth: {1.1, 0.6, 0.8, 0.8, 1.3},
}

// SeasonOf returns the season the month branch falls in.
func SeasonOf(monthBranch alphabet.Branch) Season { return branchSeason[monthBranch] }

// SeasonalMultiplier returns how strongly the season supports an element.
func SeasonalMultiplier(s Season, e alphabet.Element) float64 { return seasonalStrength[s][e] }

// StrengthReading is the full day-master strength assessment.
type StrengthReading struct {
	DayMaster  alphabet.Stem
	DayElement alphabet.Element
	Band       StrengthBand
	Ratio      float64 // support / (support + drain)
	Support    float64
	Drain      float64
	Season     Season
}

// elementSupport scores how another element feeds or drains the day
// element: same +2, feeds the day +1.5, fed by the day -1, suppresses the
// day -1.5, suppressed by the day -0.5.
func elementSupport(day, other alphabet.Element) float64 {
	switch alphabet.ElementRelation(day, other) {
	case alphabet.RelSame:
		return 2.0
	case alphabet.RelGeneratedBy:
		return 1.5
	case alphabet.RelGenerates:
		return -1.0
	case alphabet.RelControlledBy:
		return -1.5
	case alphabet.RelControls:
		return -0.5
	}
	return 0
}

// DayMasterStrength weighs every non-day stem and every branch (month
// branch scaled by its seasonal multiplier, hidden stems at their table
// weight) for or against the day master and bands the resulting ratio.
func DayMasterStrength(chart *models.Chart) (*StrengthReading, error) {
	if chart == nil || !chart.Day.Stem.Valid() {
		return nil, &MissingDayMasterError{}
	}
	day := chart.DayMaster()
	dayElem := day.Element()
	season := SeasonOf(chart.Month.Branch)

	var support, drain float64
	add := func(score float64) {
		if score > 0 {
			support += score
		} else {
			drain += -score
		}
	}

	positions := models.Positions()
	for i, p := range chart.Pillars() {
		pos := positions[i]
		// Stems equal to the day master are not counted against it.
		if p.Stem != day {
			add(elementSupport(dayElem, p.Stem.Element()))
		}

		branchScore := elementSupport(dayElem, p.Branch.Element())
		if pos == models.PosMonth {
			branchScore *= SeasonalMultiplier(season, dayElem)
		}
		add(branchScore)

		for _, h := range p.Branch.HiddenStems() {
			add(elementSupport(dayElem, h.Stem.Element()) * h.Weight)
		}
	}

	ratio := 0.5
	if support+drain > 0 {
		ratio = support / (support + drain)
	}

	return &StrengthReading{
		DayMaster:  day,
		DayElement: dayElem,
		Band:       bandOf(ratio),
		Ratio:      ratio,
		Support:    support,
		Drain:      drain,
		Season:     season,
	}, nil
}

func bandOf(ratio float64) StrengthBand {
	switch {
	case ratio >= 0.8:
		return VeryStrong
	case ratio >= 0.6:
		return Strong
	case ratio >= 0.4:
		return Balanced
	case ratio >= 0.2:
		return Weak
	default:
		return VeryWeak
	}
}
