package analysis

import (
	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
)

// ElementDistribution is the element census of a chart's 8 stem/branch
// tags. Hidden-stem weighting is opt-in via CountHidden so no consumer
// inherits it implicitly.
type ElementDistribution struct {
	Counts      [5]float64
	Percentages [5]float64
	Total       float64
}

// Count returns the count for one element.
func (d *ElementDistribution) Count(e alphabet.Element) float64 { return d.Counts[e] }

// Percent returns the share for one element.
func (d *ElementDistribution) Percent(e alphabet.Element) float64 { return d.Percentages[e] }

// Dominant returns the most common element; ties resolve by canonical
// element order.
func (d *ElementDistribution) Dominant() alphabet.Element {
	best := alphabet.Wood
	for _, e := range alphabet.Elements() {
		if d.Counts[e] > d.Counts[best] {
			best = e
		}
	}
	return best
}

// Lacking returns the least common element; ties resolve by canonical
// element order.
func (d *ElementDistribution) Lacking() alphabet.Element {
	worst := alphabet.Wood
	for _, e := range alphabet.Elements() {
		if d.Counts[e] < d.Counts[worst] {
			worst = e
		}
	}
	return worst
}

// Distribution counts the 8 visible stem/branch element tags.
func Distribution(chart *models.Chart) ElementDistribution {
	var d ElementDistribution
	for _, p := range chart.Pillars() {
		d.Counts[p.Stem.Element()]++
		d.Counts[p.Branch.Element()]++
		d.Total += 2
	}
	d.fillPercentages()
	return d
}

// DistributionWithHidden additionally counts hidden stems at their branch
// weights. Used by the strength and yongshin paths only.
func DistributionWithHidden(chart *models.Chart) ElementDistribution {
	var d ElementDistribution
	for _, p := range chart.Pillars() {
		d.Counts[p.Stem.Element()]++
		d.Counts[p.Branch.Element()]++
		d.Total += 2
		for _, h := range p.Branch.HiddenStems() {
			d.Counts[h.Stem.Element()] += h.Weight
			d.Total += h.Weight
		}
	}
	d.fillPercentages()
	return d
}

func (d *ElementDistribution) fillPercentages() {
	if d.Total == 0 {
		for i := range d.Percentages {
			d.Percentages[i] = 20
		}
		return
	}
	for i, n := range d.Counts {
		d.Percentages[i] = n / d.Total * 100
	}
}

// BalanceStatus bands the evenness of a distribution.
type BalanceStatus string

const (
	BalanceExcellent  BalanceStatus = "excellent"
	BalanceGood       BalanceStatus = "good"
	BalanceModerate   BalanceStatus = "moderate"
	BalanceImbalanced BalanceStatus = "imbalanced"
)

// BalanceReport summarizes how even a chart's elements are.
type BalanceReport struct {
	Dominant       alphabet.Element
	DominantShare  float64
	Lacking        alphabet.Element
	LackingShare   float64
	Score          float64 // 100 = perfectly even
	Status         BalanceStatus
	Recommendation alphabet.Element // element to reinforce
}

// Balance scores evenness as 100 minus total deviation from the 20% ideal.
func Balance(d ElementDistribution) BalanceReport {
	deviation := 0.0
	for _, pct := range d.Percentages {
		diff := pct - 20
		if diff < 0 {
			diff = -diff
		}
		deviation += diff
	}
	score := 100 - deviation
	if score < 0 {
		score = 0
	}

	status := BalanceImbalanced
	switch {
	case score >= 80:
		status = BalanceExcellent
	case score >= 60:
		status = BalanceGood
	case score >= 40:
		status = BalanceModerate
	}

	dom, lack := d.Dominant(), d.Lacking()
	return BalanceReport{
		Dominant:       dom,
		DominantShare:  d.Percent(dom),
		Lacking:        lack,
		LackingShare:   d.Percent(lack),
		Score:          score,
		Status:         status,
		Recommendation: lack,
	}
}
