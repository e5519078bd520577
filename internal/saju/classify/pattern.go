// Package classify derives the higher-order labels of a chart: the pattern
// (격국), the useful and harmful elements (용신/기신), and the named star
// matches (신살). All classifiers are pure functions over an immutable
// chart plus the static tables in this package.
package classify

import (
	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
)

// Pattern is one of the 19 recognized chart patterns.
type Pattern int

const (
	// Regular patterns (정격), one per non-self ten god.
	PatEatingGod      Pattern = iota // 식신격
	PatHurtingOfficer                // 상관격
	PatIndirectWealth                // 편재격
	PatDirectWealth                  // 정재격
	PatIndirectPower                 // 편관격
	PatDirectPower                   // 정관격
	PatIndirectSeal                  // 편인격
	PatDirectSeal                    // 정인격

	// Irregular patterns (변격).
	PatFollowing     // 종격
	PatDominant      // 전왕격
	PatSingleElement // 일행득기격
	PatYangBlade     // 양인격
	PatEstablished   // 건록격
	PatMonthRob      // 월겁격

	// Special patterns (특수격).
	PatFireEarth      // 화기토양격
	PatCurvedStraight // 곡직격
	PatBlazing        // 염상격
	PatRevolution     // 종혁격
	PatFlowing        // 윤하격

	NumPatterns
)

var patternNames = [NumPatterns]string{
	"식신격", "상관격", "편재격", "정재격", "편관격", "정관격", "편인격", "정인격",
	"종격", "전왕격", "일행득기격", "양인격", "건록격", "월겁격",
	"화기토양격", "곡직격", "염상격", "종혁격", "윤하격",
}

func (p Pattern) String() string {
	if p < 0 || p >= NumPatterns {
		return "unknown"
	}
	return patternNames[p]
}

// PatternCategory groups patterns into the three traditional tiers.
type PatternCategory string

const (
	CategoryRegular   PatternCategory = "정격"
	CategoryIrregular PatternCategory = "변격"
	CategorySpecial   PatternCategory = "특수격"
)

// Category returns the tier the pattern belongs to.
func (p Pattern) Category() PatternCategory {
	switch {
	case p <= PatDirectSeal:
		return CategoryRegular
	case p <= PatMonthRob:
		return CategoryIrregular
	default:
		return CategorySpecial
	}
}

// godPattern maps a ten god to its regular pattern. The self camp
// (비견/겁재) has no regular pattern.
func godPattern(g analysis.TenGod) (Pattern, bool) {
	if g < analysis.EatingGod || g > analysis.DirectSeal {
		return 0, false
	}
	return Pattern(g - analysis.EatingGod), true
}

// yangBladeBranch is the blade branch per day stem (갑→묘, 을→인, ...).
var yangBladeBranch = [alphabet.NumStems]alphabet.Branch{3, 2, 6, 5, 6, 5, 9, 8, 0, 11}

// luBranch is the prosperity (건록) branch per day stem (갑→인, 을→묘, ...).
var luBranch = [alphabet.NumStems]alphabet.Branch{2, 3, 5, 6, 5, 6, 8, 9, 11, 0}

// maxGodOrder fixes the tie-break when picking the most common ten god: on
// equal counts the earlier entry wins, so the direct god of each pair beats
// its indirect counterpart.
var maxGodOrder = [analysis.NumTenGods]analysis.TenGod{
	analysis.Companion, analysis.RobWealth,
	analysis.EatingGod, analysis.HurtingOfficer,
	analysis.DirectWealth, analysis.IndirectWealth,
	analysis.DirectPower, analysis.IndirectPower,
	analysis.DirectSeal, analysis.IndirectSeal,
}

// patternContext carries the precomputed censuses the cascade predicates
// share.
type patternContext struct {
	chart    *models.Chart
	gods     *analysis.TenGodReading
	elements analysis.ElementDistribution // visible 8 tags only
}

// The cascade is ordered special → irregular → regular and the order is
// load-bearing: a chart matching a special pattern must never fall through
// to a lower tier.
var patternCascade = []func(*patternContext) (Pattern, bool){
	specialPattern,
	irregularPattern,
	regularPattern,
}

func specialPattern(ctx *patternContext) (Pattern, bool) {
	fire := ctx.elements.Count(alphabet.Fire)
	earth := ctx.elements.Count(alphabet.Earth)
	if fire >= 2 && earth >= 2 && fire+earth >= 5 {
		return PatFireEarth, true
	}
	switch {
	case ctx.elements.Count(alphabet.Wood) >= 4:
		return PatCurvedStraight, true
	case fire >= 4:
		return PatBlazing, true
	case ctx.elements.Count(alphabet.Metal) >= 4:
		return PatRevolution, true
	case ctx.elements.Count(alphabet.Water) >= 4:
		return PatFlowing, true
	}
	return 0, false
}

func irregularPattern(ctx *patternContext) (Pattern, bool) {
	camps := ctx.gods.CategoryTotals()
	self := camps[analysis.CatSelf]
	wealth := camps[analysis.CatWealth]
	power := camps[analysis.CatPower]
	resource := camps[analysis.CatResource]

	if self < 1 && resource < 1 && (wealth > 2 || power > 2) {
		return PatFollowing, true
	}
	if self > 3 && resource > 1 && power < 1 && wealth < 1 {
		return PatDominant, true
	}

	max := 0.0
	for _, e := range alphabet.Elements() {
		if ctx.elements.Count(e) > max {
			max = ctx.elements.Count(e)
		}
	}
	if max > 5 {
		return PatSingleElement, true
	}

	day := ctx.chart.DayMaster()
	monthBranch := ctx.chart.Month.Branch
	if yangBladeBranch[day] == monthBranch {
		return PatYangBlade, true
	}
	if luBranch[day] == monthBranch {
		return PatEstablished, true
	}
	if ctx.gods.Counts[analysis.RobWealth] >= 2 {
		return PatMonthRob, true
	}
	return 0, false
}

func regularPattern(ctx *patternContext) (Pattern, bool) {
	monthGod := analysis.TenGodOf(ctx.chart.DayMaster(), ctx.chart.Month.Stem)
	if p, ok := godPattern(monthGod); ok && ctx.gods.Counts[monthGod] >= 1 {
		return p, true
	}

	best := maxGodOrder[0]
	for _, g := range maxGodOrder {
		if ctx.gods.Counts[g] > ctx.gods.Counts[best] {
			best = g
		}
	}
	return godPattern(best)
}

// PatternReading is the full pattern verdict for a chart.
type PatternReading struct {
	Pattern  Pattern
	Category PatternCategory
	Info     *PatternInfo
	Strength float64 // how firmly the pattern manifests, in [0,1]
}

// IdentifyPattern runs the cascade and returns the first matching pattern,
// falling back to 정재격 when nothing fires.
func IdentifyPattern(chart *models.Chart) (Pattern, error) {
	gods, err := analysis.TenGods(chart)
	if err != nil {
		return 0, err
	}
	ctx := &patternContext{
		chart:    chart,
		gods:     gods,
		elements: analysis.Distribution(chart),
	}
	return identify(ctx), nil
}

func identify(ctx *patternContext) Pattern {
	for _, rule := range patternCascade {
		if p, ok := rule(ctx); ok {
			return p
		}
	}
	return PatDirectWealth
}

// AnalyzePattern identifies the pattern and attaches its interpretation
// tables and a manifestation strength.
func AnalyzePattern(chart *models.Chart) (*PatternReading, error) {
	gods, err := analysis.TenGods(chart)
	if err != nil {
		return nil, err
	}
	ctx := &patternContext{
		chart:    chart,
		gods:     gods,
		elements: analysis.Distribution(chart),
	}
	p := identify(ctx)
	return &PatternReading{
		Pattern:  p,
		Category: p.Category(),
		Info:     p.Info(),
		Strength: patternStrength(ctx, p),
	}, nil
}

// patternStrength starts at 0.5, adds up to 0.3 for the count of the
// pattern's own ten god, and 0.2 when one element holds 4+ of the 8 tags.
func patternStrength(ctx *patternContext, p Pattern) float64 {
	strength := 0.5
	if p <= PatDirectSeal {
		g := analysis.EatingGod + analysis.TenGod(p)
		bonus := ctx.gods.Counts[g] * 0.1
		if bonus > 0.3 {
			bonus = 0.3
		}
		strength += bonus
	}
	max := 0.0
	for _, e := range alphabet.Elements() {
		if ctx.elements.Count(e) > max {
			max = ctx.elements.Count(e)
		}
	}
	if max >= 4 {
		strength += 0.2
	}
	if strength > 1.0 {
		strength = 1.0
	}
	return strength
}
