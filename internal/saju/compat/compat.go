// Package compat scores the compatibility of two four-pillar charts. A
// shared base scorer combines element balance, day-stem ten-god affinity
// and four per-pillar relation scores; the relationship modes (lover,
// marriage, business, family) compose their own sub-scores and weight
// vectors over the same base. Scoring is asymmetric: swapping the two
// charts changes gender-conditioned adjustments and, in family mode,
// which chart plays the senior role.
package compat

import (
	"fmt"
	"strings"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/relation"
)

// Mode selects the relationship lens for a comparison.
type Mode string

const (
	ModeGeneral  Mode = "general"
	ModeLover    Mode = "lover"
	ModeMarriage Mode = "marriage"
	ModeBusiness Mode = "business"
	ModeFamily   Mode = "family"
)

// Level buckets a total score into the traditional verdicts.
type Level string

const (
	LevelExcellent     Level = "천생연분"
	LevelVeryGood      Level = "매우 좋음"
	LevelGood          Level = "좋음"
	LevelAverage       Level = "보통"
	LevelChallenging   Level = "노력 필요"
	LevelDifficult     Level = "어려움"
	LevelVeryDifficult Level = "매우 어려움"
)

func levelFor(score float64) Level {
	switch {
	case score >= 85:
		return LevelExcellent
	case score >= 75:
		return LevelVeryGood
	case score >= 65:
		return LevelGood
	case score >= 50:
		return LevelAverage
	case score >= 40:
		return LevelChallenging
	case score >= 30:
		return LevelDifficult
	default:
		return LevelVeryDifficult
	}
}

// ElementAnalysis breaks the element-balance score into its parts.
type ElementAnalysis struct {
	Complementary float64 `json:"complementary"`
	Harmony       float64 `json:"harmony"`
	Generating    float64 `json:"generating"`
	Relationship  string  `json:"relationship"`
}

// TenGodsAnalysis summarizes the day-stem relation and the cross-chart
// stem combination/clash scan.
type TenGodsAnalysis struct {
	Relation      analysis.TenGod `json:"relation"`
	HarmonyCount  int             `json:"harmony_count"`
	ConflictCount int             `json:"conflict_count"`
}

// PillarRelation labels the stem and branch relation of one pillar pair.
type PillarRelation struct {
	Stem   relation.Kind `json:"stem"`
	Branch relation.Kind `json:"branch"`
}

// Result is the base compatibility verdict shared by every mode.
type Result struct {
	TotalScore float64 `json:"total_score"`
	Level      Level   `json:"level"`

	ElementScore float64    `json:"element_score"`
	TenGodsScore float64    `json:"ten_gods_score"`
	PillarScores [4]float64 `json:"pillar_scores"` // year month day hour

	Elements ElementAnalysis   `json:"elements"`
	TenGods  TenGodsAnalysis   `json:"ten_gods"`
	Pillars  [4]PillarRelation `json:"pillars"`

	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
	Advice     []string `json:"advice"`

	SpecialCombinations []string `json:"special_combinations"`
	WarningSigns        []string `json:"warning_signs"`
}

// pair holds everything the base scorer and the mode scorers share for one
// ordered chart comparison.
type pair struct {
	a, b         *models.Chart
	distA, distB analysis.ElementDistribution
	god          analysis.TenGod // a's day master toward b's

	elementScore float64
	elements     ElementAnalysis
	tenGodsScore float64
	tenGods      TenGodsAnalysis
	pillarScores [4]float64
	pillarRel    [4]PillarRelation

	// genderAdj is added to every mode's weighted total.
	genderAdj float64
}

func newPair(a, b *models.Chart) *pair {
	p := &pair{
		a: a, b: b,
		distA: analysis.Distribution(a),
		distB: analysis.Distribution(b),
		god:   analysis.TenGodOf(a.DayMaster(), b.DayMaster()),
	}
	p.scoreElements()
	p.scoreTenGods()
	p.scorePillars()
	p.adjustForGenders()
	return p
}

// scoreElements measures how the two element distributions complement and
// mirror each other, plus the relation of the dominant elements.
func (p *pair) scoreElements() {
	var comp, harm float64
	for _, e := range alphabet.Elements() {
		c1, c2 := p.distA.Count(e), p.distB.Count(e)
		if c1 == 0 && c2 > 0 || c2 == 0 && c1 > 0 {
			comp += 10
		}
		diff := c1 - c2
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff == 0:
			harm += 10
		case diff <= 1:
			harm += 7
		case diff <= 2:
			harm += 4
		default:
			harm++
		}
	}

	var gen float64
	d1, d2 := p.distA.Dominant(), p.distB.Dominant()
	switch {
	case alphabet.Generates(d1) == d2:
		gen = 20
		p.elements.Relationship = fmt.Sprintf("%s이(가) %s을(를) 생함", d1.Symbol(), d2.Symbol())
	case alphabet.Generates(d2) == d1:
		gen = 20
		p.elements.Relationship = fmt.Sprintf("%s이(가) %s을(를) 생함", d2.Symbol(), d1.Symbol())
	case alphabet.Controls(d1) == d2:
		gen = -10
		p.elements.Relationship = fmt.Sprintf("%s이(가) %s을(를) 극함", d1.Symbol(), d2.Symbol())
	case alphabet.Controls(d2) == d1:
		gen = -10
		p.elements.Relationship = fmt.Sprintf("%s이(가) %s을(를) 극함", d2.Symbol(), d1.Symbol())
	default:
		gen = 10
		p.elements.Relationship = "중립적 관계"
	}

	p.elements.Complementary = comp
	p.elements.Harmony = harm
	p.elements.Generating = gen
	p.elementScore = clampScore(comp + harm + gen)
}

// godAffinity adjusts the ten-gods base score by the day-stem relation.
// Indexed by TenGod: 비견 겁재 식신 상관 편재 정재 편관 정관 편인 정인.
var godAffinity = [analysis.NumTenGods]float64{8, 5, 18, 10, 15, 20, 15, 20, 12, 15}

func (p *pair) scoreTenGods() {
	score := 50.0 + godAffinity[p.god]

	stemsA, stemsB := p.a.Stems(), p.b.Stems()
	for i := range stemsA {
		switch relation.Stems(stemsA[i], stemsB[i]) {
		case relation.Combination:
			p.tenGods.HarmonyCount++
			score += 5
		case relation.Clash:
			p.tenGods.ConflictCount++
			score -= 5
		}
	}

	p.tenGods.Relation = p.god
	p.tenGodsScore = clampScore(score)
}

// Per-pillar relation scoring: stem combination/clash plus the branch
// relation chain, from a 50 baseline.
func (p *pair) scorePillars() {
	pillarsA, pillarsB := p.a.Pillars(), p.b.Pillars()
	for i := range pillarsA {
		score := 50.0

		stemKind := relation.Stems(pillarsA[i].Stem, pillarsB[i].Stem)
		switch stemKind {
		case relation.Combination:
			score += 25
		case relation.Clash:
			score -= 20
		}

		branchKind := relation.Branches(pillarsA[i].Branch, pillarsB[i].Branch)
		switch branchKind {
		case relation.SixHarmony:
			score += 30
		case relation.Clash:
			score -= 25
		case relation.Punishment:
			score -= 15
		case relation.Harm:
			score -= 10
		case relation.Destruction:
			score -= 8
		}

		p.pillarRel[i] = PillarRelation{Stem: stemKind, Branch: branchKind}
		p.pillarScores[i] = clampScore(score)
	}
}

// adjustForGenders applies the ordered gender pairing: a traditional
// male-female pairing boosts the stem-relation score, the reverse pairing
// boosts element balance, and a same-gender pairing leans on the branch
// reality of the day pillar. This is what makes score(a,b) != score(b,a).
func (p *pair) adjustForGenders() {
	ga, gb := p.a.Gender, p.b.Gender
	switch {
	case ga == models.Male && gb == models.Female:
		p.tenGodsScore = clampScore(p.tenGodsScore + 5)
		p.genderAdj = 3
	case ga == models.Female && gb == models.Male:
		p.elementScore = clampScore(p.elementScore + 5)
		p.genderAdj = 2
	case ga == gb && ga != "":
		p.pillarScores[models.PosDay] = clampScore(p.pillarScores[models.PosDay] + 8)
		p.genderAdj = -2
	}
}

// weighted folds the base sub-scores with a mode's weight vector and adds
// the gender adjustment. extra holds mode sub-scores aligned with
// extraWeights.
func (p *pair) weighted(element, tenGods float64, pillar [4]float64, extra, extraWeights []float64) float64 {
	total := p.elementScore*element + p.tenGodsScore*tenGods
	for i, w := range pillar {
		total += p.pillarScores[i] * w
	}
	for i, w := range extraWeights {
		total += extra[i] * w
	}
	total += p.genderAdj
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	return round2(total)
}

func (p *pair) specialCombinations() []string {
	var special []string

	dayStemComb := relation.Stems(p.a.Day.Stem, p.b.Day.Stem) == relation.Combination
	_, dayBranchHarmony := relation.SixHarmonyElement(p.a.Day.Branch, p.b.Day.Branch)
	if dayStemComb && dayBranchHarmony {
		special = append(special, "천생연분 - 일주 천간지지 완전합")
	}

	// Full harmony groups across both charts combined.
	all := append(p.a.Branches(), p.b.Branches()...)
	for _, m := range relation.TriadsIn(all) {
		if m.Full {
			special = append(special, fmt.Sprintf("삼합 %s국 형성", m.Triad.Element.Symbol()))
		}
	}

	allStemsCombine := true
	stemsA, stemsB := p.a.Stems(), p.b.Stems()
	for i := range stemsA {
		if relation.Stems(stemsA[i], stemsB[i]) != relation.Combination {
			allStemsCombine = false
			break
		}
	}
	if allStemsCombine {
		special = append(special, "사주 전체 천간합 - 매우 드문 인연")
	}

	return special
}

func (p *pair) warningSigns() []string {
	var warnings []string

	if relation.InClash(p.a.Day.Branch, p.b.Day.Branch) {
		warnings = append(warnings, "일지충 - 배우자궁 충돌")
	}

	if n := p.branchClashCount(); n >= 3 {
		warnings = append(warnings, fmt.Sprintf("다중충 (%d개) - 잦은 충돌 가능성", n))
	}
	if n := p.punishmentCount(); n >= 2 {
		warnings = append(warnings, fmt.Sprintf("다중형 (%d개) - 갈등과 시련", n))
	}

	d1, d2 := p.distA.Dominant(), p.distB.Dominant()
	if alphabet.Controls(d1) == d2 {
		warnings = append(warnings, fmt.Sprintf("%s이(가) %s을(를) 극함 - 일방적 관계 주의", d1.Symbol(), d2.Symbol()))
	} else if alphabet.Controls(d2) == d1 {
		warnings = append(warnings, fmt.Sprintf("%s이(가) %s을(를) 극함 - 일방적 관계 주의", d2.Symbol(), d1.Symbol()))
	}

	return warnings
}

func (p *pair) branchClashCount() int {
	n := 0
	branchesA, branchesB := p.a.Branches(), p.b.Branches()
	for i := range branchesA {
		if relation.InClash(branchesA[i], branchesB[i]) {
			n++
		}
	}
	return n
}

func (p *pair) punishmentCount() int {
	n := 0
	branchesA, branchesB := p.a.Branches(), p.b.Branches()
	for i := range branchesA {
		if relation.InPunishment(branchesA[i], branchesB[i]) {
			n++
		}
	}
	return n
}

func (p *pair) stemCombinationCount() int {
	n := 0
	stemsA, stemsB := p.a.Stems(), p.b.Stems()
	for i := range stemsA {
		if relation.Stems(stemsA[i], stemsB[i]) == relation.Combination {
			n++
		}
	}
	return n
}

func (p *pair) strengths(special []string) []string {
	var out []string
	if p.elements.Complementary >= 20 {
		out = append(out, "서로의 부족한 오행을 보완하는 관계")
	}
	if p.elements.Generating >= 15 {
		out = append(out, "오행 상생 관계로 서로를 돕는 관계")
	}
	if p.tenGods.HarmonyCount >= 2 {
		out = append(out, "천간합이 많아 조화로운 관계")
	}
	day := p.pillarRel[models.PosDay]
	if day.Stem == relation.Combination {
		out = append(out, "일간이 합하여 강한 인연")
	}
	if day.Branch == relation.SixHarmony {
		out = append(out, "일지가 합하여 안정적인 관계")
	}
	out = append(out, special...)
	return capList(out, 5)
}

func (p *pair) challenges(warnings []string) []string {
	var out []string
	if p.elements.Generating <= -10 {
		out = append(out, "오행 상극 관계로 갈등 가능성")
	}
	if p.tenGods.ConflictCount >= 2 {
		out = append(out, "천간충이 많아 의견 충돌 가능")
	}
	if p.pillarRel[models.PosDay].Branch == relation.Clash {
		out = append(out, "일지충으로 인한 갈등 주의")
	}
	out = append(out, warnings...)
	return capList(out, 5)
}

func (p *pair) baseAdvice(level Level, strengths, challenges []string) []string {
	var advice []string

	switch level {
	case LevelExcellent, LevelVeryGood:
		advice = append(advice, "천생연분에 가까운 관계입니다. 서로를 아끼고 존중하세요.")
	case LevelGood, LevelAverage:
		advice = append(advice, "좋은 인연입니다. 노력하면 더 좋은 관계가 될 수 있습니다.")
	default:
		advice = append(advice, "도전이 있는 관계입니다. 서로를 이해하려는 노력이 필요합니다.")
	}

	if p.elements.Generating < 0 {
		advice = append(advice, "상극 관계의 오행은 이해와 배려로 극복할 수 있습니다.")
	} else if p.elements.Complementary >= 20 {
		advice = append(advice, "서로 부족한 부분을 채워주는 관계로 발전시키세요.")
	}

	if p.tenGods.ConflictCount >= 2 {
		advice = append(advice, "충돌이 있을 때는 대화와 타협으로 해결하세요.")
	}
	if p.tenGods.HarmonyCount >= 2 {
		advice = append(advice, "좋은 합이 있으니 서로를 믿고 의지하세요.")
	}

	joinedChallenges := strings.Join(challenges, " ")
	if strings.Contains(joinedChallenges, "일지충") {
		advice = append(advice, "일지충은 서로 다른 가치관을 인정하면 극복됩니다.")
	}
	if strings.Contains(joinedChallenges, "다중충") {
		advice = append(advice, "잦은 충돌은 서로의 개성을 존중하면 줄어듭니다.")
	}

	joinedStrengths := strings.Join(strengths, " ")
	if strings.Contains(joinedStrengths, "천생연분") {
		advice = append(advice, "매우 드문 좋은 인연이니 소중히 가꾸세요.")
	}
	if strings.Contains(joinedStrengths, "삼합") {
		advice = append(advice, "삼합의 에너지를 활용해 공동 목표를 세우세요.")
	}

	return advice
}

// result assembles the shared Result fields around a mode's total score.
func (p *pair) result(total float64) Result {
	special := p.specialCombinations()
	warnings := p.warningSigns()
	strengths := p.strengths(special)
	challenges := p.challenges(warnings)
	level := levelFor(total)

	return Result{
		TotalScore:          total,
		Level:               level,
		ElementScore:        p.elementScore,
		TenGodsScore:        p.tenGodsScore,
		PillarScores:        p.pillarScores,
		Elements:            p.elements,
		TenGods:             p.tenGods,
		Pillars:             p.pillarRel,
		Strengths:           strengths,
		Challenges:          challenges,
		Advice:              p.baseAdvice(level, strengths, challenges),
		SpecialCombinations: special,
		WarningSigns:        warnings,
	}
}

// generalPillarWeights is the base mode's weight vector: the day pillar
// carries the most weight.
var generalPillarWeights = [4]float64{0.10, 0.10, 0.25, 0.10}

// General scores two charts with the base weight vector. The order of the
// arguments matters.
func General(a, b *models.Chart) Result {
	p := newPair(a, b)
	total := p.weighted(0.25, 0.20, generalPillarWeights, nil, nil)
	return p.result(total)
}

// sixHarmonyBetween is a readability helper for the mode scorers.
func sixHarmonyBetween(a, b alphabet.Branch) bool {
	_, ok := relation.SixHarmonyElement(a, b)
	return ok
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	if v < 0 {
		return float64(int(v*100-0.5)) / 100
	}
	return float64(int(v*100+0.5)) / 100
}

func capList(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
