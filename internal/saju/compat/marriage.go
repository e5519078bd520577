package compat

import (
	"fmt"
	"strings"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/relation"
)

// MarriageResult extends the base result with married-life sub-scores.
type MarriageResult struct {
	Result

	StabilityScore          float64 `json:"stability_score"`
	FinancialHarmonyScore   float64 `json:"financial_harmony_score"`
	FamilyBuildingScore     float64 `json:"family_building_score"`
	ConflictResolutionScore float64 `json:"conflict_resolution_score"`

	MarriageType            string   `json:"marriage_type"`
	HouseholdDynamics       []string `json:"household_dynamics"`
	ParentingCompatibility  string   `json:"parenting_compatibility"`
	LongevityFactors        []string `json:"longevity_factors"`
}

var marriagePillarWeights = [4]float64{0.10, 0.10, 0.15, 0.10}

// Marriage scores two charts for married life, weighting stability over
// romance.
func Marriage(a, b *models.Chart) MarriageResult {
	p := newPair(a, b)

	stability := p.stabilityScore()
	financial := p.financialHarmonyScore()
	family := p.familyBuildingScore()
	conflict := p.conflictResolutionScore()

	total := p.weighted(0.10, 0.10, marriagePillarWeights,
		[]float64{stability, financial, family, conflict},
		[]float64{0.15, 0.10, 0.05, 0.05})

	res := p.result(total)
	out := MarriageResult{
		Result:                  res,
		StabilityScore:          stability,
		FinancialHarmonyScore:   financial,
		FamilyBuildingScore:     family,
		ConflictResolutionScore: conflict,
		MarriageType:            marriageTypes(p.god),
		HouseholdDynamics:       p.householdDynamics(),
		ParentingCompatibility:  p.parentingCompatibility(),
		LongevityFactors:        p.longevityFactors(),
	}
	out.Advice = marriageAdvice(out.MarriageType, out.HouseholdDynamics, out.ParentingCompatibility, res.Challenges)
	return out
}

func (p *pair) stabilityScore() float64 {
	score := 50.0
	if p.distA.Count(alphabet.Earth) > 0 && p.distB.Count(alphabet.Earth) > 0 {
		score += 20
	}
	switch p.god {
	case analysis.DirectPower, analysis.DirectWealth, analysis.DirectSeal:
		score += 25
	}
	score -= float64(p.branchClashCount()) * 10
	return clampScore(score)
}

func (p *pair) financialHarmonyScore() float64 {
	score := 50.0
	if p.distA.Count(alphabet.Metal) > 0 && p.distB.Count(alphabet.Metal) > 0 {
		score += 15
	}
	switch p.god {
	case analysis.DirectWealth, analysis.IndirectWealth:
		score += 20
	}
	// Harmonious year branches read as harmonious family estates.
	if sixHarmonyBetween(p.a.Year.Branch, p.b.Year.Branch) {
		score += 15
	}
	return clampScore(score)
}

func (p *pair) familyBuildingScore() float64 {
	score := 50.0
	if sixHarmonyBetween(p.a.Hour.Branch, p.b.Hour.Branch) {
		score += 25
	}
	if p.distA.Count(alphabet.Wood) > 0 && p.distB.Count(alphabet.Wood) > 0 {
		score += 15
	}
	if p.god == analysis.EatingGod {
		score += 20
	}
	return clampScore(score)
}

func (p *pair) conflictResolutionScore() float64 {
	score := 50.0
	if p.distA.Count(alphabet.Water) > 0 && p.distB.Count(alphabet.Water) > 0 {
		score += 15
	}
	switch p.god {
	case analysis.DirectSeal, analysis.IndirectSeal:
		score += 20
	}
	score -= float64(p.punishmentCount()) * 15
	return clampScore(score)
}

var marriageTypeByGod = [analysis.NumTenGods]string{
	analysis.Companion:      "동반자적 평등한 결혼",
	analysis.RobWealth:      "경쟁적이지만 성장하는 결혼",
	analysis.EatingGod:      "화목하고 자녀 복이 있는 결혼",
	analysis.HurtingOfficer: "창의적이고 표현적인 결혼",
	analysis.IndirectWealth: "자유롭고 독립적인 결혼",
	analysis.DirectWealth:   "경제적으로 풍요로운 결혼",
	analysis.IndirectPower:  "역동적이고 변화가 많은 결혼",
	analysis.DirectPower:    "전통적이고 안정적인 결혼",
	analysis.IndirectSeal:   "독특하고 개성있는 결혼",
	analysis.DirectSeal:     "정신적 교감이 깊은 결혼",
}

func marriageTypes(god analysis.TenGod) string {
	if god < 0 || int(god) >= len(marriageTypeByGod) {
		return "균형잡힌 결혼"
	}
	return marriageTypeByGod[god]
}

func (p *pair) householdDynamics() []string {
	var out []string
	switch p.pillarRel[models.PosYear].Branch {
	case relation.SixHarmony:
		out = append(out, "양가 부모님과 조화로운 관계")
	case relation.Clash:
		out = append(out, "양가 관계에서 중재 역할 필요")
	}
	if p.pillarRel[models.PosMonth].Branch == relation.SixHarmony {
		out = append(out, "형제/친척과 원만한 관계")
	}
	if p.pillarRel[models.PosDay].Branch == relation.SixHarmony {
		out = append(out, "부부간 깊은 신뢰와 애정")
	}
	if p.pillarRel[models.PosHour].Branch == relation.SixHarmony {
		out = append(out, "자녀와 좋은 관계 형성")
	}
	return capList(out, 5)
}

func (p *pair) parentingCompatibility() string {
	if sixHarmonyBetween(p.a.Hour.Branch, p.b.Hour.Branch) {
		return "매우 좋음 - 육아 방식이 조화로움"
	}
	if relation.InClash(p.a.Hour.Branch, p.b.Hour.Branch) {
		return "도전적 - 육아관 차이 조율 필요"
	}
	if p.god == analysis.EatingGod {
		return "좋음 - 자녀에게 좋은 부모"
	}
	return "보통 - 서로 협력하면 좋은 부모 가능"
}

func (p *pair) longevityFactors() []string {
	var out []string
	if p.elements.Generating > 15 {
		out = append(out, "오행 상생으로 서로를 도움")
	}
	day := p.pillarRel[models.PosDay]
	if day.Branch == relation.SixHarmony {
		out = append(out, "일지 육합으로 변치 않는 애정")
	}
	if p.elements.Complementary > 20 {
		out = append(out, "서로의 부족함을 채워주는 관계")
	}
	if day.Stem == relation.Combination {
		out = append(out, "천간합으로 자연스러운 조화")
	}
	return capList(out, 4)
}

func marriageAdvice(marriageType string, dynamics []string, parenting string, challenges []string) []string {
	advice := []string{
		fmt.Sprintf("%s의 특성을 이해하고 장점을 살리세요", marriageType),
	}

	joinedDynamics := strings.Join(dynamics, " ")
	if strings.Contains(joinedDynamics, "양가 부모님") {
		advice = append(advice, "양가 부모님께 균형있게 효도하세요")
	}
	if strings.Contains(joinedDynamics, "자녀와 좋은 관계") {
		advice = append(advice, "자녀 교육에 일관된 방향을 유지하세요")
	}

	if strings.Contains(parenting, "도전적") {
		advice = append(advice, "육아관 차이는 대화로 조율하세요")
	}

	if strings.Contains(strings.Join(challenges, " "), "충") {
		advice = append(advice, "정기적인 부부 대화 시간을 가지세요")
	}

	advice = append(advice,
		"가사 분담을 명확히 하여 갈등을 줄이세요",
		"경제적 계획을 함께 세우고 실행하세요",
		"부부만의 시간을 정기적으로 가지세요")

	return capList(advice, 7)
}
