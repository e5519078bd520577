package compat

import (
	"fmt"
	"strings"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/relation"
)

// LoverResult extends the base result with romance-centric sub-scores.
type LoverResult struct {
	Result

	RomanceScore       float64 `json:"romance_score"`
	PassionScore       float64 `json:"passion_score"`
	EmotionalBondScore float64 `json:"emotional_bond_score"`
	CommunicationScore float64 `json:"communication_score"`

	LoveLanguage      string   `json:"love_language"`
	RomanticDynamics  []string `json:"romantic_dynamics"`
	PassionIndicators []string `json:"passion_indicators"`
	LongTermPotential string   `json:"long_term_potential"`
}

// 도화살 branches; a chart carrying one reads as romantically charged.
var romanceBranches = map[alphabet.Branch]bool{0: true, 3: true, 6: true, 9: true}

func hasRomanceBranch(c *models.Chart) bool {
	for _, b := range c.Branches() {
		if romanceBranches[b] {
			return true
		}
	}
	return false
}

var loverPillarWeights = [4]float64{0.05, 0.05, 0.15, 0.05}

// Lover scores two charts for a romantic relationship.
func Lover(a, b *models.Chart) LoverResult {
	p := newPair(a, b)

	romance := p.romanceScore()
	passion := p.passionScore()
	emotional := p.emotionalBondScore()
	communication := p.communicationScore()

	total := p.weighted(0.10, 0.10, loverPillarWeights,
		[]float64{romance, passion, emotional, communication},
		[]float64{0.20, 0.10, 0.10, 0.10})

	// Long-term potential reads off the base-weighted total, not the
	// romance-weighted one.
	baseTotal := p.weighted(0.25, 0.20, generalPillarWeights, nil, nil)

	res := p.result(total)
	out := LoverResult{
		Result:             res,
		RomanceScore:       romance,
		PassionScore:       passion,
		EmotionalBondScore: emotional,
		CommunicationScore: communication,
		LoveLanguage:       p.loveLanguage(),
		RomanticDynamics:   p.romanticDynamics(),
		PassionIndicators:  p.passionIndicators(),
		LongTermPotential:  longTermPotential(baseTotal, emotional, communication),
	}
	out.Advice = loverAdvice(out.LoveLanguage, out.RomanticDynamics, out.PassionIndicators, res.Challenges)
	return out
}

func (p *pair) romanceScore() float64 {
	score := 50.0
	if sixHarmonyBetween(p.a.Day.Branch, p.b.Day.Branch) {
		score += 30
	}
	if hasRomanceBranch(p.a) && hasRomanceBranch(p.b) {
		score += 20
	}
	if p.distA.Count(alphabet.Fire) > 0 && p.distB.Count(alphabet.Fire) > 0 {
		score += 10
	}
	return clampScore(score)
}

func (p *pair) passionScore() float64 {
	score := 50.0
	switch p.god {
	case analysis.HurtingOfficer, analysis.RobWealth, analysis.IndirectPower, analysis.IndirectWealth:
		score += 20
	}
	// A single clash reads as spark, several as instability.
	switch n := p.branchClashCount(); {
	case n == 1:
		score += 15
	case n >= 2:
		score -= 10
	}
	return clampScore(score)
}

func (p *pair) emotionalBondScore() float64 {
	score := 50.0
	if p.distA.Count(alphabet.Water) > 0 && p.distB.Count(alphabet.Water) > 0 {
		score += 15
	}
	switch p.god {
	case analysis.DirectSeal, analysis.DirectPower, analysis.DirectWealth, analysis.EatingGod:
		score += 20
	}
	if p.a.Month.Branch == p.b.Month.Branch {
		score += 15
	}
	return clampScore(score)
}

func (p *pair) communicationScore() float64 {
	score := 50.0
	if p.distA.Count(alphabet.Wood) > 0 && p.distB.Count(alphabet.Wood) > 0 {
		score += 15
	}
	switch p.god {
	case analysis.EatingGod, analysis.HurtingOfficer:
		score += 20
	}
	score += float64(p.stemCombinationCount()) * 10
	return clampScore(score)
}

var loveLanguages = [5]string{
	alphabet.Wood:  "봉사와 헌신의 사랑",
	alphabet.Fire:  "열정과 표현의 사랑",
	alphabet.Earth: "안정과 신뢰의 사랑",
	alphabet.Metal: "품격과 존중의 사랑",
	alphabet.Water: "지혜와 소통의 사랑",
}

func (p *pair) loveLanguage() string {
	d1, d2 := p.distA.Dominant(), p.distB.Dominant()
	if d1 == d2 {
		return fmt.Sprintf("공통된 %s", loveLanguages[d1])
	}
	return fmt.Sprintf("%s과 %s의 조화", loveLanguages[d1], loveLanguages[d2])
}

func (p *pair) romanticDynamics() []string {
	var out []string
	day := p.pillarRel[models.PosDay]
	if day.Stem == relation.Combination {
		out = append(out, "천간합으로 자연스러운 끌림")
	}
	if day.Branch == relation.SixHarmony {
		out = append(out, "육합으로 깊은 애정")
	}
	if p.pillarRel[models.PosMonth].Branch == relation.SixHarmony {
		out = append(out, "감정적 교감이 깊음")
	}
	if p.pillarRel[models.PosHour].Stem == relation.Combination {
		out = append(out, "미래를 함께 꿈꾸는 관계")
	}
	return capList(out, 5)
}

func (p *pair) passionIndicators() []string {
	var out []string
	if p.distA.Count(alphabet.Fire) > 2 || p.distB.Count(alphabet.Fire) > 2 {
		out = append(out, "강한 화 기운으로 열정적")
	}
	if hasRomanceBranch(p.a) || hasRomanceBranch(p.b) {
		out = append(out, "도화살로 매력적인 관계")
	}
	for _, pos := range []models.Position{models.PosDay, models.PosHour} {
		if p.pillarRel[pos].Branch == relation.Clash {
			out = append(out, fmt.Sprintf("%s 충으로 역동적인 관계", pos))
			break
		}
	}
	return capList(out, 4)
}

func longTermPotential(total, emotional, communication float64) string {
	avg := (total + emotional + communication) / 3
	switch {
	case avg >= 75:
		return "매우 높음 - 결혼까지 이어질 가능성"
	case avg >= 65:
		return "높음 - 진지한 관계로 발전 가능"
	case avg >= 55:
		return "보통 - 노력하면 지속 가능"
	case avg >= 45:
		return "도전적 - 상호 노력 필요"
	default:
		return "낮음 - 단기적 관계 가능성"
	}
}

func loverAdvice(loveLanguage string, dynamics, indicators, challenges []string) []string {
	advice := []string{
		fmt.Sprintf("서로의 사랑 표현 방식 (%s)을 이해하고 존중하세요", loveLanguage),
	}

	joinedDynamics := strings.Join(dynamics, " ")
	if strings.Contains(joinedDynamics, "천간합") {
		advice = append(advice, "자연스러운 끌림을 즐기되 일상의 노력도 잊지 마세요")
	}
	if strings.Contains(joinedDynamics, "육합") {
		advice = append(advice, "깊은 애정을 바탕으로 신뢰를 쌓아가세요")
	}

	joinedIndicators := strings.Join(indicators, " ")
	if strings.Contains(joinedIndicators, "화 기운") {
		advice = append(advice, "열정을 유지하되 서로를 태우지 않도록 조절하세요")
	}
	if strings.Contains(joinedIndicators, "도화살") {
		advice = append(advice, "매력적인 관계이니 서로에게만 집중하세요")
	}

	if strings.Contains(strings.Join(challenges, " "), "충") {
		advice = append(advice, "충돌 시 감정보다 이성적 대화로 해결하세요")
	}

	advice = append(advice,
		"정기적인 데이트로 로맨스를 유지하세요",
		"서로의 개인 시간도 존중해주세요",
		"작은 서프라이즈로 일상에 활력을 더하세요")

	return capList(advice, 7)
}
