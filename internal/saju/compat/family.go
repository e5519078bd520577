package compat

import (
	"fmt"
	"strings"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/relation"
)

// FamilyRelation selects which family dynamic to score.
type FamilyRelation string

const (
	ParentChild FamilyRelation = "부모자녀"
	Sibling     FamilyRelation = "형제자매"
)

// FamilyResult extends the base result with family-bond sub-scores.
// Parent-child scoring is directional: chart a is read as the parent.
type FamilyResult struct {
	Result

	Relation FamilyRelation `json:"relation"`

	HarmonyScore       float64 `json:"harmony_score"`
	SupportScore       float64 `json:"support_score"`
	UnderstandingScore float64 `json:"understanding_score"`
	GenerationalScore  float64 `json:"generational_score"`

	FamilyDynamics  string   `json:"family_dynamics"`
	BondingFactors  []string `json:"bonding_factors"`
	HealingNeeded   []string `json:"healing_needed"`
}

var (
	parentChildPillarWeights = [4]float64{0.10, 0.05, 0.10, 0.15}
	siblingPillarWeights     = [4]float64{0.10, 0.20, 0.10, 0.05}
)

// Family scores two charts as family members. For ParentChild the first
// chart is the parent and the second the child.
func Family(a, b *models.Chart, rel FamilyRelation) FamilyResult {
	if rel != Sibling {
		rel = ParentChild
	}
	p := newPair(a, b)

	harmony := p.familyHarmonyScore(rel)
	support := p.familySupportScore(rel)
	understanding := p.familyUnderstandingScore()
	generational := p.generationalScore(rel)

	weights := parentChildPillarWeights
	if rel == Sibling {
		weights = siblingPillarWeights
	}
	total := p.weighted(0.10, 0.10, weights,
		[]float64{harmony, support, understanding, generational},
		[]float64{0.15, 0.10, 0.10, 0.05})

	res := p.result(total)
	out := FamilyResult{
		Result:             res,
		Relation:           rel,
		HarmonyScore:       harmony,
		SupportScore:       support,
		UnderstandingScore: understanding,
		GenerationalScore:  generational,
		FamilyDynamics:     p.familyDynamics(rel),
		BondingFactors:     p.bondingFactors(rel),
		HealingNeeded:      p.healingNeeded(rel, res.Challenges),
	}
	out.Advice = familyAdvice(rel, out.FamilyDynamics, out.BondingFactors, out.HealingNeeded)
	return out
}

func (p *pair) familyHarmonyScore(rel FamilyRelation) float64 {
	score := 50.0
	if rel == ParentChild {
		// Parent's hour pillar against the child's day pillar.
		if sixHarmonyBetween(p.a.Hour.Branch, p.b.Day.Branch) {
			score += 30
		}
	} else if p.a.Month.Branch == p.b.Month.Branch {
		score += 20
	}
	for _, e := range alphabet.Elements() {
		if p.distA.Count(e) > 0 && p.distB.Count(e) > 0 {
			score += 5
		}
	}
	return clampScore(score)
}

func (p *pair) familySupportScore(rel FamilyRelation) float64 {
	score := 50.0
	switch p.god {
	case analysis.DirectSeal, analysis.IndirectSeal, analysis.DirectPower:
		score += 25
	}
	if rel == ParentChild {
		domA, domB := p.distA.Dominant(), p.distB.Dominant()
		if alphabet.Generates(domA) == domB {
			score += 20
		}
	}
	return clampScore(score)
}

func (p *pair) familyUnderstandingScore() float64 {
	score := 50.0
	if p.distA.Count(alphabet.Water) > 0 && p.distB.Count(alphabet.Water) > 0 {
		score += 20
	}
	score += float64(p.stemCombinationCount()) * 10
	return clampScore(score)
}

func (p *pair) generationalScore(rel FamilyRelation) float64 {
	score := 50.0
	if rel == ParentChild {
		ta, okA := relation.TriadOf(p.a.Year.Branch)
		tb, okB := relation.TriadOf(p.b.Year.Branch)
		if okA && okB && ta.Element == tb.Element {
			score += 25
		}
	} else if p.a.Year.Branch == p.b.Year.Branch {
		score += 30
	}
	return clampScore(score)
}

var parentChildDynamics = map[analysis.TenGod]string{
	analysis.DirectSeal:    "자애로운 부모와 효성스러운 자녀",
	analysis.IndirectSeal:  "독특한 교육 방식의 부모",
	analysis.DirectPower:   "엄격하지만 사랑 깊은 관계",
	analysis.IndirectPower: "자유로운 교육 스타일",
	analysis.EatingGod:     "화목하고 즐거운 가족",
}

var siblingDynamics = map[analysis.TenGod]string{
	analysis.Companion:  "평등하고 협력적인 형제",
	analysis.RobWealth:  "경쟁적이지만 성장하는 관계",
	analysis.DirectSeal: "서로 돌보는 형제",
	analysis.EatingGod:  "즐겁고 유쾌한 형제",
}

func (p *pair) familyDynamics(rel FamilyRelation) string {
	m := parentChildDynamics
	if rel == Sibling {
		m = siblingDynamics
	}
	if s, ok := m[p.god]; ok {
		return s
	}
	return fmt.Sprintf("일반적인 %s 관계", rel)
}

func (p *pair) bondingFactors(rel FamilyRelation) []string {
	var out []string
	if p.elements.Generating > 15 {
		out = append(out, "자연스러운 오행 상생 관계")
	}
	if rel == ParentChild {
		if sixHarmonyBetween(p.a.Hour.Branch, p.b.Hour.Branch) {
			out = append(out, "부모의 시주와 자녀의 조화")
		}
	} else if sixHarmonyBetween(p.a.Month.Branch, p.b.Month.Branch) {
		out = append(out, "형제간 깊은 정서적 유대")
	}
	if p.pillarRel[models.PosDay].Stem == relation.Combination {
		out = append(out, "자연스러운 친밀감")
	}
	return capList(out, 4)
}

func (p *pair) healingNeeded(rel FamilyRelation, challenges []string) []string {
	var out []string
	joined := strings.Join(challenges, " ")
	if strings.Contains(joined, "충") {
		out = append(out, "세대 갈등 치유 필요")
	}
	if strings.Contains(joined, "형") {
		out = append(out, "과거 상처 치유 필요")
	}
	if rel == ParentChild {
		out = append(out, "세대 간 소통 개선")
	} else {
		out = append(out, "경쟁심 해소와 협력")
	}
	return capList(out, 4)
}

func familyAdvice(rel FamilyRelation, dynamics string, bonding, healing []string) []string {
	var advice []string
	if rel == ParentChild {
		advice = append(advice,
			"자녀의 개성을 인정하고 지지해주세요",
			"세대 차이를 이해하고 소통하세요")
	} else {
		advice = append(advice,
			"서로의 다름을 인정하고 존중하세요",
			"경쟁보다는 협력을 추구하세요")
	}
	advice = append(advice, fmt.Sprintf("%s의 특성을 이해하세요", dynamics))
	if len(bonding) > 0 {
		advice = append(advice, fmt.Sprintf("%s을 더욱 키워가세요", bonding[0]))
	}
	if len(healing) > 0 {
		advice = append(advice, fmt.Sprintf("%s에 관심을 기울이세요", healing[0]))
	}
	advice = append(advice,
		"정기적인 가족 시간을 가지세요",
		"서로에 대한 감사를 표현하세요")
	return capList(advice, 7)
}
