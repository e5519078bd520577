package compat

import (
	"fmt"
	"strings"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/relation"
)

// BusinessResult extends the base result with partnership sub-scores.
type BusinessResult struct {
	Result

	WealthCreationScore float64 `json:"wealth_creation_score"`
	CooperationScore    float64 `json:"cooperation_score"`
	RiskManagementScore float64 `json:"risk_management_score"`
	InnovationScore     float64 `json:"innovation_score"`

	BusinessSynergy    string   `json:"business_synergy"`
	RecommendedRoles   string   `json:"recommended_roles"`
	RoleA              string   `json:"role_a"`
	RoleB              string   `json:"role_b"`
	SuccessFactors     []string `json:"success_factors"`
	RiskAreas          []string `json:"risk_areas"`
}

var businessPillarWeights = [4]float64{0.05, 0.05, 0.10, 0.05}

// Business scores two charts as business partners, weighting wealth
// creation and cooperation over personal harmony.
func Business(a, b *models.Chart) BusinessResult {
	p := newPair(a, b)

	wealth := p.wealthCreationScore()
	cooperation := p.cooperationScore()
	risk := p.riskManagementScore()
	innovation := p.innovationScore()

	total := p.weighted(0.10, 0.10, businessPillarWeights,
		[]float64{wealth, cooperation, risk, innovation},
		[]float64{0.25, 0.15, 0.10, 0.05})

	res := p.result(total)
	roleA, roleB, recommendation := p.businessRoles()
	out := BusinessResult{
		Result:              res,
		WealthCreationScore: wealth,
		CooperationScore:    cooperation,
		RiskManagementScore: risk,
		InnovationScore:     innovation,
		BusinessSynergy:     p.businessSynergy(),
		RecommendedRoles:    recommendation,
		RoleA:               roleA,
		RoleB:               roleB,
		SuccessFactors:      p.successFactors(),
		RiskAreas:           p.riskAreas(res.WarningSigns),
	}
	out.Advice = businessAdvice(out.BusinessSynergy, out.RecommendedRoles, out.SuccessFactors, out.RiskAreas)
	return out
}

func (p *pair) wealthCreationScore() float64 {
	score := 50.0
	if p.distA.Count(alphabet.Metal) > 0 && p.distB.Count(alphabet.Metal) > 0 {
		score += 20
	}
	switch p.god {
	case analysis.DirectWealth, analysis.IndirectWealth:
		score += 25
	}
	if p.distA.Count(alphabet.Earth) > 0 && p.distB.Count(alphabet.Earth) > 0 {
		score += 10
	}
	return clampScore(score)
}

func (p *pair) cooperationScore() float64 {
	score := 50.0
	score += float64(p.stemCombinationCount()) * 15
	switch p.god {
	case analysis.Companion, analysis.RobWealth:
		score += 15
	}
	return clampScore(score)
}

func (p *pair) riskManagementScore() float64 {
	score := 50.0
	if p.distA.Count(alphabet.Water) > 0 || p.distB.Count(alphabet.Water) > 0 {
		score += 15
	}
	switch p.god {
	case analysis.DirectPower, analysis.DirectSeal:
		score += 20
	}
	score -= float64(p.branchClashCount()) * 10
	return clampScore(score)
}

func (p *pair) innovationScore() float64 {
	score := 50.0
	if p.distA.Count(alphabet.Fire) > 0 || p.distB.Count(alphabet.Fire) > 0 {
		score += 15
	}
	switch p.god {
	case analysis.HurtingOfficer, analysis.IndirectSeal:
		score += 20
	}
	if p.distA.Count(alphabet.Wood) > 0 || p.distB.Count(alphabet.Wood) > 0 {
		score += 15
	}
	return clampScore(score)
}

var synergyByGod = [analysis.NumTenGods]string{
	analysis.Companion:     "평등한 파트너십 시너지",
	analysis.EatingGod:     "창의적 생산 시너지",
	analysis.DirectWealth:  "안정적 수익 창출 시너지",
	analysis.IndirectWealth: "모험적 사업 확장 시너지",
	analysis.DirectPower:   "체계적 관리 시너지",
	analysis.IndirectPower: "혁신적 돌파 시너지",
}

func (p *pair) businessSynergy() string {
	for _, e := range alphabet.Elements() {
		a, b := p.distA.Count(e), p.distB.Count(e)
		if (a == 0 && b > 0) || (b == 0 && a > 0) {
			return "상호 보완적 시너지 - 서로의 약점을 보완"
		}
	}
	if s := synergyByGod[p.god]; s != "" {
		return s
	}
	return "균형잡힌 협력 시너지"
}

var roleByElement = [5]string{
	alphabet.Wood:  "CEO/전략기획",
	alphabet.Fire:  "마케팅/홍보",
	alphabet.Earth: "COO/운영관리",
	alphabet.Metal: "CFO/재무관리",
	alphabet.Water: "CTO/기술개발",
}

func (p *pair) businessRoles() (roleA, roleB, recommendation string) {
	domA := p.distA.Dominant()
	domB := p.distB.Dominant()
	roleA = roleByElement[domA]
	roleB = roleByElement[domB]
	if domA == domB {
		recommendation = "공동 대표 체제 권장"
	} else {
		recommendation = "역할 분담 명확화 권장"
	}
	return roleA, roleB, recommendation
}

func (p *pair) successFactors() []string {
	var out []string
	if p.elements.Generating > 15 {
		out = append(out, "오행 상생으로 시너지 효과")
	}
	if p.elements.Complementary > 20 {
		out = append(out, "상호 보완적 역량")
	}
	day := p.pillarRel[models.PosDay]
	if day.Stem == relation.Combination {
		out = append(out, "자연스러운 협력 관계")
	}
	if day.Branch == relation.SixHarmony {
		out = append(out, "신뢰 기반 파트너십")
	}
	return capList(out, 4)
}

func (p *pair) riskAreas(warnings []string) []string {
	var out []string
	joined := strings.Join(warnings, " ")
	if strings.Contains(joined, "충") {
		out = append(out, "의견 충돌 위험")
	}
	if strings.Contains(joined, "극함") {
		out = append(out, "권력 불균형 위험")
	}
	if strings.Contains(joined, "형") {
		out = append(out, "법적 분쟁 위험")
	}
	out = append(out, "시장 변화 대응력 점검 필요")
	return capList(out, 4)
}

func businessAdvice(synergy, roles string, successFactors, riskAreas []string) []string {
	advice := []string{
		fmt.Sprintf("%s을 적극 활용하세요", synergy),
		fmt.Sprintf("%s에 따라 역할을 정하세요", roles),
	}
	if len(successFactors) > 0 {
		advice = append(advice, fmt.Sprintf("%s을 파트너십의 기반으로 삼으세요", successFactors[0]))
	}
	if len(riskAreas) > 0 {
		advice = append(advice, fmt.Sprintf("%s에 미리 대비하세요", riskAreas[0]))
	}
	advice = append(advice,
		"명확한 계약서와 역할 분담 문서화",
		"정기적인 성과 리뷰와 전략 회의",
		"이익 분배 방식을 사전에 명확히 합의")
	return capList(advice, 7)
}
