package compat

import (
	"strings"
	"testing"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/relation"
)

// 경오년 신사월 을미일 계미시, wood day master.
func chartA() *models.Chart {
	return &models.Chart{
		Year:   models.Pillar{Stem: 6, Branch: 6},
		Month:  models.Pillar{Stem: 7, Branch: 5},
		Day:    models.Pillar{Stem: 1, Branch: 7},
		Hour:   models.Pillar{Stem: 9, Branch: 7},
		Gender: models.Male,
	}
}

// 갑자년 병인월 경술일 무자시, metal day master.
func chartB() *models.Chart {
	return &models.Chart{
		Year:   models.Pillar{Stem: 0, Branch: 0},
		Month:  models.Pillar{Stem: 2, Branch: 2},
		Day:    models.Pillar{Stem: 6, Branch: 10},
		Hour:   models.Pillar{Stem: 4, Branch: 0},
		Gender: models.Female,
	}
}

func wantScore(t *testing.T, name string, got, want float64) {
	t.Helper()
	if diff := got - want; diff > 0.011 || diff < -0.011 {
		t.Errorf("%s = %.2f, want %.2f", name, got, want)
	}
}

func TestGeneralScoring(t *testing.T) {
	res := General(chartA(), chartB())

	wantScore(t, "TotalScore", res.TotalScore, 62.5)
	if res.Level != LevelAverage {
		t.Errorf("Level = %q, want %q", res.Level, LevelAverage)
	}
	wantScore(t, "ElementScore", res.ElementScore, 58)
	wantScore(t, "TenGodsScore", res.TenGodsScore, 85) // includes male-female bonus

	wantPillars := [4]float64{5, 60, 60, 65}
	for i, want := range wantPillars {
		wantScore(t, models.Position(i).String()+" pillar", res.PillarScores[i], want)
	}
}

func TestGeneralElementAnalysis(t *testing.T) {
	res := General(chartA(), chartB())

	wantScore(t, "Complementary", res.Elements.Complementary, 0)
	wantScore(t, "Harmony", res.Elements.Harmony, 38)
	wantScore(t, "Generating", res.Elements.Generating, 20)
	// Dominant wood of the second chart feeds the first chart's fire.
	if res.Elements.Relationship != "목이(가) 화을(를) 생함" {
		t.Errorf("Relationship = %q", res.Elements.Relationship)
	}
}

func TestGeneralTenGods(t *testing.T) {
	res := General(chartA(), chartB())

	// 경 metal controls the 을 wood day master, opposite polarity.
	if res.TenGods.Relation != analysis.DirectPower {
		t.Errorf("Relation = %v, want %v", res.TenGods.Relation, analysis.DirectPower)
	}
	if res.TenGods.HarmonyCount != 3 {
		t.Errorf("HarmonyCount = %d, want 3", res.TenGods.HarmonyCount)
	}
	if res.TenGods.ConflictCount != 1 {
		t.Errorf("ConflictCount = %d, want 1", res.TenGods.ConflictCount)
	}
}

func TestGeneralPillarRelations(t *testing.T) {
	res := General(chartA(), chartB())

	want := [4]PillarRelation{
		{Stem: relation.Clash, Branch: relation.Clash},             // 경갑, 오자
		{Stem: relation.Combination, Branch: relation.Punishment},  // 병신, 인사
		{Stem: relation.Combination, Branch: relation.Punishment},  // 을경, 술미
		{Stem: relation.Combination, Branch: relation.Harm},        // 무계, 자미
	}
	if res.Pillars != want {
		t.Errorf("Pillars = %v, want %v", res.Pillars, want)
	}
}

func TestGeneralSpecialAndWarnings(t *testing.T) {
	res := General(chartA(), chartB())

	// The eight branches together hold 인오술 in full.
	if len(res.SpecialCombinations) != 1 || res.SpecialCombinations[0] != "삼합 화국 형성" {
		t.Errorf("SpecialCombinations = %v", res.SpecialCombinations)
	}
	if len(res.WarningSigns) != 1 || !strings.Contains(res.WarningSigns[0], "다중형") {
		t.Errorf("WarningSigns = %v", res.WarningSigns)
	}
	if len(res.Strengths) != 4 {
		t.Errorf("Strengths = %v, want 4 entries", res.Strengths)
	}
	if len(res.Challenges) != 1 {
		t.Errorf("Challenges = %v, want 1 entry", res.Challenges)
	}
}

func TestGeneralAsymmetric(t *testing.T) {
	ab := General(chartA(), chartB())
	ba := General(chartB(), chartA())

	// Reversing the pair flips the gender adjustment and the ten-god
	// direction, so the totals must differ.
	wantScore(t, "TotalScore a,b", ab.TotalScore, 62.5)
	wantScore(t, "TotalScore b,a", ba.TotalScore, 62.25)
	if ba.TenGods.Relation != analysis.DirectWealth {
		t.Errorf("reversed Relation = %v, want %v", ba.TenGods.Relation, analysis.DirectWealth)
	}
}

func TestGeneralSameGenderAdjustment(t *testing.T) {
	b := chartB()
	b.Gender = models.Male
	res := General(chartA(), b)

	// Same-gender pairing boosts the day pillar and docks the total.
	wantScore(t, "day pillar", res.PillarScores[models.PosDay], 68)
	wantScore(t, "TotalScore", res.TotalScore, 58.5)
}

func TestLoverScoring(t *testing.T) {
	res := Lover(chartA(), chartB())

	wantScore(t, "RomanceScore", res.RomanceScore, 80)
	wantScore(t, "PassionScore", res.PassionScore, 65)
	wantScore(t, "EmotionalBondScore", res.EmotionalBondScore, 85)
	wantScore(t, "CommunicationScore", res.CommunicationScore, 95)
	wantScore(t, "TotalScore", res.TotalScore, 73.3)
	if res.Level != LevelGood {
		t.Errorf("Level = %q, want %q", res.Level, LevelGood)
	}
	if res.LongTermPotential != "매우 높음 - 결혼까지 이어질 가능성" {
		t.Errorf("LongTermPotential = %q", res.LongTermPotential)
	}
	if len(res.PassionIndicators) != 1 || !strings.Contains(res.PassionIndicators[0], "도화살") {
		t.Errorf("PassionIndicators = %v", res.PassionIndicators)
	}
}

func TestMarriageScoring(t *testing.T) {
	res := Marriage(chartA(), chartB())

	wantScore(t, "StabilityScore", res.StabilityScore, 85)
	wantScore(t, "FinancialHarmonyScore", res.FinancialHarmonyScore, 65)
	wantScore(t, "FamilyBuildingScore", res.FamilyBuildingScore, 65)
	wantScore(t, "ConflictResolutionScore", res.ConflictResolutionScore, 35)
	wantScore(t, "TotalScore", res.TotalScore, 63.55)
	if res.MarriageType != "전통적이고 안정적인 결혼" {
		t.Errorf("MarriageType = %q", res.MarriageType)
	}
	if len(res.HouseholdDynamics) != 1 || res.HouseholdDynamics[0] != "양가 관계에서 중재 역할 필요" {
		t.Errorf("HouseholdDynamics = %v", res.HouseholdDynamics)
	}
	if res.ParentingCompatibility != "보통 - 서로 협력하면 좋은 부모 가능" {
		t.Errorf("ParentingCompatibility = %q", res.ParentingCompatibility)
	}
	if len(res.LongevityFactors) != 2 {
		t.Errorf("LongevityFactors = %v, want 2 entries", res.LongevityFactors)
	}
}

func TestBusinessScoring(t *testing.T) {
	res := Business(chartA(), chartB())

	wantScore(t, "WealthCreationScore", res.WealthCreationScore, 80)
	wantScore(t, "CooperationScore", res.CooperationScore, 95)
	wantScore(t, "RiskManagementScore", res.RiskManagementScore, 75)
	wantScore(t, "InnovationScore", res.InnovationScore, 80)
	wantScore(t, "TotalScore", res.TotalScore, 75.55)
	if res.Level != LevelVeryGood {
		t.Errorf("Level = %q, want %q", res.Level, LevelVeryGood)
	}
	if res.BusinessSynergy != "체계적 관리 시너지" {
		t.Errorf("BusinessSynergy = %q", res.BusinessSynergy)
	}
	if res.RoleA != "마케팅/홍보" || res.RoleB != "CEO/전략기획" {
		t.Errorf("roles = %q / %q", res.RoleA, res.RoleB)
	}
	if res.RecommendedRoles != "역할 분담 명확화 권장" {
		t.Errorf("RecommendedRoles = %q", res.RecommendedRoles)
	}
	want := []string{"법적 분쟁 위험", "시장 변화 대응력 점검 필요"}
	if len(res.RiskAreas) != len(want) || res.RiskAreas[0] != want[0] || res.RiskAreas[1] != want[1] {
		t.Errorf("RiskAreas = %v, want %v", res.RiskAreas, want)
	}
}

func TestBusinessComplementarySynergy(t *testing.T) {
	// 갑인/병인/갑인/병인 carries no metal, 경신/경신/경신/경신 nothing but
	// metal; one-sided elements read as complementary synergy.
	a := &models.Chart{
		Year:  models.Pillar{Stem: 0, Branch: 2},
		Month: models.Pillar{Stem: 2, Branch: 2},
		Day:   models.Pillar{Stem: 0, Branch: 2},
		Hour:  models.Pillar{Stem: 2, Branch: 2},
	}
	b := &models.Chart{
		Year:  models.Pillar{Stem: 6, Branch: 8},
		Month: models.Pillar{Stem: 6, Branch: 8},
		Day:   models.Pillar{Stem: 6, Branch: 8},
		Hour:  models.Pillar{Stem: 6, Branch: 8},
	}
	res := Business(a, b)
	if res.BusinessSynergy != "상호 보완적 시너지 - 서로의 약점을 보완" {
		t.Errorf("BusinessSynergy = %q", res.BusinessSynergy)
	}
}

func TestFamilyParentChild(t *testing.T) {
	res := Family(chartA(), chartB(), ParentChild)

	wantScore(t, "HarmonyScore", res.HarmonyScore, 75)
	wantScore(t, "SupportScore", res.SupportScore, 75)
	wantScore(t, "UnderstandingScore", res.UnderstandingScore, 100)
	wantScore(t, "GenerationalScore", res.GenerationalScore, 50)
	wantScore(t, "TotalScore", res.TotalScore, 67.8)
	if res.FamilyDynamics != "엄격하지만 사랑 깊은 관계" {
		t.Errorf("FamilyDynamics = %q", res.FamilyDynamics)
	}
}

func TestFamilySibling(t *testing.T) {
	res := Family(chartA(), chartB(), Sibling)

	wantScore(t, "TotalScore", res.TotalScore, 70.3)
	if res.FamilyDynamics != "일반적인 형제자매 관계" {
		t.Errorf("FamilyDynamics = %q", res.FamilyDynamics)
	}
	if res.HealingNeeded[len(res.HealingNeeded)-1] != "경쟁심 해소와 협력" {
		t.Errorf("HealingNeeded = %v", res.HealingNeeded)
	}
}

func TestFamilyUnknownRelationDefaultsToParentChild(t *testing.T) {
	res := Family(chartA(), chartB(), FamilyRelation("사촌"))
	if res.Relation != ParentChild {
		t.Errorf("Relation = %q, want %q", res.Relation, ParentChild)
	}
}

func TestLevelBands(t *testing.T) {
	cases := []struct {
		score float64
		want  Level
	}{
		{90, LevelExcellent},
		{80, LevelVeryGood},
		{70, LevelGood},
		{55, LevelAverage},
		{45, LevelChallenging},
		{35, LevelDifficult},
		{10, LevelVeryDifficult},
	}
	for _, c := range cases {
		if got := levelFor(c.score); got != c.want {
			t.Errorf("levelFor(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestAdviceCapped(t *testing.T) {
	for name, advice := range map[string][]string{
		"general":  General(chartA(), chartB()).Advice,
		"lover":    Lover(chartA(), chartB()).Advice,
		"marriage": Marriage(chartA(), chartB()).Advice,
		"business": Business(chartA(), chartB()).Advice,
		"family":   Family(chartA(), chartB(), Sibling).Advice,
	} {
		if len(advice) == 0 || len(advice) > 7 {
			t.Errorf("%s advice has %d entries", name, len(advice))
		}
	}
}

func TestDeterministic(t *testing.T) {
	first := Marriage(chartA(), chartB())
	for i := 0; i < 3; i++ {
		if again := Marriage(chartA(), chartB()); again.TotalScore != first.TotalScore {
			t.Fatalf("run %d: TotalScore %v != %v", i, again.TotalScore, first.TotalScore)
		}
	}
}
