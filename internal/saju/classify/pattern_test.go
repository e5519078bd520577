package classify

import (
	"testing"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/calendar"
)

func testChart(t *testing.T) *models.Chart {
	t.Helper()
	c := calendar.NewCalculator(nil)
	chart, err := c.Calculate(calendar.BirthInput{
		Year: 1990, Month: 5, Day: 15, Time: "14:30",
		Gender: models.Male, Calendar: models.Solar,
	})
	if err != nil {
		t.Fatalf("build chart: %v", err)
	}
	return chart
}

// pillars builds a chart directly from stem/branch indices, year through
// hour.
func pillars(t *testing.T, sb ...int) *models.Chart {
	t.Helper()
	if len(sb) != 8 {
		t.Fatalf("pillars needs 8 indices, got %d", len(sb))
	}
	mk := func(s, b int) models.Pillar {
		return models.Pillar{Stem: alphabet.Stem(s), Branch: alphabet.Branch(b)}
	}
	return &models.Chart{
		Year:  mk(sb[0], sb[1]),
		Month: mk(sb[2], sb[3]),
		Day:   mk(sb[4], sb[5]),
		Hour:  mk(sb[6], sb[7]),
	}
}

func TestIdentifyPatternRegular(t *testing.T) {
	chart := testChart(t) // 경오 신사 을미 계미

	p, err := IdentifyPattern(chart)
	if err != nil {
		t.Fatalf("IdentifyPattern: %v", err)
	}
	// Month stem 신 is 편관 against the 을 day master and the god is
	// present, so the regular tier decides.
	if p != PatIndirectPower {
		t.Fatalf("pattern = %v, want 편관격", p)
	}
	if p.Category() != CategoryRegular {
		t.Errorf("category = %v, want 정격", p.Category())
	}
}

func TestAnalyzePatternStrength(t *testing.T) {
	reading, err := AnalyzePattern(testChart(t))
	if err != nil {
		t.Fatalf("AnalyzePattern: %v", err)
	}
	// Base 0.5 plus 0.1 for the single 편관; no element reaches 4 tags.
	if reading.Strength < 0.59 || reading.Strength > 0.61 {
		t.Errorf("strength = %v, want 0.6", reading.Strength)
	}
	if reading.Info == nil || reading.Info.Name != "편관격 (偏官格)" {
		t.Errorf("info = %+v, want 편관격 tables", reading.Info)
	}
}

func TestIdentifyPatternFireDominance(t *testing.T) {
	// 6 of 8 tags are fire: the special tier must claim the chart before
	// the irregular or regular tiers see it.
	chart := pillars(t,
		2, 6, // 병오
		3, 5, // 정사
		2, 2, // 병인
		0, 6, // 갑오
	)
	p, err := IdentifyPattern(chart)
	if err != nil {
		t.Fatalf("IdentifyPattern: %v", err)
	}
	if p != PatBlazing {
		t.Fatalf("pattern = %v, want 염상격", p)
	}
	if p.Category() != CategorySpecial {
		t.Errorf("category = %v, want 특수격", p.Category())
	}
}

func TestIdentifyPatternFireEarth(t *testing.T) {
	// 3 fire and 4 earth tags satisfy the 화기토양격 rule, which runs
	// before the single-element dominance checks.
	chart := pillars(t,
		2, 10, // 병술
		4, 6, // 무오
		5, 7, // 기미
		2, 2, // 병인
	)
	p, err := IdentifyPattern(chart)
	if err != nil {
		t.Fatalf("IdentifyPattern: %v", err)
	}
	if p != PatFireEarth {
		t.Fatalf("pattern = %v, want 화기토양격", p)
	}
}

func TestIdentifyPatternYangBlade(t *testing.T) {
	// Day master 갑 with 묘 in the month seat and no special-tier match.
	chart := pillars(t,
		0, 0, // 갑자
		3, 3, // 정묘
		0, 8, // 갑신
		8, 8, // 임신
	)
	p, err := IdentifyPattern(chart)
	if err != nil {
		t.Fatalf("IdentifyPattern: %v", err)
	}
	if p != PatYangBlade {
		t.Fatalf("pattern = %v, want 양인격", p)
	}
	if p.Category() != CategoryIrregular {
		t.Errorf("category = %v, want 변격", p.Category())
	}
}

func TestIdentifyPatternNilChart(t *testing.T) {
	if _, err := IdentifyPattern(nil); err == nil {
		t.Fatal("expected error for nil chart")
	}
}

func TestPatternInfoCoversAllPatterns(t *testing.T) {
	for p := Pattern(0); p < NumPatterns; p++ {
		info := p.Info()
		if info.Name == "" || info.Description == "" {
			t.Errorf("%v: empty info", p)
		}
		if len(info.Characteristics) == 0 || len(info.SuccessFactors) == 0 {
			t.Errorf("%v: missing characteristics or success factors", p)
		}
	}
}

func TestYongshinWeakDayMaster(t *testing.T) {
	r, err := Yongshin(testChart(t))
	if err != nil {
		t.Fatalf("Yongshin: %v", err)
	}
	if r.Band != analysis.Weak {
		t.Fatalf("band = %v, want weak", r.Band)
	}
	// A weak wood master wants wood itself and the water that feeds it.
	want := []alphabet.Element{alphabet.Wood, alphabet.Water}
	if len(r.UsefulGods) != len(want) {
		t.Fatalf("useful gods = %v, want %v", r.UsefulGods, want)
	}
	for i, e := range want {
		if r.UsefulGods[i] != e {
			t.Fatalf("useful gods = %v, want %v", r.UsefulGods, want)
		}
	}
	// Metal suppresses it and fire drains it.
	wantHarm := []alphabet.Element{alphabet.Metal, alphabet.Fire}
	if len(r.HarmfulGods) != len(wantHarm) {
		t.Fatalf("harmful gods = %v, want %v", r.HarmfulGods, wantHarm)
	}
	for i, e := range wantHarm {
		if r.HarmfulGods[i] != e {
			t.Fatalf("harmful gods = %v, want %v", r.HarmfulGods, wantHarm)
		}
	}
	if len(r.Recommendations) == 0 {
		t.Error("expected recommendations")
	}
}

func TestYongshinVeryStrongAcceptsOwnElement(t *testing.T) {
	gods := usefulGods(alphabet.Wood, analysis.VeryStrong, &analysis.ElementDistribution{})
	want := []alphabet.Element{alphabet.Fire, alphabet.Earth, alphabet.Wood, alphabet.Water}
	if len(gods) != len(want) {
		t.Fatalf("useful gods = %v, want %v", gods, want)
	}
	for i, e := range want {
		if gods[i] != e {
			t.Fatalf("useful gods = %v, want %v", gods, want)
		}
	}
}

func TestYongshinBalancedTargetsLackingElement(t *testing.T) {
	dist := analysis.ElementDistribution{}
	dist.Counts = [5]float64{3, 2, 1, 1, 1}
	dist.Percentages = [5]float64{37.5, 25, 12.5, 12.5, 12.5}
	dist.Total = 8

	gods := usefulGods(alphabet.Wood, analysis.Balanced, &dist)
	if len(gods) != 1 || gods[0] != alphabet.Earth {
		t.Errorf("useful gods = %v, want [earth]", gods)
	}
	// 37.5% wood exceeds the 35% excess threshold.
	harm := harmfulGods(alphabet.Wood, analysis.Balanced, &dist)
	if len(harm) != 1 || harm[0] != alphabet.Wood {
		t.Errorf("harmful gods = %v, want [wood]", harm)
	}
}

func TestYongshinDeterministic(t *testing.T) {
	chart := testChart(t)
	first, err := Yongshin(chart)
	if err != nil {
		t.Fatalf("Yongshin: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Yongshin(chart)
		if err != nil {
			t.Fatalf("Yongshin: %v", err)
		}
		if len(again.UsefulGods) != len(first.UsefulGods) || again.Band != first.Band {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}
