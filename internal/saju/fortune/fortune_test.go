package fortune

import (
	"testing"
	"time"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/calendar"
	"SajuCore/internal/saju/relation"
)

func testChart(t *testing.T, gender models.Gender) *models.Chart {
	t.Helper()
	c := calendar.NewCalculator(nil)
	chart, err := c.Calculate(calendar.BirthInput{
		Year: 1990, Month: 5, Day: 15, Time: "14:30",
		Gender: gender, Calendar: models.Solar,
	})
	if err != nil {
		t.Fatalf("build chart: %v", err)
	}
	return chart
}

func TestStartForwardMaleYangYear(t *testing.T) {
	chart := testChart(t, models.Male) // 경오년: yang stem

	info := Start(chart)
	if info.Direction != Forward {
		t.Fatalf("direction = %v, want forward", info.Direction)
	}
	// Born the 15th: 5 days to the 20th boundary, round(5/3) = 2.
	if info.Days != 5 {
		t.Errorf("days = %d, want 5", info.Days)
	}
	if info.StartAge != 2 {
		t.Errorf("start age = %d, want 2", info.StartAge)
	}
}

func TestStartReverseFemaleYangYear(t *testing.T) {
	chart := testChart(t, models.Female)

	info := Start(chart)
	if info.Direction != Reverse {
		t.Fatalf("direction = %v, want reverse", info.Direction)
	}
	// Reverse from the 15th: 10 days since the 5th, round(10/3) = 3.
	if info.StartAge != 3 {
		t.Errorf("start age = %d, want 3", info.StartAge)
	}
}

func TestStartAgeFloor(t *testing.T) {
	c := calendar.NewCalculator(nil)
	chart, err := c.Calculate(calendar.BirthInput{
		Year: 1990, Month: 5, Day: 5, Time: "14:30",
		Gender: models.Male, Calendar: models.Solar,
	})
	if err != nil {
		t.Fatalf("build chart: %v", err)
	}
	// Born on the boundary day itself: zero days clamps to 1, and the
	// start age never drops below 1.
	if info := Start(chart); info.StartAge != 1 {
		t.Errorf("start age = %d, want 1", info.StartAge)
	}
}

func TestPeriodsForward(t *testing.T) {
	chart := testChart(t, models.Male) // month pillar 신사

	periods := Periods(chart)
	if len(periods) != NumPeriods {
		t.Fatalf("got %d periods, want %d", len(periods), NumPeriods)
	}

	// First period advances the month pillar one step: 신사 -> 임오.
	first := periods[0]
	if got := first.Name(); got != "임오" {
		t.Errorf("first period = %s, want 임오", got)
	}
	if first.StartAge != 2 || first.EndAge != 11 {
		t.Errorf("first span = %d-%d, want 2-11", first.StartAge, first.EndAge)
	}
	if first.Element != alphabet.Water {
		t.Errorf("first element = %v, want water", first.Element)
	}
	if got := periods[2].Name(); got != "갑신" {
		t.Errorf("third period = %s, want 갑신", got)
	}
	if got := periods[7].Name(); got != "기축" {
		t.Errorf("last period = %s, want 기축", got)
	}
}

func TestPeriodsReverse(t *testing.T) {
	chart := testChart(t, models.Female)

	periods := Periods(chart)
	// Reverse steps the month pillar back: 신사 -> 경진.
	if got := periods[0].Name(); got != "경진" {
		t.Errorf("first period = %s, want 경진", got)
	}
	if periods[0].StartAge != 3 {
		t.Errorf("start age = %d, want 3", periods[0].StartAge)
	}
}

func TestPeriodsContiguous(t *testing.T) {
	for _, g := range []models.Gender{models.Male, models.Female} {
		periods := Periods(testChart(t, g))
		for i := 0; i < len(periods)-1; i++ {
			if periods[i].EndAge+1 != periods[i+1].StartAge {
				t.Fatalf("gap between period %d (ends %d) and %d (starts %d)",
					i, periods[i].EndAge, i+1, periods[i+1].StartAge)
			}
		}
	}
}

func TestPeriodsPreserveSexagenaryParity(t *testing.T) {
	for _, p := range Periods(testChart(t, models.Male)) {
		if p.Pillar.Ordinal() < 0 {
			t.Errorf("period %s violates stem/branch parity", p.Name())
		}
	}
}

func TestCurrentPeriod(t *testing.T) {
	chart := testChart(t, models.Male)

	at := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	p, ok := Current(chart, at)
	if !ok {
		t.Fatal("no current period at age 36")
	}
	if p.StartAge != 32 || p.EndAge != 41 {
		t.Errorf("span = %d-%d, want 32-41", p.StartAge, p.EndAge)
	}
	if got := p.Name(); got != "을유" {
		t.Errorf("current period = %s, want 을유", got)
	}

	// Before the first period starts there is no current fortune.
	if _, ok := Current(chart, time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC)); ok {
		t.Error("expected no period before the start age")
	}
}

func TestAnalyzeTransition(t *testing.T) {
	chart := testChart(t, models.Male)
	periods := Periods(chart)

	// 임오 -> 계미: both water stems, same element.
	tr := AnalyzeTransition(periods[0], periods[1])
	if tr.Relationship != "비화 (같은 오행)" {
		t.Errorf("relationship = %q, want 비화", tr.Relationship)
	}
	if tr.Advice == "" {
		t.Error("empty transition advice")
	}

	// 계미 -> 갑신: water feeds wood.
	tr = AnalyzeTransition(periods[1], periods[2])
	if tr.Relationship != "상생 (생성하는 관계)" {
		t.Errorf("relationship = %q, want 상생", tr.Relationship)
	}
}

func TestYearlyFortunePillar(t *testing.T) {
	chart := testChart(t, models.Male)

	// 2024 is 갑진년 against the 1984 갑자 epoch.
	y := Yearly(2024, chart)
	if got := y.Pillar.Name(); got != "갑진" {
		t.Fatalf("2024 pillar = %s, want 갑진", got)
	}
	if y.Element != alphabet.Wood {
		t.Errorf("element = %v, want wood", y.Element)
	}
	// 진 forms no relation with 오사미미: neutral year.
	if y.Relations.Score != 0 {
		t.Errorf("score = %d, want 0", y.Relations.Score)
	}
	if len(y.Advice) != 1 {
		t.Errorf("advice lines = %d, want the single neutral line", len(y.Advice))
	}

	// Pre-epoch years normalize the same cycle: 1984-60 = 1924 is 갑자.
	if got := Yearly(1924, chart).Pillar.Name(); got != "갑자" {
		t.Errorf("1924 pillar = %s, want 갑자", got)
	}
}

func TestYearlyFortuneScoring(t *testing.T) {
	chart := testChart(t, models.Male) // branches 오 사 미 미

	// 2026 병오년: 오미 harmony twice (+4), 오오 self punishment (-2).
	y := Yearly(2026, chart)
	if got := y.Pillar.Name(); got != "병오" {
		t.Fatalf("2026 pillar = %s, want 병오", got)
	}
	if y.Relations.Score != 2 {
		t.Fatalf("score = %d, want 2", y.Relations.Score)
	}

	var harmonies, punishments int
	for _, h := range y.Relations.Hits {
		switch h.Kind {
		case relation.SixHarmony:
			harmonies++
		case relation.Punishment:
			punishments++
		}
	}
	if harmonies != 2 {
		t.Errorf("six-harmony hits = %d, want 2", harmonies)
	}
	if punishments != 1 {
		t.Errorf("punishment hits = %d, want 1", punishments)
	}
	if len(y.Advice) != 2 {
		t.Errorf("advice lines = %d, want harmony and punishment lines", len(y.Advice))
	}
}

func TestScoreClamp(t *testing.T) {
	// Four 미 branches against fortune branch 축: clash and punishment both
	// fire per branch, far beyond the floor.
	mk := models.Pillar{Stem: 3, Branch: 7} // 정미
	chart := &models.Chart{Year: mk, Month: mk, Day: mk, Hour: mk}

	rel := scoreBranch(1, chart)
	if rel.Score != -10 {
		t.Errorf("score = %d, want clamp at -10", rel.Score)
	}
}

func TestTriadScoreCap(t *testing.T) {
	// 인오오인 against fortune branch 술: four triad matches cap the bonus
	// at +6 and the full 인오술 group is present.
	chart := &models.Chart{
		Year:  models.Pillar{Stem: 0, Branch: 2}, // 갑인
		Month: models.Pillar{Stem: 2, Branch: 6}, // 병오
		Day:   models.Pillar{Stem: 6, Branch: 6}, // 경오
		Hour:  models.Pillar{Stem: 0, Branch: 2}, // 갑인
	}

	rel := scoreBranch(10, chart)
	var triad *Hit
	for i := range rel.Hits {
		if rel.Hits[i].Kind == relation.TriadFull {
			triad = &rel.Hits[i]
		}
	}
	if triad == nil {
		t.Fatal("no full triad hit for 술 against 인오오인")
	}
	if triad.Score != 6 {
		t.Errorf("triad score = %d, want cap at 6", triad.Score)
	}
}

func TestMonthlyFortunePillar(t *testing.T) {
	chart := testChart(t, models.Male)

	// 갑진년 May: month stems run from 병인, so month 5 is 경오.
	m := Monthly(2024, 5, chart)
	if got := m.Pillar.Name(); got != "경오" {
		t.Fatalf("2024-05 pillar = %s, want 경오", got)
	}
	if m.Element != alphabet.Metal {
		t.Errorf("element = %v, want metal", m.Element)
	}
	if m.Relations.Score != 2 {
		t.Errorf("score = %d, want 2", m.Relations.Score)
	}
	if m.Interpretation == "" {
		t.Error("empty interpretation")
	}
}

func TestDailyFortuneEpoch(t *testing.T) {
	chart := testChart(t, models.Male)

	d := Daily(time.Date(1984, 1, 1, 0, 0, 0, 0, time.UTC), chart)
	if got := d.Pillar.Name(); got != "갑자" {
		t.Fatalf("epoch day pillar = %s, want 갑자", got)
	}
	// 자오 clash (-3) plus 자미 harm twice (-2).
	if d.Relations.Score != -5 {
		t.Errorf("score = %d, want -5", d.Relations.Score)
	}

	next := Daily(time.Date(1984, 1, 2, 0, 0, 0, 0, time.UTC), chart)
	if got := next.Pillar.Name(); got != "을축" {
		t.Errorf("next day pillar = %s, want 을축", got)
	}

	// Pre-epoch dates walk the cycle backwards.
	prev := Daily(time.Date(1983, 12, 31, 0, 0, 0, 0, time.UTC), chart)
	if got := prev.Pillar.Name(); got != "계해" {
		t.Errorf("previous day pillar = %s, want 계해", got)
	}
}

func TestDailyLuckyHours(t *testing.T) {
	chart := testChart(t, models.Male)

	d := Daily(time.Date(1984, 1, 1, 0, 0, 0, 0, time.UTC), chart)
	if len(d.LuckyHours) != 3 {
		t.Fatalf("lucky hours = %d, want top 3", len(d.LuckyHours))
	}
	// 유시 scores highest for this chart: 사유 triad support.
	best := d.LuckyHours[0]
	if best.Time != "17-19" {
		t.Errorf("best hour = %s, want 17-19", best.Time)
	}
	if best.Score != 4 {
		t.Errorf("best score = %d, want 4", best.Score)
	}
	if got := best.Pillar.Name(); got != "계유" {
		t.Errorf("best hour pillar = %s, want 계유", got)
	}
	for _, lh := range d.LuckyHours {
		if lh.Score <= 0 {
			t.Errorf("lucky hour %s carries non-positive score %d", lh.Time, lh.Score)
		}
	}
}

func TestPillarInterpretationCatalogue(t *testing.T) {
	pi, ok := Interpretation(models.Pillar{Stem: 0, Branch: 0})
	if !ok {
		t.Fatal("갑자 missing from the interpretation catalogue")
	}
	if pi.Nature == "" || pi.Advice == "" {
		t.Error("incomplete 갑자 entry")
	}
	if _, ok := Interpretation(models.Pillar{Stem: 2, Branch: 2}); ok {
		t.Error("병인 should not be catalogued yet")
	}
}

func TestFortuneDeterministic(t *testing.T) {
	chart := testChart(t, models.Male)
	a := Periods(chart)
	b := Periods(chart)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("period %d differs between runs", i)
		}
	}
}
