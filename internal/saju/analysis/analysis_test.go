package analysis

import (
	"errors"
	"testing"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
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

func TestTenGodSelfIsCompanion(t *testing.T) {
	for s := alphabet.Stem(0); s < alphabet.NumStems; s++ {
		if got := TenGodOf(s, s); got != Companion {
			t.Errorf("TenGodOf(%v,%v) = %v, want 비견", s, s, got)
		}
	}
}

func TestTenGodKnownPairs(t *testing.T) {
	cases := []struct {
		day, other alphabet.Stem
		want       TenGod
	}{
		{0, 5, DirectWealth},   // 갑-기: 정재
		{0, 6, IndirectPower},  // 갑-경: 편관
		{0, 9, DirectSeal},     // 갑-계: 정인
		{1, 2, HurtingOfficer}, // 을-병: 상관
		{4, 6, EatingGod},      // 무-경: 식신
		{8, 9, RobWealth},      // 임-계: 겁재
		{9, 2, DirectWealth},   // 계-병: 정재
		{6, 0, IndirectWealth}, // 경-갑: 편재
	}
	for _, c := range cases {
		if got := TenGodOf(c.day, c.other); got != c.want {
			t.Errorf("TenGodOf(%v,%v) = %v, want %v", c.day, c.other, got, c.want)
		}
	}
}

func TestTenGodTotal(t *testing.T) {
	for day := alphabet.Stem(0); day < alphabet.NumStems; day++ {
		for other := alphabet.Stem(0); other < alphabet.NumStems; other++ {
			g := TenGodOf(day, other)
			if g < 0 || int(g) >= NumTenGods {
				t.Fatalf("TenGodOf(%v,%v) out of range: %d", day, other, g)
			}
			s := RelationStrength(day, other)
			if s < 0 || s > 1 {
				t.Fatalf("RelationStrength(%v,%v) = %v", day, other, s)
			}
		}
	}
}

func TestTenGodCategories(t *testing.T) {
	cases := map[TenGod]Category{
		Companion:      CatSelf,
		RobWealth:      CatSelf,
		EatingGod:      CatOutput,
		HurtingOfficer: CatOutput,
		IndirectWealth: CatWealth,
		DirectWealth:   CatWealth,
		IndirectPower:  CatPower,
		DirectPower:    CatPower,
		IndirectSeal:   CatResource,
		DirectSeal:     CatResource,
	}
	for g, want := range cases {
		if g.Category() != want {
			t.Errorf("%v category = %v, want %v", g, g.Category(), want)
		}
	}
}

func TestTenGodsReading(t *testing.T) {
	chart := testChart(t) // 경오 신사 을미 계미
	r, err := TenGods(chart)
	if err != nil {
		t.Fatal(err)
	}
	if r.DayMaster != 1 {
		t.Fatalf("day master = %v, want 을", r.DayMaster)
	}
	if len(r.Relations) != 3 {
		t.Fatalf("relation count = %d, want 3", len(r.Relations))
	}
	// 을 day against 경 year stem: metal controls wood, opposite polarity
	// from 을 so 정관.
	if r.Relations[0].God != DirectPower {
		t.Errorf("year stem god = %v, want 정관", r.Relations[0].God)
	}
	for _, e := range r.Relations {
		if e.Strength <= 0 || e.Strength > 1 {
			t.Errorf("%v strength = %v", e.Position, e.Strength)
		}
	}
}

func TestTenGodsMissingDayMaster(t *testing.T) {
	if _, err := TenGods(nil); err == nil {
		t.Fatal("nil chart should fail")
	}
	bad := &models.Chart{Day: models.Pillar{Stem: -1}}
	var mde *MissingDayMasterError
	if _, err := TenGods(bad); !errors.As(err, &mde) {
		t.Fatalf("got %v, want MissingDayMasterError", err)
	}
	if _, err := DayMasterStrength(bad); !errors.As(err, &mde) {
		t.Fatalf("strength: got %v, want MissingDayMasterError", err)
	}
}

func TestDistribution(t *testing.T) {
	chart := testChart(t)
	d := Distribution(chart)
	want := map[alphabet.Element]float64{
		alphabet.Wood:  1,
		alphabet.Fire:  2,
		alphabet.Earth: 2,
		alphabet.Metal: 2,
		alphabet.Water: 1,
	}
	for e, n := range want {
		if d.Count(e) != n {
			t.Errorf("%v count = %v, want %v", e, d.Count(e), n)
		}
	}
	if d.Total != 8 {
		t.Errorf("total = %v, want 8", d.Total)
	}
	if d.Dominant() != alphabet.Fire {
		t.Errorf("dominant = %v, want fire (tie broken by order)", d.Dominant())
	}
	if d.Lacking() != alphabet.Wood {
		t.Errorf("lacking = %v, want wood", d.Lacking())
	}

	withHidden := DistributionWithHidden(chart)
	if withHidden.Total <= d.Total {
		t.Error("hidden stems should add weight")
	}
}

func TestBalance(t *testing.T) {
	d := Distribution(testChart(t))
	b := Balance(d)
	if b.Score != 70 {
		t.Errorf("balance score = %v, want 70", b.Score)
	}
	if b.Status != BalanceGood {
		t.Errorf("status = %v, want good", b.Status)
	}
	if b.Recommendation != b.Lacking {
		t.Error("recommendation should reinforce the lacking element")
	}
}

func TestDayMasterStrength(t *testing.T) {
	chart := testChart(t)
	s, err := DayMasterStrength(chart)
	if err != nil {
		t.Fatal(err)
	}
	if s.DayElement != alphabet.Wood {
		t.Fatalf("day element = %v, want wood", s.DayElement)
	}
	if s.Season != Summer {
		t.Errorf("season = %v, want summer", s.Season)
	}
	// A 을 day master in a fire-heavy summer chart sits in the weak band.
	if s.Band != Weak {
		t.Errorf("band = %v (ratio %v), want weak", s.Band, s.Ratio)
	}
	if s.Ratio < 0.2 || s.Ratio >= 0.4 {
		t.Errorf("ratio %v outside weak band", s.Ratio)
	}
	if s.Support <= 0 || s.Drain <= 0 {
		t.Errorf("support/drain = %v/%v", s.Support, s.Drain)
	}

	// Referential purity.
	again, _ := DayMasterStrength(chart)
	if *again != *s {
		t.Error("repeated strength analysis diverged")
	}
}

func TestStrengthBands(t *testing.T) {
	cases := map[float64]StrengthBand{
		0.9:  VeryStrong,
		0.8:  VeryStrong,
		0.7:  Strong,
		0.5:  Balanced,
		0.3:  Weak,
		0.1:  VeryWeak,
	}
	for ratio, want := range cases {
		if got := bandOf(ratio); got != want {
			t.Errorf("bandOf(%v) = %v, want %v", ratio, got, want)
		}
	}
}

func TestSeasonalMultipliers(t *testing.T) {
	// Each season's own element is at peak strength.
	peaks := map[Season]alphabet.Element{
		Spring: alphabet.Wood,
		Summer: alphabet.Fire,
		Autumn: alphabet.Metal,
		Winter: alphabet.Water,
	}
	for season, elem := range peaks {
		if got := SeasonalMultiplier(season, elem); got != 1.5 {
			t.Errorf("%v %v multiplier = %v, want 1.5", season, elem, got)
		}
	}
	if SeasonOf(5) != Summer || SeasonOf(1) != WinterEarth {
		t.Error("branch season mapping broken")
	}
}
