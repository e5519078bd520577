package classify

import (
	"math"
	"testing"

	"SajuCore/internal/domain/models"
)

func findStar(matches []StarMatch, name string) *StarMatch {
	for i := range matches {
		if matches[i].Name == name {
			return &matches[i]
		}
	}
	return nil
}

func TestStarsKnownChart(t *testing.T) {
	// 경오 신사 을미 계미: a chart rich in month-seat stars.
	r := Stars(testChart(t))

	cases := []struct {
		name     string
		matches  []StarMatch
		pos      models.Position
		strength float64
	}{
		{"문창귀인", r.Auspicious, models.PosYear, 0.7}, // 을 day → 오
		{"월덕귀인", r.Auspicious, models.PosYear, 0.7}, // month 사 → 경 stem
		{"천덕귀인", r.Auspicious, models.PosMonth, 0.9},
		{"역마", r.Auspicious, models.PosMonth, 0.9}, // 미 day → 사
		{"홍염살", r.Auspicious, models.PosMonth, 0.9},
		{"금여", r.Auspicious, models.PosMonth, 0.9},
		{"태극귀인", r.Auspicious, models.PosYear, 0.7},
		{"천주귀인", r.Auspicious, models.PosYear, 0.7},
		{"지망", r.Inauspicious, models.PosMonth, 0.9},
		{"공망", r.Inauspicious, models.PosMonth, 0.9}, // 을미순 voids 진/사
		{"탕화살", r.Inauspicious, models.PosYear, 0.7},
	}
	for _, tc := range cases {
		m := findStar(tc.matches, tc.name)
		if m == nil {
			t.Errorf("%s: not matched", tc.name)
			continue
		}
		if len(m.Positions) != 1 || m.Positions[0] != tc.pos {
			t.Errorf("%s: positions = %v, want [%v]", tc.name, m.Positions, tc.pos)
		}
		if math.Abs(m.Strength-tc.strength) > 1e-9 {
			t.Errorf("%s: strength = %v, want %v", tc.name, m.Strength, tc.strength)
		}
	}

	// 을 day master never sees its 천을귀인 branches 자/신 here.
	if m := findStar(r.Auspicious, "천을귀인"); m != nil {
		t.Errorf("unexpected 천을귀인: %+v", m)
	}
	if m := findStar(r.Inauspicious, "양인"); m != nil {
		t.Errorf("unexpected 양인: %+v", m)
	}
}

func TestStarsBloodBladePairs(t *testing.T) {
	r := Stars(testChart(t))

	// 오→미 (year→day) and 사→오 (month→year) both chain.
	var blades []StarMatch
	for _, m := range r.Inauspicious {
		if m.Name == "혈인살" {
			blades = append(blades, m)
		}
	}
	if len(blades) != 2 {
		t.Fatalf("혈인살 matches = %d, want 2", len(blades))
	}
	// Two positions average 0.85, repeat boost 1.2 caps at 1.0.
	if blades[0].Strength != 1.0 {
		t.Errorf("strongest 혈인살 strength = %v, want 1.0", blades[0].Strength)
	}
}

func TestStarsSortedByStrength(t *testing.T) {
	r := Stars(testChart(t))
	for i := 1; i < len(r.Auspicious); i++ {
		if r.Auspicious[i].Strength > r.Auspicious[i-1].Strength {
			t.Fatalf("auspicious not sorted at %d: %v", i, r.Auspicious)
		}
	}
	for i := 1; i < len(r.Inauspicious); i++ {
		if r.Inauspicious[i].Strength > r.Inauspicious[i-1].Strength {
			t.Fatalf("inauspicious not sorted at %d: %v", i, r.Inauspicious)
		}
	}
}

func TestStarsPolaritySplit(t *testing.T) {
	r := Stars(testChart(t))
	for _, m := range r.Auspicious {
		if m.Polarity != Auspicious {
			t.Errorf("%s filed as auspicious with polarity %v", m.Name, m.Polarity)
		}
		if m.Mitigation != "" {
			t.Errorf("%s: auspicious star carries mitigation", m.Name)
		}
	}
	for _, m := range r.Inauspicious {
		if m.Polarity != Inauspicious {
			t.Errorf("%s filed as inauspicious with polarity %v", m.Name, m.Polarity)
		}
	}
}

func TestStarsYangBladeMonthBoost(t *testing.T) {
	// 갑 day master with the blade 묘 in the month seat.
	chart := pillars(t,
		0, 0, // 갑자
		3, 3, // 정묘
		0, 8, // 갑신
		8, 8, // 임신
	)
	r := Stars(chart)
	m := findStar(r.Inauspicious, "양인")
	if m == nil {
		t.Fatal("양인 not matched")
	}
	// Month weight 0.9 times the 1.15 month boost.
	if math.Abs(m.Strength-0.9*1.15) > 1e-9 {
		t.Errorf("양인 strength = %v, want %v", m.Strength, 0.9*1.15)
	}
}

func TestStarsThreeWonders(t *testing.T) {
	// Year/month/day stems 갑 무 경 form 천상삼기.
	chart := pillars(t,
		0, 0, // 갑자
		4, 4, // 무진
		6, 8, // 경신
		6, 4, // 경진
	)
	r := Stars(chart)
	m := findStar(r.Auspicious, "삼기귀인")
	if m == nil {
		t.Fatal("삼기귀인 not matched")
	}
	if m.Strength != 0.95 {
		t.Errorf("삼기귀인 strength = %v, want 0.95", m.Strength)
	}
	if len(m.Positions) != 3 {
		t.Errorf("삼기귀인 positions = %v, want year/month/day", m.Positions)
	}
}

func TestStarsEmptinessVoidBranches(t *testing.T) {
	// 갑자 day: the 갑자 decade voids 술/해, matched here in the year
	// seat.
	chart := pillars(t,
		2, 10, // 병술
		4, 6, // 무오
		0, 0, // 갑자
		0, 0, // 갑자
	)
	r := Stars(chart)
	m := findStar(r.Inauspicious, "공망")
	if m == nil {
		t.Fatal("공망 not matched")
	}
	if len(m.Positions) != 1 || m.Positions[0] != models.PosYear {
		t.Fatalf("공망 positions = %v, want [year]", m.Positions)
	}
	if math.Abs(m.Strength-0.7) > 1e-9 {
		t.Errorf("공망 strength = %v, want 0.7", m.Strength)
	}
}

func TestStarsDeterministic(t *testing.T) {
	chart := testChart(t)
	first := Stars(chart)
	for i := 0; i < 3; i++ {
		again := Stars(chart)
		if len(again.Auspicious) != len(first.Auspicious) ||
			len(again.Inauspicious) != len(first.Inauspicious) {
			t.Fatalf("run %d diverged", i)
		}
	}
}
