package relation

import (
	"testing"

	"SajuCore/internal/saju/alphabet"
)

func TestStemCombinations(t *testing.T) {
	// 갑기합토, looked up in both orders.
	if e, ok := StemCombination(0, 5); !ok || e != alphabet.Earth {
		t.Fatalf("갑기 combination = (%v,%v)", e, ok)
	}
	if e, ok := StemCombination(5, 0); !ok || e != alphabet.Earth {
		t.Fatalf("기갑 combination = (%v,%v)", e, ok)
	}
	if Stems(0, 5) != Combination {
		t.Error("갑기 should classify as combination")
	}
	if Stems(0, 6) != Clash {
		t.Error("갑경 should classify as clash")
	}
	if Stems(0, 1) != None {
		t.Error("갑을 should classify as none")
	}
}

func TestBranchPairs(t *testing.T) {
	cases := []struct {
		a, b alphabet.Branch
		want Kind
	}{
		{0, 1, SixHarmony},   // 자축
		{0, 6, Clash},        // 자오
		{1, 10, Punishment},  // 축술
		{0, 3, Punishment},   // 자묘
		{3, 4, Harm},         // 묘진
		{0, 9, Destruction},  // 자유
		{2, 6, TriadPartial}, // 인오, 2 of 인오술
		{0, 2, None},
	}
	for _, c := range cases {
		if got := Branches(c.a, c.b); got != c.want {
			t.Errorf("Branches(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
		// Symmetric lookup.
		if got := Branches(c.b, c.a); got != c.want {
			t.Errorf("Branches(%v,%v) = %v, want %v", c.b, c.a, got, c.want)
		}
	}
}

func TestNoHarmonyClashOverlap(t *testing.T) {
	// Within one tier no pair is both six_harmony and clash.
	for a := alphabet.Branch(0); a < alphabet.NumBranches; a++ {
		for b := alphabet.Branch(0); b < alphabet.NumBranches; b++ {
			_, harmony := SixHarmonyElement(a, b)
			clash := branchPairIn(branchClashes, a, b)
			if harmony && clash {
				t.Fatalf("(%v,%v) is both six_harmony and clash", a, b)
			}
		}
	}
}

func TestTriadsIn(t *testing.T) {
	// 인오술 full fire triad.
	matches := TriadsIn([]alphabet.Branch{2, 6, 10, 0})
	var fire *TriadMatch
	for i := range matches {
		if matches[i].Triad.Element == alphabet.Fire {
			fire = &matches[i]
		}
	}
	if fire == nil || !fire.Full || fire.Matched != 3 {
		t.Fatalf("인오술 not detected as full triad: %+v", matches)
	}

	// 신자 partial water triad.
	matches = TriadsIn([]alphabet.Branch{8, 0})
	if len(matches) != 1 || matches[0].Full || matches[0].Matched != 2 {
		t.Fatalf("신자 partial triad = %+v", matches)
	}

	if got := TriadsIn([]alphabet.Branch{0, 1, 2}); len(got) != 0 {
		t.Fatalf("unexpected triads: %+v", got)
	}
}

func TestPunishmentGroups(t *testing.T) {
	if !InPunishment(2, 5) || !InPunishment(5, 8) || !InPunishment(2, 8) {
		t.Error("인사신 pairs should all be punishments")
	}
	if InPunishment(2, 2) {
		t.Error("a branch does not punish itself")
	}
	if InPunishment(0, 7) {
		t.Error("자미 is a harm, not a punishment")
	}
}
