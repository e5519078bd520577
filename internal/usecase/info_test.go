package usecase

import (
	"testing"

	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/classify"
)

func TestInfoLookupKnownTypes(t *testing.T) {
	c := NewInfoCatalogue()
	for _, typ := range []string{"stems", "branches", "elements", "ten_gods", "patterns", "shinshal"} {
		if c.Lookup(typ) == nil {
			t.Errorf("lookup(%q) = nil", typ)
		}
	}
	if c.Lookup("zodiac") != nil {
		t.Error("unknown type should return nil")
	}
}

func TestInfoStems(t *testing.T) {
	stems := NewInfoCatalogue().Stems()
	if len(stems) != alphabet.NumStems {
		t.Fatalf("got %d stems", len(stems))
	}
	if stems[0].Name != "갑" || stems[0].Element != "목" || stems[0].Polarity != "yang" {
		t.Errorf("first stem = %+v", stems[0])
	}
	if stems[9].Name != "계" || stems[9].Element != "수" || stems[9].Polarity != "yin" {
		t.Errorf("last stem = %+v", stems[9])
	}
}

func TestInfoBranches(t *testing.T) {
	branches := NewInfoCatalogue().Branches()
	if len(branches) != alphabet.NumBranches {
		t.Fatalf("got %d branches", len(branches))
	}
	if branches[0].Name != "자" || branches[0].Animal != "쥐" {
		t.Errorf("first branch = %+v", branches[0])
	}
	for _, b := range branches {
		if len(b.HiddenStems) == 0 {
			t.Errorf("branch %s has no hidden stems", b.Name)
		}
	}
}

func TestInfoElementsCycle(t *testing.T) {
	elems := NewInfoCatalogue().Elements()
	if len(elems) != 5 {
		t.Fatalf("got %d elements", len(elems))
	}
	// 목 generates 화, controls 토
	if elems[0].Symbol != "목" || elems[0].Generates != "화" || elems[0].Controls != "토" {
		t.Errorf("wood entry = %+v", elems[0])
	}
}

func TestInfoTenGods(t *testing.T) {
	gods := NewInfoCatalogue().TenGods()
	if len(gods) != analysis.NumTenGods {
		t.Fatalf("got %d ten gods", len(gods))
	}
	for _, g := range gods {
		if g.Name == "" || g.Description == "" || g.Category == "" {
			t.Errorf("incomplete entry: %+v", g)
		}
	}
}

func TestInfoPatterns(t *testing.T) {
	patterns := NewInfoCatalogue().Patterns()
	if len(patterns) != int(classify.NumPatterns) {
		t.Fatalf("got %d patterns", len(patterns))
	}
	for _, p := range patterns {
		if p.Info == nil || p.Info.Name == "" {
			t.Errorf("pattern %s missing info", p.Name)
		}
	}
}

func TestInfoStarsHavePolarity(t *testing.T) {
	for _, s := range NewInfoCatalogue().Stars() {
		if s.Polarity != "auspicious" && s.Polarity != "inauspicious" {
			t.Errorf("star %s polarity %q", s.Name, s.Polarity)
		}
		if s.Description == "" {
			t.Errorf("star %s has no description", s.Name)
		}
	}
}
