// Package alphabet holds the static stem/branch tables and the five-element
// cycle every other saju package is built on. Tables are plain package-level
// values, initialized at link time and never mutated.
package alphabet

// Element is one of the five elements.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
	numElements
)

var elementNames = [...]string{"wood", "fire", "earth", "metal", "water"}

var elementSymbols = [...]string{"목", "화", "토", "금", "수"}

func (e Element) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return "unknown"
	}
	return elementNames[e]
}

// Symbol returns the Korean symbol for the element.
func (e Element) Symbol() string {
	if e < 0 || int(e) >= len(elementSymbols) {
		return ""
	}
	return elementSymbols[e]
}

// Elements enumerates the five elements in canonical order.
func Elements() [5]Element {
	return [5]Element{Wood, Fire, Earth, Metal, Water}
}

// Polarity is yang or yin.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yang {
		return "yang"
	}
	return "yin"
}

// Stem is one of the 10 heavenly stems, indexed 0..9 in cycle order.
type Stem int

// Branch is one of the 12 earthly branches, indexed 0..11 in cycle order.
type Branch int

const (
	NumStems    = 10
	NumBranches = 12
	// CycleLen is the length of the sexagenary cycle.
	CycleLen = 60
)

var stemSymbols = [NumStems]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

var stemElements = [NumStems]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}

var branchSymbols = [NumBranches]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

var branchElements = [NumBranches]Element{Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Metal, Earth, Water}

// HiddenStem is a stem stored inside a branch with the weight it carries in
// strength and yongshin accounting. Consumers apply the weight explicitly.
type HiddenStem struct {
	Stem   Stem
	Weight float64
}

// hiddenStems lists the stems hidden in each branch, principal stem first.
var hiddenStems = [NumBranches][]HiddenStem{
	0:  {{9, 0.5}},                     // 자: 계
	1:  {{5, 0.5}, {7, 0.5}, {9, 0.5}}, // 축: 기 신 계
	2:  {{0, 0.5}, {2, 0.5}, {4, 0.5}}, // 인: 갑 병 무
	3:  {{1, 0.5}},                     // 묘: 을
	4:  {{4, 0.5}, {1, 0.5}, {9, 0.5}}, // 진: 무 을 계
	5:  {{2, 0.5}, {4, 0.5}, {6, 0.5}}, // 사: 병 무 경
	6:  {{3, 0.5}, {5, 0.5}},           // 오: 정 기
	7:  {{5, 0.5}, {3, 0.5}, {1, 0.5}}, // 미: 기 정 을
	8:  {{6, 0.5}, {8, 0.5}, {4, 0.5}}, // 신: 경 임 무
	9:  {{7, 0.5}},                     // 유: 신
	10: {{4, 0.5}, {7, 0.5}, {3, 0.5}}, // 술: 무 신 정
	11: {{8, 0.5}, {0, 0.5}},           // 해: 임 갑
}

// Valid reports whether the stem index is in range.
func (s Stem) Valid() bool { return s >= 0 && s < NumStems }

func (s Stem) String() string {
	if !s.Valid() {
		return "?"
	}
	return stemSymbols[s]
}

// Element returns the stem's element.
func (s Stem) Element() Element { return stemElements[s] }

// Polarity returns yang for even indices, yin for odd.
func (s Stem) Polarity() Polarity {
	if s%2 == 0 {
		return Yang
	}
	return Yin
}

// StemBySymbol resolves a Korean stem symbol to its index.
func StemBySymbol(sym string) (Stem, bool) {
	for i, s := range stemSymbols {
		if s == sym {
			return Stem(i), true
		}
	}
	return 0, false
}

// Valid reports whether the branch index is in range.
func (b Branch) Valid() bool { return b >= 0 && b < NumBranches }

func (b Branch) String() string {
	if !b.Valid() {
		return "?"
	}
	return branchSymbols[b]
}

// Element returns the branch's element.
func (b Branch) Element() Element { return branchElements[b] }

// Polarity returns yang for even indices, yin for odd.
func (b Branch) Polarity() Polarity {
	if b%2 == 0 {
		return Yang
	}
	return Yin
}

// HiddenStems returns the stems hidden in the branch, principal first.
// The returned slice is shared; callers must not modify it.
func (b Branch) HiddenStems() []HiddenStem {
	if !b.Valid() {
		return nil
	}
	return hiddenStems[b]
}

// BranchBySymbol resolves a Korean branch symbol to its index.
func BranchBySymbol(sym string) (Branch, bool) {
	for i, s := range branchSymbols {
		if s == sym {
			return Branch(i), true
		}
	}
	return 0, false
}

// Relation is the directed relation between two elements.
type Relation int

const (
	RelNone Relation = iota
	RelSame
	RelGenerates    // e1 feeds e2
	RelGeneratedBy  // e2 feeds e1
	RelControls     // e1 suppresses e2
	RelControlledBy // e2 suppresses e1
)

func (r Relation) String() string {
	switch r {
	case RelSame:
		return "same"
	case RelGenerates:
		return "generates"
	case RelGeneratedBy:
		return "generated_by"
	case RelControls:
		return "controls"
	case RelControlledBy:
		return "controlled_by"
	default:
		return "none"
	}
}

// Generates returns the element e feeds. The generate chain is the 5-cycle
// wood→fire→earth→metal→water→wood.
func Generates(e Element) Element { return (e + 1) % numElements }

// GeneratedBy returns the element that feeds e.
func GeneratedBy(e Element) Element { return (e + numElements - 1) % numElements }

// Controls returns the element e suppresses, the cycle
// wood→earth→water→fire→metal→wood.
func Controls(e Element) Element { return (e + 2) % numElements }

// ControlledBy returns the element that suppresses e.
func ControlledBy(e Element) Element { return (e + numElements - 2) % numElements }

// ElementRelation classifies the e1→e2 relation. Total over all 25 pairs.
func ElementRelation(e1, e2 Element) Relation {
	switch {
	case e1 == e2:
		return RelSame
	case Generates(e1) == e2:
		return RelGenerates
	case GeneratedBy(e1) == e2:
		return RelGeneratedBy
	case Controls(e1) == e2:
		return RelControls
	case ControlledBy(e1) == e2:
		return RelControlledBy
	default:
		return RelNone
	}
}

// SexagenaryOrdinal returns the unique i in [0,60) with i mod 10 == stem and
// i mod 12 == branch, or -1 when the pair violates sexagenary parity.
func SexagenaryOrdinal(s Stem, b Branch) int {
	if s%2 != Stem(b%2) {
		return -1
	}
	for i := 0; i < CycleLen; i++ {
		if Stem(i%NumStems) == s && Branch(i%NumBranches) == b {
			return i
		}
	}
	return -1
}
