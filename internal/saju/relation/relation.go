// Package relation implements the shared combination/clash/harmony matcher
// over stems and branches. Every analyzer above the chart goes through this
// package so relation semantics never diverge.
package relation

import (
	"SajuCore/internal/saju/alphabet"
)

// Kind identifies a relation between two symbols.
type Kind int

const (
	None Kind = iota
	Combination // stem pair merging into a new element
	SixHarmony
	TriadPartial // 2 of a 3-branch harmony group
	TriadFull    // all 3 of a harmony group
	Clash
	Punishment
	Harm
	Destruction
)

func (k Kind) String() string {
	switch k {
	case Combination:
		return "combination"
	case SixHarmony:
		return "six_harmony"
	case TriadPartial:
		return "triad_partial"
	case TriadFull:
		return "triad_full"
	case Clash:
		return "clash"
	case Punishment:
		return "punishment"
	case Harm:
		return "harm"
	case Destruction:
		return "destruction"
	default:
		return "none"
	}
}

type stemPair struct{ a, b alphabet.Stem }

type branchPair struct{ a, b alphabet.Branch }

// 천간합: the five stem combinations and the element each produces.
var stemCombinations = map[stemPair]alphabet.Element{
	{0, 5}: alphabet.Earth, // 갑기합토
	{1, 6}: alphabet.Metal, // 을경합금
	{2, 7}: alphabet.Water, // 병신합수
	{3, 8}: alphabet.Wood,  // 정임합목
	{4, 9}: alphabet.Fire,  // 무계합화
}

// 천간충 pairs, stored in source order; lookup is symmetric.
var stemClashes = map[stemPair]struct{}{
	{0, 6}: {}, {1, 7}: {}, {2, 8}: {}, {3, 9}: {}, {4, 0}: {},
	{5, 1}: {}, {6, 2}: {}, {7, 3}: {}, {8, 4}: {}, {9, 5}: {},
}

// 육합: the six branch harmonies and their produced elements.
var sixHarmonies = map[branchPair]alphabet.Element{
	{0, 1}:  alphabet.Earth, // 자축합토
	{2, 11}: alphabet.Wood,  // 인해합목
	{3, 10}: alphabet.Fire,  // 묘술합화
	{4, 9}:  alphabet.Metal, // 진유합금
	{5, 8}:  alphabet.Water, // 사신합수
	{6, 7}:  alphabet.Earth, // 오미합토
}

// 충: the six branch clashes, opposite positions on the cycle.
var branchClashes = map[branchPair]struct{}{
	{0, 6}: {}, {1, 7}: {}, {2, 8}: {}, {3, 9}: {}, {4, 10}: {}, {5, 11}: {},
}

// 형 groups: two triples plus the 자묘 pair.
var punishmentGroups = [][]alphabet.Branch{
	{2, 5, 8},  // 인사신
	{1, 10, 7}, // 축술미
	{0, 3},     // 자묘
}

// 해 pairs.
var harms = map[branchPair]struct{}{
	{0, 7}: {}, {1, 6}: {}, {2, 5}: {}, {3, 4}: {}, {8, 11}: {}, {9, 10}: {},
}

// 파 pairs.
var destructions = map[branchPair]struct{}{
	{0, 9}: {}, {6, 3}: {}, {5, 8}: {}, {11, 2}: {},
}

// Triad is one 삼합 three-branch harmony group.
type Triad struct {
	Members [3]alphabet.Branch
	Element alphabet.Element
}

var triads = []Triad{
	{[3]alphabet.Branch{2, 6, 10}, alphabet.Fire},  // 인오술
	{[3]alphabet.Branch{5, 9, 1}, alphabet.Metal},  // 사유축
	{[3]alphabet.Branch{8, 0, 4}, alphabet.Water},  // 신자진
	{[3]alphabet.Branch{11, 3, 7}, alphabet.Wood},  // 해묘미
}

func stemPairIn(set map[stemPair]struct{}, a, b alphabet.Stem) bool {
	if _, ok := set[stemPair{a, b}]; ok {
		return true
	}
	_, ok := set[stemPair{b, a}]
	return ok
}

func branchPairIn(set map[branchPair]struct{}, a, b alphabet.Branch) bool {
	if _, ok := set[branchPair{a, b}]; ok {
		return true
	}
	_, ok := set[branchPair{b, a}]
	return ok
}

// StemCombination returns the element a stem pair merges into.
func StemCombination(a, b alphabet.Stem) (alphabet.Element, bool) {
	if e, ok := stemCombinations[stemPair{a, b}]; ok {
		return e, true
	}
	e, ok := stemCombinations[stemPair{b, a}]
	return e, ok
}

// Stems classifies a stem pair: combination, clash or none.
func Stems(a, b alphabet.Stem) Kind {
	if _, ok := StemCombination(a, b); ok {
		return Combination
	}
	if stemPairIn(stemClashes, a, b) {
		return Clash
	}
	return None
}

// SixHarmonyElement returns the element a branch six-harmony produces.
func SixHarmonyElement(a, b alphabet.Branch) (alphabet.Element, bool) {
	if e, ok := sixHarmonies[branchPair{a, b}]; ok {
		return e, true
	}
	e, ok := sixHarmonies[branchPair{b, a}]
	return e, ok
}

// InClash reports a 충 pair.
func InClash(a, b alphabet.Branch) bool { return branchPairIn(branchClashes, a, b) }

// InHarm reports a 해 pair.
func InHarm(a, b alphabet.Branch) bool { return branchPairIn(harms, a, b) }

// InDestruction reports a 파 pair.
func InDestruction(a, b alphabet.Branch) bool { return branchPairIn(destructions, a, b) }

// 자형: the four branches that punish themselves when doubled.
var selfPunishments = [alphabet.NumBranches]bool{
	4: true, 6: true, 9: true, 11: true, // 진 오 유 해
}

// SelfPunishment reports whether a doubled branch counts as 형.
func SelfPunishment(b alphabet.Branch) bool {
	return b.Valid() && selfPunishments[b]
}

// InPunishment reports whether both branches fall in one 형 group.
func InPunishment(a, b alphabet.Branch) bool {
	if a == b {
		return false
	}
	for _, g := range punishmentGroups {
		var foundA, foundB bool
		for _, m := range g {
			if m == a {
				foundA = true
			}
			if m == b {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// Branches classifies a branch pair. Checks run in strength order
// (six harmony, clash, punishment, harm, destruction) and the first match
// wins; a partial triad is reported only when nothing stronger applies.
func Branches(a, b alphabet.Branch) Kind {
	if _, ok := SixHarmonyElement(a, b); ok {
		return SixHarmony
	}
	if branchPairIn(branchClashes, a, b) {
		return Clash
	}
	if InPunishment(a, b) {
		return Punishment
	}
	if branchPairIn(harms, a, b) {
		return Harm
	}
	if branchPairIn(destructions, a, b) {
		return Destruction
	}
	if a != b {
		for _, t := range triads {
			var foundA, foundB bool
			for _, m := range t.Members {
				if m == a {
					foundA = true
				}
				if m == b {
					foundB = true
				}
			}
			if foundA && foundB {
				return TriadPartial
			}
		}
	}
	return None
}

// TriadOf returns the 삼합 group a branch belongs to. Every branch is a
// member of exactly one group.
func TriadOf(b alphabet.Branch) (Triad, bool) {
	for _, t := range triads {
		for _, m := range t.Members {
			if m == b {
				return t, true
			}
		}
	}
	return Triad{}, false
}

// TriadMatch is a 삼합 group detected inside a branch multiset.
type TriadMatch struct {
	Triad   Triad
	Matched int // distinct group members present, 2 or 3
	Full    bool
}

// TriadsIn scans a branch list for partial (2 of 3) and full (3 of 3)
// harmony groups.
func TriadsIn(branches []alphabet.Branch) []TriadMatch {
	var out []TriadMatch
	for _, t := range triads {
		n := 0
		for _, m := range t.Members {
			for _, b := range branches {
				if b == m {
					n++
					break
				}
			}
		}
		if n >= 2 {
			out = append(out, TriadMatch{Triad: t, Matched: n, Full: n == 3})
		}
	}
	return out
}
