package classify

import (
	"sort"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
)

// StarPolarity splits the named stars into the two traditional camps.
type StarPolarity int

const (
	Auspicious StarPolarity = iota
	Inauspicious
)

func (p StarPolarity) String() string {
	if p == Auspicious {
		return "auspicious"
	}
	return "inauspicious"
}

// StarMatch is one named star found in a chart.
type StarMatch struct {
	Name        string
	Polarity    StarPolarity
	Positions   []models.Position
	Strength    float64
	Description string
	Influence   string
	Mitigation  string // empty for auspicious stars
}

// StarReading holds every matched star, each camp sorted by descending
// strength.
type StarReading struct {
	Auspicious   []StarMatch
	Inauspicious []StarMatch
}

// positionWeight is the base strength a star draws from each pillar slot.
var positionWeight = [4]float64{0.7, 0.9, 1.0, 0.8}

// starStrength averages the positional weights, boosts repeats by 1.2 and
// applies the star's own multiplier, capped at 1.0.
func starStrength(positions []models.Position, mult float64) float64 {
	if len(positions) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range positions {
		sum += positionWeight[p]
	}
	s := sum / float64(len(positions))
	if len(positions) > 1 {
		s *= 1.2
	}
	s *= mult
	if s > 1.0 {
		s = 1.0
	}
	return s
}

// branchTriadGroup assigns each branch to its triad family:
// 0 신자진(수), 1 인오술(화), 2 사유축(금), 3 해묘미(목).
var branchTriadGroup = [alphabet.NumBranches]int{0, 2, 1, 3, 0, 2, 1, 3, 0, 2, 1, 3}

// Day-stem anchored target branches.
var (
	tianyiBranches  = [alphabet.NumStems][]alphabet.Branch{{1, 7}, {0, 8}, {11, 9}, {11, 9}, {1, 7}, {0, 8}, {2, 6}, {2, 6}, {5, 3}, {5, 3}}
	literaryBranch  = [alphabet.NumStems]alphabet.Branch{5, 6, 8, 9, 8, 9, 11, 0, 2, 3}
	fortuneBranch   = [alphabet.NumStems]alphabet.Branch{2, 1, 0, 9, 8, 7, 6, 5, 4, 3}
	redFlameBranch  = [alphabet.NumStems]alphabet.Branch{6, 5, 2, 7, 4, 1, 10, 9, 0, 8}
	goldenBranch    = [alphabet.NumStems]alphabet.Branch{4, 5, 7, 8, 7, 8, 10, 11, 1, 2}
	kitchenBranch   = [alphabet.NumStems]alphabet.Branch{5, 6, 6, 7, 7, 8, 8, 9, 11, 0}
	needleBranch    = [alphabet.NumStems]alphabet.Branch{9, 8, 0, 11, 0, 11, 3, 2, 6, 5}
	whiteTiger      = [alphabet.NumStems]alphabet.Branch{10, 9, 8, 7, 8, 7, 6, 5, 4, 3}
	taijiBranches   = [alphabet.NumStems][]alphabet.Branch{{0, 6}, {0, 6}, {3, 9}, {3, 9}, {4, 10, 1, 7}, {4, 10, 1, 7}, {2, 11}, {2, 11}, {8, 5}, {8, 5}}
	setbackBranches = [5][]alphabet.Branch{{9, 8}, {0, 11}, {3, 2}, {6, 5}, {1, 7}} // keyed by stem pair (갑을, 병정, ...)
)

// Day-branch triad anchored target branches, keyed by branchTriadGroup.
var (
	generalBranch   = [4]alphabet.Branch{0, 6, 9, 3}
	postHorseBranch = [4]alphabet.Branch{2, 8, 11, 5}
	hotWaterBranch  = [4]alphabet.Branch{9, 3, 0, 6}
	peachBranch     = [4]alphabet.Branch{9, 3, 6, 0}
)

// Year-branch triad anchored target branches.
var (
	robberyBranch  = [4]alphabet.Branch{5, 11, 2, 8}
	canopyBranch   = [4]alphabet.Branch{4, 10, 1, 7}
	disgraceBranch = [4]alphabet.Branch{6, 0, 3, 9}
)

// Month anchored tables.
var (
	monthlyVirtueStem = [alphabet.NumBranches]alphabet.Stem{8, 6, 2, 0, 8, 6, 2, 0, 6, 4, 2, 0}
	// heavenlyVirtueStem is keyed by the solar-term month 1..12.
	heavenlyVirtueStem = [13]alphabet.Stem{0, 3, 7, 8, 7, 5, 0, 9, 3, 2, 1, 6, 5}
	lonelinessBranch   = [alphabet.NumBranches]alphabet.Branch{2, 2, 5, 5, 5, 8, 8, 8, 11, 11, 11, 2}
	// ghostGateBranches follows the season of the month branch: spring
	// and autumn point at 축/미, summer and winter at 진/술.
	ghostGateBranches = [alphabet.NumBranches][]alphabet.Branch{
		{4, 10}, {4, 10}, {1, 7}, {1, 7}, {1, 7}, {4, 10}, {4, 10}, {4, 10}, {1, 7}, {1, 7}, {1, 7}, {4, 10},
	}
)

// academicBranches is keyed by the day master's element.
var academicBranches = [5][]alphabet.Branch{{11, 8}, {2, 9}, {5, 11}, {5, 0}, {8, 3}}

// threeWonderSets are the stem triples of 삼기귀인.
var threeWonderSets = [3][3]alphabet.Stem{
	{0, 4, 6}, // 천상삼기: 갑 무 경
	{1, 2, 3}, // 지상삼기: 을 병 정
	{8, 9, 7}, // 인중삼기: 임 계 신
}

var threeWonderNames = [3]string{"천상삼기", "지상삼기", "인중삼기"}

// distantConflictBranch pairs each branch with its 원진 partner.
var distantConflictBranch = [alphabet.NumBranches]alphabet.Branch{7, 6, 5, 4, 3, 2, 1, 0, 11, 10, 9, 8}

// emptyBranchPairs gives the two void branches (공망) per decade of the
// sexagenary cycle, keyed by day-pillar ordinal / 10.
var emptyBranchPairs = [6][2]alphabet.Branch{{10, 11}, {8, 9}, {6, 7}, {4, 5}, {2, 3}, {0, 1}}

var (
	heavenNetBranches = []alphabet.Branch{10, 11} // 술 해
	earthWebBranches  = []alphabet.Branch{4, 5}   // 진 사
)

// scanBranches returns the positions whose branch is one of the targets.
func scanBranches(chart *models.Chart, targets ...alphabet.Branch) []models.Position {
	var out []models.Position
	for i, b := range chart.Branches() {
		for _, t := range targets {
			if b == t {
				out = append(out, models.Positions()[i])
				break
			}
		}
	}
	return out
}

// scanStems returns the positions whose stem equals the target.
func scanStems(chart *models.Chart, target alphabet.Stem) []models.Position {
	var out []models.Position
	for i, s := range chart.Stems() {
		if s == target {
			out = append(out, models.Positions()[i])
		}
	}
	return out
}

// Stars matches every named star table against the chart. Tables never
// short-circuit each other; every table is scanned independently.
func Stars(chart *models.Chart) *StarReading {
	r := &StarReading{}
	for _, check := range starChecks {
		for _, m := range check(chart) {
			if m.Polarity == Auspicious {
				r.Auspicious = append(r.Auspicious, m)
			} else {
				r.Inauspicious = append(r.Inauspicious, m)
			}
		}
	}
	sort.SliceStable(r.Auspicious, func(i, j int) bool {
		return r.Auspicious[i].Strength > r.Auspicious[j].Strength
	})
	sort.SliceStable(r.Inauspicious, func(i, j int) bool {
		return r.Inauspicious[i].Strength > r.Inauspicious[j].Strength
	})
	return r
}

var starChecks = []func(*models.Chart) []StarMatch{
	checkTianyiNoble,
	checkMonthlyVirtue,
	checkHeavenlyVirtue,
	checkLiteraryStar,
	checkAcademicStar,
	checkHeavenlyDoctor,
	checkFortuneStar,
	checkGeneralStar,
	checkPostHorse,
	checkRedFlame,
	checkGoldenCarriage,
	checkTaijiNoble,
	checkThreeWonders,
	checkHeavenlyKitchen,
	checkHangingNeedle,
	checkYangBladeStar,
	checkRobberyStar,
	checkCanopyStar,
	checkLonelinessStar,
	checkWhiteTiger,
	checkDisgraceStar,
	checkHeavenNet,
	checkSuddenSetback,
	checkDistantConflict,
	checkGhostGate,
	checkEmptiness,
	checkHotWater,
	checkPeachBlossom,
	checkBloodBlade,
}

// single wraps one combined-location match, dropping empties.
func single(m StarMatch) []StarMatch {
	if len(m.Positions) == 0 {
		return nil
	}
	return []StarMatch{m}
}

func checkTianyiNoble(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, tianyiBranches[chart.DayMaster()]...)
	return single(StarMatch{
		Name:        "천을귀인",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.2), // the strongest of the noble stars
		Description: "최고의 길신. 귀인의 도움과 보호를 받음",
		Influence:   "고난에서 구원, 귀인 조력, 승진과 출세",
	})
}

func checkMonthlyVirtue(chart *models.Chart) []StarMatch {
	pos := scanStems(chart, monthlyVirtueStem[chart.Month.Branch])
	return single(StarMatch{
		Name:        "월덕귀인",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "월의 덕을 받아 안정과 평안을 누림",
		Influence:   "정신적 안정, 덕망 있는 인품, 사회적 신뢰",
	})
}

func checkHeavenlyVirtue(chart *models.Chart) []StarMatch {
	m := chart.AdjustedMonth
	if m < 1 || m > 12 {
		return nil
	}
	pos := scanStems(chart, heavenlyVirtueStem[m])
	return single(StarMatch{
		Name:        "천덕귀인",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "하늘의 덕을 받아 재앙을 피함",
		Influence:   "흉운 완화, 덕행, 주변의 신망",
	})
}

func checkLiteraryStar(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, literaryBranch[chart.DayMaster()])
	return single(StarMatch{
		Name:        "문창귀인",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "학문과 예술의 재능, 문필의 능력",
		Influence:   "학업 성취, 예술적 재능, 창작 능력",
	})
}

func checkAcademicStar(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, academicBranches[chart.DayMaster().Element()]...)
	return single(StarMatch{
		Name:        "학당귀인",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "배움의 전당에 드는 길성",
		Influence:   "학문적 성취, 시험운, 스승 복",
	})
}

func checkHeavenlyDoctor(chart *models.Chart) []StarMatch {
	// The doctor branch is the one preceding the month branch.
	target := (chart.Month.Branch + alphabet.NumBranches - 1) % alphabet.NumBranches
	pos := scanBranches(chart, target)
	return single(StarMatch{
		Name:        "천의성",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "건강과 치유의 능력, 의료 관련 재능",
		Influence:   "건강 회복, 의료업 적성, 치유 능력",
	})
}

func checkFortuneStar(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, fortuneBranch[chart.DayMaster()])
	return single(StarMatch{
		Name:        "복성귀인",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "복과 행운을 가져오는 길성",
		Influence:   "재물운, 행운, 좋은 기회",
	})
}

func checkGeneralStar(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, generalBranch[branchTriadGroup[chart.Day.Branch]])
	return single(StarMatch{
		Name:        "장성",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "리더십과 통솔력, 권위를 나타냄",
		Influence:   "지도력, 관리 능력, 조직 운영",
	})
}

func checkPostHorse(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, postHorseBranch[branchTriadGroup[chart.Day.Branch]])
	return single(StarMatch{
		Name:        "역마",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "이동과 변화, 여행과 해외 인연",
		Influence:   "해외 운, 이동 수, 변화와 발전",
	})
}

func checkRedFlame(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, redFlameBranch[chart.DayMaster()])
	return single(StarMatch{
		Name:        "홍염살",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "매력과 인기, 이성운",
		Influence:   "연애운, 인기, 매력적인 외모",
	})
}

func checkGoldenCarriage(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, goldenBranch[chart.DayMaster()])
	return single(StarMatch{
		Name:        "금여",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "부귀와 명예, 고급스러운 생활",
		Influence:   "재물운, 명예, 사치와 호화",
	})
}

func checkTaijiNoble(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, taijiBranches[chart.DayMaster()]...)
	return single(StarMatch{
		Name:        "태극귀인",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "철학과 사상, 깊은 통찰력",
		Influence:   "철학적 사고, 종교성, 지혜",
	})
}

func checkThreeWonders(chart *models.Chart) []StarMatch {
	stems := []alphabet.Stem{chart.Year.Stem, chart.Month.Stem, chart.Day.Stem}
	for w, set := range threeWonderSets {
		all := true
		for _, s := range stems {
			if s != set[0] && s != set[1] && s != set[2] {
				all = false
				break
			}
		}
		if all {
			return []StarMatch{{
				Name:        "삼기귀인",
				Polarity:    Auspicious,
				Positions:   []models.Position{models.PosYear, models.PosMonth, models.PosDay},
				Strength:    0.95,
				Description: threeWonderNames[w] + ": 특별한 재능과 행운",
				Influence:   "비범한 재능, 특별한 행운, 큰 성취",
			}}
		}
	}
	return nil
}

func checkHeavenlyKitchen(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, kitchenBranch[chart.DayMaster()])
	return single(StarMatch{
		Name:        "천주귀인",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "음식과 관련된 복, 먹을 복",
		Influence:   "음식업 성공, 미식, 풍족한 생활",
	})
}

func checkHangingNeedle(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, needleBranch[chart.DayMaster()])
	return single(StarMatch{
		Name:        "현침살",
		Polarity:    Auspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "예리한 지능과 통찰력",
		Influence:   "분석력, 비판적 사고, 전문성",
	})
}

func checkYangBladeStar(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, yangBladeBranch[chart.DayMaster()])
	// The blade cuts deepest from the month pillar.
	mult := 1.0
	for _, p := range pos {
		if p == models.PosMonth {
			mult = 1.15
		}
	}
	return single(StarMatch{
		Name:        "양인",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, mult),
		Description: "극단적 에너지, 파괴적 성향",
		Influence:   "사고, 수술, 극단적 행동",
		Mitigation:  "식신으로 제어, 종교나 수행",
	})
}

func checkRobberyStar(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, robberyBranch[branchTriadGroup[chart.Year.Branch]])
	return single(StarMatch{
		Name:        "겁살",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "재물 손실, 도난, 사기",
		Influence:   "금전적 손실, 사기 피해, 도난",
		Mitigation:  "재물 관리 철저, 보안 강화",
	})
}

func checkCanopyStar(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, canopyBranch[branchTriadGroup[chart.Year.Branch]])
	return single(StarMatch{
		Name:        "화개살",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "고독, 종교성, 예술성",
		Influence:   "독신, 종교 생활, 예술 활동",
		Mitigation:  "사회 활동 증가, 인간관계 노력",
	})
}

func checkLonelinessStar(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, lonelinessBranch[chart.Month.Branch])
	return single(StarMatch{
		Name:        "고란살",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "고독, 독신, 가족과 떨어짐",
		Influence:   "독신 생활, 가족 인연 약함",
		Mitigation:  "적극적인 사교 활동, 봉사 활동",
	})
}

func checkWhiteTiger(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, whiteTiger[chart.DayMaster()])
	return single(StarMatch{
		Name:        "백호살",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "혈광, 수술, 사고",
		Influence:   "부상, 수술, 교통사고",
		Mitigation:  "안전 주의, 건강 관리",
	})
}

func checkDisgraceStar(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, disgraceBranch[branchTriadGroup[chart.Year.Branch]])
	return single(StarMatch{
		Name:        "망신살",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "명예 실추, 망신, 스캔들",
		Influence:   "평판 손상, 구설수, 명예 실추",
		Mitigation:  "언행 조심, 신중한 처신",
	})
}

// checkHeavenNet emits one match per occupied position instead of merging
// locations: each net binds its own pillar.
func checkHeavenNet(chart *models.Chart) []StarMatch {
	var out []StarMatch
	for i, b := range chart.Branches() {
		p := models.Positions()[i]
		for _, t := range heavenNetBranches {
			if b == t {
				out = append(out, StarMatch{
					Name:        "천라",
					Polarity:    Inauspicious,
					Positions:   []models.Position{p},
					Strength:    starStrength([]models.Position{p}, 1.0),
					Description: "하늘의 그물, 진로 막힘",
					Influence:   "승진 정체, 발전 제한",
					Mitigation:  "인내와 노력, 때를 기다림",
				})
			}
		}
		for _, t := range earthWebBranches {
			if b == t {
				out = append(out, StarMatch{
					Name:        "지망",
					Polarity:    Inauspicious,
					Positions:   []models.Position{p},
					Strength:    starStrength([]models.Position{p}, 1.0),
					Description: "땅의 그물, 이동 제한",
					Influence:   "이동 어려움, 정체 상태",
					Mitigation:  "현재 위치에서 최선",
				})
			}
		}
	}
	return out
}

func checkSuddenSetback(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, setbackBranches[chart.DayMaster()/2]...)
	return single(StarMatch{
		Name:        "급각살",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "갑작스런 좌절, 급전직하",
		Influence:   "예상치 못한 실패, 급격한 변화",
		Mitigation:  "신중한 계획, 위험 대비",
	})
}

func checkDistantConflict(chart *models.Chart) []StarMatch {
	var out []StarMatch
	branches := chart.Branches()
	for i, b1 := range branches {
		target := distantConflictBranch[b1]
		for j, b2 := range branches {
			if i != j && b2 == target {
				pos := []models.Position{models.Positions()[i], models.Positions()[j]}
				out = append(out, StarMatch{
					Name:        "원진살",
					Polarity:    Inauspicious,
					Positions:   pos,
					Strength:    starStrength(pos, 1.0),
					Description: "원거리 충돌, 불화",
					Influence:   "인간관계 갈등, 소통 어려움",
					Mitigation:  "이해와 포용, 중재자 활용",
				})
			}
		}
	}
	return out
}

func checkGhostGate(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, ghostGateBranches[chart.Month.Branch]...)
	return single(StarMatch{
		Name:        "귀문관살",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "귀문이 열려 정신이 예민해짐",
		Influence:   "신경 과민, 불면, 기이한 체험",
		Mitigation:  "규칙적 생활, 마음 수련",
	})
}

func checkEmptiness(chart *models.Chart) []StarMatch {
	ord := chart.Day.Ordinal()
	if ord < 0 {
		return nil
	}
	pair := emptyBranchPairs[ord/10]
	pos := scanBranches(chart, pair[0], pair[1])
	mult := 1.0
	for _, p := range pos {
		if p == models.PosDay {
			mult = 0.9 // voids touch the day pillar least
		}
	}
	return single(StarMatch{
		Name:        "공망",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, mult),
		Description: "공허함, 헛수고, 무위",
		Influence:   "노력의 헛됨, 결실 부족",
		Mitigation:  "실질적 목표, 현실적 계획",
	})
}

func checkHotWater(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, hotWaterBranch[branchTriadGroup[chart.Day.Branch]])
	return single(StarMatch{
		Name:        "탕화살",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "화상, 뜨거운 물 사고",
		Influence:   "화상 위험, 열 관련 사고",
		Mitigation:  "화기 조심, 안전 수칙",
	})
}

func checkPeachBlossom(chart *models.Chart) []StarMatch {
	pos := scanBranches(chart, peachBranch[branchTriadGroup[chart.Day.Branch]])
	return single(StarMatch{
		Name:        "도화살",
		Polarity:    Inauspicious,
		Positions:   pos,
		Strength:    starStrength(pos, 1.0),
		Description: "과도한 이성 관계, 문란",
		Influence:   "복잡한 이성 관계, 스캔들",
		Mitigation:  "절제와 신중함, 일편단심",
	})
}

func checkBloodBlade(chart *models.Chart) []StarMatch {
	var out []StarMatch
	branches := chart.Branches()
	for i, b := range branches {
		target := (b + 1) % alphabet.NumBranches
		for j, b2 := range branches {
			if b2 == target {
				pos := []models.Position{models.Positions()[i], models.Positions()[j]}
				out = append(out, StarMatch{
					Name:        "혈인살",
					Polarity:    Inauspicious,
					Positions:   pos,
					Strength:    starStrength(pos, 1.0),
					Description: "혈액 관련, 수술, 출혈",
					Influence:   "수술, 부상, 혈액 질환",
					Mitigation:  "건강 검진, 안전 주의",
				})
				break
			}
		}
	}
	return out
}
