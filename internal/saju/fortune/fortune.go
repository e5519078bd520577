// Package fortune computes the decennial major-fortune periods (대운) and
// the yearly/monthly/daily sub-fortunes (세운/월운/일운) derived from a
// four-pillar chart. All period arithmetic advances the month pillar through
// the sexagenary cycle; sub-fortunes are epoch offsets into the same cycle
// scored against the chart through the relation package.
package fortune

import (
	"fmt"
	"time"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
)

// Direction is the progression direction of the major-fortune sequence.
type Direction int

const (
	Forward Direction = iota // 순행
	Reverse                  // 역행
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// NumPeriods is how many decennial periods the calculator emits, covering
// eighty years from the start age.
const NumPeriods = 8

// Themes carries the per-aspect reading of a decennial period.
type Themes struct {
	Career        string `json:"career"`
	Wealth        string `json:"wealth"`
	Health        string `json:"health"`
	Relationships string `json:"relationships"`
	Overall       string `json:"overall"`
}

// Period is one 10-year major-fortune span. Periods are contiguous:
// EndAge+1 of one period equals StartAge of the next.
type Period struct {
	StartAge int              `json:"start_age"`
	EndAge   int              `json:"end_age"`
	Pillar   models.Pillar    `json:"pillar"`
	Element  alphabet.Element `json:"element"`

	Description string `json:"description"`
	Themes      Themes `json:"themes"`
}

// Name returns the combined Korean name of the period pillar.
func (p Period) Name() string { return p.Pillar.Name() }

// StartInfo reports how the first period's start age was derived.
type StartInfo struct {
	StartAge  int       `json:"start_age"`
	Direction Direction `json:"direction"`
	Days      int       `json:"days"` // days to the governing term boundary
}

// ProgressionDirection applies the classical rule: a yang year stem runs
// forward for men and reverse for women, a yin year stem the opposite.
func ProgressionDirection(yearStem alphabet.Stem, gender models.Gender) Direction {
	yang := yearStem.Polarity() == alphabet.Yang
	if (gender == models.Male) == yang {
		return Forward
	}
	return Reverse
}

// daysToTerm approximates the distance from the birth day to the nearest
// solar-term boundary in the given direction. Boundaries are pinned to the
// 5th and 20th of the month; the chart calculator's precise table is not
// used here on purpose, matching the traditional 3-days-per-year shortcut
// this estimate feeds.
func daysToTerm(born time.Time, dir Direction) int {
	d := born.Day()
	var days int
	if dir == Forward {
		switch {
		case d <= 5:
			days = 5 - d
		case d <= 20:
			days = 20 - d
		default:
			days = 35 - d
		}
	} else {
		switch {
		case d >= 20:
			days = d - 20
		case d >= 5:
			days = d - 5
		default:
			days = d + 10
		}
	}
	if days < 0 {
		days = -days
	}
	if days < 1 {
		days = 1
	}
	return days
}

// Start computes the start age and direction for a chart. The result is a
// pure function of the chart, so every later query sees the same periods.
func Start(chart *models.Chart) StartInfo {
	dir := ProgressionDirection(chart.Year.Stem, chart.Gender)
	days := daysToTerm(chart.Born, dir)
	age := int(float64(days)/3 + 0.5) // 3일 = 1년
	if age < 1 {
		age = 1
	}
	return StartInfo{StartAge: age, Direction: dir, Days: days}
}

// Periods generates the eight decennial periods. Period i advances the
// month pillar i+1 steps in the progression direction; stem and branch move
// together so sexagenary parity is preserved.
func Periods(chart *models.Chart) []Period {
	info := Start(chart)
	step := 1
	if info.Direction == Reverse {
		step = -1
	}

	out := make([]Period, 0, NumPeriods)
	for i := 0; i < NumPeriods; i++ {
		offset := step * (i + 1)
		stem := alphabet.Stem(mod(int(chart.Month.Stem)+offset, alphabet.NumStems))
		branch := alphabet.Branch(mod(int(chart.Month.Branch)+offset, alphabet.NumBranches))
		pillar := models.Pillar{Stem: stem, Branch: branch}
		elem := stem.Element()

		out = append(out, Period{
			StartAge:    info.StartAge + i*10,
			EndAge:      info.StartAge + i*10 + 9,
			Pillar:      pillar,
			Element:     elem,
			Description: periodDescriptions[elem],
			Themes:      periodThemes[elem],
		})
	}
	return out
}

// Current returns the period covering the chart holder's age at the given
// date, or false when the date falls before the first period begins.
func Current(chart *models.Chart, at time.Time) (Period, bool) {
	age := at.Year() - chart.Born.Year()
	if at.Month() < chart.Born.Month() ||
		(at.Month() == chart.Born.Month() && at.Day() < chart.Born.Day()) {
		age--
	}
	for _, p := range Periods(chart) {
		if p.StartAge <= age && age <= p.EndAge {
			return p, true
		}
	}
	return Period{}, false
}

// Transition describes the handover between two adjacent periods.
type Transition struct {
	From         Period `json:"from"`
	To           Period `json:"to"`
	Relationship string `json:"relationship"`
	Advice       string `json:"advice"`
}

// transitionLabels keys the element relation of the outgoing period toward
// the incoming one.
var transitionLabels = map[alphabet.Relation]string{
	alphabet.RelSame:         "비화 (같은 오행)",
	alphabet.RelGenerates:    "상생 (생성하는 관계)",
	alphabet.RelGeneratedBy:  "설기 (생성받는 관계)",
	alphabet.RelControls:     "상극 (극하는 관계)",
	alphabet.RelControlledBy: "상모 (극을 받는 관계)",
}

var transitionAdvice = map[alphabet.Relation]string{
	alphabet.RelGenerates:    "자연스러운 발전이 예상됩니다. 현재의 성과가 다음 시기의 기반이 됩니다.",
	alphabet.RelGeneratedBy:  "에너지가 소모될 수 있습니다. 충분한 휴식과 재충전이 필요합니다.",
	alphabet.RelControls:     "도전적인 전환기입니다. 변화에 대한 준비와 유연한 대응이 중요합니다.",
	alphabet.RelControlledBy: "압박감을 느낄 수 있습니다. 스트레스 관리와 건강 관리에 신경쓰세요.",
	alphabet.RelSame:         "비슷한 에너지가 지속됩니다. 매너리즘에 빠지지 않도록 주의하세요.",
}

// AnalyzeTransition classifies the element handover between two periods.
func AnalyzeTransition(from, to Period) Transition {
	rel := alphabet.ElementRelation(from.Element, to.Element)
	label, ok := transitionLabels[rel]
	if !ok {
		label = "무관 (직접 관계 없음)"
	}
	advice, ok := transitionAdvice[rel]
	if !ok {
		advice = "새로운 국면으로의 전환입니다. 열린 마음으로 변화를 받아들이세요."
	}
	return Transition{From: from, To: to, Relationship: label, Advice: advice}
}

var periodDescriptions = [5]string{
	alphabet.Wood:  "성장과 발전의 시기, 새로운 시작과 확장",
	alphabet.Fire:  "열정과 명예의 시기, 활발한 활동과 인정",
	alphabet.Earth: "안정과 축적의 시기, 기반 다지기와 실리 추구",
	alphabet.Metal: "결실과 정리의 시기, 성과 획득과 체계 정립",
	alphabet.Water: "지혜와 유연함의 시기, 통찰력과 적응력 발휘",
}

var periodThemes = [5]Themes{
	alphabet.Wood: {
		Career:        "사업 확장, 승진, 새로운 도전",
		Wealth:        "투자 수익, 사업 소득 증가",
		Health:        "간과 눈 건강 주의, 스트레스 관리",
		Relationships: "새로운 만남, 인맥 확대",
		Overall:       "진취적 기운, 성장 에너지",
	},
	alphabet.Fire: {
		Career:        "명예 상승, 리더십 발휘, 공적 인정",
		Wealth:        "명예를 통한 재물, 급격한 변동",
		Health:        "심장과 혈액순환 주의, 과로 방지",
		Relationships: "열정적 만남, 활발한 교류",
		Overall:       "화려한 성과, 주목받는 시기",
	},
	alphabet.Earth: {
		Career:        "안정적 직장, 중재자 역할, 신뢰 구축",
		Wealth:        "부동산 투자, 안정적 수입",
		Health:        "소화기 건강, 체중 관리 필요",
		Relationships: "신뢰 기반 관계, 결혼 운",
		Overall:       "안정과 균형, 실속 추구",
	},
	alphabet.Metal: {
		Career:        "체계화, 전문성 강화, 권위 확립",
		Wealth:        "저축과 절약, 계획적 재테크",
		Health:        "호흡기와 피부 관리, 규칙적 생활",
		Relationships: "의리있는 관계, 장기적 유대",
		Overall:       "결단력과 추진력, 원칙 중시",
	},
	alphabet.Water: {
		Career:        "창의적 활동, 유연한 대처, 소통 중시",
		Wealth:        "유동적 자산, 다양한 수입원",
		Health:        "신장과 방광 건강, 수분 섭취",
		Relationships: "지적 교류, 정신적 유대",
		Overall:       "지혜와 통찰, 유연한 대응",
	},
}

// PillarInterpretation is the detailed reading attached to specific
// sexagenary pillars. Only a handful of entries exist so far.
type PillarInterpretation struct {
	Nature   string `json:"nature"`
	Positive string `json:"positive"`
	Negative string `json:"negative"`
	Advice   string `json:"advice"`
}

var pillarInterpretations = map[string]PillarInterpretation{
	"갑자": {
		Nature:   "새로운 시작의 에너지",
		Positive: "창의력 발휘, 리더십 강화, 새로운 기회",
		Negative: "성급함, 인내심 부족, 충돌 가능성",
		Advice:   "신중한 계획과 인내심을 가지고 추진하세요",
	},
	"을축": {
		Nature:   "꾸준한 성장의 시기",
		Positive: "안정적 발전, 신뢰 구축, 실속 추구",
		Negative: "변화 저항, 고집, 융통성 부족",
		Advice:   "유연성을 기르고 새로운 것을 받아들이세요",
	},
}

// Interpretation looks up the detailed reading for a pillar, when one
// exists in the catalogue.
func Interpretation(p models.Pillar) (PillarInterpretation, bool) {
	pi, ok := pillarInterpretations[p.Name()]
	return pi, ok
}

// AgeRange formats a period's span for display, e.g. "4-13세".
func (p Period) AgeRange() string {
	return fmt.Sprintf("%d-%d세", p.StartAge, p.EndAge)
}

func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}
