package fortune

import (
	"fmt"
	"sort"
	"time"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/relation"
)

// Sub-fortune epochs. The year epoch is 1984 (갑자년); days are counted
// from 1984-01-01, anchored to 갑자일. These are deliberately separate from
// the chart calculator's 1900 epoch.
const yearEpoch = 1984

var dayEpoch = time.Date(1984, 1, 1, 0, 0, 0, 0, time.UTC)

// Hit is one relation detected between a fortune branch and the chart.
// With lists the chart branch(es) involved; a triad hit lists every
// matching branch at once.
type Hit struct {
	Kind  relation.Kind     `json:"kind"`
	With  []alphabet.Branch `json:"with"`
	Score int               `json:"score"`
}

// Relations is the scored relation summary for one fortune pillar against
// a chart. Score is clamped to [-10, 10].
type Relations struct {
	Hits  []Hit `json:"hits"`
	Score int   `json:"score"`
}

// has reports whether any hit of the given kind was recorded.
func (r Relations) has(kinds ...relation.Kind) bool {
	for _, h := range r.Hits {
		for _, k := range kinds {
			if h.Kind == k {
				return true
			}
		}
	}
	return false
}

// scoreBranch runs the fortune branch against all four chart branches.
// Unlike the chart-internal pair classifier, every relation type is checked
// independently: a single branch pair can contribute more than one hit.
func scoreBranch(fb alphabet.Branch, chart *models.Chart) Relations {
	var out Relations

	for _, cb := range chart.Branches() {
		if _, ok := relation.SixHarmonyElement(fb, cb); ok {
			out.add(relation.SixHarmony, 2, cb)
		}
		if relation.InClash(fb, cb) {
			out.add(relation.Clash, -3, cb)
		}
		if relation.InPunishment(fb, cb) || (fb == cb && relation.SelfPunishment(fb)) {
			out.add(relation.Punishment, -2, cb)
		}
		if relation.InDestruction(fb, cb) {
			out.add(relation.Destruction, -2, cb)
		}
		if relation.InHarm(fb, cb) {
			out.add(relation.Harm, -1, cb)
		}
	}

	// 삼합: the fortune branch completes or reinforces a harmony group.
	if t, ok := relation.TriadOf(fb); ok {
		var matched []alphabet.Branch
		distinct := map[alphabet.Branch]bool{fb: true}
		for _, cb := range chart.Branches() {
			for _, m := range t.Members {
				if cb == m && cb != fb {
					matched = append(matched, cb)
					distinct[cb] = true
					break
				}
			}
		}
		if len(matched) >= 1 {
			kind := relation.TriadPartial
			if len(distinct) == 3 {
				kind = relation.TriadFull
			}
			score := 3 + len(matched)
			if score > 6 {
				score = 6
			}
			out.Hits = append(out.Hits, Hit{Kind: kind, With: matched, Score: score})
			out.Score += score
		}
	}

	if out.Score > 10 {
		out.Score = 10
	}
	if out.Score < -10 {
		out.Score = -10
	}
	return out
}

func (r *Relations) add(k relation.Kind, score int, with alphabet.Branch) {
	r.Hits = append(r.Hits, Hit{Kind: k, With: []alphabet.Branch{with}, Score: score})
	r.Score += score
}

// Reading is the common shape of a scored sub-fortune.
type Reading struct {
	Pillar         models.Pillar    `json:"pillar"`
	Element        alphabet.Element `json:"element"`
	Relations      Relations        `json:"relations"`
	Interpretation string           `json:"interpretation"`
}

// YearReading is the 세운 for one calendar year.
type YearReading struct {
	Year int `json:"year"`
	Reading
	Advice []string `json:"advice"`
}

// MonthReading is the 월운 for one calendar month.
type MonthReading struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Reading
}

// LuckyHour is one favorable two-hour bucket of a day.
type LuckyHour struct {
	Time   string        `json:"time"` // e.g. "11-13"
	Pillar models.Pillar `json:"pillar"`
	Score  int           `json:"score"`
	Reason string        `json:"reason"`
}

// DayReading is the 일운 for one date.
type DayReading struct {
	Date time.Time `json:"date"`
	Reading
	LuckyHours []LuckyHour `json:"lucky_hours"`
}

func pillarAt(ordinal int) models.Pillar {
	o := mod(ordinal, alphabet.CycleLen)
	return models.Pillar{
		Stem:   alphabet.Stem(o % alphabet.NumStems),
		Branch: alphabet.Branch(o % alphabet.NumBranches),
	}
}

// Yearly computes the fortune of a calendar year against a chart.
func Yearly(year int, chart *models.Chart) YearReading {
	pillar := pillarAt(year - yearEpoch)
	rel := scoreBranch(pillar.Branch, chart)
	elem := pillar.Stem.Element()
	return YearReading{
		Year: year,
		Reading: Reading{
			Pillar:         pillar,
			Element:        elem,
			Relations:      rel,
			Interpretation: interpretYear(elem, rel.Score),
		},
		Advice: yearlyAdvice(rel),
	}
}

// Month branches follow the solar calendar: month 1 is 인.
var fortuneMonthBranch = [12]alphabet.Branch{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 1}

// Monthly computes the fortune of a calendar month. The month stem runs
// from the year stem's start stem (갑/기 years start at 병), same rule the
// chart calculator applies to the month pillar. Months outside 1..12 are
// treated as month 1.
func Monthly(year, month int, chart *models.Chart) MonthReading {
	if month < 1 || month > 12 {
		month = 1
	}
	yearStem := pillarAt(year - yearEpoch).Stem
	start := (int(yearStem)%5)*2 + 2
	pillar := models.Pillar{
		Stem:   alphabet.Stem((start + month - 1) % alphabet.NumStems),
		Branch: fortuneMonthBranch[month-1],
	}
	rel := scoreBranch(pillar.Branch, chart)
	elem := pillar.Stem.Element()
	return MonthReading{
		Year:  year,
		Month: month,
		Reading: Reading{
			Pillar:         pillar,
			Element:        elem,
			Relations:      rel,
			Interpretation: interpretMonth(elem, rel.Score),
		},
	}
}

// Daily computes the fortune of a single date, including its lucky hours.
func Daily(date time.Time, chart *models.Chart) DayReading {
	pillar := pillarAt(daysSinceEpoch(date))
	rel := scoreBranch(pillar.Branch, chart)
	elem := pillar.Stem.Element()
	return DayReading{
		Date: date,
		Reading: Reading{
			Pillar:         pillar,
			Element:        elem,
			Relations:      rel,
			Interpretation: interpretDay(elem, rel.Score),
		},
		LuckyHours: luckyHours(pillar.Stem, chart),
	}
}

func daysSinceEpoch(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(dayEpoch).Hours() / 24)
}

var hourTimes = [12]string{
	"23-01", "01-03", "03-05", "05-07", "07-09", "09-11",
	"11-13", "13-15", "15-17", "17-19", "19-21", "21-23",
}

// luckyHours scores all twelve two-hour buckets of a day and keeps the top
// three with a positive score.
func luckyHours(dayStem alphabet.Stem, chart *models.Chart) []LuckyHour {
	start := int(dayStem) * 2 % alphabet.NumStems
	var out []LuckyHour
	for i := 0; i < alphabet.NumBranches; i++ {
		branch := alphabet.Branch(i)
		rel := scoreBranch(branch, chart)
		if rel.Score <= 0 {
			continue
		}
		out = append(out, LuckyHour{
			Time:   hourTimes[i],
			Pillar: models.Pillar{Stem: alphabet.Stem((start + i) % alphabet.NumStems), Branch: branch},
			Score:  rel.Score,
			Reason: "길시 - 조화로운 시간대",
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

var yearElementAdvice = [5]string{
	alphabet.Wood:  " 새로운 시작과 성장의 기회가 있습니다.",
	alphabet.Fire:  " 열정과 활력이 넘치는 시기입니다.",
	alphabet.Earth: " 안정과 실속을 추구하기 좋은 때입니다.",
	alphabet.Metal: " 결실을 맺고 정리하는 시기입니다.",
	alphabet.Water: " 유연하게 대처하며 지혜를 발휘하세요.",
}

func interpretYear(elem alphabet.Element, score int) string {
	var base string
	switch {
	case score >= 5:
		base = "매우 길한 한 해입니다. 모든 일이 순조롭게 풀릴 것입니다."
	case score >= 2:
		base = "대체로 좋은 한 해가 될 것입니다. 기회를 잘 활용하세요."
	case score >= -1:
		base = "평탄한 한 해가 예상됩니다. 꾸준히 노력하면 성과가 있을 것입니다."
	case score >= -3:
		base = "다소 어려움이 있을 수 있는 해입니다. 신중한 판단이 필요합니다."
	default:
		base = "도전적인 한 해가 될 것입니다. 충분한 준비와 인내가 필요합니다."
	}
	return base + yearElementAdvice[elem]
}

func interpretMonth(elem alphabet.Element, score int) string {
	sym := elem.Symbol()
	switch {
	case score >= 3:
		return fmt.Sprintf("이번 달은 매우 좋은 운세입니다. %s 기운이 도움이 됩니다.", sym)
	case score >= 1:
		return fmt.Sprintf("순조로운 한 달이 예상됩니다. %s 에너지를 활용하세요.", sym)
	case score >= -1:
		return fmt.Sprintf("평범한 한 달입니다. %s 기운에 주의하며 생활하세요.", sym)
	default:
		return fmt.Sprintf("신중함이 필요한 달입니다. %s 기운과의 조화를 찾으세요.", sym)
	}
}

func interpretDay(elem alphabet.Element, score int) string {
	sym := elem.Symbol()
	switch {
	case score >= 2:
		return fmt.Sprintf("오늘은 길한 날입니다. %s 기운이 행운을 가져다줍니다.", sym)
	case score >= 0:
		return fmt.Sprintf("무난한 하루가 될 것입니다. %s 에너지와 조화를 이루세요.", sym)
	default:
		return fmt.Sprintf("조심스러운 하루입니다. %s 기운을 주의 깊게 다루세요.", sym)
	}
}

func yearlyAdvice(rel Relations) []string {
	var advice []string
	if rel.has(relation.SixHarmony, relation.TriadPartial, relation.TriadFull) {
		advice = append(advice, "조화로운 관계가 많아 원만한 한 해가 예상됩니다.")
	}
	if rel.has(relation.Clash) {
		advice = append(advice, "충돌 에너지가 있으니 대인관계에 신중을 기하세요.")
	}
	if rel.has(relation.Punishment) {
		advice = append(advice, "형벌의 기운이 있어 법적 문제나 건강에 주의가 필요합니다.")
	}
	if rel.has(relation.Destruction) {
		advice = append(advice, "파괴의 에너지가 있으니 기존 계획을 재검토하세요.")
	}
	if rel.has(relation.Harm) {
		advice = append(advice, "해로운 기운이 있어 소통과 이해에 노력이 필요합니다.")
	}
	if len(advice) == 0 {
		advice = append(advice, "특별한 주의사항 없이 자신의 계획을 추진하세요.")
	}
	return advice
}
