package classify

import (
	"fmt"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
)

// YongshinReading names the elements that help (용신) and hurt (기신) a
// chart, derived from the day-master strength band alone.
type YongshinReading struct {
	DayMaster       alphabet.Stem
	DayElement      alphabet.Element
	Band            analysis.StrengthBand
	Ratio           float64
	UsefulGods      []alphabet.Element
	HarmfulGods     []alphabet.Element
	Season          analysis.Season
	Recommendations []string
}

// Yongshin derives the useful and harmful elements for a chart. The rules
// key off the strength band: a weak day master wants feeding, a strong one
// wants an outlet, a balanced one wants its thinnest element topped up.
func Yongshin(chart *models.Chart) (*YongshinReading, error) {
	strength, err := analysis.DayMasterStrength(chart)
	if err != nil {
		return nil, err
	}
	dist := analysis.Distribution(chart)

	r := &YongshinReading{
		DayMaster:  strength.DayMaster,
		DayElement: strength.DayElement,
		Band:       strength.Band,
		Ratio:      strength.Ratio,
		Season:     strength.Season,
	}
	r.UsefulGods = usefulGods(strength.DayElement, strength.Band, &dist)
	r.HarmfulGods = harmfulGods(strength.DayElement, strength.Band, &dist)
	r.Recommendations = recommendations(r)
	return r, nil
}

func usefulGods(day alphabet.Element, band analysis.StrengthBand, dist *analysis.ElementDistribution) []alphabet.Element {
	var gods []alphabet.Element
	switch band {
	case analysis.VeryWeak:
		gods = append(gods, day, alphabet.GeneratedBy(day), alphabet.ControlledBy(day))
	case analysis.Weak:
		gods = append(gods, day, alphabet.GeneratedBy(day))
	case analysis.VeryStrong:
		gods = append(gods, alphabet.Generates(day), alphabet.Controls(day), day, alphabet.GeneratedBy(day))
	case analysis.Strong:
		gods = append(gods, alphabet.Generates(day), alphabet.Controls(day))
	default: // balanced
		gods = append(gods, dist.Lacking())
	}
	return dedupeElements(gods)
}

func harmfulGods(day alphabet.Element, band analysis.StrengthBand, dist *analysis.ElementDistribution) []alphabet.Element {
	var gods []alphabet.Element
	switch band {
	case analysis.VeryWeak:
		gods = append(gods, alphabet.ControlledBy(day), alphabet.Generates(day))
	case analysis.Weak:
		gods = append(gods, alphabet.ControlledBy(day), alphabet.Generates(day))
		// An already-thick day element feeds the imbalance instead of the
		// master.
		if dist.Percent(day) > 40 {
			gods = append(gods, day)
		}
	case analysis.VeryStrong:
		gods = append(gods, day, alphabet.GeneratedBy(day), alphabet.ControlledBy(day), alphabet.Controls(day))
	case analysis.Strong:
		gods = append(gods, day, alphabet.GeneratedBy(day))
	default: // balanced
		if max := dist.Dominant(); dist.Percent(max) > 35 {
			gods = append(gods, max)
		}
	}
	return dedupeElements(gods)
}

func dedupeElements(in []alphabet.Element) []alphabet.Element {
	var seen [5]bool
	out := in[:0]
	for _, e := range in {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

var elementColors = [5]string{"녹색, 청색", "빨강, 자주색", "노랑, 갈색", "흰색, 은색", "검정, 남색"}

var elementDirections = [5]string{"동쪽", "남쪽", "중앙", "서쪽", "북쪽"}

func recommendations(r *YongshinReading) []string {
	var recs []string
	switch r.Band {
	case analysis.VeryWeak:
		recs = append(recs,
			"일간이 매우 약하니 무리한 도전보다는 협력과 지원을 구하세요.",
			"건강 관리에 특별히 신경쓰고 과로를 피하세요.")
	case analysis.Weak:
		recs = append(recs,
			"자신감을 기르고 주변의 도움을 적극 활용하세요.",
			"꾸준한 자기계발로 부족한 부분을 보완하세요.")
	case analysis.Strong:
		recs = append(recs,
			"리더십을 발휘하되 독단적이지 않도록 주의하세요.",
			"자신의 능력을 나누고 베푸는 것이 좋습니다.")
	case analysis.VeryStrong:
		recs = append(recs,
			"강한 의지와 추진력을 긍정적으로 활용하세요.",
			"타인의 의견을 경청하고 유연성을 기르세요.")
	default:
		recs = append(recs,
			"균형잡힌 상태를 유지하며 안정적인 발전을 추구하세요.",
			"극단적인 선택보다는 중용의 도를 지키세요.")
	}

	gods := r.UsefulGods
	if len(gods) > 2 {
		gods = gods[:2]
	}
	for _, g := range gods {
		recs = append(recs, fmt.Sprintf("%s 기운이 용신이니 %s 계열과 %s 방향이 유리합니다.",
			g.Symbol(), elementColors[g], elementDirections[g]))
	}

	switch r.Band {
	case analysis.VeryStrong:
		recs = append(recs,
			"자신의 강한 기운을 그대로 활용하는 것이 좋습니다.",
			"전문 분야에서 독보적인 위치를 추구하세요.")
	case analysis.VeryWeak:
		recs = append(recs,
			"대세를 따르고 유연하게 적응하는 것이 유리합니다.",
			"강한 조직이나 파트너와 함께하면 성공할 수 있습니다.")
	}
	return recs
}
