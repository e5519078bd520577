package usecase

import (
	"SajuCore/internal/saju/alphabet"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/classify"
)

// InfoCatalogue serves the static reference data behind the info
// endpoint. Everything here derives from the engine tables, so the
// catalogue can never drift from what the calculator produces.
type InfoCatalogue struct{}

func NewInfoCatalogue() *InfoCatalogue { return &InfoCatalogue{} }

type StemInfo struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Element  string `json:"element"`
	Polarity string `json:"polarity"`
}

type BranchInfo struct {
	Index       int          `json:"index"`
	Name        string       `json:"name"`
	Animal      string       `json:"animal"`
	Element     string       `json:"element"`
	Polarity    string       `json:"polarity"`
	HiddenStems []StemWeight `json:"hidden_stems"`
}

type StemWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

type ElementInfo struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Generates string `json:"generates"`
	Controls  string `json:"controls"`
}

type TenGodInfo struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type PatternEntry struct {
	Index    int                   `json:"index"`
	Name     string                `json:"name"`
	Category string                `json:"category"`
	Info     *classify.PatternInfo `json:"info"`
}

type StarEntry struct {
	Name        string `json:"name"`
	Polarity    string `json:"polarity"`
	Description string `json:"description"`
}

var branchAnimals = [alphabet.NumBranches]string{
	"쥐", "소", "호랑이", "토끼", "용", "뱀", "말", "양", "원숭이", "닭", "개", "돼지",
}

var tenGodDescriptions = [analysis.NumTenGods]string{
	"비견 - 같은 오행, 같은 음양. 자립심과 경쟁심",
	"겁재 - 같은 오행, 다른 음양. 추진력과 재물 분산",
	"식신 - 일간이 생하는 오행, 같은 음양. 표현력과 의식주 복",
	"상관 - 일간이 생하는 오행, 다른 음양. 창의성과 비판 정신",
	"편재 - 일간이 극하는 오행, 같은 음양. 유동 재물과 사업 수완",
	"정재 - 일간이 극하는 오행, 다른 음양. 고정 재물과 근면성",
	"편관 - 일간을 극하는 오행, 같은 음양. 도전과 권위",
	"정관 - 일간을 극하는 오행, 다른 음양. 명예와 책임감",
	"편인 - 일간을 생하는 오행, 같은 음양. 비정통 학문과 직관",
	"정인 - 일간을 생하는 오행, 다른 음양. 학문과 인덕",
}

// The shinshal checks derive placements at calculation time; this list
// is the human-readable index of the stars they can report.
var starCatalogue = []StarEntry{
	{"천을귀인", "auspicious", "하늘의 도움을 받는 최고의 길신"},
	{"월덕귀인", "auspicious", "월의 덕을 받아 재난을 피하는 길신"},
	{"천덕귀인", "auspicious", "하늘의 덕으로 흉을 길로 바꾸는 길신"},
	{"문창귀인", "auspicious", "학문과 시험운을 돕는 길신"},
	{"학당귀인", "auspicious", "배움이 깊어지는 학업의 길신"},
	{"천의성", "auspicious", "의술과 치유의 재능을 주는 길신"},
	{"복성귀인", "auspicious", "의식주가 넉넉한 복록의 길신"},
	{"장성", "auspicious", "통솔력과 승부욕을 주는 길신"},
	{"역마", "auspicious", "이동과 변화, 해외운의 별"},
	{"홍염살", "inauspicious", "이성의 관심을 끄는 매력의 살"},
	{"금여록", "auspicious", "배우자 복과 풍요의 길신"},
	{"태극귀인", "auspicious", "시작과 끝을 좋게 맺는 길신"},
	{"삼기귀인", "auspicious", "비범한 재능과 귀한 인연의 길신"},
	{"천주귀인", "auspicious", "먹을 복과 건강을 지키는 길신"},
	{"현침살", "inauspicious", "날카로운 언행을 경계해야 하는 살"},
	{"양인살", "inauspicious", "강한 기운이 넘쳐 절제가 필요한 살"},
	{"겁살", "inauspicious", "재물 손실과 빼앗김을 주의하는 살"},
	{"화개살", "inauspicious", "고독하지만 예술과 종교에 길한 살"},
	{"고신과숙", "inauspicious", "외로움을 타는 고독의 살"},
	{"백호살", "inauspicious", "사고와 혈광을 주의하는 살"},
	{"수옥살", "inauspicious", "구설과 관재를 주의하는 살"},
	{"천라지망", "inauspicious", "일이 막히고 얽히기 쉬운 살"},
	{"급각살", "inauspicious", "낙상과 수족 부상을 주의하는 살"},
	{"원진살", "inauspicious", "이유 없이 미워하는 원망의 살"},
	{"귀문관살", "inauspicious", "예민한 신경과 직감이 강한 살"},
	{"공망", "inauspicious", "해당 자리의 기운이 비는 살"},
	{"탕화살", "inauspicious", "화상과 중독을 주의하는 살"},
	{"도화살", "inauspicious", "인기와 구설이 함께 따르는 살"},
	{"혈인살", "inauspicious", "수술과 출혈을 주의하는 살"},
}

// Lookup returns the catalogue named by infoType, or nil when the type
// is unknown.
func (c *InfoCatalogue) Lookup(infoType string) interface{} {
	switch infoType {
	case "stems":
		return c.Stems()
	case "branches":
		return c.Branches()
	case "elements":
		return c.Elements()
	case "ten_gods":
		return c.TenGods()
	case "patterns":
		return c.Patterns()
	case "shinshal":
		return c.Stars()
	}
	return nil
}

func (c *InfoCatalogue) Stems() []StemInfo {
	out := make([]StemInfo, 0, alphabet.NumStems)
	for s := alphabet.Stem(0); s < alphabet.NumStems; s++ {
		out = append(out, StemInfo{
			Index:    int(s),
			Name:     s.String(),
			Element:  s.Element().Symbol(),
			Polarity: s.Polarity().String(),
		})
	}
	return out
}

func (c *InfoCatalogue) Branches() []BranchInfo {
	out := make([]BranchInfo, 0, alphabet.NumBranches)
	for b := alphabet.Branch(0); b < alphabet.NumBranches; b++ {
		hidden := b.HiddenStems()
		weights := make([]StemWeight, 0, len(hidden))
		for _, h := range hidden {
			weights = append(weights, StemWeight{Name: h.Stem.String(), Weight: h.Weight})
		}
		out = append(out, BranchInfo{
			Index:       int(b),
			Name:        b.String(),
			Animal:      branchAnimals[b],
			Element:     b.Element().Symbol(),
			Polarity:    b.Polarity().String(),
			HiddenStems: weights,
		})
	}
	return out
}

func (c *InfoCatalogue) Elements() []ElementInfo {
	elems := alphabet.Elements()
	out := make([]ElementInfo, 0, len(elems))
	for _, e := range elems {
		out = append(out, ElementInfo{
			Index:     int(e),
			Name:      e.String(),
			Symbol:    e.Symbol(),
			Generates: alphabet.Generates(e).Symbol(),
			Controls:  alphabet.Controls(e).Symbol(),
		})
	}
	return out
}

func (c *InfoCatalogue) TenGods() []TenGodInfo {
	out := make([]TenGodInfo, 0, analysis.NumTenGods)
	for g := analysis.TenGod(0); int(g) < analysis.NumTenGods; g++ {
		out = append(out, TenGodInfo{
			Index:       int(g),
			Name:        g.String(),
			Category:    g.Category().String(),
			Description: tenGodDescriptions[g],
		})
	}
	return out
}

func (c *InfoCatalogue) Patterns() []PatternEntry {
	out := make([]PatternEntry, 0, classify.NumPatterns)
	for p := classify.Pattern(0); p < classify.NumPatterns; p++ {
		out = append(out, PatternEntry{
			Index:    int(p),
			Name:     p.String(),
			Category: string(p.Category()),
			Info:     p.Info(),
		})
	}
	return out
}

func (c *InfoCatalogue) Stars() []StarEntry { return starCatalogue }
