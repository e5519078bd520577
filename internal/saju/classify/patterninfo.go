package classify

// PatternInfo is the static interpretation attached to a pattern label.
type PatternInfo struct {
	Name            string   // full name with hanja
	Description     string
	Characteristics []string
	Career          string
	Wealth          string
	Relationship    string
	Cautions        []string
	Famous          []string
	SuccessFactors  []string
}

// Info returns the interpretation tables for the pattern, or the 정재격
// entry for an out-of-range value.
func (p Pattern) Info() *PatternInfo {
	if p < 0 || p >= NumPatterns {
		p = PatDirectWealth
	}
	return &patternInfos[p]
}

var patternInfos = [NumPatterns]PatternInfo{
	PatEatingGod: {
		Name:        "식신격 (食神格)",
		Description: "식신이 일간의 기운을 표현하는 격",
		Characteristics: []string{
			"낙천적 성격", "표현력 풍부", "먹는 것 좋아함", "예술적 재능", "유머 감각",
		},
		Career:         "요리사, 연예인, 작가, 교사, 서비스업",
		Wealth:         "재능을 통한 수입, 꾸준한 수익, 즐기며 버는 돈",
		Relationship:   "즐거운 연애, 화목한 가정, 자녀 복",
		Cautions:       []string{"나태함", "과식", "책임감 부족"},
		Famous:         []string{"백종원", "유재석"},
		SuccessFactors: []string{"재능 활용", "건강 관리", "꾸준함"},
	},
	PatHurtingOfficer: {
		Name:        "상관격 (傷官格)",
		Description: "상관이 강하게 발현되는 격",
		Characteristics: []string{
			"뛰어난 재능", "비판적 사고", "개혁 성향", "독창성", "반골 기질",
		},
		Career:         "비평가, 언론인, 개혁가, 예술가, 변호사",
		Wealth:         "재능과 실력으로 큰 성공 가능, 변동성 있음",
		Relationship:   "까다로운 연애관, 완벽주의, 충돌 가능성",
		Cautions:       []string{"과도한 비판", "대인관계 문제", "오만함"},
		Famous:         []string{"베토벤", "피카소"},
		SuccessFactors: []string{"겸손함", "협력 정신", "인내심"},
	},
	PatIndirectWealth: {
		Name:        "편재격 (偏財格)",
		Description: "편재가 강하게 나타나는 격",
		Characteristics: []string{
			"사업 수완", "기회 포착 능력", "유연한 사고", "사교적 성향", "다재다능",
		},
		Career:         "사업가, 무역업, 영업직, 투자가, 프리랜서",
		Wealth:         "변동성 큰 수입, 다양한 수입원, 투자 수익",
		Relationship:   "자유로운 연애관, 다양한 인연, 변화 많은 관계",
		Cautions:       []string{"산만함", "투기 성향", "책임감 부족"},
		Famous:         []string{"빌 게이츠", "스티브 잡스"},
		SuccessFactors: []string{"집중력 향상", "리스크 관리", "장기 계획"},
	},
	PatDirectWealth: {
		Name:        "정재격 (正財格)",
		Description: "정재가 주도적인 역할을 하는 격",
		Characteristics: []string{
			"성실하고 근면", "경제관념 발달", "현실적 사고", "안정 추구", "가족 중시",
		},
		Career:         "회계사, 은행원, 재무관리자, 부동산업, 자영업",
		Wealth:         "착실한 재산 축적, 저축과 투자, 안정적 수입원",
		Relationship:   "현실적 결혼관, 경제력 중시, 안정적 가정",
		Cautions:       []string{"지나친 물질주의", "인색함", "모험심 부족"},
		Famous:         []string{"정주영", "워런 버핏"},
		SuccessFactors: []string{"꾸준한 저축", "신중한 투자", "가족 화목"},
	},
	PatIndirectPower: {
		Name:        "편관격 (偏官格)",
		Description: "편관(칠살)이 강하게 작용하는 격",
		Characteristics: []string{
			"강한 추진력", "결단력과 실행력", "도전정신", "카리스마", "투쟁심",
		},
		Career:         "군인, 경찰, 운동선수, 외과의사, 검사, CEO",
		Wealth:         "큰 성공 또는 실패, 투기적 성향, 벤처 사업 적합",
		Relationship:   "열정적이지만 충돌 가능, 강한 개성의 배우자",
		Cautions:       []string{"과도한 공격성", "인내심 부족", "극단적 선택"},
		Famous:         []string{"나폴레옹", "징기스칸"},
		SuccessFactors: []string{"적절한 통제력", "인내심 기르기", "협력 중시"},
	},
	PatDirectPower: {
		Name:        "정관격 (正官格)",
		Description: "정관이 월지에 있고 일간을 적절히 제어하는 격",
		Characteristics: []string{
			"품위와 명예를 중시", "정직하고 원칙적", "책임감이 강함", "리더십과 권위", "안정적인 성향",
		},
		Career:         "공무원, 법조인, 교육자, 관리직, 정치인",
		Wealth:         "안정적인 수입, 꾸준한 재산 증식, 명예와 함께 오는 부",
		Relationship:   "전통적인 결혼관, 책임감 있는 배우자, 안정적인 가정생활",
		Cautions:       []string{"지나친 원칙주의", "융통성 부족", "권위주의적 태도"},
		Famous:         []string{"세종대왕", "이순신 장군"},
		SuccessFactors: []string{"정직과 신뢰", "꾸준한 노력", "원칙 준수"},
	},
	PatIndirectSeal: {
		Name:        "편인격 (偏印格)",
		Description: "편인이 특별한 재능을 부여하는 격",
		Characteristics: []string{
			"독특한 재능", "직관력 발달", "예술적 감각", "종교적 성향", "독립적 사고",
		},
		Career:         "예술가, 디자이너, 점술가, 심리상담사, 발명가",
		Wealth:         "특수 재능으로 인한 수입, 불규칙적 수입",
		Relationship:   "독특한 인연, 정신적 연결, 자유로운 관계",
		Cautions:       []string{"고집", "비현실적 사고", "대인관계 어려움"},
		Famous:         []string{"반 고흐", "아인슈타인"},
		SuccessFactors: []string{"재능 개발", "현실 감각", "소통 능력"},
	},
	PatDirectSeal: {
		Name:        "정인격 (正印格)",
		Description: "정인이 일간을 생조하는 격",
		Characteristics: []string{
			"학구적 성향", "인자하고 온화", "전통 중시", "교육열", "정신적 가치 추구",
		},
		Career:         "교수, 연구원, 작가, 종교인, 상담사, 교육자",
		Wealth:         "명예와 함께 오는 부, 지적 재산, 안정적 수입",
		Relationship:   "정신적 교감 중시, 온화한 가정, 자녀 교육 중시",
		Cautions:       []string{"현실감 부족", "의존적 성향", "결단력 부족"},
		Famous:         []string{"공자", "퇴계 이황"},
		SuccessFactors: []string{"지속적 학습", "인덕 쌓기", "후진 양성"},
	},
	PatFollowing: {
		Name:        "종격 (從格)",
		Description: "일간이 극도로 약해 다른 오행을 따르는 격",
		Characteristics: []string{
			"유연한 적응력", "협조적 성향", "상황 판단력", "처세술", "변화 수용",
		},
		Career:         "외교관, 중재자, 컨설턴트, 서비스업, 비서",
		Wealth:         "타인과의 협력으로 성공, 인맥이 재산",
		Relationship:   "조화로운 관계, 배우자 운 강함, 협력적",
		Cautions:       []string{"주체성 부족", "의존적", "줏대 없음"},
		Famous:         []string{"헨리 키신저"},
		SuccessFactors: []string{"협력 관계", "적응력", "인맥 관리"},
	},
	PatDominant: {
		Name:        "전왕격 (專旺格)",
		Description: "일간이 극도로 강해 자기 오행만 왕성한 격",
		Characteristics: []string{
			"강한 자아", "독립심", "추진력", "자신감", "리더십",
		},
		Career:         "CEO, 창업가, 정치인, 독립 사업가, 예술가",
		Wealth:         "자수성가, 독립 사업으로 큰 성공",
		Relationship:   "독립적 관계, 강한 개성, 이해 필요",
		Cautions:       []string{"독선적", "협력 부족", "고집"},
		Famous:         []string{"이건희", "일론 머스크"},
		SuccessFactors: []string{"독창성", "추진력", "비전"},
	},
	PatSingleElement: {
		Name:        "일행득기격 (一行得氣格)",
		Description: "한 가지 오행이 극도로 강한 격",
		Characteristics: []string{
			"전문성", "집중력", "완벽주의", "깊이 있는 탐구", "한 분야 최고",
		},
		Career:         "전문가, 장인, 연구원, 교수, 기술자",
		Wealth:         "전문 분야에서 최고 대우, 안정적 고수입",
		Relationship:   "깊고 진실한 관계, 소수 정예",
		Cautions:       []string{"융통성 부족", "편협함", "사회성 부족"},
		Famous:         []string{"장영실", "스티븐 호킹"},
		SuccessFactors: []string{"전문성 극대화", "꾸준한 연구", "깊이"},
	},
	PatYangBlade: {
		Name:        "양인격 (陽刃格)",
		Description: "양인(羊刃)이 강하게 작용하는 격",
		Characteristics: []string{
			"강인한 의지", "투쟁심", "극단적 성향", "돌파력", "결단력",
		},
		Career:         "군인, 격투기 선수, 외과의사, 혁명가",
		Wealth:         "극과 극의 재운, 대박 또는 대실패",
		Relationship:   "열정적이지만 폭발적, 극단적 사랑",
		Cautions:       []string{"폭력성", "극단주의", "자제력 부족"},
		Famous:         []string{"관우", "나폴레옹"},
		SuccessFactors: []string{"자제력", "인내", "중용"},
	},
	PatEstablished: {
		Name:        "건록격 (建祿格)",
		Description: "월지에 건록이 있는 격",
		Characteristics: []string{
			"자수성가", "독립심", "실력 중시", "자립심", "노력형",
		},
		Career:         "창업가, 자영업, 프리랜서, 전문직",
		Wealth:         "자신의 노력으로 축적, 실력이 곧 재산",
		Relationship:   "독립적 관계, 실력 있는 배우자",
		Cautions:       []string{"고독", "협력 부족", "완고함"},
		Famous:         []string{"안철수", "마크 저커버그"},
		SuccessFactors: []string{"실력 향상", "독창성", "끈기"},
	},
	PatMonthRob: {
		Name:        "월겁격 (月劫格)",
		Description: "월지에 겁재가 있는 격",
		Characteristics: []string{
			"경쟁심", "도전 정신", "형제·친구 중시", "협동심", "활동적",
		},
		Career:         "스포츠, 영업, 경쟁 분야, 팀 리더",
		Wealth:         "경쟁을 통한 성취, 공동 사업 성공",
		Relationship:   "친구 같은 연인, 동료애, 경쟁적 관계",
		Cautions:       []string{"과도한 경쟁", "시기심", "배신"},
		Famous:         []string{"손흥민", "김연아"},
		SuccessFactors: []string{"팀워크", "정정당당", "우정"},
	},
	PatFireEarth: {
		Name:        "화기토양격 (火氣土養格)",
		Description: "화와 토가 조화를 이루는 특수격",
		Characteristics: []string{
			"따뜻한 성품", "포용력", "중재 능력", "안정감", "신뢰감",
		},
		Career:         "교육자, 상담사, 중재자, 사회사업가",
		Wealth:         "안정적이고 지속적인 수입, 신뢰가 재산",
		Relationship:   "따뜻하고 안정적인 관계, 가족 화목",
		Cautions:       []string{"우유부단", "과도한 배려", "자기 희생"},
		Famous:         []string{"테레사 수녀", "김구"},
		SuccessFactors: []string{"인덕", "신뢰", "포용"},
	},
	PatCurvedStraight: {
		Name:        "곡직격 (曲直格)",
		Description: "목이 왕성하여 곧게 뻗는 격",
		Characteristics: []string{
			"정직함", "성장 지향", "생명력", "창의성", "발전 가능성",
		},
		Career:         "교육, 의료, 환경, 예술, 디자인",
		Wealth:         "성장과 함께 증가하는 부, 장기 투자 성공",
		Relationship:   "성장하는 사랑, 발전적 관계",
		Cautions:       []string{"융통성 부족", "고집", "급성장 부작용"},
		Famous:         []string{"세종대왕", "빌 게이츠"},
		SuccessFactors: []string{"지속 성장", "창의력", "정직"},
	},
	PatBlazing: {
		Name:        "염상격 (炎上格)",
		Description: "화가 왕성하여 타오르는 격",
		Characteristics: []string{
			"열정", "화려함", "표현력", "리더십", "카리스마",
		},
		Career:         "연예인, 정치인, CEO, 예술가, 방송인",
		Wealth:         "명성과 함께 오는 부, 대중적 성공",
		Relationship:   "열정적 사랑, 화려한 로맨스",
		Cautions:       []string{"허영", "과시욕", "번아웃"},
		Famous:         []string{"마릴린 먼로", "엘비스 프레슬리"},
		SuccessFactors: []string{"열정 유지", "겸손", "지속력"},
	},
	PatRevolution: {
		Name:        "종혁격 (從革格)",
		Description: "금이 왕성하여 개혁하는 격",
		Characteristics: []string{
			"개혁 정신", "결단력", "정의감", "단호함", "변화 주도",
		},
		Career:         "법조인, 개혁가, 정치인, 군인, 경찰",
		Wealth:         "정의로운 부, 개혁을 통한 성공",
		Relationship:   "원칙적 사랑, 정의로운 관계",
		Cautions:       []string{"융통성 부족", "극단주의", "독선"},
		Famous:         []string{"링컨", "마틴 루터 킹"},
		SuccessFactors: []string{"정의", "용기", "신념"},
	},
	PatFlowing: {
		Name:        "윤하격 (潤下格)",
		Description: "수가 왕성하여 흐르는 격",
		Characteristics: []string{
			"유연함", "적응력", "지혜", "통찰력", "변화무쌍",
		},
		Career:         "철학자, 작가, 심리학자, 외교관, 컨설턴트",
		Wealth:         "지혜를 통한 부, 유동적 자산",
		Relationship:   "깊은 이해, 정신적 교감",
		Cautions:       []string{"우유부단", "일관성 부족", "산만함"},
		Famous:         []string{"노자", "공자"},
		SuccessFactors: []string{"지혜", "통찰", "유연성"},
	},
}
