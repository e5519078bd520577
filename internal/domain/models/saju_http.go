package models

// Requests for the saju HTTP endpoints. Defined in domain for consistency and reuse.

// Analysis kinds a calculate request can ask for.
const (
	AnalysisElements = "elements"
	AnalysisTenGods  = "ten_gods"
	AnalysisStrength = "strength"
	AnalysisPattern  = "pattern"
	AnalysisYongshin = "yongshin"
	AnalysisShinshal = "shinshal"
	AnalysisFortune  = "fortune"
)

// AllAnalyses is the expansion of an omitted analyses list.
func AllAnalyses() []string {
	return []string{
		AnalysisElements, AnalysisTenGods, AnalysisStrength,
		AnalysisPattern, AnalysisYongshin, AnalysisShinshal, AnalysisFortune,
	}
}

type CalculateRequest struct {
	BirthDate string   `json:"birth_date" validate:"required,datetime=2006-01-02"`
	BirthTime string   `json:"birth_time" validate:"required,datetime=15:04"`
	Gender    string   `json:"gender" validate:"required,oneof=male female"`
	Calendar  string   `json:"calendar" default:"solar" validate:"oneof=solar lunar"`
	LeapMonth bool     `json:"leap_month"`
	Analyses  []string `json:"analyses" validate:"omitempty,dive,oneof=elements ten_gods strength pattern yongshin shinshal fortune"`
}

// PersonInput is one side of a compatibility request.
type PersonInput struct {
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	BirthTime string `json:"birth_time" validate:"required,datetime=15:04"`
	Gender    string `json:"gender" validate:"required,oneof=male female"`
	Calendar  string `json:"calendar" default:"solar" validate:"oneof=solar lunar"`
	LeapMonth bool   `json:"leap_month"`
}

type CompatibilityRequest struct {
	Person1 PersonInput `json:"person1" validate:"required"`
	Person2 PersonInput `json:"person2" validate:"required"`
	Mode    string      `json:"mode" default:"general" validate:"oneof=general lover marriage business family"`
	// Relation refines family mode: 부모자녀 or 형제자매.
	Relation string `json:"relation" validate:"omitempty,oneof=부모자녀 형제자매"`
}

type HistoryRequest struct {
	Limit  int `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=500"`
	Offset int `query:"offset" json:"offset" validate:"gte=0"`
}

type InfoRequest struct {
	Type string `param:"type" json:"type" validate:"required,oneof=stems branches elements ten_gods patterns shinshal"`
}
