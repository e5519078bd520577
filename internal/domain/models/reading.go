package models

import "time"

// ReadingKind distinguishes history rows and event types.
type ReadingKind string

const (
	KindCalculation   ReadingKind = "calculation"
	KindCompatibility ReadingKind = "compatibility"
)

// Reading is one completed calculation, as persisted to the history store
// and published as an event. The engine itself never reads these back;
// they exist for the history endpoint and downstream consumers.
type Reading struct {
	Digest    string      `json:"digest"` // deterministic input digest, cache/dedup key
	Kind      ReadingKind `json:"kind"`
	Timestamp time.Time   `json:"timestamp"`

	BirthDate string `json:"birth_date"`
	BirthTime string `json:"birth_time"`
	Gender    string `json:"gender"`
	Calendar  string `json:"calendar"`

	// Sexagenary ordinals of the four pillars, year/month/day/hour.
	Pillars [4]int `json:"pillars"`

	StrengthBand string `json:"strength_band,omitempty"`
	Pattern      string `json:"pattern,omitempty"`

	// Compatibility rows only.
	Mode  string  `json:"mode,omitempty"`
	Score float64 `json:"score,omitempty"`
}
