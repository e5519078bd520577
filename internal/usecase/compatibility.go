package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/compat"
	pkgcache "SajuCore/pkg/cache"
)

// CompatibilityResult wraps one mode's scoring together with both charts.
type CompatibilityResult struct {
	Mode    string      `json:"mode"`
	Person1 ChartView   `json:"person1"`
	Person2 ChartView   `json:"person2"`
	Scoring interface{} `json:"result"`
}

// Compatibility builds both charts and scores them in the requested mode.
func (p *ReadingProcessor) Compatibility(ctx context.Context, req *models.CompatibilityRequest) (*CompatibilityResult, error) {
	digest := compatibilityDigest(req)
	cacheKey := pkgcache.GenerateKey("saju:compat", digest)

	if p.cache != nil {
		if b, ok, err := p.cache.GetBytes(cacheKey); err == nil && ok {
			var cached CompatibilityResult
			if err := json.Unmarshal(b, &cached); err == nil {
				p.metrics.RecordCache("hit")
				return &cached, nil
			}
		}
		p.metrics.RecordCache("miss")
	}

	a, err := p.buildChart(req.Person1.BirthDate, req.Person1.BirthTime, req.Person1.Gender, req.Person1.Calendar, req.Person1.LeapMonth)
	if err != nil {
		p.metrics.RecordError("compatibility")
		return nil, fmt.Errorf("person1: %w", err)
	}
	b, err := p.buildChart(req.Person2.BirthDate, req.Person2.BirthTime, req.Person2.Gender, req.Person2.Calendar, req.Person2.LeapMonth)
	if err != nil {
		p.metrics.RecordError("compatibility")
		return nil, fmt.Errorf("person2: %w", err)
	}

	res := &CompatibilityResult{
		Mode:    req.Mode,
		Person1: chartView(a),
		Person2: chartView(b),
	}
	var score float64
	switch compat.Mode(req.Mode) {
	case compat.ModeLover:
		r := compat.Lover(a, b)
		res.Scoring, score = r, r.TotalScore
	case compat.ModeMarriage:
		r := compat.Marriage(a, b)
		res.Scoring, score = r, r.TotalScore
	case compat.ModeBusiness:
		r := compat.Business(a, b)
		res.Scoring, score = r, r.TotalScore
	case compat.ModeFamily:
		r := compat.Family(a, b, compat.FamilyRelation(req.Relation))
		res.Scoring, score = r, r.TotalScore
	default:
		r := compat.General(a, b)
		res.Scoring, score = r, r.TotalScore
	}
	p.metrics.RecordCompatibility(req.Mode)

	if p.cache != nil {
		if b, err := json.Marshal(res); err == nil {
			_ = p.cache.SetBytes(cacheKey, b, p.cacheTTL)
		}
	}

	p.record(ctx, compatReadingOf(digest, req, score, p.now()))
	return res, nil
}

func compatReadingOf(digest string, req *models.CompatibilityRequest, score float64, at time.Time) *models.Reading {
	return &models.Reading{
		Digest:    digest,
		Kind:      models.KindCompatibility,
		Timestamp: at,
		BirthDate: req.Person1.BirthDate,
		BirthTime: req.Person1.BirthTime,
		Gender:    req.Person1.Gender,
		Calendar:  req.Person1.Calendar,
		Mode:      req.Mode,
		Score:     score,
	}
}

func compatibilityDigest(req *models.CompatibilityRequest) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%s|%v||%s|%s|%s|%s|%v||%s|%s",
		req.Person1.BirthDate, req.Person1.BirthTime, req.Person1.Gender, req.Person1.Calendar, req.Person1.LeapMonth,
		req.Person2.BirthDate, req.Person2.BirthTime, req.Person2.Gender, req.Person2.Calendar, req.Person2.LeapMonth,
		req.Mode, req.Relation)))
	return hex.EncodeToString(h[:8])
}
