package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"SajuCore/internal/domain/models"
	domrepo "SajuCore/internal/domain/repository"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/calendar"
	"SajuCore/internal/saju/classify"
	"SajuCore/internal/saju/fortune"
	icache "SajuCore/internal/service/cache"
	pkgcache "SajuCore/pkg/cache"
	xlogger "SajuCore/pkg/logger"
	"SajuCore/pkg/util"
)

// PillarView is the JSON shape of one pillar.
type PillarView struct {
	Name    string `json:"name"`
	Stem    string `json:"stem"`
	Branch  string `json:"branch"`
	Element string `json:"element"`
	Ordinal int    `json:"ordinal"`
}

// ChartView is the JSON shape of a chart.
type ChartView struct {
	Year          PillarView `json:"year"`
	Month         PillarView `json:"month"`
	Day           PillarView `json:"day"`
	Hour          PillarView `json:"hour"`
	DayMaster     string     `json:"day_master"`
	SolarDate     string     `json:"solar_date"`
	Gender        string     `json:"gender"`
	Calendar      string     `json:"calendar"`
	AdjustedMonth int        `json:"adjusted_month"`
	DayAdjusted   bool       `json:"day_adjusted,omitempty"`
}

// ElementsSection pairs the raw distribution with its balance report.
type ElementsSection struct {
	Distribution analysis.ElementDistribution `json:"distribution"`
	Balance      analysis.BalanceReport       `json:"balance"`
}

// FortuneSection bundles the major-fortune outputs.
type FortuneSection struct {
	Start   fortune.StartInfo   `json:"start"`
	Periods []fortune.Period    `json:"periods"`
	Current *fortune.Period     `json:"current,omitempty"`
	Year    fortune.YearReading `json:"year"`
	Day     fortune.DayReading  `json:"day"`
}

// CalculationResult is the full calculate response; every analysis section
// is independently optional.
type CalculationResult struct {
	Chart    ChartView                 `json:"chart"`
	Elements *ElementsSection          `json:"elements,omitempty"`
	TenGods  *analysis.TenGodReading   `json:"ten_gods,omitempty"`
	Strength *analysis.StrengthReading `json:"strength,omitempty"`
	Pattern  *classify.PatternReading  `json:"pattern,omitempty"`
	Yongshin *classify.YongshinReading `json:"yongshin,omitempty"`
	Shinshal *classify.StarReading     `json:"shinshal,omitempty"`
	Fortune  *FortuneSection           `json:"fortune,omitempty"`
}

// ReadingProcessor orchestrates the engine packages behind the calculate
// endpoint: chart, requested analyses, caching, history and events.
type ReadingProcessor struct {
	calc     *calendar.Calculator
	store    domrepo.ReadingStore
	pub      domrepo.Publisher
	metrics  domrepo.Metrics
	cache    icache.BytesCache
	cacheTTL time.Duration
	logger   *xlogger.Logger
	now      func() time.Time
}

func NewReadingProcessor(
	calc *calendar.Calculator,
	store domrepo.ReadingStore,
	pub domrepo.Publisher,
	metrics domrepo.Metrics,
	cache icache.BytesCache,
	cacheTTL time.Duration,
	logger *xlogger.Logger,
) *ReadingProcessor {
	return &ReadingProcessor{
		calc:     calc,
		store:    store,
		pub:      pub,
		metrics:  metrics,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Calculate builds a chart from the request and runs the requested
// analyses. Identical inputs are referentially pure, so cache hits are
// exact.
func (p *ReadingProcessor) Calculate(ctx context.Context, req *models.CalculateRequest) (*CalculationResult, error) {
	analyses := req.Analyses
	if len(analyses) == 0 {
		analyses = models.AllAnalyses()
	}
	digest := calculationDigest(req, analyses, p.fortuneDay(analyses))
	cacheKey := pkgcache.GenerateKey("saju:calc", digest)

	if p.cache != nil {
		if b, ok, err := p.cache.GetBytes(cacheKey); err == nil && ok {
			var cached CalculationResult
			if err := json.Unmarshal(b, &cached); err == nil {
				p.metrics.RecordCache("hit")
				return &cached, nil
			}
		}
		p.metrics.RecordCache("miss")
	}

	start := p.now()
	chart, err := p.buildChart(req.BirthDate, req.BirthTime, req.Gender, req.Calendar, req.LeapMonth)
	if err != nil {
		p.metrics.RecordError("calculate")
		return nil, err
	}

	res := &CalculationResult{Chart: chartView(chart)}
	for _, kind := range analyses {
		if err := p.runAnalysis(kind, chart, res); err != nil {
			p.metrics.RecordError("analysis_" + kind)
			return nil, err
		}
		p.metrics.RecordCalculation(kind)
	}
	p.metrics.RecordLatency("calculate_seconds", p.now().Sub(start).Seconds())

	if p.cache != nil {
		if b, err := json.Marshal(res); err == nil {
			_ = p.cache.SetBytes(cacheKey, b, p.cacheTTL)
		}
	}

	p.record(ctx, readingOf(digest, req, chart, res, p.now()))
	return res, nil
}

func (p *ReadingProcessor) runAnalysis(kind string, chart *models.Chart, res *CalculationResult) error {
	switch kind {
	case models.AnalysisElements:
		dist := analysis.Distribution(chart)
		res.Elements = &ElementsSection{Distribution: dist, Balance: analysis.Balance(dist)}
	case models.AnalysisTenGods:
		reading, err := analysis.TenGods(chart)
		if err != nil {
			return err
		}
		res.TenGods = reading
	case models.AnalysisStrength:
		reading, err := analysis.DayMasterStrength(chart)
		if err != nil {
			return err
		}
		res.Strength = reading
	case models.AnalysisPattern:
		reading, err := classify.AnalyzePattern(chart)
		if err != nil {
			return err
		}
		res.Pattern = reading
	case models.AnalysisYongshin:
		reading, err := classify.Yongshin(chart)
		if err != nil {
			return err
		}
		res.Yongshin = reading
	case models.AnalysisShinshal:
		res.Shinshal = classify.Stars(chart)
	case models.AnalysisFortune:
		now := p.now()
		section := &FortuneSection{
			Start:   fortune.Start(chart),
			Periods: fortune.Periods(chart),
			Year:    fortune.Yearly(now.Year(), chart),
			Day:     fortune.Daily(now, chart),
		}
		if cur, ok := fortune.Current(chart, now); ok {
			section.Current = &cur
		}
		res.Fortune = section
	}
	return nil
}

// History returns recent readings from the store, newest first.
func (p *ReadingProcessor) History(ctx context.Context, limit, offset int) ([]*models.Reading, error) {
	if p.store == nil {
		return nil, nil
	}
	return p.store.Recent(ctx, limit, offset)
}

func (p *ReadingProcessor) buildChart(date, tm, gender, cal string, leap bool) (*models.Chart, error) {
	y, m, d, ok := util.ParseDate(date)
	if !ok {
		return nil, &calendar.FormatError{Field: "birth_date", Value: date}
	}
	return p.calc.Calculate(calendar.BirthInput{
		Year: y, Month: m, Day: d,
		Time:      tm,
		Gender:    models.Gender(gender),
		Calendar:  models.Calendar(cal),
		LeapMonth: leap,
	})
}

// record persists and publishes the completed reading. Both paths are
// non-fatal: a full history store or broker never fails a calculation.
func (p *ReadingProcessor) record(ctx context.Context, r *models.Reading) {
	if p.store != nil {
		start := p.now()
		if err := p.store.Store(ctx, r); err != nil {
			p.metrics.RecordError("history_store")
			p.logger.Warn("reading store failed", xlogger.Error(err), xlogger.String("digest", r.Digest))
		}
		p.metrics.RecordLatency("history_insert_seconds", p.now().Sub(start).Seconds())
	}
	if p.pub != nil {
		if err := p.pub.Publish(ctx, r); err != nil {
			p.metrics.RecordError("event_publish")
			p.logger.Warn("reading publish failed", xlogger.Error(err), xlogger.String("digest", r.Digest))
		}
	}
}

func chartView(c *models.Chart) ChartView {
	return ChartView{
		Year:          pillarView(c.Year),
		Month:         pillarView(c.Month),
		Day:           pillarView(c.Day),
		Hour:          pillarView(c.Hour),
		DayMaster:     c.DayMaster().String(),
		SolarDate:     c.Born.Format("2006-01-02 15:04"),
		Gender:        string(c.Gender),
		Calendar:      string(c.Calendar),
		AdjustedMonth: c.AdjustedMonth,
		DayAdjusted:   c.DayAdjusted,
	}
}

func pillarView(p models.Pillar) PillarView {
	return PillarView{
		Name:    p.Name(),
		Stem:    p.Stem.String(),
		Branch:  p.Branch.String(),
		Element: p.Stem.Element().Symbol(),
		Ordinal: p.Ordinal(),
	}
}

func readingOf(digest string, req *models.CalculateRequest, chart *models.Chart, res *CalculationResult, at time.Time) *models.Reading {
	r := &models.Reading{
		Digest:    digest,
		Kind:      models.KindCalculation,
		Timestamp: at,
		BirthDate: req.BirthDate,
		BirthTime: req.BirthTime,
		Gender:    req.Gender,
		Calendar:  req.Calendar,
	}
	for i, p := range chart.Pillars() {
		r.Pillars[i] = p.Ordinal()
	}
	if res.Strength != nil {
		r.StrengthBand = string(res.Strength.Band)
	}
	if res.Pattern != nil {
		r.Pattern = res.Pattern.Pattern.String()
	}
	return r
}

// fortuneDay pins fortune-bearing requests to their evaluation day: the
// yearly/daily sub-fortunes depend on the clock, so a cached result must
// not outlive the day it was computed on.
func (p *ReadingProcessor) fortuneDay(analyses []string) string {
	for _, kind := range analyses {
		if kind == models.AnalysisFortune {
			return p.now().Format("2006-01-02")
		}
	}
	return ""
}

func calculationDigest(req *models.CalculateRequest, analyses []string, day string) string {
	sorted := append([]string(nil), analyses...)
	sort.Strings(sorted)
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%s|%v|%s|%s",
		req.BirthDate, req.BirthTime, req.Gender, req.Calendar, req.LeapMonth,
		strings.Join(sorted, ","), day)))
	return hex.EncodeToString(h[:8])
}
