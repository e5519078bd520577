package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/saju/calendar"
	icache "SajuCore/internal/service/cache"
	xlogger "SajuCore/pkg/logger"
)

type fakeStore struct {
	stored []*models.Reading
	recent []*models.Reading
}

func (f *fakeStore) Init(ctx context.Context) error { return nil }
func (f *fakeStore) Store(ctx context.Context, r *models.Reading) error {
	f.stored = append(f.stored, r)
	return nil
}
func (f *fakeStore) Recent(ctx context.Context, limit, offset int) ([]*models.Reading, error) {
	return f.recent, nil
}
func (f *fakeStore) Health(ctx context.Context) error { return nil }
func (f *fakeStore) Close() error                     { return nil }

type fakePublisher struct {
	published []*models.Reading
}

func (f *fakePublisher) Publish(ctx context.Context, r *models.Reading) error {
	f.published = append(f.published, r)
	return nil
}
func (f *fakePublisher) Close() error { return nil }

type fakeMetrics struct {
	calculations map[string]int
	cacheEvents  map[string]int
	errors       map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		calculations: map[string]int{},
		cacheEvents:  map[string]int{},
		errors:       map[string]int{},
	}
}

func (f *fakeMetrics) RecordCalculation(analysis string)     { f.calculations[analysis]++ }
func (f *fakeMetrics) RecordCompatibility(mode string)       {}
func (f *fakeMetrics) RecordCache(result string)             { f.cacheEvents[result]++ }
func (f *fakeMetrics) RecordError(kind string)               { f.errors[kind]++ }
func (f *fakeMetrics) RecordLatency(op string, secs float64) {}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestProcessor(t *testing.T, store *fakeStore, pub *fakePublisher, m *fakeMetrics) *ReadingProcessor {
	t.Helper()
	calc := calendar.NewCalculator(calendar.NewLunarGoConverter())
	return NewReadingProcessor(calc, store, pub, m, icache.NewTTLCache(), time.Minute, testLogger(t))
}

func calcRequest() *models.CalculateRequest {
	return &models.CalculateRequest{
		BirthDate: "1990-05-15",
		BirthTime: "12:30",
		Gender:    "male",
		Calendar:  "solar",
	}
}

func TestCalculateAllAnalyses(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{}
	m := newFakeMetrics()
	p := newTestProcessor(t, store, pub, m)

	res, err := p.Calculate(context.Background(), calcRequest())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.Elements == nil || res.TenGods == nil || res.Strength == nil ||
		res.Pattern == nil || res.Yongshin == nil || res.Shinshal == nil || res.Fortune == nil {
		t.Fatalf("expected every section populated, got %+v", res)
	}
	if res.Chart.DayMaster == "" {
		t.Errorf("empty day master")
	}
	if res.Chart.SolarDate != "1990-05-15 12:30" {
		t.Errorf("solar date = %q", res.Chart.SolarDate)
	}
	for _, kind := range models.AllAnalyses() {
		if m.calculations[kind] != 1 {
			t.Errorf("analysis %s recorded %d times", kind, m.calculations[kind])
		}
	}
}

func TestCalculateSubset(t *testing.T) {
	p := newTestProcessor(t, &fakeStore{}, &fakePublisher{}, newFakeMetrics())
	req := calcRequest()
	req.Analyses = []string{models.AnalysisElements, models.AnalysisStrength}

	res, err := p.Calculate(context.Background(), req)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.Elements == nil || res.Strength == nil {
		t.Fatalf("requested sections missing")
	}
	if res.TenGods != nil || res.Pattern != nil || res.Fortune != nil {
		t.Errorf("unrequested sections present")
	}
}

func TestCalculateStoresAndPublishes(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{}
	p := newTestProcessor(t, store, pub, newFakeMetrics())

	if _, err := p.Calculate(context.Background(), calcRequest()); err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(store.stored) != 1 {
		t.Fatalf("stored %d readings, want 1", len(store.stored))
	}
	r := store.stored[0]
	if r.Kind != models.KindCalculation {
		t.Errorf("kind = %q", r.Kind)
	}
	if r.Digest == "" || r.StrengthBand == "" || r.Pattern == "" {
		t.Errorf("incomplete reading: %+v", r)
	}
	if len(pub.published) != 1 || pub.published[0].Digest != r.Digest {
		t.Errorf("event not published alongside store")
	}
}

func TestCalculateCacheHit(t *testing.T) {
	store := &fakeStore{}
	m := newFakeMetrics()
	p := newTestProcessor(t, store, &fakePublisher{}, m)

	first, err := p.Calculate(context.Background(), calcRequest())
	if err != nil {
		t.Fatalf("first calculate: %v", err)
	}
	second, err := p.Calculate(context.Background(), calcRequest())
	if err != nil {
		t.Fatalf("second calculate: %v", err)
	}
	if m.cacheEvents["hit"] != 1 || m.cacheEvents["miss"] != 1 {
		t.Errorf("cache events = %v", m.cacheEvents)
	}
	if len(store.stored) != 1 {
		t.Errorf("cache hit should not store again, stored %d", len(store.stored))
	}
	if first.Chart.Year.Ordinal != second.Chart.Year.Ordinal {
		t.Errorf("cached chart differs")
	}
}

func TestCalculateBadDate(t *testing.T) {
	m := newFakeMetrics()
	p := newTestProcessor(t, &fakeStore{}, &fakePublisher{}, m)
	req := calcRequest()
	req.BirthDate = "not-a-date"

	if _, err := p.Calculate(context.Background(), req); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if m.errors["calculate"] != 1 {
		t.Errorf("error not recorded: %v", m.errors)
	}
}

func TestCalculateDigestIgnoresAnalysisOrder(t *testing.T) {
	a := calcRequest()
	a.Analyses = []string{models.AnalysisTenGods, models.AnalysisElements}
	b := calcRequest()
	b.Analyses = []string{models.AnalysisElements, models.AnalysisTenGods}

	if calculationDigest(a, a.Analyses, "") != calculationDigest(b, b.Analyses, "") {
		t.Error("digest should not depend on analysis order")
	}
	c := calcRequest()
	c.BirthTime = "13:30"
	if calculationDigest(a, a.Analyses, "") == calculationDigest(c, a.Analyses, "") {
		t.Error("digest should depend on birth time")
	}
	if calculationDigest(a, a.Analyses, "2024-12-31") == calculationDigest(a, a.Analyses, "2025-01-01") {
		t.Error("digest should depend on the evaluation day")
	}
}

func TestCalculateFortuneNotServedStale(t *testing.T) {
	store := &fakeStore{}
	m := newFakeMetrics()
	p := newTestProcessor(t, store, &fakePublisher{}, m)

	clock := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return clock }

	req := calcRequest()
	req.Analyses = []string{models.AnalysisFortune}

	first, err := p.Calculate(context.Background(), req)
	if err != nil {
		t.Fatalf("first calculate: %v", err)
	}
	if first.Fortune.Year.Year != 2024 {
		t.Fatalf("first yearly fortune for %d, want 2024", first.Fortune.Year.Year)
	}

	clock = time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)
	second, err := p.Calculate(context.Background(), req)
	if err != nil {
		t.Fatalf("second calculate: %v", err)
	}
	if second.Fortune.Year.Year != 2025 {
		t.Errorf("yearly fortune served for %d after rollover, want 2025", second.Fortune.Year.Year)
	}
	if !second.Fortune.Day.Date.Equal(clock) {
		t.Errorf("daily fortune evaluated at %v, want %v", second.Fortune.Day.Date, clock)
	}
	if m.cacheEvents["hit"] != 0 {
		t.Errorf("rollover request must not hit the previous day's cache entry: %v", m.cacheEvents)
	}

	// within the same day the cache still serves
	if _, err := p.Calculate(context.Background(), req); err != nil {
		t.Fatalf("third calculate: %v", err)
	}
	if m.cacheEvents["hit"] != 1 {
		t.Errorf("same-day repeat should hit the cache: %v", m.cacheEvents)
	}
}

func TestCompatibilityModes(t *testing.T) {
	p := newTestProcessor(t, &fakeStore{}, &fakePublisher{}, newFakeMetrics())

	base := models.PersonInput{BirthDate: "1990-05-15", BirthTime: "12:30", Gender: "male", Calendar: "solar"}
	other := models.PersonInput{BirthDate: "1992-08-20", BirthTime: "09:00", Gender: "female", Calendar: "solar"}

	for _, mode := range []string{"general", "lover", "marriage", "business", "family"} {
		req := &models.CompatibilityRequest{Person1: base, Person2: other, Mode: mode}
		if mode == "family" {
			req.Relation = "부모자녀"
		}
		res, err := p.Compatibility(context.Background(), req)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if res.Mode != mode {
			t.Errorf("%s: mode echoed as %q", mode, res.Mode)
		}
		if res.Scoring == nil {
			t.Errorf("%s: nil scoring", mode)
		}
	}
}

func TestCompatibilityRecordsScore(t *testing.T) {
	store := &fakeStore{}
	p := newTestProcessor(t, store, &fakePublisher{}, newFakeMetrics())

	req := &models.CompatibilityRequest{
		Person1: models.PersonInput{BirthDate: "1990-05-15", BirthTime: "12:30", Gender: "male", Calendar: "solar"},
		Person2: models.PersonInput{BirthDate: "1992-08-20", BirthTime: "09:00", Gender: "female", Calendar: "solar"},
		Mode:    "general",
	}
	if _, err := p.Compatibility(context.Background(), req); err != nil {
		t.Fatalf("compatibility: %v", err)
	}
	if len(store.stored) != 1 {
		t.Fatalf("stored %d, want 1", len(store.stored))
	}
	r := store.stored[0]
	if r.Kind != models.KindCompatibility {
		t.Errorf("kind = %q", r.Kind)
	}
	if r.Score <= 0 || r.Score > 100 {
		t.Errorf("score out of range: %v", r.Score)
	}
}

func TestHistoryDelegatesToStore(t *testing.T) {
	store := &fakeStore{recent: []*models.Reading{{Digest: "abc"}}}
	p := newTestProcessor(t, store, &fakePublisher{}, newFakeMetrics())

	rows, err := p.History(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 1 || rows[0].Digest != "abc" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestCalculationResultRoundTrips(t *testing.T) {
	p := newTestProcessor(t, &fakeStore{}, &fakePublisher{}, newFakeMetrics())
	res, err := p.Calculate(context.Background(), calcRequest())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back CalculationResult
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Chart.Day.Ordinal != res.Chart.Day.Ordinal {
		t.Errorf("day pillar lost in round trip")
	}
}
