package repository

import (
	"context"
	"database/sql"
	"time"

	"SajuCore/internal/domain/models"
	"SajuCore/internal/domain/repository"
	pkgkafka "SajuCore/pkg/kafka"
)

// ClickHouseReadingStore implements ReadingStore for ClickHouse.
type ClickHouseReadingStore struct {
	db    *sql.DB
	table string
}

// NewClickHouseReadingStore creates ClickHouse-backed reading history.
func NewClickHouseReadingStore(db *sql.DB, table string) repository.ReadingStore {
	return &ClickHouseReadingStore{db: db, table: table}
}

func (s *ClickHouseReadingStore) Init(ctx context.Context) error {
	return nil // Schema init in pkg
}

func (s *ClickHouseReadingStore) Store(ctx context.Context, r *models.Reading) error {
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	q := "INSERT INTO " + s.table + " (ts, digest, kind, birth_date, birth_time, gender, calendar, year_pillar, month_pillar, day_pillar, hour_pillar, strength_band, pattern, mode, score) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, q,
		ts,
		r.Digest,
		string(r.Kind),
		r.BirthDate,
		r.BirthTime,
		r.Gender,
		r.Calendar,
		uint8(r.Pillars[0]),
		uint8(r.Pillars[1]),
		uint8(r.Pillars[2]),
		uint8(r.Pillars[3]),
		r.StrengthBand,
		r.Pattern,
		r.Mode,
		r.Score,
	)
	return err
}

func (s *ClickHouseReadingStore) Recent(ctx context.Context, limit, offset int) ([]*models.Reading, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	q := "SELECT ts, digest, kind, birth_date, birth_time, gender, calendar, year_pillar, month_pillar, day_pillar, hour_pillar, strength_band, pattern, mode, score FROM " + s.table + " ORDER BY ts DESC LIMIT ? OFFSET ?"
	rows, err := s.db.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Reading
	for rows.Next() {
		var (
			r              models.Reading
			kind           string
			yp, mp, dp, hp uint8
		)
		if err := rows.Scan(&r.Timestamp, &r.Digest, &kind, &r.BirthDate, &r.BirthTime, &r.Gender, &r.Calendar,
			&yp, &mp, &dp, &hp, &r.StrengthBand, &r.Pattern, &r.Mode, &r.Score); err != nil {
			return nil, err
		}
		r.Kind = models.ReadingKind(kind)
		r.Pillars = [4]int{int(yp), int(mp), int(dp), int(hp)}
		out = append(out, &r)
	}
	return out, rows.Err()
}

func (s *ClickHouseReadingStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseReadingStore) Close() error {
	return nil // Managed by pkg
}

// KafkaPublisher implements Publisher for Kafka reading events.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates a Kafka reading-event publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

// Publish emits one reading event keyed by its input digest so replays
// of the same chart land on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, r *models.Reading) error {
	return p.producer.Publish(ctx, p.topic, []byte(r.Digest), r)
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
