package repository

import (
	"context"

	"SajuCore/internal/domain/models"
)

// ReadingStore persists completed readings for the history endpoint.
type ReadingStore interface {
	Init(ctx context.Context) error // ensure tables, health checks
	Store(ctx context.Context, r *models.Reading) error
	Recent(ctx context.Context, limit, offset int) ([]*models.Reading, error)
	Health(ctx context.Context) error // ping
	Close() error
}

// Publisher emits reading events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, r *models.Reading) error
	Close() error
}

// Metrics records domain-level counters and latencies.
type Metrics interface {
	RecordCalculation(analysis string)
	RecordCompatibility(mode string)
	RecordCache(result string) // "hit" or "miss"
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
