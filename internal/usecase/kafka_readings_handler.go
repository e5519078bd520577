package usecase

import (
	"context"
	"encoding/json"
	"time"

	"SajuCore/internal/domain/models"
	domrepo "SajuCore/internal/domain/repository"
	pkgkafka "SajuCore/pkg/kafka"
)

// KafkaReadingsHandler consumes reading events and writes them to the
// history store. It lets ingest run apart from the API pods.
type KafkaReadingsHandler struct {
	topic   string
	store   domrepo.ReadingStore
	metrics domrepo.Metrics
}

func NewKafkaReadingsHandler(topic string, store domrepo.ReadingStore, metrics domrepo.Metrics) *KafkaReadingsHandler {
	return &KafkaReadingsHandler{topic: topic, store: store, metrics: metrics}
}

func (h *KafkaReadingsHandler) Topic() string { return h.topic }

func (h *KafkaReadingsHandler) Handle(ctx context.Context, b []byte) error {
	if h.store == nil {
		// consumer enabled without a history store: drop, retrying cannot help
		h.metrics.RecordError("consumer_no_store")
		return nil
	}
	var r models.Reading
	if err := json.Unmarshal(b, &r); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}
	if r.Digest == "" || r.Kind == "" {
		h.metrics.RecordError("consumer_invalid")
		return nil // drop, not worth a retry
	}
	// E2E latency from calculation time to ingest (approx)
	h.metrics.RecordLatency("ingest_e2e_seconds", time.Since(r.Timestamp).Seconds())

	start := time.Now()
	err := h.store.Store(ctx, &r)
	h.metrics.RecordLatency("history_insert_seconds", time.Since(start).Seconds())
	if err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaReadingsHandler)(nil)
