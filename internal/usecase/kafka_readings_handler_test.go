package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"SajuCore/internal/domain/models"
)

func TestKafkaHandlerStoresReading(t *testing.T) {
	store := &fakeStore{}
	h := NewKafkaReadingsHandler("saju.readings", store, newFakeMetrics())

	if h.Topic() != "saju.readings" {
		t.Errorf("topic = %q", h.Topic())
	}

	r := models.Reading{
		Digest:    "deadbeef",
		Kind:      models.KindCalculation,
		Timestamp: time.Now().Add(-time.Second),
		BirthDate: "1990-05-15",
	}
	b, _ := json.Marshal(r)
	if err := h.Handle(context.Background(), b); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(store.stored) != 1 || store.stored[0].Digest != "deadbeef" {
		t.Errorf("stored = %+v", store.stored)
	}
}

func TestKafkaHandlerNilStoreDrops(t *testing.T) {
	m := newFakeMetrics()
	h := NewKafkaReadingsHandler("saju.readings", nil, m)

	r := models.Reading{Digest: "deadbeef", Kind: models.KindCalculation, Timestamp: time.Now()}
	b, _ := json.Marshal(r)
	if err := h.Handle(context.Background(), b); err != nil {
		t.Fatalf("nil store must drop without error, got %v", err)
	}
	if m.errors["consumer_no_store"] != 1 {
		t.Errorf("errors = %v", m.errors)
	}
}

func TestKafkaHandlerRejectsMalformed(t *testing.T) {
	store := &fakeStore{}
	m := newFakeMetrics()
	h := NewKafkaReadingsHandler("saju.readings", store, m)

	if err := h.Handle(context.Background(), []byte("{not json")); err == nil {
		t.Fatal("expected unmarshal error")
	}
	if m.errors["consumer_unmarshal"] != 1 {
		t.Errorf("errors = %v", m.errors)
	}
}

func TestKafkaHandlerDropsIncomplete(t *testing.T) {
	store := &fakeStore{}
	m := newFakeMetrics()
	h := NewKafkaReadingsHandler("saju.readings", store, m)

	// valid JSON without digest: dropped without retry
	if err := h.Handle(context.Background(), []byte(`{"kind":"calculation"}`)); err != nil {
		t.Fatalf("expected nil error for dropped message, got %v", err)
	}
	if len(store.stored) != 0 {
		t.Errorf("incomplete reading should not be stored")
	}
	if m.errors["consumer_invalid"] != 1 {
		t.Errorf("errors = %v", m.errors)
	}
}
