package cache

import (
	"context"
	"errors"
	"time"

	pkgcache "SajuCore/pkg/cache"
)

// LayeredBytes adapts the two-level memory+redis cache to BytesCache.
// Values travel as strings so both levels round-trip them unchanged.
type LayeredBytes struct {
	svc pkgcache.Service
}

func NewLayeredBytes(svc pkgcache.Service) *LayeredBytes {
	return &LayeredBytes{svc: svc}
}

func (l *LayeredBytes) GetBytes(key string) ([]byte, bool, error) {
	var s string
	if err := l.svc.Get(context.Background(), key, &s); err != nil {
		if errors.Is(err, pkgcache.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(s), true, nil
}

func (l *LayeredBytes) SetBytes(key string, value []byte, ttl time.Duration) error {
	return l.svc.Set(context.Background(), key, string(value), ttl)
}
