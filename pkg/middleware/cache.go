package middleware

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/engine"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/store"
)

// Cache short-circuits analysis for codes already present in the store. The store
// owner invalidates entries. Instruments without a code bypass the cache.
type Cache struct {
	store  *store.RecordStore
	hits   atomic.Int64
	misses atomic.Int64
}

func NewCache(s *store.RecordStore) *Cache {
	return &Cache{
		store: s,
	}
}

func (c *Cache) WithAnalyze(handler engine.AnalyzeHandler) engine.AnalyzeHandler {
	return func(ctx context.Context, instrument common.Instrument) common.MetricsRecord {
		if strings.TrimSpace(instrument.Code) == "" {
			return handler(ctx, instrument)
		}
		if r, err := c.store.Get(instrument.Code); err == nil {
			c.hits.Add(1)
			return r
		}
		c.misses.Add(1)
		r := handler(ctx, instrument)
		c.store.Put(r)
		return r
	}
}

func (c *Cache) Hits() int64   { return c.hits.Load() }
func (c *Cache) Misses() int64 { return c.misses.Load() }
