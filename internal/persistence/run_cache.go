package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/payroll-service/internal/domain"
)

// RunCache is a read-through Redis cache for approved payroll runs.
// Runs are immutable once approved, so cached entries never go stale
// and no invalidation path exists. Previews are never cached.
type RunCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRunCache wraps the shared Redis client. A nil or unconfigured
// client yields a cache that misses on every lookup.
func NewRunCache(r *Redis, logger *zap.Logger) *RunCache {
	cache := &RunCache{logger: logger}
	if r != nil {
		cache.client = r.Client
	}
	return cache
}

func runKey(id int64) string {
	return fmt.Sprintf("payroll:run:%d", id)
}

// Get returns the cached run and true on a hit. Cache errors degrade to
// a miss; the caller falls back to the store.
func (c *RunCache) Get(ctx context.Context, id int64) (*domain.PayrollRun, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, runKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("run cache read failed", zap.Int64("payroll_id", id), zap.Error(err))
		}
		return nil, false
	}
	var run domain.PayrollRun
	if err := json.Unmarshal(payload, &run); err != nil {
		c.logger.Warn("run cache entry corrupt", zap.Int64("payroll_id", id), zap.Error(err))
		return nil, false
	}
	return &run, true
}

// Store caches an approved run. Failures are logged and ignored; the
// store remains the source of truth.
func (c *RunCache) Store(ctx context.Context, run *domain.PayrollRun) {
	if c == nil || c.client == nil || run == nil {
		return
	}
	payload, err := json.Marshal(run)
	if err != nil {
		c.logger.Warn("run cache encode failed", zap.Int64("payroll_id", run.ID), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, runKey(run.ID), payload, 0).Err(); err != nil {
		c.logger.Warn("run cache write failed", zap.Int64("payroll_id", run.ID), zap.Error(err))
	}
}
