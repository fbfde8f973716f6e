package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/furqanmax/simplepos-printing/internal/domain/layout"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Constants for in-memory cache configuration
const (
	defaultPlanTTL         = 15 * time.Minute
	defaultCleanupInterval = 30 * time.Second
)

// PlanCache memoizes layout plans per content fingerprint so reprints skip
// recomputation. Concurrent requests for the same fingerprint coalesce onto
// a single computation; invalidation is implicit, since any content change
// yields a new fingerprint.
type PlanCache struct {
	plans   sync.Map // map[string]*planEntry
	group   singleflight.Group
	ttl     time.Duration
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	// Stats for monitoring
	hits   int64
	misses int64
}

// planEntry wraps a cached plan with its expiration time
type planEntry struct {
	plan      *layout.LayoutPlan
	expiresAt time.Time
}

// isExpired checks if the cache entry has expired
func (e *planEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// PlanCacheOption is a functional option for configuring the cache
type PlanCacheOption func(*PlanCache)

// WithPlanTTL sets the retention period for cached plans
func WithPlanTTL(ttl time.Duration) PlanCacheOption {
	return func(c *PlanCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithPlanCacheLogger sets the logger for the cache
func WithPlanCacheLogger(logger *zap.Logger) PlanCacheOption {
	return func(c *PlanCache) {
		c.logger = logger
	}
}

// NewPlanCache creates a new in-memory plan cache
func NewPlanCache(opts ...PlanCacheOption) *PlanCache {
	cache := &PlanCache{
		ttl:    defaultPlanTTL,
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupExpired()

	return cache
}

// GetOrCompute returns the cached plan for the fingerprint, computing and
// caching it when absent. At most one computation runs per fingerprint at
// any time; every concurrent caller receives the same result. The second
// return value reports whether the plan was served from cache.
func (c *PlanCache) GetOrCompute(ctx context.Context, fingerprint string, compute func() (*layout.LayoutPlan, error)) (*layout.LayoutPlan, bool, error) {
	if value, ok := c.plans.Load(fingerprint); ok {
		entry := value.(*planEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			c.logger.Debug("plan cache hit", zap.String("fingerprint", fingerprint))
			return entry.plan, true, nil
		}
		c.plans.Delete(fingerprint)
	}

	atomic.AddInt64(&c.misses, 1)

	result, err, shared := c.group.Do(fingerprint, func() (any, error) {
		plan, err := compute()
		if err != nil {
			return nil, err
		}
		c.plans.Store(fingerprint, &planEntry{
			plan:      plan,
			expiresAt: time.Now().Add(c.ttl),
		})
		return plan, nil
	})
	if err != nil {
		return nil, false, err
	}

	c.logger.Debug("plan computed",
		zap.String("fingerprint", fingerprint),
		zap.Bool("coalesced", shared))
	return result.(*layout.LayoutPlan), false, nil
}

// Get returns the cached plan for the fingerprint, or nil when absent
func (c *PlanCache) Get(fingerprint string) *layout.LayoutPlan {
	if value, ok := c.plans.Load(fingerprint); ok {
		entry := value.(*planEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			return entry.plan
		}
		c.plans.Delete(fingerprint)
	}
	atomic.AddInt64(&c.misses, 1)
	return nil
}

// InvalidateAll removes every cached plan
func (c *PlanCache) InvalidateAll() {
	c.plans.Range(func(key, _ any) bool {
		c.plans.Delete(key)
		return true
	})
	c.logger.Info("invalidated all cached plans")
}

// Stats returns cache hit/miss counters
func (c *PlanCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Count returns the number of cached plans
func (c *PlanCache) Count() int {
	n := 0
	c.plans.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Close stops the background cleanup goroutine
func (c *PlanCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// cleanupExpired periodically removes expired entries from the cache
func (c *PlanCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			removed := 0
			c.plans.Range(func(key, value any) bool {
				if value.(*planEntry).isExpired() {
					c.plans.Delete(key)
					removed++
				}
				return true
			})
			if removed > 0 {
				c.logger.Debug("cleaned up expired plans", zap.Int("removed", removed))
			}
		}
	}
}
