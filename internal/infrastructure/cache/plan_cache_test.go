package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/furqanmax/simplepos-printing/internal/domain/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlan(fingerprint string) *layout.LayoutPlan {
	return &layout.LayoutPlan{Fingerprint: fingerprint}
}

func TestPlanCacheGetOrCompute(t *testing.T) {
	c := NewPlanCache()
	defer c.Close()

	computed := 0
	compute := func() (*layout.LayoutPlan, error) {
		computed++
		return newTestPlan("fp-1"), nil
	}

	first, cached, err := c.GetOrCompute(context.Background(), "fp-1", compute)
	require.NoError(t, err)
	assert.False(t, cached)
	second, cached, err := c.GetOrCompute(context.Background(), "fp-1", compute)
	require.NoError(t, err)
	assert.True(t, cached)

	assert.Same(t, first, second)
	assert.Equal(t, 1, computed)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestPlanCacheComputeErrorNotCached(t *testing.T) {
	c := NewPlanCache()
	defer c.Close()

	calls := 0
	failing := func() (*layout.LayoutPlan, error) {
		calls++
		return nil, errors.New("boom")
	}

	_, _, err := c.GetOrCompute(context.Background(), "fp-err", failing)
	require.Error(t, err)
	_, _, err = c.GetOrCompute(context.Background(), "fp-err", failing)
	require.Error(t, err)

	assert.Equal(t, 2, calls, "failed computations are retried")
	assert.Equal(t, 0, c.Count())
}

func TestPlanCacheCoalescesConcurrentComputations(t *testing.T) {
	c := NewPlanCache()
	defer c.Close()

	var computations int32
	release := make(chan struct{})
	compute := func() (*layout.LayoutPlan, error) {
		atomic.AddInt32(&computations, 1)
		<-release
		return newTestPlan("fp-hot"), nil
	}

	const callers = 16
	results := make([]*layout.LayoutPlan, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			plan, _, err := c.GetOrCompute(context.Background(), "fp-hot", compute)
			assert.NoError(t, err)
			results[i] = plan
		}(i)
	}

	// Let every caller reach the singleflight barrier before releasing.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&computations))
	for _, plan := range results {
		assert.Same(t, results[0], plan)
	}
}

func TestPlanCacheTTLExpiry(t *testing.T) {
	c := NewPlanCache(WithPlanTTL(20 * time.Millisecond))
	defer c.Close()

	_, _, err := c.GetOrCompute(context.Background(), "fp-ttl", func() (*layout.LayoutPlan, error) {
		return newTestPlan("fp-ttl"), nil
	})
	require.NoError(t, err)
	require.NotNil(t, c.Get("fp-ttl"))

	time.Sleep(40 * time.Millisecond)
	assert.Nil(t, c.Get("fp-ttl"), "expired entries are not served")
}

func TestPlanCacheInvalidateAll(t *testing.T) {
	c := NewPlanCache()
	defer c.Close()

	for _, fp := range []string{"a", "b", "c"} {
		_, _, err := c.GetOrCompute(context.Background(), fp, func() (*layout.LayoutPlan, error) {
			return newTestPlan(fp), nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 3, c.Count())

	c.InvalidateAll()
	assert.Equal(t, 0, c.Count())
}
