package ratelimiter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/helo/pkg/ratelimiter"
)

func TestNewBucket_Validation(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	valid := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}

	_, err := ratelimiter.NewBucket(store, valid)
	require.NoError(t, err)

	_, err = ratelimiter.NewBucket(nil, valid)
	require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)

	for name, cfg := range map[string]ratelimiter.Config{
		"capacity": {Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		"rate":     {Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		"interval": {Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig, name)
	}
}

func TestBucket(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clock.Now))
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 2, RefillInterval: time.Minute})
	require.NoError(t, err)

	res, err := limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 2, res.Limit)
	assert.Equal(t, 1, res.Remaining)
	assert.Zero(t, res.RetryAfter())

	_, err = limiter.AllowN(ctx, "ip", 0)
	require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	res, err = limiter.AllowN(ctx, "ip", 2)
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	status, err := limiter.Status(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 1, status.Remaining)

	require.NoError(t, limiter.Reset(ctx, "ip"))
	status, err = limiter.Status(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 2, status.Remaining)
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, ratelimiter.ErrStoreUnavailable
}

func (failingStore) Reset(context.Context, string) error {
	return errors.New("unavailable")
}

func TestBucket_StoreError(t *testing.T) {
	t.Parallel()

	limiter, err := ratelimiter.NewBucket(failingStore{}, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)

	_, err = limiter.Allow(context.Background(), "k")
	require.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
}

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	denied := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(30 * time.Second)}
	assert.InDelta(t, 30*time.Second, denied.RetryAfter(), float64(time.Second))

	past := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(-time.Second)}
	assert.Zero(t, past.RetryAfter())
}
