package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postflow-io/postflow/ent/ratelimitbucket"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/services"
	testdb "github.com/postflow-io/postflow/test/database"
)

func testRegistry() *config.RateLimitRegistry {
	return config.NewRateLimitRegistry(map[string]*config.PlatformRateLimits{
		"instagram": {
			Endpoints: map[string]config.EndpointPolicy{
				"create_post": {Capacity: 2, RefillPerSecond: 1},
			},
			BreakerThreshold:  2,
			BreakerTimeout:    30 * time.Millisecond,
			BackoffMultiplier: 2,
			MaxBackoff:        time.Second,
		},
	})
}

func testLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewLimiter(rdb, testRegistry(), nil), mr
}

func TestAcquireTokenBucket(t *testing.T) {
	limiter, _ := testLimiter(t)
	ctx := context.Background()

	// Capacity 2 — third acquire within the same instant must be denied.
	d1 := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	d2 := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	d3 := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")

	assert.True(t, d1.Allowed)
	assert.True(t, d2.Allowed)
	assert.False(t, d3.Allowed)
	assert.Equal(t, "rate_limited", d3.Reason)
	assert.Greater(t, d3.RetryAfter, time.Duration(0))
}

func TestAcquireIsolatesAccounts(t *testing.T) {
	limiter, _ := testLimiter(t)
	ctx := context.Background()

	limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	denied := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	other := limiter.Acquire(ctx, "instagram", "acct-2", "create_post")

	assert.False(t, denied.Allowed)
	assert.True(t, other.Allowed, "one account's exhaustion must not starve another")
}

func TestAcquireUnknownEndpointDenied(t *testing.T) {
	limiter, _ := testLimiter(t)

	d := limiter.Acquire(context.Background(), "instagram", "acct-1", "unknown_endpoint")

	assert.False(t, d.Allowed)
	assert.Equal(t, "unconfigured", d.Reason)
}

func TestAcquireFailsClosedWhenRedisDown(t *testing.T) {
	limiter, mr := testLimiter(t)
	mr.Close()

	d := limiter.Acquire(context.Background(), "instagram", "acct-1", "create_post")

	assert.False(t, d.Allowed)
	assert.Equal(t, "limiter_unavailable", d.Reason)
	assert.Equal(t, failClosedRetry, d.RetryAfter)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	limiter, _ := testLimiter(t)
	ctx := context.Background()

	limiter.RecordOutcome(ctx, "instagram", "acct-1", "create_post", OutcomeFailure, 0)
	limiter.RecordOutcome(ctx, "instagram", "acct-1", "create_post", OutcomeFailure, 0)

	d := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	assert.False(t, d.Allowed)
	assert.Equal(t, "breaker_open", d.Reason)
}

func TestBreakerHalfOpenAdmitsSingleProbe(t *testing.T) {
	limiter, _ := testLimiter(t)
	ctx := context.Background()

	limiter.RecordOutcome(ctx, "instagram", "acct-1", "create_post", OutcomeFailure, 0)
	limiter.RecordOutcome(ctx, "instagram", "acct-1", "create_post", OutcomeFailure, 0)

	time.Sleep(40 * time.Millisecond) // past BreakerTimeout

	probe := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	require.True(t, probe.Allowed, "cooldown elapsed, probe should pass")

	second := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	assert.False(t, second.Allowed)
	assert.Equal(t, "breaker_probing", second.Reason)
}

func TestBreakerClosesAfterProbeSuccess(t *testing.T) {
	limiter, _ := testLimiter(t)
	ctx := context.Background()

	limiter.RecordOutcome(ctx, "instagram", "acct-1", "create_post", OutcomeFailure, 0)
	limiter.RecordOutcome(ctx, "instagram", "acct-1", "create_post", OutcomeFailure, 0)
	time.Sleep(40 * time.Millisecond)

	probe := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	require.True(t, probe.Allowed)

	limiter.RecordOutcome(ctx, "instagram", "acct-1", "create_post", OutcomeSuccess, 0)

	d := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	assert.True(t, d.Allowed)
}

func TestBreakerRestoredFromCheckpointAfterRedisFlush(t *testing.T) {
	client := testdb.NewTestClient(t)
	buckets := services.NewBucketService(client.Client)
	ctx := context.Background()

	cooldown := time.Now().Add(time.Hour)
	require.NoError(t, buckets.Checkpoint(ctx, services.BucketCheckpoint{
		AccountID:           "acct-1",
		Endpoint:            "instagram/create_post",
		Tokens:              2,
		Capacity:            2,
		RefillRate:          1,
		LastRefillAt:        time.Now(),
		CooldownUntil:       &cooldown,
		ConsecutiveFailures: 3,
		BreakerState:        ratelimitbucket.BreakerStateOpen,
	}))

	// Fresh Redis stands in for a flushed one: no breaker state at all.
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	limiter := NewLimiter(rdb, testRegistry(), buckets)

	d := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	assert.False(t, d.Allowed)
	assert.Equal(t, "breaker_open", d.Reason)
	assert.Greater(t, d.RetryAfter, 30*time.Minute)
}

func TestRateLimitedOutcomeHonorsProviderRetryAfter(t *testing.T) {
	limiter, _ := testLimiter(t)
	ctx := context.Background()

	limiter.RecordOutcome(ctx, "instagram", "acct-1", "create_post", OutcomeRateLimited, 500*time.Millisecond)

	d := limiter.Acquire(ctx, "instagram", "acct-1", "create_post")
	assert.False(t, d.Allowed)
	assert.Equal(t, "breaker_open", d.Reason)
	// Cooldown must be at least the provider hint minus test overhead.
	assert.Greater(t, d.RetryAfter, 300*time.Millisecond)
}
