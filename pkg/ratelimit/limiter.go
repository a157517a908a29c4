package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/services"
)

// failClosedRetry is the deny hint handed out when Redis is unreachable.
// Denying briefly beats letting every replica hammer a platform unmetered.
const failClosedRetry = 5 * time.Second

// Decision is the answer to one Acquire call.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	Reason     string
}

// Outcome classifies an adapter call for breaker accounting.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRateLimited
	OutcomeFailure
)

// Limiter meters adapter calls per (account, endpoint) with Redis token
// buckets and a per-(account, platform) circuit breaker. Redis holds the hot
// state shared across replicas; Postgres keeps a durable checkpoint.
type Limiter struct {
	rdb      redis.UniversalClient
	registry *config.RateLimitRegistry
	buckets  *services.BucketService
	logger   *slog.Logger
}

// NewLimiter creates a Limiter. buckets may be nil to disable checkpointing.
func NewLimiter(rdb redis.UniversalClient, registry *config.RateLimitRegistry, buckets *services.BucketService) *Limiter {
	return &Limiter{
		rdb:      rdb,
		registry: registry,
		buckets:  buckets,
		logger:   slog.With("component", "ratelimit"),
	}
}

func bucketKey(platform, accountID, endpoint string) string {
	return "rl:tb:" + platform + ":" + accountID + ":" + endpoint
}

func breakerKey(platform, accountID string) string {
	return "rl:br:" + platform + ":" + accountID
}

// Acquire asks for one token for (account, platform, endpoint). It never
// blocks: a denial carries a retry-after hint and the caller requeues.
func (l *Limiter) Acquire(ctx context.Context, platform, accountID, endpoint string) Decision {
	policy, err := l.registry.PolicyFor(platform, endpoint)
	if err != nil {
		l.logger.Warn("No rate limit policy, denying", "platform", platform, "endpoint", endpoint)
		return Decision{RetryAfter: failClosedRetry, Reason: "unconfigured"}
	}

	decision, err := l.breakerAllow(ctx, platform, accountID, endpoint)
	if err != nil {
		l.logger.Error("Breaker check failed, failing closed", "platform", platform, "account_id", accountID, "error", err)
		return Decision{RetryAfter: failClosedRetry, Reason: "limiter_unavailable"}
	}
	if !decision.Allowed {
		return decision
	}

	now := time.Now()
	res, err := tokenBucketScript.Run(ctx, l.rdb,
		[]string{bucketKey(platform, accountID, endpoint)},
		policy.MaxTokens(),
		policy.RefillPerSecond,
		now.UnixMilli(),
		1,
	).Slice()
	if err != nil {
		l.logger.Error("Token bucket script failed, failing closed", "platform", platform, "account_id", accountID, "error", err)
		return Decision{RetryAfter: failClosedRetry, Reason: "limiter_unavailable"}
	}

	allowed, retryAfter, parseErr := parseBucketReply(res)
	if parseErr != nil {
		l.logger.Error("Token bucket reply malformed, failing closed", "error", parseErr)
		return Decision{RetryAfter: failClosedRetry, Reason: "limiter_unavailable"}
	}
	if !allowed {
		return Decision{RetryAfter: retryAfter, Reason: "rate_limited"}
	}
	return Decision{Allowed: true}
}

func parseBucketReply(res []interface{}) (bool, time.Duration, error) {
	if len(res) != 3 {
		return false, 0, fmt.Errorf("expected 3 reply elements, got %d", len(res))
	}
	allowed, ok := res[0].(int64)
	if !ok {
		return false, 0, fmt.Errorf("unexpected allowed type %T", res[0])
	}
	retryMs, ok := res[2].(int64)
	if !ok {
		return false, 0, fmt.Errorf("unexpected retry type %T", res[2])
	}
	return allowed == 1, time.Duration(retryMs) * time.Millisecond, nil
}

// RecordOutcome feeds an adapter result back into the breaker and writes the
// durable checkpoint. providerRetryAfter is the platform's own Retry-After,
// zero when it sent none.
func (l *Limiter) RecordOutcome(ctx context.Context, platform, accountID, endpoint string, outcome Outcome, providerRetryAfter time.Duration) {
	limits, err := l.registry.Get(platform)
	if err != nil {
		l.logger.Warn("No platform limits for outcome recording", "platform", platform)
		return
	}

	var state breakerState
	switch outcome {
	case OutcomeSuccess:
		state, err = l.breakerOnSuccess(ctx, platform, accountID)
	case OutcomeRateLimited:
		state, err = l.breakerOnTrip(ctx, platform, accountID, limits, providerRetryAfter)
	case OutcomeFailure:
		state, err = l.breakerOnFailure(ctx, platform, accountID, limits)
	}
	if err != nil {
		l.logger.Error("Failed to record outcome", "platform", platform, "account_id", accountID, "error", err)
		return
	}

	l.checkpoint(ctx, platform, accountID, endpoint, state)
}

// checkpoint writes the bucket and breaker state through to Postgres so a
// Redis flush does not forget an open breaker.
func (l *Limiter) checkpoint(ctx context.Context, platform, accountID, endpoint string, state breakerState) {
	if l.buckets == nil {
		return
	}

	policy, err := l.registry.PolicyFor(platform, endpoint)
	if err != nil {
		return
	}

	tokens := policy.MaxTokens()
	if raw, err := l.rdb.HGet(ctx, bucketKey(platform, accountID, endpoint), "tokens").Float64(); err == nil {
		tokens = raw
	}

	cp := services.BucketCheckpoint{
		AccountID:           accountID,
		Endpoint:            platform + "/" + endpoint,
		Tokens:              tokens,
		Capacity:            policy.MaxTokens(),
		RefillRate:          policy.RefillPerSecond,
		LastRefillAt:        time.Now(),
		ConsecutiveFailures: state.Failures,
		BreakerState:        state.entState(),
	}
	if !state.CooldownUntil.IsZero() {
		cp.CooldownUntil = &state.CooldownUntil
	}

	if err := l.buckets.Checkpoint(ctx, cp); err != nil {
		l.logger.Error("Failed to checkpoint bucket", "account_id", accountID, "endpoint", endpoint, "error", err)
	}
}
