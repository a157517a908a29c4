package ratelimit

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/postflow-io/postflow/ent/ratelimitbucket"
	"github.com/postflow-io/postflow/pkg/config"
)

// Breaker states. One breaker guards one (account, platform) pair: a platform
// punishing an account usually punishes every endpoint at once.
const (
	stateClosed   = "closed"
	stateOpen     = "open"
	stateHalfOpen = "half_open"
)

type breakerState struct {
	State         string
	Failures      int
	Opens         int
	CooldownUntil time.Time
}

func (b breakerState) entState() ratelimitbucket.BreakerState {
	switch b.State {
	case stateOpen:
		return ratelimitbucket.BreakerStateOpen
	case stateHalfOpen:
		return ratelimitbucket.BreakerStateHalfOpen
	default:
		return ratelimitbucket.BreakerStateClosed
	}
}

func (l *Limiter) loadBreaker(ctx context.Context, key string) (breakerState, bool, error) {
	fields, err := l.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return breakerState{}, false, fmt.Errorf("failed to load breaker: %w", err)
	}
	state := breakerState{State: stateClosed}
	if v, ok := fields["state"]; ok && v != "" {
		state.State = v
	}
	if v, ok := fields["failures"]; ok {
		state.Failures, _ = strconv.Atoi(v)
	}
	if v, ok := fields["opens"]; ok {
		state.Opens, _ = strconv.Atoi(v)
	}
	if v, ok := fields["cooldown_until"]; ok {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil && ms > 0 {
			state.CooldownUntil = time.UnixMilli(ms)
		}
	}
	return state, len(fields) > 0, nil
}

// restoreBreaker rehydrates breaker state from the Postgres checkpoint when
// Redis has none, so a cache flush does not forget an open cooldown.
func (l *Limiter) restoreBreaker(ctx context.Context, key, platform, accountID, endpoint string) breakerState {
	state := breakerState{State: stateClosed}
	if l.buckets == nil {
		return state
	}

	cp, err := l.buckets.Load(ctx, accountID, platform+"/"+endpoint)
	if err != nil {
		l.logger.Warn("Failed to load bucket checkpoint", "account_id", accountID, "error", err)
		return state
	}
	if cp == nil || cp.BreakerState == ratelimitbucket.BreakerStateClosed {
		return state
	}

	state.State = stateOpen
	state.Failures = cp.ConsecutiveFailures
	if cp.CooldownUntil != nil {
		state.CooldownUntil = *cp.CooldownUntil
	}
	if err := l.saveBreaker(ctx, key, state); err != nil {
		l.logger.Warn("Failed to rehydrate breaker in Redis", "account_id", accountID, "error", err)
	}
	l.logger.Info("Breaker restored from checkpoint",
		"platform", platform, "account_id", accountID, "cooldown_until", state.CooldownUntil)
	return state
}

func (l *Limiter) saveBreaker(ctx context.Context, key string, state breakerState) error {
	var cooldownMs int64
	if !state.CooldownUntil.IsZero() {
		cooldownMs = state.CooldownUntil.UnixMilli()
	}
	pipe := l.rdb.TxPipeline()
	pipe.HSet(ctx, key,
		"state", state.State,
		"failures", state.Failures,
		"opens", state.Opens,
		"cooldown_until", cooldownMs,
	)
	pipe.Expire(ctx, key, 24*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save breaker: %w", err)
	}
	return nil
}

// breakerAllow gates an acquire on the breaker. An open breaker past its
// cooldown moves to half-open and admits a single probe; further calls are
// denied until the probe's outcome is recorded.
func (l *Limiter) breakerAllow(ctx context.Context, platform, accountID, endpoint string) (Decision, error) {
	key := breakerKey(platform, accountID)
	state, found, err := l.loadBreaker(ctx, key)
	if err != nil {
		return Decision{}, err
	}
	if !found {
		state = l.restoreBreaker(ctx, key, platform, accountID, endpoint)
	}

	now := time.Now()
	switch state.State {
	case stateClosed:
		return Decision{Allowed: true}, nil

	case stateOpen:
		if now.Before(state.CooldownUntil) {
			return Decision{RetryAfter: state.CooldownUntil.Sub(now), Reason: "breaker_open"}, nil
		}
		state.State = stateHalfOpen
		if err := l.saveBreaker(ctx, key, state); err != nil {
			return Decision{}, err
		}
		return l.claimProbe(ctx, key)

	case stateHalfOpen:
		return l.claimProbe(ctx, key)

	default:
		return Decision{Allowed: true}, nil
	}
}

// claimProbe admits exactly one caller while half-open.
func (l *Limiter) claimProbe(ctx context.Context, key string) (Decision, error) {
	ok, err := l.rdb.SetNX(ctx, key+":probe", 1, time.Minute).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to claim probe: %w", err)
	}
	if !ok {
		return Decision{RetryAfter: failClosedRetry, Reason: "breaker_probing"}, nil
	}
	return Decision{Allowed: true}, nil
}

func (l *Limiter) breakerOnSuccess(ctx context.Context, platform, accountID string) (breakerState, error) {
	key := breakerKey(platform, accountID)
	state, _, err := l.loadBreaker(ctx, key)
	if err != nil {
		return breakerState{}, err
	}
	if state.State != stateClosed {
		l.logger.Info("Breaker closing after successful probe", "platform", platform, "account_id", accountID)
	}
	state = breakerState{State: stateClosed}
	if err := l.saveBreaker(ctx, key, state); err != nil {
		return breakerState{}, err
	}
	l.rdb.Del(ctx, key+":probe")
	return state, nil
}

// breakerOnTrip opens the breaker immediately: the platform told us to back
// off. Cooldown honors the platform's Retry-After when it exceeds our own
// exponential schedule.
func (l *Limiter) breakerOnTrip(ctx context.Context, platform, accountID string, limits *config.PlatformRateLimits, providerRetryAfter time.Duration) (breakerState, error) {
	key := breakerKey(platform, accountID)
	state, _, err := l.loadBreaker(ctx, key)
	if err != nil {
		return breakerState{}, err
	}

	state.Failures++
	state.Opens++
	cooldown := openBackoff(limits, state.Opens)
	if providerRetryAfter > cooldown {
		cooldown = providerRetryAfter
	}
	state.State = stateOpen
	state.CooldownUntil = time.Now().Add(cooldown)

	l.logger.Warn("Breaker opened on rate limit response",
		"platform", platform,
		"account_id", accountID,
		"cooldown", cooldown,
		"consecutive_opens", state.Opens)

	if err := l.saveBreaker(ctx, key, state); err != nil {
		return breakerState{}, err
	}
	l.rdb.Del(ctx, key+":probe")
	return state, nil
}

func (l *Limiter) breakerOnFailure(ctx context.Context, platform, accountID string, limits *config.PlatformRateLimits) (breakerState, error) {
	key := breakerKey(platform, accountID)
	state, _, err := l.loadBreaker(ctx, key)
	if err != nil {
		return breakerState{}, err
	}

	state.Failures++
	// A half-open probe that fails reopens immediately, threshold or not.
	if state.Failures >= limits.BreakerThreshold || state.State == stateHalfOpen {
		state.Opens++
		state.State = stateOpen
		cooldown := openBackoff(limits, state.Opens)
		state.CooldownUntil = time.Now().Add(cooldown)
		l.logger.Warn("Breaker opened on consecutive failures",
			"platform", platform,
			"account_id", accountID,
			"failures", state.Failures,
			"cooldown", cooldown)
	}

	if err := l.saveBreaker(ctx, key, state); err != nil {
		return breakerState{}, err
	}
	l.rdb.Del(ctx, key+":probe")
	return state, nil
}

// openBackoff is the cooldown for the nth consecutive open:
// min(MaxBackoff, BreakerTimeout × multiplier^(n-1)).
func openBackoff(limits *config.PlatformRateLimits, opens int) time.Duration {
	if opens < 1 {
		opens = 1
	}
	backoff := time.Duration(float64(limits.BreakerTimeout) * math.Pow(limits.BackoffMultiplier, float64(opens-1)))
	if backoff > limits.MaxBackoff || backoff <= 0 {
		backoff = limits.MaxBackoff
	}
	return backoff
}
