package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/ratelimitbucket"
)

// BucketService is the durable side of the rate limiter: it checkpoints
// token-bucket and circuit-breaker state so restarts and Redis flushes do not
// reset a platform's cooldowns.
type BucketService struct {
	client *ent.Client
}

// NewBucketService creates a new BucketService
func NewBucketService(client *ent.Client) *BucketService {
	return &BucketService{client: client}
}

// BucketCheckpoint is a point-in-time write-back of one bucket's state.
type BucketCheckpoint struct {
	AccountID           string
	Endpoint            string
	Tokens              float64
	Capacity            float64
	RefillRate          float64
	LastRefillAt        time.Time
	CooldownUntil       *time.Time
	ConsecutiveFailures int
	BreakerState        ratelimitbucket.BreakerState
}

// Checkpoint upserts the durable bucket row.
func (s *BucketService) Checkpoint(ctx context.Context, cp BucketCheckpoint) error {
	if cp.AccountID == "" || cp.Endpoint == "" {
		return NewValidationError("bucket", "account_id and endpoint are required")
	}

	update := s.client.RateLimitBucket.Update().
		Where(
			ratelimitbucket.AccountIDEQ(cp.AccountID),
			ratelimitbucket.EndpointEQ(cp.Endpoint),
		).
		SetTokens(cp.Tokens).
		SetCapacity(cp.Capacity).
		SetRefillRate(cp.RefillRate).
		SetLastRefillAt(cp.LastRefillAt).
		SetConsecutiveFailures(cp.ConsecutiveFailures).
		SetBreakerState(cp.BreakerState)
	if cp.CooldownUntil != nil {
		update = update.SetCooldownUntil(*cp.CooldownUntil)
	} else {
		update = update.ClearCooldownUntil()
	}

	count, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to checkpoint bucket: %w", err)
	}
	if count > 0 {
		return nil
	}

	create := s.client.RateLimitBucket.Create().
		SetID(uuid.New().String()).
		SetAccountID(cp.AccountID).
		SetEndpoint(cp.Endpoint).
		SetTokens(cp.Tokens).
		SetCapacity(cp.Capacity).
		SetRefillRate(cp.RefillRate).
		SetLastRefillAt(cp.LastRefillAt).
		SetConsecutiveFailures(cp.ConsecutiveFailures).
		SetBreakerState(cp.BreakerState)
	if cp.CooldownUntil != nil {
		create = create.SetCooldownUntil(*cp.CooldownUntil)
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Raced with another replica's first checkpoint; theirs stands.
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Load returns the durable bucket state, or nil when none was checkpointed.
func (s *BucketService) Load(ctx context.Context, accountID, endpoint string) (*ent.RateLimitBucket, error) {
	bucket, err := s.client.RateLimitBucket.Query().
		Where(
			ratelimitbucket.AccountIDEQ(accountID),
			ratelimitbucket.EndpointEQ(endpoint),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load bucket: %w", err)
	}
	return bucket, nil
}

// ListOpenBreakers returns buckets whose breaker is open or half-open,
// for operator visibility.
func (s *BucketService) ListOpenBreakers(ctx context.Context) ([]*ent.RateLimitBucket, error) {
	buckets, err := s.client.RateLimitBucket.Query().
		Where(ratelimitbucket.BreakerStateIn(
			ratelimitbucket.BreakerStateOpen,
			ratelimitbucket.BreakerStateHalfOpen,
		)).
		Order(ent.Asc(ratelimitbucket.FieldAccountID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open breakers: %w", err)
	}
	return buckets, nil
}
