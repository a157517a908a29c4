package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/account"
	"github.com/postflow-io/postflow/ent/post"
	"github.com/postflow-io/postflow/ent/predicate"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/models"
)

// PostService manages the post publish lifecycle
type PostService struct {
	client   *ent.Client
	cfg      *config.SchedulerConfig
	features *config.Features
}

// NewPostService creates a new PostService
func NewPostService(client *ent.Client, cfg *config.SchedulerConfig, features *config.Features) *PostService {
	return &PostService{client: client, cfg: cfg, features: features}
}

// ContentHash derives the immutable content identity of a publish request.
// Same media + same caption on the same account collapses to one post.
func ContentHash(mediaRef, caption string) string {
	sum := sha256.Sum256([]byte(mediaRef + "\n" + caption))
	return hex.EncodeToString(sum[:])
}

// Publish accepts a publish intent, applying the dedupe window and posting
// jitter, and returns the accepted (or already-accepted) post.
func (s *PostService) Publish(httpCtx context.Context, principal models.CreatorPrincipal, req models.PublishRequest) (*models.PublishResult, error) {
	if !principal.Valid() {
		return nil, NewValidationError("creator_id", "required")
	}
	if req.AccountID == "" {
		return nil, NewValidationError("account_id", "required")
	}
	if req.MediaRef == "" {
		return nil, NewValidationError("media_ref", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	acct, err := tx.Account.Query().
		Where(
			account.IDEQ(req.AccountID),
			account.CreatorIDEQ(principal.CreatorID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if acct.Status == account.StatusRevoked {
		return nil, ErrAccountUnavailable
	}
	if s.features != nil && !s.features.PlatformEnabled(string(acct.Platform)) {
		return nil, NewValidationError("platform", "publishing to "+string(acct.Platform)+" is temporarily disabled")
	}

	hash := ContentHash(req.MediaRef, req.Caption)
	dedupeKey := acct.ID + ":" + hash
	now := time.Now()

	// An in-flight duplicate is caught by the partial unique index below; a
	// recently published duplicate has left that index, so check it here,
	// inside the same transaction as the insert.
	dup, err := tx.Post.Query().
		Where(
			post.AccountIDEQ(acct.ID),
			post.DedupeKeyEQ(dedupeKey),
			post.StateEQ(post.StatePublished),
			post.PublishedAtGTE(now.Add(-s.cfg.DedupeWindow)),
		).
		Order(ent.Desc(post.FieldPublishedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check dedupe window: %w", err)
	}
	if dup != nil {
		return &models.PublishResult{
			PostID:       dup.ID,
			State:        string(dup.State),
			Deduplicated: true,
		}, nil
	}

	base := now
	if req.ScheduledAt != nil && req.ScheduledAt.After(now) {
		base = *req.ScheduledAt
	}
	scheduledAt := base.Add(s.postingJitter())

	created, err := tx.Post.Create().
		SetID(uuid.New().String()).
		SetCreatorID(principal.CreatorID).
		SetAccountID(acct.ID).
		SetPlatform(post.Platform(acct.Platform)).
		SetMediaRef(req.MediaRef).
		SetCaption(req.Caption).
		SetContentHash(hash).
		SetDedupeKey(dedupeKey).
		SetState(post.StateScheduled).
		SetScheduledAt(scheduledAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Raced with an identical in-flight post; surface that one.
			existing, qerr := s.client.Post.Query().
				Where(
					post.AccountIDEQ(acct.ID),
					post.DedupeKeyEQ(dedupeKey),
					post.StateIn(post.StateDraft, post.StateScheduled, post.StateDispatching, post.StateAwaitingRemote),
				).
				First(ctx)
			if qerr != nil {
				return nil, fmt.Errorf("failed to resolve duplicate post: %w", qerr)
			}
			return &models.PublishResult{
				PostID:       existing.ID,
				State:        string(existing.State),
				Deduplicated: true,
			}, nil
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.PublishResult{
		PostID: created.ID,
		State:  string(created.State),
	}, nil
}

// GetPost retrieves a post scoped to the calling creator
func (s *PostService) GetPost(ctx context.Context, principal models.CreatorPrincipal, postID string) (*models.PostSnapshot, error) {
	p, err := s.client.Post.Query().
		Where(
			post.IDEQ(postID),
			post.CreatorIDEQ(principal.CreatorID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	snap := toPostSnapshot(p)
	return &snap, nil
}

// ListPosts lists a creator's posts with filtering and pagination
func (s *PostService) ListPosts(ctx context.Context, principal models.CreatorPrincipal, params models.PostListParams) (*models.PostList, error) {
	query := s.client.Post.Query().
		Where(post.CreatorIDEQ(principal.CreatorID))

	if params.State != "" {
		query = query.Where(post.StateEQ(post.State(params.State)))
	}
	if params.Platform != "" {
		query = query.Where(post.PlatformEQ(post.Platform(params.Platform)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	page := params.Page
	if page < 1 {
		page = 1
	}

	posts, err := query.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order(ent.Desc(post.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	snaps := make([]models.PostSnapshot, 0, len(posts))
	for _, p := range posts {
		snaps = append(snaps, toPostSnapshot(p))
	}

	return &models.PostList{
		Posts:      snaps,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}, nil
}

// CancelPost cancels a post that is not mid-dispatch. awaiting_remote is
// cancellable: the platform may still reject the post, and the cancelled
// state is terminal, so a late callback or probe for it is dropped by the
// MarkPublished/MarkFailed state predicates.
func (s *PostService) CancelPost(ctx context.Context, principal models.CreatorPrincipal, postID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Post.Update().
		Where(
			post.IDEQ(postID),
			post.CreatorIDEQ(principal.CreatorID),
			post.StateIn(post.StateDraft, post.StateScheduled, post.StateAwaitingRemote),
		).
		SetState(post.StateCancelled).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cancel post: %w", err)
	}
	if count == 0 {
		exists, err := s.client.Post.Query().
			Where(post.IDEQ(postID), post.CreatorIDEQ(principal.CreatorID)).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check post existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrNotCancellable
	}
	return nil
}

// duePredicates matches posts eligible for dispatch at the given instant.
func duePredicates(now time.Time) []predicate.Post {
	return []predicate.Post{
		post.StateEQ(post.StateScheduled),
		post.ScheduledAtLTE(now),
		post.Or(post.NextRetryAtIsNil(), post.NextRetryAtLTE(now)),
	}
}

// ClaimNextDuePost atomically claims the next due post on a platform,
// picking the account fair-share first and then its oldest due post with
// SELECT ... FOR UPDATE SKIP LOCKED. Returns nil when nothing is due.
//
// The account's last_scheduled_at advances only after a successful claim, so
// an account whose claim raced away keeps its place in the rotation.
func (s *PostService) ClaimNextDuePost(ctx context.Context, platform, podID string) (*ent.Post, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Global in-flight ceiling for the platform, shared across replicas.
	inFlight, err := tx.Post.Query().
		Where(
			post.PlatformEQ(post.Platform(platform)),
			post.StateEQ(post.StateDispatching),
		).
		Count(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to count in-flight dispatches: %w", err)
	}
	if inFlight >= s.cfg.MaxConcurrentDispatches {
		return nil, nil
	}

	accountIDs, err := tx.Post.Query().
		Where(duePredicates(now)...).
		Where(post.PlatformEQ(post.Platform(platform))).
		GroupBy(post.FieldAccountID).
		Strings(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due accounts: %w", err)
	}
	if len(accountIDs) == 0 {
		return nil, nil
	}

	accounts, err := tx.Account.Query().
		Where(
			account.IDIn(accountIDs...),
			account.StatusEQ(account.StatusActive),
		).
		All(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load due accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, nil
	}

	for _, acct := range rankAccounts(accounts, now) {
		claimed, err := s.claimForAccount(claimCtx, tx, acct.ID, podID, now)
		if err != nil {
			return nil, err
		}
		if claimed == nil {
			continue // another replica took it
		}

		err = tx.Account.UpdateOneID(acct.ID).
			SetLastScheduledAt(now).
			Exec(claimCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to advance account rotation: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit claim: %w", err)
		}
		return claimed, nil
	}

	return nil, nil
}

// claimForAccount locks and claims the oldest due post for one account.
func (s *PostService) claimForAccount(ctx context.Context, tx *ent.Tx, accountID, podID string, now time.Time) (*ent.Post, error) {
	p, err := tx.Post.Query().
		Where(duePredicates(now)...).
		Where(post.AccountIDEQ(accountID)).
		Order(ent.Asc(post.FieldScheduledAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock due post: %w", err)
	}

	p, err = p.Update().
		SetState(post.StateDispatching).
		SetPodID(podID).
		SetDispatchedAt(now).
		SetLastInteractionAt(now).
		ClearNextRetryAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim post: %w", err)
	}
	return p, nil
}

// rankAccounts orders accounts for claiming: staleness scaled by priority,
// random tiebreak so equal accounts don't always lose to the same peer.
func rankAccounts(accounts []*ent.Account, now time.Time) []*ent.Account {
	type scored struct {
		acct  *ent.Account
		score float64
	}
	ranked := make([]scored, 0, len(accounts))
	for _, a := range accounts {
		staleness := now.Sub(accountLastScheduled(a, now)).Seconds()
		if staleness < 0 {
			staleness = 0
		}
		priority := float64(a.Priority)
		if priority < 1 {
			priority = 1
		}
		ranked = append(ranked, scored{acct: a, score: (1 + staleness) * priority})
	}
	// Fisher-Yates first so ties break randomly, then stable sort by score.
	rand.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].score > ranked[j-1].score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	out := make([]*ent.Account, len(ranked))
	for i, r := range ranked {
		out[i] = r.acct
	}
	return out
}

func accountLastScheduled(a *ent.Account, now time.Time) time.Time {
	if a.LastScheduledAt == nil {
		// Never-scheduled accounts are maximally stale.
		return now.Add(-365 * 24 * time.Hour)
	}
	return *a.LastScheduledAt
}

// FindPublishedDuplicate looks for an already-published post sharing the
// dedupe key within the window. The dispatcher rechecks this before every
// adapter call: a crash after the platform call but before the state write
// leaves a requeued post whose content is already live, and the recheck lets
// it adopt the prior publish instead of posting twice.
func (s *PostService) FindPublishedDuplicate(ctx context.Context, p *ent.Post) (*ent.Post, error) {
	dup, err := s.client.Post.Query().
		Where(
			post.IDNEQ(p.ID),
			post.AccountIDEQ(p.AccountID),
			post.DedupeKeyEQ(p.DedupeKey),
			post.StateEQ(post.StatePublished),
			post.PublishedAtGTE(time.Now().Add(-s.cfg.DedupeWindow)),
		).
		Order(ent.Desc(post.FieldPublishedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check for published duplicate: %w", err)
	}
	return dup, nil
}

// Heartbeat refreshes the claim on a dispatching post. A zero count means the
// claim was lost (orphan recovery reclaimed it) and the worker must abandon.
func (s *PostService) Heartbeat(ctx context.Context, postID, podID string) (bool, error) {
	count, err := s.client.Post.Update().
		Where(
			post.IDEQ(postID),
			post.PodIDEQ(podID),
			post.StateEQ(post.StateDispatching),
		).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to heartbeat post: %w", err)
	}
	return count > 0, nil
}

// RequeueWithBackoff returns a failed attempt to the scheduled state with
// exponential backoff, or fails the post once attempts are exhausted.
// Returns the resulting state.
func (s *PostService) RequeueWithBackoff(ctx context.Context, postID, errorKind, message string) (post.State, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := s.client.Post.Query().
		Where(post.IDEQ(postID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load post: %w", err)
	}

	attempts := p.AttemptCount + 1
	if attempts >= s.cfg.MaxAttempts {
		if err := s.MarkFailed(ctx, postID, errorKind, message); err != nil {
			return "", err
		}
		return post.StateFailed, nil
	}

	next := time.Now().Add(s.retryBackoff(attempts))
	err = p.Update().
		SetState(post.StateScheduled).
		SetAttemptCount(attempts).
		SetNextRetryAt(next).
		SetErrorKind(errorKind).
		SetLastError(message).
		ClearPodID().
		ClearLastInteractionAt().
		Exec(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to requeue post: %w", err)
	}
	return post.StateScheduled, nil
}

// RequeueAfter requeues a post for a specific instant, bypassing exponential
// backoff. Used when the platform told us exactly how long to wait.
func (s *PostService) RequeueAfter(ctx context.Context, postID, errorKind, message string, at time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Post.UpdateOneID(postID).
		SetState(post.StateScheduled).
		AddAttemptCount(1).
		SetNextRetryAt(at).
		SetErrorKind(errorKind).
		SetLastError(message).
		ClearPodID().
		ClearLastInteractionAt().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to requeue post: %w", err)
	}
	return nil
}

// Defer returns a claimed post to the queue for a later instant without
// consuming an attempt. Used when the dispatch was blocked before the adapter
// call ran, such as a local rate-limit denial or an open circuit breaker.
func (s *PostService) Defer(ctx context.Context, postID, reason string, at time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Post.UpdateOneID(postID).
		SetState(post.StateScheduled).
		SetNextRetryAt(at).
		SetErrorKind(reason).
		ClearPodID().
		ClearLastInteractionAt().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to defer post: %w", err)
	}
	return nil
}

// UpdateCaption stores a generated caption on a claimed post. The content
// hash keeps the value computed at submission, so deduplication still works
// on what the creator submitted.
func (s *PostService) UpdateCaption(ctx context.Context, postID, caption string) error {
	err := s.client.Post.Update().
		Where(
			post.IDEQ(postID),
			post.StateEQ(post.StateDispatching),
		).
		SetCaption(caption).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update caption: %w", err)
	}
	return nil
}

// MarkAwaitingRemote records that the platform accepted the post and we are
// waiting for it to report the final outcome.
func (s *PostService) MarkAwaitingRemote(ctx context.Context, postID, remoteID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Post.UpdateOneID(postID).
		SetState(post.StateAwaitingRemote).
		SetLastInteractionAt(time.Now()).
		ClearPodID()
	if remoteID != "" {
		update = update.SetRemoteID(remoteID)
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark post awaiting remote: %w", err)
	}
	return nil
}

/// MarkPublished finalizes a post. Idempotent: a post already published keeps
// its original published_at and remote_id.
func (s *PostService) MarkPublished(ctx context.Context, postID, remoteID string, publishedAt time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Post.Update().
		Where(
			post.IDEQ(postID),
			post.StateIn(post.StateDispatching, post.StateAwaitingRemote),
		).
		SetState(post.StatePublished).
		SetPublishedAt(publishedAt).
		ClearPodID().
		ClearNextRetryAt().
		ClearErrorKind().
		ClearLastError()
	if remoteID != "" {
		update = update.SetRemoteID(remoteID)
	}
	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark post published: %w", err)
	}
	if count == 0 {
		exists, err := s.client.Post.Query().Where(post.IDEQ(postID)).Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check post existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		// Already terminal; publishing is idempotent.
		slog.Debug("Post already terminal, publish confirmation ignored", "post_id", postID)
	}
	return nil
}

// MarkFailed moves a post to the terminal failed state.
func (s *PostService) MarkFailed(ctx context.Context, postID, errorKind, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Post.Update().
		Where(
			post.IDEQ(postID),
			post.StateNotIn(post.StatePublished, post.StateFailed, post.StateCancelled),
		).
		SetState(post.StateFailed).
		SetErrorKind(errorKind).
		SetLastError(message).
		AddAttemptCount(1).
		ClearPodID().
		ClearLastInteractionAt().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark post failed: %w", err)
	}
	if count == 0 {
		exists, err := s.client.Post.Query().Where(post.IDEQ(postID)).Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check post existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

// FindOrphanedPosts finds dispatching posts whose worker stopped heartbeating
func (s *PostService) FindOrphanedPosts(ctx context.Context, threshold time.Duration) ([]*ent.Post, error) {
	cutoff := time.Now().Add(-threshold)

	posts, err := s.client.Post.Query().
		Where(
			post.StateEQ(post.StateDispatching),
			post.LastInteractionAtNotNil(),
			post.LastInteractionAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned posts: %w", err)
	}
	return posts, nil
}

// ResetOrphanedPost returns an orphaned post to the queue. The lost attempt
// does not count against MaxAttempts: the adapter call may never have run, and
// if it did, the reconciler or prober will converge the post later.
func (s *PostService) ResetOrphanedPost(ctx context.Context, postID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Post.Update().
		Where(
			post.IDEQ(postID),
			post.StateEQ(post.StateDispatching),
		).
		SetState(post.StateScheduled).
		ClearPodID().
		ClearLastInteractionAt().
		ClearDispatchedAt().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to reset orphaned post: %w", err)
	}
	if count == 0 {
		slog.Debug("Orphaned post already moved on", "post_id", postID)
	}
	return nil
}

// RecoverPostsForPod requeues every dispatching post owned by a pod.
// Called at startup so a crashed replica's claims are not stuck until the
// orphan scan catches them.
func (s *PostService) RecoverPostsForPod(ctx context.Context, podID string) (int, error) {
	count, err := s.client.Post.Update().
		Where(
			post.StateEQ(post.StateDispatching),
			post.PodIDEQ(podID),
		).
		SetState(post.StateScheduled).
		ClearPodID().
		ClearLastInteractionAt().
		ClearDispatchedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover posts for pod %s: %w", podID, err)
	}
	return count, nil
}

// FindStalePolls finds awaiting_remote posts due for a status probe.
func (s *PostService) FindStalePolls(ctx context.Context, probeInterval time.Duration, limit int) ([]*ent.Post, error) {
	cutoff := time.Now().Add(-probeInterval)

	posts, err := s.client.Post.Query().
		Where(
			post.StateEQ(post.StateAwaitingRemote),
			post.Or(post.LastInteractionAtIsNil(), post.LastInteractionAtLT(cutoff)),
		).
		Order(ent.Asc(post.FieldLastInteractionAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find posts due for probing: %w", err)
	}
	return posts, nil
}

// TouchProbe records that an awaiting_remote post was just probed.
func (s *PostService) TouchProbe(ctx context.Context, postID string) error {
	err := s.client.Post.Update().
		Where(
			post.IDEQ(postID),
			post.StateEQ(post.StateAwaitingRemote),
		).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch probed post: %w", err)
	}
	return nil
}

// postingJitter returns a random duration within the configured posting
// jitter bounds.
func (s *PostService) postingJitter() time.Duration {
	min, max := s.cfg.PostingJitterMin, s.cfg.PostingJitterMax
	if max <= min {
		return min
	}
	return min + rand.N(max-min)
}

// retryBackoff computes min(MaxBackoff, base × 2^(attempt-1)) with up to 10%
// added jitter.
func (s *PostService) retryBackoff(attempt int) time.Duration {
	backoff := s.cfg.RetryBackoffBase
	for i := 1; i < attempt && backoff < s.cfg.MaxBackoff; i++ {
		backoff *= 2
	}
	if backoff > s.cfg.MaxBackoff {
		backoff = s.cfg.MaxBackoff
	}
	return backoff + rand.N(backoff/10+1)
}

// PostRef is a post's routing identity, for event publication and
// notifications. Not creator-scoped; internal callers only.
type PostRef struct {
	PostID    string
	CreatorID string
	AccountID string
	Platform  string
	Caption   string
}

// Ref loads a post's routing identity.
func (s *PostService) Ref(ctx context.Context, postID string) (*PostRef, error) {
	p, err := s.client.Post.Query().
		Where(post.IDEQ(postID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return &PostRef{
		PostID:    p.ID,
		CreatorID: p.CreatorID,
		AccountID: p.AccountID,
		Platform:  string(p.Platform),
		Caption:   p.Caption,
	}, nil
}

func toPostSnapshot(p *ent.Post) models.PostSnapshot {
	snap := models.PostSnapshot{
		PostID:       p.ID,
		AccountID:    p.AccountID,
		Platform:     string(p.Platform),
		State:        string(p.State),
		MediaRef:     p.MediaRef,
		Caption:      p.Caption,
		ScheduledAt:  p.ScheduledAt,
		AttemptCount: p.AttemptCount,
		NextRetryAt:  p.NextRetryAt,
		PublishedAt:  p.PublishedAt,
		CreatedAt:    p.CreatedAt,
	}
	if p.RemoteID != nil {
		snap.RemoteID = *p.RemoteID
	}
	if p.ErrorKind != nil {
		snap.ErrorKind = *p.ErrorKind
	}
	if p.LastError != nil {
		snap.LastError = *p.LastError
	}
	return snap
}
