package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postflow-io/postflow/ent/account"
	"github.com/postflow-io/postflow/ent/post"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/models"
	testdb "github.com/postflow-io/postflow/test/database"
)

func TestPostService_Publish(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestPostService(client.Client)
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	accountID := createTestAccount(t, client.Client, "creator-1", "instagram")

	t.Run("accepts a publish intent", func(t *testing.T) {
		result, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/clip-1.mp4",
			Caption:   "first clip",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.PostID)
		assert.Equal(t, string(post.StateScheduled), result.State)
		assert.False(t, result.Deduplicated)

		p, err := client.Post.Get(ctx, result.PostID)
		require.NoError(t, err)
		assert.Equal(t, "creator-1", p.CreatorID)
		assert.Equal(t, post.PlatformInstagram, p.Platform)
		assert.Equal(t, ContentHash("s3://media/clip-1.mp4", "first clip"), p.ContentHash)
		assert.Equal(t, 0, p.AttemptCount)
	})

	t.Run("collapses in-flight duplicates", func(t *testing.T) {
		first, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/clip-2.mp4",
			Caption:   "same content",
		})
		require.NoError(t, err)

		second, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/clip-2.mp4",
			Caption:   "same content",
		})
		require.NoError(t, err)
		assert.True(t, second.Deduplicated)
		assert.Equal(t, first.PostID, second.PostID)
	})

	t.Run("collapses recently published duplicates", func(t *testing.T) {
		result, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/clip-3.mp4",
			Caption:   "published already",
		})
		require.NoError(t, err)

		// Simulate the full lifecycle to published.
		_, err = client.Post.UpdateOneID(result.PostID).
			SetState(post.StatePublished).
			SetPublishedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		dup, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/clip-3.mp4",
			Caption:   "published already",
		})
		require.NoError(t, err)
		assert.True(t, dup.Deduplicated)
		assert.Equal(t, result.PostID, dup.PostID)
		assert.Equal(t, string(post.StatePublished), dup.State)
	})

	t.Run("different caption is a different post", func(t *testing.T) {
		first, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/clip-4.mp4",
			Caption:   "take one",
		})
		require.NoError(t, err)

		second, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/clip-4.mp4",
			Caption:   "take two",
		})
		require.NoError(t, err)
		assert.False(t, second.Deduplicated)
		assert.NotEqual(t, first.PostID, second.PostID)
	})

	t.Run("rejects another creator's account", func(t *testing.T) {
		_, err := service.Publish(ctx, models.CreatorPrincipal{CreatorID: "creator-2"}, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/clip-5.mp4",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects revoked accounts", func(t *testing.T) {
		revokedID := createTestAccount(t, client.Client, "creator-1", "tiktok")
		err := client.Account.UpdateOneID(revokedID).
			SetStatus(account.StatusRevoked).
			Exec(ctx)
		require.NoError(t, err)

		_, err = service.Publish(ctx, principal, models.PublishRequest{
			AccountID: revokedID,
			MediaRef:  "s3://media/clip-6.mp4",
		})
		assert.ErrorIs(t, err, ErrAccountUnavailable)
	})

	t.Run("rejects disabled platforms", func(t *testing.T) {
		features := config.NewFeatures(nil)
		features.SetPlatform("instagram", false)
		gated := NewPostService(client.Client, testSchedulerConfig(), features)

		_, err := gated.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/clip-7.mp4",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.Publish(ctx, principal, models.PublishRequest{AccountID: accountID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.Publish(ctx, principal, models.PublishRequest{MediaRef: "s3://x"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("honors future scheduled_at", func(t *testing.T) {
		at := time.Now().Add(2 * time.Hour)
		result, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID:   accountID,
			MediaRef:    "s3://media/clip-8.mp4",
			ScheduledAt: &at,
		})
		require.NoError(t, err)

		p, err := client.Post.Get(ctx, result.PostID)
		require.NoError(t, err)
		require.NotNil(t, p.ScheduledAt)
		assert.WithinDuration(t, at, *p.ScheduledAt, time.Second)
	})
}

func TestPostService_CancelPost(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestPostService(client.Client)
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	accountID := createTestAccount(t, client.Client, "creator-1", "x")

	publish := func(t *testing.T, mediaRef string) string {
		result, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  mediaRef,
		})
		require.NoError(t, err)
		return result.PostID
	}

	t.Run("cancels a scheduled post", func(t *testing.T) {
		postID := publish(t, "s3://media/cancel-1.mp4")
		require.NoError(t, service.CancelPost(ctx, principal, postID))

		p, err := client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateCancelled, p.State)
	})

	t.Run("cancels an awaiting remote post", func(t *testing.T) {
		postID := publish(t, "s3://media/cancel-awaiting-1.mp4")
		err := client.Post.UpdateOneID(postID).
			SetState(post.StateAwaitingRemote).
			SetRemoteID("remote-cancel-1").
			Exec(ctx)
		require.NoError(t, err)

		require.NoError(t, service.CancelPost(ctx, principal, postID))

		p, err := client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateCancelled, p.State)

		// A late platform confirmation for the cancelled post is dropped.
		require.NoError(t, service.MarkPublished(ctx, postID, "remote-cancel-1", time.Now()))
		p, err = client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateCancelled, p.State)
	})

	t.Run("rejects cancellation once dispatching", func(t *testing.T) {
		postID := publish(t, "s3://media/cancel-2.mp4")
		err := client.Post.UpdateOneID(postID).
			SetState(post.StateDispatching).
			Exec(ctx)
		require.NoError(t, err)

		err = service.CancelPost(ctx, principal, postID)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		err := service.CancelPost(ctx, principal, "no-such-post")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other creator cannot cancel", func(t *testing.T) {
		postID := publish(t, "s3://media/cancel-3.mp4")
		err := service.CancelPost(ctx, models.CreatorPrincipal{CreatorID: "creator-2"}, postID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostService_ClaimNextDuePost(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestPostService(client.Client)
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	accountID := createTestAccount(t, client.Client, "creator-1", "reddit")

	t.Run("claims the oldest due post", func(t *testing.T) {
		older, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/claim-1.mp4",
		})
		require.NoError(t, err)
		// Make the first post strictly older.
		err = client.Post.UpdateOneID(older.PostID).
			SetScheduledAt(time.Now().Add(-time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		_, err = service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  "s3://media/claim-2.mp4",
		})
		require.NoError(t, err)

		claimed, err := service.ClaimNextDuePost(ctx, "reddit", "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, older.PostID, claimed.ID)
		assert.Equal(t, post.StateDispatching, claimed.State)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-a", *claimed.PodID)
		assert.NotNil(t, claimed.LastInteractionAt)

		// Rotation advanced for the claimed account.
		acct, err := client.Account.Get(ctx, accountID)
		require.NoError(t, err)
		assert.NotNil(t, acct.LastScheduledAt)
	})

	t.Run("nothing due returns nil", func(t *testing.T) {
		claimed, err := service.ClaimNextDuePost(ctx, "tiktok", "pod-a")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("future posts are not claimed", func(t *testing.T) {
		at := time.Now().Add(time.Hour)
		_, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID:   accountID,
			MediaRef:    "s3://media/claim-3.mp4",
			ScheduledAt: &at,
		})
		require.NoError(t, err)

		// Drain anything already due first.
		for {
			claimed, err := service.ClaimNextDuePost(ctx, "reddit", "pod-a")
			require.NoError(t, err)
			if claimed == nil {
				break
			}
		}
	})

	t.Run("fair share prefers the staler account", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := newTestPostService(client.Client)

		staleAccount := createTestAccount(t, client.Client, "creator-a", "instagram")
		freshAccount := createTestAccount(t, client.Client, "creator-b", "instagram")

		// The fresh account was just scheduled; the stale one never was.
		err := client.Account.UpdateOneID(freshAccount).
			SetLastScheduledAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		for ref, pr := range map[string]models.CreatorPrincipal{
			"s3://media/fair-stale.mp4": {CreatorID: "creator-a"},
			"s3://media/fair-fresh.mp4": {CreatorID: "creator-b"},
		} {
			acct := staleAccount
			if pr.CreatorID == "creator-b" {
				acct = freshAccount
			}
			_, err := service.Publish(ctx, pr, models.PublishRequest{AccountID: acct, MediaRef: ref})
			require.NoError(t, err)
		}

		claimed, err := service.ClaimNextDuePost(ctx, "instagram", "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, staleAccount, claimed.AccountID)
	})
}

func TestPostService_RequeueWithBackoff(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestPostService(client.Client)
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	accountID := createTestAccount(t, client.Client, "creator-1", "instagram")

	claimOne := func(t *testing.T, mediaRef string) string {
		result, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  mediaRef,
		})
		require.NoError(t, err)
		claimed, err := service.ClaimNextDuePost(ctx, "instagram", "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.Equal(t, result.PostID, claimed.ID)
		return claimed.ID
	}

	t.Run("requeues with attempt and next_retry_at", func(t *testing.T) {
		postID := claimOne(t, "s3://media/rq-1.mp4")

		state, err := service.RequeueWithBackoff(ctx, postID, "transient", "connection reset")
		require.NoError(t, err)
		assert.Equal(t, post.StateScheduled, state)

		p, err := client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateScheduled, p.State)
		assert.Equal(t, 1, p.AttemptCount)
		assert.Nil(t, p.PodID)
		require.NotNil(t, p.NextRetryAt)
		assert.True(t, p.NextRetryAt.After(time.Now()))
		require.NotNil(t, p.ErrorKind)
		assert.Equal(t, "transient", *p.ErrorKind)
	})

	t.Run("fails the post once attempts are exhausted", func(t *testing.T) {
		postID := claimOne(t, "s3://media/rq-2.mp4")
		// MaxAttempts is 3 in the test config; two attempts already burned.
		err := client.Post.UpdateOneID(postID).
			SetAttemptCount(2).
			Exec(ctx)
		require.NoError(t, err)

		state, err := service.RequeueWithBackoff(ctx, postID, "timeout", "deadline exceeded")
		require.NoError(t, err)
		assert.Equal(t, post.StateFailed, state)

		p, err := client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateFailed, p.State)
	})

	t.Run("defer does not consume an attempt", func(t *testing.T) {
		postID := claimOne(t, "s3://media/rq-3.mp4")

		at := time.Now().Add(30 * time.Second)
		require.NoError(t, service.Defer(ctx, postID, "rate_limited", at))

		p, err := client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateScheduled, p.State)
		assert.Equal(t, 0, p.AttemptCount)
		require.NotNil(t, p.NextRetryAt)
		assert.WithinDuration(t, at, *p.NextRetryAt, time.Second)
	})
}

func TestPostService_TerminalTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestPostService(client.Client)
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	accountID := createTestAccount(t, client.Client, "creator-1", "tiktok")

	claimOne := func(t *testing.T, mediaRef string) string {
		_, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  mediaRef,
		})
		require.NoError(t, err)
		claimed, err := service.ClaimNextDuePost(ctx, "tiktok", "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		return claimed.ID
	}

	t.Run("mark published is idempotent", func(t *testing.T) {
		postID := claimOne(t, "s3://media/term-1.mp4")
		publishedAt := time.Now()

		require.NoError(t, service.MarkPublished(ctx, postID, "remote-1", publishedAt))

		p, err := client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StatePublished, p.State)
		require.NotNil(t, p.RemoteID)
		assert.Equal(t, "remote-1", *p.RemoteID)

		// A late duplicate confirmation changes nothing.
		require.NoError(t, service.MarkPublished(ctx, postID, "remote-other", time.Now().Add(time.Minute)))
		p, err = client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, "remote-1", *p.RemoteID)
		assert.WithinDuration(t, publishedAt, *p.PublishedAt, time.Second)
	})

	t.Run("awaiting remote then published", func(t *testing.T) {
		postID := claimOne(t, "s3://media/term-2.mp4")

		require.NoError(t, service.MarkAwaitingRemote(ctx, postID, "remote-2"))
		p, err := client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateAwaitingRemote, p.State)
		assert.Nil(t, p.PodID)

		require.NoError(t, service.MarkPublished(ctx, postID, "", time.Now()))
		p, err = client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StatePublished, p.State)
		require.NotNil(t, p.RemoteID)
		assert.Equal(t, "remote-2", *p.RemoteID)
	})

	t.Run("mark failed does not touch terminal posts", func(t *testing.T) {
		postID := claimOne(t, "s3://media/term-3.mp4")
		require.NoError(t, service.MarkPublished(ctx, postID, "remote-3", time.Now()))

		require.NoError(t, service.MarkFailed(ctx, postID, "permanent", "too late"))
		p, err := client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StatePublished, p.State)
	})
}

func TestPostService_OrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestPostService(client.Client)
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	accountID := createTestAccount(t, client.Client, "creator-1", "x")

	claimOne := func(t *testing.T, mediaRef, podID string) string {
		_, err := service.Publish(ctx, principal, models.PublishRequest{
			AccountID: accountID,
			MediaRef:  mediaRef,
		})
		require.NoError(t, err)
		claimed, err := service.ClaimNextDuePost(ctx, "x", podID)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		return claimed.ID
	}

	t.Run("heartbeat holds and loses the claim", func(t *testing.T) {
		postID := claimOne(t, "s3://media/orphan-1.mp4", "pod-a")

		held, err := service.Heartbeat(ctx, postID, "pod-a")
		require.NoError(t, err)
		assert.True(t, held)

		// A different pod never holds this claim.
		held, err = service.Heartbeat(ctx, postID, "pod-b")
		require.NoError(t, err)
		assert.False(t, held)

		require.NoError(t, service.ResetOrphanedPost(ctx, postID))
		held, err = service.Heartbeat(ctx, postID, "pod-a")
		require.NoError(t, err)
		assert.False(t, held)
	})

	t.Run("finds posts with stale heartbeats", func(t *testing.T) {
		postID := claimOne(t, "s3://media/orphan-2.mp4", "pod-a")
		err := client.Post.UpdateOneID(postID).
			SetLastInteractionAt(time.Now().Add(-10 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		orphans, err := service.FindOrphanedPosts(ctx, 5*time.Minute)
		require.NoError(t, err)
		ids := make([]string, 0, len(orphans))
		for _, o := range orphans {
			ids = append(ids, o.ID)
		}
		assert.Contains(t, ids, postID)

		require.NoError(t, service.ResetOrphanedPost(ctx, postID))
		p, err := client.Post.Get(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, post.StateScheduled, p.State)
		assert.Equal(t, 0, p.AttemptCount)
	})

	t.Run("recovers a crashed pod's claims at startup", func(t *testing.T) {
		first := claimOne(t, "s3://media/orphan-3.mp4", "pod-crash")
		second := claimOne(t, "s3://media/orphan-4.mp4", "pod-crash")

		count, err := service.RecoverPostsForPod(ctx, "pod-crash")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		for _, id := range []string{first, second} {
			p, err := client.Post.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, post.StateScheduled, p.State)
			assert.Nil(t, p.PodID)
		}
	})
}

func TestPostService_UpdateCaption(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestPostService(client.Client)
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	accountID := createTestAccount(t, client.Client, "creator-1", "tiktok")

	result, err := service.Publish(ctx, principal, models.PublishRequest{
		AccountID: accountID,
		MediaRef:  "s3://media/caption-1.mp4",
	})
	require.NoError(t, err)
	claimed, err := service.ClaimNextDuePost(ctx, "tiktok", "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	require.NoError(t, service.UpdateCaption(ctx, result.PostID, "generated caption #sunset"))

	p, err := client.Post.Get(ctx, result.PostID)
	require.NoError(t, err)
	assert.Equal(t, "generated caption #sunset", p.Caption)
	// The dedupe inputs stay frozen at submit time.
	assert.Equal(t, claimed.ContentHash, p.ContentHash)
	assert.Equal(t, claimed.DedupeKey, p.DedupeKey)

	// Once the post leaves dispatching the caption is settled.
	require.NoError(t, service.MarkPublished(ctx, result.PostID, "remote-cap-1", time.Now()))
	require.NoError(t, service.UpdateCaption(ctx, result.PostID, "too late"))
	p, err = client.Post.Get(ctx, result.PostID)
	require.NoError(t, err)
	assert.Equal(t, "generated caption #sunset", p.Caption)
}

func TestPostService_FindPublishedDuplicate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestPostService(client.Client)
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	accountID := createTestAccount(t, client.Client, "creator-1", "instagram")

	result, err := service.Publish(ctx, principal, models.PublishRequest{
		AccountID: accountID,
		MediaRef:  "s3://media/dup-1.mp4",
	})
	require.NoError(t, err)
	claimed, err := service.ClaimNextDuePost(ctx, "instagram", "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.NoError(t, service.MarkPublished(ctx, result.PostID, "remote-dup-1", time.Now()))
	published, err := client.Post.Get(ctx, result.PostID)
	require.NoError(t, err)

	// A second dispatching post with the same content, as left behind by a
	// crash between the adapter call and the state write.
	retry, err := client.Post.Create().
		SetID("post-dup-retry").
		SetCreatorID(published.CreatorID).
		SetAccountID(published.AccountID).
		SetPlatform(published.Platform).
		SetMediaRef(published.MediaRef).
		SetCaption(published.Caption).
		SetContentHash(published.ContentHash).
		SetDedupeKey(published.DedupeKey).
		SetState(post.StateDispatching).
		Save(ctx)
	require.NoError(t, err)

	t.Run("finds the prior publish within the window", func(t *testing.T) {
		dup, err := service.FindPublishedDuplicate(ctx, retry)
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, published.ID, dup.ID)
		require.NotNil(t, dup.RemoteID)
		assert.Equal(t, "remote-dup-1", *dup.RemoteID)
	})

	t.Run("never matches itself", func(t *testing.T) {
		dup, err := service.FindPublishedDuplicate(ctx, published)
		require.NoError(t, err)
		assert.Nil(t, dup)
	})

	t.Run("ignores publishes outside the window", func(t *testing.T) {
		err := client.Post.UpdateOneID(published.ID).
			SetPublishedAt(time.Now().Add(-25 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		dup, err := service.FindPublishedDuplicate(ctx, retry)
		require.NoError(t, err)
		assert.Nil(t, dup)
	})
}
