package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/pkg/events"
	"github.com/postflow-io/postflow/pkg/notify"
	"github.com/postflow-io/postflow/pkg/services"
)

// reporter finalizes posts and fans the outcome out to WebSocket clients and
// Slack. Shared by the dispatcher and the remote-status prober, which are the
// two places a post reaches a terminal state.
// publisher may be nil (streaming disabled); notifier is nil-safe.
type reporter struct {
	posts     *services.PostService
	publisher *events.EventPublisher
	notifier  *notify.Service
}

// reportPublished marks the post published and announces it.
func (r *reporter) reportPublished(ctx context.Context, p *ent.Post, remoteID string, publishedAt time.Time) {
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}
	if err := r.posts.MarkPublished(ctx, p.ID, remoteID, publishedAt); err != nil {
		slog.Error("Failed to mark post published", "post_id", p.ID, "error", err)
		return
	}

	payload := events.NewPostStatePayload(p.ID, p.AccountID, string(p.Platform), "published")
	payload.RemoteID = remoteID
	r.publishState(ctx, p.CreatorID, payload)

	r.notifier.NotifyPublished(ctx, notify.PublishedInput{
		PostID:    p.ID,
		CreatorID: p.CreatorID,
		Platform:  string(p.Platform),
		RemoteID:  remoteID,
	})
}

// reportFailed marks the post terminally failed and announces it.
func (r *reporter) reportFailed(ctx context.Context, p *ent.Post, errorKind, message string) {
	if err := r.posts.MarkFailed(ctx, p.ID, errorKind, message); err != nil {
		slog.Error("Failed to mark post failed", "post_id", p.ID, "error", err)
		return
	}

	payload := events.NewPostStatePayload(p.ID, p.AccountID, string(p.Platform), "failed")
	payload.AttemptCount = p.AttemptCount + 1
	payload.ErrorKind = errorKind
	r.publishState(ctx, p.CreatorID, payload)

	r.notifier.NotifyFailed(ctx, notify.FailedInput{
		PostID:    p.ID,
		CreatorID: p.CreatorID,
		Platform:  string(p.Platform),
		Attempts:  p.AttemptCount + 1,
		Reason:    errorKind + ": " + message,
	})
}

// reportAwaitingRemote announces that the platform accepted the post.
func (r *reporter) reportAwaitingRemote(ctx context.Context, p *ent.Post, remoteID string) {
	payload := events.NewPostStatePayload(p.ID, p.AccountID, string(p.Platform), "awaiting_remote")
	payload.RemoteID = remoteID
	r.publishState(ctx, p.CreatorID, payload)
}

// publishState publishes a post state event. Non-blocking: errors are logged.
func (r *reporter) publishState(ctx context.Context, creatorID string, payload events.PostStatePayload) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.PublishPostState(ctx, creatorID, payload); err != nil {
		slog.Warn("Failed to publish post state event",
			"post_id", payload.PostID, "state", payload.State, "error", err)
	}
}
