package workflow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/account"
	"github.com/postflow-io/postflow/ent/post"
	"github.com/postflow-io/postflow/pkg/adapters"
	"github.com/postflow-io/postflow/pkg/budget"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/events"
	"github.com/postflow-io/postflow/pkg/llm"
	"github.com/postflow-io/postflow/pkg/models"
	"github.com/postflow-io/postflow/pkg/notify"
	"github.com/postflow-io/postflow/pkg/ratelimit"
	"github.com/postflow-io/postflow/pkg/services"
)

// PostDispatcher executes claimed posts against platform adapters.
type PostDispatcher struct {
	reporter

	cfg        *config.SchedulerConfig
	captionCfg *config.CaptionConfig
	accounts   *services.AccountService
	mappings   *services.MappingService
	budgets    *services.BudgetService
	limiter    *ratelimit.Limiter
	guard      *budget.Guard
	captions   llm.CaptionClient
	adapters   adapters.Registry
}

// NewPostDispatcher creates a new PostDispatcher.
// captions may be nil (caption generation disabled).
// publisher may be nil (streaming disabled).
// notifier may be nil (Slack notifications disabled).
func NewPostDispatcher(
	cfg *config.SchedulerConfig,
	captionCfg *config.CaptionConfig,
	posts *services.PostService,
	accounts *services.AccountService,
	mappings *services.MappingService,
	budgets *services.BudgetService,
	limiter *ratelimit.Limiter,
	guard *budget.Guard,
	captions llm.CaptionClient,
	registry adapters.Registry,
	publisher *events.EventPublisher,
	notifier *notify.Service,
) *PostDispatcher {
	return &PostDispatcher{
		reporter:   reporter{posts: posts, publisher: publisher, notifier: notifier},
		cfg:        cfg,
		captionCfg: captionCfg,
		accounts:   accounts,
		mappings:   mappings,
		budgets:    budgets,
		limiter:    limiter,
		guard:      guard,
		captions:   captions,
		adapters:   registry,
	}
}

// Dispatch runs one publish attempt for a claimed post. Every exit path
// leaves the post in a well-defined state: published, awaiting_remote,
// scheduled (requeued), or failed. A cancelled context means the claim was
// lost or the pod is shutting down; the post is left for orphan recovery.
func (d *PostDispatcher) Dispatch(ctx context.Context, p *ent.Post) {
	log := slog.With("post_id", p.ID, "platform", p.Platform, "account_id", p.AccountID)
	platform := string(p.Platform)

	adapter := d.adapters.Get(platform)
	if adapter == nil {
		d.reportFailed(ctx, p, "permanent", "no adapter registered for platform")
		return
	}

	// At-most-once recheck: a retry of content that already went live (crash
	// between the platform call and the state write) adopts the prior publish
	// instead of calling the adapter again.
	if dup, err := d.posts.FindPublishedDuplicate(ctx, p); err != nil {
		log.Warn("Dedupe recheck failed, continuing", "error", err)
	} else if dup != nil {
		remoteID := ""
		if dup.RemoteID != nil {
			remoteID = *dup.RemoteID
		}
		publishedAt := time.Now()
		if dup.PublishedAt != nil {
			publishedAt = *dup.PublishedAt
		}
		d.reportPublished(context.Background(), p, remoteID, publishedAt)
		log.Info("Adopted prior publish for duplicate content", "prior_post_id", dup.ID)
		return
	}

	decision := d.limiter.Acquire(ctx, platform, p.AccountID, endpointCreatePost)
	if !decision.Allowed {
		// The adapter call never ran, so the deferral does not consume
		// an attempt.
		at := time.Now().Add(decision.RetryAfter)
		if err := d.posts.Defer(ctx, p.ID, decision.Reason, at); err != nil {
			log.Error("Failed to defer rate-limited post", "error", err)
			return
		}
		log.Debug("Dispatch deferred", "reason", decision.Reason, "retry_after", decision.RetryAfter)
		return
	}

	caption := p.Caption
	if caption == "" && d.captions != nil && d.captionCfg.Enabled {
		caption = d.generateCaption(ctx, p)
	}

	platformAccountID, accessToken, err := d.accounts.DispatchAuth(ctx, p.AccountID)
	if err != nil {
		if errors.Is(err, services.ErrAccountUnavailable) {
			d.reportFailed(ctx, p, "auth_revoked", "account credentials revoked")
			return
		}
		d.requeue(ctx, p, "transient", "failed to load account credentials: "+err.Error())
		return
	}

	result, err := adapter.CreatePost(ctx, adapters.CreatePostInput{
		AccountID:         p.AccountID,
		PlatformAccountID: platformAccountID,
		AccessToken:       accessToken,
		MediaRef:          p.MediaRef,
		Caption:           caption,
	})
	if err != nil {
		if ctx.Err() != nil {
			// Claim lost or shutdown mid-call. Leave the post alone:
			// orphan recovery requeues it, and if the call actually
			// landed the webhook or prober converges it.
			log.Warn("Dispatch abandoned", "cause", ctx.Err())
			return
		}
		d.handleAdapterError(ctx, p, err)
		return
	}

	d.limiter.RecordOutcome(ctx, platform, p.AccountID, endpointCreatePost, ratelimit.OutcomeSuccess, 0)

	// The trusted mapping is what lets webhook callbacks find this post.
	// Recorded before the state change so a fast callback cannot race past it.
	if result.RemoteID != "" {
		if err := d.mappings.Record(ctx, platform, result.RemoteID, p.ID); err != nil {
			log.Error("Failed to record remote mapping", "remote_id", result.RemoteID, "error", err)
		}
	}

	if result.Published {
		d.reportPublished(context.Background(), p, result.RemoteID, result.PublishedAt)
		log.Info("Post published", "remote_id", result.RemoteID)
		return
	}

	if err := d.posts.MarkAwaitingRemote(ctx, p.ID, result.RemoteID); err != nil {
		log.Error("Failed to mark post awaiting remote", "error", err)
		return
	}
	d.reportAwaitingRemote(context.Background(), p, result.RemoteID)
	log.Info("Post accepted by platform, awaiting remote confirmation", "remote_id", result.RemoteID)
}

// handleAdapterError routes an adapter failure by its error kind.
func (d *PostDispatcher) handleAdapterError(ctx context.Context, p *ent.Post, err error) {
	platform := string(p.Platform)
	aerr := adapters.Classify(err)
	log := slog.With("post_id", p.ID, "platform", platform, "kind", aerr.Kind)

	switch aerr.Kind {
	case adapters.KindAuthRevoked:
		if serr := d.accounts.SetStatus(ctx, p.AccountID, account.StatusRevoked); serr != nil {
			log.Error("Failed to revoke account", "account_id", p.AccountID, "error", serr)
		}
		d.reportFailed(context.Background(), p, "auth_revoked", aerr.Error())

	case adapters.KindRateLimited:
		d.limiter.RecordOutcome(ctx, platform, p.AccountID, endpointCreatePost, ratelimit.OutcomeRateLimited, aerr.RetryAfter)
		if aerr.RetryAfter > 0 {
			at := time.Now().Add(aerr.RetryAfter)
			if rerr := d.posts.RequeueAfter(ctx, p.ID, "rate_limited", aerr.Error(), at); rerr != nil {
				log.Error("Failed to requeue rate-limited post", "error", rerr)
			}
			log.Info("Provider rate limit hit, requeued", "retry_after", aerr.RetryAfter)
			return
		}
		d.requeue(ctx, p, "rate_limited", aerr.Error())

	case adapters.KindTransient, adapters.KindTimeout:
		d.limiter.RecordOutcome(ctx, platform, p.AccountID, endpointCreatePost, ratelimit.OutcomeFailure, 0)
		d.requeue(ctx, p, string(aerr.Kind), aerr.Error())

	default: // KindPermanent
		d.reportFailed(context.Background(), p, "permanent", aerr.Error())
	}
}

// requeue retries the post with exponential backoff, reporting the terminal
// failure if attempts are exhausted.
func (d *PostDispatcher) requeue(ctx context.Context, p *ent.Post, errorKind, message string) {
	state, err := d.posts.RequeueWithBackoff(ctx, p.ID, errorKind, message)
	if err != nil {
		slog.Error("Failed to requeue post", "post_id", p.ID, "error", err)
		return
	}
	if state == post.StateFailed {
		payload := events.NewPostStatePayload(p.ID, p.AccountID, string(p.Platform), "failed")
		payload.AttemptCount = p.AttemptCount + 1
		payload.ErrorKind = errorKind
		d.publishState(context.Background(), p.CreatorID, payload)
		d.notifier.NotifyFailed(context.Background(), notify.FailedInput{
			PostID:    p.ID,
			CreatorID: p.CreatorID,
			Platform:  string(p.Platform),
			Attempts:  p.AttemptCount + 1,
			Reason:    errorKind + ": " + message,
		})
		return
	}
	slog.Info("Post requeued", "post_id", p.ID, "kind", errorKind, "attempts", p.AttemptCount+1)
}

// generateCaption runs the budget-guarded caption step. Best-effort: any
// failure, including a budget denial, falls back to the submitted caption.
func (d *PostDispatcher) generateCaption(ctx context.Context, p *ent.Post) string {
	log := slog.With("post_id", p.ID, "creator_id", p.CreatorID)
	principal := models.CreatorPrincipal{CreatorID: p.CreatorID}
	req := llm.CaptionRequest{
		PostID:       p.ID,
		Platform:     string(p.Platform),
		MediaRef:     p.MediaRef,
		DraftCaption: p.Caption,
	}

	hold, err := d.guard.Reserve(ctx, principal, d.captionCfg.Provider, d.captionCfg.Model,
		llm.EstimateInputTokens(req), d.captionCfg.MaxTokens)
	if err != nil {
		if errors.Is(err, services.ErrBudgetExceeded) {
			log.Info("Budget exhausted, publishing without generated caption")
			d.publishBudgetAlert(ctx, principal, "hard")
		} else {
			log.Warn("Budget reservation failed, skipping caption", "error", err)
		}
		return p.Caption
	}

	result, err := d.captions.GenerateCaption(ctx, req)
	if err != nil {
		log.Warn("Caption generation failed, publishing without it", "error", err)
		if rerr := hold.Release(ctx); rerr != nil {
			log.Warn("Failed to release budget hold", "reservation_id", hold.ReservationID, "error", rerr)
		}
		return p.Caption
	}

	if cerr := hold.Commit(ctx, result.Usage); cerr != nil {
		log.Error("Failed to commit budget hold", "reservation_id", hold.ReservationID, "error", cerr)
	}
	d.maybeSoftAlert(ctx, principal)

	if result.Caption == "" {
		return p.Caption
	}
	if uerr := d.posts.UpdateCaption(ctx, p.ID, result.Caption); uerr != nil {
		log.Warn("Failed to persist generated caption", "error", uerr)
	}
	return result.Caption
}

// maybeSoftAlert warns the creator once their spend crosses the soft
// threshold. Fires on every crossing-side commit; clients deduplicate.
func (d *PostDispatcher) maybeSoftAlert(ctx context.Context, principal models.CreatorPrincipal) {
	status, err := d.budgets.Status(ctx, principal, services.CurrentMonth(time.Now()))
	if err != nil {
		slog.Warn("Failed to check budget status", "creator_id", principal.CreatorID, "error", err)
		return
	}
	if status.SoftBreached && !status.HardBreached {
		d.notifyBudget(ctx, principal, "soft", status)
	}
}

// publishBudgetAlert looks up the period standing and announces a threshold.
func (d *PostDispatcher) publishBudgetAlert(ctx context.Context, principal models.CreatorPrincipal, threshold string) {
	status, err := d.budgets.Status(ctx, principal, services.CurrentMonth(time.Now()))
	if err != nil {
		slog.Warn("Failed to check budget status", "creator_id", principal.CreatorID, "error", err)
		return
	}
	d.notifyBudget(ctx, principal, threshold, status)
}

func (d *PostDispatcher) notifyBudget(ctx context.Context, principal models.CreatorPrincipal, threshold string, status *models.BudgetStatus) {
	if d.publisher != nil {
		payload := events.BudgetAlertPayload{
			Type:         events.EventTypeBudgetAlert,
			CreatorID:    principal.CreatorID,
			Month:        status.Month,
			Threshold:    threshold,
			CommittedUSD: status.SpentUSD,
			LimitUSD:     status.LimitUSD,
			Timestamp:    time.Now(),
		}
		if err := d.publisher.PublishBudgetAlert(ctx, payload); err != nil {
			slog.Warn("Failed to publish budget alert", "creator_id", principal.CreatorID, "error", err)
		}
	}
	d.notifier.NotifyBudgetAlert(ctx, notify.BudgetAlertInput{
		CreatorID: principal.CreatorID,
		Month:     status.Month,
		Threshold: threshold,
		SpentUSD:  status.SpentUSD,
		LimitUSD:  status.LimitUSD,
	})
}
