package workflow

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/account"
	"github.com/postflow-io/postflow/pkg/adapters"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/events"
	"github.com/postflow-io/postflow/pkg/notify"
	"github.com/postflow-io/postflow/pkg/services"
)

// probeBatchSize bounds one probe sweep.
const probeBatchSize = 50

// Prober polls the remote status of awaiting_remote posts whose platform
// webhooks have gone quiet. It is the fallback path; webhook callbacks
// normally finalize asynchronous publishes first.
type Prober struct {
	reporter

	cfg      *config.SchedulerConfig
	accounts *services.AccountService
	adapters adapters.Registry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewProber creates a new Prober.
// publisher may be nil (streaming disabled).
// notifier may be nil (Slack notifications disabled).
func NewProber(cfg *config.SchedulerConfig, posts *services.PostService, accounts *services.AccountService, registry adapters.Registry, publisher *events.EventPublisher, notifier *notify.Service) *Prober {
	return &Prober{
		reporter: reporter{posts: posts, publisher: publisher, notifier: notifier},
		cfg:      cfg,
		accounts: accounts,
		adapters: registry,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the probe loop in a goroutine.
// All pods run it independently; TouchProbe keeps sweeps from overlapping on
// the same posts.
func (pr *Prober) Start(ctx context.Context) {
	pr.wg.Add(1)
	go func() {
		defer pr.wg.Done()

		ticker := time.NewTicker(pr.cfg.ProbeInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-pr.stopCh:
				return
			case <-ticker.C:
				pr.probeOnce(ctx)
			}
		}
	}()
}

// Stop signals the probe loop to exit and waits for it.
func (pr *Prober) Stop() {
	pr.stopOnce.Do(func() { close(pr.stopCh) })
	pr.wg.Wait()
}

func (pr *Prober) probeOnce(ctx context.Context) {
	stale, err := pr.posts.FindStalePolls(ctx, pr.cfg.ProbeInterval, probeBatchSize)
	if err != nil {
		slog.Error("Probe sweep failed", "error", err)
		return
	}

	for _, p := range stale {
		pr.probePost(ctx, p)
	}
}

// probePost resolves one awaiting_remote post against its platform.
func (pr *Prober) probePost(ctx context.Context, p *ent.Post) {
	log := slog.With("post_id", p.ID, "platform", p.Platform)

	// Posts that never resolved within the workflow deadline fail instead of
	// being probed forever.
	if time.Since(p.CreatedAt) > pr.cfg.WorkflowTimeout {
		log.Warn("Post exceeded workflow timeout while awaiting remote confirmation")
		pr.reportFailed(ctx, p, "poll_timeout", "no remote confirmation within workflow timeout")
		return
	}

	if p.RemoteID == nil || *p.RemoteID == "" {
		pr.reportFailed(ctx, p, "remote_lost", "awaiting remote confirmation without a remote id")
		return
	}
	remoteID := *p.RemoteID

	adapter := pr.adapters.Get(string(p.Platform))
	if adapter == nil {
		pr.reportFailed(ctx, p, "permanent", "no adapter registered for platform")
		return
	}

	_, accessToken, err := pr.accounts.DispatchAuth(ctx, p.AccountID)
	if err != nil {
		if errors.Is(err, services.ErrAccountUnavailable) {
			pr.reportFailed(ctx, p, "auth_revoked", "account credentials revoked")
			return
		}
		log.Warn("Failed to load credentials for probe", "error", err)
		pr.touch(ctx, p.ID)
		return
	}

	result, err := adapter.Probe(ctx, accessToken, remoteID)
	if err != nil {
		aerr := adapters.Classify(err)
		if aerr.Kind == adapters.KindAuthRevoked {
			if serr := pr.accounts.SetStatus(ctx, p.AccountID, account.StatusRevoked); serr != nil {
				log.Error("Failed to revoke account", "account_id", p.AccountID, "error", serr)
			}
			pr.reportFailed(ctx, p, "auth_revoked", aerr.Error())
			return
		}
		log.Warn("Probe failed, will retry next sweep", "kind", aerr.Kind, "error", err)
		pr.touch(ctx, p.ID)
		return
	}

	switch result.Status {
	case adapters.RemoteLive:
		pr.reportPublished(ctx, p, remoteID, result.PublishedAt)
		log.Info("Probe confirmed publish", "remote_id", remoteID)
	case adapters.RemoteFailed:
		pr.reportFailed(ctx, p, "remote_failed", probeDetail(result))
	case adapters.RemoteNotFound:
		pr.reportFailed(ctx, p, "remote_failed", "remote reports the post does not exist")
	default: // RemoteProcessing
		pr.touch(ctx, p.ID)
	}
}

func (pr *Prober) touch(ctx context.Context, postID string) {
	if err := pr.posts.TouchProbe(ctx, postID); err != nil {
		slog.Warn("Failed to record probe attempt", "post_id", postID, "error", err)
	}
}

func probeDetail(result *adapters.ProbeResult) string {
	if result.Reason != "" {
		return result.Reason
	}
	return "remote reports the publish failed"
}
