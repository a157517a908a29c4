package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/services"
)

// Reconciler retries unroutable webhook events. The usual cause is a
// callback arriving before the adapter result that creates its trusted
// mapping; a short delay resolves most of them.
type Reconciler struct {
	cfg      *config.WebhookConfig
	ingress  *Ingress
	webhooks *services.WebhookService
	stopCh   chan struct{}
}

// NewReconciler creates a new Reconciler
func NewReconciler(cfg *config.WebhookConfig, ingress *Ingress, webhooks *services.WebhookService) *Reconciler {
	return &Reconciler{
		cfg:      cfg,
		ingress:  ingress,
		webhooks: webhooks,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the reconcile loop until the context is cancelled or Stop is
// called. All replicas run it; MarkProcessing makes routing single-winner.
func (r *Reconciler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.cfg.ReconcileInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stopCh:
				return
			case <-ticker.C:
				r.reconcileOnce(ctx)
			}
		}
	}()
}

// Stop signals the reconcile loop to exit.
func (r *Reconciler) Stop() {
	close(r.stopCh)
}

func (r *Reconciler) reconcileOnce(ctx context.Context) {
	parked, err := r.webhooks.ListUnroutable(ctx, 100)
	if err != nil {
		slog.Error("Webhook reconciliation failed", "error", err)
		return
	}
	if len(parked) == 0 {
		return
	}

	slog.Info("Reconciling parked webhook events", "count", len(parked))
	for _, event := range parked {
		var env envelope
		if err := json.Unmarshal(event.Payload, &env); err != nil {
			slog.Warn("Parked event payload unreadable, dead-lettering",
				"event_id", event.EventID, "error", err)
			_ = r.webhooks.MarkUnroutable(ctx, event.ID, 0)
			continue
		}
		r.ingress.Route(ctx, event, env)
	}
}
