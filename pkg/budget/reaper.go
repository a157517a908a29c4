package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/services"
)

// Reaper releases held reservations whose caller never came back to commit
// or release — a crashed worker must not hold budget forever.
// All replicas run it; expiry is idempotent.
type Reaper struct {
	budgets  *services.BudgetService
	interval time.Duration
	stopCh   chan struct{}
}

// NewReaper creates a new Reaper
func NewReaper(budgets *services.BudgetService, cfg *config.BudgetConfig) *Reaper {
	return &Reaper{
		budgets:  budgets,
		interval: cfg.ReaperInterval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the reap loop until the context is cancelled or Stop is called.
func (r *Reaper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stopCh:
				return
			case <-ticker.C:
				r.reapOnce(ctx)
			}
		}
	}()
}

// Stop signals the reap loop to exit.
func (r *Reaper) Stop() {
	close(r.stopCh)
}

func (r *Reaper) reapOnce(ctx context.Context) {
	expired, err := r.budgets.ExpireStaleReservations(ctx)
	if err != nil {
		slog.Error("Reservation reaping failed", "error", err)
		return
	}
	if expired > 0 {
		slog.Warn("Expired stale budget reservations", "count", expired)
	}
}
