package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/postflow-io/postflow/pkg/models"
	"github.com/postflow-io/postflow/pkg/services"
)

// Guard is the reserve → call → commit/release gate in front of every LLM
// invocation. No reservation, no call.
type Guard struct {
	budgets   *services.BudgetService
	estimator *Estimator
	logger    *slog.Logger
}

// NewGuard creates a new Guard
func NewGuard(budgets *services.BudgetService, estimator *Estimator) *Guard {
	return &Guard{
		budgets:   budgets,
		estimator: estimator,
		logger:    slog.With("component", "budget"),
	}
}

// Hold is a live reservation. Exactly one of Commit or Release must be
// called; a leaked Hold is cleaned up by the reaper after its TTL.
type Hold struct {
	ReservationID string
	EstimatedUSD  float64

	guard    *Guard
	provider string
	model    string
	settled  bool
}

// Reserve estimates a call's worst-case cost and holds it against the
// creator's current month. Returns services.ErrBudgetExceeded when the hold
// would cross the hard cap.
func (g *Guard) Reserve(ctx context.Context, principal models.CreatorPrincipal, provider, model string, inputTokens, maxOutputTokens int) (*Hold, error) {
	estimate, err := g.estimator.Estimate(provider, model, inputTokens, maxOutputTokens)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate cost: %w", err)
	}

	res, err := g.budgets.Reserve(ctx, principal, estimate)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Budget reserved",
		"creator_id", principal.CreatorID,
		"reservation_id", res.ID,
		"estimated_usd", estimate)

	return &Hold{
		ReservationID: res.ID,
		EstimatedUSD:  estimate,
		guard:         g,
		provider:      provider,
		model:         model,
	}, nil
}

// Commit settles the hold at the call's actual cost.
func (h *Hold) Commit(ctx context.Context, usage TokenUsage) error {
	if h.settled {
		return nil
	}
	actual, err := h.guard.estimator.Actual(h.provider, h.model, usage)
	if err != nil {
		return fmt.Errorf("failed to price actual usage: %w", err)
	}
	if err := h.guard.budgets.Commit(ctx, h.ReservationID, actual); err != nil {
		return err
	}
	h.settled = true
	h.guard.logger.Debug("Budget committed",
		"reservation_id", h.ReservationID,
		"estimated_usd", h.EstimatedUSD,
		"actual_usd", actual)
	return nil
}

// Release returns the hold without spending, for failed or skipped calls.
func (h *Hold) Release(ctx context.Context) error {
	if h.settled {
		return nil
	}
	if err := h.guard.budgets.Release(ctx, h.ReservationID); err != nil {
		return err
	}
	h.settled = true
	return nil
}
