package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/budgetperiod"
	"github.com/postflow-io/postflow/ent/reservation"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/models"
)

// BudgetService owns creator budget periods and cost reservations.
// All mutations lock the budget period row FOR UPDATE so the invariant
// spent + reserved ≤ limit holds across replicas.
type BudgetService struct {
	client *ent.Client
	cfg    *config.BudgetConfig
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(client *ent.Client, cfg *config.BudgetConfig) *BudgetService {
	return &BudgetService{client: client, cfg: cfg}
}

// CurrentMonth returns the UTC calendar month key, YYYY-MM.
func CurrentMonth(now time.Time) string {
	return now.UTC().Format("2006-01")
}

// Reserve holds an estimated amount against the creator's current month.
// Returns ErrBudgetExceeded when the hold would cross the hard cap.
func (s *BudgetService) Reserve(httpCtx context.Context, principal models.CreatorPrincipal, amountUSD float64) (*ent.Reservation, error) {
	if !principal.Valid() {
		return nil, NewValidationError("creator_id", "required")
	}
	if amountUSD <= 0 {
		return nil, NewValidationError("amount_usd", "must be positive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	month := CurrentMonth(now)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	period, err := s.lockPeriod(ctx, tx, principal.CreatorID, month)
	if err != nil {
		return nil, err
	}

	// The cap is absolute: spent + reserved never exceeds the limit, whatever
	// the hard_stop flag says.
	committed := period.SpentUsd + period.ReservedUsd + amountUSD
	if committed > period.LimitUsd {
		return nil, fmt.Errorf("%w: %.4f + %.4f would exceed %.2f",
			ErrBudgetExceeded, period.SpentUsd+period.ReservedUsd, amountUSD, period.LimitUsd)
	}
	if committed > period.LimitUsd*period.SoftPct {
		// hard_stop tightens the soft threshold into a second cap; without it
		// the crossing is only reported.
		if period.HardStop || s.cfg.HardStop {
			return nil, fmt.Errorf("%w: %.4f + %.4f would exceed soft threshold %.2f with hard stop set",
				ErrBudgetExceeded, period.SpentUsd+period.ReservedUsd, amountUSD, period.LimitUsd*period.SoftPct)
		}
		slog.Warn("Budget soft threshold crossed",
			"creator_id", principal.CreatorID,
			"month", month,
			"committed_usd", committed,
			"limit_usd", period.LimitUsd)
	}

	res, err := tx.Reservation.Create().
		SetID(uuid.New().String()).
		SetCreatorID(principal.CreatorID).
		SetMonth(month).
		SetAmountUsd(amountUSD).
		SetState(reservation.StateHeld).
		SetExpiresAt(now.Add(s.cfg.ReservationTTL)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	err = tx.BudgetPeriod.UpdateOneID(period.ID).
		AddReservedUsd(amountUSD).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update reserved amount: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}
	return res, nil
}

// Commit converts a held reservation into spend at its actual cost. The
// actual may differ from the estimate in either direction.
func (s *BudgetService) Commit(httpCtx context.Context, reservationID string, actualUSD float64) error {
	if actualUSD < 0 {
		return NewValidationError("actual_usd", "must be non-negative")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := s.lockReservation(ctx, tx, reservationID)
	if err != nil {
		return err
	}
	if res.State != reservation.StateHeld {
		return fmt.Errorf("%w: state is %s", ErrReservationNotHeld, res.State)
	}

	period, err := s.lockPeriod(ctx, tx, res.CreatorID, res.Month)
	if err != nil {
		return err
	}

	err = tx.Reservation.UpdateOneID(res.ID).
		SetState(reservation.StateCommitted).
		SetCommittedUsd(actualUSD).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to commit reservation: %w", err)
	}

	err = tx.BudgetPeriod.UpdateOneID(period.ID).
		AddReservedUsd(-res.AmountUsd).
		AddSpentUsd(actualUSD).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to move reservation to spend: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Release returns a held reservation to the budget without spending.
func (s *BudgetService) Release(httpCtx context.Context, reservationID string) error {
	return s.release(reservationID, reservation.StateReleased)
}

func (s *BudgetService) release(reservationID string, to reservation.State) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := s.lockReservation(ctx, tx, reservationID)
	if err != nil {
		return err
	}
	if res.State != reservation.StateHeld {
		return fmt.Errorf("%w: state is %s", ErrReservationNotHeld, res.State)
	}

	period, err := s.lockPeriod(ctx, tx, res.CreatorID, res.Month)
	if err != nil {
		return err
	}

	if err := tx.Reservation.UpdateOneID(res.ID).SetState(to).Exec(ctx); err != nil {
		return fmt.Errorf("failed to release reservation: %w", err)
	}
	err = tx.BudgetPeriod.UpdateOneID(period.ID).
		AddReservedUsd(-res.AmountUsd).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to return reserved amount: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ExpireStaleReservations releases held reservations past their TTL.
// Returns how many were expired.
func (s *BudgetService) ExpireStaleReservations(ctx context.Context) (int, error) {
	stale, err := s.client.Reservation.Query().
		Where(
			reservation.StateEQ(reservation.StateHeld),
			reservation.ExpiresAtLT(time.Now()),
		).
		Limit(100).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find stale reservations: %w", err)
	}

	expired := 0
	for _, res := range stale {
		if err := s.release(res.ID, reservation.StateExpired); err != nil {
			// Raced with a commit or release; fine either way.
			slog.Debug("Skipping reservation during expiry", "reservation_id", res.ID, "error", err)
			continue
		}
		expired++
	}
	return expired, nil
}

// Status reports the creator's standing for a month. A creator with no period
// row yet gets the configured default limit and zero spend.
func (s *BudgetService) Status(ctx context.Context, principal models.CreatorPrincipal, month string) (*models.BudgetStatus, error) {
	if month == "" {
		month = CurrentMonth(time.Now())
	}

	period, err := s.client.BudgetPeriod.Query().
		Where(
			budgetperiod.CreatorIDEQ(principal.CreatorID),
			budgetperiod.MonthEQ(month),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &models.BudgetStatus{
				Month:    month,
				LimitUSD: s.cfg.DefaultLimitUSD,
			}, nil
		}
		return nil, fmt.Errorf("failed to load budget period: %w", err)
	}

	committed := period.SpentUsd + period.ReservedUsd
	return &models.BudgetStatus{
		Month:        period.Month,
		LimitUSD:     period.LimitUsd,
		SpentUSD:     period.SpentUsd,
		ReservedUSD:  period.ReservedUsd,
		SoftBreached: committed > period.LimitUsd*period.SoftPct,
		HardBreached: committed >= period.LimitUsd,
	}, nil
}

// SetLimit adjusts a creator's limit for a month, creating the period if
// needed. Lowering below current spend is allowed; it just blocks new holds.
func (s *BudgetService) SetLimit(ctx context.Context, principal models.CreatorPrincipal, month string, limitUSD float64, hardStop bool) error {
	if limitUSD < 0 {
		return NewValidationError("limit_usd", "must be non-negative")
	}
	if month == "" {
		month = CurrentMonth(time.Now())
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	period, err := s.lockPeriod(ctx, tx, principal.CreatorID, month)
	if err != nil {
		return err
	}

	err = tx.BudgetPeriod.UpdateOneID(period.ID).
		SetLimitUsd(limitUSD).
		SetHardStop(hardStop).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set budget limit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// lockPeriod loads the (creator, month) period FOR UPDATE, creating it with
// defaults on first touch.
func (s *BudgetService) lockPeriod(ctx context.Context, tx *ent.Tx, creatorID, month string) (*ent.BudgetPeriod, error) {
	period, err := tx.BudgetPeriod.Query().
		Where(
			budgetperiod.CreatorIDEQ(creatorID),
			budgetperiod.MonthEQ(month),
		).
		ForUpdate().
		Only(ctx)
	if err == nil {
		return period, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to lock budget period: %w", err)
	}

	period, err = tx.BudgetPeriod.Create().
		SetID(uuid.New().String()).
		SetCreatorID(creatorID).
		SetMonth(month).
		SetLimitUsd(s.cfg.DefaultLimitUSD).
		SetSoftPct(s.cfg.SoftPct).
		SetHardStop(s.cfg.HardStop).
		Save(ctx)
	if err == nil {
		return period, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create budget period: %w", err)
	}

	// Lost the creation race; lock the winner's row.
	period, err = tx.BudgetPeriod.Query().
		Where(
			budgetperiod.CreatorIDEQ(creatorID),
			budgetperiod.MonthEQ(month),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock budget period after race: %w", err)
	}
	return period, nil
}

func (s *BudgetService) lockReservation(ctx context.Context, tx *ent.Tx, reservationID string) (*ent.Reservation, error) {
	res, err := tx.Reservation.Query().
		Where(reservation.IDEQ(reservationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock reservation: %w", err)
	}
	return res, nil
}
