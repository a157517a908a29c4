package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postflow-io/postflow/ent/reservation"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/models"
	testdb "github.com/postflow-io/postflow/test/database"
)

func testBudgetConfig() *config.BudgetConfig {
	return &config.BudgetConfig{
		DefaultLimitUSD: 10,
		SoftPct:         0.8,
		HardStop:        false,
		ReservationTTL:  10 * time.Minute,
		ReaperInterval:  time.Minute,
	}
}

func TestBudgetService_ReserveCommitRelease(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBudgetService(client.Client, testBudgetConfig())
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	month := CurrentMonth(time.Now())

	t.Run("reserve then commit moves hold to spend", func(t *testing.T) {
		res, err := service.Reserve(ctx, principal, 2.5)
		require.NoError(t, err)
		assert.Equal(t, reservation.StateHeld, res.State)
		assert.Equal(t, month, res.Month)

		status, err := service.Status(ctx, principal, month)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, status.ReservedUSD, 0.0001)
		assert.InDelta(t, 0, status.SpentUSD, 0.0001)

		// Actual cost came in below the estimate.
		require.NoError(t, service.Commit(ctx, res.ID, 1.75))

		status, err = service.Status(ctx, principal, month)
		require.NoError(t, err)
		assert.InDelta(t, 0, status.ReservedUSD, 0.0001)
		assert.InDelta(t, 1.75, status.SpentUSD, 0.0001)
	})

	t.Run("release returns the hold without spend", func(t *testing.T) {
		res, err := service.Reserve(ctx, principal, 3)
		require.NoError(t, err)
		require.NoError(t, service.Release(ctx, res.ID))

		status, err := service.Status(ctx, principal, month)
		require.NoError(t, err)
		assert.InDelta(t, 0, status.ReservedUSD, 0.0001)
		assert.InDelta(t, 1.75, status.SpentUSD, 0.0001)
	})

	t.Run("double commit is rejected", func(t *testing.T) {
		res, err := service.Reserve(ctx, principal, 1)
		require.NoError(t, err)
		require.NoError(t, service.Commit(ctx, res.ID, 1))

		err = service.Commit(ctx, res.ID, 1)
		assert.ErrorIs(t, err, ErrReservationNotHeld)

		err = service.Release(ctx, res.ID)
		assert.ErrorIs(t, err, ErrReservationNotHeld)
	})

	t.Run("cap blocks the crossing hold even without hard stop", func(t *testing.T) {
		// 2.75 spent so far against a 10 limit; a 8 hold would cross. The
		// config leaves hard_stop off, so this exercises the unconditional cap.
		_, err := service.Reserve(ctx, principal, 8)
		assert.ErrorIs(t, err, ErrBudgetExceeded)

		// A hold that fits still goes through.
		res, err := service.Reserve(ctx, principal, 5)
		require.NoError(t, err)
		require.NoError(t, service.Release(ctx, res.ID))
	})
}

func TestBudgetService_HardStopTightensSoftThreshold(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBudgetService(client.Client, testBudgetConfig())
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	month := CurrentMonth(time.Now())

	require.NoError(t, service.SetLimit(ctx, principal, month, 10, true))

	// A 9 hold only warns without hard stop; with it the soft threshold (8)
	// becomes a second cap.
	_, err := service.Reserve(ctx, principal, 9)
	assert.ErrorIs(t, err, ErrBudgetExceeded)

	// Holds below the soft threshold still pass.
	res, err := service.Reserve(ctx, principal, 7)
	require.NoError(t, err)
	require.NoError(t, service.Release(ctx, res.ID))
}

func TestBudgetService_ExpireStaleReservations(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBudgetService(client.Client, testBudgetConfig())
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	month := CurrentMonth(time.Now())

	res, err := service.Reserve(ctx, principal, 4)
	require.NoError(t, err)

	// Push the hold past its TTL.
	err = client.Reservation.UpdateOneID(res.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	expired, err := service.ExpireStaleReservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	got, err := client.Reservation.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StateExpired, got.State)

	status, err := service.Status(ctx, principal, month)
	require.NoError(t, err)
	assert.InDelta(t, 0, status.ReservedUSD, 0.0001)
}

func TestBudgetService_StatusAndLimits(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBudgetService(client.Client, testBudgetConfig())
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	month := CurrentMonth(time.Now())

	t.Run("untouched month reports the default limit", func(t *testing.T) {
		status, err := service.Status(ctx, principal, "2031-01")
		require.NoError(t, err)
		assert.Equal(t, "2031-01", status.Month)
		assert.InDelta(t, 10, status.LimitUSD, 0.0001)
		assert.False(t, status.SoftBreached)
		assert.False(t, status.HardBreached)
	})

	t.Run("soft threshold is reported", func(t *testing.T) {
		// A 9 hold lands between the soft threshold (8) and the cap (10);
		// without hard stop it is admitted and only flagged.
		res, err := service.Reserve(ctx, principal, 9)
		require.NoError(t, err)

		status, err := service.Status(ctx, principal, month)
		require.NoError(t, err)
		assert.True(t, status.SoftBreached)
		assert.False(t, status.HardBreached)

		require.NoError(t, service.Release(ctx, res.ID))
	})

	t.Run("raising the limit unblocks holds", func(t *testing.T) {
		_, err := service.Reserve(ctx, principal, 15)
		require.ErrorIs(t, err, ErrBudgetExceeded)

		require.NoError(t, service.SetLimit(ctx, principal, month, 100, true))

		res, err := service.Reserve(ctx, principal, 15)
		require.NoError(t, err)
		require.NoError(t, service.Release(ctx, res.ID))
	})

	t.Run("lowering below spend blocks new holds only", func(t *testing.T) {
		res, err := service.Reserve(ctx, principal, 5)
		require.NoError(t, err)
		require.NoError(t, service.Commit(ctx, res.ID, 5))

		require.NoError(t, service.SetLimit(ctx, principal, month, 1, true))

		status, err := service.Status(ctx, principal, month)
		require.NoError(t, err)
		assert.True(t, status.HardBreached)

		_, err = service.Reserve(ctx, principal, 0.5)
		assert.ErrorIs(t, err, ErrBudgetExceeded)
	})
}
