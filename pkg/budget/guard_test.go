package budget

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/models"
	"github.com/postflow-io/postflow/pkg/services"
	testdb "github.com/postflow-io/postflow/test/database"
)

func TestGuard(t *testing.T) {
	client := testdb.NewTestClient(t)
	budgets := services.NewBudgetService(client.Client, &config.BudgetConfig{
		DefaultLimitUSD: 0.01,
		SoftPct:         0.8,
		HardStop:        true,
		ReservationTTL:  10 * time.Minute,
		ReaperInterval:  time.Minute,
	})
	guard := NewGuard(budgets, NewEstimator(testPricingTable()))
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}
	month := services.CurrentMonth(time.Now())

	t.Run("reserve then commit settles at actual cost", func(t *testing.T) {
		hold, err := guard.Reserve(ctx, principal, "openai", "gpt-4o-mini", 1000, 2000)
		require.NoError(t, err)
		assert.Greater(t, hold.EstimatedUSD, 0.0)

		err = hold.Commit(ctx, TokenUsage{InputTokens: 1000, OutputTokens: 150})
		require.NoError(t, err)

		status, err := budgets.Status(ctx, principal, month)
		require.NoError(t, err)
		assert.InDelta(t, 0, status.ReservedUSD, 1e-9)
		assert.Greater(t, status.SpentUSD, 0.0)
		assert.Less(t, status.SpentUSD, hold.EstimatedUSD)

		// Settling twice is a no-op.
		require.NoError(t, hold.Commit(ctx, TokenUsage{InputTokens: 1, OutputTokens: 1}))
		require.NoError(t, hold.Release(ctx))
	})

	t.Run("release returns the full hold", func(t *testing.T) {
		before, err := budgets.Status(ctx, principal, month)
		require.NoError(t, err)

		hold, err := guard.Reserve(ctx, principal, "openai", "gpt-4o-mini", 100, 100)
		require.NoError(t, err)
		require.NoError(t, hold.Release(ctx))

		after, err := budgets.Status(ctx, principal, month)
		require.NoError(t, err)
		assert.InDelta(t, before.SpentUSD, after.SpentUSD, 1e-9)
		assert.InDelta(t, 0, after.ReservedUSD, 1e-9)
	})

	t.Run("exhausted budget refuses new holds", func(t *testing.T) {
		// Burn through the tiny limit.
		require.NoError(t, budgets.SetLimit(ctx, principal, month, 0.0001, true))

		_, err := guard.Reserve(ctx, principal, "openai", "gpt-4o-mini", 10000, 10000)
		assert.ErrorIs(t, err, services.ErrBudgetExceeded)
	})
}
