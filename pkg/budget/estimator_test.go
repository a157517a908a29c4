package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postflow-io/postflow/pkg/config"
)

func testPricingTable() *config.PricingTable {
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return config.NewPricingTable(map[string]*config.ModelPricing{
		"openai/gpt-4o-mini": {
			Provider: "openai",
			Model:    "gpt-4o-mini",
			Points: []config.PricePoint{
				{EffectiveDate: old, InputPer1K: 0.0002, OutputPer1K: 0.0008},
				{EffectiveDate: recent, InputPer1K: 0.00015, OutputPer1K: 0.0006},
			},
		},
	})
}

func TestEstimator(t *testing.T) {
	estimator := NewEstimator(testPricingTable())

	t.Run("estimate uses the current price point", func(t *testing.T) {
		cost, err := estimator.Estimate("openai", "gpt-4o-mini", 1000, 2000)
		require.NoError(t, err)
		// 1000 in at 0.00015/1k + 2000 out at 0.0006/1k
		assert.InDelta(t, 0.00015+0.0012, cost, 1e-9)
	})

	t.Run("actual prices reported usage", func(t *testing.T) {
		cost, err := estimator.Actual("openai", "gpt-4o-mini", TokenUsage{
			InputTokens:  500,
			OutputTokens: 100,
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.000075+0.00006, cost, 1e-9)
	})

	t.Run("unknown model is an error", func(t *testing.T) {
		_, err := estimator.Estimate("openai", "gpt-99", 10, 10)
		assert.Error(t, err)
	})
}

func TestModelPricingAt(t *testing.T) {
	table := testPricingTable()
	pricing, err := table.Get("openai", "gpt-4o-mini")
	require.NoError(t, err)

	t.Run("old date resolves the old point", func(t *testing.T) {
		point, err := pricing.At(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.InDelta(t, 0.0002, point.InputPer1K, 1e-9)
	})

	t.Run("date before all points is an error", func(t *testing.T) {
		_, err := pricing.At(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.Error(t, err)
	})
}
