package budget

import (
	"fmt"
	"time"

	"github.com/postflow-io/postflow/pkg/config"
)

// TokenUsage is the token accounting of one completed LLM call.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Estimator converts token counts to USD using the date-effective pricing
// table. Estimates assume worst case: the full output budget is consumed.
type Estimator struct {
	pricing *config.PricingTable
}

// NewEstimator creates a new Estimator
func NewEstimator(pricing *config.PricingTable) *Estimator {
	return &Estimator{pricing: pricing}
}

// Estimate returns the worst-case cost of a call before it is made.
func (e *Estimator) Estimate(provider, model string, inputTokens, maxOutputTokens int) (float64, error) {
	return e.cost(provider, model, inputTokens, maxOutputTokens)
}

// Actual returns the cost of a completed call from its reported usage.
func (e *Estimator) Actual(provider, model string, usage TokenUsage) (float64, error) {
	return e.cost(provider, model, usage.InputTokens, usage.OutputTokens)
}

func (e *Estimator) cost(provider, model string, inputTokens, outputTokens int) (float64, error) {
	pricing, err := e.pricing.Get(provider, model)
	if err != nil {
		return 0, err
	}
	point, err := pricing.At(time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to resolve price point: %w", err)
	}
	cost := float64(inputTokens)/1000*point.InputPer1K +
		float64(outputTokens)/1000*point.OutputPer1K
	return cost, nil
}
