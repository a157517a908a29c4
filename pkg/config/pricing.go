package config

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// PricePoint is one pricing entry for a model, effective from a given date.
// Prices are USD per 1000 tokens.
type PricePoint struct {
	EffectiveDate time.Time `yaml:"effective_date"`
	InputPer1K    float64   `yaml:"input_per_1k"`
	OutputPer1K   float64   `yaml:"output_per_1k"`
}

// ModelPricing is the price history for one (provider, model) pair.
type ModelPricing struct {
	Provider string
	Model    string
	Points   []PricePoint // sorted ascending by EffectiveDate
}

// At returns the price point in effect at the given instant.
func (m *ModelPricing) At(at time.Time) (PricePoint, error) {
	var found *PricePoint
	for i := range m.Points {
		if !m.Points[i].EffectiveDate.After(at) {
			found = &m.Points[i]
		}
	}
	if found == nil {
		return PricePoint{}, fmt.Errorf("no pricing for %s/%s effective at %s", m.Provider, m.Model, at.Format(time.RFC3339))
	}
	return *found, nil
}

// PricingTable stores LLM pricing keyed by (provider, model) with
// thread-safe access.
type PricingTable struct {
	models map[string]*ModelPricing // key: provider + "/" + model
	mu     sync.RWMutex
}

// NewPricingTable builds a pricing table, sorting each model's price history.
func NewPricingTable(models map[string]*ModelPricing) *PricingTable {
	copied := make(map[string]*ModelPricing, len(models))
	for k, v := range models {
		sort.Slice(v.Points, func(i, j int) bool {
			return v.Points[i].EffectiveDate.Before(v.Points[j].EffectiveDate)
		})
		copied[k] = v
	}
	return &PricingTable{models: copied}
}

// Get retrieves pricing for a (provider, model) pair.
func (t *PricingTable) Get(provider, model string) (*ModelPricing, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.models[provider+"/"+model]
	if !ok {
		return nil, fmt.Errorf("no pricing configured for %s/%s", provider, model)
	}
	return m, nil
}

// Len returns the number of priced models.
func (t *PricingTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.models)
}
