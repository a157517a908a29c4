package config

import "time"

// BudgetConfig contains budget guard defaults applied to creators without an
// explicit budget period row.
type BudgetConfig struct {
	// DefaultLimitUSD is the monthly spend limit for new budget periods.
	DefaultLimitUSD float64 `yaml:"default_limit_usd"`

	// SoftPct is the fraction of the limit at which the soft threshold trips.
	SoftPct float64 `yaml:"soft_pct"`

	// HardStop restricts spending to hard headroom once the soft threshold
	// is exceeded.
	HardStop bool `yaml:"hard_stop"`

	// ReservationTTL bounds how long a reservation may stay held before the
	// reaper releases it (worker crash safety net).
	ReservationTTL time.Duration `yaml:"reservation_ttl"`

	// ReaperInterval is how often expired reservations are swept.
	ReaperInterval time.Duration `yaml:"reaper_interval"`
}

// DefaultBudgetConfig returns the built-in budget defaults.
func DefaultBudgetConfig() *BudgetConfig {
	return &BudgetConfig{
		DefaultLimitUSD: 50,
		SoftPct:         0.8,
		HardStop:        false,
		ReservationTTL:  10 * time.Minute,
		ReaperInterval:  1 * time.Minute,
	}
}
