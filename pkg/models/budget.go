package models

// BudgetStatus reports a creator's budget period standing.
type BudgetStatus struct {
	Month        string  `json:"month"`
	LimitUSD     float64 `json:"limit_usd"`
	SpentUSD     float64 `json:"spent_usd"`
	ReservedUSD  float64 `json:"reserved_usd"`
	SoftBreached bool    `json:"soft_breached"`
	HardBreached bool    `json:"hard_breached"`
}
