package api

import "time"

// UpdateTokensRequest is the HTTP request body for PUT /api/v1/accounts/:id/tokens.
type UpdateTokensRequest struct {
	AccessToken    string     `json:"access_token"`
	RefreshToken   string     `json:"refresh_token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
}

// SetBudgetLimitRequest is the HTTP request body for PUT /api/v1/budget/limit.
type SetBudgetLimitRequest struct {
	Month    string  `json:"month,omitempty"` // YYYY-MM, defaults to current
	LimitUSD float64 `json:"limit_usd"`
	HardStop bool    `json:"hard_stop"`
}

// SetPlatformRequest is the HTTP request body for PUT /api/v1/admin/platforms/:platform.
type SetPlatformRequest struct {
	Enabled bool `json:"enabled"`
}
