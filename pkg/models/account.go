package models

import "time"

// CreateAccountRequest registers a creator's platform identity. Tokens arrive
// in plaintext over the authenticated channel and are encrypted before the
// ledger sees them.
type CreateAccountRequest struct {
	Platform          string     `json:"platform"`
	PlatformAccountID string     `json:"platform_account_id"`
	DisplayName       string     `json:"display_name,omitempty"`
	AccessToken       string     `json:"access_token"`
	RefreshToken      string     `json:"refresh_token,omitempty"`
	TokenExpiresAt    *time.Time `json:"token_expires_at,omitempty"`
	Priority          int        `json:"priority,omitempty"`
}

// AccountSnapshot is the caller-visible view of an account. Tokens never
// appear here.
type AccountSnapshot struct {
	AccountID         string     `json:"account_id"`
	Platform          string     `json:"platform"`
	PlatformAccountID string     `json:"platform_account_id"`
	DisplayName       string     `json:"display_name,omitempty"`
	Status            string     `json:"status"`
	Priority          int        `json:"priority"`
	TokenExpiresAt    *time.Time `json:"token_expires_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
