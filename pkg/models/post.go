package models

import "time"

// PublishRequest is the normalized publish intent accepted at ingress.
type PublishRequest struct {
	AccountID   string     `json:"account_id"`
	MediaRef    string     `json:"media_ref"`
	Caption     string     `json:"caption"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// PublishResult is returned from Publish. Deduplicated reports whether the
// request collapsed onto a previously accepted post.
type PublishResult struct {
	PostID       string `json:"post_id"`
	State        string `json:"state"`
	Deduplicated bool   `json:"deduplicated"`
}

// PostSnapshot is the caller-visible view of a post.
type PostSnapshot struct {
	PostID       string     `json:"post_id"`
	AccountID    string     `json:"account_id"`
	Platform     string     `json:"platform"`
	State        string     `json:"state"`
	MediaRef     string     `json:"media_ref"`
	Caption      string     `json:"caption"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	AttemptCount int        `json:"attempt_count"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`
	RemoteID     string     `json:"remote_id,omitempty"`
	ErrorKind    string     `json:"error_kind,omitempty"`
	LastError    string     `json:"last_error,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// PostListParams filters and paginates post listings.
type PostListParams struct {
	Page     int
	PageSize int
	State    string
	Platform string
}

// PostList is one page of posts.
type PostList struct {
	Posts      []PostSnapshot `json:"posts"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int            `json:"total_count"`
}
