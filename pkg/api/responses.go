package api

import (
	"time"

	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/database"
	"github.com/postflow-io/postflow/pkg/workflow"
)

// CancelResponse is returned by POST /api/v1/posts/:id/cancel.
type CancelResponse struct {
	PostID  string `json:"post_id"`
	Message string `json:"message"`
}

// PlatformResponse is returned by PUT /api/v1/admin/platforms/:platform.
type PlatformResponse struct {
	Platform string `json:"platform"`
	Enabled  bool   `json:"enabled"`
}

// BreakerResponse is one entry of GET /api/v1/admin/breakers.
type BreakerResponse struct {
	AccountID           string     `json:"account_id"`
	Endpoint            string     `json:"endpoint"`
	BreakerState        string     `json:"breaker_state"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	CooldownUntil       *time.Time `json:"cooldown_until,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status        string                  `json:"status"`
	Version       string                  `json:"version"`
	Database      *database.HealthStatus  `json:"database"`
	Configuration config.Stats            `json:"configuration"`
	WorkerPool    *workflow.PoolHealth    `json:"worker_pool,omitempty"`

	// WebhookSignatureFailures is a process-local counter of rejected webhook
	// signatures, present when the ingress is enabled.
	WebhookSignatureFailures *uint64 `json:"webhook_signature_failures,omitempty"`
}
