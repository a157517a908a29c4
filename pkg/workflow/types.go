// Package workflow runs the durable publish pipeline: per-platform worker
// pools claim due posts, dispatch them through platform adapters, and
// background loops recover orphaned claims and probe asynchronous publishes.
package workflow

import (
	"context"
	"time"

	"github.com/postflow-io/postflow/ent"
)

// endpointCreatePost is the rate-limit endpoint consumed by a dispatch.
const endpointCreatePost = "create_post"

// Dispatcher executes a single claimed post end to end. The dispatcher owns
// every state write after the claim: the worker only handles claiming, the
// heartbeat, and health tracking.
type Dispatcher interface {
	Dispatch(ctx context.Context, p *ent.Post)
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Platform       string    `json:"platform"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentPostID  string    `json:"current_post_id,omitempty"`
	PostsProcessed int       `json:"posts_processed"`
	LastActivity   time.Time `json:"last_activity"`
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	PodID            string         `json:"pod_id"`
	Platforms        []string       `json:"platforms"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
