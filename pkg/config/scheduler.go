package config

import "time"

// SchedulerConfig contains worker pool and dispatch configuration.
// These values control how posts are polled, claimed, and processed.
type SchedulerConfig struct {
	// WorkerConcurrency is the number of worker goroutines per platform pool
	// per replica/pod. Pools are isolated: one platform's backlog never
	// stalls another's workers.
	WorkerConcurrency int `yaml:"worker_concurrency"`

	// MaxConcurrentDispatches is the global limit of posts being dispatched
	// concurrently per platform across ALL replicas. Enforced by database
	// COUNT(*) check.
	MaxConcurrentDispatches int `yaml:"max_concurrent_dispatches"`

	// PollInterval is the base interval for checking scheduled posts.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// PostingJitterMin/Max bound the random offset added to requested
	// scheduled times to smooth bursts and mimic human cadence.
	PostingJitterMin time.Duration `yaml:"posting_jitter_min"`
	PostingJitterMax time.Duration `yaml:"posting_jitter_max"`

	// MaxAttempts caps retryable dispatch attempts before a post fails.
	MaxAttempts int `yaml:"max_attempts"`

	// RetryBackoffBase is the base for exponential retry backoff:
	// min(MaxBackoff, RetryBackoffBase × 2^attempt) plus jitter.
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`
	MaxBackoff       time.Duration `yaml:"max_backoff"`

	// ActivityTimeout bounds a single dispatch attempt (adapter call included).
	ActivityTimeout time.Duration `yaml:"activity_timeout"`

	// WorkflowTimeout bounds a post's whole lifecycle; awaiting_remote posts
	// older than this fail with poll_timeout.
	WorkflowTimeout time.Duration `yaml:"workflow_timeout"`

	// ProbeInterval is how often awaiting_remote posts are probed.
	ProbeInterval time.Duration `yaml:"probe_interval"`

	// HeartbeatInterval updates last_interaction_at for orphan detection.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned posts.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a dispatching post can go without a
	// heartbeat before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// DedupeWindow suppresses duplicate publishes of the same
	// (account, content_hash) pair.
	DedupeWindow time.Duration `yaml:"dedupe_window"`

	// GracefulShutdownTimeout is the max time to wait for active dispatches
	// to complete during shutdown. Should cover ActivityTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		WorkerConcurrency:       10,
		MaxConcurrentDispatches: 50,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		PostingJitterMin:        30 * time.Second,
		PostingJitterMax:        90 * time.Second,
		MaxAttempts:             5,
		RetryBackoffBase:        30 * time.Second,
		MaxBackoff:              1 * time.Hour,
		ActivityTimeout:         5 * time.Minute,
		WorkflowTimeout:         24 * time.Hour,
		ProbeInterval:           1 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		DedupeWindow:            24 * time.Hour,
		GracefulShutdownTimeout: 5 * time.Minute,
	}
}
