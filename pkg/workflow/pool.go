package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/services"
)

// WorkerPool manages per-platform worker groups on one pod. Pools are
// isolated: one platform's backlog or breaker never stalls another's workers.
type WorkerPool struct {
	podID      string
	platforms  []string
	posts      *services.PostService
	cfg        *config.SchedulerConfig
	features   *config.Features
	dispatcher Dispatcher
	workers    []*Worker
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	started    bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool covering the given platforms.
func NewWorkerPool(podID string, platforms []string, posts *services.PostService, cfg *config.SchedulerConfig, features *config.Features, dispatcher Dispatcher) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		platforms:  platforms,
		posts:      posts,
		cfg:        cfg,
		features:   features,
		dispatcher: dispatcher,
		workers:    make([]*Worker, 0, len(platforms)*cfg.WorkerConcurrency),
		stopCh:     make(chan struct{}),
	}
}

// Start recovers this pod's stale claims, then spawns worker goroutines and
// the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	// A previous run of this pod may have crashed mid-dispatch. Requeue its
	// claims now instead of waiting for the orphan scan.
	recovered, err := p.posts.RecoverPostsForPod(ctx, p.podID)
	if err != nil {
		return fmt.Errorf("failed to recover posts from previous run: %w", err)
	}
	if recovered > 0 {
		slog.Warn("Recovered posts claimed by previous run", "pod_id", p.podID, "count", recovered)
	}

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"platforms", p.platforms,
		"workers_per_platform", p.cfg.WorkerConcurrency)

	for _, platform := range p.platforms {
		for i := 0; i < p.cfg.WorkerConcurrency; i++ {
			workerID := fmt.Sprintf("%s-%s-worker-%d", p.podID, platform, i)
			worker := NewWorker(workerID, p.podID, platform, p.posts, p.cfg, p.features, p.dispatcher)
			p.workers = append(p.workers, worker)
			worker.Start(ctx)
		}
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current dispatches before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.activePostIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active dispatches to complete",
			"count", len(active),
			"post_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	return &PoolHealth{
		PodID:            p.podID,
		Platforms:        p.platforms,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// activePostIDs returns IDs of posts currently being dispatched (for logging).
func (p *WorkerPool) activePostIDs() []string {
	ids := make([]string, 0)
	for _, worker := range p.workers {
		if h := worker.Health(); h.CurrentPostID != "" {
			ids = append(ids, h.CurrentPostID)
		}
	}
	return ids
}
