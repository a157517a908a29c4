package workflow

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned posts.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds dispatching posts with stale heartbeats and
// returns them to the queue. The lost attempt does not count against
// MaxAttempts; if the adapter call actually landed, the webhook or prober
// converges the post before it is redispatched.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphaned, err := p.posts.FindOrphanedPosts(ctx, p.cfg.OrphanThreshold)
	if err != nil {
		return err
	}

	if len(orphaned) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned posts", "count", len(orphaned))

	recovered := 0
	for _, orphan := range orphaned {
		podID := "unknown"
		if orphan.PodID != nil {
			podID = *orphan.PodID
		}
		if err := p.posts.ResetOrphanedPost(ctx, orphan.ID); err != nil {
			slog.Error("Failed to recover orphaned post",
				"post_id", orphan.ID,
				"old_pod_id", podID,
				"error", err)
			continue
		}
		slog.Warn("Orphaned post requeued", "post_id", orphan.ID, "old_pod_id", podID)
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}
