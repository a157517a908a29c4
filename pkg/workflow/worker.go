package workflow

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/services"
)

// Worker is a single platform-bound worker that polls for and dispatches
// due posts.
type Worker struct {
	id         string
	podID      string
	platform   string
	posts      *services.PostService
	cfg        *config.SchedulerConfig
	features   *config.Features
	dispatcher Dispatcher
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentPostID  string
	postsProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new platform worker.
func NewWorker(id, podID, platform string, posts *services.PostService, cfg *config.SchedulerConfig, features *config.Features, dispatcher Dispatcher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		platform:     platform,
		posts:        posts,
		cfg:          cfg,
		features:     features,
		dispatcher:   dispatcher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// dispatch. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Platform:       w.platform,
		Status:         string(w.status),
		CurrentPostID:  w.currentPostID,
		PostsProcessed: w.postsProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "platform", w.platform, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			// Kill switch: a disabled platform pauses its pool while
			// in-flight dispatches finish elsewhere.
			if !w.features.PlatformEnabled(w.platform) {
				w.sleep(w.pollInterval())
				continue
			}

			p, err := w.posts.ClaimNextDuePost(ctx, w.platform, w.podID)
			if err != nil {
				log.Error("Error claiming post", "error", err)
				w.sleep(time.Second)
				continue
			}
			if p == nil {
				w.sleep(w.pollInterval())
				continue
			}
			w.process(ctx, p)
		}
	}
}

// process dispatches one claimed post with a heartbeat running alongside.
func (w *Worker) process(ctx context.Context, p *ent.Post) {
	log := slog.With("post_id", p.ID, "worker_id", w.id)
	log.Info("Post claimed", "attempt", p.AttemptCount+1)

	w.setStatus(WorkerStatusWorking, p.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	dispatchCtx, cancelDispatch := context.WithTimeout(ctx, w.cfg.ActivityTimeout)
	defer cancelDispatch()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(dispatchCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, p.ID, cancelDispatch)

	w.dispatcher.Dispatch(dispatchCtx, p)

	cancelHeartbeat()

	w.mu.Lock()
	w.postsProcessed++
	w.mu.Unlock()
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
// If the claim is lost (orphan recovery requeued the post under another pod),
// the dispatch context is cancelled to abandon the attempt.
func (w *Worker) runHeartbeat(ctx context.Context, postID string, abandon context.CancelFunc) {
	ticker := time.NewTicker(w.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			held, err := w.posts.Heartbeat(ctx, postID, w.podID)
			if err != nil {
				slog.Warn("Heartbeat update failed", "post_id", postID, "error", err)
				continue
			}
			if !held {
				slog.Warn("Claim lost, abandoning dispatch", "post_id", postID, "pod_id", w.podID)
				abandon()
				return
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, postID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentPostID = postID
	w.lastActivity = time.Now()
}
