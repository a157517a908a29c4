package workflow

import (
	"testing"
	"time"

	"github.com/postflow-io/postflow/pkg/config"
	"github.com/stretchr/testify/assert"
)

func testSchedulerConfig() *config.SchedulerConfig {
	cfg := config.DefaultSchedulerConfig()
	cfg.WorkerConcurrency = 2
	cfg.PollInterval = 1 * time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond
	return cfg
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testSchedulerConfig()
	w := NewWorker("test-worker", "test-pod", "instagram", nil, cfg, config.NewFeatures(nil), nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testSchedulerConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", "instagram", nil, cfg, config.NewFeatures(nil), nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testSchedulerConfig()
	w := NewWorker("worker-1", "pod-1", "tiktok", nil, cfg, config.NewFeatures(nil), nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "tiktok", h.Platform)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentPostID)
	assert.Equal(t, 0, h.PostsProcessed)

	w.setStatus(WorkerStatusWorking, "post-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "post-abc", h.CurrentPostID)

	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentPostID)
}
