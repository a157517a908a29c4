package workflow

import (
	"testing"

	"github.com/postflow-io/postflow/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolHealthAggregation(t *testing.T) {
	cfg := testSchedulerConfig()
	pool := NewWorkerPool("pod-1", []string{"instagram", "x"}, nil, cfg, config.NewFeatures(nil), nil)

	// Workers are normally created by Start; build them directly here to
	// avoid touching the database.
	w1 := NewWorker("w1", "pod-1", "instagram", nil, cfg, config.NewFeatures(nil), nil)
	w2 := NewWorker("w2", "pod-1", "x", nil, cfg, config.NewFeatures(nil), nil)
	w2.setStatus(WorkerStatusWorking, "post-1")
	pool.workers = append(pool.workers, w1, w2)

	h := pool.Health()
	require.NotNil(t, h)
	assert.Equal(t, "pod-1", h.PodID)
	assert.Equal(t, []string{"instagram", "x"}, h.Platforms)
	assert.Equal(t, 2, h.TotalWorkers)
	assert.Equal(t, 1, h.ActiveWorkers)
	assert.Len(t, h.WorkerStats, 2)
	assert.Equal(t, []string{"post-1"}, pool.activePostIDs())
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	cfg := testSchedulerConfig()
	pool := NewWorkerPool("pod-1", []string{"instagram"}, nil, cfg, config.NewFeatures(nil), nil)

	pool.Stop()
	pool.Stop()
}
