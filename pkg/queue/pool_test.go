package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/astraforge/astraforge/pkg/config"
)

func TestWorkerPool_RunRegistry(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, config.DefaultQueueConfig(), nil, nil)

	cancelled := false
	pool.RegisterRun("r1", func() { cancelled = true })

	assert.True(t, pool.CancelRun("r1"))
	assert.True(t, cancelled)

	// Unknown runs are not found
	assert.False(t, pool.CancelRun("r2"))

	pool.UnregisterRun("r1")
	assert.False(t, pool.CancelRun("r1"))
}

func TestWorkerPool_GetActiveRunIDs(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, config.DefaultQueueConfig(), nil, nil)
	pool.RegisterRun("r1", func() {})
	pool.RegisterRun("r2", func() {})

	ids := pool.getActiveRunIDs()
	assert.ElementsMatch(t, []string{"r1", "r2"}, ids)
}

func TestWorker_PollIntervalJitter(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 1 * time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond

	w := NewWorker("w1", "pod-1", nil, cfg, nil, nil, nil)
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}

	cfg.PollIntervalJitter = 0
	assert.Equal(t, 1*time.Second, w.pollInterval())
}

func TestWorker_Health(t *testing.T) {
	w := NewWorker("w1", "pod-1", nil, config.DefaultQueueConfig(), nil, nil, nil)

	health := w.Health()
	assert.Equal(t, "w1", health.ID)
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Empty(t, health.CurrentRunID)

	w.setStatus(WorkerStatusWorking, "r1")
	health = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), health.Status)
	assert.Equal(t, "r1", health.CurrentRunID)
}

func TestWorker_StopIsIdempotent(t *testing.T) {
	w := NewWorker("w1", "pod-1", nil, config.DefaultQueueConfig(), nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Stop twice must not panic on the closed channel
	w.Stop()
	w.Stop()
	_ = ctx
}
