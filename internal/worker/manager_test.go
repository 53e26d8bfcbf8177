package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/worker"
)

// blockingWorker runs until stopped
type blockingWorker struct {
	*worker.BaseWorker
	started chan struct{}
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{
		BaseWorker: worker.NewBaseWorker(name, "stream:test", "group", zap.NewNop()),
		started:    make(chan struct{}),
	}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	close(w.started)
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stuckWorker ignores Stop
type stuckWorker struct {
	*worker.BaseWorker
}

func (w *stuckWorker) Start(ctx context.Context) error {
	time.Sleep(time.Second)
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), time.Second)
	a, b := newBlockingWorker("a"), newBlockingWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))

	for _, w := range []*blockingWorker{a, b} {
		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatalf("worker %s did not start", w.Name())
		}
	}

	assert.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())

	// second Stop is a no-op
	assert.NoError(t, a.Stop())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), 0)
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_ShutdownTimeout(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), 50*time.Millisecond)
	m.Register(&stuckWorker{BaseWorker: worker.NewBaseWorker("stuck", "stream:test", "group", zap.NewNop())})

	require.NoError(t, m.Start(context.Background()))
	err := m.Stop()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestBaseWorker_ConsumerName(t *testing.T) {
	a := worker.NewBaseWorker("audit", "stream:test", "group", zap.NewNop())
	b := worker.NewBaseWorker("audit", "stream:test", "group", zap.NewNop())

	assert.NotEqual(t, a.ConsumerName(), b.ConsumerName())
	assert.Equal(t, "stream:test", a.Stream())
	assert.Equal(t, "group", a.ConsumerGroup())
	assert.False(t, a.IsStopped())
}
