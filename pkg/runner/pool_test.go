package runner

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_ExecutesSubmittedJobs(t *testing.T) {
	p := NewPool(2, 8)
	p.Start(context.Background())
	defer p.Stop()

	var mu sync.Mutex
	seen := map[string]bool{}
	var wg sync.WaitGroup
	for _, id := range []string{"run-1", "run-2", "run-3"} {
		wg.Add(1)
		id := id
		require.NoError(t, p.Submit(Job{RunID: id, Execute: func(context.Context) error {
			defer wg.Done()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
			return nil
		}}))
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 3)
}

func TestPool_QueueFull(t *testing.T) {
	p := NewPool(1, 1)
	// Not started: nothing drains the queue.
	require.NoError(t, p.Submit(Job{RunID: "a", Execute: func(context.Context) error { return nil }}))
	assert.ErrorIs(t, p.Submit(Job{RunID: "b", Execute: func(context.Context) error { return nil }}),
		ErrQueueFull)
}

func TestPool_CancelInFlightRun(t *testing.T) {
	p := NewPool(1, 4)
	p.Start(context.Background())
	defer p.Stop()

	started := make(chan struct{})
	done := make(chan error, 1)
	require.NoError(t, p.Submit(Job{RunID: "run-slow", Execute: func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	}}))

	<-started
	assert.True(t, p.Cancel("run-slow"))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("run was not cancelled")
	}
}

func TestPool_SubmitAfterStop(t *testing.T) {
	p := NewPool(1, 4)
	p.Start(context.Background())
	p.Stop()

	assert.ErrorIs(t, p.Submit(Job{RunID: "late", Execute: func(context.Context) error { return nil }}),
		ErrStopped)
}

func TestPool_HealthReflectsActivity(t *testing.T) {
	p := NewPool(2, 8)
	p.Start(context.Background())
	defer p.Stop()

	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, p.Submit(Job{RunID: "run-h", Execute: func(context.Context) error {
		defer wg.Done()
		return nil
	}}))
	wg.Wait()

	// Allow the worker to finish bookkeeping.
	assert.Eventually(t, func() bool {
		return p.Health().RunsProcessed == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, p.Health().Workers)
}
