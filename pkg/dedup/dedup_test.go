package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisDedup(t *testing.T, ttl, lease time.Duration) (*RedisDeduplicator, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDeduplicator(client, ttl, lease), mr
}

func eventData() map[string]any {
	return map[string]any{"service": "postgres-primary", "alertname": "HighCPU"}
}

func TestSignature_StableAndSensitive(t *testing.T) {
	a := Signature("alert-1", eventData(), "critical", "grafana")
	b := Signature("alert-1", eventData(), "critical", "grafana")
	c := Signature("alert-1", eventData(), "warning", "grafana")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRedis_CheckDuplicateLifecycle(t *testing.T) {
	ctx := context.Background()
	d, mr := newRedisDedup(t, time.Minute, time.Minute)

	action, _, err := d.CheckDuplicate(ctx, "alert-1", eventData(), "critical", "grafana")
	require.NoError(t, err)
	assert.Equal(t, ActionNew, action)

	require.NoError(t, d.RegisterExecution(ctx, "alert-1", "run-42", eventData(), "critical", "grafana"))

	action, runID, err := d.CheckDuplicate(ctx, "alert-1", eventData(), "critical", "grafana")
	require.NoError(t, err)
	assert.Equal(t, ActionUpdateExisting, action)
	assert.Equal(t, "run-42", runID)

	// After the TTL the key expires and the event is NEW again.
	mr.FastForward(2 * time.Minute)
	action, _, err = d.CheckDuplicate(ctx, "alert-1", eventData(), "critical", "grafana")
	require.NoError(t, err)
	assert.Equal(t, ActionNew, action)
}

func TestRedis_LockMutualExclusion(t *testing.T) {
	ctx := context.Background()
	d, _ := newRedisDedup(t, time.Minute, time.Minute)

	ok, err := d.AcquireLock(ctx, "swarm_run:alert-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.AcquireLock(ctx, "swarm_run:alert-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, d.ReleaseLock(ctx, "swarm_run:alert-1"))

	ok, err = d.AcquireLock(ctx, "swarm_run:alert-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedis_LeaseExpiresAndSafeRelease(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	first := NewRedisDeduplicator(client, time.Minute, time.Second)
	second := NewRedisDeduplicator(client, time.Minute, time.Minute)

	ok, err := first.AcquireLock(ctx, "swarm_run:alert-1")
	require.NoError(t, err)
	require.True(t, ok)

	// First holder's lease expires; a second instance takes over.
	mr.FastForward(2 * time.Second)
	ok, err = second.AcquireLock(ctx, "swarm_run:alert-1")
	require.NoError(t, err)
	require.True(t, ok)

	// The first instance's stale token must not release the new
	// holder's lock.
	require.NoError(t, first.ReleaseLock(ctx, "swarm_run:alert-1"))
	ok, err = first.AcquireLock(ctx, "swarm_run:alert-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_ReleaseUnheldLockNoop(t *testing.T) {
	d, _ := newRedisDedup(t, time.Minute, time.Minute)
	assert.NoError(t, d.ReleaseLock(context.Background(), "never-acquired"))
}

func TestMemory_DuplicateWithinTTL(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDeduplicator(time.Minute, time.Minute)

	action, _, err := d.CheckDuplicate(ctx, "alert-1", eventData(), "critical", "grafana")
	require.NoError(t, err)
	assert.Equal(t, ActionNew, action)

	require.NoError(t, d.RegisterExecution(ctx, "alert-1", "run-7", eventData(), "critical", "grafana"))

	action, runID, err := d.CheckDuplicate(ctx, "alert-1", eventData(), "critical", "grafana")
	require.NoError(t, err)
	assert.Equal(t, ActionUpdateExisting, action)
	assert.Equal(t, "run-7", runID)
}

func TestMemory_LockLifecycle(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDeduplicator(time.Minute, time.Minute)

	ok, _ := d.AcquireLock(ctx, "l")
	assert.True(t, ok)
	ok, _ = d.AcquireLock(ctx, "l")
	assert.False(t, ok)

	require.NoError(t, d.ReleaseLock(ctx, "l"))
	ok, _ = d.AcquireLock(ctx, "l")
	assert.True(t, ok)
}
