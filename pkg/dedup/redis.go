package dedup

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "swarmsre:dedup:"
const lockPrefix = "swarmsre:lock:"

// releaseScript deletes the lock only when this instance's token still
// owns it, so an expired lease taken over by another holder is never
// released by the old owner.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisDeduplicator is the distributed Deduplicator used when multiple
// receiver replicas share a Redis.
type RedisDeduplicator struct {
	client    *redis.Client
	ttl       time.Duration
	lockLease time.Duration

	mu     sync.Mutex
	tokens map[string]string // lock name -> token held by this instance
}

// NewRedisDeduplicator creates a deduplicator; non-positive durations use
// the defaults.
func NewRedisDeduplicator(client *redis.Client, ttl, lockLease time.Duration) *RedisDeduplicator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if lockLease <= 0 {
		lockLease = DefaultLockLease
	}
	return &RedisDeduplicator{
		client:    client,
		ttl:       ttl,
		lockLease: lockLease,
		tokens:    make(map[string]string),
	}
}

// CheckDuplicate looks up the dedup key. A hit returns UPDATE_EXISTING
// with the owning run id.
func (d *RedisDeduplicator) CheckDuplicate(ctx context.Context, sourceID string,
	eventData map[string]any, severity, source string) (Action, string, error) {

	key := keyPrefix + Signature(sourceID, eventData, severity, source)
	runID, err := d.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return ActionNew, "", nil
	case err != nil:
		return ActionNew, "", fmt.Errorf("dedup: check key: %w", err)
	default:
		return ActionUpdateExisting, runID, nil
	}
}

// AcquireLock takes the lock with SET NX and a lease.
func (d *RedisDeduplicator) AcquireLock(ctx context.Context, name string) (bool, error) {
	token := uuid.New().String()
	ok, err := d.client.SetNX(ctx, lockPrefix+name, token, d.lockLease).Result()
	if err != nil {
		return false, fmt.Errorf("dedup: acquire lock: %w", err)
	}
	if ok {
		d.mu.Lock()
		d.tokens[name] = token
		d.mu.Unlock()
	}
	return ok, nil
}

// ReleaseLock releases only a lock this instance still owns.
func (d *RedisDeduplicator) ReleaseLock(ctx context.Context, name string) error {
	d.mu.Lock()
	token, ok := d.tokens[name]
	delete(d.tokens, name)
	d.mu.Unlock()
	if !ok {
		return nil
	}
	if err := releaseScript.Run(ctx, d.client, []string{lockPrefix + name}, token).Err(); err != nil &&
		!errors.Is(err, redis.Nil) {
		return fmt.Errorf("dedup: release lock: %w", err)
	}
	return nil
}

// RegisterExecution records the winning run id for the TTL window.
func (d *RedisDeduplicator) RegisterExecution(ctx context.Context, sourceID, executionID string,
	eventData map[string]any, severity, source string) error {

	key := keyPrefix + Signature(sourceID, eventData, severity, source)
	if err := d.client.Set(ctx, key, executionID, d.ttl).Err(); err != nil {
		return fmt.Errorf("dedup: register execution: %w", err)
	}
	return nil
}
