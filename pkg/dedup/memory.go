package dedup

import (
	"context"
	"sync"
	"time"
)

// MemoryDeduplicator is a single-process Deduplicator for tests and
// single-replica deployments without Redis.
type MemoryDeduplicator struct {
	ttl       time.Duration
	lockLease time.Duration
	now       func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
	locks   map[string]time.Time // lock name -> lease expiry
}

type memoryEntry struct {
	runID     string
	expiresAt time.Time
}

// NewMemoryDeduplicator creates a deduplicator; non-positive durations
// use the defaults.
func NewMemoryDeduplicator(ttl, lockLease time.Duration) *MemoryDeduplicator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if lockLease <= 0 {
		lockLease = DefaultLockLease
	}
	return &MemoryDeduplicator{
		ttl:       ttl,
		lockLease: lockLease,
		now:       time.Now,
		entries:   make(map[string]memoryEntry),
		locks:     make(map[string]time.Time),
	}
}

// CheckDuplicate looks up the dedup key, expiring stale entries lazily.
func (d *MemoryDeduplicator) CheckDuplicate(_ context.Context, sourceID string,
	eventData map[string]any, severity, source string) (Action, string, error) {

	key := Signature(sourceID, eventData, severity, source)
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.entries[key]
	if !ok || d.now().After(entry.expiresAt) {
		delete(d.entries, key)
		return ActionNew, "", nil
	}
	return ActionUpdateExisting, entry.runID, nil
}

// AcquireLock takes the named lock unless a live lease holds it.
func (d *MemoryDeduplicator) AcquireLock(_ context.Context, name string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if expiry, held := d.locks[name]; held && d.now().Before(expiry) {
		return false, nil
	}
	d.locks[name] = d.now().Add(d.lockLease)
	return true, nil
}

// ReleaseLock drops the lock.
func (d *MemoryDeduplicator) ReleaseLock(_ context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.locks, name)
	return nil
}

// RegisterExecution records the winning run id for the TTL window.
func (d *MemoryDeduplicator) RegisterExecution(_ context.Context, sourceID, executionID string,
	eventData map[string]any, severity, source string) error {

	key := Signature(sourceID, eventData, severity, source)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[key] = memoryEntry{runID: executionID, expiresAt: d.now().Add(d.ttl)}
	return nil
}
