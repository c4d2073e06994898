package policy

import (
	"fmt"
	"sync"

	"github.com/swarmops/swarmsre/pkg/models"
)

// Resolver maps persisted policy names back to live implementations.
// Replay depends on this: the ledger stores {name, version, logicHash},
// never serialized code.
type Resolver struct {
	mu       sync.RWMutex
	policies map[string]models.RetryPolicy
}

// NewResolver creates a resolver pre-loaded with the canonical backoff
// policy.
func NewResolver() *Resolver {
	r := &Resolver{policies: make(map[string]models.RetryPolicy)}
	r.Register(NewExponentialBackoff(0, 0, 0))
	return r
}

// Register adds or replaces a policy by its name.
func (r *Resolver) Register(p models.RetryPolicy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies[p.Name()] = p
}

// Resolve returns the policy registered under name.
func (r *Resolver) Resolve(name string) (models.RetryPolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policies[name]
	if !ok {
		return nil, fmt.Errorf("policy: %q not registered", name)
	}
	return p, nil
}
