// Package policy holds the retry and confidence policies applied during
// swarm runs. Policies are identified by name/version/logicHash in the
// audit ledger; replay reconstructs them from the registry rather than
// deserializing code.
package policy

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/swarmops/swarmsre/pkg/models"
)

// Defaults for the canonical backoff policy.
const (
	DefaultBaseDelay   = 1 * time.Second
	DefaultMaxDelay    = 60 * time.Second
	DefaultMaxAttempts = 3

	backoffJitter = 0.2
)

// ExponentialBackoff retries until MaxAttempts with
// delay = min(base * 2^(attempt-1), max) and ±20% jitter drawn from the
// context seed, so delays replay deterministically.
type ExponentialBackoff struct {
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	MaxAttempts int
}

// NewExponentialBackoff returns the canonical retry policy with defaults
// applied to zero fields.
func NewExponentialBackoff(base, max time.Duration, maxAttempts int) *ExponentialBackoff {
	if base <= 0 {
		base = DefaultBaseDelay
	}
	if max <= 0 {
		max = DefaultMaxDelay
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &ExponentialBackoff{BaseDelay: base, MaxDelay: max, MaxAttempts: maxAttempts}
}

// ShouldRetry allows retries until the attempt count reaches MaxAttempts.
func (p *ExponentialBackoff) ShouldRetry(ctx models.RetryContext) bool {
	return ctx.Attempt < p.MaxAttempts
}

// NextDelay computes the capped exponential delay with seeded jitter.
func (p *ExponentialBackoff) NextDelay(ctx models.RetryContext) time.Duration {
	attempt := ctx.Attempt
	if attempt < 1 {
		attempt = 1
	}
	delay := float64(p.BaseDelay) * math.Pow(2, float64(attempt-1))
	if delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}

	rng := rand.New(rand.NewPCG(uint64(ctx.Seed), 0))
	jitter := 1 + backoffJitter*(2*rng.Float64()-1)
	return time.Duration(delay * jitter)
}

// Name identifies the policy in audit records.
func (p *ExponentialBackoff) Name() string { return "exponential_backoff" }

// Version identifies the policy revision.
func (p *ExponentialBackoff) Version() string { return "1.0" }

// LogicHash is a stable digest of the policy's behavior and parameters,
// used to detect drift across replays.
func (p *ExponentialBackoff) LogicHash() string {
	return HashLogic(fmt.Sprintf("exponential_backoff|base=%s|max=%s|attempts=%d",
		p.BaseDelay, p.MaxDelay, p.MaxAttempts))
}

// HashLogic digests a logic description for drift detection.
func HashLogic(description string) string {
	sum := sha256.Sum256([]byte(description))
	return hex.EncodeToString(sum[:])
}
