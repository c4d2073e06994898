package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/models"
)

func retryCtx(attempt int, seed int64) models.RetryContext {
	return models.RetryContext{
		RunID:   "run-1",
		StepID:  "step-1",
		AgentID: "loganalysis",
		Attempt: attempt,
		Err:     "connection refused",
		Seed:    seed,
	}
}

func TestExponentialBackoff_ShouldRetryUntilMaxAttempts(t *testing.T) {
	p := NewExponentialBackoff(100*time.Millisecond, time.Minute, 3)

	assert.True(t, p.ShouldRetry(retryCtx(1, 42)))
	assert.True(t, p.ShouldRetry(retryCtx(2, 42)))
	assert.False(t, p.ShouldRetry(retryCtx(3, 42)))
	assert.False(t, p.ShouldRetry(retryCtx(4, 42)))
}

func TestExponentialBackoff_DelayDoublesAndCaps(t *testing.T) {
	p := NewExponentialBackoff(1*time.Second, 4*time.Second, 10)

	for attempt, want := range map[int]time.Duration{
		1: 1 * time.Second,
		2: 2 * time.Second,
		3: 4 * time.Second,
		4: 4 * time.Second, // capped
	} {
		d := p.NextDelay(retryCtx(attempt, 42))
		// Jitter is ±20%.
		assert.GreaterOrEqual(t, d, time.Duration(float64(want)*0.8), "attempt %d", attempt)
		assert.LessOrEqual(t, d, time.Duration(float64(want)*1.2), "attempt %d", attempt)
	}
}

func TestExponentialBackoff_DelayDeterministicForSeed(t *testing.T) {
	p := NewExponentialBackoff(1*time.Second, time.Minute, 5)

	first := p.NextDelay(retryCtx(2, 1234))
	second := p.NextDelay(retryCtx(2, 1234))
	other := p.NextDelay(retryCtx(2, 99))

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestExponentialBackoff_LogicHashStable(t *testing.T) {
	a := NewExponentialBackoff(time.Second, time.Minute, 3)
	b := NewExponentialBackoff(time.Second, time.Minute, 3)
	c := NewExponentialBackoff(time.Second, time.Minute, 5)

	assert.Equal(t, a.LogicHash(), b.LogicHash())
	assert.NotEqual(t, a.LogicHash(), c.LogicHash())
}

func TestResolver_RoundTrip(t *testing.T) {
	r := NewResolver()

	p, err := r.Resolve("exponential_backoff")
	require.NoError(t, err)
	assert.Equal(t, "exponential_backoff", p.Name())

	_, err = r.Resolve("missing")
	assert.Error(t, err)
}

func TestDefaultConfidencePolicy(t *testing.T) {
	p := DefaultConfidencePolicy()
	assert.Equal(t, 0.10, p.PenaltyForOverride())
	assert.Equal(t, 0.05, p.ReinforcementForSuccess())
}
