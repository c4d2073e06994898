package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("llm: circuit open")

// BreakerClient wraps a Client with a circuit breaker so a failing
// provider cannot stall every low-confidence decision for its full
// timeout.
type BreakerClient struct {
	inner   Client
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerClient wraps inner with a breaker that opens after 3
// consecutive failures and probes again after 30 seconds.
func NewBreakerClient(inner Client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:    "llm",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &BreakerClient{inner: inner, breaker: gobreaker.NewCircuitBreaker(settings)}
}

// Complete executes the call through the breaker.
func (c *BreakerClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		return c.inner.Complete(ctx, prompt, opts)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return "", err
	}
	text, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("%w: unexpected result type", ErrParse)
	}
	return text, nil
}
