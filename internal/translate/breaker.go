package translate

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker wraps a Provider with a circuit breaker so a dead endpoint fails
// fast instead of burning through its retry budget for every row.
type Breaker struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

// NewBreaker creates a circuit-breaking decorator around the given provider.
func NewBreaker(provider Provider) *Breaker {
	settings := gobreaker.Settings{
		Name:    provider.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &Breaker{
		provider: provider,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate passes one translation call through the circuit breaker.
func (b *Breaker) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.provider.Translate(ctx, text, sourceLang, targetLang)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the name of the underlying translation provider
func (b *Breaker) Name() string {
	return b.provider.Name()
}
