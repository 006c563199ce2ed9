package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
)

// stubProvider is a canned in-memory Provider for tests.
type stubProvider struct {
	translation string
	err         error
	calls       int
}

func (s *stubProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.translation, nil
}

func (s *stubProvider) Name() string { return "stub" }

func TestBreaker_PassesThrough(t *testing.T) {
	stub := &stubProvider{translation: "Roter Schuh"}
	breaker := NewBreaker(stub)

	translation, err := breaker.Translate(context.Background(), "Red shoe", "EN", "DE")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if translation != "Roter Schuh" {
		t.Errorf("Expected 'Roter Schuh', got %q", translation)
	}
	if stub.calls != 1 {
		t.Errorf("Expected 1 provider call, got %d", stub.calls)
	}
	if breaker.Name() != "stub" {
		t.Errorf("Expected name 'stub', got %q", breaker.Name())
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	stub := &stubProvider{err: errors.New("endpoint down")}
	breaker := NewBreaker(stub)

	for i := 0; i < 3; i++ {
		if _, err := breaker.Translate(context.Background(), "text", "EN", "DE"); err == nil {
			t.Fatalf("Expected error on call %d", i+1)
		}
	}

	// Breaker is open now; the provider must not be reached
	_, err := breaker.Translate(context.Background(), "text", "EN", "DE")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Expected ErrOpenState, got %v", err)
	}
	if stub.calls != 3 {
		t.Errorf("Expected 3 provider calls before the breaker opened, got %d", stub.calls)
	}
}
