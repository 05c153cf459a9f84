package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeminiCircuitBreakerOpen(t *testing.T) {
	s := &GeminiService{
		MaxRetries:        1,
		BaseDelay:         time.Millisecond,
		MaxDelay:          time.Millisecond,
		RequestTimeout:    time.Second,
		circuitBreakerMax: 3,
	}
	s.consecutiveErrors.Store(3)

	_, err := s.generateContent(context.Background(), "prompt")
	assert.ErrorContains(t, err, "circuit breaker open")

	_, err = s.GenerateEmbedding(context.Background(), "text")
	assert.ErrorContains(t, err, "circuit breaker open")
}

func TestGeminiCircuitBreakerConcurrentReads(t *testing.T) {
	s := &GeminiService{
		MaxRetries:        1,
		BaseDelay:         time.Millisecond,
		MaxDelay:          time.Millisecond,
		RequestTimeout:    time.Second,
		circuitBreakerMax: 3,
	}
	s.consecutiveErrors.Store(3)

	// The counter is shared across requests; racing calls must all see the
	// open breaker without tripping the race detector.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.generateContent(context.Background(), "prompt")
			assert.ErrorContains(t, err, "circuit breaker open")
		}()
	}
	wg.Wait()
}
