package genai

import (
	"context"
	"sync"
	"time"
)

// BreakerState describes the circuit breaker position.
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// StateCallback is invoked on every breaker state change, with the numeric
// state (0=closed, 1=open, 2=half-open). Used to feed the metrics gauge.
type StateCallback func(state float64)

// BreakerGenerator wraps a Generator behind a circuit breaker: once the
// backend has failed MaxFailures times in a row, calls short-circuit to a
// GenerationError without touching the network until ResetTimeout elapses.
type BreakerGenerator struct {
	mu                sync.Mutex
	gen               Generator
	config            BreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	onStateChange     StateCallback
}

func NewBreakerGenerator(gen Generator, config BreakerConfig, onStateChange StateCallback) *BreakerGenerator {
	return &BreakerGenerator{
		gen:           gen,
		config:        config,
		state:         StateClosed,
		onStateChange: onStateChange,
	}
}

// Generate implements Generator.
func (b *BreakerGenerator) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if b.isOpen() {
		return "", &GenerationError{Reason: "circuit breaker is open"}
	}

	out, err := b.gen.Generate(ctx, prompt, opts)
	if err != nil {
		b.recordFailure()
		return "", err
	}

	b.recordSuccess()
	return out, nil
}

// State returns the current breaker position.
func (b *BreakerGenerator) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *BreakerGenerator) isOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && time.Since(b.lastFailureTime) > b.config.ResetTimeout {
		b.setState(StateHalfOpen)
		b.halfOpenSuccesses = 0
		return false
	}

	return b.state == StateOpen
}

func (b *BreakerGenerator) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
			b.setState(StateClosed)
			b.failures = 0
			b.halfOpenSuccesses = 0
		}
	case StateClosed:
		b.failures = 0
	}
}

func (b *BreakerGenerator) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailureTime = time.Now()

	switch b.state {
	case StateHalfOpen:
		b.setState(StateOpen)
		b.halfOpenSuccesses = 0
	case StateClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.setState(StateOpen)
		}
	}
}

// setState must be called with the mutex held.
func (b *BreakerGenerator) setState(state BreakerState) {
	b.state = state
	if b.onStateChange != nil {
		b.onStateChange(float64(state))
	}
}
