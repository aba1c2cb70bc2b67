// Package circuitbreaker guards calls to the data store so an outage degrades
// the storefront instead of stalling every request.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the breaker rejects a call without running it.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed lets calls through.
	StateClosed State = iota
	// StateOpen rejects calls until the cool-down elapses.
	StateOpen
	// StateHalfOpen lets probe calls through to test recovery.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// Name identifies the breaker in logs and metrics.
	Name string
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of half-open successes that closes it again.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
	// IsFailure decides whether an error counts against the breaker.
	// Nil counts every error except context cancellation.
	IsFailure func(error) bool
	// OnStateChange is called after every transition, outside the lock.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		Name:             "mongodb",
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
	}
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config          Config
	mu              sync.RWMutex
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	now             func() time.Time
}

// New creates a new circuit breaker with the given configuration.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = 1
	}
	if config.IsFailure == nil {
		config.IsFailure = defaultIsFailure
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

func defaultIsFailure(err error) bool {
	return !errors.Is(err, context.Canceled)
}

// Name returns the breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Execute runs fn unless the circuit is open.
// A context that is already done is returned as-is without touching the breaker.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if transition, ok := cb.allow(); !ok {
		return ErrCircuitOpen
	} else if transition != nil {
		cb.notify(*transition)
	}

	err := fn()

	var transition *stateChange
	cb.mu.Lock()
	if err != nil && cb.config.IsFailure(err) {
		transition = cb.onFailure()
	} else if err == nil {
		transition = cb.onSuccess()
	}
	cb.mu.Unlock()

	if transition != nil {
		cb.notify(*transition)
	}
	return err
}

type stateChange struct {
	from, to State
}

// allow reports whether a call may proceed, moving open to half-open once the timeout passed.
func (cb *CircuitBreaker) allow() (*stateChange, bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return nil, true
	}
	if cb.now().Sub(cb.lastFailureTime) < cb.config.Timeout {
		return nil, false
	}
	cb.successCount = 0
	return cb.setState(StateHalfOpen), true
}

func (cb *CircuitBreaker) onFailure() *stateChange {
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			return cb.setState(StateOpen)
		}
	case StateHalfOpen:
		return cb.setState(StateOpen)
	}
	return nil
}

func (cb *CircuitBreaker) onSuccess() *stateChange {
	cb.failureCount = 0
	if cb.state != StateHalfOpen {
		return nil
	}
	cb.successCount++
	if cb.successCount >= cb.config.SuccessThreshold {
		cb.successCount = 0
		return cb.setState(StateClosed)
	}
	return nil
}

// setState must be called with mu held.
func (cb *CircuitBreaker) setState(to State) *stateChange {
	from := cb.state
	if from == to {
		return nil
	}
	cb.state = to
	return &stateChange{from: from, to: to}
}

func (cb *CircuitBreaker) notify(c stateChange) {
	event := log.Info()
	if c.to == StateOpen {
		event = log.Warn()
	}
	event.
		Str("circuit_breaker", cb.config.Name).
		Str("from", c.from.String()).
		Str("to", c.to.String()).
		Msg("Circuit breaker state changed")

	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, c.from, c.to)
	}
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen returns true if the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats is a point-in-time view of the breaker for health reporting.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	Healthy      bool      `json:"healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		Healthy:      cb.state != StateOpen,
	}
}

// Check implements the HTTP readiness checker: an open circuit is not ready.
func (cb *CircuitBreaker) Check() error {
	if cb.IsOpen() {
		return ErrCircuitOpen
	}
	return nil
}
