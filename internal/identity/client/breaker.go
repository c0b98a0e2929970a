package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/pkg/logger"
)

// ErrCircuitOpen is returned without calling the provider while the breaker is open
var ErrCircuitOpen = errors.New("identity provider circuit breaker is open")

// CircuitState represents the state of a circuit breaker
type CircuitState string

const (
	StateClosed   CircuitState = "closed"
	StateOpen     CircuitState = "open"
	StateHalfOpen CircuitState = "half-open"
)

// BreakingUpdater guards a MetadataUpdater. While open, role changes fail fast with ErrCircuitOpen.
type BreakingUpdater struct {
	next            MetadataUpdater
	maxFailures     int
	openFor         time.Duration
	halfOpenSuccess int
	state           CircuitState
	failures        int
	successes       int
	lastStateChange time.Time
	now             func() time.Time
	mu              sync.Mutex
}

// NewBreakingUpdater opens after maxFailures consecutive failures and probes again after openFor
func NewBreakingUpdater(next MetadataUpdater, maxFailures int, openFor time.Duration) *BreakingUpdater {
	return &BreakingUpdater{
		next:            next,
		maxFailures:     maxFailures,
		openFor:         openFor,
		halfOpenSuccess: 1,
		state:           StateClosed,
		lastStateChange: time.Now(),
		now:             time.Now,
	}
}

// UpdateRole forwards the call unless the circuit is open
func (b *BreakingUpdater) UpdateRole(ctx context.Context, externalRef string, role domain.Role) error {
	b.mu.Lock()
	if b.state == StateOpen && b.now().Sub(b.lastStateChange) > b.openFor {
		b.transition(ctx, StateHalfOpen)
	}
	state := b.state
	b.mu.Unlock()

	if state == StateOpen {
		return ErrCircuitOpen
	}

	err := b.next.UpdateRole(ctx, externalRef, role)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.onFailure(ctx)
	} else {
		b.onSuccess(ctx)
	}
	return err
}

// State returns the current state
func (b *BreakingUpdater) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *BreakingUpdater) onFailure(ctx context.Context) {
	b.failures++
	// Any failure while probing reopens the circuit
	if b.state == StateHalfOpen || b.failures >= b.maxFailures {
		b.transition(ctx, StateOpen)
	}
}

func (b *BreakingUpdater) onSuccess(ctx context.Context) {
	switch b.state {
	case StateHalfOpen:
		b.successes++
		if b.successes >= b.halfOpenSuccess {
			b.transition(ctx, StateClosed)
		}
	case StateClosed:
		b.failures = 0
	}
}

func (b *BreakingUpdater) transition(ctx context.Context, to CircuitState) {
	event := logger.Info(ctx)
	if to == StateOpen {
		event = logger.Warn(ctx).Int("failures", b.failures)
	}
	event.Str("from", string(b.state)).Str("to", string(to)).Msg("Identity provider circuit breaker state change")

	b.state = to
	b.lastStateChange = b.now()
	b.successes = 0
	if to == StateClosed {
		b.failures = 0
	}
}
