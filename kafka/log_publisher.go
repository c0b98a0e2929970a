package kafka

import (
	"context"
	"sync"

	"github.com/tair/backoffice/pkg/logger"
)

// LogPublisher stands in for Publisher when no brokers are configured
type LogPublisher struct{}

func (LogPublisher) PublishMutation(ctx context.Context, event MutationEvent) error {
	logger.Debug(ctx).
		Str("operation", event.Operation).
		Str("resource", event.Resource).
		Uint("entity_id", event.EntityID).
		Msg("Mutation event (kafka disabled)")
	return nil
}

func (LogPublisher) PublishReminder(ctx context.Context, msg ReminderMessage) error {
	logger.Info(ctx).
		Uint("invoice_id", msg.InvoiceID).
		Str("email", msg.Email).
		Msg("Payment reminder (kafka disabled)")
	return nil
}

// LocalBus logs like LogPublisher and hands mutation events straight to in-process handlers.
// It replaces the consumer when no brokers are configured.
type LocalBus struct {
	LogPublisher
	mu       sync.RWMutex
	handlers map[string][]MutationHandler
}

func NewLocalBus() *LocalBus {
	return &LocalBus{handlers: make(map[string][]MutationHandler)}
}

// RegisterHandler subscribes handler to mutations of resource
func (b *LocalBus) RegisterHandler(resource string, handler MutationHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[resource] = append(b.handlers[resource], handler)
}

// PublishMutation runs the handlers synchronously. Handler errors are logged, never returned.
func (b *LocalBus) PublishMutation(ctx context.Context, event MutationEvent) error {
	_ = b.LogPublisher.PublishMutation(ctx, event)

	b.mu.RLock()
	handlers := b.handlers[event.Resource]
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			logger.Error(ctx).
				Err(err).
				Str("resource", event.Resource).
				Str("operation", event.Operation).
				Msg("Failed to handle event")
		}
	}
	return nil
}
