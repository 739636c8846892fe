package submissions

import (
	"context"

	"github.com/techsummit/backend/pkg/queue"
)

type confirmationEnqueuer interface {
	EnqueueConfirmation(ctx context.Context, payload queue.ConfirmationPayload) error
}

type eventPublisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

// QueueNotifier hands confirmations to the worker through the Redis job queue.
type QueueNotifier struct {
	queue confirmationEnqueuer
}

// NewQueueNotifier creates a notifier backed by q.
func NewQueueNotifier(q confirmationEnqueuer) *QueueNotifier {
	return &QueueNotifier{queue: q}
}

// Notify implements Notifier.
func (n *QueueNotifier) Notify(ctx context.Context, c Confirmation) error {
	if c.Email == "" {
		return nil
	}
	return n.queue.EnqueueConfirmation(ctx, queue.ConfirmationPayload{
		Kind:           string(c.Kind),
		Token:          c.Token,
		RecipientName:  c.Name,
		RecipientEmail: c.Email,
		Subject:        c.Subject,
		Body:           c.Body,
		SubmittedAt:    c.CreatedAt,
	})
}

// EventNotifier publishes confirmations to an event stream keyed by token.
type EventNotifier struct {
	publisher eventPublisher
}

// NewEventNotifier creates a notifier backed by p.
func NewEventNotifier(p eventPublisher) *EventNotifier {
	return &EventNotifier{publisher: p}
}

// Notify implements Notifier.
func (n *EventNotifier) Notify(ctx context.Context, c Confirmation) error {
	return n.publisher.Publish(ctx, c.Token, c)
}
