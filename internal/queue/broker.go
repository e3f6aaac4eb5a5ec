package queue

import (
	"context"
)

// Broker decouples producing a unit of background work from performing it.
// The reservation handler publishes webhook dispatches here and returns;
// a worker consumes them on its own goroutine.
type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueWebhookDispatch = "webhook-dispatch"
)
