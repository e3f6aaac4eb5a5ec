package queue

import (
	"context"
	"errors"
	"sync"
)

const defaultQueueDepth = 256

var (
	ErrClosed    = errors.New("broker is closed")
	ErrQueueFull = errors.New("queue is full")
)

// MemoryBroker is an in-process, channel-backed Broker. Messages live only
// as long as the process; losing them on shutdown is acceptable because
// everything published here is best-effort by contract.
type MemoryBroker struct {
	mu     sync.Mutex
	queues map[string]chan []byte
	closed bool
	wg     sync.WaitGroup
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		queues: make(map[string]chan []byte),
	}
}

func (b *MemoryBroker) queue(name string) (chan []byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	ch, ok := b.queues[name]
	if !ok {
		ch = make(chan []byte, defaultQueueDepth)
		b.queues[name] = ch
	}

	return ch, nil
}

// Publish enqueues without blocking. A full queue is an error rather than
// a stall: the producer is a request handler that must not wait.
func (b *MemoryBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	ch, err := b.queue(queueName)
	if err != nil {
		return err
	}

	select {
	case ch <- message:
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe consumes the queue on a new goroutine until the context is
// canceled or the broker closes. Handler errors are the handler's problem;
// there is no redelivery.
func (b *MemoryBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	ch, err := b.queue(queueName)
	if err != nil {
		return err
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-ch:
				if !ok {
					return
				}
				_ = handler(ctx, message)
			}
		}
	}()

	return nil
}

// Close shuts every queue and waits for consumers to drain out.
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for _, ch := range b.queues {
		close(ch)
	}
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
