package event

import (
	"context"
	"sync/atomic"

	"github.com/viant/pixelterm/internal/clock"
	"github.com/viant/pixelterm/service/messaging"
)

type Publisher[T any] struct {
	queue     messaging.Queue[Event[T]]
	anyQueue  *Publisher[any]
	listening atomic.Bool
}

func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{
		queue: queue,
	}
}

// Publish enqueues event when a listener is attached; events nobody listens to are dropped
func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	event.CreatedAt = clock.Now()
	if p.anyQueue != nil && p.anyQueue.listening.Load() {
		if err := p.anyQueue.queue.Publish(ctx, &Event[any]{
			Context:   event.Context,
			CreatedAt: event.CreatedAt,
			Metadata:  event.Metadata,
			Data:      event.Data,
		}); err != nil {
			return err
		}
	}
	if !p.listening.Load() {
		return nil
	}
	return p.queue.Publish(ctx, event)
}

// Consume retrieves and acknowledges a single event
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}
