package event

import (
	"context"
	"errors"
	"log/slog"
)

// Listener consumes events of one publisher on a background goroutine
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T]) error
	logger    *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewListener[T any](publisher *Publisher[T], handler func(*Event[T]) error, logger *slog.Logger) *Listener[T] {
	ctx, cancel := context.WithCancel(context.Background())
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener[T]{
		publisher: publisher,
		handler:   handler,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Stop detaches the listener from its publisher, then waits until the
// events already queued are handled.
func (l *Listener[T]) Stop() {
	l.publisher.listening.Store(false)
	l.cancel()
	<-l.done
}

func (l *Listener[T]) Start() {
	go func() {
		defer close(l.done)
		for {
			message, err := l.publisher.queue.Consume(l.ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					l.drain()
					return
				}
				l.logger.Warn("failed to consume event", "error", err)
				continue
			}
			if message == nil {
				continue
			}
			if err = l.handler(message.T()); err != nil {
				l.logger.Warn("failed to handle event", "error", err)
				_ = message.Nack(err)
				continue
			}
			_ = message.Ack()
		}
	}()
}

// drain handles queued events once consuming was cancelled; failures are
// logged since no retry would be consumed.
func (l *Listener[T]) drain() {
	queue := l.publisher.queue
	for queue.Size() > 0 {
		message, err := queue.Consume(context.Background())
		if err != nil || message == nil {
			return
		}
		if err = l.handler(message.T()); err != nil {
			l.logger.Warn("failed to handle event", "error", err)
		}
		_ = message.Ack()
	}
}
