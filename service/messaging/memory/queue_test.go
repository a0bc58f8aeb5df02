package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pixelterm/service/messaging"
)

type testPayload struct {
	Line string
}

func TestQueue_PublishConsume(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())
	ctx := context.Background()

	require.NoError(t, queue.Publish(ctx, &testPayload{Line: "pwd"}))
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pwd", message.T().Line)
	assert.Equal(t, 0, queue.Size())

	assert.NoError(t, message.Ack())
	assert.Error(t, message.Ack())
	assert.Error(t, message.Nack(nil))
}

func TestQueue_Full(t *testing.T) {
	testCases := []struct {
		description string
		block       bool
		expectErr   error
	}{
		{description: "non blocking", expectErr: messaging.ErrQueueFull},
		{description: "blocking", block: true, expectErr: context.DeadlineExceeded},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			queue := NewQueue[testPayload](Config{Buffer: 1, Block: testCase.block})
			require.NoError(t, queue.Publish(context.Background(), &testPayload{Line: "a"}))
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			err := queue.Publish(ctx, &testPayload{Line: "b"})
			assert.True(t, errors.Is(err, testCase.expectErr), err)
		})
	}
}

func TestQueue_Retries(t *testing.T) {
	queue := NewQueue[testPayload](Config{MaxRetries: 2, RetryDelay: 5 * time.Millisecond, Buffer: 4})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, queue.Publish(ctx, &testPayload{Line: "retry"}))

	for i := 0; i < 3; i++ {
		message, err := queue.Consume(ctx)
		require.NoError(t, err, "attempt %d", i)
		assert.Equal(t, "retry", message.T().Line)
		require.NoError(t, message.Nack(errors.New("failed")))
	}
	assert.Eventually(t, func() bool { return len(queue.DeadLetters()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, queue.Size())
}

func TestQueue_Concurrency(t *testing.T) {
	queue := NewQueue[testPayload](Config{Buffer: 1000})
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.NoError(t, queue.Publish(ctx, &testPayload{Line: "x"}))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 500, queue.Size())

	consumed := 0
	for queue.Size() > 0 {
		message, err := queue.Consume(ctx)
		require.NoError(t, err)
		require.NoError(t, message.Ack())
		consumed++
	}
	assert.Equal(t, 500, consumed)
}

func TestQueue_ConsumeCanceled(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := queue.Consume(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
