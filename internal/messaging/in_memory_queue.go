package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

type inMemoryTask struct {
	queue   string
	payload []byte
}

func (t *inMemoryTask) Type() string {
	return t.queue
}

func (t *inMemoryTask) Payload() []byte {
	return t.payload
}

func (t *inMemoryTask) Ack() error {
	return nil
}

func (t *inMemoryTask) Nack() error {
	return nil
}

func (t *inMemoryTask) Reject() error {
	return nil
}

// InMemoryQueue is both the Publisher and the Reciever for single process
// deployments. Run completion events are kept on a separate bounded channel
// and dropped when nobody drains it.
type InMemoryQueue struct {
	mu     sync.Mutex
	tasks  chan Task
	events chan RunCompletedPayload
	closed bool
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		tasks:  make(chan Task, 100),
		events: make(chan RunCompletedPayload, 100),
	}
}

func (q *InMemoryQueue) PublishGenerateTask(ctx context.Context, payload GenerateTaskPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return errQueueClosed
	}

	select {
	case q.tasks <- &inMemoryTask{queue: GenerateQueue, payload: data}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *InMemoryQueue) PublishRunCompleted(ctx context.Context, payload RunCompletedPayload) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return errQueueClosed
	}

	select {
	case q.events <- payload:
	default:
		slog.Warn("run event buffer full, dropping event", "run_id", payload.RunId)
	}
	return nil
}

func (q *InMemoryQueue) Tasks() <-chan Task {
	return q.tasks
}

func (q *InMemoryQueue) Events() <-chan RunCompletedPayload {
	return q.events
}

func (q *InMemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
		close(q.events)
	}
}
