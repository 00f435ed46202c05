package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	GenerateQueue   = "generate_queue"
	RunEventsQueue  = "run_events_queue"
	RetryDelay      = 5 * time.Second
	MaxConnectRetry = 5
)

type Task interface {
	Type() string

	Payload() []byte

	Ack() error

	Nack() error

	Reject() error
}

// GenerateTaskPayload asks a worker to execute a queued run.
type GenerateTaskPayload struct {
	RunId uuid.UUID
}

// RunCompletedPayload is published once a run has finished, successfully or not.
type RunCompletedPayload struct {
	RunId          uuid.UUID
	Status         string
	WrittenRecords int64
	FailedFiles    int
	OutputDir      string
}

type Publisher interface {
	PublishGenerateTask(ctx context.Context, payload GenerateTaskPayload) error

	PublishRunCompleted(ctx context.Context, payload RunCompletedPayload) error

	Close()
}

type Reciever interface {
	Tasks() <-chan Task

	Close()
}

var errQueueClosed = errors.New("queue is closed")
