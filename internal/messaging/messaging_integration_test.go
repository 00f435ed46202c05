//go:build integration
// +build integration

package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

func startRabbitMQ(t *testing.T, ctx context.Context) string {
	container, err := rabbitmq.Run(ctx, "rabbitmq:3.12-management-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	})

	url, err := container.AmqpURL(ctx)
	require.NoError(t, err)
	return url
}

func TestRabbitMQPublishReceive(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	url := startRabbitMQ(t, ctx)

	publisher, err := NewRabbitMQPublisher(url)
	require.NoError(t, err)
	defer publisher.Close()

	receiver, err := NewRabbitMQReceiver(url, GenerateQueue, RunEventsQueue)
	require.NoError(t, err)
	defer receiver.Close()

	runId := uuid.New()
	require.NoError(t, publisher.PublishGenerateTask(ctx, GenerateTaskPayload{RunId: runId}))
	require.NoError(t, publisher.PublishRunCompleted(ctx, RunCompletedPayload{RunId: runId, Status: "COMPLETED", WrittenRecords: 42}))

	seen := map[string][]byte{}
	for len(seen) < 2 {
		select {
		case task := <-receiver.Tasks():
			seen[task.Type()] = task.Payload()
			require.NoError(t, task.Ack())
		case <-ctx.Done():
			t.Fatal("timed out waiting for tasks")
		}
	}

	var generate GenerateTaskPayload
	require.NoError(t, json.Unmarshal(seen[GenerateQueue], &generate))
	assert.Equal(t, runId, generate.RunId)

	var completed RunCompletedPayload
	require.NoError(t, json.Unmarshal(seen[RunEventsQueue], &completed))
	assert.Equal(t, int64(42), completed.WrittenRecords)
}

func TestRabbitMQRejectedTaskIsNotRedelivered(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	url := startRabbitMQ(t, ctx)

	publisher, err := NewRabbitMQPublisher(url)
	require.NoError(t, err)
	defer publisher.Close()

	receiver, err := NewRabbitMQReceiver(url)
	require.NoError(t, err)
	defer receiver.Close()

	require.NoError(t, publisher.PublishGenerateTask(ctx, GenerateTaskPayload{RunId: uuid.New()}))
	task := <-receiver.Tasks()
	require.NoError(t, task.Reject())

	select {
	case <-receiver.Tasks():
		t.Fatal("rejected task was redelivered")
	case <-time.After(3 * time.Second):
	}
}
