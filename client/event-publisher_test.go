package client

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisherPublish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer}

	err := publisher.Publish(context.Background(), JudgingEvent{Type: EventAssignmentCreated, JudgeID: 4, ProjectIDs: []int{9}})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "4", string(writer.messages[0].Key))

	var event JudgingEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, EventAssignmentCreated, event.Type)
	assert.Equal(t, []int{9}, event.ProjectIDs)
	assert.False(t, event.Timestamp.IsZero())

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}
