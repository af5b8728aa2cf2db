package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type JudgingEventType string

const (
	EventAssignmentCreated  JudgingEventType = "assignment.created"
	EventAssignmentsManual  JudgingEventType = "assignment.manual"
	EventJudgementScored    JudgingEventType = "judgement.scored"
	EventJudgementCompleted JudgingEventType = "judgement.completed"
	EventScoresCleared      JudgingEventType = "scores.cleared"
)

type JudgingEvent struct {
	Type       JudgingEventType `json:"type"`
	JudgeID    int              `json:"judge_id,omitempty"`
	ProjectIDs []int            `json:"project_ids,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event JudgingEvent) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event JudgingEvent) error {
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes judging events keyed by judge so one judge's events stay ordered.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event JudgingEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key, err := json.Marshal(event.JudgeID)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
