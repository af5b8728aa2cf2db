package service

import (
	"context"
	"khe/client"
	"khe/metrics"
	"log"
	"time"
)

// ScoreListener is told whenever recorded scores change.
type ScoreListener interface {
	ScoresChanged()
}

type listeners []ScoreListener

func (l listeners) notify() {
	for _, listener := range l {
		listener.ScoresChanged()
	}
}

// publish hands an event to the stream. Failures are logged, never returned.
func publish(ctx context.Context, publisher client.EventPublisher, event client.JudgingEvent) {
	if publisher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := publisher.Publish(ctx, event); err != nil {
		metrics.EventsPublishedCounter.WithLabelValues("failed").Inc()
		log.Printf("failed to publish %s event: %v", event.Type, err)
		return
	}
	metrics.EventsPublishedCounter.WithLabelValues("published").Inc()
}
