package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/phishguard/phishguard/internal/domain/event"
)

// KafkaPublisher implements port.EventPublisher using a kafka-go writer.
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
	topic  string
}

// NewKafkaPublisher creates a Kafka event publisher for the given brokers
// and topic. The underlying writer connects lazily on first publish.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireAll,
	}
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

// Publish sends domain events to Kafka as JSON messages with an event_type
// header, keyed by the aggregate id.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...interface{}) error {
	messages := make([]kafkago.Message, 0, len(events))
	for _, evt := range events {
		eventType, key := describe(evt)

		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
		}

		p.logger.DebugContext(ctx, "publishing event",
			slog.String("event_type", eventType),
			slog.String("topic", p.topic),
			slog.Int("payload_size", len(payload)),
		)

		messages = append(messages, kafkago.Message{
			Key:   []byte(key),
			Value: payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(eventType)},
			},
		})
	}

	if len(messages) == 0 {
		return nil
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed to publish events to topic %s: %w", p.topic, err)
	}
	return nil
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher implements port.EventPublisher by logging events. It is used
// when no broker is configured, keeping event flow visible in development.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a log-only event publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs each event instead of sending it anywhere.
func (p *LogPublisher) Publish(ctx context.Context, events ...interface{}) error {
	for _, evt := range events {
		eventType, key := describe(evt)

		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
		}

		p.logger.InfoContext(ctx, "event",
			slog.String("event_type", eventType),
			slog.String("aggregate_id", key),
			slog.String("payload", string(payload)),
		)
	}
	return nil
}

// describe extracts the type identifier and aggregate id of a domain event.
func describe(evt interface{}) (eventType, aggregateID string) {
	switch e := evt.(type) {
	case event.ReportCreated:
		return e.EventType(), e.AggregateID().String()
	case event.HighRiskDetected:
		return e.EventType(), e.AggregateID().String()
	default:
		return "unknown", ""
	}
}
