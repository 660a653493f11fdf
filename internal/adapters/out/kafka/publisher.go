// Package kafka publishes order events to a Kafka topic once the unit of
// work that produced them has committed.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafkago.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// OrderEventPublisher implements ports.OrderEventPublisher on a kafka-go Writer.
// Messages are keyed by order id, so every event of one order lands on the
// same partition and keeps its order.
type OrderEventPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// batchTimeout bounds how long a synchronous write waits for more messages.
// kafka-go defaults to one second, which every publish would pay.
const batchTimeout = 10 * time.Millisecond

func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) *OrderEventPublisher {
	return newOrderEventPublisher(newWriter(brokers, topic), topic, logger)
}

func newWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: batchTimeout,
		WriteTimeout: 5 * time.Second,
	}
}

func newOrderEventPublisher(writer messageWriter, topic string, logger *slog.Logger) *OrderEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderEventPublisher{
		writer: writer,
		topic:  topic,
		logger: logger.With("component", "order_event_publisher", "topic", topic),
	}
}

// Publish writes all events in one batch.
func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(newOrderEventMessage(event))
		if err != nil {
			return fmt.Errorf("encode %s event: %w", event.Type, err)
		}
		msgs = append(msgs, kafkago.Message{
			Key:   []byte(event.OrderID.String()),
			Value: value,
			Time:  event.OccurredAt,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(event.Type)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d order events to %s: %w", len(msgs), p.topic, err)
	}

	p.logger.DebugContext(ctx, "Order events published", "count", len(msgs))
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopOrderEventPublisher drops events. It is used when no brokers are configured.
type NoopOrderEventPublisher struct{}

func (NoopOrderEventPublisher) Publish(context.Context, ...order.Event) error {
	return nil
}

func (NoopOrderEventPublisher) Close() error {
	return nil
}
