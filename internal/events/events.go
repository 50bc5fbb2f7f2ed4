package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderPlacedEvent is emitted after a checkout succeeds. Consumers are
// analytics-grade; publishing is fire and forget and never blocks or
// fails a checkout.
type OrderPlacedEvent struct {
	EventID       string    `json:"event_id"`
	OrderID       int64     `json:"order_id"`
	UserID        int64     `json:"user_id"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	PlacedAt      time.Time `json:"placed_at"`
}

//go:generate mockgen -source=events.go -destination=../mock/events/publisher_mock.go -package=mock
type Publisher interface {
	OrderPlaced(ctx context.Context, evt OrderPlacedEvent) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(writer *kafka.Writer, topic string) Publisher {
	return &kafkaPublisher{writer: writer, topic: topic}
}

func (p *kafkaPublisher) OrderPlaced(ctx context.Context, evt OrderPlacedEvent) error {
	if evt.EventID == "" {
		evt.EventID = uuid.NewString()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(evt.EventID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("ORDER_PLACED")},
			{Key: "aggregate_type", Value: []byte("ORDER")},
		},
	})
}

// NopPublisher drops events; used when no broker is configured and in
// tests.
type NopPublisher struct{}

func (NopPublisher) OrderPlaced(context.Context, OrderPlacedEvent) error { return nil }
