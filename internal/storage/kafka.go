package storage

import (
	"context"
	"encoding/json"

	"github.com/zxjshishen/CJ-DC/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits order lifecycle events for the kitchen display
// aggregator. Publishing is fire-and-forget from the caller's perspective.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}
