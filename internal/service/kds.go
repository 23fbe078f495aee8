package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/zxjshishen/CJ-DC/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KDSConsumer feeds the kitchen display board from the order event stream.
type KDSConsumer struct {
	Reader *kafka.Reader
	Board  BoardStore
}

func NewKDSConsumer(reader *kafka.Reader, board BoardStore) *KDSConsumer {
	return &KDSConsumer{Reader: reader, Board: board}
}

func (c *KDSConsumer) Start(ctx context.Context) {
	log.Println("Starting kitchen display consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(event)
	}
}

func (c *KDSConsumer) ProcessEvent(event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderPlaced:
		if err := c.Board.RecordPlaced(event); err != nil {
			log.Printf("Error recording placed order %s: %v", event.OrderID, err)
		}
	case domain.EventOrderCompleted:
		if err := c.Board.RecordCompleted(event); err != nil {
			log.Printf("Error recording completed order %s: %v", event.OrderID, err)
		}
	}
}
