package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"qrmenu/internal/domain"

	"github.com/segmentio/kafka-go"
)

// EventConsumer aggregates the analytics stream into per-day counters.
type EventConsumer struct {
	Reader   *kafka.Reader
	Counters CounterStore
}

func NewEventConsumer(reader *kafka.Reader, counters CounterStore) *EventConsumer {
	return &EventConsumer{Reader: reader, Counters: counters}
}

func (c *EventConsumer) Start(ctx context.Context) {
	log.Println("Starting analytics event consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.EventMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, msg)
	}
}

func (c *EventConsumer) ProcessEvent(ctx context.Context, msg domain.EventMessage) {
	if msg.Type == "" || msg.RestaurantID <= 0 {
		return
	}

	day := msg.Timestamp
	if day.IsZero() {
		day = time.Now()
	}

	if err := c.Counters.IncrDailyEvent(ctx, msg.RestaurantID, msg.Type, day.Format("2006-01-02")); err != nil {
		log.Printf("Error updating counters for restaurant %d: %v", msg.RestaurantID, err)
	}
}
