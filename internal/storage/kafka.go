package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"qrmenu/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher forwards analytics events to the stream, keyed by
// restaurant so one restaurant's events stay ordered.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishEvent(ctx context.Context, msg domain.EventMessage) error {
	payload, _ := json.Marshal(msg)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(msg.RestaurantID)),
		Value: payload,
	})
}
