package service

import (
	"context"
	"time"

	"qrmenu/internal/domain"
)

type AnalyticsService struct {
	repo      EventRepository
	publisher EventPublisher
}

func NewAnalyticsService(repo EventRepository, publisher EventPublisher) *AnalyticsService {
	return &AnalyticsService{repo: repo, publisher: publisher}
}

// LogEvent records an analytics event row and forwards it to the stream.
// The publish is fire-and-forget: the row is the source of truth.
func (s *AnalyticsService) LogEvent(ctx context.Context, restaurantID int, eventType string, payload []byte) error {
	if eventType == "" {
		return domain.NewValidationError("event type is required")
	}

	event := &domain.Event{
		RestaurantID: restaurantID,
		EventType:    eventType,
		Payload:      payload,
	}
	if err := s.repo.InsertEvent(event); err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent(ctx, domain.EventMessage{
			Type:         eventType,
			RestaurantID: restaurantID,
			Payload:      payload,
			Timestamp:    time.Now(),
		})
	}

	return nil
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
