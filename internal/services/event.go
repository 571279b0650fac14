package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventcomposer/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	store          domain.Store
	contextTimeout time.Duration
}

// NewEventService returns a domain.EventService reading events through eventRepo and
// their ownership rows through store.
func NewEventService(eventRepo domain.EventRepository, store domain.Store, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		store:          store,
		contextTimeout: timeout,
	}
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	rows, err := s.store.Select(ctx, domain.TableContentOwnership, domain.Filter{
		"content_id":   eventID,
		"content_type": domain.ContentTypeEvent,
	})
	if err != nil {
		return nil, fmt.Errorf("get ownership: %w", err)
	}
	detail := &domain.EventDetail{Event: event, OwnerID: event.CreatedBy}
	if len(rows) > 0 {
		detail.OwnerID = stringField(rows[0], "owner_id")
	}
	return detail, nil
}
