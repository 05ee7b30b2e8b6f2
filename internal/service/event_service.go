package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type EventService interface {
	Create(ctx context.Context, userID int64, in *transfer.EventInput) (*models.Event, error)
	List(ctx context.Context, userID int64, upcomingOnly bool) ([]*models.Event, error)
	Get(ctx context.Context, userID, eventID int64) (*models.Event, error)
	Update(ctx context.Context, userID, eventID int64, in *transfer.EventInput) (*models.Event, error)
	Remove(ctx context.Context, userID, eventID int64) error
}

type eventService struct {
	er repository.EventRepository
}

func NewEventService(er repository.EventRepository) EventService {
	return &eventService{er: er}
}

func validateEvent(in *transfer.EventInput) error {
	if err := required("title", in.Title, 200); err != nil {
		return err
	}
	if in.EventType == "" {
		in.EventType = "other"
	}
	if err := oneOf("event_type", in.EventType, models.EventTypes); err != nil {
		return err
	}
	if in.Status == "" {
		in.Status = models.EventStatuses[0]
	}
	if err := oneOf("status", in.Status, models.EventStatuses); err != nil {
		return err
	}
	if in.StartsAt.IsZero() {
		return invalid("starts_at", "is required")
	}
	if in.EndsAt != nil && in.EndsAt.Before(in.StartsAt) {
		return invalid("ends_at", "must not be before starts_at")
	}
	return nil
}

func applyEvent(e *models.Event, in *transfer.EventInput) {
	e.Title = strings.TrimSpace(in.Title)
	e.Description = in.Description
	e.EventType = in.EventType
	e.Location = in.Location
	e.URL = in.URL
	e.Status = in.Status
	e.StartsAt = in.StartsAt
	e.EndsAt = in.EndsAt
}

func (s *eventService) Create(ctx context.Context, userID int64, in *transfer.EventInput) (*models.Event, error) {
	if err := validateEvent(in); err != nil {
		return nil, err
	}
	event := &models.Event{UserID: userID}
	applyEvent(event, in)

	id, err := s.er.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return s.er.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context, userID int64, upcomingOnly bool) ([]*models.Event, error) {
	events, err := s.er.ListByUserID(ctx, userID, upcomingOnly)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, userID, eventID int64) (*models.Event, error) {
	event, err := s.er.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	if event == nil {
		return nil, notFound("event")
	}
	if event.UserID != userID {
		return nil, forbidden("event")
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, userID, eventID int64, in *transfer.EventInput) (*models.Event, error) {
	if err := validateEvent(in); err != nil {
		return nil, err
	}
	event, err := s.Get(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	applyEvent(event, in)

	if err := s.er.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return s.er.GetByID(ctx, eventID)
}

func (s *eventService) Remove(ctx context.Context, userID, eventID int64) error {
	if _, err := s.Get(ctx, userID, eventID); err != nil {
		return err
	}
	if err := s.er.Remove(ctx, eventID); err != nil {
		return fmt.Errorf("error removing event: %w", err)
	}
	return nil
}
