package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sacandaga/calendarr/internal/domain"
	log "github.com/sirupsen/logrus"
)

type EventService struct {
	repo domain.EventRepository
}

func NewEventService(repo domain.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// CreateEvent carries the fields accepted when creating an event.
// Description is optional; every other field is required and non-empty.
type CreateEvent struct {
	Title           string
	BackgroundColor string
	Start           string
	End             string
	Description     *string
}

// UpdateEvent carries a partial update. Nil pointers leave the field
// untouched; DescriptionSet distinguishes "clear the description" from
// "description not mentioned".
type UpdateEvent struct {
	Title           *string
	BackgroundColor *string
	Start           *string
	End             *string
	Description     *string
	DescriptionSet  bool
}

func (u *UpdateEvent) empty() bool {
	return u.Title == nil && u.BackgroundColor == nil && u.Start == nil && u.End == nil && !u.DescriptionSet
}

func (s *EventService) Create(ctx context.Context, input CreateEvent) (*domain.Event, error) {
	if err := validateRequired(input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:              uuid.NewString(),
		Title:           input.Title,
		BackgroundColor: input.BackgroundColor,
		Start:           input.Start,
		End:             input.End,
		Description:     input.Description,
	}

	if err := s.repo.Insert(ctx, event.ID, event); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	log.WithFields(log.Fields{
		"id":    event.ID,
		"title": event.Title,
	}).Info("event created")
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.Get(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

func (s *EventService) Update(ctx context.Context, id string, update UpdateEvent) (*domain.Event, error) {
	if update.empty() {
		return nil, fmt.Errorf("no fields to update provided: %w", domain.ErrInvalidInput)
	}

	event, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(event, update)

	if err := s.repo.Update(ctx, id, event); err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}

	log.WithFields(log.Fields{
		"id":    event.ID,
		"title": event.Title,
	}).Info("event updated")
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.WithField("id", id).Info("event deleted")
	return nil
}

func validateRequired(input CreateEvent) error {
	required := map[string]string{
		"title":            input.Title,
		"background_color": input.BackgroundColor,
		"start":            input.Start,
		"end":              input.End,
	}

	for _, field := range []string{"title", "background_color", "start", "end"} {
		if required[field] == "" {
			return fmt.Errorf("missing or empty required field %q: %w", field, domain.ErrInvalidInput)
		}
	}
	return nil
}

func applyUpdate(event *domain.Event, update UpdateEvent) {
	if update.Title != nil {
		event.Title = *update.Title
	}
	if update.BackgroundColor != nil {
		event.BackgroundColor = *update.BackgroundColor
	}
	if update.Start != nil {
		event.Start = *update.Start
	}
	if update.End != nil {
		event.End = *update.End
	}
	if update.DescriptionSet {
		event.Description = update.Description
	}
}
