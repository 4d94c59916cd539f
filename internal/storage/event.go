package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/sacandaga/calendarr/internal/domain"
	"github.com/timshannon/bolthold"
)

type eventRepository struct {
	store *bolthold.Store
}

func NewEventRepository(store *bolthold.Store) domain.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Insert(ctx context.Context, key string, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.store.Insert(key, event)
	if errors.Is(err, bolthold.ErrKeyExists) {
		return domain.ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, key string, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.store.Update(key, event)
	if errors.Is(err, bolthold.ErrNotFound) {
		return domain.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	return nil
}

func (r *eventRepository) Get(ctx context.Context, key string) (*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var event domain.Event
	err := r.store.Get(key, &event)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return &event, nil
}

func (r *eventRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.store.Delete(key, &domain.Event{})
	if errors.Is(err, bolthold.ErrNotFound) {
		return domain.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var events []domain.Event
	if err := r.store.Find(&events, nil); err != nil {
		return nil, fmt.Errorf("finding events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count, err := r.store.Count(&domain.Event{}, nil)
	if err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return count, nil
}

func (r *eventRepository) Close() error {
	return r.store.Close()
}
