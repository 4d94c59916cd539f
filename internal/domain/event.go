package domain

import "context"

// Event is a calendar entry. Start and End are inclusive dates in
// YYYY-MM-DD form; Description is nullable and serializes as JSON null
// when absent.
type Event struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	BackgroundColor string  `json:"background_color"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	Description     *string `json:"description"`
}

type EventRepository interface {
	Insert(ctx context.Context, key string, event *Event) error
	Update(ctx context.Context, key string, event *Event) error
	Get(ctx context.Context, key string) (*Event, error)
	Delete(ctx context.Context, key string) error
	FindAll(ctx context.Context) ([]Event, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
