package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/sacandaga/calendarr/internal/domain"
	"github.com/sacandaga/calendarr/internal/storage"
	"github.com/timshannon/bolthold"
)

func setupTestService(t *testing.T) *EventService {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	tmpfile.Close()

	store, err := bolthold.Open(tmpfile.Name(), 0666, nil)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.Remove(tmpfile.Name())
	})

	return NewEventService(storage.NewEventRepository(store))
}

func validCreate() CreateEvent {
	return CreateEvent{
		Title:           "Opening Weekend",
		BackgroundColor: "#2365A1",
		Start:           "2025-07-04",
		End:             "2025-07-06",
	}
}

func TestEventService_Create(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*CreateEvent)
		wantErr error
	}{
		{
			name:    "valid input",
			mutate:  func(c *CreateEvent) {},
			wantErr: nil,
		},
		{
			name:    "missing title",
			mutate:  func(c *CreateEvent) { c.Title = "" },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing background color",
			mutate:  func(c *CreateEvent) { c.BackgroundColor = "" },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing start",
			mutate:  func(c *CreateEvent) { c.Start = "" },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing end",
			mutate:  func(c *CreateEvent) { c.End = "" },
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreate()
			tt.mutate(&input)

			event, err := svc.Create(ctx, input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil {
				if event.ID == "" {
					t.Error("Create() assigned no ID")
				}
				if event.Description != nil {
					t.Errorf("Description = %v, want nil", *event.Description)
				}
			}
		})
	}
}

func TestEventService_Update(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	desc := "Elaine, Rick, Mark, Danee"
	created, err := svc.Create(ctx, CreateEvent{
		Title:           "Opening Weekend",
		BackgroundColor: "#2365A1",
		Start:           "2025-07-04",
		End:             "2025-07-06",
		Description:     &desc,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newTitle := "Closing Weekend"
	updated, err := svc.Update(ctx, created.ID, UpdateEvent{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("Title = %v, want %v", updated.Title, newTitle)
	}
	if updated.Start != created.Start {
		t.Errorf("Start changed to %v, want %v", updated.Start, created.Start)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Error("Description should be untouched when not mentioned")
	}

	// Explicit null clears the description.
	updated, err = svc.Update(ctx, created.ID, UpdateEvent{DescriptionSet: true})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Description != nil {
		t.Errorf("Description = %v, want nil after clearing", *updated.Description)
	}

	if _, err := svc.Update(ctx, created.ID, UpdateEvent{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Update() with no fields error = %v, want %v", err, domain.ErrInvalidInput)
	}

	if _, err := svc.Update(ctx, "missing-id", UpdateEvent{Title: &newTitle}); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("Update() missing event error = %v, want %v", err, domain.ErrEventNotFound)
	}
}

func TestEventService_GetAndList(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	events, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Errorf("List() on empty store = %v, want empty slice", events)
	}

	created, err := svc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != created.Title {
		t.Errorf("Get() Title = %v, want %v", got.Title, created.Title)
	}

	if _, err := svc.Get(ctx, "missing-id"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("Get() missing error = %v, want %v", err, domain.ErrEventNotFound)
	}

	events, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("List() returned %d events, want 1", len(events))
	}
}

func TestEventService_Delete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("Delete() missing error = %v, want %v", err, domain.ErrEventNotFound)
	}
}
