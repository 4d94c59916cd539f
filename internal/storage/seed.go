package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sacandaga/calendarr/internal/domain"
	log "github.com/sirupsen/logrus"
)

// initialEvents is inserted into an empty store so a fresh deployment
// starts with the current season's schedule.
var initialEvents = []domain.Event{
	{
		Title:           "Opening Weekend",
		Start:           "2025-07-04",
		End:             "2025-07-06",
		BackgroundColor: "#2365A1",
		Description:     describe("Elaine, Rick, Mark, Danee"),
	},
	{
		Title:           "Michael & Katie",
		Start:           "2025-07-25",
		End:             "2025-08-10",
		BackgroundColor: "#388E3C",
	},
	{
		Title:           "Scott, Doug, Mark, Elaine, Rick",
		Start:           "2025-08-16",
		End:             "2025-08-23",
		BackgroundColor: "#7B1FA2",
	},
	{
		Title:           "Chris & Friends",
		Start:           "2025-08-28",
		End:             "2025-09-02",
		BackgroundColor: "#A0522D",
	},
}

// SeedEvents populates the repository with the initial schedule when it is
// empty. A store that already holds events is left untouched.
func SeedEvents(ctx context.Context, repo domain.EventRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting existing events: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, event := range initialEvents {
		event.ID = uuid.NewString()
		if err := repo.Insert(ctx, event.ID, &event); err != nil {
			return fmt.Errorf("seeding event %q: %w", event.Title, err)
		}
	}

	log.WithField("events", len(initialEvents)).Info("seeded empty event store")
	return nil
}

func describe(s string) *string {
	return &s
}
