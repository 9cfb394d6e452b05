package runs

import (
	"context"
	"time"

	"trexstore/models"
)

// StaticSource serves a fixed run list. Backs dev mode and tests.
type StaticSource struct {
	Events []models.RunEvent
}

// NewStaticSource creates a source over the given events.
func NewStaticSource(events []models.RunEvent) *StaticSource {
	return &StaticSource{Events: events}
}

func (s *StaticSource) All(_ context.Context) ([]models.RunEvent, error) {
	now := time.Now()
	out := make([]models.RunEvent, len(s.Events))
	for i, e := range s.Events {
		out[i] = annotate(e, now)
	}
	return out, nil
}

// DevFixtures returns a small schedule of upcoming runs so the checkout
// flow works without a configured run source.
func DevFixtures(now time.Time) []models.RunEvent {
	locations := []string{"East Coast Park", "Gardens by the Bay", "MacRitchie Reservoir"}
	events := make([]models.RunEvent, len(locations))
	for i, loc := range locations {
		date := now.AddDate(0, 0, 14+21*i)
		events[i] = models.RunEvent{
			ID:       date.Format("20060102"),
			Date:     date,
			Location: loc,
		}
	}
	return events
}
