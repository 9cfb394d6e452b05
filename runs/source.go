// Package runs loads the community-run schedule that doubles as the
// merchandise collection calendar.
package runs

import (
	"context"
	"sort"
	"time"

	"trexstore/models"
)

// Source is a read-only view over the run schedule.
type Source interface {
	// All returns every known run, past and future, ordered by date.
	All(ctx context.Context) ([]models.RunEvent, error)
}

// Upcoming filters to runs strictly after now, ascending by date.
func Upcoming(events []models.RunEvent, now time.Time) []models.RunEvent {
	var out []models.RunEvent
	for _, e := range events {
		if e.Date.After(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// NextRun returns the soonest upcoming run, or nil when none remain.
func NextRun(events []models.RunEvent, now time.Time) *models.RunEvent {
	up := Upcoming(events, now)
	if len(up) == 0 {
		return nil
	}
	return &up[0]
}

// annotate fills the derived fields on a run.
func annotate(e models.RunEvent, now time.Time) models.RunEvent {
	e.FormattedDate = models.FormatRunDate(e.Date)
	e.IsPast = e.Date.Before(now)
	return e
}
