package runs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trexstore/models"
)

func TestUpcomingFiltersAndSorts(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	events := []models.RunEvent{
		{ID: "past", Date: now.AddDate(0, 0, -7)},
		{ID: "far", Date: now.AddDate(0, 0, 30)},
		{ID: "near", Date: now.AddDate(0, 0, 3)},
	}

	up := Upcoming(events, now)
	require.Len(t, up, 2)
	assert.Equal(t, "near", up[0].ID)
	assert.Equal(t, "far", up[1].ID)
}

func TestNextRun(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	events := []models.RunEvent{
		{ID: "far", Date: now.AddDate(0, 0, 30)},
		{ID: "near", Date: now.AddDate(0, 0, 3)},
	}

	next := NextRun(events, now)
	require.NotNil(t, next)
	assert.Equal(t, "near", next.ID)

	assert.Nil(t, NextRun(nil, now))
}

func TestCSVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "community_runs.csv")
	csv := "id,date,location\n" +
		"1,2023-12-15,East Coast Park\n" +
		"\n" +
		"2,2024-01-20,Gardens by the Bay\n" +
		"3,not-a-date,MacRitchie Reservoir\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	events, err := NewCSVSource(path).All(context.Background())
	require.NoError(t, err)

	// Header skipped, blank line skipped, bad date skipped
	require.Len(t, events, 2)
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, "East Coast Park", events[0].Location)
	assert.Equal(t, "December 15, 2023", events[0].FormattedDate)
	assert.True(t, events[0].IsPast)
}

func TestCSVSourceMissingFile(t *testing.T) {
	_, err := NewCSVSource("/nonexistent/runs.csv").All(context.Background())
	assert.Error(t, err)
}

func TestDevFixturesAreUpcoming(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	events := DevFixtures(now)
	require.Len(t, events, 3)
	for _, e := range events {
		assert.True(t, e.Date.After(now))
	}
}
