package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trexstore/models"
)

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func TestGetBySlug(t *testing.T) {
	p := GetBySlug("tshirt")
	require.NotNil(t, p)
	assert.Equal(t, "ORIGIN T-SHIRT", p.Name)

	assert.Nil(t, GetBySlug("no-such-product"))
}

func TestGetByID(t *testing.T) {
	p := GetByID(2)
	require.NotNil(t, p)
	assert.Equal(t, "stickers", p.Slug)

	assert.Nil(t, GetByID(99))
}

func TestIsAvailable(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		product models.Product
		want    bool
	}{
		{
			name:    "in stock, no limits",
			product: models.Product{InStock: true},
			want:    true,
		},
		{
			name:    "static out of stock flag",
			product: models.Product{InStock: false},
			want:    false,
		},
		{
			name:    "zero stock quantity is sold out regardless of other fields",
			product: models.Product{InStock: true, StockQuantity: intPtr(0)},
			want:    false,
		},
		{
			name:    "positive stock quantity",
			product: models.Product{InStock: true, StockQuantity: intPtr(3)},
			want:    true,
		},
		{
			name: "deadline passed beats positive stock",
			product: models.Product{
				InStock:          true,
				StockQuantity:    intPtr(10),
				PreOrderDeadline: timePtr(now.Add(-time.Hour)),
			},
			want: false,
		},
		{
			name: "deadline still open",
			product: models.Product{
				InStock:          true,
				PreOrderDeadline: timePtr(now.Add(time.Hour)),
			},
			want: true,
		},
		{
			name: "now exactly at deadline is still orderable",
			product: models.Product{
				InStock:          true,
				PreOrderDeadline: timePtr(now),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(tt.product, now))
		})
	}
}

func runOn(id string, daysAhead int) models.RunEvent {
	return models.RunEvent{
		ID:       id,
		Date:     time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC).AddDate(0, 0, daysAhead),
		Location: "East Coast Park",
	}
}

func TestAvailableCollectionRunsPolicies(t *testing.T) {
	upcoming := []models.RunEvent{runOn("X", 7), runOn("Y", 14), runOn("Z", 21)}

	t.Run("ALL takes every upcoming run", func(t *testing.T) {
		p := models.Product{CollectionPolicy: models.CollectAll}
		assert.Equal(t, []string{"X", "Y", "Z"}, AvailableCollectionRuns(p, upcoming))
	})

	t.Run("LATEST takes only the furthest-future run", func(t *testing.T) {
		p := models.Product{CollectionPolicy: models.CollectLatest}
		assert.Equal(t, []string{"Z"}, AvailableCollectionRuns(p, upcoming))
	})

	t.Run("LATEST with no upcoming runs is empty", func(t *testing.T) {
		p := models.Product{CollectionPolicy: models.CollectLatest}
		assert.Empty(t, AvailableCollectionRuns(p, nil))
	})

	t.Run("SPECIFIC_SUBSET intersects with upcoming", func(t *testing.T) {
		p := models.Product{
			CollectionPolicy: models.CollectSubset,
			CollectionRunIDs: []string{"Y", "gone"},
		}
		assert.Equal(t, []string{"Y"}, AvailableCollectionRuns(p, upcoming))
	})
}

func TestCommonCollectionRuns(t *testing.T) {
	upcoming := []models.RunEvent{runOn("X", 7), runOn("Y", 14), runOn("Z", 21)}

	subset := func(ids ...string) models.Product {
		return models.Product{CollectionPolicy: models.CollectSubset, CollectionRunIDs: ids}
	}

	t.Run("overlapping eligibility intersects", func(t *testing.T) {
		common := CommonCollectionRuns([]models.Product{subset("X", "Y"), subset("Y", "Z")}, upcoming)
		require.Len(t, common, 1)
		assert.Equal(t, "Y", common[0].ID)
	})

	t.Run("disjoint eligibility is empty, not an error", func(t *testing.T) {
		common := CommonCollectionRuns([]models.Product{subset("X"), subset("Z")}, upcoming)
		assert.Empty(t, common)
	})

	t.Run("no products yields nothing", func(t *testing.T) {
		assert.Empty(t, CommonCollectionRuns(nil, upcoming))
	})

	t.Run("ALL products share every upcoming run", func(t *testing.T) {
		all := models.Product{CollectionPolicy: models.CollectAll}
		common := CommonCollectionRuns([]models.Product{all, all}, upcoming)
		assert.Len(t, common, 3)
	})
}
