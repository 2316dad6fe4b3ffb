package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manifest-server/internal/models"
)

func TestMemoryHistoryNewestFirst(t *testing.T) {
	repo := NewMemoryHistoryRepository(10)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(ctx, &models.AnalysisRecord{
			UserID:     "user-1",
			Categories: []models.Category{models.Category(fmt.Sprintf("cat-%d", i))},
		}))
	}

	records, err := repo.ListByUser(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, models.Category("cat-2"), records[0].Categories[0], "latest record comes first")
	assert.Equal(t, models.Category("cat-0"), records[2].Categories[0])
}

func TestMemoryHistoryEviction(t *testing.T) {
	repo := NewMemoryHistoryRepository(2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, &models.AnalysisRecord{
			UserID: "user-1",
			Styles: []string{fmt.Sprintf("style-%d", i)},
		}))
	}

	records, err := repo.ListByUser(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, records, 2, "capacity bounds the history")
	assert.Equal(t, "style-4", records[0].Styles[0])
	assert.Equal(t, "style-3", records[1].Styles[0])
}

func TestMemoryHistoryLimitAndIsolation(t *testing.T) {
	repo := NewMemoryHistoryRepository(10)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Append(ctx, &models.AnalysisRecord{UserID: "user-a"}))
	}
	require.NoError(t, repo.Append(ctx, &models.AnalysisRecord{UserID: "user-b"}))

	limited, err := repo.ListByUser(ctx, "user-a", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	other, err := repo.ListByUser(ctx, "user-b", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)

	empty, err := repo.ListByUser(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryHistoryClear(t *testing.T) {
	repo := NewMemoryHistoryRepository(10)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &models.AnalysisRecord{UserID: "user-1"}))
	require.NoError(t, repo.Clear(ctx, "user-1"))

	records, err := repo.ListByUser(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemorySearchCacheRoundTrip(t *testing.T) {
	cache := NewMemorySearchCache()
	ctx := context.Background()

	candidates := []models.ImageCandidate{{ID: "p-1", URL: "https://images.example.com/1.jpg"}}
	require.NoError(t, cache.Set(ctx, "key", candidates, time.Minute))

	got, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, candidates, got)

	// Возвращаемый срез - копия, мутация не трогает кэш.
	got[0].URL = "mutated"
	again, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/1.jpg", again[0].URL)
}

func TestMemorySearchCacheMiss(t *testing.T) {
	cache := NewMemorySearchCache()

	_, err := cache.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemorySearchCacheExpiry(t *testing.T) {
	cache := NewMemorySearchCache().(*memorySearchCache)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "key", []models.ImageCandidate{{ID: "p-1"}}, time.Minute))

	_, err := cache.Get(ctx, "key")
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = cache.Get(ctx, "key")
	assert.ErrorIs(t, err, models.ErrNotFound, "expired entries are evicted lazily")
}
