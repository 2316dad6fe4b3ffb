package database

import (
	"context"
	"sync"
	"time"

	"manifest-server/internal/interfaces"
	"manifest-server/internal/models"
)

var _ interfaces.SearchCacheRepository = (*memorySearchCache)(nil)

type cacheEntry struct {
	candidates []models.ImageCandidate
	expiresAt  time.Time
}

// memorySearchCache - кэш результатов поиска в памяти процесса.
// Просроченные записи удаляются лениво при чтении.
type memorySearchCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewMemorySearchCache создает in-memory кэш результатов поиска.
func NewMemorySearchCache() interfaces.SearchCacheRepository {
	return &memorySearchCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *memorySearchCache) Get(_ context.Context, key string) ([]models.ImageCandidate, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, models.ErrNotFound
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, models.ErrNotFound
	}

	out := make([]models.ImageCandidate, len(entry.candidates))
	copy(out, entry.candidates)
	return out, nil
}

func (c *memorySearchCache) Set(_ context.Context, key string, candidates []models.ImageCandidate, ttl time.Duration) error {
	stored := make([]models.ImageCandidate, len(candidates))
	copy(stored, candidates)

	c.mu.Lock()
	c.entries[key] = cacheEntry{
		candidates: stored,
		expiresAt:  c.now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}
