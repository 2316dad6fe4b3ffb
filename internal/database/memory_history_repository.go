package database

import (
	"context"
	"sync"
	"time"

	"manifest-server/internal/interfaces"
	"manifest-server/internal/models"
)

var _ interfaces.AnalysisHistoryRepository = (*memoryHistoryRepository)(nil)

// memoryHistoryRepository - история анализов в памяти процесса.
// Используется, когда Postgres не сконфигурирован, и в тестах.
type memoryHistoryRepository struct {
	mu       sync.RWMutex
	byUser   map[string][]*models.AnalysisRecord // от новых к старым
	capacity int
	nextID   int64
}

// NewMemoryHistoryRepository создает in-memory хранилище истории анализов.
func NewMemoryHistoryRepository(capacity int) interfaces.AnalysisHistoryRepository {
	return &memoryHistoryRepository{
		byUser:   make(map[string][]*models.AnalysisRecord),
		capacity: capacity,
	}
}

func (r *memoryHistoryRepository) Append(_ context.Context, record *models.AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *record
	stored.ID = r.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	records := append([]*models.AnalysisRecord{&stored}, r.byUser[record.UserID]...)
	if len(records) > r.capacity {
		records = records[:r.capacity]
	}
	r.byUser[record.UserID] = records
	return nil
}

func (r *memoryHistoryRepository) ListByUser(_ context.Context, userID string, limit int) ([]*models.AnalysisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.byUser[userID]
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	out := make([]*models.AnalysisRecord, limit)
	copy(out, records[:limit])
	return out, nil
}

func (r *memoryHistoryRepository) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUser, userID)
	return nil
}
