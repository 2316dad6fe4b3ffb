// Package interfaces содержит контракты хранилищ, провайдеров и издателей,
// используемые сервисом генерации досок визуализации.
package interfaces

import (
	"context"
	"time"

	"manifest-server/internal/models"
)

// AnalysisHistoryRepository - хранилище истории анализов пользователя.
// История ограничена по размеру: старые записи вытесняются при добавлении новых.
type AnalysisHistoryRepository interface {
	// Append сохраняет запись анализа и вытесняет самые старые записи сверх capacity.
	Append(ctx context.Context, record *models.AnalysisRecord) error

	// ListByUser возвращает записи пользователя от новых к старым, не более limit штук.
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.AnalysisRecord, error)

	// Clear удаляет всю историю пользователя. Нужен тестам и явному сбросу персонализации.
	Clear(ctx context.Context, userID string) error
}

// SearchCacheRepository - кэш результатов поиска изображений.
// Ключом служит полный кортеж параметров запроса (ImageSearchParams.CacheKey).
type SearchCacheRepository interface {
	// Get возвращает закэшированный результат или models.ErrNotFound.
	Get(ctx context.Context, key string) ([]models.ImageCandidate, error)

	// Set кладет результат в кэш с TTL.
	Set(ctx context.Context, key string, candidates []models.ImageCandidate, ttl time.Duration) error
}

// ImageProvider - единый интерфейс внешнего источника изображений.
// Каждый провайдер сам нормализует свой формат ответа в ImageCandidate.
type ImageProvider interface {
	// Name возвращает идентификатор провайдера (для логов, метрик и атрибуции).
	Name() string

	// SearchImages выполняет поиск по обогащенному запросу.
	// Отсутствие учетных данных - не ошибка: провайдер возвращает пустой срез.
	SearchImages(ctx context.Context, query string, orientation models.Composition, limit int) ([]models.ImageCandidate, error)
}

// BoardEventPublisher - издатель событий о сгенерированных досках
// для внешних коллабораторов (персистенс, уведомления).
type BoardEventPublisher interface {
	PublishBoardGenerated(ctx context.Context, event BoardGeneratedEvent) error
}

// BoardGeneratedEvent - полезная нагрузка события генерации доски.
type BoardGeneratedEvent struct {
	UserID       string          `json:"user_id"`
	DreamTitle   string          `json:"dream_title"`
	Category     models.Category `json:"category"`
	Emotion      models.Emotion  `json:"emotion"`
	Template     string          `json:"template"`
	ElementCount int             `json:"element_count"`
	ImageCount   int             `json:"image_count"`
	GeneratedAt  time.Time       `json:"generated_at"`
}
