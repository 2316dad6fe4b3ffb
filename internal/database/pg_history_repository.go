package database

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"manifest-server/internal/interfaces"
	"manifest-server/internal/models"
)

var _ interfaces.AnalysisHistoryRepository = (*pgHistoryRepository)(nil)

type pgHistoryRepository struct {
	pool     *pgxpool.Pool
	capacity int
	logger   *zap.Logger
}

// NewPgHistoryRepository создает Postgres-хранилище истории анализов.
// capacity ограничивает число записей на пользователя: лишние вытесняются
// при каждом Append, от старых к новым.
func NewPgHistoryRepository(pool *pgxpool.Pool, capacity int, logger *zap.Logger) interfaces.AnalysisHistoryRepository {
	return &pgHistoryRepository{
		pool:     pool,
		capacity: capacity,
		logger:   logger.Named("PgHistoryRepo"),
	}
}

// historyRow - строка таблицы analysis_history. Массивы хранятся как TEXT[]
// и конвертируются в доменные типы после сканирования.
type historyRow struct {
	ID         int64     `db:"id"`
	UserID     string    `db:"user_id"`
	Categories []string  `db:"categories"`
	Emotions   []string  `db:"emotions"`
	Styles     []string  `db:"styles"`
	Colors     []string  `db:"colors"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r *pgHistoryRepository) Append(ctx context.Context, record *models.AnalysisRecord) error {
	query := `
		INSERT INTO analysis_history (user_id, categories, emotions, styles, colors, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, query,
		record.UserID,
		categoriesToStrings(record.Categories),
		emotionsToStrings(record.Emotions),
		record.Styles,
		record.Colors,
		createdAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert analysis record", zap.Error(err), zap.String("userID", record.UserID))
		return fmt.Errorf("failed to insert analysis record: %w", err)
	}

	// Вытесняем записи сверх вместимости.
	evict := `
		DELETE FROM analysis_history
		WHERE user_id = $1
		  AND id NOT IN (
			SELECT id FROM analysis_history
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		)`
	if _, err := r.pool.Exec(ctx, evict, record.UserID, r.capacity); err != nil {
		r.logger.Error("Failed to evict old analysis records", zap.Error(err), zap.String("userID", record.UserID))
		return fmt.Errorf("failed to evict old analysis records: %w", err)
	}
	return nil
}

func (r *pgHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.AnalysisRecord, error) {
	if limit <= 0 || limit > r.capacity {
		limit = r.capacity
	}

	query := `
		SELECT id, user_id, categories, emotions, styles, colors, created_at
		FROM analysis_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	var rows []*historyRow
	if err := pgxscan.Select(ctx, r.pool, &rows, query, userID, limit); err != nil {
		r.logger.Error("Failed to list analysis records", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to list analysis records: %w", err)
	}

	records := make([]*models.AnalysisRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &models.AnalysisRecord{
			ID:         row.ID,
			UserID:     row.UserID,
			Categories: stringsToCategories(row.Categories),
			Emotions:   stringsToEmotions(row.Emotions),
			Styles:     row.Styles,
			Colors:     row.Colors,
			CreatedAt:  row.CreatedAt,
		})
	}
	return records, nil
}

func (r *pgHistoryRepository) Clear(ctx context.Context, userID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM analysis_history WHERE user_id = $1`, userID); err != nil {
		r.logger.Error("Failed to clear analysis history", zap.Error(err), zap.String("userID", userID))
		return fmt.Errorf("failed to clear analysis history: %w", err)
	}
	return nil
}

func categoriesToStrings(categories []models.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

func stringsToCategories(values []string) []models.Category {
	out := make([]models.Category, len(values))
	for i, v := range values {
		out[i] = models.Category(v)
	}
	return out
}

func emotionsToStrings(emotions []models.Emotion) []string {
	out := make([]string, len(emotions))
	for i, e := range emotions {
		out[i] = string(e)
	}
	return out
}

func stringsToEmotions(values []string) []models.Emotion {
	out := make([]models.Emotion, len(values))
	for i, v := range values {
		out[i] = models.Emotion(v)
	}
	return out
}
