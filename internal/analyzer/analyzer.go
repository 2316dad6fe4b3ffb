// Package analyzer превращает свободный текст мечты в структурированный анализ:
// категории, эмоциональная окраска, сущности, намерение и подсказки для
// следующих этапов пайплайна. Все этапы - правила и лексиконы, не ML;
// ни один этап не возвращает ошибку - у каждого есть фолбэк по умолчанию.
package analyzer

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"manifest-server/internal/interfaces"
	"manifest-server/internal/models"
)

// DefaultHistoryCapacity - сколько последних анализов пользователя
// учитывается в персонализации.
const DefaultHistoryCapacity = 50

// Service - анализатор текста мечты.
// Чистая функция от входа плюс чтение/дозапись истории пользователя -
// единственная стейтфул-операция анализатора.
type Service struct {
	history  interfaces.AnalysisHistoryRepository
	capacity int
	logger   *zap.Logger
}

// NewService создает анализатор поверх хранилища истории.
func NewService(history interfaces.AnalysisHistoryRepository, capacity int, logger *zap.Logger) *Service {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &Service{
		history:  history,
		capacity: capacity,
		logger:   logger.Named("Analyzer"),
	}
}

// Analyze выполняет все этапы анализа над склейкой текстовых полей мечты.
// Никогда не возвращает ошибку анализа: пустой или бессмысленный текст дает
// категорию и эмоцию по умолчанию и пустые списки сущностей.
func (s *Service) Analyze(ctx context.Context, dream *models.DreamInput, userID string) *models.DreamAnalysis {
	log := s.logger.With(zap.String("user_id", userID))
	text := dream.FullText()
	wordCount := len(strings.Fields(text))

	// Этапы 1-5: тональность, сущности, намерение, категории, эмоции.
	sentiment, intensity := analyzeSentiment(text)
	entities := extractEntities(text)
	intent := recognizeIntent(text, wordCount)
	categories := detectCategories(text)
	emotions := detectEmotions(text)

	analysis := &models.DreamAnalysis{
		PrimaryCategories: categories,
		EmotionalTone: models.EmotionalTone{
			Sentiment: sentiment,
			Intensity: intensity,
			Emotions:  emotions,
		},
		Entities: entities,
		Intent:   intent,
	}

	// Этап 6: подсказки из найденных категорий, эмоций и целей.
	analysis.Suggestions = buildSuggestions(dream.Title, categories, emotions, entities.Goals)

	// Этап 7: персонализация из истории плюс дозапись нового анализа.
	analysis.Personalization = s.loadPersonalization(ctx, userID)
	s.appendHistory(ctx, userID, analysis)

	log.Debug("Dream analyzed",
		zap.String("primary_category", string(analysis.PrimaryCategory())),
		zap.String("dominant_emotion", string(analysis.EmotionalTone.DominantEmotion())),
		zap.String("sentiment", string(sentiment)),
		zap.Int("word_count", wordCount),
	)

	return analysis
}

// loadPersonalization агрегирует историю пользователя в предпочтения.
// Ошибка хранилища не прерывает анализ: возвращается пустая персонализация.
func (s *Service) loadPersonalization(ctx context.Context, userID string) models.Personalization {
	p := models.Personalization{
		PreviousCategories: []models.Category{},
		SuccessfulPatterns: []string{},
		PreferredStyles:    []string{},
		PreferredColors:    []string{},
	}
	if userID == "" {
		return p
	}

	records, err := s.history.ListByUser(ctx, userID, s.capacity)
	if err != nil {
		s.logger.Warn("Failed to load analysis history, continuing without personalization",
			zap.String("user_id", userID), zap.Error(err))
		return p
	}

	seenCat := map[models.Category]bool{}
	seenStyle := map[string]bool{}
	seenColor := map[string]bool{}
	for _, rec := range records {
		for _, cat := range rec.Categories {
			if !seenCat[cat] {
				seenCat[cat] = true
				p.PreviousCategories = append(p.PreviousCategories, cat)
			}
		}
		for _, style := range rec.Styles {
			if !seenStyle[style] {
				seenStyle[style] = true
				p.PreferredStyles = append(p.PreferredStyles, style)
			}
		}
		for _, color := range rec.Colors {
			if !seenColor[color] {
				seenColor[color] = true
				p.PreferredColors = append(p.PreferredColors, color)
			}
		}
	}
	return p
}

// appendHistory дописывает результат анализа в историю пользователя.
// Ошибка записи логируется и не влияет на результат вызова.
func (s *Service) appendHistory(ctx context.Context, userID string, analysis *models.DreamAnalysis) {
	if userID == "" {
		return
	}

	emotions := make([]models.Emotion, 0, len(analysis.EmotionalTone.Emotions))
	styles := make([]string, 0, len(analysis.EmotionalTone.Emotions))
	colors := []string{}
	for _, es := range analysis.EmotionalTone.Emotions {
		emotions = append(emotions, es.Emotion)
		profile := ProfileFor(es.Emotion)
		styles = append(styles, profile.ImageStyle)
		colors = append(colors, profile.Palette...)
	}

	record := &models.AnalysisRecord{
		UserID:     userID,
		Categories: analysis.PrimaryCategories,
		Emotions:   emotions,
		Styles:     styles,
		Colors:     colors,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.history.Append(ctx, record); err != nil {
		s.logger.Warn("Failed to append analysis history",
			zap.String("user_id", userID), zap.Error(err))
	}
}
