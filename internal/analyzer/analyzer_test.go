package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"manifest-server/internal/database"
	"manifest-server/internal/mocks"
	"manifest-server/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(database.NewMemoryHistoryRepository(DefaultHistoryCapacity), DefaultHistoryCapacity, zap.NewNop())
}

// Сценарий с явным карьерным текстом: категория и эмоция должны определиться однозначно.
func TestAnalyzeCareerScenario(t *testing.T) {
	svc := newTestService(t)

	dream := &models.DreamInput{
		Title:       "Launch my startup",
		Description: "I am determined to build an amazing app and achieve success this year",
	}

	analysis := svc.Analyze(context.Background(), dream, "user-1")
	require.NotNil(t, analysis)

	assert.Equal(t, models.CategoryCareerBusiness, analysis.PrimaryCategory(),
		"career text should resolve to career_business")
	assert.Equal(t, models.EmotionAmbition, analysis.EmotionalTone.DominantEmotion(),
		"startup/launch/achieve/success keywords should make ambition dominant")
	assert.Equal(t, models.SentimentPositive, analysis.EmotionalTone.Sentiment)

	// "this year" попадает в корзину medium-срочности.
	assert.InDelta(t, 0.5, analysis.Intent.Urgency, 1e-9)
	assert.Equal(t, models.TimeframeMedium, analysis.Intent.TimeframeBucketFromUrgency())

	assert.NotEmpty(t, analysis.Suggestions.ImageQueries)
	assert.NotEmpty(t, analysis.Suggestions.Keywords)
	for _, kw := range analysis.Suggestions.Keywords {
		assert.InDelta(t, 0.8, kw.Weight, 1e-9, "category keywords carry a fixed weight")
	}
}

// Бессмысленный ввод не должен ломать анализ: подставляются значения по умолчанию.
func TestAnalyzeVagueInputFallsBackToDefaults(t *testing.T) {
	svc := newTestService(t)

	analysis := svc.Analyze(context.Background(), &models.DreamInput{Title: "x"}, "user-2")
	require.NotNil(t, analysis)

	assert.Equal(t, models.DefaultCategory, analysis.PrimaryCategory())
	require.NotEmpty(t, analysis.EmotionalTone.Emotions, "emotions list is guaranteed non-empty")
	assert.Equal(t, models.DefaultEmotion, analysis.EmotionalTone.DominantEmotion())
	assert.NotEmpty(t, analysis.Suggestions.ImageQueries, "image queries are guaranteed non-empty")

	assert.Empty(t, analysis.Entities.Goals)
	assert.Empty(t, analysis.Entities.Obstacles)
}

// Все числовые характеристики анализа лежат в документированных диапазонах.
func TestAnalyzeScoreBounds(t *testing.T) {
	svc := newTestService(t)

	inputs := []*models.DreamInput{
		{Title: "Launch my startup", Description: "achieve success win amazing incredible great love happy"},
		{Title: "I am stuck", Description: "debt fear failure impossible struggle never stress"},
		{Title: "Run a marathon", Description: "train every day, get in shape, because I value my health"},
	}

	for _, dream := range inputs {
		analysis := svc.Analyze(context.Background(), dream, "user-3")

		assert.GreaterOrEqual(t, analysis.EmotionalTone.Intensity, 0.0)
		assert.LessOrEqual(t, analysis.EmotionalTone.Intensity, 1.0)
		assert.GreaterOrEqual(t, analysis.Intent.Urgency, 0.0)
		assert.LessOrEqual(t, analysis.Intent.Urgency, 1.0)
		assert.GreaterOrEqual(t, analysis.Intent.Specificity, 0.0)
		assert.LessOrEqual(t, analysis.Intent.Specificity, 1.0)
		assert.GreaterOrEqual(t, analysis.Intent.Feasibility, 0.1)
		assert.LessOrEqual(t, analysis.Intent.Feasibility, 1.0)

		for _, es := range analysis.EmotionalTone.Emotions {
			assert.GreaterOrEqual(t, es.Intensity, 0.0)
			assert.LessOrEqual(t, es.Intensity, 1.0)
		}
	}
}

// Один и тот же вход при пустой истории дает идентичный анализ.
func TestAnalyzeDeterminism(t *testing.T) {
	dream := &models.DreamInput{
		Title:       "Travel the world",
		Description: "I want to explore new countries and go on an adventure someday",
	}

	first := newTestService(t).Analyze(context.Background(), dream, "user-4")
	second := newTestService(t).Analyze(context.Background(), dream, "user-4")

	assert.Equal(t, first.PrimaryCategories, second.PrimaryCategories)
	assert.Equal(t, first.EmotionalTone, second.EmotionalTone)
	assert.Equal(t, first.Intent, second.Intent)
	assert.Equal(t, first.Suggestions, second.Suggestions)
}

// Категории и эмоции упорядочены по убыванию счета; ничьи разрешаются
// порядком объявления каталога.
func TestDetectOrderingAndTieBreaks(t *testing.T) {
	// health набирает два ключевых слова, career - одно.
	categories := detectCategories("health fitness career")
	require.Len(t, categories, 2)
	assert.Equal(t, models.CategoryHealthFitness, categories[0])
	assert.Equal(t, models.CategoryCareerBusiness, categories[1])

	// Равный счет: побеждает категория, объявленная раньше.
	tied := detectCategories("career health")
	require.Len(t, tied, 2)
	assert.Equal(t, models.CategoryCareerBusiness, tied[0])
	assert.Equal(t, models.CategoryHealthFitness, tied[1])

	// determination: два слова из семи при базе 0.85, love: одно из семи при 0.8.
	emotions := detectEmotions("determined commit cherish")
	require.Len(t, emotions, 2)
	assert.Equal(t, models.EmotionDetermination, emotions[0].Emotion)
	assert.Equal(t, models.EmotionLove, emotions[1].Emotion)

	// Одинаковая интенсивность (по одному слову из семи при базе 0.8):
	// excitement объявлен раньше love и остается первым.
	tiedEmotions := detectEmotions("thrilled cherish")
	require.Len(t, tiedEmotions, 2)
	assert.Equal(t, tiedEmotions[0].Intensity, tiedEmotions[1].Intensity)
	assert.Equal(t, models.EmotionExcitement, tiedEmotions[0].Emotion)
	assert.Equal(t, models.EmotionLove, tiedEmotions[1].Emotion)
}

// Персонализация накапливается между вызовами одного пользователя.
func TestAnalyzePersonalizationAccumulates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := svc.Analyze(ctx, &models.DreamInput{Title: "Launch my startup"}, "user-5")
	assert.Empty(t, first.Personalization.PreviousCategories, "first call sees empty history")

	second := svc.Analyze(ctx, &models.DreamInput{Title: "Run a marathon"}, "user-5")
	assert.Contains(t, second.Personalization.PreviousCategories, models.CategoryCareerBusiness)
	assert.NotEmpty(t, second.Personalization.PreferredStyles)
	assert.NotEmpty(t, second.Personalization.PreferredColors)
}

// Ошибки хранилища истории не должны прерывать анализ.
func TestAnalyzeSurvivesHistoryErrors(t *testing.T) {
	repo := new(mocks.AnalysisHistoryRepository)
	repo.On("ListByUser", mock.Anything, "user-6", mock.Anything).
		Return(nil, errors.New("storage is down"))
	repo.On("Append", mock.Anything, mock.Anything).
		Return(errors.New("storage is down"))

	svc := NewService(repo, DefaultHistoryCapacity, zap.NewNop())
	analysis := svc.Analyze(context.Background(), &models.DreamInput{Title: "Find inner peace"}, "user-6")

	require.NotNil(t, analysis)
	assert.Equal(t, models.CategorySpiritualWellbeing, analysis.PrimaryCategory())
	assert.Empty(t, analysis.Personalization.PreviousCategories)
	repo.AssertExpectations(t)
}
