package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"manifest-server/internal/models"
)

func newTestGenerator() *Generator {
	return NewGenerator(zap.NewNop())
}

// Все шесть списков непустые и не превышают лимиты.
func TestGenerateProducesAllLists(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(models.ContentRequest{
		Title:     "Launch my startup",
		Category:  models.CategoryCareerBusiness,
		Emotion:   models.EmotionAmbition,
		Timeframe: models.TimeframeLong,
	})

	assert.NotEmpty(t, result.Affirmations)
	assert.NotEmpty(t, result.Quotes)
	assert.NotEmpty(t, result.ActionSteps)
	assert.NotEmpty(t, result.Milestones)
	assert.NotEmpty(t, result.SuccessMetrics)
	assert.NotEmpty(t, result.VisualCues)

	assert.LessOrEqual(t, len(result.Affirmations), models.MaxAffirmations)
	assert.LessOrEqual(t, len(result.Quotes), models.MaxQuotes)
	assert.LessOrEqual(t, len(result.ActionSteps), models.MaxActionSteps)
	assert.LessOrEqual(t, len(result.Milestones), models.MaxMilestones)
	assert.LessOrEqual(t, len(result.SuccessMetrics), models.MaxSuccessMetrics)
	assert.LessOrEqual(t, len(result.VisualCues), models.MaxVisualCues)
}

// Заголовок мечты дает две синтезированные аффирмации.
func TestGenerateTitleAffirmations(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(models.ContentRequest{
		Title:    "Run a marathon",
		Category: models.CategoryHealthFitness,
		Emotion:  models.EmotionDetermination,
	})

	assert.Contains(t, result.Affirmations, "I am manifesting Run a marathon with ease")
	assert.Contains(t, result.Affirmations, "Run a marathon is already on its way to me")
}

// Подсказки персонализации добавляют аффирмации про ценности и прошлые
// успехи, не вытесняя заголовочные и не превышая лимит.
func TestGeneratePersonalizedAffirmations(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(models.ContentRequest{
		Title:    "Launch my startup",
		Category: models.CategoryCareerBusiness,
		Emotion:  models.EmotionAmbition,
		Personalization: &models.ContentPersonalization{
			GenderNeutral: true,
			Values:        []string{"independence"},
			PastSuccesses: []string{"career_business"},
		},
	})

	assert.Contains(t, result.Affirmations, "My commitment to independence guides every choice I make")
	assert.Contains(t, result.Affirmations, "I have succeeded before and I am succeeding again")
	assert.Contains(t, result.Affirmations, "I am manifesting Launch my startup with ease")
	assert.Contains(t, result.Affirmations, "Launch my startup is already on its way to me")
	assert.LessOrEqual(t, len(result.Affirmations), models.MaxAffirmations)
}

// Пустые подсказки эквивалентны их отсутствию.
func TestGenerateEmptyPersonalizationNoop(t *testing.T) {
	g := newTestGenerator()
	base := models.ContentRequest{
		Title:    "Run a marathon",
		Category: models.CategoryHealthFitness,
		Emotion:  models.EmotionDetermination,
	}

	without := g.Generate(base)

	withEmpty := base
	withEmpty.Personalization = &models.ContentPersonalization{GenderNeutral: true}
	with := g.Generate(withEmpty)

	assert.Equal(t, without.Affirmations, with.Affirmations)
}

// Короткий таймфрейм дает меньше шагов, но сохраняет первые вехи.
func TestGenerateTimeframeTruncation(t *testing.T) {
	g := newTestGenerator()
	base := models.ContentRequest{
		Title:    "Financial freedom",
		Category: models.CategoryFinancialFreedom,
		Emotion:  models.EmotionConfidence,
	}

	cases := []struct {
		timeframe     models.TimeframeBucket
		maxSteps      int
		maxMilestones int
	}{
		{models.TimeframeImmediate, 3, 1},
		{models.TimeframeShort, 5, 2},
		{models.TimeframeMedium, 5, 4},
		{models.TimeframeLong, models.MaxActionSteps, models.MaxMilestones},
	}

	var prevSteps int
	for _, tc := range cases {
		req := base
		req.Timeframe = tc.timeframe
		result := g.Generate(req)

		assert.LessOrEqual(t, len(result.ActionSteps), tc.maxSteps, "timeframe %s", tc.timeframe)
		assert.LessOrEqual(t, len(result.Milestones), tc.maxMilestones, "timeframe %s", tc.timeframe)

		// Обратная зависимость: чем дальше горизонт, тем не меньше шагов.
		assert.GreaterOrEqual(t, len(result.ActionSteps), prevSteps)
		prevSteps = len(result.ActionSteps)
	}
}

// Нераспознанная категория деградирует в generic-набор, а не в пустые списки.
func TestGenerateUnknownCategoryFallsBack(t *testing.T) {
	g := newTestGenerator()

	unknown := g.Generate(models.ContentRequest{
		Title:    "Mystery goal",
		Category: models.Category("does_not_exist"),
		Emotion:  models.EmotionJoy,
	})
	generic := g.Generate(models.ContentRequest{
		Title:    "Mystery goal",
		Category: models.CategoryPersonalGrowth,
		Emotion:  models.EmotionJoy,
	})

	require.NotEmpty(t, unknown.Affirmations)
	assert.Equal(t, generic.ActionSteps, unknown.ActionSteps)
	assert.Equal(t, generic.SuccessMetrics, unknown.SuccessMetrics)
}

// Неотображенная эмоция получает цитаты первой суб-темы категории.
func TestGenerateQuotesUnmappedEmotion(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(models.ContentRequest{
		Title:    "Write a book",
		Category: models.CategoryCreativityArts,
		Emotion:  models.Emotion("unknown_emotion"),
	})

	assert.NotEmpty(t, result.Quotes)
	assert.LessOrEqual(t, len(result.Quotes), models.MaxQuotes)
}
