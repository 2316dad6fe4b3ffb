package analyzer

import (
	"fmt"
	"strings"

	"manifest-server/internal/models"
)

// Вес ключевых слов категорий в подсказках.
const suggestionKeywordWeight = 0.8

// buildSuggestions собирает подсказки для генератора контента и агента
// поиска изображений из найденных категорий, эмоций и целевых фраз.
func buildSuggestions(title string, categories []models.Category, emotions []models.EmotionScore, goals []string) models.Suggestions {
	s := models.Suggestions{
		Keywords:       []models.WeightedKeyword{},
		ImageQueries:   []string{},
		Affirmations:   []string{},
		VisualElements: []string{},
	}

	for _, cat := range categories {
		def := defFor(cat)
		for _, kw := range def.primaryKeywords {
			s.Keywords = append(s.Keywords, models.WeightedKeyword{
				Keyword:  kw,
				Category: cat,
				Weight:   suggestionKeywordWeight,
			})
		}
		s.ImageQueries = append(s.ImageQueries, def.imageQueries...)
		s.Affirmations = append(s.Affirmations, def.affirmations...)
		s.VisualElements = append(s.VisualElements, def.visualElements...)
	}

	// Запросы из эмоций: метка эмоции плюс ее стиль изображений.
	for _, es := range emotions {
		profile := ProfileFor(es.Emotion)
		s.ImageQueries = append(s.ImageQueries, fmt.Sprintf("%s %s", es.Emotion, profile.ImageStyle))
	}

	// Аффирмации из извлеченных целевых фраз.
	for _, goal := range goals {
		s.Affirmations = append(s.Affirmations, fmt.Sprintf("I am on my way to %s", goal))
	}
	if t := strings.TrimSpace(title); t != "" {
		s.Affirmations = append(s.Affirmations, fmt.Sprintf("I am manifesting %s with ease", t))
	}

	// Инвариант: imageQueries не пуст даже для категории по умолчанию -
	// у каждой категории есть шаблонные запросы, а список эмоций не пуст.
	return s
}
