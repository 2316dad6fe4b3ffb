package imagesearch

import (
	"sort"
	"strings"

	"manifest-server/internal/analyzer"
	"manifest-server/internal/models"
)

// Константы эвристики скоринга. Сохранены как есть из исходной реализации:
// изменение весов - это видимое пользователю изменение ранжирования,
// а не исправление бага.
const (
	baseRelevance      = 0.5
	queryTermBonus     = 0.2
	styleMatchBonus    = 0.2
	orientationBonus   = 0.1
	colorMatchBonus    = 0.15
	baseResonance      = 0.6
	emotionColorBonus  = 0.3
	relevanceBlendCoef = 0.6
	resonanceBlendCoef = 0.4

	minRelevance = 0.3
	minDimension = 400
)

// scoreCandidates проставляет каждому кандидату relevance и resonance.
func scoreCandidates(candidates []models.ImageCandidate, params models.ImageSearchParams) {
	queryTerms := strings.Fields(strings.ToLower(params.Query))
	emotionPalette := analyzer.ProfileFor(params.Emotion).Palette

	for i := range candidates {
		c := &candidates[i]

		relevance := baseRelevance
		haystack := strings.ToLower(strings.Join(c.Tags, " "))
		for _, term := range queryTerms {
			if strings.Contains(haystack, term) {
				relevance += queryTermBonus
			}
		}
		if params.Style != "" && strings.Contains(haystack, strings.ToLower(params.Style)) {
			relevance += styleMatchBonus
		}
		if params.Orientation != "" && c.Composition == params.Orientation {
			relevance += orientationBonus
		}
		if len(params.PreferredColors) > 0 && anyColorClose(c.Palette, params.PreferredColors) {
			relevance += colorMatchBonus
		}
		c.RelevanceScore = clamp01(relevance)

		resonance := baseResonance
		if anyColorClose(c.Palette, emotionPalette) {
			resonance += emotionColorBonus
		}
		c.EmotionalResonance = clamp01(resonance)
	}
}

// rankCandidates сортирует по взвешенной сумме 0.6×relevance + 0.4×resonance.
// Сортировка стабильная: при равных суммах сохраняется порядок провайдеров.
func rankCandidates(candidates []models.ImageCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return combinedScore(candidates[i]) > combinedScore(candidates[j])
	})
}

func combinedScore(c models.ImageCandidate) float64 {
	return relevanceBlendCoef*c.RelevanceScore + resonanceBlendCoef*c.EmotionalResonance
}

// filterCandidates отбрасывает мелкие и нерелевантные кандидаты
// и дедуплицирует почти одинаковые по грубому ключу похожести.
func filterCandidates(candidates []models.ImageCandidate) []models.ImageCandidate {
	result := make([]models.ImageCandidate, 0, len(candidates))
	seen := map[string]bool{}
	for _, c := range candidates {
		if c.Width < minDimension || c.Height < minDimension {
			continue
		}
		if c.RelevanceScore < minRelevance {
			continue
		}
		key := c.SimilarityKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, c)
	}
	return result
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
