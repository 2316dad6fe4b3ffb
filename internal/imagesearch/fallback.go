package imagesearch

import "manifest-server/internal/models"

// fallbackCandidates - небольшой фиксированный набор изображений на случай
// одновременного отказа всех провайдеров. Вызывающие никогда не получают
// ноль изображений из успешного вызова Search.
var fallbackCandidates = []models.ImageCandidate{
	{
		ID:          "fallback-sunrise",
		Provider:    "fallback",
		URL:         "https://images.unsplash.com/photo-1470252649378-9c29740c9fa8",
		Attribution: "Dawid Zawiła",
		Width:       1920,
		Height:      1280,
		Composition: models.CompositionLandscape,
		Palette:     []string{"#F9C74F", "#F8961E", "#577590"},
		Tags:        []string{"sunrise", "horizon", "new beginnings"},
	},
	{
		ID:          "fallback-path",
		Provider:    "fallback",
		URL:         "https://images.unsplash.com/photo-1441974231531-c6227db76b6e",
		Attribution: "Lukasz Szmigiel",
		Width:       1920,
		Height:      1280,
		Composition: models.CompositionLandscape,
		Palette:     []string{"#2F3E46", "#84A98C", "#CAD2C5"},
		Tags:        []string{"forest", "path", "journey"},
	},
	{
		ID:          "fallback-summit",
		Provider:    "fallback",
		URL:         "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b",
		Attribution: "Kalen Emsley",
		Width:       1280,
		Height:      1920,
		Composition: models.CompositionPortrait,
		Palette:     []string{"#1B263B", "#A8DADC", "#F1FAEE"},
		Tags:        []string{"mountain", "summit", "achievement"},
	},
	{
		ID:          "fallback-ocean",
		Provider:    "fallback",
		URL:         "https://images.unsplash.com/photo-1439405326854-014607f694d7",
		Attribution: "Matt Hardy",
		Width:       1920,
		Height:      1280,
		Composition: models.CompositionLandscape,
		Palette:     []string{"#457B9D", "#A8DADC", "#F1FAEE"},
		Tags:        []string{"ocean", "calm", "expanse"},
	},
}

// fallbackSet возвращает копию запасного набора со скорингом под запрос.
func fallbackSet(params models.ImageSearchParams) []models.ImageCandidate {
	out := make([]models.ImageCandidate, len(fallbackCandidates))
	copy(out, fallbackCandidates)
	scoreCandidates(out, params)
	rankCandidates(out)
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out
}
