package models

// Лимиты на размеры списков генерируемого контента.
const (
	MaxAffirmations   = 6
	MaxQuotes         = 3
	MaxActionSteps    = 7
	MaxMilestones     = 7
	MaxSuccessMetrics = 4
	MaxVisualCues     = 4
)

// ContentPersonalization - необязательные подсказки персонализации
// для генератора контента.
type ContentPersonalization struct {
	GenderNeutral bool     `json:"genderNeutral,omitempty"`
	Values        []string `json:"values,omitempty"`
	PastSuccesses []string `json:"pastSuccesses,omitempty"`
}

// ContentRequest - запрос к генератору контента.
type ContentRequest struct {
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Category        Category                `json:"category"`
	Emotion         Emotion                 `json:"emotion"`
	Timeframe       TimeframeBucket         `json:"timeframe,omitempty"`
	Personalization *ContentPersonalization `json:"personalization,omitempty"`
}

// GeneratedContent - шесть независимых списков коротких строк,
// каждый упорядочен по релевантности и ограничен своим лимитом.
type GeneratedContent struct {
	Affirmations   []string `json:"affirmations"`
	Quotes         []string `json:"quotes"`
	ActionSteps    []string `json:"actionSteps"`
	Milestones     []string `json:"milestones"`
	SuccessMetrics []string `json:"successMetrics"`
	VisualCues     []string `json:"visualCues"`
}
