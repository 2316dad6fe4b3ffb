package analyzer

import (
	"strings"

	"manifest-server/internal/models"
)

// intentRule - правило классификации намерения. Первое совпавшее правило
// побеждает, порядок объявления значим.
type intentRule struct {
	intentType models.IntentType
	triggers   []string
}

var intentRules = []intentRule{
	{models.IntentTransformation, []string{"become", "transform", "change my", "turn into", "reinvent"}},
	{models.IntentAcquisition, []string{"buy", "own", "acquire", "get a", "afford", "purchase"}},
	{models.IntentRelationship, []string{"partner", "marriage", "soulmate", "family", "friends", "relationship"}},
	{models.IntentExperience, []string{"travel", "visit", "experience", "explore", "see the", "adventure"}},
	// achievement - тип по умолчанию, отдельного правила не требует.
}

// Срочность по корзинам временных выражений: immediate > short > medium > long.
var urgencyKeywords = []struct {
	urgency  float64
	keywords []string
}{
	{0.95, []string{"today", "this week", "immediately", "right now", "asap"}},
	{0.75, []string{"this month", "next month", "soon", "in a few weeks"}},
	{0.5, []string{"this year", "in 6 months", "within a year", "by december", "by summer"}},
	{0.25, []string{"someday", "in 5 years", "long term", "eventually", "one day"}},
}

// Ключевые слова, сдвигающие оценку реализуемости.
var (
	feasibilityBoosts = []string{"already", "experience", "plan", "started", "skills", "know how", "progress"}
	feasibilityDrags  = []string{"impossible", "never", "no idea", "scared", "don't know", "overwhelming"}
)

// recognizeIntent классифицирует намерение и выводит его числовые характеристики.
// Константы эвристики сохранены как есть: их изменение - это изменение
// видимого пользователю контента, а не исправление бага.
func recognizeIntent(text string, wordCount int) models.Intent {
	intent := models.Intent{
		Type:        models.IntentAchievement, // тип по умолчанию
		Urgency:     0.4,
		Specificity: clamp01(float64(wordCount) / 100),
		Feasibility: 0.6,
	}

	for _, rule := range intentRules {
		matched := false
		for _, trigger := range rule.triggers {
			if strings.Contains(text, trigger) {
				intent.Type = rule.intentType
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}

	// Корзины проверяются от самой срочной к самой дальней, побеждает первая.
urgencyLoop:
	for _, bucket := range urgencyKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(text, kw) {
				intent.Urgency = bucket.urgency
				break urgencyLoop
			}
		}
	}

	for _, kw := range feasibilityBoosts {
		if strings.Contains(text, kw) {
			intent.Feasibility += 0.1
		}
	}
	for _, kw := range feasibilityDrags {
		if strings.Contains(text, kw) {
			intent.Feasibility -= 0.1
		}
	}
	intent.Feasibility = clamp(intent.Feasibility, 0.1, 1.0)

	return intent
}
