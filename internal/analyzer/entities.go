package analyzer

import (
	"regexp"
	"strings"

	"manifest-server/internal/models"
)

// Паттерны извлечения сущностей. Узкий интерфейс extractEntities позволяет
// заменить реализацию на настоящий токенизатор, не трогая вызывающих.
var (
	// Временные выражения: "by december", "in 6 months", "within a year", "next summer", "this year"...
	timeframePattern = regexp.MustCompile(`(?:by|in|within|before|next|this)\s+(?:\d+\s+)?(?:day|week|month|year|summer|winter|spring|fall|january|february|march|april|may|june|july|august|september|october|november|december)\w*`)

	// Целевые фразы: "achieve X", "build X", "launch X", "become X"...
	goalPattern = regexp.MustCompile(`(?:achieve|build|launch|create|become|start|finish|complete|reach|earn|get|learn|write|run)\s+(?:an?\s+|my\s+|the\s+)?([\w'-]+(?:\s+[\w'-]+){0,3})`)

	// Препятствия: "but X", "however X", "challenge is X", "struggling with X"...
	obstaclePattern = regexp.MustCompile(`(?:but|however|although|challenge(?:\s+is)?|struggling\s+with|afraid\s+of|hard\s+to)\s+([\w'-]+(?:\s+[\w'-]+){0,4})`)

	// Мотивация: "because X", "so that X", "in order to X"...
	motivationPattern = regexp.MustCompile(`(?:because|so\s+that|in\s+order\s+to|to\s+finally)\s+([\w'-]+(?:\s+[\w'-]+){0,4})`)
)

// valueKeywords - фиксированный список ценностей, проверяется вхождением подстроки.
var valueKeywords = []string{
	"family", "freedom", "security", "growth", "health", "creativity",
	"adventure", "stability", "independence", "community", "legacy", "balance",
}

const maxEntityMatches = 5

// extractEntities извлекает структурированные фрагменты из текста мечты.
// Любой из списков может оказаться пустым - это не ошибка.
func extractEntities(text string) models.Entities {
	entities := models.Entities{
		Goals:       []string{},
		Timeframes:  []string{},
		Obstacles:   []string{},
		Motivations: []string{},
		Values:      []string{},
	}

	entities.Timeframes = collectMatches(timeframePattern, text, 0)
	entities.Goals = collectMatches(goalPattern, text, 1)
	entities.Obstacles = collectMatches(obstaclePattern, text, 1)
	entities.Motivations = collectMatches(motivationPattern, text, 1)

	for _, v := range valueKeywords {
		if strings.Contains(text, v) {
			entities.Values = append(entities.Values, v)
		}
	}

	return entities
}

// collectMatches возвращает до maxEntityMatches уникальных совпадений паттерна.
// group = 0 берет все совпадение, иначе группу захвата.
func collectMatches(re *regexp.Regexp, text string, group int) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	result := []string{}
	seen := map[string]bool{}
	for _, m := range matches {
		if group >= len(m) {
			continue
		}
		fragment := strings.TrimSpace(m[group])
		if fragment == "" || seen[fragment] {
			continue
		}
		seen[fragment] = true
		result = append(result, fragment)
		if len(result) >= maxEntityMatches {
			break
		}
	}
	return result
}
