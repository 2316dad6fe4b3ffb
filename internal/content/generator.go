// Package content генерирует персонализированный текстовый контент доски:
// аффирмации, цитаты, шаги, вехи, метрики успеха и визуальные подсказки.
// Чистое, синхронное вычисление над таблицами шаблонов.
package content

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"manifest-server/internal/models"
)

// Generator - генератор контента доски визуализации.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator создает генератор контента.
func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{logger: logger.Named("ContentGenerator")}
}

// Generate собирает все шесть списков контента из шаблонов категории.
// Нераспознанная категория деградирует в generic-набор personal growth;
// метод никогда не возвращает пустые списки.
func (g *Generator) Generate(req models.ContentRequest) models.GeneratedContent {
	t := templatesFor(req.Category)

	result := models.GeneratedContent{
		Affirmations:   g.buildAffirmations(req, t),
		Quotes:         g.buildQuotes(req, t),
		ActionSteps:    truncateByTimeframe(t.actionSteps, req.Timeframe),
		Milestones:     truncateMilestones(t.milestones, req.Timeframe),
		SuccessMetrics: capList(t.successMetrics, models.MaxSuccessMetrics),
		VisualCues:     capList(t.visualCues, models.MaxVisualCues),
	}

	g.logger.Debug("Content generated",
		zap.String("category", string(req.Category)),
		zap.String("emotion", string(req.Emotion)),
		zap.String("timeframe", string(req.Timeframe)),
		zap.Int("affirmations", len(result.Affirmations)),
		zap.Int("action_steps", len(result.ActionSteps)),
	)

	return result
}

// buildAffirmations: категорийные шаблоны с легкой подстановкой, персональные
// аффирмации из подсказок запроса и две аффирмации, синтезированные из
// заголовка мечты. Персональные и заголовочные важнее шаблонных, поэтому место
// под них резервируется до усечения. Итог ограничен шестью.
func (g *Generator) buildAffirmations(req models.ContentRequest, t categoryTemplates) []string {
	personal := personalizedAffirmations(req.Personalization)

	var fromTitle []string
	title := strings.TrimSpace(req.Title)
	if title != "" {
		fromTitle = []string{
			fmt.Sprintf("I am manifesting %s with ease", title),
			fmt.Sprintf("%s is already on its way to me", title),
		}
	}

	budget := models.MaxAffirmations - len(personal) - len(fromTitle)
	if budget < 0 {
		budget = 0
	}

	affirmations := make([]string, 0, models.MaxAffirmations)

	// Подстановка: общий эпитет заменяется словом из описания мечты, если нашлось.
	specific := dreamSpecificTerm(req.Description)
	for _, a := range capList(t.affirmations, budget) {
		if specific != "" {
			a = strings.Replace(a, "successful", specific, 1)
		}
		affirmations = append(affirmations, a)
	}

	affirmations = append(affirmations, personal...)
	affirmations = append(affirmations, fromTitle...)

	return capList(affirmations, models.MaxAffirmations)
}

// personalizedAffirmations превращает подсказки персонализации в аффирмации:
// первая ценность пользователя и факт прошлых успехов. Шаблонные тексты и так
// написаны гендерно-нейтрально, поэтому подсказка GenderNeutral выполняется
// для любого выхода генератора.
func personalizedAffirmations(p *models.ContentPersonalization) []string {
	if p == nil {
		return nil
	}

	out := make([]string, 0, 2)
	if len(p.Values) > 0 {
		out = append(out, fmt.Sprintf("My commitment to %s guides every choice I make", p.Values[0]))
	}
	if len(p.PastSuccesses) > 0 {
		out = append(out, "I have succeeded before and I am succeeding again")
	}
	return out
}

// buildQuotes выбирает цитаты по суб-теме, выведенной из эмоции запроса.
// Неотображенная эмоция получает первую суб-тему категории.
func (g *Generator) buildQuotes(req models.ContentRequest, t categoryTemplates) []string {
	subTheme, ok := emotionSubThemes[req.Emotion]
	if !ok || len(t.quotes[subTheme]) == 0 {
		subTheme = t.subThemeOrder[0]
	}

	quotes := make([]string, 0, models.MaxQuotes)
	quotes = append(quotes, t.quotes[subTheme]...)

	// Добираем из остальных суб-тем, если в выбранной меньше лимита.
	for _, theme := range t.subThemeOrder {
		if len(quotes) >= models.MaxQuotes {
			break
		}
		if theme == subTheme {
			continue
		}
		quotes = append(quotes, t.quotes[theme]...)
	}

	return capList(quotes, models.MaxQuotes)
}

// truncateByTimeframe: ближний таймфрейм дает меньше, но сфокусированнее шагов.
// Обратная зависимость намеренная: на короткой дистанции длинный список вреден.
func truncateByTimeframe(steps []string, tf models.TimeframeBucket) []string {
	switch tf {
	case models.TimeframeImmediate:
		return capList(steps, 3)
	case models.TimeframeShort, models.TimeframeMedium:
		return capList(steps, 5)
	default:
		return capList(steps, models.MaxActionSteps)
	}
}

// truncateMilestones: длинный таймфрейм сохраняет полную дорожную карту,
// короткий оставляет только первые вехи.
func truncateMilestones(milestones []string, tf models.TimeframeBucket) []string {
	switch tf {
	case models.TimeframeImmediate:
		return capList(milestones, 1)
	case models.TimeframeShort:
		return capList(milestones, 2)
	case models.TimeframeMedium:
		return capList(milestones, 4)
	default:
		return capList(milestones, models.MaxMilestones)
	}
}

// dreamSpecificTerm ищет в описании характерное слово для подстановки
// в шаблонные аффирмации. Пусто - подстановки не будет.
func dreamSpecificTerm(description string) string {
	desc := strings.ToLower(description)
	for _, term := range []string{"revolutionary", "thriving", "profitable", "creative", "mindful", "adventurous"} {
		if strings.Contains(desc, term) {
			return term
		}
	}
	return ""
}

func capList(list []string, max int) []string {
	if len(list) <= max {
		out := make([]string, len(list))
		copy(out, list)
		return out
	}
	out := make([]string, max)
	copy(out, list[:max])
	return out
}
