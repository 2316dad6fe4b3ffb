package analyzer

import (
	"strings"

	"manifest-server/internal/models"
)

// Фиксированные списки слов для лексиконного анализа тональности.
var (
	positiveWords = []string{
		"achieve", "amazing", "beautiful", "best", "better", "confident", "dream",
		"excited", "free", "grateful", "great", "happy", "healthy", "hope", "incredible",
		"inspire", "joy", "launch", "love", "passion", "peace", "proud", "revolutionary",
		"strong", "succeed", "success", "thrive", "win", "wonderful",
	}
	negativeWords = []string{
		"afraid", "anxious", "bad", "broke", "can't", "debt", "difficult", "fail",
		"failure", "fear", "hate", "impossible", "lost", "never", "overwhelmed",
		"problem", "sad", "stress", "struggle", "stuck", "tired", "worry", "worst",
	}
)

// analyzeSentiment считает совпадения с фиксированными списками слов.
// intensity = min(|pos-neg| / wordCount × 10, 1); знак разницы дает sentiment.
func analyzeSentiment(text string) (models.Sentiment, float64) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return models.SentimentNeutral, 0
	}

	pos, neg := 0, 0
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:'\"()")
		for _, p := range positiveWords {
			if w == p {
				pos++
				break
			}
		}
		for _, n := range negativeWords {
			if w == n {
				neg++
				break
			}
		}
	}

	diff := pos - neg
	intensity := clamp01(absFloat(float64(diff)) / float64(len(words)) * 10)

	switch {
	case diff > 0:
		return models.SentimentPositive, intensity
	case diff < 0:
		return models.SentimentNegative, intensity
	default:
		return models.SentimentNeutral, intensity
	}
}

// containsWord проверяет вхождение ключевого слова как подстроки
// (так работал исходный сопоставитель: "launch" находит и "launching").
func containsWord(text, keyword string) bool {
	return strings.Contains(text, keyword)
}

// containsPhrase проверяет вхождение фразы целиком.
func containsPhrase(text, phrase string) bool {
	return strings.Contains(text, phrase)
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

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
