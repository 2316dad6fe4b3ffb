package analyzer

import (
	"sort"

	"manifest-server/internal/models"
)

// EmotionProfile - статический профиль эмоции: ключевые слова, базовая
// интенсивность, канонические цвета (таблица цветопсихологии) и метка
// стиля изображений. Та же таблица используется агентом поиска изображений
// для расчета эмоционального резонанса и резолвером стилей.
type EmotionProfile struct {
	Keywords      []string
	BaseIntensity float64
	Palette       []string // hex-цвета
	ImageStyle    string
}

// emotionOrder фиксирует порядок обхода профилей для детерминизма.
var emotionOrder = []models.Emotion{
	models.EmotionAmbition,
	models.EmotionDetermination,
	models.EmotionExcitement,
	models.EmotionJoy,
	models.EmotionSerenity,
	models.EmotionLove,
	models.EmotionConfidence,
	models.EmotionGratitude,
}

var emotionProfiles = map[models.Emotion]EmotionProfile{
	models.EmotionAmbition: {
		Keywords:      []string{"achieve", "success", "ambitious", "startup", "launch", "win", "goal", "empire"},
		BaseIntensity: 0.9,
		Palette:       []string{"#1B263B", "#C9A227", "#EE6C4D"},
		ImageStyle:    "bold cinematic",
	},
	models.EmotionDetermination: {
		Keywords:      []string{"determined", "commit", "discipline", "persist", "build", "focus", "grind"},
		BaseIntensity: 0.85,
		Palette:       []string{"#2F3E46", "#CAD2C5", "#E07A5F"},
		ImageStyle:    "gritty documentary",
	},
	models.EmotionExcitement: {
		Keywords:      []string{"excited", "thrilled", "amazing", "revolutionary", "adventure", "new", "incredible"},
		BaseIntensity: 0.8,
		Palette:       []string{"#F94144", "#F8961E", "#F9C74F"},
		ImageStyle:    "vibrant dynamic",
	},
	models.EmotionJoy: {
		Keywords:      []string{"happy", "joy", "fun", "laugh", "celebrate", "smile", "delight"},
		BaseIntensity: 0.75,
		Palette:       []string{"#FFD166", "#EF476F", "#06D6A0"},
		ImageStyle:    "bright candid",
	},
	models.EmotionSerenity: {
		Keywords:      []string{"peace", "calm", "balance", "mindful", "quiet", "serene", "rest"},
		BaseIntensity: 0.6,
		Palette:       []string{"#A8DADC", "#F1FAEE", "#457B9D"},
		ImageStyle:    "soft minimal",
	},
	models.EmotionLove: {
		Keywords:      []string{"love", "family", "partner", "together", "heart", "care", "cherish"},
		BaseIntensity: 0.8,
		Palette:       []string{"#FFB5A7", "#FCD5CE", "#F08080"},
		ImageStyle:    "warm intimate",
	},
	models.EmotionConfidence: {
		Keywords:      []string{"confident", "strong", "capable", "believe", "fearless", "proud"},
		BaseIntensity: 0.8,
		Palette:       []string{"#22223B", "#9A8C98", "#C9ADA7"},
		ImageStyle:    "editorial portrait",
	},
	models.EmotionGratitude: {
		Keywords:      []string{"grateful", "gratitude", "thankful", "blessed", "appreciate"},
		BaseIntensity: 0.65,
		Palette:       []string{"#CB997E", "#DDBEA9", "#FFE8D6"},
		ImageStyle:    "golden hour",
	},
	// Профиль по умолчанию: подставляется при нулевом совпадении.
	models.EmotionHope: {
		Keywords:      []string{"hope", "wish", "someday", "dream"},
		BaseIntensity: 0.5,
		Palette:       []string{"#BDE0FE", "#A2D2FF", "#CDB4DB"},
		ImageStyle:    "airy light",
	},
}

// ProfileFor возвращает профиль эмоции. Неизвестная эмоция (например,
// пришедшая извне строкой) получает профиль эмоции по умолчанию, не панику.
func ProfileFor(emotion models.Emotion) EmotionProfile {
	if p, ok := emotionProfiles[emotion]; ok {
		return p
	}
	return emotionProfiles[models.DefaultEmotion]
}

// detectEmotions считает интенсивность каждой эмоции:
// base × (совпавшие слова / длина списка слов). Эмоции без совпадений
// отбрасываются; при полном нуле подставляется эмоция по умолчанию.
// Результат отсортирован по убыванию интенсивности.
func detectEmotions(text string) []models.EmotionScore {
	var scores []models.EmotionScore
	for _, emotion := range emotionOrder {
		profile := emotionProfiles[emotion]
		matched := 0
		for _, kw := range profile.Keywords {
			if containsWord(text, kw) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		intensity := profile.BaseIntensity * float64(matched) / float64(len(profile.Keywords))
		scores = append(scores, models.EmotionScore{Emotion: emotion, Intensity: clamp01(intensity)})
	}

	if len(scores) == 0 {
		// Гарантия непустого списка эмоций для всех потребителей ниже по пайплайну.
		return []models.EmotionScore{{
			Emotion:   models.DefaultEmotion,
			Intensity: emotionProfiles[models.DefaultEmotion].BaseIntensity,
		}}
	}

	// Стабильная сортировка по убыванию интенсивности: порядок emotionOrder
	// сохраняется при равенстве.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Intensity > scores[j].Intensity
	})
	return scores
}
