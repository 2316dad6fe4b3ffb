package models

import "time"

// Category - закрытое перечисление категорий мечты.
// Неизвестные значения извне сводятся к DefaultCategory, внутренние вызовы
// оперируют только этими константами.
type Category string

const (
	CategoryCareerBusiness     Category = "career_business"
	CategoryHealthFitness      Category = "health_fitness"
	CategoryRelationships      Category = "relationships"
	CategoryFinancialFreedom   Category = "financial_freedom"
	CategoryTravelAdventure    Category = "travel_adventure"
	CategoryEducationGrowth    Category = "education_growth"
	CategoryCreativityArts     Category = "creativity_arts"
	CategorySpiritualWellbeing Category = "spiritual_wellbeing"
	// CategoryPersonalGrowth - категория по умолчанию, когда текст не совпал ни с чем.
	CategoryPersonalGrowth Category = "personal_growth"
)

// DefaultCategory используется всеми потребителями, когда анализ не нашел категорий.
const DefaultCategory = CategoryPersonalGrowth

// Emotion - закрытое перечисление распознаваемых эмоций.
type Emotion string

const (
	EmotionAmbition      Emotion = "ambition"
	EmotionDetermination Emotion = "determination"
	EmotionExcitement    Emotion = "excitement"
	EmotionJoy           Emotion = "joy"
	EmotionSerenity      Emotion = "serenity"
	EmotionLove          Emotion = "love"
	EmotionConfidence    Emotion = "confidence"
	EmotionGratitude     Emotion = "gratitude"
	// EmotionHope - эмоция по умолчанию: подставляется при нулевом совпадении,
	// чтобы список эмоций никогда не был пустым.
	EmotionHope Emotion = "hope"
)

// DefaultEmotion гарантирует непустой emotionalTone.emotions после анализа.
const DefaultEmotion = EmotionHope

// Sentiment - знак эмоциональной окраски текста.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// IntentType - тип намерения, распознанный в тексте мечты.
type IntentType string

const (
	IntentAchievement    IntentType = "achievement"
	IntentTransformation IntentType = "transformation"
	IntentAcquisition    IntentType = "acquisition"
	IntentRelationship   IntentType = "relationship"
	IntentExperience     IntentType = "experience"
)

// TimeframeBucket - грубая корзина срочности, выведенная из временных выражений.
type TimeframeBucket string

const (
	TimeframeImmediate TimeframeBucket = "immediate"
	TimeframeShort     TimeframeBucket = "short_term"
	TimeframeMedium    TimeframeBucket = "medium_term"
	TimeframeLong      TimeframeBucket = "long_term"
)

// EmotionScore - эмоция с вычисленной силой совпадения.
type EmotionScore struct {
	Emotion   Emotion `json:"emotion"`
	Intensity float64 `json:"intensity"` // [0,1]
}

// EmotionalTone - эмоциональная окраска текста мечты.
type EmotionalTone struct {
	Sentiment Sentiment      `json:"sentiment"`
	Intensity float64        `json:"intensity"` // [0,1]
	Emotions  []EmotionScore `json:"emotions"`  // отсортированы по убыванию Intensity, не пустой
}

// DominantEmotion возвращает самую сильную эмоцию (или эмоцию по умолчанию).
func (t EmotionalTone) DominantEmotion() Emotion {
	if len(t.Emotions) == 0 {
		return DefaultEmotion
	}
	return t.Emotions[0].Emotion
}

// Entities - фрагменты текста, извлеченные паттерн-матчингом.
// Любой из списков может быть пустым.
type Entities struct {
	Goals       []string `json:"goals"`
	Timeframes  []string `json:"timeframes"`
	Obstacles   []string `json:"obstacles"`
	Motivations []string `json:"motivations"`
	Values      []string `json:"values"`
}

// Intent - распознанное намерение и его числовые характеристики.
type Intent struct {
	Type        IntentType `json:"type"`
	Urgency     float64    `json:"urgency"`     // [0,1]
	Specificity float64    `json:"specificity"` // [0,1]
	Feasibility float64    `json:"feasibility"` // [0.1,1]
}

// TimeframeBucketFromUrgency переводит срочность в корзину таймфрейма
// для генератора контента.
func (i Intent) TimeframeBucketFromUrgency() TimeframeBucket {
	switch {
	case i.Urgency >= 0.9:
		return TimeframeImmediate
	case i.Urgency >= 0.7:
		return TimeframeShort
	case i.Urgency >= 0.4:
		return TimeframeMedium
	default:
		return TimeframeLong
	}
}

// Personalization - агрегированная история анализов пользователя.
// Единственное состояние подсистемы, живущее дольше одного вызова.
type Personalization struct {
	PreviousCategories []Category `json:"previousCategories"`
	SuccessfulPatterns []string   `json:"successfulPatterns"`
	PreferredStyles    []string   `json:"preferredStyles"`
	PreferredColors    []string   `json:"preferredColors"`
}

// WeightedKeyword - ключевое слово с весом и категорией-источником.
type WeightedKeyword struct {
	Keyword  string   `json:"keyword"`
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
}

// Suggestions - подсказки для следующих этапов пайплайна.
type Suggestions struct {
	Keywords       []WeightedKeyword `json:"keywords"`
	ImageQueries   []string          `json:"imageQueries"` // не пустой после анализа
	Affirmations   []string          `json:"affirmations"`
	VisualElements []string          `json:"visualElements"`
}

// DreamAnalysis - результат работы анализатора текста.
// Только для чтения: следующие этапы пайплайна его не изменяют.
type DreamAnalysis struct {
	PrimaryCategories []Category      `json:"primaryCategories"` // не пустой, по убыванию score
	EmotionalTone     EmotionalTone   `json:"emotionalTone"`
	Entities          Entities        `json:"entities"`
	Intent            Intent          `json:"intent"`
	Personalization   Personalization `json:"personalization"`
	Suggestions       Suggestions     `json:"suggestions"`
}

// PrimaryCategory возвращает самую сильную категорию (или категорию по умолчанию).
func (a *DreamAnalysis) PrimaryCategory() Category {
	if len(a.PrimaryCategories) == 0 {
		return DefaultCategory
	}
	return a.PrimaryCategories[0]
}

// AnalysisRecord - строка истории анализов пользователя в хранилище.
type AnalysisRecord struct {
	ID         int64      `db:"id" json:"id"`
	UserID     string     `db:"user_id" json:"userId"`
	Categories []Category `db:"categories" json:"categories"`
	Emotions   []Emotion  `db:"emotions" json:"emotions"`
	Styles     []string   `db:"styles" json:"styles"`
	Colors     []string   `db:"colors" json:"colors"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}
