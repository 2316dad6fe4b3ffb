package analyzer

import (
	"sort"

	"manifest-server/internal/models"
)

// categoryDef - статическое определение категории: первичные ключевые слова
// плюс именованные семантические кластеры фраз. Фразы весят больше отдельных
// слов, потому что однозначнее указывают на намерение.
type categoryDef struct {
	category models.Category
	// primaryKeywords проверяются вхождением подстроки, +2 за каждое найденное слово.
	primaryKeywords []string
	// clusters - именованные списки фраз, +3 за каждую найденную фразу.
	clusters map[string][]string
	// imageQueries - категорийные шаблонные поисковые запросы.
	imageQueries []string
	// visualElements - имена визуальных элементов для подсказок.
	visualElements []string
	// affirmations - категорийные шаблонные аффирмации.
	affirmations []string
}

// Веса скоринга категорий. Фразы кластеров дороже одиночных слов.
const (
	primaryKeywordScore = 2
	clusterPhraseScore  = 3
)

// categoryDefs - закрытый каталог категорий. Порядок объявления задает
// порядок разрешения ничьих при сортировке по score.
var categoryDefs = []categoryDef{
	{
		category:        models.CategoryCareerBusiness,
		primaryKeywords: []string{"career", "business", "startup", "job", "promotion", "launch", "company", "entrepreneur", "app", "product"},
		clusters: map[string][]string{
			"founding":  {"start a business", "launch my startup", "build a company", "my own business"},
			"building":  {"build an app", "launch an app", "create a product", "ship a product"},
			"ascent":    {"get promoted", "land my dream job", "grow my career", "become a leader"},
			"clientele": {"find clients", "grow revenue", "first customers"},
		},
		imageQueries:   []string{"modern office success", "entrepreneur at work", "city skyline ambition"},
		visualElements: []string{"skyscraper", "laptop", "handshake", "rocket"},
		affirmations: []string{
			"I am building a thriving business",
			"Opportunities for my career find me every day",
			"I lead with vision and confidence",
		},
	},
	{
		category:        models.CategoryHealthFitness,
		primaryKeywords: []string{"health", "fitness", "weight", "run", "gym", "strong", "marathon", "diet", "energy", "workout"},
		clusters: map[string][]string{
			"endurance": {"run a marathon", "finish a triathlon", "train every day"},
			"strength":  {"get in shape", "build muscle", "lose weight", "gain strength"},
			"habits":    {"eat healthier", "sleep better", "quit sugar", "daily exercise"},
		},
		imageQueries:   []string{"sunrise running trail", "healthy lifestyle energy", "athlete determination"},
		visualElements: []string{"running shoes", "mountain trail", "fresh fruit", "finish line"},
		affirmations: []string{
			"My body grows stronger every day",
			"I choose habits that energize me",
			"Health is my foundation",
		},
	},
	{
		category:        models.CategoryRelationships,
		primaryKeywords: []string{"relationship", "family", "partner", "friends", "love", "marriage", "connection", "together"},
		clusters: map[string][]string{
			"romance":   {"find my soulmate", "deepen our relationship", "get married"},
			"family":    {"start a family", "more time with family", "be a better parent"},
			"community": {"make new friends", "build community", "stay connected"},
		},
		imageQueries:   []string{"warm family moments", "couple at sunset", "friends laughing together"},
		visualElements: []string{"holding hands", "family table", "heart", "shared meal"},
		affirmations: []string{
			"I nurture the relationships that matter",
			"Love flows easily into my life",
			"I am surrounded by people who support me",
		},
	},
	{
		category:        models.CategoryFinancialFreedom,
		primaryKeywords: []string{"money", "financial", "savings", "invest", "debt", "wealth", "income", "budget", "salary"},
		clusters: map[string][]string{
			"freedom":  {"financial freedom", "passive income", "retire early"},
			"security": {"pay off debt", "emergency fund", "save for a house"},
			"growth":   {"grow my investments", "double my income", "build wealth"},
		},
		imageQueries:   []string{"abundance growth concept", "calm financial planning", "freedom open road"},
		visualElements: []string{"growing plant", "coins", "open road", "keys"},
		affirmations: []string{
			"Money flows to me through multiple channels",
			"I manage my resources with clarity",
			"I am building lasting financial security",
		},
	},
	{
		category:        models.CategoryTravelAdventure,
		primaryKeywords: []string{"travel", "adventure", "explore", "journey", "world", "trip", "abroad", "countries", "visit"},
		clusters: map[string][]string{
			"wander":    {"travel the world", "see the world", "visit every continent"},
			"immersion": {"live abroad", "learn the culture", "move to another country"},
			"thrill":    {"climb a mountain", "go on an adventure", "hike the trail"},
		},
		imageQueries:   []string{"mountain summit vista", "wanderlust passport map", "tropical coast horizon"},
		visualElements: []string{"compass", "backpack", "airplane window", "mountain peak"},
		affirmations: []string{
			"The world opens itself to me",
			"Every journey enriches who I am",
			"I explore with curiosity and courage",
		},
	},
	{
		category:        models.CategoryEducationGrowth,
		primaryKeywords: []string{"learn", "study", "degree", "course", "skill", "knowledge", "education", "language", "master"},
		clusters: map[string][]string{
			"formal":  {"finish my degree", "get certified", "go back to school"},
			"skill":   {"learn a language", "master a skill", "learn to code"},
			"reading": {"read more books", "study every day"},
		},
		imageQueries:   []string{"quiet library focus", "open book morning light", "graduation achievement"},
		visualElements: []string{"stack of books", "graduation cap", "notebook", "lightbulb"},
		affirmations: []string{
			"I absorb knowledge with ease",
			"Every day I grow more capable",
			"Learning is my superpower",
		},
	},
	{
		category:        models.CategoryCreativityArts,
		primaryKeywords: []string{"create", "art", "music", "write", "paint", "design", "creative", "novel", "album", "craft"},
		clusters: map[string][]string{
			"authoring":   {"write a book", "finish my novel", "publish my writing"},
			"performance": {"record an album", "play on stage", "learn an instrument"},
			"visual":      {"paint every day", "open my exhibition", "design my collection"},
		},
		imageQueries:   []string{"artist studio light", "creative workspace inspiration", "hands making art"},
		visualElements: []string{"paintbrush", "blank canvas", "guitar", "typewriter"},
		affirmations: []string{
			"My creativity flows without limits",
			"I make space for my art every day",
			"The world needs what I create",
		},
	},
	{
		category:        models.CategorySpiritualWellbeing,
		primaryKeywords: []string{"peace", "meditate", "mindful", "spiritual", "balance", "calm", "gratitude", "soul", "inner"},
		clusters: map[string][]string{
			"practice": {"meditate daily", "practice gratitude", "morning ritual"},
			"balance":  {"find inner peace", "slow down", "work life balance"},
			"presence": {"be more present", "live mindfully"},
		},
		imageQueries:   []string{"serene morning meditation", "calm water stillness", "zen balance stones"},
		visualElements: []string{"lotus", "candle", "still lake", "sunrise"},
		affirmations: []string{
			"I am grounded and at peace",
			"Calm is my natural state",
			"I honor the quiet moments",
		},
	},
}

// defaultCategoryDef - единственный запасной набор для personal_growth.
// Используется, когда текст не совпал ни с одной категорией.
var defaultCategoryDef = categoryDef{
	category:        models.CategoryPersonalGrowth,
	primaryKeywords: []string{"grow", "improve", "better", "goal", "dream", "change", "become"},
	clusters: map[string][]string{
		"betterment": {"become my best self", "improve my life", "personal growth"},
	},
	imageQueries:   []string{"new beginnings sunrise", "path through forest", "open door opportunity"},
	visualElements: []string{"open door", "path", "sprout", "horizon"},
	affirmations: []string{
		"I grow into the person I want to be",
		"Every step forward counts",
		"I am the author of my own story",
	},
}

// defFor возвращает определение категории или запасной personal_growth набор.
func defFor(cat models.Category) categoryDef {
	for _, def := range categoryDefs {
		if def.category == cat {
			return def
		}
	}
	return defaultCategoryDef
}

// detectCategories считает score каждой категории по тексту и возвращает
// все категории с положительным score, по убыванию. Ничьи разрешаются
// порядком объявления категорий. При нулевом результате возвращается
// категория по умолчанию, чтобы потребители не ветвились на пустом списке.
func detectCategories(text string) []models.Category {
	type scored struct {
		category models.Category
		score    int
		order    int
	}

	var results []scored
	for i, def := range categoryDefs {
		score := 0
		for _, kw := range def.primaryKeywords {
			if containsWord(text, kw) {
				score += primaryKeywordScore
			}
		}
		for _, phrases := range def.clusters {
			for _, phrase := range phrases {
				if containsPhrase(text, phrase) {
					score += clusterPhraseScore
				}
			}
		}
		if score > 0 {
			results = append(results, scored{category: def.category, score: score, order: i})
		}
	}

	if len(results) == 0 {
		return []models.Category{models.DefaultCategory}
	}

	// Сортировка по убыванию score, при равенстве - порядок объявления.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].order < results[j].order
	})

	categories := make([]models.Category, 0, len(results))
	for _, r := range results {
		categories = append(categories, r.category)
	}
	return categories
}
