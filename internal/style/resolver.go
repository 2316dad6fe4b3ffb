package style

import (
	"go.uber.org/zap"

	"manifest-server/internal/models"
)

// bundle - связка типографики, палитры и визуальных эффектов для эмоции.
type bundle struct {
	fontFamily   string
	fontWeight   string
	baseFontSize float64 // для текста; вторичный текст масштабируется ниже
	palette      []string
	gradient     string // непустой градиент означает градиентную заливку текста
	shadow       string
	filter       string
}

// Таблица эмоция -> связка. Палитры согласованы с палитрами анализатора,
// чтобы цвет доски не спорил с цветом подобранных изображений.
var emotionBundles = map[models.Emotion]bundle{
	models.EmotionAmbition: {
		fontFamily:   "Space Grotesk",
		fontWeight:   "700",
		baseFontSize: 44,
		palette:      []string{"#1e3a8a", "#2563eb", "#f59e0b"},
		gradient:     "linear-gradient(120deg, #2563eb, #7c3aed)",
		shadow:       "0 4px 12px rgba(30,58,138,0.35)",
	},
	models.EmotionDetermination: {
		fontFamily:   "Inter",
		fontWeight:   "800",
		baseFontSize: 42,
		palette:      []string{"#b91c1c", "#7f1d1d", "#f97316"},
		shadow:       "0 3px 10px rgba(127,29,29,0.4)",
	},
	models.EmotionExcitement: {
		fontFamily:   "Poppins",
		fontWeight:   "700",
		baseFontSize: 46,
		palette:      []string{"#db2777", "#f43f5e", "#fbbf24"},
		gradient:     "linear-gradient(110deg, #f43f5e, #fbbf24)",
	},
	models.EmotionJoy: {
		fontFamily:   "Nunito",
		fontWeight:   "700",
		baseFontSize: 44,
		palette:      []string{"#f59e0b", "#fbbf24", "#fde68a"},
		filter:       "brightness(1.05)",
	},
	models.EmotionSerenity: {
		fontFamily:   "Cormorant Garamond",
		fontWeight:   "400",
		baseFontSize: 40,
		palette:      []string{"#0d9488", "#5eead4", "#e0f2f1"},
	},
	models.EmotionLove: {
		fontFamily:   "Dancing Script",
		fontWeight:   "600",
		baseFontSize: 48,
		palette:      []string{"#be185d", "#f472b6", "#fce7f3"},
		gradient:     "linear-gradient(135deg, #be185d, #f472b6)",
	},
	models.EmotionConfidence: {
		fontFamily:   "Playfair Display",
		fontWeight:   "700",
		baseFontSize: 44,
		palette:      []string{"#7c3aed", "#4c1d95", "#c4b5fd"},
		shadow:       "0 4px 14px rgba(76,29,149,0.35)",
	},
	models.EmotionGratitude: {
		fontFamily:   "Lato",
		fontWeight:   "400",
		baseFontSize: 40,
		palette:      []string{"#92400e", "#d97706", "#fef3c7"},
		filter:       "sepia(0.15)",
	},
	models.EmotionHope: {
		fontFamily:   "Inter",
		fontWeight:   "600",
		baseFontSize: 42,
		palette:      []string{"#0284c7", "#38bdf8", "#e0f2fe"},
	},
}

// Связка по умолчанию для неотображенных эмоций: нейтральная типографика.
var defaultBundle = bundle{
	fontFamily:   "Inter",
	fontWeight:   "500",
	baseFontSize: 40,
	palette:      []string{"#1f2937", "#6b7280", "#d1d5db"},
}

// Resolver вычисляет стилевые поля элементов по эмоции и ее интенсивности.
// Чистое синхронное вычисление, состояния нет.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver создает резолвер стилей.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger.Named("StyleResolver")}
}

// StyleFor возвращает конкретные стилевые значения для элемента.
// Размер шрифта масштабируется интенсивностью: база x intensity.
// Градиентные связки дополнительно просят рендерер закрасить текст
// градиентом - это подсказка, а не вычисленный пиксель.
func (r *Resolver) StyleFor(kind models.ElementKind, emotion models.Emotion, intensity float64) models.ElementStyle {
	b, ok := emotionBundles[emotion]
	if !ok {
		r.logger.Debug("Unmapped emotion, using default style bundle", zap.String("emotion", string(emotion)))
		b = defaultBundle
	}

	intensity = clamp01(intensity)

	st := models.ElementStyle{
		Color:  b.palette[0],
		Shadow: b.shadow,
		Filter: b.filter,
	}

	switch kind {
	case models.ElementText:
		st.FontFamily = b.fontFamily
		st.FontWeight = b.fontWeight
		st.FontSize = b.baseFontSize * intensity
	case models.ElementQuote:
		st.FontFamily = b.fontFamily
		st.FontWeight = "400"
		st.FontSize = b.baseFontSize * 0.7 * intensity
	case models.ElementProgress, models.ElementShape, models.ElementIcon:
		if len(b.palette) > 1 {
			st.Color = b.palette[1]
		}
	case models.ElementImage:
		// Изображениям цвет не назначается, остаются эффекты связки.
		st.Color = ""
	}

	if b.gradient != "" && (kind == models.ElementText || kind == models.ElementQuote) {
		st.Gradient = b.gradient
		st.UseGradientText = true
	}
	return st
}

// Palette возвращает палитру связки эмоции (или палитру по умолчанию).
func (r *Resolver) Palette(emotion models.Emotion) []string {
	if b, ok := emotionBundles[emotion]; ok {
		return b.palette
	}
	return defaultBundle.palette
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
