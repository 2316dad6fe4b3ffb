package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"manifest-server/internal/models"
)

func newTestResolver() *Resolver {
	return NewResolver(zap.NewNop())
}

// Размер шрифта текста масштабируется интенсивностью эмоции.
func TestStyleForTextScalesWithIntensity(t *testing.T) {
	r := newTestResolver()

	full := r.StyleFor(models.ElementText, models.EmotionAmbition, 1.0)
	half := r.StyleFor(models.ElementText, models.EmotionAmbition, 0.5)

	assert.Equal(t, "Space Grotesk", full.FontFamily)
	assert.Equal(t, "700", full.FontWeight)
	assert.InDelta(t, 44.0, full.FontSize, 1e-9)
	assert.InDelta(t, 22.0, half.FontSize, 1e-9)
	assert.Equal(t, "#1e3a8a", full.Color)
}

// Интенсивность за пределами [0,1] обрезается до границ.
func TestStyleForIntensityClamped(t *testing.T) {
	r := newTestResolver()

	over := r.StyleFor(models.ElementText, models.EmotionHope, 3.0)
	under := r.StyleFor(models.ElementText, models.EmotionHope, -1.0)

	assert.InDelta(t, 42.0, over.FontSize, 1e-9)
	assert.InDelta(t, 0.0, under.FontSize, 1e-9)
}

// Цитата получает облегченное начертание и уменьшенный кегль.
func TestStyleForQuote(t *testing.T) {
	r := newTestResolver()

	st := r.StyleFor(models.ElementQuote, models.EmotionSerenity, 1.0)

	assert.Equal(t, "400", st.FontWeight)
	assert.InDelta(t, 40.0*0.7, st.FontSize, 1e-9)
}

// Градиентные связки помечают текст подсказкой градиентной заливки,
// изображения градиент не получают.
func TestStyleForGradientHint(t *testing.T) {
	r := newTestResolver()

	text := r.StyleFor(models.ElementText, models.EmotionExcitement, 0.9)
	assert.True(t, text.UseGradientText)
	assert.NotEmpty(t, text.Gradient)

	image := r.StyleFor(models.ElementImage, models.EmotionExcitement, 0.9)
	assert.False(t, image.UseGradientText)
	assert.Empty(t, image.Gradient)
	assert.Empty(t, image.Color, "images keep their own colors")
}

// Вторичные элементы берут акцентный цвет палитры.
func TestStyleForAccentElements(t *testing.T) {
	r := newTestResolver()

	progress := r.StyleFor(models.ElementProgress, models.EmotionJoy, 0.8)
	assert.Equal(t, "#fbbf24", progress.Color)

	icon := r.StyleFor(models.ElementIcon, models.EmotionJoy, 0.8)
	assert.Equal(t, "#fbbf24", icon.Color)
}

// Неотображенная эмоция дает нейтральную связку по умолчанию.
func TestStyleForUnknownEmotion(t *testing.T) {
	r := newTestResolver()

	st := r.StyleFor(models.ElementText, models.Emotion("boredom"), 1.0)

	assert.Equal(t, "Inter", st.FontFamily)
	assert.Equal(t, "500", st.FontWeight)
	assert.Equal(t, "#1f2937", st.Color)
	assert.False(t, st.UseGradientText)
}

// Palette возвращает палитру эмоции либо палитру по умолчанию.
func TestPalette(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, []string{"#be185d", "#f472b6", "#fce7f3"}, r.Palette(models.EmotionLove))
	assert.Equal(t, defaultBundle.palette, r.Palette(models.Emotion("nope")))
}
