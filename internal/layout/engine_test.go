package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"manifest-server/internal/models"
)

func newTestEngine() *Engine {
	return NewEngine(zap.NewNop())
}

// makeParts создает n элементов с убывающим приоритетом.
func makeParts(n int) []models.PartialElement {
	parts := make([]models.PartialElement, 0, n)
	for i := 0; i < n; i++ {
		kind := models.ElementImage
		if i%3 == 1 {
			kind = models.ElementText
		}
		parts = append(parts, models.PartialElement{
			Kind:         kind,
			Content:      fmt.Sprintf("element-%d", i),
			LayoutWeight: 1.0 - 0.05*float64(i),
			VisualWeight: 1.0 - 0.04*float64(i),
		})
	}
	return parts
}

// geometry сравнивает раскладки без учета сгенерированных ID.
func geometry(elements []models.LayoutElement) [][5]float64 {
	out := make([][5]float64, len(elements))
	for i, el := range elements {
		out[i] = [5]float64{el.X, el.Y, el.Width, el.Height, el.Rotation}
	}
	return out
}

// После разрешения пересечений каждая стратегия каталога держит элементы внутри холста.
func TestComputeContainmentAllStrategies(t *testing.T) {
	engine := newTestEngine()

	for _, tpl := range Catalog() {
		t.Run(tpl.Name, func(t *testing.T) {
			elements := engine.Compute(tpl, makeParts(tpl.MaxElements), Options{
				ResolveOverlaps: true,
				ColorHarmony:    true,
				Seed:            42,
			})

			require.NotEmpty(t, elements)
			assert.NoError(t, ValidateLayout(tpl, elements))
		})
	}
}

// Одного-двух элементов достаточно любой стратегии: стратегии с отдельной
// зоной под hero и вторичный элемент не должны падать на коротком входе.
func TestComputeFewElementsAllStrategies(t *testing.T) {
	engine := newTestEngine()

	for _, tpl := range Catalog() {
		for _, count := range []int{1, 2} {
			t.Run(fmt.Sprintf("%s/%d", tpl.Name, count), func(t *testing.T) {
				elements := engine.Compute(tpl, makeParts(count), Options{
					ResolveOverlaps: true,
					Seed:            5,
				})

				require.Len(t, elements, count)
				assert.NoError(t, ValidateLayout(tpl, elements))
			})
		}
	}
}

// Одинаковое зерно дает идентичную геометрию, разное - другую для стратегий со случайностью.
func TestComputeSeededDeterminism(t *testing.T) {
	engine := newTestEngine()
	tpl, err := TemplateByName("sunrise_flow") // flowing использует случайный наклон
	require.NoError(t, err)

	parts := makeParts(8)
	first := engine.Compute(tpl, parts, Options{Seed: 7})
	second := engine.Compute(tpl, parts, Options{Seed: 7})
	other := engine.Compute(tpl, parts, Options{Seed: 8})

	assert.Equal(t, geometry(first), geometry(second), "same seed must give identical geometry")
	assert.NotEqual(t, geometry(first), geometry(other), "different seed should vary rotation jitter")
}

// Неизвестная стратегия выбирается адаптивно по числу элементов и стилю шаблона.
func TestComputeAdaptiveFallback(t *testing.T) {
	engine := newTestEngine()

	base, err := TemplateByName("momentum")
	require.NoError(t, err)

	cases := []struct {
		name     string
		style    string
		count    int
		expected models.LayoutStrategy
	}{
		{"few elements use centered", "modern", 3, models.StrategyCentered},
		{"luxury mid-size uses golden ratio", "luxury", 5, models.StrategyGoldenRatio},
		{"pinterest uses masonry", "pinterest", 9, models.StrategyMasonry},
		{"default uses asymmetric", "modern", 9, models.StrategyAsymmetric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unknown := base
			unknown.Style = tc.style
			unknown.Strategy = models.LayoutStrategy("does-not-exist")

			reference := base
			reference.Style = tc.style
			reference.Strategy = tc.expected

			parts := makeParts(tc.count)
			got := engine.Compute(unknown, parts, Options{Seed: 3})
			want := engine.Compute(reference, parts, Options{Seed: 3})

			assert.Equal(t, geometry(want), geometry(got))
		})
	}
}

// Явный порядок приоритета перекрывает сортировку по LayoutWeight.
func TestComputeExplicitPriorityOrder(t *testing.T) {
	engine := newTestEngine()
	tpl, err := TemplateByName("luxury_gold")
	require.NoError(t, err)

	parts := makeParts(4)
	elements := engine.Compute(tpl, parts, Options{PriorityOrder: []int{2, 0, 3, 1}, Seed: 1})

	require.Len(t, elements, 4)
	assert.Equal(t, "element-2", elements[0].Content, "hero slot goes to the first explicit index")
	assert.Equal(t, "element-0", elements[1].Content)
}

// Цветовая гармония раскрашивает текст без цвета по кругу из схемы шаблона.
func TestComputeColorHarmony(t *testing.T) {
	engine := newTestEngine()
	tpl, err := TemplateByName("focus_grid")
	require.NoError(t, err)

	parts := []models.PartialElement{
		{Kind: models.ElementText, Content: "a", LayoutWeight: 0.9, VisualWeight: 0.9},
		{Kind: models.ElementImage, ImageURL: "http://x/1.jpg", LayoutWeight: 0.8, VisualWeight: 0.8},
		{Kind: models.ElementQuote, Content: "b", LayoutWeight: 0.7, VisualWeight: 0.7},
	}

	elements := engine.Compute(tpl, parts, Options{ColorHarmony: true, Seed: 1})

	require.Len(t, elements, 3)
	assert.Equal(t, tpl.ColorScheme[0], elements[0].Style.Color)
	assert.Empty(t, elements[1].Style.Color, "images are not recolored")
	assert.Equal(t, tpl.ColorScheme[1], elements[2].Style.Color)
}

// Z-порядок пропорционален визуальному весу.
func TestComputeZOrder(t *testing.T) {
	engine := newTestEngine()
	tpl, err := TemplateByName("momentum")
	require.NoError(t, err)

	elements := engine.Compute(tpl, makeParts(5), Options{Seed: 1})
	require.Len(t, elements, 5)
	for i := 1; i < len(elements); i++ {
		assert.GreaterOrEqual(t, elements[i-1].ZIndex, elements[i].ZIndex,
			"higher visual weight should be stacked on top")
	}
}

// Пересечение разрешается сдвигом позднего элемента вниз на высоту раннего плюс зазор.
func TestResolveOverlapsShiftsDown(t *testing.T) {
	tpl, err := TemplateByName("momentum")
	require.NoError(t, err)

	elements := []models.LayoutElement{
		{ID: "a", X: 100, Y: 100, Width: 400, Height: 300},
		{ID: "b", X: 200, Y: 150, Width: 400, Height: 200},
	}

	resolveOverlaps(tpl, elements)

	assert.InDelta(t, 100+300+tpl.Spacing.Gap, elements[1].Y, 1e-9)
	assert.False(t, overlaps(elements[0], elements[1]))
}

// MaxElements шаблона усекает вход.
func TestComputeRespectsMaxElements(t *testing.T) {
	engine := newTestEngine()
	tpl, err := TemplateByName("serene_minimal")
	require.NoError(t, err)

	elements := engine.Compute(tpl, makeParts(tpl.MaxElements+5), Options{Seed: 1})
	assert.Len(t, elements, tpl.MaxElements)
}

// Каталог покрывает все шесть стратегий, неизвестное имя дает ошибку.
func TestTemplateCatalog(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 6)

	seen := map[models.LayoutStrategy]bool{}
	for _, tpl := range catalog {
		seen[tpl.Strategy] = true
		assert.Greater(t, tpl.Width, 0.0)
		assert.Greater(t, tpl.Height, 0.0)
		assert.GreaterOrEqual(t, len(tpl.ColorScheme), 3)
		assert.LessOrEqual(t, len(tpl.ColorScheme), 5)
	}
	assert.Len(t, seen, 6, "catalog must cover every named strategy")

	_, err := TemplateByName("momentum")
	assert.NoError(t, err)

	_, err = TemplateByName("no-such-template")
	assert.ErrorIs(t, err, models.ErrUnknownTemplate)
}
