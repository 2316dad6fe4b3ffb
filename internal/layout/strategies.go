package layout

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"manifest-server/internal/models"
)

const goldenRatio = 1.618

// masonryMultipliers - фиксированный цикл множителей высоты для визуального ритма.
var masonryMultipliers = []float64{1.0, 1.35, 0.85, 1.2, 0.95}

// newElement материализует PartialElement в позиционированный элемент.
func newElement(p models.PartialElement, x, y, w, h float64) models.LayoutElement {
	return models.LayoutElement{
		ID:           uuid.NewString(),
		Kind:         p.Kind,
		X:            x,
		Y:            y,
		Width:        w,
		Height:       h,
		Opacity:      1.0,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		LayoutWeight: p.LayoutWeight,
		VisualWeight: p.VisualWeight,
	}
}

// placeGoldenRatio делит холст золотым сечением: главный прямоугольник под
// hero-элемент, вторичный справа (вес ~0.618), остальные элементы уложены
// полосами убывающего веса внизу.
func placeGoldenRatio(tpl models.LayoutTemplate, parts []models.PartialElement, _ *rand.Rand) []models.LayoutElement {
	m, gap := tpl.Spacing.Margin, tpl.Spacing.Gap
	innerW := tpl.Width - 2*m
	innerH := tpl.Height - 2*m

	elements := make([]models.LayoutElement, 0, len(parts))

	primaryW := innerW / goldenRatio
	topH := innerH / goldenRatio
	elements = append(elements, newElement(parts[0], m, m, primaryW-gap/2, topH))

	if len(parts) > 1 {
		secondaryX := m + primaryW + gap/2
		secondaryW := innerW - primaryW - gap
		elements = append(elements, newElement(parts[1], secondaryX, m, secondaryW, topH/goldenRatio))
	}

	if len(parts) < 3 {
		return elements
	}
	rest := parts[2:]

	bandTop := m + topH + gap
	bandArea := innerH - topH - gap - gap*float64(len(rest)-1)

	// Полосы убывающего веса: высота каждой следующей чуть меньше предыдущей.
	factors := make([]float64, len(rest))
	total := 0.0
	for i := range rest {
		f := 1.0 - 0.12*float64(i)
		if f < 0.4 {
			f = 0.4
		}
		factors[i] = f
		total += f
	}

	y := bandTop
	for i, p := range rest {
		h := bandArea * factors[i] / total
		elements = append(elements, newElement(p, m, y, innerW, h))
		y += h + gap
	}
	return elements
}

// placeMasonry - классическая кладка: фиксированная минимальная ширина колонки,
// каждый элемент падает в текущую самую короткую колонку.
func placeMasonry(tpl models.LayoutTemplate, parts []models.PartialElement, _ *rand.Rand) []models.LayoutElement {
	m, gap := tpl.Spacing.Margin, tpl.Spacing.Gap
	innerW := tpl.Width - 2*m
	innerH := tpl.Height - 2*m

	const minColumnWidth = 300.0
	cols := int(innerW / minColumnWidth)
	if cols < 1 {
		cols = 1
	}
	if cols > len(parts) {
		cols = len(parts)
	}
	colW := (innerW - gap*float64(cols-1)) / float64(cols)

	rows := (len(parts) + cols - 1) / cols
	// Базовая высота подобрана так, чтобы худшая колонка (максимальный
	// множитель цикла в каждом ряду) не вышла за нижнюю кромку холста.
	baseH := (innerH - float64(rows)*gap) / (1.4 * float64(rows))

	colHeights := make([]float64, cols)
	elements := make([]models.LayoutElement, 0, len(parts))
	for i, p := range parts {
		shortest := 0
		for c := 1; c < cols; c++ {
			if colHeights[c] < colHeights[shortest] {
				shortest = c
			}
		}
		h := baseH * masonryMultipliers[i%len(masonryMultipliers)]
		x := m + float64(shortest)*(colW+gap)
		y := m + colHeights[shortest]
		elements = append(elements, newElement(p, x, y, colW, h))
		colHeights[shortest] += h + gap
	}
	return elements
}

// placeAsymmetric: hero занимает ~60%x50% холста, второй элемент -
// комплементарную полосу справа, остальные заполняют сетку в нижней зоне.
func placeAsymmetric(tpl models.LayoutTemplate, parts []models.PartialElement, _ *rand.Rand) []models.LayoutElement {
	m, gap := tpl.Spacing.Margin, tpl.Spacing.Gap
	innerW := tpl.Width - 2*m
	innerH := tpl.Height - 2*m

	elements := make([]models.LayoutElement, 0, len(parts))

	heroW := innerW*0.6 - gap/2
	heroH := innerH * 0.5
	elements = append(elements, newElement(parts[0], m, m, heroW, heroH))

	if len(parts) > 1 {
		stripX := m + innerW*0.6 + gap/2
		elements = append(elements, newElement(parts[1], stripX, m, innerW*0.4-gap/2, heroH))
	}

	if len(parts) < 3 {
		return elements
	}
	rest := parts[2:]

	gridTop := m + heroH + gap
	gridH := innerH - heroH - gap
	cols := int(math.Ceil(math.Sqrt(float64(len(rest)))))
	rows := (len(rest) + cols - 1) / cols
	cellW := (innerW - gap*float64(cols-1)) / float64(cols)
	cellH := (gridH - gap*float64(rows-1)) / float64(rows)

	for i, p := range rest {
		col := i % cols
		row := i / cols
		x := m + float64(col)*(cellW+gap)
		y := gridTop + float64(row)*(cellH+gap)
		elements = append(elements, newElement(p, x, y, cellW, cellH))
	}
	return elements
}

// placeFlowing: первый элемент в центре, остальные расходятся по трехлучевой
// угловой спирали с нарастающим радиусом и небольшим случайным наклоном.
func placeFlowing(tpl models.LayoutTemplate, parts []models.PartialElement, rng *rand.Rand) []models.LayoutElement {
	m := tpl.Spacing.Margin
	cx := tpl.Width / 2
	cy := tpl.Height / 2

	heroW := (tpl.Width - 2*m) * 0.4
	heroH := (tpl.Height - 2*m) * 0.32

	elements := make([]models.LayoutElement, 0, len(parts))
	elements = append(elements, newElement(parts[0], cx-heroW/2, cy-heroH/2, heroW, heroH))

	rest := parts[1:]
	baseRadius := math.Min(tpl.Width, tpl.Height) * 0.22
	radiusStep := math.Min(tpl.Width, tpl.Height) * 0.055

	for i, p := range rest {
		angle := float64(i) * (2 * math.Pi / 3)
		radius := baseRadius + float64(i)*radiusStep
		scale := 0.65 - 0.04*float64(i)
		if scale < 0.35 {
			scale = 0.35
		}
		w := heroW * scale
		h := heroH * scale

		x := cx + radius*math.Cos(angle) - w/2
		y := cy + radius*math.Sin(angle) - h/2
		x = clampCoord(x, m, tpl.Width-m-w)
		y = clampCoord(y, m, tpl.Height-m-h)

		el := newElement(p, x, y, w, h)
		el.Rotation = (rng.Float64() - 0.5) * 16 // +-8 градусов
		elements = append(elements, el)
	}
	return elements
}

// placeCentered: hero по центру со сдвигом вверх, остальные симметрично
// вокруг него на фиксированном радиусе.
func placeCentered(tpl models.LayoutTemplate, parts []models.PartialElement, _ *rand.Rand) []models.LayoutElement {
	m := tpl.Spacing.Margin
	cx := tpl.Width / 2
	cy := tpl.Height/2 - tpl.Height*0.06

	heroW := (tpl.Width - 2*m) * 0.38
	heroH := (tpl.Height - 2*m) * 0.3

	elements := make([]models.LayoutElement, 0, len(parts))
	elements = append(elements, newElement(parts[0], cx-heroW/2, cy-heroH/2, heroW, heroH))

	rest := parts[1:]
	if len(rest) == 0 {
		return elements
	}

	radius := math.Min(tpl.Width, tpl.Height) * 0.34
	w := heroW * 0.55
	h := heroH * 0.55
	for i, p := range rest {
		angle := -math.Pi/2 + float64(i)*(2*math.Pi/float64(len(rest)))
		x := cx + radius*math.Cos(angle) - w/2
		y := cy + radius*math.Sin(angle) - h/2
		x = clampCoord(x, m, tpl.Width-m-w)
		y = clampCoord(y, m, tpl.Height-m-h)
		elements = append(elements, newElement(p, x, y, w, h))
	}
	return elements
}

// placeGrid: сетка ~n x n, первый элемент увеличен в 1.3 раза для акцента,
// у остальных небольшая случайная вариация размера.
func placeGrid(tpl models.LayoutTemplate, parts []models.PartialElement, rng *rand.Rand) []models.LayoutElement {
	m, gap := tpl.Spacing.Margin, tpl.Spacing.Gap
	innerW := tpl.Width - 2*m
	innerH := tpl.Height - 2*m

	cols := int(math.Ceil(math.Sqrt(float64(len(parts)))))
	rows := (len(parts) + cols - 1) / cols
	cellW := (innerW - gap*float64(cols-1)) / float64(cols)
	cellH := (innerH - gap*float64(rows-1)) / float64(rows)

	elements := make([]models.LayoutElement, 0, len(parts))
	for i, p := range parts {
		col := i % cols
		row := i / cols
		cellX := m + float64(col)*(cellW+gap)
		cellY := m + float64(row)*(cellH+gap)

		w, h := cellW, cellH
		if i == 0 {
			// Акцент ограничен зазором, чтобы увеличение не наезжало на соседей.
			w = math.Min(cellW*1.3, cellW+gap)
			h = math.Min(cellH*1.3, cellH+gap)
		} else {
			variation := 0.85 + rng.Float64()*0.15
			w = cellW * variation
			h = cellH * variation
		}

		x := clampCoord(cellX+(cellW-w)/2, m, tpl.Width-m-w)
		y := clampCoord(cellY+(cellH-h)/2, m, tpl.Height-m-h)
		elements = append(elements, newElement(p, x, y, w, h))
	}
	return elements
}

func clampCoord(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
