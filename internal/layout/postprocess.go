package layout

import (
	"manifest-server/internal/models"
)

// styleHint - визуальные подсказки, привязанные к стилю шаблона.
type styleHint struct {
	borderRadius float64
	shadow       string
	filter       string
	gradient     string
}

var styleHints = map[string]styleHint{
	"modern": {
		borderRadius: 16,
		shadow:       "0 8px 24px rgba(0,0,0,0.18)",
	},
	"minimal": {
		borderRadius: 4,
	},
	"luxury": {
		borderRadius: 8,
		shadow:       "0 12px 32px rgba(0,0,0,0.35)",
		filter:       "contrast(1.05)",
		gradient:     "linear-gradient(135deg, #d4af37, #f5e6c8)",
	},
	"pinterest": {
		borderRadius: 24,
		shadow:       "0 6px 18px rgba(0,0,0,0.12)",
	},
	"organic": {
		borderRadius: 32,
		filter:       "saturate(1.1)",
	},
}

var defaultStyleHint = styleHint{borderRadius: 12}

// applyStyleHints накладывает стилевые подсказки шаблона на все элементы.
// Градиент получает только текст: для изображений он не имеет смысла.
func applyStyleHints(tpl models.LayoutTemplate, elements []models.LayoutElement) {
	hint, ok := styleHints[tpl.Style]
	if !ok {
		hint = defaultStyleHint
	}
	for i := range elements {
		elements[i].Style.BorderRadius = hint.borderRadius
		elements[i].Style.Shadow = hint.shadow
		elements[i].Style.Filter = hint.filter
		if hint.gradient != "" && isTextual(elements[i].Kind) {
			elements[i].Style.Gradient = hint.gradient
		}
	}
}

// assignZOrder назначает z-порядок пропорционально визуальному весу.
func assignZOrder(elements []models.LayoutElement) {
	for i := range elements {
		elements[i].ZIndex = int(elements[i].VisualWeight * 100)
	}
}

// resolveOverlaps разрешает попарные пересечения сдвигом позднего элемента
// вниз на высоту раннего плюс зазор шаблона. Простая эвристика без глобальной
// оптимизации: после сдвига новые пересечения ниже по списку возможны и
// разрешаются следующими итерациями внешнего цикла.
func resolveOverlaps(tpl models.LayoutTemplate, elements []models.LayoutElement) {
	gap := tpl.Spacing.Gap
	for i := 0; i < len(elements); i++ {
		for j := i + 1; j < len(elements); j++ {
			if overlaps(elements[i], elements[j]) {
				elements[j].Y = elements[i].Y + elements[i].Height + gap
			}
		}
	}
	// Сдвиг вниз мог вытолкнуть элементы за нижнюю кромку.
	for i := range elements {
		maxY := tpl.Height - tpl.Spacing.Margin - elements[i].Height
		if elements[i].Y > maxY {
			elements[i].Y = maxY
		}
	}
}

// overlaps - строгое пересечение прямоугольников; касание кромками не считается.
func overlaps(a, b models.LayoutElement) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// applyColorHarmony назначает текстовым элементам без явного цвета цвета
// из схемы шаблона по кругу.
func applyColorHarmony(tpl models.LayoutTemplate, elements []models.LayoutElement) {
	if len(tpl.ColorScheme) == 0 {
		return
	}
	next := 0
	for i := range elements {
		if !isTextual(elements[i].Kind) || elements[i].Style.Color != "" {
			continue
		}
		elements[i].Style.Color = tpl.ColorScheme[next%len(tpl.ColorScheme)]
		next++
	}
}

// balanceSymmetry сдвигает все элементы по горизонтали так, чтобы взвешенный
// по визуальному весу центр масс совпал с центром холста.
func balanceSymmetry(tpl models.LayoutTemplate, elements []models.LayoutElement) {
	if len(elements) == 0 {
		return
	}
	var weighted, total float64
	for _, el := range elements {
		w := el.VisualWeight
		if w <= 0 {
			w = 0.01
		}
		weighted += (el.X + el.Width/2) * w
		total += w
	}
	shift := tpl.Width/2 - weighted/total

	// Сдвиг урезается так, чтобы ни один элемент не вышел за кромки.
	for _, el := range elements {
		minShift := tpl.Spacing.Margin - el.X
		maxShift := tpl.Width - tpl.Spacing.Margin - el.Width - el.X
		if shift < minShift {
			shift = minShift
		}
		if shift > maxShift {
			shift = maxShift
		}
	}
	for i := range elements {
		elements[i].X += shift
	}
}

func isTextual(kind models.ElementKind) bool {
	return kind == models.ElementText || kind == models.ElementQuote
}
