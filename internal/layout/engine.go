package layout

import (
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"manifest-server/internal/models"
)

// Options - параметры одного вычисления раскладки.
type Options struct {
	// PriorityOrder - явный порядок размещения (индексы входного среза).
	// Если пуст, элементы сортируются по убыванию LayoutWeight.
	PriorityOrder []int
	// ResolveOverlaps включает попарное разрешение пересечений сдвигом вниз.
	ResolveOverlaps bool
	// ColorHarmony назначает текстовым элементам без цвета цвета схемы шаблона.
	ColorHarmony bool
	// SymmetricBalance центрирует взвешенный центр масс по горизонтали.
	SymmetricBalance bool
	// Seed - зерно генератора случайности. Одинаковое зерно при одинаковом
	// входе дает идентичную раскладку.
	Seed int64
}

// strategyFunc размещает отсортированные элементы на холсте шаблона.
type strategyFunc func(tpl models.LayoutTemplate, parts []models.PartialElement, rng *rand.Rand) []models.LayoutElement

// Engine - движок раскладки: чистое синхронное вычисление без I/O.
type Engine struct {
	logger *zap.Logger
}

// NewEngine создает движок раскладки.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger.Named("LayoutEngine")}
}

// Compute раскладывает элементы по шаблону.
// Порядок стадий: приоритет -> усечение до MaxElements -> стратегия ->
// стилевые подсказки -> z-порядок -> опциональная пост-обработка.
func (e *Engine) Compute(tpl models.LayoutTemplate, parts []models.PartialElement, opts Options) []models.LayoutElement {
	if len(parts) == 0 {
		return []models.LayoutElement{}
	}

	sorted := orderByPriority(parts, opts.PriorityOrder)
	if tpl.MaxElements > 0 && len(sorted) > tpl.MaxElements {
		sorted = sorted[:tpl.MaxElements]
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	place := strategyFor(tpl, len(sorted))
	elements := place(tpl, sorted, rng)

	applyStyleHints(tpl, elements)
	assignZOrder(elements)
	if opts.ResolveOverlaps {
		resolveOverlaps(tpl, elements)
	}
	if opts.ColorHarmony {
		applyColorHarmony(tpl, elements)
	}
	if opts.SymmetricBalance {
		balanceSymmetry(tpl, elements)
	}

	e.logger.Debug("Layout computed",
		zap.String("template", tpl.Name),
		zap.String("strategy", string(tpl.Strategy)),
		zap.Int("elements", len(elements)),
	)
	return elements
}

// orderByPriority возвращает элементы в порядке размещения: явный порядок,
// если он задан, иначе стабильная сортировка по убыванию LayoutWeight.
func orderByPriority(parts []models.PartialElement, order []int) []models.PartialElement {
	if len(order) > 0 {
		out := make([]models.PartialElement, 0, len(parts))
		seen := make(map[int]bool, len(order))
		for _, idx := range order {
			if idx >= 0 && idx < len(parts) && !seen[idx] {
				out = append(out, parts[idx])
				seen[idx] = true
			}
		}
		for i, p := range parts {
			if !seen[i] {
				out = append(out, p)
			}
		}
		return out
	}

	out := make([]models.PartialElement, len(parts))
	copy(out, parts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LayoutWeight > out[j].LayoutWeight
	})
	return out
}

// strategyFor выбирает стратегию шаблона. Неизвестная стратегия не ошибка:
// адаптивный откат подбирает геометрию по числу элементов и стилю шаблона.
func strategyFor(tpl models.LayoutTemplate, count int) strategyFunc {
	switch tpl.Strategy {
	case models.StrategyGoldenRatio:
		return placeGoldenRatio
	case models.StrategyMasonry:
		return placeMasonry
	case models.StrategyAsymmetric:
		return placeAsymmetric
	case models.StrategyFlowing:
		return placeFlowing
	case models.StrategyCentered:
		return placeCentered
	case models.StrategyGrid:
		return placeGrid
	}

	switch {
	case count <= 3:
		return placeCentered
	case count <= 6 && tpl.Style == "luxury":
		return placeGoldenRatio
	case tpl.Style == "pinterest":
		return placeMasonry
	default:
		return placeAsymmetric
	}
}
