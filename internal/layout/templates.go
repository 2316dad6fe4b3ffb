package layout

import (
	"manifest-server/internal/models"
)

// Статический каталог шаблонов досок. Шаблоны не редактируются в рантайме:
// каждый фиксирует холст, стратегию раскладки, палитру и типографику.
var templateCatalog = []models.LayoutTemplate{
	{
		Name:        "momentum",
		Style:       "modern",
		Width:       1600,
		Height:      1200,
		Background:  "#f7f8fa",
		Strategy:    models.StrategyAsymmetric,
		ColorScheme: []string{"#2563eb", "#f59e0b", "#10b981", "#1f2937"},
		Typography: models.Typography{
			Primary:   "Inter",
			Secondary: "Inter",
			Accent:    "Playfair Display",
		},
		Spacing:     models.Spacing{Margin: 48, Padding: 24, Gap: 20},
		MaxElements: 12,
	},
	{
		Name:        "serene_minimal",
		Style:       "minimal",
		Width:       1600,
		Height:      1200,
		Background:  "#ffffff",
		Strategy:    models.StrategyCentered,
		ColorScheme: []string{"#374151", "#9ca3af", "#6ee7b7"},
		Typography: models.Typography{
			Primary:   "Helvetica Neue",
			Secondary: "Helvetica Neue",
			Accent:    "Cormorant Garamond",
		},
		Spacing:     models.Spacing{Margin: 64, Padding: 32, Gap: 28},
		MaxElements: 7,
	},
	{
		Name:        "luxury_gold",
		Style:       "luxury",
		Width:       1600,
		Height:      1200,
		Background:  "#14110f",
		Strategy:    models.StrategyGoldenRatio,
		ColorScheme: []string{"#d4af37", "#f5e6c8", "#8b7355", "#fafafa"},
		Typography: models.Typography{
			Primary:   "Playfair Display",
			Secondary: "Lato",
			Accent:    "Great Vibes",
		},
		Spacing:     models.Spacing{Margin: 56, Padding: 28, Gap: 24},
		MaxElements: 9,
	},
	{
		Name:        "pinterest_collage",
		Style:       "pinterest",
		Width:       1400,
		Height:      1800,
		Background:  "#fdf6f0",
		Strategy:    models.StrategyMasonry,
		ColorScheme: []string{"#e11d48", "#fb923c", "#fbbf24", "#34d399", "#60a5fa"},
		Typography: models.Typography{
			Primary:   "Poppins",
			Secondary: "Poppins",
			Accent:    "Caveat",
		},
		Spacing:     models.Spacing{Margin: 40, Padding: 16, Gap: 16},
		MaxElements: 16,
	},
	{
		Name:        "sunrise_flow",
		Style:       "organic",
		Width:       1600,
		Height:      1200,
		Background:  "#fff7ed",
		Strategy:    models.StrategyFlowing,
		ColorScheme: []string{"#f97316", "#fbbf24", "#fde68a", "#7c2d12"},
		Typography: models.Typography{
			Primary:   "Nunito",
			Secondary: "Nunito",
			Accent:    "Dancing Script",
		},
		Spacing:     models.Spacing{Margin: 48, Padding: 24, Gap: 22},
		MaxElements: 10,
	},
	{
		Name:        "focus_grid",
		Style:       "modern",
		Width:       1600,
		Height:      1200,
		Background:  "#111827",
		Strategy:    models.StrategyGrid,
		ColorScheme: []string{"#38bdf8", "#a78bfa", "#f472b6", "#f9fafb"},
		Typography: models.Typography{
			Primary:   "Space Grotesk",
			Secondary: "Inter",
			Accent:    "Space Grotesk",
		},
		Spacing:     models.Spacing{Margin: 48, Padding: 20, Gap: 18},
		MaxElements: 12,
	},
}

// Catalog возвращает копию каталога шаблонов.
func Catalog() []models.LayoutTemplate {
	out := make([]models.LayoutTemplate, len(templateCatalog))
	copy(out, templateCatalog)
	return out
}

// TemplateByName ищет шаблон по имени.
func TemplateByName(name string) (models.LayoutTemplate, error) {
	for _, t := range templateCatalog {
		if t.Name == name {
			return t, nil
		}
	}
	return models.LayoutTemplate{}, models.ErrUnknownTemplate
}
