package models

// ElementKind - тип элемента на доске визуализации.
type ElementKind string

const (
	ElementImage    ElementKind = "image"
	ElementText     ElementKind = "text"
	ElementShape    ElementKind = "shape"
	ElementIcon     ElementKind = "icon"
	ElementProgress ElementKind = "progress"
	ElementQuote    ElementKind = "quote"
)

// LayoutStrategy - именованная геометрическая стратегия раскладки.
type LayoutStrategy string

const (
	StrategyGoldenRatio LayoutStrategy = "golden-ratio"
	StrategyMasonry     LayoutStrategy = "masonry"
	StrategyAsymmetric  LayoutStrategy = "asymmetric"
	StrategyFlowing     LayoutStrategy = "flowing"
	StrategyCentered    LayoutStrategy = "centered"
	StrategyGrid        LayoutStrategy = "grid"
)

// ElementStyle - стилевые поля элемента, заполняются Style Resolver'ом
// и пост-обработкой Layout Engine.
type ElementStyle struct {
	Color        string  `json:"color,omitempty"`
	FontFamily   string  `json:"fontFamily,omitempty"`
	FontSize     float64 `json:"fontSize,omitempty"`
	FontWeight   string  `json:"fontWeight,omitempty"`
	Gradient     string  `json:"gradient,omitempty"`
	Filter       string  `json:"filter,omitempty"`
	Shadow       string  `json:"shadow,omitempty"`
	BorderRadius float64 `json:"borderRadius,omitempty"`
	// UseGradientText - подсказка рендереру: текст закрашивается градиентом,
	// а не плоским цветом. Не вычисленное пиксельное значение.
	UseGradientText bool `json:"useGradientText,omitempty"`
}

// PartialElement - абстрактный элемент до раскладки: что показать и с каким приоритетом.
type PartialElement struct {
	Kind         ElementKind `json:"kind"`
	Content      string      `json:"content,omitempty"`
	ImageURL     string      `json:"imageUrl,omitempty"`
	LayoutWeight float64     `json:"layoutWeight"` // [0,1] приоритет позиционирования
	VisualWeight float64     `json:"visualWeight"` // [0,1] визуальная заметность
}

// LayoutElement - полностью позиционированный элемент доски.
// Изменяется только внутри вычисления раскладки, после возврата считается замороженным.
type LayoutElement struct {
	ID           string       `json:"id"`
	Kind         ElementKind  `json:"kind"`
	X            float64      `json:"x"`
	Y            float64      `json:"y"`
	Width        float64      `json:"width"`
	Height       float64      `json:"height"`
	Rotation     float64      `json:"rotation"`
	ZIndex       int          `json:"zIndex"`
	Opacity      float64      `json:"opacity"`
	Content      string       `json:"content,omitempty"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	LayoutWeight float64      `json:"layoutWeight"`
	VisualWeight float64      `json:"visualWeight"`
	Style        ElementStyle `json:"style"`
}

// Typography - тройка шрифтов шаблона.
type Typography struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Spacing - константы отступов шаблона.
type Spacing struct {
	Margin  float64 `json:"margin"`
	Padding float64 `json:"padding"`
	Gap     float64 `json:"gap"`
}

// LayoutTemplate - именованный шаблон доски с фиксированными размерами холста.
// Шаблоны образуют статический каталог и не редактируются в рантайме.
type LayoutTemplate struct {
	Name        string         `json:"name"`
	Style       string         `json:"style"` // визуальный стиль: modern, minimal, luxury, pinterest, organic...
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	Background  string         `json:"background"`
	Strategy    LayoutStrategy `json:"strategy"`
	ColorScheme []string       `json:"colorScheme"` // 3-5 цветов
	Typography  Typography     `json:"typography"`
	Spacing     Spacing        `json:"spacing"`
	MaxElements int            `json:"maxElements"`
}

// VisionBoard - итог работы пайплайна: входной контракт generateVisionBoard.
// Все поля - плоские данные, сериализуемые в JSON.
type VisionBoard struct {
	Analysis DreamAnalysis    `json:"analysis"`
	Content  GeneratedContent `json:"content"`
	Images   []ImageCandidate `json:"images"`
	Elements []LayoutElement  `json:"elements"`
	Template string           `json:"template"`
}
