package service

import (
	"context"
	"hash/fnv"
	"time"

	"go.uber.org/zap"

	"manifest-server/internal/analyzer"
	"manifest-server/internal/content"
	"manifest-server/internal/imagesearch"
	"manifest-server/internal/interfaces"
	"manifest-server/internal/layout"
	"manifest-server/internal/models"
	"manifest-server/internal/style"
	"manifest-server/internal/worker"
)

// DefaultImageLimit - сколько изображений запрашивается, если лимит не задан.
const DefaultImageLimit = 12

// VisionBoardService - оркестратор пайплайна генерации доски визуализации:
// анализ текста -> {контент, поиск изображений} -> раскладка -> стили.
type VisionBoardService struct {
	analyzer        *analyzer.Service
	content         *content.Generator
	images          *imagesearch.Agent
	layout          *layout.Engine
	styles          *style.Resolver
	publisher       interfaces.BoardEventPublisher // nil, если событие никому не нужно
	defaultTemplate string
	imageLimit      int
	logger          *zap.Logger
}

// NewVisionBoardService создает сервис генерации досок.
func NewVisionBoardService(
	analyzerSvc *analyzer.Service,
	contentGen *content.Generator,
	imageAgent *imagesearch.Agent,
	layoutEngine *layout.Engine,
	styleResolver *style.Resolver,
	publisher interfaces.BoardEventPublisher,
	defaultTemplate string,
	imageLimit int,
	logger *zap.Logger,
) *VisionBoardService {
	if defaultTemplate == "" {
		defaultTemplate = "momentum"
	}
	if imageLimit <= 0 {
		imageLimit = DefaultImageLimit
	}
	return &VisionBoardService{
		analyzer:        analyzerSvc,
		content:         contentGen,
		images:          imageAgent,
		layout:          layoutEngine,
		styles:          styleResolver,
		publisher:       publisher,
		defaultTemplate: defaultTemplate,
		imageLimit:      imageLimit,
		logger:          logger.Named("VisionBoardService"),
	}
}

// Generate выполняет полный пайплайн для одной мечты.
// Единственная ошибка, которая доходит до вызывающей стороны, -
// структурно невалидный DreamInput; все остальные стадии деградируют
// до значений по умолчанию вместо отказа.
func (s *VisionBoardService) Generate(ctx context.Context, dream *models.DreamInput, userID, templateName string) (*models.VisionBoard, error) {
	if err := dream.Validate(); err != nil {
		worker.MetricsIncrementBoardFailed("invalid_input")
		return nil, err
	}

	started := time.Now()

	analysis := s.analyzer.Analyze(ctx, dream, userID)
	category := analysis.PrimaryCategory()
	emotion := analysis.EmotionalTone.DominantEmotion()

	generated := s.content.Generate(models.ContentRequest{
		Title:       dream.Title,
		Description: dream.Description,
		Category:    category,
		Emotion:     emotion,
		Timeframe:   analysis.Intent.TimeframeBucketFromUrgency(),
		Personalization: &models.ContentPersonalization{
			GenderNeutral: true,
			Values:        analysis.Entities.Values,
			PastSuccesses: analysis.Personalization.SuccessfulPatterns,
		},
	})

	profile := analyzer.ProfileFor(emotion)
	candidates := s.images.Search(ctx, models.ImageSearchParams{
		Query:           analysis.Suggestions.ImageQueries[0],
		Category:        category,
		Emotion:         emotion,
		PreferredColors: analysis.Personalization.PreferredColors,
		Style:           profile.ImageStyle,
		Limit:           s.imageLimit,
	})

	tpl, err := layout.TemplateByName(s.pickTemplateName(templateName))
	if err != nil {
		// Неизвестный шаблон не валит генерацию: берется шаблон по умолчанию.
		s.logger.Warn("Unknown template requested, falling back to default",
			zap.String("template", templateName),
			zap.String("default", s.defaultTemplate),
		)
		tpl, _ = layout.TemplateByName(s.defaultTemplate)
	}

	parts := buildPartialElements(dream, generated, candidates)
	elements := s.layout.Compute(tpl, parts, layout.Options{
		ResolveOverlaps: true,
		ColorHarmony:    true,
		Seed:            layoutSeed(dream.Title, userID),
	})

	intensity := dominantIntensity(analysis)
	for i := range elements {
		applyResolvedStyle(&elements[i], s.styles.StyleFor(elements[i].Kind, emotion, intensity))
	}

	if err := layout.ValidateLayout(tpl, elements); err != nil {
		s.logger.Warn("Layout validation failed", zap.Error(err))
	}

	board := &models.VisionBoard{
		Analysis: *analysis,
		Content:  generated,
		Images:   candidates,
		Elements: elements,
		Template: tpl.Name,
	}

	worker.MetricsIncrementBoardGenerated()
	worker.MetricsRecordGenerationDuration(time.Since(started).Seconds())
	s.publishEvent(ctx, userID, dream, board, category, emotion)

	s.logger.Info("Vision board generated",
		zap.String("user_id", userID),
		zap.String("category", string(category)),
		zap.String("emotion", string(emotion)),
		zap.String("template", tpl.Name),
		zap.Int("elements", len(elements)),
		zap.Int("images", len(candidates)),
		zap.Duration("took", time.Since(started)),
	)
	return board, nil
}

// Templates возвращает каталог доступных шаблонов.
func (s *VisionBoardService) Templates() []models.LayoutTemplate {
	return layout.Catalog()
}

func (s *VisionBoardService) pickTemplateName(requested string) string {
	if requested == "" {
		return s.defaultTemplate
	}
	return requested
}

// publishEvent отправляет событие о сгенерированной доске, если издатель
// настроен. Ошибка публикации логируется и не доходит до пользователя.
func (s *VisionBoardService) publishEvent(ctx context.Context, userID string, dream *models.DreamInput, board *models.VisionBoard, category models.Category, emotion models.Emotion) {
	if s.publisher == nil {
		return
	}
	event := interfaces.BoardGeneratedEvent{
		UserID:       userID,
		DreamTitle:   dream.Title,
		Category:     category,
		Emotion:      emotion,
		Template:     board.Template,
		ElementCount: len(board.Elements),
		ImageCount:   len(board.Images),
		GeneratedAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishBoardGenerated(ctx, event); err != nil {
		s.logger.Error("Failed to publish board event", zap.Error(err))
	}
}

// buildPartialElements собирает абстрактные элементы доски из контента и
// изображений. Веса задают приоритет: заголовок и лучшие изображения
// размещаются первыми.
func buildPartialElements(dream *models.DreamInput, generated models.GeneratedContent, images []models.ImageCandidate) []models.PartialElement {
	parts := make([]models.PartialElement, 0, len(images)+8)

	parts = append(parts, models.PartialElement{
		Kind:         models.ElementText,
		Content:      dream.Title,
		LayoutWeight: 1.0,
		VisualWeight: 1.0,
	})

	for _, img := range images {
		parts = append(parts, models.PartialElement{
			Kind:         models.ElementImage,
			ImageURL:     img.URL,
			LayoutWeight: img.RelevanceScore,
			VisualWeight: img.EmotionalResonance,
		})
	}

	for i, a := range generated.Affirmations {
		if i >= 3 {
			break
		}
		parts = append(parts, models.PartialElement{
			Kind:         models.ElementText,
			Content:      a,
			LayoutWeight: 0.8 - 0.05*float64(i),
			VisualWeight: 0.7,
		})
	}

	if len(generated.Quotes) > 0 {
		parts = append(parts, models.PartialElement{
			Kind:         models.ElementQuote,
			Content:      generated.Quotes[0],
			LayoutWeight: 0.6,
			VisualWeight: 0.6,
		})
	}

	if len(generated.Milestones) > 0 {
		parts = append(parts, models.PartialElement{
			Kind:         models.ElementProgress,
			Content:      generated.Milestones[0],
			LayoutWeight: 0.5,
			VisualWeight: 0.5,
		})
	}

	for i, cue := range generated.VisualCues {
		if i >= 2 {
			break
		}
		parts = append(parts, models.PartialElement{
			Kind:         models.ElementIcon,
			Content:      cue,
			LayoutWeight: 0.4,
			VisualWeight: 0.4,
		})
	}
	return parts
}

// applyResolvedStyle накладывает стиль резолвера поверх подсказок раскладки.
// Непустые значения резолвера выигрывают, остальное остается от раскладки.
func applyResolvedStyle(el *models.LayoutElement, st models.ElementStyle) {
	if st.Color != "" {
		el.Style.Color = st.Color
	}
	if st.FontFamily != "" {
		el.Style.FontFamily = st.FontFamily
	}
	if st.FontSize > 0 {
		el.Style.FontSize = st.FontSize
	}
	if st.FontWeight != "" {
		el.Style.FontWeight = st.FontWeight
	}
	if st.Shadow != "" {
		el.Style.Shadow = st.Shadow
	}
	if st.Filter != "" {
		el.Style.Filter = st.Filter
	}
	if st.UseGradientText {
		el.Style.Gradient = st.Gradient
		el.Style.UseGradientText = true
	}
}

// dominantIntensity возвращает силу доминирующей эмоции с нижней границей,
// чтобы слабая эмоция не давала нечитаемо мелкий шрифт.
func dominantIntensity(analysis *models.DreamAnalysis) float64 {
	intensity := 0.6
	if len(analysis.EmotionalTone.Emotions) > 0 {
		if v := analysis.EmotionalTone.Emotions[0].Intensity; v > intensity {
			intensity = v
		}
	}
	return intensity
}

// layoutSeed выводит зерно раскладки из входа: одинаковая мечта одного
// пользователя дает одинаковую доску.
func layoutSeed(title, userID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(title))
	h.Write([]byte("|"))
	h.Write([]byte(userID))
	return int64(h.Sum64())
}
