package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"manifest-server/internal/analyzer"
	"manifest-server/internal/content"
	"manifest-server/internal/database"
	"manifest-server/internal/imagesearch"
	"manifest-server/internal/interfaces"
	"manifest-server/internal/layout"
	"manifest-server/internal/mocks"
	"manifest-server/internal/models"
	"manifest-server/internal/style"
)

func testCandidates() []models.ImageCandidate {
	return []models.ImageCandidate{
		{
			ID:          "p-1",
			URL:         "https://images.example.com/1.jpg",
			ThumbURL:    "https://images.example.com/1-thumb.jpg",
			Width:       1920,
			Height:      1280,
			Tags:        []string{"mountain", "sunrise", "success"},
			Attribution: "Photo by Alex",
		},
		{
			ID:          "p-2",
			URL:         "https://images.example.com/2.jpg",
			ThumbURL:    "https://images.example.com/2-thumb.jpg",
			Width:       1600,
			Height:      1200,
			Tags:        []string{"office", "work"},
			Attribution: "Photo by Sam",
		},
	}
}

// newTestBoardService собирает сервис на памяти с замоканным провайдером.
func newTestBoardService(t *testing.T, publisher interfaces.BoardEventPublisher) *VisionBoardService {
	t.Helper()
	logger := zap.NewNop()

	provider := new(mocks.ImageProvider)
	provider.On("SearchImages", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(testCandidates(), nil)

	analyzerSvc := analyzer.NewService(database.NewMemoryHistoryRepository(10), 10, logger)
	contentGen := content.NewGenerator(logger)
	imageAgent := imagesearch.NewAgent(
		[]interfaces.ImageProvider{provider},
		database.NewMemorySearchCache(),
		time.Millisecond,
		time.Minute,
		logger,
	)

	return NewVisionBoardService(
		analyzerSvc,
		contentGen,
		imageAgent,
		layout.NewEngine(logger),
		style.NewResolver(logger),
		publisher,
		"momentum",
		6,
		logger,
	)
}

func TestGenerateFullPipeline(t *testing.T) {
	svc := newTestBoardService(t, nil)

	dream := &models.DreamInput{
		Title:       "Launch my startup",
		Description: "I am determined to build an amazing product and achieve success",
	}

	board, err := svc.Generate(context.Background(), dream, "user-1", "")
	require.NoError(t, err)
	require.NotNil(t, board)

	assert.Equal(t, "momentum", board.Template)
	assert.Equal(t, models.CategoryCareerBusiness, board.Analysis.PrimaryCategory())
	assert.NotEmpty(t, board.Content.Affirmations)
	assert.NotEmpty(t, board.Images)
	require.NotEmpty(t, board.Elements)

	// Заголовок мечты всегда становится текстовым элементом.
	var foundTitle bool
	for _, el := range board.Elements {
		if el.Kind == models.ElementText && el.Content == dream.Title {
			foundTitle = true
			assert.NotEmpty(t, el.Style.FontFamily, "title must receive resolved typography")
			assert.Greater(t, el.Style.FontSize, 0.0)
		}
	}
	assert.True(t, foundTitle)

	tpl, err := layout.TemplateByName(board.Template)
	require.NoError(t, err)
	assert.NoError(t, layout.ValidateLayout(tpl, board.Elements))
}

func TestGenerateInvalidDream(t *testing.T) {
	svc := newTestBoardService(t, nil)

	_, err := svc.Generate(context.Background(), &models.DreamInput{Title: "   "}, "user-1", "")
	assert.ErrorIs(t, err, models.ErrInvalidDream)
}

// Одинаковая мечта одного пользователя дает одинаковую геометрию доски.
func TestGenerateDeterministicLayout(t *testing.T) {
	dream := &models.DreamInput{
		Title:       "Run a marathon",
		Description: "Train every morning and finish strong",
	}

	first, err := newTestBoardService(t, nil).Generate(context.Background(), dream, "user-7", "")
	require.NoError(t, err)
	second, err := newTestBoardService(t, nil).Generate(context.Background(), dream, "user-7", "")
	require.NoError(t, err)

	require.Equal(t, len(first.Elements), len(second.Elements))
	for i := range first.Elements {
		assert.Equal(t, first.Elements[i].X, second.Elements[i].X)
		assert.Equal(t, first.Elements[i].Y, second.Elements[i].Y)
		assert.Equal(t, first.Elements[i].Width, second.Elements[i].Width)
		assert.Equal(t, first.Elements[i].Height, second.Elements[i].Height)
	}
}

func TestGenerateUnknownTemplateFallsBack(t *testing.T) {
	svc := newTestBoardService(t, nil)

	board, err := svc.Generate(context.Background(), &models.DreamInput{
		Title: "Travel the world",
	}, "user-1", "no-such-template")
	require.NoError(t, err)
	assert.Equal(t, "momentum", board.Template)
}

func TestGeneratePublishesEvent(t *testing.T) {
	publisher := new(mocks.BoardEventPublisher)
	publisher.On("PublishBoardGenerated", mock.Anything, mock.Anything).Return(nil)

	svc := newTestBoardService(t, publisher)

	dream := &models.DreamInput{Title: "Find inner peace", Description: "Meditate daily and feel calm"}
	board, err := svc.Generate(context.Background(), dream, "user-42", "serene_minimal")
	require.NoError(t, err)

	publisher.AssertCalled(t, "PublishBoardGenerated", mock.Anything, mock.MatchedBy(func(ev interfaces.BoardGeneratedEvent) bool {
		return ev.UserID == "user-42" &&
			ev.DreamTitle == dream.Title &&
			ev.Template == board.Template &&
			ev.ElementCount == len(board.Elements) &&
			ev.ImageCount == len(board.Images)
	}))
}

// Отказ издателя не роняет генерацию.
func TestGeneratePublisherErrorIgnored(t *testing.T) {
	publisher := new(mocks.BoardEventPublisher)
	publisher.On("PublishBoardGenerated", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	svc := newTestBoardService(t, publisher)

	board, err := svc.Generate(context.Background(), &models.DreamInput{Title: "Write a book"}, "user-1", "")
	require.NoError(t, err)
	assert.NotNil(t, board)
	publisher.AssertExpectations(t)
}

func TestTemplatesCatalog(t *testing.T) {
	svc := newTestBoardService(t, nil)
	assert.Len(t, svc.Templates(), 6)
}
