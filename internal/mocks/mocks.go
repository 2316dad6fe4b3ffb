package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"manifest-server/internal/interfaces"
	"manifest-server/internal/models"
)

// Mock ImageProvider
type ImageProvider struct {
	mock.Mock
	ProviderName string
}

func (m *ImageProvider) Name() string {
	if m.ProviderName != "" {
		return m.ProviderName
	}
	return "mock"
}

func (m *ImageProvider) SearchImages(ctx context.Context, query string, orientation models.Composition, limit int) ([]models.ImageCandidate, error) {
	args := m.Called(ctx, query, orientation, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ImageCandidate), args.Error(1)
}

// Mock AnalysisHistoryRepository
type AnalysisHistoryRepository struct {
	mock.Mock
}

func (m *AnalysisHistoryRepository) Append(ctx context.Context, record *models.AnalysisRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *AnalysisHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.AnalysisRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AnalysisRecord), args.Error(1)
}

func (m *AnalysisHistoryRepository) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock SearchCacheRepository
type SearchCacheRepository struct {
	mock.Mock
}

func (m *SearchCacheRepository) Get(ctx context.Context, key string) ([]models.ImageCandidate, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ImageCandidate), args.Error(1)
}

func (m *SearchCacheRepository) Set(ctx context.Context, key string, candidates []models.ImageCandidate, ttl time.Duration) error {
	args := m.Called(ctx, key, candidates, ttl)
	return args.Error(0)
}

// Mock BoardEventPublisher
type BoardEventPublisher struct {
	mock.Mock
}

func (m *BoardEventPublisher) PublishBoardGenerated(ctx context.Context, event interfaces.BoardGeneratedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
