package database_test // Используем _test пакет для изоляции

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/docker/client"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"manifest-server/internal/database"
	"manifest-server/internal/interfaces"
	"manifest-server/internal/models"
)

// StorageIntegrationSuite поднимает реальные Postgres и Redis в контейнерах
// и гоняет репозитории против них.
type StorageIntegrationSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	rdContainer *tcredis.RedisContainer
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	history     interfaces.AnalysisHistoryRepository
	cache       interfaces.SearchCacheRepository
	logger      *zap.Logger
}

func (s *StorageIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.logger, err = zap.NewDevelopment()
	require.NoError(s.T(), err, "Failed to create logger for tests")

	// Запускаем контейнер PostgreSQL
	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start postgres container")

	pgConnStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get postgres connection string")

	s.pgPool, err = pgxpool.New(s.ctx, pgConnStr)
	require.NoError(s.T(), err, "Failed to connect to test postgres")

	// Применяем встроенные миграции
	require.NoError(s.T(), database.RunMigrations(pgConnStr, s.logger), "Failed to run migrations")

	// Запускаем контейнер Redis
	s.rdContainer, err = tcredis.Run(s.ctx,
		"docker.io/redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("* Ready to accept connections").
				WithOccurrence(1).
				WithStartupTimeout(1*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start redis container")

	redisHost, err := s.rdContainer.Host(s.ctx)
	require.NoError(s.T(), err)
	redisPort, err := s.rdContainer.MappedPort(s.ctx, "6379/tcp")
	require.NoError(s.T(), err)

	s.redisClient = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", redisHost, redisPort.Port())})
	_, err = s.redisClient.Ping(s.ctx).Result()
	require.NoError(s.T(), err, "Failed to connect to test redis")

	s.history = database.NewPgHistoryRepository(s.pgPool, 3, s.logger)
	s.cache = database.NewRedisSearchCache(s.redisClient, s.logger)
}

func (s *StorageIntegrationSuite) TearDownSuite() {
	if s.pgPool != nil {
		s.pgPool.Close()
	}
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Error("Failed to terminate postgres container", zap.Error(err))
		}
	}
	if s.rdContainer != nil {
		if err := s.rdContainer.Terminate(s.ctx); err != nil {
			s.logger.Error("Failed to terminate redis container", zap.Error(err))
		}
	}
}

// Перед каждым тестом очищаем Redis и таблицу истории
func (s *StorageIntegrationSuite) SetupTest() {
	require.NoError(s.T(), s.redisClient.FlushDB(s.ctx).Err(), "Failed to flush Redis DB")

	_, err := s.pgPool.Exec(s.ctx, "TRUNCATE TABLE analysis_history RESTART IDENTITY")
	require.NoError(s.T(), err, "Failed to truncate analysis_history table")
}

func TestStorageIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	// Проверяем доступность Docker перед запуском
	cli, err := client.NewClientWithOpts(client.FromEnv)
	if err != nil {
		t.Fatalf("Docker client init error: %v. Ensure Docker is running and accessible.", err)
	}
	if _, err := cli.Ping(context.Background()); err != nil {
		t.Fatalf("Docker daemon is not running or accessible: %v", err)
	}
	cli.Close()

	suite.Run(t, new(StorageIntegrationSuite))
}

// --- Сами Тестовые Функции ---

func (s *StorageIntegrationSuite) TestHistoryAppendAndList() {
	t := s.T()
	ctx := context.Background()

	records := []*models.AnalysisRecord{
		{
			UserID:     "user-1",
			Categories: []models.Category{models.CategoryCareerBusiness},
			Emotions:   []models.Emotion{models.EmotionAmbition},
			Styles:     []string{"professional clean"},
			Colors:     []string{"#1e3a8a", "#f59e0b"},
		},
		{
			UserID:     "user-1",
			Categories: []models.Category{models.CategoryHealthFitness, models.CategoryTravelAdventure},
			Emotions:   []models.Emotion{models.EmotionDetermination},
			Styles:     []string{"dynamic energetic"},
			Colors:     []string{"#b91c1c"},
		},
	}
	for _, r := range records {
		require.NoError(t, s.history.Append(ctx, r))
	}

	listed, err := s.history.ListByUser(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// От новых к старым, массивы выживают round-trip через TEXT[]
	require.Equal(t, records[1].Categories, listed[0].Categories)
	require.Equal(t, records[1].Emotions, listed[0].Emotions)
	require.Equal(t, records[0].Styles, listed[1].Styles)
	require.Equal(t, records[0].Colors, listed[1].Colors)
	require.False(t, listed[0].CreatedAt.IsZero())
}

func (s *StorageIntegrationSuite) TestHistoryEvictionAtCapacity() {
	t := s.T()
	ctx := context.Background()

	// Емкость репозитория в suite - 3
	for i := 0; i < 5; i++ {
		require.NoError(t, s.history.Append(ctx, &models.AnalysisRecord{
			UserID: "user-evict",
			Styles: []string{fmt.Sprintf("style-%d", i)},
		}))
	}

	listed, err := s.history.ListByUser(ctx, "user-evict", 10)
	require.NoError(t, err)
	require.Len(t, listed, 3, "old records beyond capacity are evicted")
	require.Equal(t, "style-4", listed[0].Styles[0])
	require.Equal(t, "style-2", listed[2].Styles[0])
}

func (s *StorageIntegrationSuite) TestHistoryUserIsolationAndClear() {
	t := s.T()
	ctx := context.Background()

	require.NoError(t, s.history.Append(ctx, &models.AnalysisRecord{UserID: "user-a"}))
	require.NoError(t, s.history.Append(ctx, &models.AnalysisRecord{UserID: "user-b"}))

	listed, err := s.history.ListByUser(ctx, "user-a", 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, s.history.Clear(ctx, "user-a"))

	listed, err = s.history.ListByUser(ctx, "user-a", 10)
	require.NoError(t, err)
	require.Empty(t, listed)

	// Чужая история не задета
	other, err := s.history.ListByUser(ctx, "user-b", 10)
	require.NoError(t, err)
	require.Len(t, other, 1)
}

func (s *StorageIntegrationSuite) TestSearchCacheRoundTrip() {
	t := s.T()
	ctx := context.Background()

	candidates := []models.ImageCandidate{
		{
			ID:                 "unsplash-abc",
			Provider:           "unsplash",
			URL:                "https://images.example.com/abc.jpg",
			Width:              1920,
			Height:             1280,
			Composition:        models.CompositionLandscape,
			Tags:               []string{"mountain", "sunrise"},
			RelevanceScore:     0.9,
			EmotionalResonance: 0.8,
		},
	}

	require.NoError(t, s.cache.Set(ctx, "query-key", candidates, time.Minute))

	got, err := s.cache.Get(ctx, "query-key")
	require.NoError(t, err)
	require.Equal(t, candidates, got)
}

func (s *StorageIntegrationSuite) TestSearchCacheMissAndExpiry() {
	t := s.T()
	ctx := context.Background()

	_, err := s.cache.Get(ctx, "absent-key")
	require.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, s.cache.Set(ctx, "short-lived", []models.ImageCandidate{{ID: "x"}}, time.Second))
	time.Sleep(1500 * time.Millisecond)

	_, err = s.cache.Get(ctx, "short-lived")
	require.ErrorIs(t, err, models.ErrNotFound, "entry expires with its TTL")
}
