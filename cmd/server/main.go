package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	redis "github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"manifest-server/internal/analyzer"
	"manifest-server/internal/config"
	"manifest-server/internal/content"
	"manifest-server/internal/database"
	"manifest-server/internal/handler"
	"manifest-server/internal/imagesearch"
	"manifest-server/internal/imagesearch/providers"
	"manifest-server/internal/interfaces"
	"manifest-server/internal/layout"
	"manifest-server/internal/logger"
	"manifest-server/internal/messaging"
	"manifest-server/internal/middleware"
	"manifest-server/internal/service"
	"manifest-server/internal/style"
	"manifest-server/internal/worker"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized", zap.String("env", cfg.AppEnv))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// --- History store: Postgres, если задан DSN, иначе память ---
	var historyRepo interfaces.AnalysisHistoryRepository
	if cfg.DatabaseDSN != "" {
		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseDSN, log)
		if err != nil {
			zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer pool.Close()

		if err := database.RunMigrations(cfg.DatabaseDSN, log); err != nil {
			zap.L().Fatal("Failed to run migrations", zap.Error(err))
		}
		historyRepo = database.NewPgHistoryRepository(pool, cfg.HistoryCapacity, log)
		zap.L().Info("Using PostgreSQL analysis history store")
	} else {
		historyRepo = database.NewMemoryHistoryRepository(cfg.HistoryCapacity)
		zap.L().Info("DATABASE_DSN is empty, using in-memory analysis history store")
	}

	// --- Search cache: Redis, если задан адрес, иначе память ---
	var searchCache interfaces.SearchCacheRepository
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		searchCache = database.NewRedisSearchCache(redisClient, log)
		zap.L().Info("Using Redis image search cache")
	} else {
		searchCache = database.NewMemorySearchCache()
		zap.L().Info("REDIS_ADDR is empty, using in-memory image search cache")
	}

	// --- Event publisher: RabbitMQ опционален ---
	var publisher interfaces.BoardEventPublisher
	if cfg.RabbitMQURL != "" {
		mqConn, err := amqp091.Dial(cfg.RabbitMQURL)
		if err != nil {
			zap.L().Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer mqConn.Close()

		boardPublisher, err := messaging.NewRabbitMQBoardPublisher(mqConn)
		if err != nil {
			zap.L().Fatal("Failed to create board event publisher", zap.Error(err))
		}
		defer boardPublisher.Close()
		publisher = boardPublisher
		zap.L().Info("Connected to RabbitMQ, board events enabled")
	} else {
		zap.L().Info("RABBITMQ_URL is empty, board events disabled")
	}

	// --- Dependency Injection ---
	imageProviders := []interfaces.ImageProvider{
		providers.NewUnsplashProvider(cfg.Unsplash, log),
		providers.NewPexelsProvider(cfg.Pexels, log),
		providers.NewPixabayProvider(cfg.Pixabay, log),
	}

	analyzerSvc := analyzer.NewService(historyRepo, cfg.HistoryCapacity, log)
	contentGen := content.NewGenerator(log)
	imageAgent := imagesearch.NewAgent(imageProviders, searchCache, cfg.ProviderMinDelay, cfg.SearchCacheTTL, log)
	layoutEngine := layout.NewEngine(log)
	styleResolver := style.NewResolver(log)

	boardSvc := service.NewVisionBoardService(
		analyzerSvc,
		contentGen,
		imageAgent,
		layoutEngine,
		styleResolver,
		publisher,
		cfg.DefaultTemplate,
		cfg.DefaultImageLimit,
		log,
	)
	boardHandler := handler.NewBoardHandler(boardSvc, log)

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.AppEnv == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(middleware.GinZapLogger(log))
	router.Use(gin.Recovery())

	p := ginprometheus.NewPrometheus("gin")

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedCORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedCORSOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", handler.HeaderUserID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Доменные метрики пайплайна живут в отдельном реестре.
	router.GET("/metrics/pipeline", gin.WrapH(promhttp.HandlerFor(worker.Registry(), promhttp.HandlerOpts{})))

	boardHandler.RegisterRoutes(router)
	p.Use(router)

	// --- Start HTTP Server ---
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.Port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
