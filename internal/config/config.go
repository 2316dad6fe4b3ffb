package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"manifest-server/internal/logger"
)

// Config структура для хранения всей конфигурации сервиса.
type Config struct {
	AppEnv string `env:"APP_ENV" env-default:"development"`
	Port   string `env:"SERVER_PORT" env-default:"8086"`
	Logger logger.Config

	// Настройки PostgreSQL (история анализов).
	// Если DSN пуст, сервис работает на in-memory хранилище.
	DatabaseDSN string `env:"DATABASE_DSN" env-default:""`

	// Настройки Redis (кэш поиска изображений).
	// Если адрес пуст, используется in-memory кэш.
	RedisAddr     string `env:"REDIS_ADDR" env-default:""`
	RedisPassword string `env:"REDIS_PASSWORD" env-default:""`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`

	// Настройки RabbitMQ (события о сгенерированных досках).
	// Если URL пуст, события не публикуются.
	RabbitMQURL string `env:"RABBITMQ_URL" env-default:""`

	// Провайдеры изображений. Пустой ключ означает, что провайдер
	// возвращает ноль результатов, но пайплайн продолжает работать.
	Unsplash ImageProviderConfig `env-prefix:"UNSPLASH_"`
	Pexels   ImageProviderConfig `env-prefix:"PEXELS_"`
	Pixabay  ImageProviderConfig `env-prefix:"PIXABAY_"`

	// Параметры пайплайна.
	SearchCacheTTL     time.Duration `env:"IMAGE_SEARCH_CACHE_TTL" env-default:"10m"`
	ProviderMinDelay   time.Duration `env:"IMAGE_PROVIDER_MIN_INTERVAL" env-default:"500ms"`
	HistoryCapacity    int           `env:"ANALYSIS_HISTORY_CAPACITY" env-default:"50"`
	DefaultImageLimit  int           `env:"IMAGE_SEARCH_DEFAULT_LIMIT" env-default:"12"`
	DefaultTemplate    string        `env:"DEFAULT_TEMPLATE" env-default:"momentum"`
	AllowedCORSOrigins []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

// ImageProviderConfig настройки одного внешнего провайдера изображений.
type ImageProviderConfig struct {
	APIKey  string        `env:"API_KEY" env-default:""`
	BaseURL string        `env:"BASE_URL" env-default:""`
	Timeout time.Duration `env:"TIMEOUT" env-default:"10s"`
}

// Load загружает конфигурацию из переменных окружения и .env файла.
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку, если файла нет)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации manifest-server: %w", err)
	}

	return &cfg, nil
}
