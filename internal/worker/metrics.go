// Package worker содержит метрики пайплайна генерации досок.
package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Общий реестр для всех метрик пайплайна.
	// Мы используем promauto.With(registry), чтобы метрики регистрировались
	// в нашем локальном реестре, а не в глобальном prometheus.DefaultRegistry.
	registry = prometheus.NewRegistry()

	boardsGenerated = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "visionboard_boards_generated_total",
			Help: "Total number of vision boards generated successfully.",
		},
	)
	boardsFailed = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "visionboard_generation_failed_total",
			Help: "Total number of failed board generations, partitioned by failure reason.",
		},
		[]string{"reason"},
	)
	providerRequests = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "visionboard_image_provider_requests_total",
			Help: "Total number of image provider calls, partitioned by provider and outcome.",
		},
		[]string{"provider", "status"},
	)
	generationDuration = promauto.With(registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "visionboard_generation_duration_seconds",
			Help:    "Duration of full board generation pipeline runs.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Registry возвращает реестр метрик пайплайна для монтирования на /metrics.
func Registry() *prometheus.Registry {
	return registry
}

// MetricsIncrementBoardGenerated увеличивает счетчик успешных генераций.
func MetricsIncrementBoardGenerated() {
	boardsGenerated.Inc()
}

// MetricsIncrementBoardFailed увеличивает счетчик неудачных генераций для указанной причины.
func MetricsIncrementBoardFailed(reason string) {
	boardsFailed.WithLabelValues(reason).Inc()
}

// MetricsIncrementProviderRequest увеличивает счетчик вызовов провайдера изображений.
func MetricsIncrementProviderRequest(provider, status string) {
	providerRequests.WithLabelValues(provider, status).Inc()
}

// MetricsRecordGenerationDuration записывает длительность полного прогона пайплайна.
func MetricsRecordGenerationDuration(seconds float64) {
	generationDuration.Observe(seconds)
}
