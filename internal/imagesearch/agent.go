// Package imagesearch реализует агента поиска изображений: параллельный
// опрос внешних провайдеров, скоринг, дедупликацию и ранжирование кандидатов.
// Отказ провайдера изолирован и дает ноль результатов, отказ всех провайдеров
// дает фиксированный запасной набор - успешный вызов никогда не возвращает
// пустой список.
package imagesearch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"manifest-server/internal/interfaces"
	"manifest-server/internal/models"
	"manifest-server/internal/worker"
)

// Agent - агент поиска изображений по нескольким провайдерам.
type Agent struct {
	providers []interfaces.ImageProvider
	cache     interfaces.SearchCacheRepository
	throttle  *providerThrottle
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewAgent создает агента поверх списка провайдеров и кэша результатов.
func NewAgent(
	providers []interfaces.ImageProvider,
	cache interfaces.SearchCacheRepository,
	minInterval time.Duration,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Agent {
	return &Agent{
		providers: providers,
		cache:     cache,
		throttle:  newProviderThrottle(minInterval),
		cacheTTL:  cacheTTL,
		logger:    logger.Named("ImageSearchAgent"),
	}
}

// providerResult - результат опроса одного провайдера (settled: либо
// кандидаты, либо ошибка, но горутина завершается всегда).
type providerResult struct {
	provider   string
	candidates []models.ImageCandidate
	err        error
}

// Search выполняет поиск кандидатов по параметрам.
// Протокол: кэш -> параллельный опрос всех провайдеров (all settled) ->
// скоринг -> фильтрация -> ранжирование -> усечение -> кэширование.
func (a *Agent) Search(ctx context.Context, params models.ImageSearchParams) []models.ImageCandidate {
	log := a.logger.With(zap.String("query", params.Query))

	if params.Limit <= 0 {
		params.Limit = 12
	}

	cacheKey := params.CacheKey()
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		log.Debug("Image search served from cache", zap.Int("candidates", len(cached)))
		return cached
	} else if !errors.Is(err, models.ErrNotFound) {
		log.Warn("Image search cache read failed", zap.Error(err))
	}

	results := a.fanOut(ctx, params)

	var all []models.ImageCandidate
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			log.Warn("Image provider failed, contributing zero results",
				zap.String("provider", r.provider), zap.Error(r.err))
			continue
		}
		all = append(all, r.candidates...)
	}

	if len(all) == 0 {
		// Полный отказ (или все вызовы пропущены троттлером) - запасной набор.
		log.Warn("All image providers failed or skipped, returning fallback set",
			zap.Int("providers", len(a.providers)), zap.Int("failed", failed))
		return fallbackSet(params)
	}

	scoreCandidates(all, params)
	all = filterCandidates(all)
	rankCandidates(all)
	if len(all) > params.Limit {
		all = all[:params.Limit]
	}

	if len(all) == 0 {
		// Все кандидаты отсеяны фильтрами - это тоже полный отказ для вызывающего.
		return fallbackSet(params)
	}

	if err := a.cache.Set(ctx, cacheKey, all, a.cacheTTL); err != nil {
		log.Warn("Image search cache write failed", zap.Error(err))
	}

	log.Debug("Image search completed",
		zap.Int("candidates", len(all)),
		zap.Int("providers_failed", failed),
	)
	return all
}

// fanOut опрашивает всех провайдеров параллельно и дожидается каждого.
// Провайдеры, не прошедшие троттлинг, пропускаются без ожидания и ретраев.
func (a *Agent) fanOut(ctx context.Context, params models.ImageSearchParams) []providerResult {
	results := make([]providerResult, len(a.providers))
	var wg sync.WaitGroup

	for i, provider := range a.providers {
		if !a.throttle.Allow(provider.Name()) {
			results[i] = providerResult{provider: provider.Name(), err: models.ErrProviderThrottled}
			worker.MetricsIncrementProviderRequest(provider.Name(), "throttled")
			continue
		}

		wg.Add(1)
		go func(idx int, p interfaces.ImageProvider) {
			defer wg.Done()
			enhanced := enhanceQuery(params)
			candidates, err := p.SearchImages(ctx, enhanced, params.Orientation, params.Limit)
			if err != nil {
				worker.MetricsIncrementProviderRequest(p.Name(), "error")
				results[idx] = providerResult{provider: p.Name(), err: err}
				return
			}
			worker.MetricsIncrementProviderRequest(p.Name(), "ok")
			results[idx] = providerResult{provider: p.Name(), candidates: candidates}
		}(i, provider)
	}

	wg.Wait()
	return results
}

// enhanceQuery обогащает запрос вызывающего ключевыми словами стиля
// и ориентации - один обогащенный запрос на провайдера.
func enhanceQuery(params models.ImageSearchParams) string {
	parts := []string{params.Query}
	if params.Style != "" {
		parts = append(parts, params.Style)
	}
	switch params.Orientation {
	case models.CompositionPortrait:
		parts = append(parts, "vertical")
	case models.CompositionLandscape:
		parts = append(parts, "wide")
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
