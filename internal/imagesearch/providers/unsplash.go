// Package providers содержит адаптеры внешних источников изображений.
// Каждый адаптер нормализует собственный формат ответа провайдера
// в общий models.ImageCandidate; отсутствие учетных данных - не ошибка,
// а ноль результатов.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"manifest-server/internal/config"
	"manifest-server/internal/interfaces"
	"manifest-server/internal/models"
)

const unsplashDefaultBaseURL = "https://api.unsplash.com"

// UnsplashProvider - адаптер Unsplash Search API.
type UnsplashProvider struct {
	cfg    config.ImageProviderConfig
	client *http.Client
	logger *zap.Logger
}

var _ interfaces.ImageProvider = (*UnsplashProvider)(nil)

// NewUnsplashProvider создает адаптер Unsplash.
func NewUnsplashProvider(cfg config.ImageProviderConfig, logger *zap.Logger) *UnsplashProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = unsplashDefaultBaseURL
	}
	return &UnsplashProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("UnsplashProvider"),
	}
}

// Name возвращает идентификатор провайдера.
func (p *UnsplashProvider) Name() string { return "unsplash" }

// unsplashSearchResponse - форма ответа GET /search/photos.
type unsplashSearchResponse struct {
	Results []struct {
		ID             string `json:"id"`
		Width          int    `json:"width"`
		Height         int    `json:"height"`
		Color          string `json:"color"`
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Full    string `json:"full"`
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
		Tags []struct {
			Title string `json:"title"`
		} `json:"tags"`
	} `json:"results"`
}

// SearchImages выполняет поиск. Пустой API-ключ дает пустой результат без ошибки.
func (p *UnsplashProvider) SearchImages(ctx context.Context, query string, orientation models.Composition, limit int) ([]models.ImageCandidate, error) {
	if p.cfg.APIKey == "" {
		p.logger.Debug("Unsplash API key is not configured, returning zero results")
		return []models.ImageCandidate{}, nil
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", fmt.Sprintf("%d", limit))
	switch orientation {
	case models.CompositionPortrait:
		q.Set("orientation", "portrait")
	case models.CompositionLandscape:
		q.Set("orientation", "landscape")
	case models.CompositionSquare:
		q.Set("orientation", "squarish")
	}

	endpoint := p.cfg.BaseURL + "/search/photos?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create unsplash request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.cfg.APIKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unsplash returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode unsplash response: %w", err)
	}

	candidates := make([]models.ImageCandidate, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		tags := make([]string, 0, len(r.Tags)+1)
		for _, t := range r.Tags {
			tags = append(tags, t.Title)
		}
		if r.AltDescription != "" {
			tags = append(tags, strings.Fields(strings.ToLower(r.AltDescription))...)
		}

		palette := []string{}
		if r.Color != "" {
			palette = append(palette, r.Color)
		}

		candidates = append(candidates, models.ImageCandidate{
			ID:          "unsplash-" + r.ID,
			Provider:    p.Name(),
			URL:         r.URLs.Regular,
			ThumbURL:    r.URLs.Thumb,
			FullURL:     r.URLs.Full,
			Attribution: r.User.Name,
			Width:       r.Width,
			Height:      r.Height,
			Composition: compositionFor(r.Width, r.Height),
			Palette:     palette,
			Tags:        tags,
		})
	}
	return candidates, nil
}
