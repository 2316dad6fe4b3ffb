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

const pexelsDefaultBaseURL = "https://api.pexels.com/v1"

// PexelsProvider - адаптер Pexels Search API.
type PexelsProvider struct {
	cfg    config.ImageProviderConfig
	client *http.Client
	logger *zap.Logger
}

var _ interfaces.ImageProvider = (*PexelsProvider)(nil)

// NewPexelsProvider создает адаптер Pexels.
func NewPexelsProvider(cfg config.ImageProviderConfig, logger *zap.Logger) *PexelsProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = pexelsDefaultBaseURL
	}
	return &PexelsProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("PexelsProvider"),
	}
}

// Name возвращает идентификатор провайдера.
func (p *PexelsProvider) Name() string { return "pexels" }

// pexelsSearchResponse - форма ответа GET /v1/search.
type pexelsSearchResponse struct {
	Photos []struct {
		ID           int    `json:"id"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		Photographer string `json:"photographer"`
		AvgColor     string `json:"avg_color"`
		Alt          string `json:"alt"`
		Src          struct {
			Original string `json:"original"`
			Large    string `json:"large"`
			Medium   string `json:"medium"`
			Tiny     string `json:"tiny"`
		} `json:"src"`
	} `json:"photos"`
}

// SearchImages выполняет поиск. Пустой API-ключ дает пустой результат без ошибки.
func (p *PexelsProvider) SearchImages(ctx context.Context, query string, orientation models.Composition, limit int) ([]models.ImageCandidate, error) {
	if p.cfg.APIKey == "" {
		p.logger.Debug("Pexels API key is not configured, returning zero results")
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
		q.Set("orientation", "square")
	}

	endpoint := p.cfg.BaseURL + "/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create pexels request: %w", err)
	}
	req.Header.Set("Authorization", p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pexels returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode pexels response: %w", err)
	}

	candidates := make([]models.ImageCandidate, 0, len(parsed.Photos))
	for _, ph := range parsed.Photos {
		tags := strings.Fields(strings.ToLower(ph.Alt))

		palette := []string{}
		if ph.AvgColor != "" {
			palette = append(palette, ph.AvgColor)
		}

		candidates = append(candidates, models.ImageCandidate{
			ID:          fmt.Sprintf("pexels-%d", ph.ID),
			Provider:    p.Name(),
			URL:         ph.Src.Large,
			ThumbURL:    ph.Src.Tiny,
			FullURL:     ph.Src.Original,
			Attribution: ph.Photographer,
			Width:       ph.Width,
			Height:      ph.Height,
			Composition: compositionFor(ph.Width, ph.Height),
			Palette:     palette,
			Tags:        tags,
		})
	}
	return candidates, nil
}
