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

const pixabayDefaultBaseURL = "https://pixabay.com/api"

// PixabayProvider - адаптер Pixabay API.
type PixabayProvider struct {
	cfg    config.ImageProviderConfig
	client *http.Client
	logger *zap.Logger
}

var _ interfaces.ImageProvider = (*PixabayProvider)(nil)

// NewPixabayProvider создает адаптер Pixabay.
func NewPixabayProvider(cfg config.ImageProviderConfig, logger *zap.Logger) *PixabayProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = pixabayDefaultBaseURL
	}
	return &PixabayProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("PixabayProvider"),
	}
}

// Name возвращает идентификатор провайдера.
func (p *PixabayProvider) Name() string { return "pixabay" }

// pixabaySearchResponse - форма ответа GET /api/.
type pixabaySearchResponse struct {
	Hits []struct {
		ID            int    `json:"id"`
		Tags          string `json:"tags"` // список через запятую
		PreviewURL    string `json:"previewURL"`
		WebformatURL  string `json:"webformatURL"`
		LargeImageURL string `json:"largeImageURL"`
		ImageWidth    int    `json:"imageWidth"`
		ImageHeight   int    `json:"imageHeight"`
		User          string `json:"user"`
	} `json:"hits"`
}

// SearchImages выполняет поиск. Пустой API-ключ дает пустой результат без ошибки.
func (p *PixabayProvider) SearchImages(ctx context.Context, query string, orientation models.Composition, limit int) ([]models.ImageCandidate, error) {
	if p.cfg.APIKey == "" {
		p.logger.Debug("Pixabay API key is not configured, returning zero results")
		return []models.ImageCandidate{}, nil
	}

	q := url.Values{}
	q.Set("key", p.cfg.APIKey)
	q.Set("q", query)
	q.Set("image_type", "photo")
	q.Set("per_page", fmt.Sprintf("%d", limit))
	switch orientation {
	case models.CompositionPortrait:
		q.Set("orientation", "vertical")
	case models.CompositionLandscape:
		q.Set("orientation", "horizontal")
	}

	endpoint := p.cfg.BaseURL + "/?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create pixabay request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixabay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pixabay returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed pixabaySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode pixabay response: %w", err)
	}

	candidates := make([]models.ImageCandidate, 0, len(parsed.Hits))
	for _, h := range parsed.Hits {
		tags := []string{}
		for _, t := range strings.Split(h.Tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}

		candidates = append(candidates, models.ImageCandidate{
			ID:          fmt.Sprintf("pixabay-%d", h.ID),
			Provider:    p.Name(),
			URL:         h.WebformatURL,
			ThumbURL:    h.PreviewURL,
			FullURL:     h.LargeImageURL,
			Attribution: h.User,
			Width:       h.ImageWidth,
			Height:      h.ImageHeight,
			Composition: compositionFor(h.ImageWidth, h.ImageHeight),
			Tags:        tags,
		})
	}
	return candidates, nil
}
