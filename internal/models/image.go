package models

import (
	"fmt"
	"strings"
)

// Composition - ориентация/композиция изображения.
type Composition string

const (
	CompositionPortrait  Composition = "portrait"
	CompositionLandscape Composition = "landscape"
	CompositionSquare    Composition = "square"
)

// ImageCandidate - кандидат изображения, нормализованный из ответа провайдера.
// Эфемерный: создается заново на каждый запрос и не персистится этой подсистемой.
type ImageCandidate struct {
	ID                 string      `json:"id"`
	Provider           string      `json:"provider"`
	URL                string      `json:"url"`
	ThumbURL           string      `json:"thumbUrl,omitempty"`
	FullURL            string      `json:"fullUrl,omitempty"`
	Attribution        string      `json:"attribution,omitempty"`
	Width              int         `json:"width"`
	Height             int         `json:"height"`
	Composition        Composition `json:"composition"`
	Palette            []string    `json:"palette,omitempty"` // hex-цвета
	Tags               []string    `json:"tags,omitempty"`
	RelevanceScore     float64     `json:"relevanceScore"`     // [0,1]
	EmotionalResonance float64     `json:"emotionalResonance"` // [0,1]
}

// SimilarityKey - грубый ключ дедупликации почти одинаковых кандидатов.
// Размеры плюс атрибуция: разные кропы одной фотографии схлопываются.
func (c *ImageCandidate) SimilarityKey() string {
	return fmt.Sprintf("%dx%d|%s", c.Width, c.Height, strings.ToLower(c.Attribution))
}

// ImageSearchParams - параметры поиска изображений.
type ImageSearchParams struct {
	Query           string      `json:"query"`
	Category        Category    `json:"category"`
	Emotion         Emotion     `json:"emotion"`
	PreferredColors []string    `json:"preferredColors,omitempty"`
	Style           string      `json:"style,omitempty"`
	Orientation     Composition `json:"orientation,omitempty"`
	Limit           int         `json:"limit"`
}

// CacheKey возвращает ключ кэша: полный кортеж параметров запроса.
func (p ImageSearchParams) CacheKey() string {
	return strings.Join([]string{
		strings.ToLower(p.Query),
		string(p.Category),
		string(p.Emotion),
		strings.ToLower(strings.Join(p.PreferredColors, ",")),
		strings.ToLower(p.Style),
		string(p.Orientation),
		fmt.Sprintf("%d", p.Limit),
	}, "|")
}
