package models

import (
	"strings"
	"time"
)

// DreamInput - исходное описание цели пользователя.
// Неизменяемая запись: заполняется вызывающей стороной один раз на запрос генерации.
type DreamInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	WhyImportant string     `json:"whyImportant,omitempty"`
	CategoryHint string     `json:"categoryHint,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Milestones   []string   `json:"milestones,omitempty"`
}

// Validate проверяет структурную корректность входных данных.
// Единственная проверка на границе: без заголовка доску строить не из чего.
// Все остальные поля опциональны, эвристики умеют деградировать на пустом тексте.
func (d *DreamInput) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrInvalidDream
	}
	return nil
}

// FullText возвращает склейку всех текстовых полей мечты в нижнем регистре.
// Именно по этому тексту работают все этапы анализатора.
func (d *DreamInput) FullText() string {
	parts := []string{d.Title, d.Description, d.WhyImportant, d.CategoryHint}
	parts = append(parts, d.Milestones...)
	return strings.ToLower(strings.Join(parts, " "))
}
