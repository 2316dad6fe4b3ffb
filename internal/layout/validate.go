package layout

import (
	"fmt"

	"manifest-server/internal/models"
)

// ValidateLayout проверяет, что каждый элемент целиком лежит внутри холста.
// Движок не гарантирует это свойство после разрешения пересечений,
// поэтому вызывающая сторона проверяет раскладку перед рендерингом.
func ValidateLayout(tpl models.LayoutTemplate, elements []models.LayoutElement) error {
	for _, el := range elements {
		if el.X < 0 || el.Y < 0 || el.X+el.Width > tpl.Width || el.Y+el.Height > tpl.Height {
			return fmt.Errorf("element %s (%s) is out of canvas bounds: x=%.1f y=%.1f w=%.1f h=%.1f canvas=%.0fx%.0f",
				el.ID, el.Kind, el.X, el.Y, el.Width, el.Height, tpl.Width, tpl.Height)
		}
	}
	return nil
}
