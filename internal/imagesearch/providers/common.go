package providers

import "manifest-server/internal/models"

// compositionFor выводит композицию кандидата из размеров изображения.
func compositionFor(width, height int) models.Composition {
	switch {
	case width > height:
		return models.CompositionLandscape
	case height > width:
		return models.CompositionPortrait
	default:
		return models.CompositionSquare
	}
}
