package models

import "errors"

// Стандартные ошибки сервиса генерации досок визуализации.
var (
	// Общие ошибки ресурсов/БД
	ErrNotFound = errors.New("resource not found") // General not found

	// Ошибки входных данных
	ErrInvalidDream    = errors.New("dream input is invalid: title is required")
	ErrUnknownTemplate = errors.New("unknown layout template")

	// Ошибки поиска изображений
	ErrProviderUnavailable = errors.New("image provider is unavailable")
	ErrProviderThrottled   = errors.New("image provider call skipped by rate limiter")

	// Общие ошибки запросов/сервера
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
)
