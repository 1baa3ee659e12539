package openhours

import "errors"

var (
	// ErrOpenHoursNotFound возвращается, когда часы работы не настроены
	ErrOpenHoursNotFound = errors.New("openhours.repository: open hours not configured")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("openhours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("openhours.repository: failed to execute query")
)
