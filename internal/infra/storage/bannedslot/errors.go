package bannedslot

import "errors"

var (
	// ErrBannedSlotNotFound возвращается, когда запрет на слот не найден
	ErrBannedSlotNotFound = errors.New("bannedslot.repository: banned slot not found")

	// ErrAlreadyBanned возвращается при повторном запрете того же слота
	ErrAlreadyBanned = errors.New("bannedslot.repository: slot already banned")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bannedslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bannedslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bannedslot.repository: failed to scan row")
)
