package booking

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках проверки
	ErrInternal = errors.New("booking: internal error")
)
