package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

const (
	msgInternalError    = "внутренняя ошибка сервера"
	msgSlotUnavailable  = "слот недоступен для записи"
	msgPaymentNotActive = "нет оплаты, покрывающей дату урока"
	msgSlotConflict     = "слот уже занят"
	msgNotFound         = "не найдено"
	msgForbidden        = "доступ запрещен"
)

const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"` // причина недоступности слота
}

// RespondJSON пишет ответ в JSON
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondDomainError отвечает на общие ошибки домена и возвращает false, если ошибка не из их числа
//
//	ErrSlotUnavailable  -> 422 с причиной
//	ErrPaymentNotActive -> 402
//	ErrSlotConflict     -> 409
//	ErrNotFound         -> 404
//	ErrForbidden        -> 403
func RespondDomainError(w http.ResponseWriter, err error) bool {
	var unavailable *domain.SlotUnavailableError

	switch {
	case errors.As(err, &unavailable):
		RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Message: msgSlotUnavailable,
			Reason:  string(unavailable.Reason),
		})
	case errors.Is(err, domain.ErrSlotUnavailable):
		RespondError(w, http.StatusUnprocessableEntity, msgSlotUnavailable)
	case errors.Is(err, domain.ErrPaymentNotActive):
		RespondError(w, http.StatusPaymentRequired, msgPaymentNotActive)
	case errors.Is(err, domain.ErrSlotConflict):
		RespondConflict(w, msgSlotConflict)
	case errors.Is(err, domain.ErrNotFound):
		RespondNotFound(w, msgNotFound)
	case errors.Is(err, domain.ErrForbidden):
		RespondForbidden(w, msgForbidden)
	default:
		return false
	}
	return true
}
