package open_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует идентификация пользователя"
)

// Handler ручки часов работы площадки
type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/open-hours
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	oh, err := h.service.GetOpenHours(r.Context())
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			return
		}
		h.logger.Error("GET /open-hours - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(oh))
}

// Update PUT /api/v1/open-hours (только администратор)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req OpenHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /open-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+handlers.ValidationMessage(err))
		return
	}

	oh, err := h.service.SetOpenHours(r.Context(), &models.SetOpenHoursRequest{
		Actor:     actor,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("PUT /open-hours - Rejected: %v", err)

		default:
			h.logger.Error("PUT /open-hours - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /open-hours - Saved: %d..%d", oh.StartHour, oh.EndHour)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(oh))
}
