package weekly_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule/models"
)

const (
	msgInvalidTeacherID   = "некорректный ID преподавателя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует идентификация пользователя"
)

// Handler ручки недельного расписания преподавателя
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

// Get GET /api/v1/teachers/{teacherId}/weekly-availability
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.PathID(r, "teacherId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	result, err := h.service.GetWeeklyAvailability(r.Context(), teacherID)
	if err != nil {
		h.logger.Error("GET /teachers/{id}/weekly-availability - Failed: teacher_id=%d, error=%v", teacherID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(result))
}

// Update PUT /api/v1/teachers/{teacherId}/weekly-availability (только администратор)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.PathID(r, "teacherId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req WeeklyAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /teachers/{id}/weekly-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.SetWeeklyAvailability(r.Context(), &models.SetWeeklyAvailabilityRequest{
		Actor:     actor,
		TeacherID: teacherID,
		Hours:     req.Hours,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("PUT /teachers/{id}/weekly-availability - Rejected: teacher_id=%d: %v", teacherID, err)

		default:
			h.logger.Error("PUT /teachers/{id}/weekly-availability - Failed: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /teachers/{id}/weekly-availability - Saved: teacher_id=%d", teacherID)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(result))
}
