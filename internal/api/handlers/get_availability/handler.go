package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/domain"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHour      = "час должен быть в пределах 0..23"
)

type Handler struct {
	resolver AvailabilityResolver
	logger   Logger
}

func NewHandler(resolver AvailabilityResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle GET /api/v1/teachers/{teacherId}/availability?date=&hour=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.PathID(r, "teacherId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	hour, err := handlers.QueryInt(r, "hour", -1)
	if err != nil || !domain.IsValidHour(hour) {
		handlers.RespondBadRequest(w, msgInvalidHour)
		return
	}

	result, err := h.resolver.Resolve(r.Context(), teacherID, date, hour)
	if err != nil {
		h.logger.Error("GET /teachers/{id}/availability - Failed to resolve: teacher_id=%d, error=%v", teacherID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, newAvailabilityResponse(teacherID, date, hour, result))
}
