package get_availability_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	getGrid "github.com/m04kA/SMC-LessonService/internal/usecase/get_availability_grid"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidOffset    = "некорректный сдвиг недели"
)

type Handler struct {
	useCase GetAvailabilityGridUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/teachers/{teacherId}/availability-grid?date=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.PathID(r, "teacherId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	// Пустая дата - текущая неделя, её определяет use case
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	offset, err := handlers.QueryInt(r, "offset", 0)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOffset)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getGrid.Request{TeacherID: teacherID, Date: date, Offset: offset})
	if err != nil {
		switch {
		case errors.Is(err, getGrid.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("GET /teachers/{id}/availability-grid - Rejected: teacher_id=%d: %v", teacherID, err)

		default:
			h.logger.Error("GET /teachers/{id}/availability-grid - Failed to build grid: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
