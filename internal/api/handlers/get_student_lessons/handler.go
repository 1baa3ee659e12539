package get_student_lessons

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/service/lessons"
	"github.com/m04kA/SMC-LessonService/internal/service/lessons/models"
)

const (
	msgInvalidStudentID = "некорректный ID"
	msgInvalidWeek      = "некорректная неделя, ожидается date=YYYY-MM-DD и offset в пределах ±52"
	msgInvalidFlag      = "некорректное значение includeCancelled"
	msgMissingIdentity  = "отсутствует идентификация пользователя"
)

type Handler struct {
	service  LessonService
	location *time.Location
	logger   Logger
}

func NewHandler(service LessonService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/students/{studentId}/lessons?date=&offset=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.PathID(r, "studentId")
	if err != nil {
		h.logger.Warn("GET /students/{id}/lessons - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	week, err := handlers.QueryWeek(r, time.Now(), h.location)
	if err != nil {
		h.logger.Warn("GET /students/{id}/lessons - Invalid week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	includeCancelled, err := handlers.QueryBool(r, "includeCancelled")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFlag)
		return
	}

	result, err := h.service.ListByStudent(r.Context(), &models.ListLessonsRequest{
		Actor:            actor,
		OwnerID:          ownerID,
		Period:           week,
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		switch {
		case errors.Is(err, lessons.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("GET /students/{id}/lessons - Rejected: student_id=%d: %v", ownerID, err)

		default:
			h.logger.Error("GET /students/{id}/lessons - Failed to get lessons: student_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /students/{id}/lessons - Lessons retrieved successfully: student_id=%d, count=%d",
		ownerID, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewLessonListResponse(result))
}
