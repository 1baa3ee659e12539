package get_lesson

import (
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
)

const (
	msgInvalidLessonID = "некорректный ID урока"
	msgMissingIdentity = "отсутствует идентификация пользователя"
)

type Handler struct {
	service LessonService
	logger  Logger
}

func NewHandler(service LessonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lessons/{lessonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.PathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("GET /lessons/{id} - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /lessons/{id} - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	// Сервис сам проверит права доступа
	lesson, err := h.service.GetByID(r.Context(), actor, lessonID)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /lessons/{id} - Rejected: lesson_id=%d: %v", lessonID, err)
			return
		}
		h.logger.Error("GET /lessons/{id} - Failed to get lesson: lesson_id=%d, error=%v", lessonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lessons/{id} - Lesson retrieved successfully: lesson_id=%d", lessonID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewLessonResponse(lesson))
}
