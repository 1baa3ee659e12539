package cancel_lesson

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	cancelLesson "github.com/m04kA/SMC-LessonService/internal/usecase/cancel_lesson"
)

const (
	msgInvalidLessonID = "некорректный ID урока"
	msgMissingIdentity = "отсутствует идентификация пользователя"
)

type Handler struct {
	useCase CancelLessonUseCase
	logger  Logger
}

func NewHandler(useCase CancelLessonUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/lessons/{lessonId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.PathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("PATCH /lessons/{id}/cancel - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelLesson.Request{Actor: actor, LessonID: lessonID})
	if err != nil {
		switch {
		case errors.Is(err, cancelLesson.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		// Повторная отмена уже отмененного урока дает 404
		case handlers.RespondDomainError(w, err):
			h.logger.Warn("PATCH /lessons/{id}/cancel - Rejected: lesson_id=%d: %v", lessonID, err)

		default:
			h.logger.Error("PATCH /lessons/{id}/cancel - Failed to cancel lesson: lesson_id=%d, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /lessons/{id}/cancel - Lesson cancelled successfully: lesson_id=%d", lessonID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
