package update_lesson

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	updateLesson "github.com/m04kA/SMC-LessonService/internal/usecase/update_lesson"
)

const (
	msgInvalidLessonID    = "некорректный ID урока"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует идентификация пользователя"
)

type Handler struct {
	useCase UpdateLessonUseCase
	logger  Logger
}

func NewHandler(useCase UpdateLessonUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/lessons/{lessonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.PathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("PATCH /lessons/{id} - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req UpdateLessonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /lessons/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, lessonID))
	if err != nil {
		switch {
		case errors.Is(err, updateLesson.ErrInvalidInput):
			h.logger.Warn("PATCH /lessons/{id} - Invalid input: lesson_id=%d: %v", lessonID, err)
			handlers.RespondBadRequest(w, err.Error())

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("PATCH /lessons/{id} - Rejected: lesson_id=%d: %v", lessonID, err)

		default:
			h.logger.Error("PATCH /lessons/{id} - Failed to update lesson: lesson_id=%d, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /lessons/{id} - Lesson updated successfully: lesson_id=%d", lessonID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewLessonResponse(result.Lesson))
}
