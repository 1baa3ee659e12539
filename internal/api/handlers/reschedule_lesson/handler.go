package reschedule_lesson

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	rescheduleLesson "github.com/m04kA/SMC-LessonService/internal/usecase/reschedule_lesson"
)

const (
	msgInvalidLessonID    = "некорректный ID урока"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты урока, ожидается YYYY-MM-DD"
	msgDateInPast         = "нельзя перенести урок на прошедшую дату"
	msgSameSlot           = "урок уже стоит в этом слоте"
	msgMissingIdentity    = "отсутствует идентификация пользователя"
)

type Handler struct {
	useCase RescheduleLessonUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleLessonUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons/{lessonId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.PathID(r, "lessonId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req RescheduleLessonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+handlers.ValidationMessage(err))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, lessonID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleLesson.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, rescheduleLesson.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rescheduleLesson.ErrSameSlot):
			handlers.RespondConflict(w, msgSameSlot)

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("POST /lessons/{id}/reschedule - Rejected: lesson_id=%d, date=%s, hour=%d: %v",
				lessonID, req.DueDate, req.DueHour, err)

		default:
			h.logger.Error("POST /lessons/{id}/reschedule - Failed to reschedule: lesson_id=%d, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lessons/{id}/reschedule - Lesson moved: lesson_id=%d -> lesson_id=%d",
		result.Cancelled.ID, result.Created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
