package create_lesson

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	createLesson "github.com/m04kA/SMC-LessonService/internal/usecase/create_lesson"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты урока, ожидается YYYY-MM-DD"
	msgDateInPast         = "нельзя записаться на прошедшую дату"
	msgMissingIdentity    = "отсутствует идентификация пользователя"
)

type Handler struct {
	useCase CreateLessonUseCase
	logger  Logger
}

func NewHandler(useCase CreateLessonUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req CreateLessonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+handlers.ValidationMessage(err))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /lessons - Invalid date %q: %v", req.DueDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createLesson.ErrInvalidInput):
			h.logger.Warn("POST /lessons - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createLesson.ErrDateInPast):
			h.logger.Warn("POST /lessons - Date in past: student_id=%d, date=%s", req.StudentID, req.DueDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("POST /lessons - Rejected: student_id=%d, teacher_id=%d, date=%s, hour=%d: %v",
				req.StudentID, req.TeacherID, req.DueDate, req.DueHour, err)

		default:
			h.logger.Error("POST /lessons - Failed to create lesson: student_id=%d, teacher_id=%d, error=%v",
				req.StudentID, req.TeacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lessons - Lesson created successfully: lesson_id=%d, student_id=%d, teacher_id=%d",
		result.Lesson.ID, req.StudentID, req.TeacherID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
