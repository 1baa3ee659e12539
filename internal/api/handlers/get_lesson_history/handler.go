package get_lesson_history

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/history"
)

const (
	msgInvalidQuery    = "некорректные параметры фильтра"
	msgMissingIdentity = "отсутствует идентификация пользователя"
)

type Handler struct {
	service HistoryService
	logger  Logger
}

func NewHandler(service HistoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lesson-history?studentId=&teacherId=&type=&createdByType=&page=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	filter, page, limit, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /lesson-history - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.Query(r.Context(), actor, filter, page, limit)
	if err != nil {
		switch {
		case errors.Is(err, history.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("GET /lesson-history - Rejected: %v", err)

		default:
			h.logger.Error("GET /lesson-history - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(result))
}

// parseQuery разбирает фильтр; значения enum проверяет сервис
func parseQuery(r *http.Request) (domain.HistoryFilter, int, int, error) {
	var filter domain.HistoryFilter
	var err error

	if filter.StudentID, err = handlers.QueryInt64(r, "studentId"); err != nil {
		return filter, 0, 0, err
	}
	if filter.TeacherID, err = handlers.QueryInt64(r, "teacherId"); err != nil {
		return filter, 0, 0, err
	}

	q := r.URL.Query()
	if v := q.Get("type"); v != "" {
		t := domain.ModifyType(v)
		filter.Type = &t
	}
	if v := q.Get("createdByType"); v != "" {
		t := domain.ActorType(v)
		filter.CreatedByType = &t
	}

	page, err := handlers.QueryInt(r, "page", 0)
	if err != nil {
		return filter, 0, 0, err
	}
	limit, err := handlers.QueryInt(r, "limit", 0)
	if err != nil {
		return filter, 0, 0, err
	}

	return filter, page, limit, nil
}
