package banned_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule/models"
)

const (
	msgInvalidTeacherID   = "некорректный ID преподавателя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingRange       = "нужны параметры from и to"
	msgAlreadyBanned      = "слот уже запрещен"
	msgMissingIdentity    = "отсутствует идентификация пользователя"
)

// Handler ручки запретов на слоты
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

// List GET /api/v1/teachers/{teacherId}/banned-slots?from=&to=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.PathID(r, "teacherId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if from.IsZero() || to.IsZero() {
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	slots, err := h.service.ListBannedSlots(r.Context(), &models.ListBannedSlotsRequest{TeacherID: teacherID, From: from, To: to})
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /teachers/{id}/banned-slots - Failed: teacher_id=%d, error=%v", teacherID, err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]*BannedSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, fromDomain(s))
	}
	handlers.RespondJSON(w, http.StatusOK, out)
}

// Ban POST /api/v1/teachers/{teacherId}/banned-slots (только администратор)
func (h *Handler) Ban(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parse(w, r)
	if !ok {
		return
	}

	slot, err := h.service.BanSlot(r.Context(), req)
	if err != nil {
		h.respondError(w, "POST", req, err)
		return
	}

	h.logger.Info("POST /teachers/{id}/banned-slots - Slot banned: teacher_id=%d, date=%s, hour=%d",
		req.TeacherID, req.Date.Format(domain.DateFormat), req.Hour)
	handlers.RespondJSON(w, http.StatusCreated, fromDomain(slot))
}

// Unban DELETE /api/v1/teachers/{teacherId}/banned-slots (только администратор)
func (h *Handler) Unban(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parse(w, r)
	if !ok {
		return
	}

	if err := h.service.UnbanSlot(r.Context(), req); err != nil {
		h.respondError(w, "DELETE", req, err)
		return
	}

	h.logger.Info("DELETE /teachers/{id}/banned-slots - Slot unbanned: teacher_id=%d, date=%s, hour=%d",
		req.TeacherID, req.Date.Format(domain.DateFormat), req.Hour)
	handlers.RespondNoContent(w)
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) (*models.BanSlotRequest, bool) {
	teacherID, err := handlers.PathID(r, "teacherId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return nil, false
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return nil, false
	}

	var body BanSlotRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+handlers.ValidationMessage(err))
		return nil, false
	}

	date, err := handlers.ParseDate(body.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return nil, false
	}

	return &models.BanSlotRequest{Actor: actor, TeacherID: teacherID, Date: date, Hour: body.Hour}, true
}

func (h *Handler) respondError(w http.ResponseWriter, method string, req *models.BanSlotRequest, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, schedule.ErrAlreadyBanned):
		handlers.RespondConflict(w, msgAlreadyBanned)

	case handlers.RespondDomainError(w, err):
		h.logger.Warn("%s /teachers/{id}/banned-slots - Rejected: teacher_id=%d: %v", method, req.TeacherID, err)

	default:
		h.logger.Error("%s /teachers/{id}/banned-slots - Failed: teacher_id=%d, error=%v", method, req.TeacherID, err)
		handlers.RespondInternalError(w)
	}
}
