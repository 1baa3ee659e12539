package get_coverage

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/coverage"
)

const (
	msgInvalidStudentID = "некорректный ID студента"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// CoverageResponse HTTP response model
type CoverageResponse struct {
	StudentID int64  `json:"studentId"`
	Date      string `json:"date"`
	Covered   bool   `json:"covered"`
}

type Handler struct {
	service CoverageService
	logger  Logger
}

func NewHandler(service CoverageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/{studentId}/coverage?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, err := handlers.PathID(r, "studentId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date.IsZero() {
		date = h.service.Today()
	}

	covered, err := h.service.IsCovered(r.Context(), studentID, date)
	if err != nil {
		if errors.Is(err, coverage.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /students/{id}/coverage - Failed to check coverage: student_id=%d, error=%v", studentID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CoverageResponse{
		StudentID: studentID,
		Date:      domain.DateOnly(date).Format(domain.DateFormat),
		Covered:   covered,
	})
}
