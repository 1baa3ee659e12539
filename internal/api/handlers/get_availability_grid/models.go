package get_availability_grid

import (
	"github.com/m04kA/SMC-LessonService/internal/domain"
	getGrid "github.com/m04kA/SMC-LessonService/internal/usecase/get_availability_grid"
)

// GridResponse HTTP response model
type GridResponse struct {
	TeacherID int64         `json:"teacherId"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Days      []DayResponse `json:"days"`
}

// DayResponse часы одного дня
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse доступность одного часа
type SlotResponse struct {
	Hour      int    `json:"hour"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getGrid.Response) *GridResponse {
	out := &GridResponse{
		TeacherID: resp.TeacherID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Days:      make([]DayResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, s := range day.Slots {
			slots = append(slots, SlotResponse{Hour: s.Hour, Available: s.Available, Reason: s.Reason})
		}
		out.Days = append(out.Days, DayResponse{Date: day.Date.Format(domain.DateFormat), Slots: slots})
	}

	return out
}
