package get_availability

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TeacherID int64  `json:"teacherId"`
	Date      string `json:"date"`
	Hour      int    `json:"hour"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func newAvailabilityResponse(teacherID int64, date time.Time, hour int, a domain.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		TeacherID: teacherID,
		Date:      date.Format(domain.DateFormat),
		Hour:      hour,
		Available: a.Available,
		Reason:    string(a.Reason),
	}
}
