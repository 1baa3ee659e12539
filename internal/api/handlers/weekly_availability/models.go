package weekly_availability

import "github.com/m04kA/SMC-LessonService/internal/domain"

// WeeklyAvailabilityRequest HTTP request model: {"hours": {"mon": [10, 11]}}
type WeeklyAvailabilityRequest struct {
	Hours domain.WeeklyAvailability `json:"hours" validate:"required"`
}

// WeeklyAvailabilityResponse HTTP response model
type WeeklyAvailabilityResponse struct {
	TeacherID int64                     `json:"teacherId"`
	Hours     domain.WeeklyAvailability `json:"hours"`
}

func fromDomain(a *domain.TeacherWeeklyAvailability) *WeeklyAvailabilityResponse {
	return &WeeklyAvailabilityResponse{TeacherID: a.TeacherID, Hours: a.Hours}
}
