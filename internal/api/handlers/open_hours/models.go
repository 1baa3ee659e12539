package open_hours

import "github.com/m04kA/SMC-LessonService/internal/domain"

// OpenHoursRequest HTTP request model, обе границы включительно
type OpenHoursRequest struct {
	StartHour int `json:"startHour" validate:"min=0,max=23"`
	EndHour   int `json:"endHour" validate:"min=0,max=23,gtefield=StartHour"`
}

// OpenHoursResponse HTTP response model
type OpenHoursResponse struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

func fromDomain(o *domain.OpenHours) *OpenHoursResponse {
	return &OpenHoursResponse{StartHour: o.StartHour, EndHour: o.EndHour}
}
