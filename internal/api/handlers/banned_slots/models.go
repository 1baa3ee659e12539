package banned_slots

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// BanSlotRequest HTTP request model для запрета и снятия запрета
type BanSlotRequest struct {
	Date string `json:"date" validate:"required"`
	Hour int    `json:"hour" validate:"min=0,max=23"`
}

// BannedSlotResponse HTTP response model
type BannedSlotResponse struct {
	ID        int64  `json:"id"`
	TeacherID int64  `json:"teacherId"`
	Date      string `json:"date"`
	Hour      int    `json:"hour"`
	CreatedAt string `json:"createdAt"`
}

func fromDomain(b *domain.BannedSlot) *BannedSlotResponse {
	return &BannedSlotResponse{
		ID:        b.ID,
		TeacherID: b.TeacherID,
		Date:      b.Date.Format(domain.DateFormat),
		Hour:      b.Hour,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
