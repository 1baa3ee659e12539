package banned_slots

import (
	"context"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule/models"
)

type ScheduleService interface {
	BanSlot(ctx context.Context, req *models.BanSlotRequest) (*domain.BannedSlot, error)
	UnbanSlot(ctx context.Context, req *models.BanSlotRequest) error
	ListBannedSlots(ctx context.Context, req *models.ListBannedSlotsRequest) ([]*domain.BannedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
