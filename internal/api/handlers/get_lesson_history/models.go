package get_lesson_history

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// HistoryEntryResponse HTTP модель записи журнала
type HistoryEntryResponse struct {
	ID              int64  `json:"id"`
	StudentID       *int64 `json:"studentId,omitempty"`
	TeacherID       int64  `json:"teacherId"`
	LessonID        int64  `json:"lessonId"`
	SnapshotDueDate string `json:"snapshotDueDate"`
	SnapshotDueHour int    `json:"snapshotDueHour"`
	ModifyType      string `json:"modifyType"`
	CreatedByType   string `json:"createdByType"`
	CreatedByID     int64  `json:"createdById"`
	ModifiedAt      string `json:"modifiedAt"`
}

// HistoryPageResponse HTTP модель страницы журнала
type HistoryPageResponse struct {
	Items []*HistoryEntryResponse `json:"items"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}

func fromDomain(p *domain.HistoryPage) *HistoryPageResponse {
	out := &HistoryPageResponse{
		Items: make([]*HistoryEntryResponse, 0, len(p.Items)),
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}

	for _, e := range p.Items {
		out.Items = append(out.Items, &HistoryEntryResponse{
			ID:              e.ID,
			StudentID:       e.StudentID,
			TeacherID:       e.TeacherID,
			LessonID:        e.LessonID,
			SnapshotDueDate: e.SnapshotDueDate.Format(domain.DateFormat),
			SnapshotDueHour: e.SnapshotDueHour,
			ModifyType:      string(e.ModifyType),
			CreatedByType:   string(e.CreatedByType),
			CreatedByID:     e.CreatedByID,
			ModifiedAt:      e.ModifiedAt.Format(time.RFC3339),
		})
	}

	return out
}
