package domain

import "time"

// ModifyType is the kind of lesson change recorded in history
type ModifyType string

const (
	ModifyTypeCreate ModifyType = "CREATE"
	ModifyTypeCancel ModifyType = "CANCEL"
	ModifyTypeUpdate ModifyType = "UPDATE"
)

// IsValid returns true if the modify type is known
func (t ModifyType) IsValid() bool {
	return t == ModifyTypeCreate || t == ModifyTypeCancel || t == ModifyTypeUpdate
}

// ActorType is the kind of account that made a change
// Администраторы - это аккаунты преподавателей, поэтому отдельного типа нет
type ActorType string

const (
	ActorTypeStudent ActorType = "STUDENT"
	ActorTypeTeacher ActorType = "TEACHER"
)

// IsValid returns true if the actor type is known
func (t ActorType) IsValid() bool {
	return t == ActorTypeStudent || t == ActorTypeTeacher
}

// LessonModifyHistory is an immutable audit entry of a lesson change
type LessonModifyHistory struct {
	ID              int64
	StudentID       *int64
	TeacherID       int64
	LessonID        int64
	SnapshotDueDate time.Time
	SnapshotDueHour int
	ModifyType      ModifyType
	CreatedByType   ActorType
	CreatedByID     int64
	ModifiedAt      time.Time
}

// NewHistoryEntry снимок урока для записи в историю от имени actor
func NewHistoryEntry(lesson *Lesson, modifyType ModifyType, actor Actor) *LessonModifyHistory {
	studentID := lesson.StudentID
	byType, byID := actor.Attribution()

	return &LessonModifyHistory{
		StudentID:       &studentID,
		TeacherID:       lesson.TeacherID,
		LessonID:        lesson.ID,
		SnapshotDueDate: lesson.DueDate,
		SnapshotDueHour: lesson.DueHour,
		ModifyType:      modifyType,
		CreatedByType:   byType,
		CreatedByID:     byID,
	}
}

// HistoryFilter фильтр журнала изменений, nil поля не ограничивают выборку
type HistoryFilter struct {
	StudentID     *int64
	TeacherID     *int64
	Type          *ModifyType
	CreatedByType *ActorType
}

// HistoryPage is one page of history entries ordered newest first
type HistoryPage struct {
	Items []*LessonModifyHistory
	Total int
	Page  int
	Limit int
}
