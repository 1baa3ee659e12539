package domain

import "time"

// LessonStatus represents the lifecycle state of a lesson
type LessonStatus string

const (
	LessonStatusProposed  LessonStatus = "proposed"
	LessonStatusActive    LessonStatus = "active"
	LessonStatusDone      LessonStatus = "done"
	LessonStatusCancelled LessonStatus = "cancelled"
)

// IsValid returns true if the status is one of the known lesson states
func (s LessonStatus) IsValid() bool {
	switch s {
	case LessonStatusProposed, LessonStatusActive, LessonStatusDone, LessonStatusCancelled:
		return true
	}
	return false
}

// Lesson represents a booked lesson between a student and a teacher
type Lesson struct {
	ID        int64
	StudentID int64
	TeacherID int64
	Location  string
	DueDate   time.Time // календарная дата, без времени
	DueHour   int
	IsDone    bool
	IsGrand   bool // категория урока
	Note      *string
	Status    LessonStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slot returns the teacher slot the lesson holds
func (l *Lesson) Slot() Slot {
	return Slot{TeacherID: l.TeacherID, Date: l.DueDate, Hour: l.DueHour}
}

// IsOccupying returns true if the lesson holds its slot (every state except cancelled)
func (l *Lesson) IsOccupying() bool {
	return l.Status != LessonStatusCancelled
}

// IsCancelled returns true if the lesson has been cancelled
func (l *Lesson) IsCancelled() bool {
	return l.Status == LessonStatusCancelled
}

// CanBeCancelled returns true if the lesson can still be cancelled
func (l *Lesson) CanBeCancelled() bool {
	return l.Status == LessonStatusProposed || l.Status == LessonStatusActive
}

// CanBeUpdated returns true if note/isDone can be edited in place
func (l *Lesson) CanBeUpdated() bool {
	return l.Status == LessonStatusActive || l.Status == LessonStatusDone
}

// ApplyDone переводит урок между active и done в соответствии с флагом
func (l *Lesson) ApplyDone(isDone bool) {
	l.IsDone = isDone
	if isDone {
		l.Status = LessonStatusDone
		return
	}
	l.Status = LessonStatusActive
}

// LessonsFilter фильтр для выборки уроков студента или преподавателя
type LessonsFilter struct {
	StudentID        *int64
	TeacherID        *int64
	StartDate        *time.Time
	EndDate          *time.Time
	IncludeCancelled bool
}

// Slot is an addressable (teacher, date, hour) unit of bookable time
type Slot struct {
	TeacherID int64
	Date      time.Time
	Hour      int
}
