package domain

// Actor is the resolved identity of the caller
// Ровно одно из StudentID / TeacherID заполнено; IsAdmin только у преподавателей
type Actor struct {
	IsAdmin   bool
	StudentID *int64
	TeacherID *int64
}

// IsStudent returns true if the actor is the given student
func (a Actor) IsStudent(id int64) bool {
	return a.StudentID != nil && *a.StudentID == id
}

// IsTeacher returns true if the actor is the given teacher
func (a Actor) IsTeacher(id int64) bool {
	return a.TeacherID != nil && *a.TeacherID == id
}

// Attribution возвращает тип и ID автора изменения для журнала
func (a Actor) Attribution() (ActorType, int64) {
	if a.TeacherID != nil {
		return ActorTypeTeacher, *a.TeacherID
	}
	if a.StudentID != nil {
		return ActorTypeStudent, *a.StudentID
	}
	return "", 0
}

// IsIdentified returns true if the actor carries an identity
func (a Actor) IsIdentified() bool {
	return a.StudentID != nil || a.TeacherID != nil
}

// CanManageLesson владелец-студент, преподаватель урока или администратор
func (a Actor) CanManageLesson(l *Lesson) bool {
	return a.IsAdmin || a.IsStudent(l.StudentID) || a.IsTeacher(l.TeacherID)
}

// CanCancelLesson владелец-студент или администратор
func (a Actor) CanCancelLesson(l *Lesson) bool {
	return a.IsAdmin || a.IsStudent(l.StudentID)
}

// CanBookFor студент бронирует себе, преподаватель - к себе, администратор - кому угодно
func (a Actor) CanBookFor(studentID, teacherID int64) bool {
	return a.IsAdmin || a.IsStudent(studentID) || a.IsTeacher(teacherID)
}
