package get_availability_grid

import "time"

// MaxWeekOffset насколько недель вперёд или назад можно листать сетку
const MaxWeekOffset = 52

// Request модель запроса сетки доступности
type Request struct {
	TeacherID int64
	Date      time.Time // любой день нужной недели, нулевое значение - сегодня
	Offset    int       // сдвиг в неделях относительно недели Date
}

// Response модель ответа: неделя с понедельника по воскресенье
type Response struct {
	TeacherID int64
	StartDate time.Time
	EndDate   time.Time
	Days      []Day
}

// Day часы одного дня по порядку
type Day struct {
	Date  time.Time
	Slots []Slot
}

// Slot доступность одного часа, Reason пуст для доступного слота
type Slot struct {
	Hour      int
	Available bool
	Reason    string
}
