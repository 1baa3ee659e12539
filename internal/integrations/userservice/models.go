package userservice

// Student модель студента из UserService
type Student struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
}

// Teacher модель преподавателя из UserService
type Teacher struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}
