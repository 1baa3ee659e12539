package get_availability_grid

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TeacherID <= 0 {
		return fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}

	if req.Offset < -MaxWeekOffset || req.Offset > MaxWeekOffset {
		return fmt.Errorf("%w: offset must be within -%d..%d weeks", ErrInvalidInput, MaxWeekOffset, MaxWeekOffset)
	}

	return nil
}
