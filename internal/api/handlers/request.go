package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/period"
)

// MaxWeekOffset насколько недель можно листать выборки по неделям
const MaxWeekOffset = 52

var (
	// ErrEmptyBody тело запроса отсутствует
	ErrEmptyBody = errors.New("request body is empty")

	// ErrOffsetOutOfRange сдвиг недели вне допустимого диапазона
	ErrOffsetOutOfRange = errors.New("week offset out of range")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON разбирает тело запроса и проверяет теги validate
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}

	return validate.Struct(dst)
}

// ValidationMessage человекочитаемое описание ошибки валидации
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("поле %s не проходит проверку %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("поле %s не проходит проверку %s", fe.Field(), fe.Tag())
}

// PathID положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return id, nil
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	return time.Parse(domain.DateFormat, value)
}

// QueryDate необязательная дата из query, нулевое время при отсутствии
func QueryDate(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, nil
	}
	return ParseDate(value)
}

// QueryInt необязательное число из query
func QueryInt(r *http.Request, name string, def int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def, nil
	}
	return strconv.Atoi(value)
}

// QueryInt64 необязательный ID из query, nil при отсутствии
func QueryInt64(r *http.Request, name string) (*int64, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// QueryBool необязательный флаг из query
func QueryBool(r *http.Request, name string) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

// QueryWeek неделя из ?date=&offset=
// Без date берётся сегодняшний день в часовом поясе location
func QueryWeek(r *http.Request, now time.Time, location *time.Location) (period.Period, error) {
	date, err := QueryDate(r, "date")
	if err != nil {
		return period.Period{}, err
	}
	if date.IsZero() {
		date = domain.DateOnly(now.In(location))
	}

	offset, err := QueryInt(r, "offset", 0)
	if err != nil {
		return period.Period{}, err
	}
	if offset < -MaxWeekOffset || offset > MaxWeekOffset {
		return period.Period{}, ErrOffsetOutOfRange
	}

	return period.Shift(period.Current(date), offset), nil
}
