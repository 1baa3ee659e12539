package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/domain"
)

const (
	HeaderStudentID = "X-Student-ID"
	HeaderTeacherID = "X-Teacher-ID"
	HeaderIsAdmin   = "X-Is-Admin"
)

const (
	msgInvalidIdentity = "некорректные заголовки идентификации"
	msgMissingIdentity = "отсутствует идентификация пользователя"
)

var (
	errBothIdentities = errors.New("both student and teacher identity given")
	errAdminWithoutID = errors.New("admin flag requires teacher identity")
	errNonPositiveID  = errors.New("identity must be positive")
)

type actorKey struct{}

// WithActor кладёт пользователя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// GetActor достаёт пользователя из контекста, ok == false для анонимного запроса
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	if !ok || !actor.IsIdentified() {
		return domain.Actor{}, false
	}
	return actor, true
}

// Identity разбирает заголовки X-Student-ID / X-Teacher-ID / X-Is-Admin
// Запрос без заголовков проходит как анонимный, противоречивые заголовки отклоняются
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := parseActor(r)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidIdentity)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// RequireActor пропускает только запросы с идентификацией
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetActor(r.Context()); !ok {
			handlers.RespondUnauthorized(w, msgMissingIdentity)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseActor(r *http.Request) (domain.Actor, error) {
	var actor domain.Actor

	studentID, err := headerID(r, HeaderStudentID)
	if err != nil {
		return actor, err
	}
	teacherID, err := headerID(r, HeaderTeacherID)
	if err != nil {
		return actor, err
	}
	if studentID != nil && teacherID != nil {
		return actor, errBothIdentities
	}

	if value := r.Header.Get(HeaderIsAdmin); value != "" {
		actor.IsAdmin, err = strconv.ParseBool(value)
		if err != nil {
			return actor, err
		}
	}
	if actor.IsAdmin && teacherID == nil {
		return actor, errAdminWithoutID
	}

	actor.StudentID = studentID
	actor.TeacherID = teacherID
	return actor, nil
}

func headerID(r *http.Request, name string) (*int64, error) {
	value := r.Header.Get(name)
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errNonPositiveID
	}
	return &id, nil
}
