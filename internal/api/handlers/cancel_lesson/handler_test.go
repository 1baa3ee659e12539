package cancel_lesson

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	cancelLesson "github.com/m04kA/SMC-LessonService/internal/usecase/cancel_lesson"
)

type stubUseCase struct {
	got *cancelLesson.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *cancelLesson.Request) (*cancelLesson.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &cancelLesson.Response{
		Lesson: &domain.Lesson{
			ID:      req.LessonID,
			DueDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			Status:  domain.LessonStatusCancelled,
		},
		HistoryID: 31,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *stubUseCase, path string, headers map[string]string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Identity)
	r.HandleFunc("/lessons/{lessonId}/cancel", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

var student = map[string]string{middleware.HeaderStudentID: "5"}

func TestCancelLesson(t *testing.T) {
	uc := &stubUseCase{}
	rec := serve(uc, "/lessons/7/cancel", student)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.got.LessonID)
	require.NotNil(t, uc.got.Actor.StudentID)
	assert.Equal(t, int64(5), *uc.got.Actor.StudentID)
	assert.Contains(t, rec.Body.String(), `"historyId":31`)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}

func TestCancelLessonErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		headers  map[string]string
		err      error
		wantCode int
	}{
		{name: "bad id", path: "/lessons/-1/cancel", headers: student, wantCode: http.StatusBadRequest},
		{name: "anonymous", path: "/lessons/7/cancel", wantCode: http.StatusUnauthorized},
		{name: "conflicting identity headers", path: "/lessons/7/cancel",
			headers: map[string]string{middleware.HeaderStudentID: "5", middleware.HeaderTeacherID: "2"}, wantCode: http.StatusBadRequest},
		{name: "invalid input", path: "/lessons/7/cancel", headers: student, err: cancelLesson.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "already cancelled", path: "/lessons/7/cancel", headers: student, err: domain.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "foreign lesson", path: "/lessons/7/cancel", headers: student, err: domain.ErrForbidden, wantCode: http.StatusForbidden},
		{name: "serialization conflict", path: "/lessons/7/cancel", headers: student, err: domain.ErrSlotConflict, wantCode: http.StatusConflict},
		{name: "internal", path: "/lessons/7/cancel", headers: student, err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.path, tt.headers)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
