package update_lesson

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	updateLesson "github.com/m04kA/SMC-LessonService/internal/usecase/update_lesson"
)

type stubUseCase struct {
	got *updateLesson.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *updateLesson.Request) (*updateLesson.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	lesson := &domain.Lesson{
		ID:      req.LessonID,
		DueDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		Note:    req.Note,
		Status:  domain.LessonStatusActive,
	}
	if req.IsDone != nil {
		lesson.IsDone = *req.IsDone
	}
	return &updateLesson.Response{Lesson: lesson}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *stubUseCase, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Identity)
	r.HandleFunc("/lessons/{lessonId}", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set(middleware.HeaderTeacherID, "2")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpdateLesson(t *testing.T) {
	uc := &stubUseCase{}
	rec := serve(uc, "/lessons/7", `{"note":"повторить","isDone":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.LessonID)
	require.NotNil(t, uc.got.Actor.TeacherID)
	assert.Equal(t, int64(2), *uc.got.Actor.TeacherID)
	require.NotNil(t, uc.got.Note)
	assert.Equal(t, "повторить", *uc.got.Note)
	require.NotNil(t, uc.got.IsDone)
	assert.True(t, *uc.got.IsDone)
	assert.Contains(t, rec.Body.String(), `"isDone":true`)
}

func TestUpdateLessonOmittedFieldsStayNil(t *testing.T) {
	uc := &stubUseCase{}
	rec := serve(uc, "/lessons/7", `{"isDone":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.Note)
	require.NotNil(t, uc.got.IsDone)
	assert.False(t, *uc.got.IsDone)
}

func TestUpdateLessonErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		err      error
		wantCode int
	}{
		{name: "bad id", path: "/lessons/x", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "unknown field", path: "/lessons/7", body: `{"status":"done"}`, wantCode: http.StatusBadRequest},
		{name: "note too long", path: "/lessons/7", body: `{"note":"` + strings.Repeat("a", 501) + `"}`, wantCode: http.StatusBadRequest},
		{name: "empty body", path: "/lessons/7", body: ``, wantCode: http.StatusBadRequest},
		{name: "invalid input", path: "/lessons/7", body: `{}`, err: fmt.Errorf("%w: nothing to update", updateLesson.ErrInvalidInput), wantCode: http.StatusBadRequest},
		{name: "not found", path: "/lessons/7", body: `{"isDone":true}`, err: domain.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "forbidden", path: "/lessons/7", body: `{"isDone":true}`, err: domain.ErrForbidden, wantCode: http.StatusForbidden},
		{name: "internal", path: "/lessons/7", body: `{"isDone":true}`, err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
