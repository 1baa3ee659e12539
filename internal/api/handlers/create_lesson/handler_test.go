package create_lesson

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	createLesson "github.com/m04kA/SMC-LessonService/internal/usecase/create_lesson"
)

type stubUseCase struct {
	got *createLesson.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *createLesson.Request) (*createLesson.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &createLesson.Response{
		Lesson: &domain.Lesson{
			ID:        10,
			StudentID: req.StudentID,
			TeacherID: req.TeacherID,
			Location:  req.Location,
			DueDate:   req.Date,
			DueHour:   req.Hour,
			Status:    domain.LessonStatusActive,
		},
		HistoryID: 3,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"studentId":1,"teacherId":2,"location":"Room 1","dueDate":"2025-03-03","dueHour":11}`

func serve(uc *stubUseCase, body string, headers map[string]string) *httptest.ResponseRecorder {
	handler := middleware.Identity(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lessons", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateLessonSuccess(t *testing.T) {
	uc := &stubUseCase{}
	rec := serve(uc, validBody, map[string]string{middleware.HeaderStudentID: "1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, uc.got.Actor.IsStudent(1))
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Equal(t, 11, uc.got.Hour)

	var resp CreateLessonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Lesson.ID)
	assert.Equal(t, "2025-03-03", resp.Lesson.DueDate)
	assert.Equal(t, "active", resp.Lesson.Status)
	assert.Equal(t, int64(3), resp.HistoryID)
}

func TestCreateLessonErrors(t *testing.T) {
	student := map[string]string{middleware.HeaderStudentID: "1"}

	tests := []struct {
		name       string
		body       string
		headers    map[string]string
		err        error
		wantStatus int
		wantReason string
	}{
		{name: "anonymous", body: validBody, wantStatus: http.StatusUnauthorized},
		{name: "malformed json", body: `{"studentId":`, headers: student, wantStatus: http.StatusBadRequest},
		{name: "hour out of range", body: strings.Replace(validBody, `"dueHour":11`, `"dueHour":24`, 1), headers: student, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: strings.Replace(validBody, "2025-03-03", "03/03/2025", 1), headers: student, wantStatus: http.StatusBadRequest},
		{name: "date in past", body: validBody, headers: student, err: createLesson.ErrDateInPast, wantStatus: http.StatusBadRequest},
		{name: "slot unavailable", body: validBody, headers: student,
			err: domain.NewSlotUnavailableError(domain.ReasonNotWorkingHours), wantStatus: http.StatusUnprocessableEntity, wantReason: "NOT_WORKING_HOURS"},
		{name: "payment not active", body: validBody, headers: student, err: domain.ErrPaymentNotActive, wantStatus: http.StatusPaymentRequired},
		{name: "slot conflict", body: validBody, headers: student, err: domain.ErrSlotConflict, wantStatus: http.StatusConflict},
		{name: "forbidden", body: validBody, headers: student, err: domain.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "internal", body: validBody, headers: student, err: createLesson.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.body, tt.headers)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantReason, resp.Reason)
		})
	}
}
