package weekly_availability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule/models"
)

type stubService struct {
	stored *domain.TeacherWeeklyAvailability
	getErr error
	setReq *models.SetWeeklyAvailabilityRequest
	setErr error
}

func (s *stubService) GetWeeklyAvailability(_ context.Context, teacherID int64) (*domain.TeacherWeeklyAvailability, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.stored == nil {
		return &domain.TeacherWeeklyAvailability{TeacherID: teacherID, Hours: domain.WeeklyAvailability{}}, nil
	}
	return s.stored, nil
}

func (s *stubService) SetWeeklyAvailability(_ context.Context, req *models.SetWeeklyAvailabilityRequest) (*domain.TeacherWeeklyAvailability, error) {
	s.setReq = req
	if s.setErr != nil {
		return nil, s.setErr
	}
	return &domain.TeacherWeeklyAvailability{TeacherID: req.TeacherID, Hours: req.Hours}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc *stubService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.Use(middleware.Identity)
	r.HandleFunc("/teachers/{teacherId}/weekly-availability", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/teachers/{teacherId}/weekly-availability", h.Update).Methods(http.MethodPut)
	return r
}

func do(r *mux.Router, method, url, body string, admin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if admin {
		req.Header.Set(middleware.HeaderTeacherID, "9")
		req.Header.Set(middleware.HeaderIsAdmin, "true")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetWeeklyAvailability(t *testing.T) {
	svc := &stubService{stored: &domain.TeacherWeeklyAvailability{
		TeacherID: 2,
		Hours:     domain.WeeklyAvailability{domain.Monday: {10, 11}, domain.Friday: {18}},
	}}
	rec := do(newRouter(svc), http.MethodGet, "/teachers/2/weekly-availability", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"teacherId":2,"hours":{"mon":[10,11],"fri":[18]}}`, rec.Body.String())
}

func TestGetWeeklyAvailabilityUnknownTeacherIsEmpty(t *testing.T) {
	rec := do(newRouter(&stubService{}), http.MethodGet, "/teachers/7/weekly-availability", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"teacherId":7,"hours":{}}`, rec.Body.String())
}

func TestSetWeeklyAvailability(t *testing.T) {
	svc := &stubService{}
	rec := do(newRouter(svc), http.MethodPut, "/teachers/2/weekly-availability", `{"hours":{"mon":[10],"sun":[]}}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.setReq)
	assert.Equal(t, int64(2), svc.setReq.TeacherID)
	assert.True(t, svc.setReq.Actor.IsAdmin)
	assert.Equal(t, []int{10}, svc.setReq.Hours[domain.Monday])
	assert.Contains(t, svc.setReq.Hours, domain.Sunday)
}

func TestWeeklyAvailabilityErrors(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		url      string
		body     string
		admin    bool
		svc      *stubService
		wantCode int
	}{
		{name: "get bad id", method: http.MethodGet, url: "/teachers/x/weekly-availability", svc: &stubService{}, wantCode: http.StatusBadRequest},
		{name: "get storage failure", method: http.MethodGet, url: "/teachers/2/weekly-availability",
			svc: &stubService{getErr: errors.New("db down")}, wantCode: http.StatusInternalServerError},
		{name: "update anonymous", method: http.MethodPut, url: "/teachers/2/weekly-availability", body: `{"hours":{}}`,
			svc: &stubService{}, wantCode: http.StatusUnauthorized},
		{name: "update missing hours", method: http.MethodPut, url: "/teachers/2/weekly-availability", body: `{}`, admin: true,
			svc: &stubService{}, wantCode: http.StatusBadRequest},
		{name: "update hours not a list", method: http.MethodPut, url: "/teachers/2/weekly-availability", body: `{"hours":{"mon":10}}`, admin: true,
			svc: &stubService{}, wantCode: http.StatusBadRequest},
		{name: "update invalid schedule", method: http.MethodPut, url: "/teachers/2/weekly-availability", body: `{"hours":{"xyz":[10]}}`, admin: true,
			svc: &stubService{setErr: schedule.ErrInvalidInput}, wantCode: http.StatusBadRequest},
		{name: "update not admin", method: http.MethodPut, url: "/teachers/2/weekly-availability", body: `{"hours":{"mon":[10]}}`, admin: true,
			svc: &stubService{setErr: domain.ErrForbidden}, wantCode: http.StatusForbidden},
		{name: "update storage failure", method: http.MethodPut, url: "/teachers/2/weekly-availability", body: `{"hours":{"mon":[10]}}`, admin: true,
			svc: &stubService{setErr: errors.New("db down")}, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newRouter(tt.svc), tt.method, tt.url, tt.body, tt.admin)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
