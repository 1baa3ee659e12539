package get_coverage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/service/coverage"
)

type stubService struct {
	today   time.Time
	covered bool
	err     error
	gotID   int64
	gotDate time.Time
	calls   int
}

func (s *stubService) IsCovered(_ context.Context, studentID int64, date time.Time) (bool, error) {
	s.calls++
	s.gotID, s.gotDate = studentID, date
	return s.covered, s.err
}

func (s *stubService) Today() time.Time { return s.today }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *stubService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/students/{studentId}/coverage", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestCoverageForDate(t *testing.T) {
	svc := &stubService{covered: true}
	rec := serve(svc, "/students/5/coverage?date=2025-03-03")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), svc.gotID)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), svc.gotDate)
	assert.JSONEq(t, `{"studentId":5,"date":"2025-03-03","covered":true}`, rec.Body.String())
}

func TestCoverageWithoutDateUsesToday(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := &stubService{today: today}
	rec := serve(svc, "/students/5/coverage")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, today, svc.gotDate)
	assert.JSONEq(t, `{"studentId":5,"date":"2025-06-01","covered":false}`, rec.Body.String())
}

func TestCoverageErrors(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		err      error
		wantCode int
	}{
		{name: "bad student id", url: "/students/zero/coverage", wantCode: http.StatusBadRequest},
		{name: "bad date", url: "/students/5/coverage?date=2025-02-30", wantCode: http.StatusBadRequest},
		{name: "invalid input", url: "/students/5/coverage?date=2025-03-03",
			err: fmt.Errorf("%w: student", coverage.ErrInvalidInput), wantCode: http.StatusBadRequest},
		{name: "payments unavailable", url: "/students/5/coverage?date=2025-03-03",
			err: errors.New("payments down"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := serve(svc, tt.url)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.err == nil {
				assert.Zero(t, svc.calls)
			}
		})
	}
}
