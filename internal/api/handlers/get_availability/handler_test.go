package get_availability

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

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

type stubResolver struct {
	result    domain.Availability
	err       error
	calls     int
	teacherID int64
	date      time.Time
	hour      int
}

func (s *stubResolver) Resolve(_ context.Context, teacherID int64, date time.Time, hour int) (domain.Availability, error) {
	s.calls++
	s.teacherID, s.date, s.hour = teacherID, date, hour
	return s.result, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(resolver *stubResolver, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/teachers/{teacherId}/availability", NewHandler(resolver, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestAvailability(t *testing.T) {
	tests := []struct {
		name   string
		result domain.Availability
		want   string
	}{
		{
			name:   "available",
			result: domain.Availability{Available: true},
			want:   `{"teacherId":2,"date":"2025-03-03","hour":11,"available":true}`,
		},
		{
			name:   "banned",
			result: domain.Availability{Reason: domain.ReasonBannedSlot},
			want:   `{"teacherId":2,"date":"2025-03-03","hour":11,"available":false,"reason":"BANNED_SLOT"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &stubResolver{result: tt.result}
			rec := serve(resolver, "/teachers/2/availability?date=2025-03-03&hour=11")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
			assert.Equal(t, int64(2), resolver.teacherID)
			assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), resolver.date)
			assert.Equal(t, 11, resolver.hour)
		})
	}
}

func TestAvailabilityHourZeroIsValid(t *testing.T) {
	resolver := &stubResolver{}
	rec := serve(resolver, "/teachers/2/availability?date=2025-03-03&hour=0")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, resolver.hour)
}

func TestAvailabilityErrors(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		err      error
		wantCode int
	}{
		{name: "bad teacher id", url: "/teachers/x/availability?date=2025-03-03&hour=11", wantCode: http.StatusBadRequest},
		{name: "missing date", url: "/teachers/2/availability?hour=11", wantCode: http.StatusBadRequest},
		{name: "malformed date", url: "/teachers/2/availability?date=03/03/2025&hour=11", wantCode: http.StatusBadRequest},
		{name: "missing hour", url: "/teachers/2/availability?date=2025-03-03", wantCode: http.StatusBadRequest},
		{name: "hour 24", url: "/teachers/2/availability?date=2025-03-03&hour=24", wantCode: http.StatusBadRequest},
		{name: "hour not a number", url: "/teachers/2/availability?date=2025-03-03&hour=noon", wantCode: http.StatusBadRequest},
		{name: "resolver failure", url: "/teachers/2/availability?date=2025-03-03&hour=11", err: errors.New("db down"),
			wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &stubResolver{err: tt.err}
			rec := serve(resolver, tt.url)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.err == nil {
				assert.Zero(t, resolver.calls)
			}
		})
	}
}
