package banned_slots

import (
	"context"
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
	banned   []*models.BanSlotRequest
	banErr   error
	unbanErr error
	listReq  *models.ListBannedSlotsRequest
}

func (s *stubService) BanSlot(_ context.Context, req *models.BanSlotRequest) (*domain.BannedSlot, error) {
	if s.banErr != nil {
		return nil, s.banErr
	}
	s.banned = append(s.banned, req)
	return &domain.BannedSlot{ID: 1, TeacherID: req.TeacherID, Date: req.Date, Hour: req.Hour}, nil
}

func (s *stubService) UnbanSlot(context.Context, *models.BanSlotRequest) error {
	return s.unbanErr
}

func (s *stubService) ListBannedSlots(_ context.Context, req *models.ListBannedSlotsRequest) ([]*domain.BannedSlot, error) {
	s.listReq = req
	return []*domain.BannedSlot{}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc *stubService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.Use(middleware.Identity)
	r.HandleFunc("/teachers/{teacherId}/banned-slots", h.List).Methods(http.MethodGet)
	r.HandleFunc("/teachers/{teacherId}/banned-slots", h.Ban).Methods(http.MethodPost)
	r.HandleFunc("/teachers/{teacherId}/banned-slots", h.Unban).Methods(http.MethodDelete)
	return r
}

func do(r *mux.Router, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set(middleware.HeaderTeacherID, "9")
	req.Header.Set(middleware.HeaderIsAdmin, "true")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestBanSlot(t *testing.T) {
	svc := &stubService{}
	rec := do(newRouter(svc), http.MethodPost, "/teachers/2/banned-slots", `{"date":"2025-03-03","hour":11}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.banned, 1)
	assert.Equal(t, int64(2), svc.banned[0].TeacherID)
	assert.True(t, svc.banned[0].Actor.IsAdmin)
	assert.Contains(t, rec.Body.String(), `"date":"2025-03-03"`)
}

func TestBanSlotErrors(t *testing.T) {
	rec := do(newRouter(&stubService{banErr: schedule.ErrAlreadyBanned}), http.MethodPost,
		"/teachers/2/banned-slots", `{"date":"2025-03-03","hour":11}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(newRouter(&stubService{banErr: domain.ErrForbidden}), http.MethodPost,
		"/teachers/2/banned-slots", `{"date":"2025-03-03","hour":11}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(newRouter(&stubService{unbanErr: domain.ErrNotFound}), http.MethodDelete,
		"/teachers/2/banned-slots", `{"date":"2025-03-03","hour":11}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(newRouter(&stubService{}), http.MethodDelete,
		"/teachers/2/banned-slots", `{"date":"2025-03-03","hour":11}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListBannedSlotsRequiresRange(t *testing.T) {
	svc := &stubService{}
	r := newRouter(svc)

	rec := do(r, http.MethodGet, "/teachers/2/banned-slots?from=2025-03-03", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.listReq)

	rec = do(r, http.MethodGet, "/teachers/2/banned-slots?from=2025-03-03&to=2025-03-09", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.listReq)
	assert.Equal(t, int64(2), svc.listReq.TeacherID)
}
