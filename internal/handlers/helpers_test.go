package handlers_test

import (
	"StationAdmin/internal/config"
	"StationAdmin/internal/handlers"
	"StationAdmin/internal/middleware"
	"StationAdmin/internal/model"
	"StationAdmin/internal/repo"
	"StationAdmin/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockStationRepo struct{ mock.Mock }

func (m *mockStationRepo) ProbeOne(ctx context.Context) ([]map[string]any, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]map[string]any); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStationRepo) List(ctx context.Context, limit int) ([]model.Station, error) {
	args := m.Called(ctx, limit)
	if v, ok := args.Get(0).([]model.Station); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.StationRepository = (*mockStationRepo)(nil)

const testSecret = "test-secret"

// --- Helpers ---
func newTestRouter(t *testing.T, ur repo.UserRepository, sr repo.StationRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)

	if ur == nil {
		ur = &mockUserRepo{}
	}
	if sr == nil {
		sr = &mockStationRepo{}
	}
	h := handlers.NewHandler(service.NewUserService(ur), service.NewStationService(sr), logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
