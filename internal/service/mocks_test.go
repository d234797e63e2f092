package service

import (
	"StationAdmin/internal/model"
	"StationAdmin/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
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

// мок для repo.StationRepository
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
