package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/learn-track/server/internal/domain"
	"github.com/learn-track/server/internal/repository"
)

// MockVideoRepository 观看记录仓储 mock
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Upsert(ctx context.Context, video *domain.Video) (*domain.Video, error) {
	args := m.Called(ctx, video)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, userID, id string) (*domain.Video, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) ListByUser(ctx context.Context, userID string, filter repository.ListFilter) ([]*domain.Video, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) Count(ctx context.Context, userID string, filter repository.ListFilter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, userID, id string, update *domain.VideoUpdate) (*domain.Video, error) {
	args := m.Called(ctx, userID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockStatsCache 统计快照缓存 mock
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetSnapshot(ctx context.Context, userID string) (*domain.StatsSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSnapshot), args.Error(1)
}

func (m *MockStatsCache) SetSnapshot(ctx context.Context, userID string, snapshot *domain.StatsSnapshot) error {
	args := m.Called(ctx, userID, snapshot)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
