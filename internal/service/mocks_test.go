package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/learn-track/server/internal/domain"
	"github.com/learn-track/server/internal/repository"
)

// MockVideoRepository 观看记录仓储Mock
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

// MockStatsRepository 统计查询Mock
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Overview(ctx context.Context, userID string) (*domain.StatsOverview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsOverview), args.Error(1)
}

func (m *MockStatsRepository) ByCategory(ctx context.Context, userID string) ([]domain.CategoryStat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryStat), args.Error(1)
}

func (m *MockStatsRepository) ByChannel(ctx context.Context, userID string, limit int) ([]domain.ChannelStat, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChannelStat), args.Error(1)
}

func (m *MockStatsRepository) RecentActivity(ctx context.Context, userID string, days int) ([]domain.DailyActivity, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyActivity), args.Error(1)
}

func (m *MockStatsRepository) ActivityDates(ctx context.Context, userID string) ([]time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

// MockUserRepository 用户仓储Mock
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByProvider(ctx context.Context, provider, providerID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) LinkProvider(ctx context.Context, userID, provider, providerID, avatarURL string) error {
	args := m.Called(ctx, userID, provider, providerID, avatarURL)
	return args.Error(0)
}

// MockStatsCache 统计快照缓存Mock
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

// MockGoogleVerifier Google令牌验证Mock
type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleProfile, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GoogleProfile), args.Error(1)
}
