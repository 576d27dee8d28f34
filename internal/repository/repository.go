package repository

import (
	"context"
	"time"

	"github.com/learn-track/server/internal/domain"
)

// ListFilter 观看记录列表过滤条件
type ListFilter struct {
	Limit    int
	Offset   int
	Category string // 为空时不过滤
	Search   string // 标题或频道名模糊匹配，不区分大小写
}

// VideoRepository 观看记录仓储接口
type VideoRepository interface {
	// Upsert 原子插入或合并观看记录，合并规则在存储端执行
	Upsert(ctx context.Context, video *domain.Video) (*domain.Video, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Video, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]*domain.Video, error)
	Count(ctx context.Context, userID string, filter ListFilter) (int64, error)
	Update(ctx context.Context, userID, id string, update *domain.VideoUpdate) (*domain.Video, error)
	Delete(ctx context.Context, userID, id string) error
}

// UserRepository 用户仓储接口
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByProvider(ctx context.Context, provider, providerID string) (*domain.User, error)
	// LinkProvider 把已有账号关联到第三方登录
	LinkProvider(ctx context.Context, userID, provider, providerID, avatarURL string) error
}

// StatsRepository 统计查询接口，全部为只读查询
type StatsRepository interface {
	Overview(ctx context.Context, userID string) (*domain.StatsOverview, error)
	ByCategory(ctx context.Context, userID string) ([]domain.CategoryStat, error)
	ByChannel(ctx context.Context, userID string, limit int) ([]domain.ChannelStat, error)
	RecentActivity(ctx context.Context, userID string, days int) ([]domain.DailyActivity, error)
	ActivityDates(ctx context.Context, userID string) ([]time.Time, error)
}
