package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/learn-track/server/internal/cache"
	"github.com/learn-track/server/internal/domain"
	"github.com/learn-track/server/internal/repository"
)

const (
	// TopChannelLimit 频道排行的条数上限
	TopChannelLimit = 10
	// RecentActivityDays 最近活动的统计天数
	RecentActivityDays = 30
)

// StatsService 学习统计服务
type StatsService struct {
	repo  repository.StatsRepository
	cache cache.StatsCache
	now   func() time.Time
}

// NewStatsService 创建统计服务
func NewStatsService(repo repository.StatsRepository, statsCache cache.StatsCache) *StatsService {
	return &StatsService{
		repo:  repo,
		cache: statsCache,
		now:   time.Now,
	}
}

// ComputeStats 计算用户的学习统计快照
// 五个子查询互相独立，并发执行后汇总; 任何一个失败整体失败
// 没有任何记录时返回全零快照，不是错误
func (s *StatsService) ComputeStats(ctx context.Context, userID string) (*domain.StatsSnapshot, error) {
	// 先查缓存
	if snapshot, err := s.cache.GetSnapshot(ctx, userID); err == nil {
		return snapshot, nil
	}

	var (
		overview   *domain.StatsOverview
		byCategory []domain.CategoryStat
		byChannel  []domain.ChannelStat
		activity   []domain.DailyActivity
		dates      []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview, err = s.repo.Overview(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		byCategory, err = s.repo.ByCategory(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		byChannel, err = s.repo.ByChannel(gctx, userID, TopChannelLimit)
		return err
	})
	g.Go(func() error {
		var err error
		activity, err = s.repo.RecentActivity(gctx, userID, RecentActivityDays)
		return err
	})
	g.Go(func() error {
		var err error
		dates, err = s.repo.ActivityDates(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &domain.StatsSnapshot{
		Overview:       *overview,
		ByCategory:     byCategory,
		ByChannel:      byChannel,
		RecentActivity: activity,
		CurrentStreak:  domain.CurrentStreak(dates, s.now()),
	}
	// 空列表序列化为 [] 而不是 null
	if snapshot.ByCategory == nil {
		snapshot.ByCategory = []domain.CategoryStat{}
	}
	if snapshot.ByChannel == nil {
		snapshot.ByChannel = []domain.ChannelStat{}
	}
	if snapshot.RecentActivity == nil {
		snapshot.RecentActivity = []domain.DailyActivity{}
	}

	// 回填缓存，失败不影响主流程
	_ = s.cache.SetSnapshot(ctx, userID, snapshot)

	return snapshot, nil
}
