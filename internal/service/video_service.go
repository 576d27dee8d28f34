package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/learn-track/server/internal/cache"
	"github.com/learn-track/server/internal/domain"
	"github.com/learn-track/server/internal/repository"
)

const (
	// DefaultListLimit 列表默认页大小
	DefaultListLimit = 50
	// MaxListLimit 列表最大页大小
	MaxListLimit = 100
)

// WatchObservation 一次观看上报
type WatchObservation struct {
	VideoID      string
	Title        string
	ChannelName  string
	ChannelID    string
	ThumbnailURL string
	Category     string
	Tags         []string
	Duration     int
	WatchTime    int
	IsCompleted  bool
}

// VideoService 观看记录服务
type VideoService struct {
	repo  repository.VideoRepository
	cache cache.StatsCache
}

// NewVideoService 创建观看记录服务
func NewVideoService(repo repository.VideoRepository, statsCache cache.StatsCache) *VideoService {
	return &VideoService{
		repo:  repo,
		cache: statsCache,
	}
}

// RecordWatch 记录一次观看，同一 (user, video) 的记录按合并规则更新
func (s *VideoService) RecordWatch(ctx context.Context, userID string, obs WatchObservation) (*domain.Video, error) {
	video := &domain.Video{
		ID:                   uuid.New().String(),
		UserID:               userID,
		VideoID:              obs.VideoID,
		Title:                obs.Title,
		ChannelName:          obs.ChannelName,
		ChannelID:            obs.ChannelID,
		ThumbnailURL:         obs.ThumbnailURL,
		Category:             obs.Category,
		Tags:                 obs.Tags,
		Duration:             obs.Duration,
		WatchTime:            obs.WatchTime,
		CompletionPercentage: domain.CompletionPercent(obs.WatchTime, obs.Duration),
		IsCompleted:          obs.IsCompleted || (obs.Duration > 0 && obs.WatchTime >= obs.Duration),
	}
	// tags 列不允许NULL
	if video.Tags == nil {
		video.Tags = []string{}
	}

	// 验证数据
	if err := video.Validate(); err != nil {
		return nil, err
	}

	// 原子插入或合并
	merged, err := s.repo.Upsert(ctx, video)
	if err != nil {
		return nil, err
	}

	// 写入后让统计快照缓存失效，失败不影响主流程
	_ = s.cache.Invalidate(ctx, userID)

	return merged, nil
}

// GetVideo 获取观看记录详情
func (s *VideoService) GetVideo(ctx context.Context, userID, videoID string) (*domain.Video, error) {
	return s.repo.GetByID(ctx, userID, videoID)
}

// ListVideos 获取观看记录列表，按最近观看时间倒序
// 分页参数在这里归一化并写回filter，调用方据此构造分页元数据
func (s *VideoService) ListVideos(ctx context.Context, userID string, filter *repository.ListFilter) ([]*domain.Video, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	videos, err := s.repo.ListByUser(ctx, userID, *filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, userID, *filter)
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// UpdateVideo 部分更新观看记录（笔记、评分、分类等），至少要有一个字段
func (s *VideoService) UpdateVideo(ctx context.Context, userID, videoID string, update *domain.VideoUpdate) (*domain.Video, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	video, err := s.repo.Update(ctx, userID, videoID, update)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, userID)

	return video, nil
}

// DeleteVideo 删除观看记录
func (s *VideoService) DeleteVideo(ctx context.Context, userID, videoID string) error {
	if err := s.repo.Delete(ctx, userID, videoID); err != nil {
		return err
	}

	_ = s.cache.Invalidate(ctx, userID)

	return nil
}
