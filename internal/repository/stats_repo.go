package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learn-track/server/internal/domain"
)

// StatsRepositoryImpl 统计查询实现
type StatsRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewStatsRepository 创建统计查询仓储
func NewStatsRepository(db *pgxpool.Pool) StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

// Overview 统计概览
// 没有记录时返回全零概览，不返回错误
func (r *StatsRepositoryImpl) Overview(ctx context.Context, userID string) (*domain.StatsOverview, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(watch_time), 0),
			COUNT(*) FILTER (WHERE is_completed),
			AVG(rating) FILTER (WHERE rating > 0)
		FROM videos
		WHERE user_id = $1
	`
	var overview domain.StatsOverview
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&overview.TotalVideos,
		&overview.TotalWatchTime,
		&overview.CompletedVideos,
		&overview.AverageRating,
	)
	if err != nil {
		return nil, err
	}
	overview.TotalHours = domain.RoundHours(overview.TotalWatchTime)
	return &overview, nil
}

// ByCategory 按分类统计，按总观看时长倒序
func (r *StatsRepositoryImpl) ByCategory(ctx context.Context, userID string) ([]domain.CategoryStat, error) {
	query := `
		SELECT category, COUNT(*), COALESCE(SUM(watch_time), 0) AS total_time
		FROM videos
		WHERE user_id = $1 AND category <> ''
		GROUP BY category
		ORDER BY total_time DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.CategoryStat
	for rows.Next() {
		var s domain.CategoryStat
		if err := rows.Scan(&s.Category, &s.VideoCount, &s.TotalTime); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// ByChannel 按频道统计，按视频数倒序，数量相同时按频道名升序
func (r *StatsRepositoryImpl) ByChannel(ctx context.Context, userID string, limit int) ([]domain.ChannelStat, error) {
	query := `
		SELECT channel_name, COUNT(*) AS video_count, COALESCE(SUM(watch_time), 0)
		FROM videos
		WHERE user_id = $1 AND channel_name <> ''
		GROUP BY channel_name
		ORDER BY video_count DESC, channel_name ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.ChannelStat
	for rows.Next() {
		var s domain.ChannelStat
		if err := rows.Scan(&s.ChannelName, &s.VideoCount, &s.TotalTime); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// RecentActivity 最近N天的每日观看活动，按日期倒序
// 没有活动的日期不出现在结果里
func (r *StatsRepositoryImpl) RecentActivity(ctx context.Context, userID string, days int) ([]domain.DailyActivity, error) {
	query := `
		SELECT watched_at::date AS day, COUNT(*), COALESCE(SUM(watch_time), 0)
		FROM videos
		WHERE user_id = $1 AND watched_at >= CURRENT_DATE - ($2 - 1) * INTERVAL '1 day'
		GROUP BY day
		ORDER BY day DESC
	`
	rows, err := r.db.Query(ctx, query, userID, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activity []domain.DailyActivity
	for rows.Next() {
		var day time.Time
		var a domain.DailyActivity
		if err := rows.Scan(&day, &a.VideosWatched, &a.TimeWatched); err != nil {
			return nil, err
		}
		a.Date = day.Format("2006-01-02")
		activity = append(activity, a)
	}
	return activity, rows.Err()
}

// ActivityDates 用户所有去重后的活动日期，用于连续天数计算
func (r *StatsRepositoryImpl) ActivityDates(ctx context.Context, userID string) ([]time.Time, error) {
	query := `SELECT DISTINCT watched_at::date FROM videos WHERE user_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
