package domain

import (
	"math"
	"time"
)

// StatsOverview 统计概览
type StatsOverview struct {
	TotalVideos     int64    `json:"total_videos"`
	TotalWatchTime  int64    `json:"total_watch_time"` // 秒
	TotalHours      float64  `json:"total_hours"`      // 保留一位小数
	CompletedVideos int64    `json:"completed_videos"`
	AverageRating   *float64 `json:"average_rating"` // 没有任何评分时为null
}

// CategoryStat 按分类统计
type CategoryStat struct {
	Category   string `json:"category"`
	VideoCount int64  `json:"video_count"`
	TotalTime  int64  `json:"total_time"`
}

// ChannelStat 按频道统计
type ChannelStat struct {
	ChannelName string `json:"channel_name"`
	VideoCount  int64  `json:"video_count"`
	TotalTime   int64  `json:"total_time"`
}

// DailyActivity 单日观看活动
type DailyActivity struct {
	Date          string `json:"date"` // YYYY-MM-DD
	VideosWatched int64  `json:"videos_watched"`
	TimeWatched   int64  `json:"time_watched"`
}

// StatsSnapshot 用户学习统计快照
type StatsSnapshot struct {
	Overview       StatsOverview   `json:"overview"`
	ByCategory     []CategoryStat  `json:"by_category"`
	ByChannel      []ChannelStat   `json:"by_channel"`
	RecentActivity []DailyActivity `json:"recent_activity"`
	CurrentStreak  int             `json:"current_streak"`
}

// RoundHours 秒数换算为小时，保留一位小数
func RoundHours(seconds int64) float64 {
	return math.Round(float64(seconds)/3600*10) / 10
}

// CurrentStreak 计算从今天起连续有观看活动的天数
// dates 为去重后的活动日期集合，today 为当天日期（仅取年月日）
// 今天没有活动则连续天数为0，不回退到昨天的连续段
func CurrentStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	active := make(map[string]bool, len(dates))
	for _, d := range dates {
		active[d.Format("2006-01-02")] = true
	}

	streak := 0
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for active[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
