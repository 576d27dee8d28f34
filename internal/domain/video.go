package domain

import "time"

// Video 学习视频观看记录实体
// 约束: 每个用户对同一个外部视频只有一条记录（user_id + video_id 唯一）
type Video struct {
	ID                   string    `json:"id"`                    // UUID
	UserID               string    `json:"user_id"`               // 用户ID
	VideoID              string    `json:"video_id"`              // 外部视频ID（如YouTube视频ID）
	Title                string    `json:"title"`                 // 标题（冗余存储）
	ChannelName          string    `json:"channel_name"`          // 频道名（冗余存储）
	ChannelID            string    `json:"channel_id"`            // 频道ID（冗余存储）
	ThumbnailURL         string    `json:"thumbnail_url"`         // 缩略图URL（冗余存储）
	Category             string    `json:"category"`              // 分类，可为空
	Tags                 []string  `json:"tags"`                  // 标签集合，顺序无意义
	Duration             int       `json:"duration"`              // 视频总长度（秒），0表示未知
	WatchTime            int       `json:"watch_time"`            // 已观看时长（秒），只增不减
	CompletionPercentage int       `json:"completion_percentage"` // 完成百分比 [0,100]
	IsCompleted          bool      `json:"is_completed"`          // 是否已完成，置true后不可回退
	Rating               int       `json:"rating"`                // 评分 1-5，0表示未评分
	Notes                string    `json:"notes"`                 // 笔记
	WatchedAt            time.Time `json:"watched_at"`            // 最近一次观看时间
	CreatedAt            time.Time `json:"created_at"`            // 创建时间
	UpdatedAt            time.Time `json:"updated_at"`            // 更新时间
}

// Validate 验证观看记录数据
func (v *Video) Validate() error {
	if v.UserID == "" {
		return ErrInvalidUserID
	}
	if v.VideoID == "" {
		return ErrInvalidVideoID
	}
	if v.Title == "" {
		return ErrInvalidTitle
	}
	if v.WatchTime < 0 {
		return ErrInvalidWatchTime
	}
	if v.Duration < 0 {
		return ErrInvalidDuration
	}
	if v.Rating < 0 || v.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// CompletionPercent 根据观看时长和视频长度计算完成百分比
// 视频长度未知（0）时返回0，结果限制在 [0,100]
func CompletionPercent(watchTime, duration int) int {
	if duration <= 0 || watchTime <= 0 {
		return 0
	}
	pct := int(float64(watchTime)/float64(duration)*100 + 0.5)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// VideoUpdate 观看记录的部分更新字段
// nil 表示不修改该字段
type VideoUpdate struct {
	Title       *string   `json:"title"`
	ChannelName *string   `json:"channel_name"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	Notes       *string   `json:"notes"`
	Rating      *int      `json:"rating"`
	IsCompleted *bool     `json:"is_completed"`
}

// IsEmpty 是否没有任何待更新字段
func (u *VideoUpdate) IsEmpty() bool {
	return u.Title == nil && u.ChannelName == nil && u.Category == nil &&
		u.Tags == nil && u.Notes == nil && u.Rating == nil && u.IsCompleted == nil
}

// Validate 验证部分更新数据
func (u *VideoUpdate) Validate() error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	if u.Title != nil && *u.Title == "" {
		return ErrInvalidTitle
	}
	if u.Rating != nil && (*u.Rating < 1 || *u.Rating > 5) {
		return ErrInvalidRating
	}
	return nil
}
