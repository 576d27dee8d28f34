package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learn-track/server/internal/domain"
)

const videoColumns = `id, user_id, video_id, title, channel_name, channel_id, thumbnail_url,
		category, tags, duration, watch_time, completion_percentage, is_completed,
		rating, notes, watched_at, created_at, updated_at`

// VideoRepositoryImpl 观看记录仓储实现
type VideoRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewVideoRepository 创建观看记录仓储
func NewVideoRepository(db *pgxpool.Pool) VideoRepository {
	return &VideoRepositoryImpl{db: db}
}

// Upsert 原子插入或合并观看记录
// 合并规则: 观看时长取最大值，完成状态只进不退，完成百分比按传入的视频长度重算
// （长度未知时保留旧值），描述性字段整体覆盖，watched_at 每次刷新
// 合并运算必须在 ON CONFLICT 的 SET 子句里执行，避免并发写入丢失更新
func (r *VideoRepositoryImpl) Upsert(ctx context.Context, video *domain.Video) (*domain.Video, error) {
	query := `
		INSERT INTO videos (id, user_id, video_id, title, channel_name, channel_id, thumbnail_url,
			category, tags, duration, watch_time, completion_percentage, is_completed,
			watched_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now(), now())
		ON CONFLICT (user_id, video_id) DO UPDATE SET
			title = EXCLUDED.title,
			channel_name = EXCLUDED.channel_name,
			channel_id = EXCLUDED.channel_id,
			thumbnail_url = EXCLUDED.thumbnail_url,
			category = EXCLUDED.category,
			tags = EXCLUDED.tags,
			duration = EXCLUDED.duration,
			watch_time = GREATEST(videos.watch_time, EXCLUDED.watch_time),
			completion_percentage = CASE
				WHEN EXCLUDED.duration > 0 THEN
					LEAST(100, ROUND(GREATEST(videos.watch_time, EXCLUDED.watch_time)::numeric
						/ EXCLUDED.duration * 100))::int
				ELSE videos.completion_percentage
			END,
			is_completed = videos.is_completed OR EXCLUDED.is_completed
				OR (EXCLUDED.duration > 0
					AND GREATEST(videos.watch_time, EXCLUDED.watch_time) >= EXCLUDED.duration),
			watched_at = now(),
			updated_at = now()
		RETURNING ` + videoColumns

	row := r.db.QueryRow(ctx, query,
		video.ID,
		video.UserID,
		video.VideoID,
		video.Title,
		video.ChannelName,
		video.ChannelID,
		video.ThumbnailURL,
		video.Category,
		video.Tags,
		video.Duration,
		video.WatchTime,
		video.CompletionPercentage,
		video.IsCompleted,
	)
	return scanVideo(row)
}

// GetByID 获取用户的一条观看记录
// 记录属于其他用户时同样返回 ErrVideoNotFound
func (r *VideoRepositoryImpl) GetByID(ctx context.Context, userID, id string) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE user_id = $1 AND id = $2`

	video, err := scanVideo(r.db.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

// ListByUser 获取用户的观看记录列表，按最近观看时间倒序
func (r *VideoRepositoryImpl) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]*domain.Video, error) {
	where, args := listConditions(userID, filter)
	query := fmt.Sprintf(`
		SELECT `+videoColumns+`
		FROM videos
		WHERE %s
		ORDER BY watched_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []*domain.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, rows.Err()
}

// Count 统计满足过滤条件的观看记录数量
func (r *VideoRepositoryImpl) Count(ctx context.Context, userID string, filter ListFilter) (int64, error) {
	where, args := listConditions(userID, filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM videos WHERE %s`, where)

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

// Update 部分更新观看记录，nil 字段不修改
func (r *VideoRepositoryImpl) Update(ctx context.Context, userID, id string, update *domain.VideoUpdate) (*domain.Video, error) {
	set := []string{"updated_at = now()"}
	args := []interface{}{userID, id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.ChannelName != nil {
		add("channel_name", *update.ChannelName)
	}
	if update.Category != nil {
		add("category", *update.Category)
	}
	if update.Tags != nil {
		add("tags", *update.Tags)
	}
	if update.Notes != nil {
		add("notes", *update.Notes)
	}
	if update.Rating != nil {
		add("rating", *update.Rating)
	}
	if update.IsCompleted != nil {
		add("is_completed", *update.IsCompleted)
	}

	query := fmt.Sprintf(`
		UPDATE videos SET %s
		WHERE user_id = $1 AND id = $2
		RETURNING `+videoColumns, strings.Join(set, ", "))

	video, err := scanVideo(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

// Delete 删除用户的一条观看记录
func (r *VideoRepositoryImpl) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM videos WHERE user_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

// listConditions 构造列表查询的 WHERE 条件
func listConditions(userID string, filter ListFilter) (string, []interface{}) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR channel_name ILIKE $%d)", len(args), len(args)))
	}
	return strings.Join(conditions, " AND "), args
}

// escapeLike 转义LIKE通配符，搜索词按字面匹配
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// scanVideo 从查询结果扫描一条观看记录
func scanVideo(row pgx.Row) (*domain.Video, error) {
	var video domain.Video
	err := row.Scan(
		&video.ID,
		&video.UserID,
		&video.VideoID,
		&video.Title,
		&video.ChannelName,
		&video.ChannelID,
		&video.ThumbnailURL,
		&video.Category,
		&video.Tags,
		&video.Duration,
		&video.WatchTime,
		&video.CompletionPercentage,
		&video.IsCompleted,
		&video.Rating,
		&video.Notes,
		&video.WatchedAt,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &video, nil
}
