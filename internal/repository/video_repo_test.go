package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learn-track/server/internal/domain"
)

// createTestUser 插入一个测试用户，返回用户ID
func createTestUser(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	user := domain.NewLocalUser(
		fmt.Sprintf("tester-%s@example.com", uuid.New().String()),
		"Tester",
		"$argon2id$fake-hash-for-tests",
	)
	require.NoError(t, NewUserRepository(pool).Create(context.Background(), user))
	return user.ID
}

// newObservation 构造一条观看记录，完成度按服务层同样的规则预计算
func newObservation(userID, videoID string, watchTime, duration int, completed bool) *domain.Video {
	return &domain.Video{
		ID:                   uuid.New().String(),
		UserID:               userID,
		VideoID:              videoID,
		Title:                "Test Video",
		ChannelName:          "Test Channel",
		Tags:                 []string{},
		Duration:             duration,
		WatchTime:            watchTime,
		CompletionPercentage: domain.CompletionPercent(watchTime, duration),
		IsCompleted:          completed || (duration > 0 && watchTime >= duration),
	}
}

// countVideoRows 统计 (user, video) 对应的行数
func countVideoRows(t *testing.T, pool *pgxpool.Pool, userID, videoID string) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM videos WHERE user_id = $1 AND video_id = $2`,
		userID, videoID,
	).Scan(&count)
	require.NoError(t, err)
	return count
}

// TestUpsert_KeepsMaxWatchTime 更小的观看时长不会覆盖已有进度
func TestUpsert_KeepsMaxWatchTime(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewVideoRepository(pool)
	userID := createTestUser(t, pool)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, newObservation(userID, "vid-max", 600, 1200, false))
	require.NoError(t, err)
	assert.Equal(t, 600, first.WatchTime)
	assert.Equal(t, 50, first.CompletionPercentage)

	// 第二次上报的时长更短，进度不回退
	second, err := repo.Upsert(ctx, newObservation(userID, "vid-max", 300, 1200, false))
	require.NoError(t, err)
	assert.Equal(t, 600, second.WatchTime)
	assert.Equal(t, 50, second.CompletionPercentage)
	assert.False(t, second.IsCompleted)

	assert.Equal(t, 1, countVideoRows(t, pool, userID, "vid-max"))
}

// TestUpsert_CompletionSticky 完成状态只进不退
func TestUpsert_CompletionSticky(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewVideoRepository(pool)
	userID := createTestUser(t, pool)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, newObservation(userID, "vid-sticky", 500, 1200, true))
	require.NoError(t, err)
	assert.True(t, first.IsCompleted)

	second, err := repo.Upsert(ctx, newObservation(userID, "vid-sticky", 200, 1200, false))
	require.NoError(t, err)
	assert.True(t, second.IsCompleted)
	assert.Equal(t, 500, second.WatchTime)
}

// TestUpsert_CompletesAtFullWatch 合并后的观看时长达到视频长度时自动完成
func TestUpsert_CompletesAtFullWatch(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewVideoRepository(pool)
	userID := createTestUser(t, pool)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, newObservation(userID, "vid-full", 1100, 1200, false))
	require.NoError(t, err)
	assert.False(t, first.IsCompleted)

	// 已有进度1100，叠加新的视频长度1000: 合并时长>=长度，自动完成
	second, err := repo.Upsert(ctx, newObservation(userID, "vid-full", 400, 1000, false))
	require.NoError(t, err)
	assert.True(t, second.IsCompleted)
	assert.Equal(t, 1100, second.WatchTime)
	assert.Equal(t, 100, second.CompletionPercentage)
}

// TestUpsert_RecomputesCompletionFromMergedTime 完成度按合并后的时长和新的视频长度重算
func TestUpsert_RecomputesCompletionFromMergedTime(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewVideoRepository(pool)
	userID := createTestUser(t, pool)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, newObservation(userID, "vid-recompute", 900, 1200, false))
	require.NoError(t, err)

	// 长度未知时保留旧的完成度
	kept, err := repo.Upsert(ctx, newObservation(userID, "vid-recompute", 100, 0, false))
	require.NoError(t, err)
	assert.Equal(t, 75, kept.CompletionPercentage)
	assert.Equal(t, 900, kept.WatchTime)

	// 传入新的视频长度时按合并时长重算: 900/1000 = 90%
	recomputed, err := repo.Upsert(ctx, newObservation(userID, "vid-recompute", 100, 1000, false))
	require.NoError(t, err)
	assert.Equal(t, 90, recomputed.CompletionPercentage)
}

// TestUpsert_Idempotent 重复上报同一条观看不产生新行，也不改变进度
func TestUpsert_Idempotent(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewVideoRepository(pool)
	userID := createTestUser(t, pool)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, newObservation(userID, "vid-idem", 600, 1200, false))
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, newObservation(userID, "vid-idem", 600, 1200, false))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.WatchTime, second.WatchTime)
	assert.Equal(t, first.CompletionPercentage, second.CompletionPercentage)
	assert.Equal(t, first.IsCompleted, second.IsCompleted)
	assert.Equal(t, 1, countVideoRows(t, pool, userID, "vid-idem"))
}

// TestUpsert_DistinctUsersKeepSeparateRows 不同用户对同一视频各有一行
func TestUpsert_DistinctUsersKeepSeparateRows(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewVideoRepository(pool)
	userA := createTestUser(t, pool)
	userB := createTestUser(t, pool)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, newObservation(userA, "vid-shared", 600, 1200, false))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, newObservation(userB, "vid-shared", 200, 1200, false))
	require.NoError(t, err)

	assert.Equal(t, 1, countVideoRows(t, pool, userA, "vid-shared"))
	assert.Equal(t, 1, countVideoRows(t, pool, userB, "vid-shared"))

	// 互不影响各自的进度
	a, err := repo.GetByID(ctx, userA, mustRowID(t, pool, userA, "vid-shared"))
	require.NoError(t, err)
	assert.Equal(t, 600, a.WatchTime)
}

func mustRowID(t *testing.T, pool *pgxpool.Pool, userID, videoID string) string {
	t.Helper()

	var id string
	err := pool.QueryRow(context.Background(),
		`SELECT id FROM videos WHERE user_id = $1 AND video_id = $2`,
		userID, videoID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// TestListConditions_EscapesSearchWildcards 搜索词里的LIKE通配符按字面匹配
func TestListConditions_EscapesSearchWildcards(t *testing.T) {
	where, args := listConditions("user-1", ListFilter{Search: "50%_done"})

	assert.Contains(t, where, "ILIKE")
	require.Len(t, args, 2)
	assert.Equal(t, `%50\%\_done%`, args[1])
}

// TestEscapeLike 转义规则
func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLike(tt.in))
	}
}
