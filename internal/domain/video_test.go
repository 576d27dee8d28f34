package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validVideo() *Video {
	return &Video{
		ID:        "11111111-1111-1111-1111-111111111111",
		UserID:    "22222222-2222-2222-2222-222222222222",
		VideoID:   "dQw4w9WgXcQ",
		Title:     "Go Concurrency Patterns",
		WatchTime: 600,
		Duration:  1200,
	}
}

// TestVideoValidate 测试观看记录验证
func TestVideoValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Video)
		wantErr error
	}{
		{"valid", func(v *Video) {}, nil},
		{"missing user id", func(v *Video) { v.UserID = "" }, ErrInvalidUserID},
		{"missing video id", func(v *Video) { v.VideoID = "" }, ErrInvalidVideoID},
		{"missing title", func(v *Video) { v.Title = "" }, ErrInvalidTitle},
		{"negative watch time", func(v *Video) { v.WatchTime = -1 }, ErrInvalidWatchTime},
		{"negative duration", func(v *Video) { v.Duration = -10 }, ErrInvalidDuration},
		{"rating too high", func(v *Video) { v.Rating = 6 }, ErrInvalidRating},
		{"zero duration ok", func(v *Video) { v.Duration = 0 }, nil},
		{"zero watch time ok", func(v *Video) { v.WatchTime = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video := validVideo()
			tt.mutate(video)
			err := video.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// TestCompletionPercent 测试完成百分比计算
func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name      string
		watchTime int
		duration  int
		want      int
	}{
		{"half watched", 600, 1200, 50},
		{"fully watched", 1200, 1200, 100},
		{"over watched clamps to 100", 1500, 1200, 100},
		{"unknown duration", 600, 0, 0},
		{"nothing watched", 0, 1200, 0},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionPercent(tt.watchTime, tt.duration)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

// TestVideoUpdateValidate 测试部分更新验证
func TestVideoUpdateValidate(t *testing.T) {
	t.Run("empty update rejected", func(t *testing.T) {
		update := &VideoUpdate{}
		assert.ErrorIs(t, update.Validate(), ErrEmptyUpdate)
	})

	t.Run("rating out of range", func(t *testing.T) {
		rating := 0
		update := &VideoUpdate{Rating: &rating}
		assert.ErrorIs(t, update.Validate(), ErrInvalidRating)

		rating = 6
		assert.ErrorIs(t, update.Validate(), ErrInvalidRating)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		title := ""
		update := &VideoUpdate{Title: &title}
		assert.ErrorIs(t, update.Validate(), ErrInvalidTitle)
	})

	t.Run("notes only is enough", func(t *testing.T) {
		notes := "rewatch the select section"
		update := &VideoUpdate{Notes: &notes}
		assert.NoError(t, update.Validate())
	})

	t.Run("rating in range", func(t *testing.T) {
		rating := 5
		update := &VideoUpdate{Rating: &rating}
		assert.NoError(t, update.Validate())
	})
}
