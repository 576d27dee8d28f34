package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestCurrentStreak 测试连续观看天数计算
func TestCurrentStreak(t *testing.T) {
	today := day("2026-09-01")

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{
			name:  "three consecutive days ending today",
			dates: []time.Time{day("2026-08-30"), day("2026-08-31"), day("2026-09-01")},
			want:  3,
		},
		{
			name:  "gap at yesterday keeps only today",
			dates: []time.Time{day("2026-08-30"), day("2026-09-01")},
			want:  1,
		},
		{
			name:  "no activity today breaks the run",
			dates: []time.Time{day("2026-08-30"), day("2026-08-31")},
			want:  0,
		},
		{
			name:  "no activity at all",
			dates: nil,
			want:  0,
		},
		{
			name:  "only today",
			dates: []time.Time{day("2026-09-01")},
			want:  1,
		},
		{
			name: "duplicate dates count once",
			dates: []time.Time{
				day("2026-09-01"), day("2026-09-01"),
				day("2026-08-31"), day("2026-08-31"),
			},
			want: 2,
		},
		{
			name:  "long run with one hole",
			dates: []time.Time{day("2026-08-27"), day("2026-08-29"), day("2026-08-30"), day("2026-08-31"), day("2026-09-01")},
			want:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(tt.dates, today))
		})
	}
}

// TestCurrentStreak_OrderIndependent 日期顺序不影响结果
func TestCurrentStreak_OrderIndependent(t *testing.T) {
	today := day("2026-09-01")
	dates := []time.Time{day("2026-09-01"), day("2026-08-30"), day("2026-08-31")}
	reversed := []time.Time{day("2026-08-31"), day("2026-08-30"), day("2026-09-01")}

	assert.Equal(t, CurrentStreak(dates, today), CurrentStreak(reversed, today))
}

// TestRoundHours 测试小时换算
func TestRoundHours(t *testing.T) {
	assert.Equal(t, 0.0, RoundHours(0))
	assert.Equal(t, 1.0, RoundHours(3600))
	assert.Equal(t, 0.5, RoundHours(1800))
	assert.Equal(t, 1.5, RoundHours(5400))
	assert.Equal(t, 0.2, RoundHours(600))
	assert.Equal(t, 2.1, RoundHours(7500))
}
