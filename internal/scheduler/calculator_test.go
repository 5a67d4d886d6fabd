// internal/scheduler/calculator_test.go
package scheduler

import (
	"testing"

	"smart_exam/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextReview_Kanji(t *testing.T) {
	base := "2025-04-01"

	tests := []struct {
		name         string
		isCorrect    bool
		correctCount int
		wantNextTime string
		wantCount    int
	}{
		{
			name:         "正常系: 初回正解は30日後",
			isCorrect:    true,
			correctCount: 0,
			wantNextTime: "2025-05-01",
			wantCount:    1,
		},
		{
			name:         "正常系: 2回目の正解は90日後",
			isCorrect:    true,
			correctCount: 1,
			wantNextTime: "2025-06-30",
			wantCount:    2,
		},
		{
			name:         "正常系: 3回目の正解で卒業",
			isCorrect:    true,
			correctCount: 2,
			wantNextTime: GraduationDate,
			wantCount:    3,
		},
		{
			name:         "正常系: 不正解は7日後でカウントリセット",
			isCorrect:    false,
			correctCount: 2,
			wantNextTime: "2025-04-08",
			wantCount:    0,
		},
		{
			name:         "正常系: カウントが上限超過でも卒業扱い",
			isCorrect:    true,
			correctCount: 10,
			wantNextTime: GraduationDate,
			wantCount:    3,
		},
		{
			name:         "正常系: 負のカウントは0に正規化して初回扱い",
			isCorrect:    true,
			correctCount: -5,
			wantNextTime: "2025-05-01",
			wantCount:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextTime, nextCount, err := NextReview(model.ModeKanji, base, tt.isCorrect, tt.correctCount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNextTime, nextTime)
			assert.Equal(t, tt.wantCount, nextCount)
		})
	}
}

func TestNextReview_Material(t *testing.T) {
	base := "2025-04-01"

	tests := []struct {
		name         string
		isCorrect    bool
		correctCount int
		wantNextTime string
		wantCount    int
	}{
		{
			name:         "正常系: 初回正解は90日後",
			isCorrect:    true,
			correctCount: 0,
			wantNextTime: "2025-06-30",
			wantCount:    1,
		},
		{
			name:         "正常系: 2回目の正解で卒業",
			isCorrect:    true,
			correctCount: 1,
			wantNextTime: GraduationDate,
			wantCount:    2,
		},
		{
			name:         "正常系: 不正解は30日後でカウントリセット",
			isCorrect:    false,
			correctCount: 1,
			wantNextTime: "2025-05-01",
			wantCount:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextTime, nextCount, err := NextReview(model.ModeMaterial, base, tt.isCorrect, tt.correctCount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNextTime, nextTime)
			assert.Equal(t, tt.wantCount, nextCount)
		})
	}
}

func TestNextReview_Errors(t *testing.T) {
	t.Run("異常系: 基準日の形式が不正", func(t *testing.T) {
		_, _, err := NextReview(model.ModeKanji, "2025/04/01", true, 0)
		assert.Error(t, err)
	})

	t.Run("異常系: 未知のモードで正解", func(t *testing.T) {
		_, _, err := NextReview(model.Mode("UNKNOWN"), "2025-04-01", true, 0)
		assert.Error(t, err)
	})
}

func TestNextReview_MonthBoundary(t *testing.T) {
	// 月またぎ・年またぎは暦日で正しく繰り上がる
	nextTime, _, err := NextReview(model.ModeKanji, "2025-12-30", false, 0)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-06", nextTime)
}

func TestMaxStreak(t *testing.T) {
	assert.Equal(t, 2, MaxStreak(model.ModeMaterial))
	assert.Equal(t, 3, MaxStreak(model.ModeKanji))
}

func TestGraduated(t *testing.T) {
	assert.True(t, Graduated(GraduationDate))
	assert.False(t, Graduated("2025-04-01"))
}
