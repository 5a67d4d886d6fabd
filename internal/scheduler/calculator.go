// internal/scheduler/calculator.go
package scheduler

import (
	"fmt"

	"smart_exam/internal/model"
)

// GraduationDate は「今後の復習ローテーションから除外」を意味する番兵日付。
// ステータスとしては EXCLUDED を別途持つが、subject+next_time の範囲検索を
// 壊さないよう next_time にもこの値を格納する。
const GraduationDate = "2099-12-31"

// 復習間隔（暦日）
const (
	kanjiFirstCorrectDays  = 30
	kanjiRepeatCorrectDays = 90
	kanjiIncorrectDays     = 7
	materialCorrectDays    = 90
	materialIncorrectDays  = 30
)

// MaxStreak はモードごとの連続正解数の上限（卒業ライン）を返します
func MaxStreak(mode model.Mode) int {
	if mode == model.ModeMaterial {
		return 2
	}
	return 3
}

// NextReview は次回復習日と更新後の連続正解数を計算する純粋関数です。
//
//   - 入力の correctCount は [0, MaxStreak] にクランプしてから使う
//     （過去データや不正値への防御的正規化）
//   - 正解で上限に達したら卒業: nextTime は GraduationDate
//   - 不正解は連続正解数をリセット
//
// baseYmd が不正な場合のみエラーを返します。
func NextReview(mode model.Mode, baseYmd string, isCorrect bool, correctCount int) (nextTime string, nextCount int, err error) {
	max := MaxStreak(mode)

	current := correctCount
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}

	if !isCorrect {
		days := kanjiIncorrectDays
		if mode == model.ModeMaterial {
			days = materialIncorrectDays
		}
		next, err := AddDays(baseYmd, days)
		if err != nil {
			return "", 0, err
		}
		return next, 0, nil
	}

	nextCount = current + 1
	if nextCount > max {
		nextCount = max
	}
	if nextCount >= max {
		// 卒業
		return GraduationDate, nextCount, nil
	}

	var days int
	switch mode {
	case model.ModeMaterial:
		days = materialCorrectDays
	case model.ModeKanji:
		if nextCount == 1 {
			days = kanjiFirstCorrectDays
		} else {
			days = kanjiRepeatCorrectDays
		}
	default:
		return "", 0, fmt.Errorf("scheduler.NextReview: unknown mode %q", mode)
	}

	next, err := AddDays(baseYmd, days)
	if err != nil {
		return "", 0, err
	}
	return next, nextCount, nil
}

// Graduated は計算結果が卒業（ローテーション除外）かどうかを返します
func Graduated(nextTime string) bool {
	return nextTime == GraduationDate
}
