// internal/scheduler/clock.go
package scheduler

import (
	"fmt"
	"time"
)

// YmdLayout は日付文字列のフォーマット (YYYY-MM-DD)
const YmdLayout = "2006-01-02"

// jst は日付計算に使う固定タイムゾーン。タイムスタンプではなく日付文字列で
// 演算することで、繰り返し計算してもDSTやタイムゾーンのずれが蓄積しない。
var jst = time.FixedZone("Asia/Tokyo", 9*60*60)

// Clock は「今日」を供給します。テストでは固定値に差し替えます。
type Clock interface {
	TodayYmd() string
}

type jstClock struct{}

// NewClock はAsia/Tokyo基準のClockを返します
func NewClock() Clock {
	return jstClock{}
}

func (jstClock) TodayYmd() string {
	return time.Now().In(jst).Format(YmdLayout)
}

// FixedClock は常に同じ日付を返すテスト用Clockです
type FixedClock struct {
	Ymd string
}

func (c FixedClock) TodayYmd() string {
	return c.Ymd
}

// AddDays はYYYY-MM-DD文字列に暦日ベースでn日を加算します
func AddDays(ymd string, days int) (string, error) {
	t, err := time.ParseInLocation(YmdLayout, ymd, jst)
	if err != nil {
		return "", fmt.Errorf("scheduler.AddDays: invalid date %q: %w", ymd, err)
	}
	return t.AddDate(0, 0, days).Format(YmdLayout), nil
}

// ValidYmd はYYYY-MM-DD形式として妥当かどうかを返します
func ValidYmd(ymd string) bool {
	_, err := time.ParseInLocation(YmdLayout, ymd, jst)
	return err == nil
}
