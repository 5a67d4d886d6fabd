// internal/model/attempt.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewAttempt は「日付DにアイテムXを正解/不正解した」という確定事実です。
// 監査・履歴表示用で、スケジューリング判断には使いません（候補テーブルが正）。
type ReviewAttempt struct {
	AttemptID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	Subject      string     `gorm:"not null;index" json:"subject"`
	ItemID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"item_id"`
	Mode         Mode       `gorm:"not null" json:"mode"`
	IsCorrect    bool       `gorm:"not null" json:"is_correct"`
	ReviewTestID *uuid.UUID `gorm:"type:uuid" json:"review_test_id,omitempty"`
	ReviewedOn   string     `gorm:"type:char(10);not null" json:"reviewed_on"` // YYYY-MM-DD
	CreatedAt    time.Time  `json:"created_at"`
}

func (ReviewAttempt) TableName() string {
	return "review_attempts"
}
