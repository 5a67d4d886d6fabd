// internal/model/candidate.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Mode は復習対象アイテムの種別
type Mode string

const (
	ModeMaterial Mode = "MATERIAL" // 教材の設問
	ModeKanji    Mode = "KANJI"    // 漢字の単語
)

// IsValid は既知のモードかどうかを返します
func (m Mode) IsValid() bool {
	return m == ModeMaterial || m == ModeKanji
}

// CandidateStatus は復習候補のライフサイクル状態
type CandidateStatus string

const (
	StatusOpen     CandidateStatus = "OPEN"     // 復習待ち
	StatusLocked   CandidateStatus = "LOCKED"   // テストに組み込み済み
	StatusExcluded CandidateStatus = "EXCLUDED" // 卒業済み（ローテーション対象外）
)

// ReviewCandidate はアイテム1件の現在のスケジューリング状態を表します。
// (subject, item_id) の組につきアクティブな行は常に1件以下（複合ユニーク制約）。
// クローズ済みの履歴は ReviewCandidateHistory に移動します。
type ReviewCandidate struct {
	CandidateID  uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Subject      string          `gorm:"not null;index:idx_subject_next_time;index:idx_subject_item,unique" json:"subject"`
	ItemID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_subject_item,unique" json:"target_id"`
	Mode         Mode            `gorm:"not null" json:"mode"`
	Status       CandidateStatus `gorm:"not null;default:OPEN" json:"status"`
	CorrectCount int             `gorm:"not null;default:0" json:"correct_count"`
	NextTime     string          `gorm:"type:char(10);not null;index:idx_subject_next_time" json:"next_time"` // YYYY-MM-DD
	TestID       *uuid.UUID      `gorm:"type:uuid" json:"test_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"-"`
}

func (ReviewCandidate) TableName() string {
	return "review_candidates"
}

// IsActive はローテーション中（OPEN または LOCKED）かどうかを返します
func (c *ReviewCandidate) IsActive() bool {
	return c.Status == StatusOpen || c.Status == StatusLocked
}

// ReviewCandidateHistory はクローズされた候補の追記専用レコードです
type ReviewCandidateHistory struct {
	HistoryID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CandidateID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Subject      string          `gorm:"not null;index"`
	ItemID       uuid.UUID       `gorm:"type:uuid;not null"`
	Mode         Mode            `gorm:"not null"`
	Status       CandidateStatus `gorm:"not null"`
	CorrectCount int             `gorm:"not null"`
	NextTime     string          `gorm:"type:char(10);not null"`
	TestID       *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt    time.Time
	ClosedAt     time.Time `gorm:"not null"`
}

func (ReviewCandidateHistory) TableName() string {
	return "review_candidate_history"
}

// CandidateResponse は候補スナップショットAPIのレスポンスDTO
type CandidateResponse struct {
	ID           uuid.UUID  `json:"id"`
	Subject      string     `json:"subject"`
	TargetID     uuid.UUID  `json:"target_id"`
	Mode         Mode       `json:"mode"`
	CorrectCount int        `json:"correct_count"`
	NextTime     string     `json:"next_time"`
	TestID       *uuid.UUID `json:"test_id,omitempty"`
}

// MarkResultRequest はテスト外の正誤登録リクエストDTO
type MarkResultRequest struct {
	Subject   string `json:"subject" validate:"required"`
	Mode      Mode   `json:"mode" validate:"required,oneof=MATERIAL KANJI"`
	IsCorrect *bool  `json:"is_correct" validate:"required"`
}

// RegisterCandidateRequest はインポート・初期投入用の候補登録DTO
type RegisterCandidateRequest struct {
	Subject  string    `json:"subject" validate:"required"`
	TargetID uuid.UUID `json:"target_id" validate:"required"`
	Mode     Mode      `json:"mode" validate:"required,oneof=MATERIAL KANJI"`
	NextTime string    `json:"next_time,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
