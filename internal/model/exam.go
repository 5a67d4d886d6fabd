// internal/model/exam.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TestStatus は復習テストの状態
type TestStatus string

const (
	TestStatusInProgress TestStatus = "IN_PROGRESS"
	TestStatusCompleted  TestStatus = "COMPLETED"
)

func (s TestStatus) IsValid() bool {
	return s == TestStatusInProgress || s == TestStatusCompleted
}

// UUIDList はテストの設問ID（順序あり）をJSONカラムとして保持します
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		l = UUIDList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("UUIDList.Value: %w", err)
	}
	return string(b), nil
}

func (l *UUIDList) Scan(src interface{}) error {
	if src == nil {
		*l = UUIDList{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("UUIDList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

// ReviewResult は採点結果1件
type ReviewResult struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	IsCorrect *bool     `json:"is_correct" validate:"required"`
}

// ResultList は採点結果リストのJSONカラム
type ResultList []ReviewResult

func (l ResultList) Value() (driver.Value, error) {
	if l == nil {
		l = ResultList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("ResultList.Value: %w", err)
	}
	return string(b), nil
}

func (l *ResultList) Scan(src interface{}) error {
	if src == nil {
		*l = ResultList{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("ResultList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

// ReviewTest は出題済みの復習テスト1回分を表します。
// Count は常に len(Questions) と一致し、Questions の各IDは作成時点で
// この TestID にロックされた候補のアイテムIDです。
type ReviewTest struct {
	TestID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"test_id"`
	Subject       string     `gorm:"not null;index" json:"subject"`
	Mode          Mode       `gorm:"not null" json:"mode"`
	Status        TestStatus `gorm:"not null;default:IN_PROGRESS" json:"status"`
	Count         int        `gorm:"not null" json:"count"`
	Questions     UUIDList   `gorm:"type:text;not null" json:"questions"`
	Results       ResultList `gorm:"type:text" json:"results,omitempty"`
	CreatedDate   string     `gorm:"type:char(10);not null" json:"created_date"` // YYYY-MM-DD
	SubmittedDate *string    `gorm:"type:char(10)" json:"submitted_date,omitempty"`
	PdfKey        *string    `json:"pdf_key,omitempty"`
	// PdfURL は取得時に発行される署名付きダウンロードURL（永続化しない）
	PdfURL    *string   `gorm:"-" json:"pdf_url,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (ReviewTest) TableName() string {
	return "review_tests"
}

// CreateReviewTestRequest はテスト作成リクエストDTO
type CreateReviewTestRequest struct {
	Subject string `json:"subject" validate:"required"`
	Mode    Mode   `json:"mode" validate:"required,oneof=MATERIAL KANJI"`
	Count   int    `json:"count" validate:"required,min=1,max=100"`
}

// SubmitResultsRequest は結果送信リクエストDTO。
// Date を省略した場合は今日（Asia/Tokyo）として扱います。
type SubmitResultsRequest struct {
	Results []ReviewResult `json:"results" validate:"required,dive"`
	Date    string         `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTestStatusRequest はステータス更新リクエストDTO
type UpdateTestStatusRequest struct {
	Status TestStatus `json:"status" validate:"required,oneof=IN_PROGRESS COMPLETED"`
}
