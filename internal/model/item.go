// internal/model/item.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// KanjiWord は漢字単語のマスターデータのうち、テスト組み立てに必要な部分です。
// ReadingHiragana と UnderlineSpec の両方が埋まっている単語だけがプリント可能。
type KanjiWord struct {
	WordID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	Subject         string    `gorm:"not null;index" json:"subject"`
	Text            string    `gorm:"not null" json:"text"`
	ReadingHiragana string    `json:"reading_hiragana,omitempty"`
	UnderlineSpec   string    `json:"underline_spec,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"-"`
}

func (KanjiWord) TableName() string {
	return "kanji_words"
}

// IsPrintable は出力用の派生フィールドが両方揃っているかを返します
func (w *KanjiWord) IsPrintable() bool {
	return w.ReadingHiragana != "" && w.UnderlineSpec != ""
}

// MaterialQuestion は教材設問のマスターデータ（参照用の最小形）
type MaterialQuestion struct {
	QuestionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"question_id"`
	Subject    string    `gorm:"not null;index" json:"subject"`
	Body       string    `gorm:"not null" json:"body"`
	Answer     string    `json:"answer,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}

func (MaterialQuestion) TableName() string {
	return "material_questions"
}
