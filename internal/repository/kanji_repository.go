//go:generate mockery --name KanjiWordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"smart_exam/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KanjiWordRepository は漢字マスターデータの参照です。
// 組み立て時のプリント可否判定に使う最小限の操作のみ持ちます。
type KanjiWordRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.KanjiWord, error)
	FindByIDs(ctx context.Context, db *gorm.DB, wordIDs []uuid.UUID) ([]*model.KanjiWord, error)
}

type gormKanjiWordRepository struct{}

func NewGormKanjiWordRepository() KanjiWordRepository {
	return &gormKanjiWordRepository{}
}

func (r *gormKanjiWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.KanjiWord, error) {
	var word model.KanjiWord
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormKanjiWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormKanjiWordRepository) FindByIDs(ctx context.Context, db *gorm.DB, wordIDs []uuid.UUID) ([]*model.KanjiWord, error) {
	if len(wordIDs) == 0 {
		return []*model.KanjiWord{}, nil
	}
	var words []*model.KanjiWord
	result := db.WithContext(ctx).Where("word_id IN ?", wordIDs).Find(&words)
	if result.Error != nil {
		return nil, fmt.Errorf("gormKanjiWordRepository.FindByIDs: %w", result.Error)
	}
	return words, nil
}
