//go:generate mockery --name ReviewTestRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"smart_exam/internal/middleware"
	"smart_exam/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewTestRepository は復習テスト（出題バッチ）の永続化です
type ReviewTestRepository interface {
	Create(ctx context.Context, tx *gorm.DB, test *model.ReviewTest) error
	FindByID(ctx context.Context, db *gorm.DB, testID uuid.UUID) (*model.ReviewTest, error)
	FindBySubject(ctx context.Context, db *gorm.DB, subject string, limit int) ([]*model.ReviewTest, error)
	Save(ctx context.Context, tx *gorm.DB, test *model.ReviewTest) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, testID uuid.UUID, status model.TestStatus) error
	Delete(ctx context.Context, tx *gorm.DB, testID uuid.UUID) error
}

type gormReviewTestRepository struct{}

func NewGormReviewTestRepository() ReviewTestRepository {
	return &gormReviewTestRepository{}
}

func (r *gormReviewTestRepository) Create(ctx context.Context, tx *gorm.DB, test *model.ReviewTest) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(test)
	if result.Error != nil {
		logger.Error("Error creating review test in DB",
			"error", result.Error,
			"test_id", test.TestID.String(),
			"subject", test.Subject,
		)
		return fmt.Errorf("gormReviewTestRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReviewTestRepository) FindByID(ctx context.Context, db *gorm.DB, testID uuid.UUID) (*model.ReviewTest, error) {
	var test model.ReviewTest
	result := db.WithContext(ctx).Where("test_id = ?", testID).First(&test)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReviewTestRepository.FindByID: %w", result.Error)
	}
	return &test, nil
}

func (r *gormReviewTestRepository) FindBySubject(ctx context.Context, db *gorm.DB, subject string, limit int) ([]*model.ReviewTest, error) {
	var tests []*model.ReviewTest
	query := db.WithContext(ctx).Where("subject = ?", subject).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&tests)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReviewTestRepository.FindBySubject: %w", result.Error)
	}
	return tests, nil
}

func (r *gormReviewTestRepository) Save(ctx context.Context, tx *gorm.DB, test *model.ReviewTest) error {
	result := tx.WithContext(ctx).Save(test)
	if result.Error != nil {
		return fmt.Errorf("gormReviewTestRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormReviewTestRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, testID uuid.UUID, status model.TestStatus) error {
	result := tx.WithContext(ctx).Model(&model.ReviewTest{}).
		Where("test_id = ?", testID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("gormReviewTestRepository.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormReviewTestRepository) Delete(ctx context.Context, tx *gorm.DB, testID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("test_id = ?", testID).Delete(&model.ReviewTest{})
	if result.Error != nil {
		return fmt.Errorf("gormReviewTestRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
