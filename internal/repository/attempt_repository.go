//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"smart_exam/internal/middleware"
	"smart_exam/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptRepository は復習実績（追記専用）の永続化です
type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.ReviewAttempt) error
	FindByItem(ctx context.Context, db *gorm.DB, subject string, itemID uuid.UUID) ([]*model.ReviewAttempt, error)
	FindBySubject(ctx context.Context, db *gorm.DB, subject string, limit int) ([]*model.ReviewAttempt, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.ReviewAttempt) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		logger.Error("Error creating review attempt in DB",
			"error", result.Error,
			"subject", attempt.Subject,
			"item_id", attempt.ItemID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAttemptRepository) FindByItem(ctx context.Context, db *gorm.DB, subject string, itemID uuid.UUID) ([]*model.ReviewAttempt, error) {
	var attempts []*model.ReviewAttempt
	result := db.WithContext(ctx).
		Where("subject = ? AND item_id = ?", subject, itemID).
		Order("reviewed_on DESC, created_at DESC").
		Find(&attempts)
	if result.Error != nil {
		return nil, fmt.Errorf("gormAttemptRepository.FindByItem: %w", result.Error)
	}
	return attempts, nil
}

func (r *gormAttemptRepository) FindBySubject(ctx context.Context, db *gorm.DB, subject string, limit int) ([]*model.ReviewAttempt, error) {
	var attempts []*model.ReviewAttempt
	query := db.WithContext(ctx).
		Where("subject = ?", subject).
		Order("reviewed_on DESC, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&attempts)
	if result.Error != nil {
		return nil, fmt.Errorf("gormAttemptRepository.FindBySubject: %w", result.Error)
	}
	return attempts, nil
}
