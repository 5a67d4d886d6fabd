//go:generate mockery --name CandidateRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart_exam/internal/middleware"
	"smart_exam/internal/model"
	"smart_exam/internal/scheduler"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CandidateRepository は復習候補ストアです。
// lock/close/release は条件付き書き込みで、前提条件が崩れていた場合は
// model.ErrPreconditionFailed を返します。並行するテスト作成同士の調停は
// この条件付き書き込みだけで行います（プロセス内ロックは持たない）。
type CandidateRepository interface {
	Create(ctx context.Context, tx *gorm.DB, candidate *model.ReviewCandidate) error
	FindActiveByItem(ctx context.Context, db *gorm.DB, subject string, itemID uuid.UUID) (*model.ReviewCandidate, error)
	FindDue(ctx context.Context, db *gorm.DB, subject string, mode *model.Mode, todayYmd string) ([]*model.ReviewCandidate, error)
	FindOpenBySubject(ctx context.Context, db *gorm.DB, subject string, mode *model.Mode) ([]*model.ReviewCandidate, error)
	FindBySubject(ctx context.Context, db *gorm.DB, subject string, mode *model.Mode, limit int) ([]*model.ReviewCandidate, error)
	FindLockedByTest(ctx context.Context, db *gorm.DB, testID uuid.UUID) ([]*model.ReviewCandidate, error)
	LockIfOpen(ctx context.Context, tx *gorm.DB, subject string, candidateID, testID uuid.UUID) error
	CloseIfMatch(ctx context.Context, tx *gorm.DB, subject string, candidateID uuid.UUID, expectedTestID *uuid.UUID) error
	ReleaseIfMatch(ctx context.Context, tx *gorm.DB, subject string, candidateID, testID uuid.UUID) error
	DeleteByItem(ctx context.Context, tx *gorm.DB, subject string, itemID uuid.UUID) error
}

type gormCandidateRepository struct{}

func NewGormCandidateRepository() CandidateRepository {
	return &gormCandidateRepository{}
}

func (r *gormCandidateRepository) Create(ctx context.Context, tx *gorm.DB, candidate *model.ReviewCandidate) error {
	logger := middleware.GetLogger(ctx)

	// 卒業済み日付なら EXCLUDED、それ以外は OPEN で作成する
	if scheduler.Graduated(candidate.NextTime) {
		candidate.Status = model.StatusExcluded
	} else if candidate.Status == "" {
		candidate.Status = model.StatusOpen
	}

	result := tx.WithContext(ctx).Create(candidate)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate active candidate on create",
				"subject", candidate.Subject,
				"item_id", candidate.ItemID.String(),
			)
			return model.ErrConflict
		}
		// sqlite (テスト用ドライバ) はPgErrorを返さないため文字列でも判定する
		if strings.Contains(result.Error.Error(), "UNIQUE constraint failed") {
			return model.ErrConflict
		}
		logger.Error("Error creating review candidate in DB",
			"error", result.Error,
			"subject", candidate.Subject,
			"item_id", candidate.ItemID.String(),
		)
		return fmt.Errorf("gormCandidateRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCandidateRepository) FindActiveByItem(ctx context.Context, db *gorm.DB, subject string, itemID uuid.UUID) (*model.ReviewCandidate, error) {
	var candidate model.ReviewCandidate
	result := db.WithContext(ctx).
		Where("subject = ? AND item_id = ?", subject, itemID).
		Order("created_at DESC").
		First(&candidate)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCandidateRepository.FindActiveByItem: %w", result.Error)
	}
	return &candidate, nil
}

// FindDue は期日到来済みのOPEN候補を返します。
// 並び順は next_time 昇順、同日内は item_id 昇順で決定的。
func (r *gormCandidateRepository) FindDue(ctx context.Context, db *gorm.DB, subject string, mode *model.Mode, todayYmd string) ([]*model.ReviewCandidate, error) {
	var candidates []*model.ReviewCandidate
	query := db.WithContext(ctx).
		Where("subject = ? AND status = ? AND next_time <= ?", subject, model.StatusOpen, todayYmd)
	if mode != nil {
		query = query.Where("mode = ?", *mode)
	}
	result := query.Order("next_time ASC, item_id ASC").Find(&candidates)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCandidateRepository.FindDue: %w", result.Error)
	}
	return candidates, nil
}

func (r *gormCandidateRepository) FindOpenBySubject(ctx context.Context, db *gorm.DB, subject string, mode *model.Mode) ([]*model.ReviewCandidate, error) {
	var candidates []*model.ReviewCandidate
	query := db.WithContext(ctx).
		Where("subject = ? AND status = ?", subject, model.StatusOpen)
	if mode != nil {
		query = query.Where("mode = ?", *mode)
	}
	result := query.Order("next_time ASC, item_id ASC").Find(&candidates)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCandidateRepository.FindOpenBySubject: %w", result.Error)
	}
	return candidates, nil
}

func (r *gormCandidateRepository) FindBySubject(ctx context.Context, db *gorm.DB, subject string, mode *model.Mode, limit int) ([]*model.ReviewCandidate, error) {
	var candidates []*model.ReviewCandidate
	query := db.WithContext(ctx).Where("subject = ?", subject)
	if mode != nil {
		query = query.Where("mode = ?", *mode)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Order("next_time ASC, item_id ASC").Find(&candidates)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCandidateRepository.FindBySubject: %w", result.Error)
	}
	return candidates, nil
}

func (r *gormCandidateRepository) FindLockedByTest(ctx context.Context, db *gorm.DB, testID uuid.UUID) ([]*model.ReviewCandidate, error) {
	var candidates []*model.ReviewCandidate
	result := db.WithContext(ctx).
		Where("status = ? AND test_id = ?", model.StatusLocked, testID).
		Find(&candidates)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCandidateRepository.FindLockedByTest: %w", result.Error)
	}
	return candidates, nil
}

// LockIfOpen は OPEN -> LOCKED の条件付き遷移です。既に他のテストに取られて
// いた場合は ErrPreconditionFailed（呼び出し側は次の候補へ進む）。
func (r *gormCandidateRepository) LockIfOpen(ctx context.Context, tx *gorm.DB, subject string, candidateID, testID uuid.UUID) error {
	result := tx.WithContext(ctx).Model(&model.ReviewCandidate{}).
		Where("subject = ? AND candidate_id = ? AND status = ?", subject, candidateID, model.StatusOpen).
		Updates(map[string]interface{}{
			"status":  model.StatusLocked,
			"test_id": testID,
		})
	if result.Error != nil {
		return fmt.Errorf("gormCandidateRepository.LockIfOpen: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrPreconditionFailed
	}
	return nil
}

// CloseIfMatch は候補をアクティブテーブルから履歴テーブルへ移します。
// expectedTestID を渡した場合、test_id が一致する行だけを対象にします。
// 行が既に無い（並行クローズ済み）場合は ErrPreconditionFailed を返すだけで、
// 履歴が二重に積まれることはありません。トランザクション内で呼ぶこと。
func (r *gormCandidateRepository) CloseIfMatch(ctx context.Context, tx *gorm.DB, subject string, candidateID uuid.UUID, expectedTestID *uuid.UUID) error {
	var candidate model.ReviewCandidate
	query := tx.WithContext(ctx).Where("subject = ? AND candidate_id = ?", subject, candidateID)
	if expectedTestID != nil {
		query = query.Where("test_id = ?", *expectedTestID)
	}
	if err := query.First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrPreconditionFailed
		}
		return fmt.Errorf("gormCandidateRepository.CloseIfMatch: %w", err)
	}

	del := tx.WithContext(ctx).
		Where("subject = ? AND candidate_id = ?", subject, candidateID).
		Delete(&model.ReviewCandidate{})
	if del.Error != nil {
		return fmt.Errorf("gormCandidateRepository.CloseIfMatch: delete: %w", del.Error)
	}
	if del.RowsAffected == 0 {
		// 読み取りと削除の間に誰かが消した
		return model.ErrPreconditionFailed
	}

	history := &model.ReviewCandidateHistory{
		HistoryID:    uuid.New(),
		CandidateID:  candidate.CandidateID,
		Subject:      candidate.Subject,
		ItemID:       candidate.ItemID,
		Mode:         candidate.Mode,
		Status:       candidate.Status,
		CorrectCount: candidate.CorrectCount,
		NextTime:     candidate.NextTime,
		TestID:       candidate.TestID,
		CreatedAt:    candidate.CreatedAt,
		ClosedAt:     time.Now(),
	}
	if err := tx.WithContext(ctx).Create(history).Error; err != nil {
		return fmt.Errorf("gormCandidateRepository.CloseIfMatch: history: %w", err)
	}
	return nil
}

// ReleaseIfMatch は LOCKED -> OPEN の条件付き遷移です。スケジュールは
// 変更しません（未回答のままテストが採点されたアイテム用）。
func (r *gormCandidateRepository) ReleaseIfMatch(ctx context.Context, tx *gorm.DB, subject string, candidateID, testID uuid.UUID) error {
	result := tx.WithContext(ctx).Model(&model.ReviewCandidate{}).
		Where("subject = ? AND candidate_id = ? AND status = ? AND test_id = ?",
			subject, candidateID, model.StatusLocked, testID).
		Updates(map[string]interface{}{
			"status":  model.StatusOpen,
			"test_id": nil,
		})
	if result.Error != nil {
		return fmt.Errorf("gormCandidateRepository.ReleaseIfMatch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrPreconditionFailed
	}
	return nil
}

// DeleteByItem はアイテム本体の削除に追従して候補状態を物理削除します
func (r *gormCandidateRepository) DeleteByItem(ctx context.Context, tx *gorm.DB, subject string, itemID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("subject = ? AND item_id = ?", subject, itemID).
		Delete(&model.ReviewCandidate{})
	if result.Error != nil {
		return fmt.Errorf("gormCandidateRepository.DeleteByItem: %w", result.Error)
	}
	return nil
}
