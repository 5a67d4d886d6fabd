//go:generate mockery --name CandidateService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"smart_exam/internal/middleware"
	"smart_exam/internal/model"
	"smart_exam/internal/repository"
	"smart_exam/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CandidateService は候補スナップショットの参照と、テスト外で発生した
// 正誤イベントの反映を担います
type CandidateService interface {
	ListCandidates(ctx context.Context, subject string, mode *model.Mode) ([]*model.CandidateResponse, error)
	MarkResult(ctx context.Context, itemID uuid.UUID, req *model.MarkResultRequest) error
	RegisterCandidate(ctx context.Context, subject string, itemID uuid.UUID, mode model.Mode, nextTime string) (*model.ReviewCandidate, error)
	DeleteByItem(ctx context.Context, subject string, itemID uuid.UUID) error
}

type candidateService struct {
	db       *gorm.DB
	candRepo repository.CandidateRepository
	attRepo  repository.AttemptRepository
	clock    scheduler.Clock
	limit    int
}

func NewCandidateService(db *gorm.DB, candRepo repository.CandidateRepository, attRepo repository.AttemptRepository, clock scheduler.Clock, listLimit int) CandidateService {
	return &candidateService{
		db:       db,
		candRepo: candRepo,
		attRepo:  attRepo,
		clock:    clock,
		limit:    listLimit,
	}
}

func (s *candidateService) ListCandidates(ctx context.Context, subject string, mode *model.Mode) ([]*model.CandidateResponse, error) {
	logger := middleware.GetLogger(ctx).With("subject", subject)

	candidates, err := s.candRepo.FindBySubject(ctx, s.db, subject, mode, s.limit)
	if err != nil {
		logger.Error("Failed to list candidates", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の取得に失敗しました。", "", err)
	}

	responses := make([]*model.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		responses = append(responses, &model.CandidateResponse{
			ID:           c.CandidateID,
			Subject:      c.Subject,
			TargetID:     c.ItemID,
			Mode:         c.Mode,
			CorrectCount: c.CorrectCount,
			NextTime:     c.NextTime,
			TestID:       c.TestID,
		})
	}
	logger.Info("Listed review candidates", "count", len(responses))
	return responses, nil
}

// MarkResult はテストを介さない正誤イベントを反映します。
//
// MATERIALモードの正解は特殊で、候補を前倒しでスケジュールし直すのではなく
// ローテーションから即座に外します（候補レコードの削除）。次に不正解に
// なったときに改めて候補として復帰します。KANJIモードと不正解は通常の
// クローズ→再作成の流れです。
func (s *candidateService) MarkResult(ctx context.Context, itemID uuid.UUID, req *model.MarkResultRequest) error {
	logger := middleware.GetLogger(ctx).With("subject", req.Subject, "item_id", itemID.String())
	today := s.clock.TodayYmd()
	isCorrect := req.IsCorrect != nil && *req.IsCorrect

	candidate, err := s.candRepo.FindActiveByItem(ctx, s.db, req.Subject, itemID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to load candidate", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の取得に失敗しました。", "", err)
	}
	found := !errors.Is(err, model.ErrNotFound)

	if isCorrect && req.Mode == model.ModeMaterial {
		// 正解した教材設問はローテーションから外れる
		if found {
			if err := s.candRepo.DeleteByItem(ctx, s.db, req.Subject, itemID); err != nil {
				logger.Error("Failed to remove candidate on correct answer", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の削除に失敗しました。", "", err)
			}
		}
		s.recordAttempt(ctx, req.Subject, itemID, req.Mode, true, today)
		logger.Info("Material item answered correctly, removed from rotation")
		return nil
	}

	currentCount := 0
	if found {
		currentCount = candidate.CorrectCount
	}
	nextTime, nextCount, err := scheduler.NextReview(req.Mode, today, isCorrect, currentCount)
	if err != nil {
		return model.NewAppError("VALIDATION_ERROR", "次回復習日の計算に失敗しました。", "", model.ErrInvalidInput)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found {
			if err := s.candRepo.CloseIfMatch(ctx, tx, req.Subject, candidate.CandidateID, nil); err != nil {
				return err
			}
		}
		return s.candRepo.Create(ctx, tx, &model.ReviewCandidate{
			CandidateID:  uuid.New(),
			Subject:      req.Subject,
			ItemID:       itemID,
			Mode:         req.Mode,
			CorrectCount: nextCount,
			NextTime:     nextTime,
		})
	})
	if err != nil {
		if errors.Is(err, model.ErrPreconditionFailed) || errors.Is(err, model.ErrConflict) {
			// 並行する操作が先に処理済み
			logger.Debug("Candidate already handled concurrently, skipping", "error", err)
			return nil
		}
		logger.Error("Failed to reschedule candidate", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の更新に失敗しました。", "", err)
	}

	s.recordAttempt(ctx, req.Subject, itemID, req.Mode, isCorrect, today)
	logger.Info("Marked item result outside test", "is_correct", isCorrect, "next_time", nextTime)
	return nil
}

// RegisterCandidate はインポート・初期投入用の直接作成パスです。
// nextTime が空なら今日を期日として登録します。
func (s *candidateService) RegisterCandidate(ctx context.Context, subject string, itemID uuid.UUID, mode model.Mode, nextTime string) (*model.ReviewCandidate, error) {
	logger := middleware.GetLogger(ctx).With("subject", subject, "item_id", itemID.String())

	if nextTime == "" {
		nextTime = s.clock.TodayYmd()
	}
	if !scheduler.ValidYmd(nextTime) && !scheduler.Graduated(nextTime) {
		return nil, model.NewAppError("VALIDATION_ERROR", "期日はYYYY-MM-DD形式で指定してください。", "next_time", model.ErrInvalidInput)
	}

	candidate := &model.ReviewCandidate{
		CandidateID: uuid.New(),
		Subject:     subject,
		ItemID:      itemID,
		Mode:        mode,
		NextTime:    nextTime,
	}
	if err := s.candRepo.Create(ctx, s.db, candidate); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("CONFLICT", "このアイテムの復習候補は既に存在します。", "", model.ErrConflict)
		}
		logger.Error("Failed to register candidate", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の登録に失敗しました。", "", err)
	}
	logger.Info("Registered review candidate", "next_time", candidate.NextTime)
	return candidate, nil
}

// DeleteByItem はアイテム（設問・単語）本体の削除に追従して候補を削除します
func (s *candidateService) DeleteByItem(ctx context.Context, subject string, itemID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("subject", subject, "item_id", itemID.String())
	if err := s.candRepo.DeleteByItem(ctx, s.db, subject, itemID); err != nil {
		logger.Error("Failed to delete candidates for item", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の削除に失敗しました。", "", err)
	}
	logger.Info("Deleted candidates for item")
	return nil
}

func (s *candidateService) recordAttempt(ctx context.Context, subject string, itemID uuid.UUID, mode model.Mode, isCorrect bool, ymd string) {
	logger := middleware.GetLogger(ctx)
	attempt := &model.ReviewAttempt{
		AttemptID:  uuid.New(),
		Subject:    subject,
		ItemID:     itemID,
		Mode:       mode,
		IsCorrect:  isCorrect,
		ReviewedOn: ymd,
	}
	if err := s.attRepo.Create(ctx, s.db, attempt); err != nil {
		logger.Warn("Failed to record review attempt", "error", err)
	}
}
