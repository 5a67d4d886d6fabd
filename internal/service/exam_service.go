//go:generate mockery --name ExamService --output ./mocks --outpkg mocks --case=underscore
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

// ExamService は復習テストの組み立て・結果反映・状態遷移を担います
type ExamService interface {
	CreateReviewTest(ctx context.Context, req *model.CreateReviewTestRequest) (*model.ReviewTest, error)
	GetReviewTest(ctx context.Context, testID uuid.UUID) (*model.ReviewTest, error)
	SubmitResults(ctx context.Context, testID uuid.UUID, req *model.SubmitResultsRequest) (bool, error)
	UpdateStatus(ctx context.Context, testID uuid.UUID, status model.TestStatus) (*model.ReviewTest, error)
	DeleteReviewTest(ctx context.Context, testID uuid.UUID) error
}

type examService struct {
	db        *gorm.DB
	candRepo  repository.CandidateRepository
	testRepo  repository.ReviewTestRepository
	attRepo   repository.AttemptRepository
	kanjiRepo repository.KanjiWordRepository
	artifacts ArtifactStore
	clock     scheduler.Clock
}

func NewExamService(
	db *gorm.DB,
	candRepo repository.CandidateRepository,
	testRepo repository.ReviewTestRepository,
	attRepo repository.AttemptRepository,
	kanjiRepo repository.KanjiWordRepository,
	artifacts ArtifactStore,
	clock scheduler.Clock,
) ExamService {
	return &examService{
		db:        db,
		candRepo:  candRepo,
		testRepo:  testRepo,
		attRepo:   attRepo,
		kanjiRepo: kanjiRepo,
		artifacts: artifacts,
		clock:     clock,
	}
}

// CreateReviewTest は期日到来済みの候補からテストを組み立てます。
// 候補が1件も無い場合も空のテスト（count=0）を作成して返します。
func (s *examService) CreateReviewTest(ctx context.Context, req *model.CreateReviewTestRequest) (*model.ReviewTest, error) {
	logger := middleware.GetLogger(ctx).With("subject", req.Subject, "mode", string(req.Mode))
	today := s.clock.TodayYmd()

	// 1. 期日到来済みのOPEN候補（期日昇順）
	due, err := s.candRepo.FindDue(ctx, s.db, req.Subject, &req.Mode, today)
	if err != nil {
		logger.Error("Failed to find due candidates", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の取得に失敗しました。", "", err)
	}

	selected := due
	if len(selected) < req.Count {
		// 2. 不足分はフォールバックプールから補充。ただし期日が未来の候補は
		//    前倒しで出題しない（既に期日を過ぎたものだけを採用する）。
		pool, err := s.candRepo.FindOpenBySubject(ctx, s.db, req.Subject, &req.Mode)
		if err != nil {
			logger.Error("Failed to find fallback pool", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の取得に失敗しました。", "", err)
		}
		seen := make(map[uuid.UUID]bool, len(selected))
		for _, c := range selected {
			seen[c.CandidateID] = true
		}
		for _, c := range pool {
			if seen[c.CandidateID] || c.NextTime > today {
				continue
			}
			selected = append(selected, c)
		}
	}

	// 3. count件に達するまでロックを試みる。ロックに失敗した候補（並行する
	//    別テストが先に取った）はスキップして次の候補で埋める。
	testID := uuid.New()
	locked := make([]*model.ReviewCandidate, 0, req.Count)
	for _, c := range selected {
		if len(locked) >= req.Count {
			break
		}
		err := s.candRepo.LockIfOpen(ctx, s.db, req.Subject, c.CandidateID, testID)
		if err != nil {
			if errors.Is(err, model.ErrPreconditionFailed) {
				logger.Debug("Candidate already claimed, skipping", "candidate_id", c.CandidateID.String())
				continue
			}
			logger.Error("Failed to lock candidate", "error", err, "candidate_id", c.CandidateID.String())
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補のロックに失敗しました。", "", err)
		}
		locked = append(locked, c)
	}

	questions := make(model.UUIDList, 0, len(locked))
	for _, c := range locked {
		questions = append(questions, c.ItemID)
	}

	test := &model.ReviewTest{
		TestID:      testID,
		Subject:     req.Subject,
		Mode:        req.Mode,
		Status:      model.TestStatusInProgress,
		Count:       len(questions),
		Questions:   questions,
		CreatedDate: today,
	}

	// 4. KANJIモードはプリント用の派生フィールドが揃っているものだけが印字対象。
	//    1件も無ければPDF参照は付かないが、テスト作成自体は成功する。
	if req.Mode == model.ModeKanji && len(questions) > 0 {
		printable, err := s.countPrintable(ctx, questions)
		if err != nil {
			logger.Error("Failed to evaluate printable kanji words", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "漢字データの取得に失敗しました。", "", err)
		}
		if printable > 0 {
			key := s.artifacts.ObjectKey(testID)
			test.PdfKey = &key
		}
		logger.Info("Evaluated printable set", "printable", printable, "total", len(questions))
	}

	if err := s.testRepo.Create(ctx, s.db, test); err != nil {
		logger.Error("Failed to persist review test", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習テストの保存に失敗しました。", "", err)
	}

	logger.Info("Review test created", "test_id", testID.String(), "count", test.Count)
	return test, nil
}

func (s *examService) countPrintable(ctx context.Context, itemIDs []uuid.UUID) (int, error) {
	words, err := s.kanjiRepo.FindByIDs(ctx, s.db, itemIDs)
	if err != nil {
		return 0, err
	}
	printable := 0
	for _, w := range words {
		if w.IsPrintable() {
			printable++
		}
	}
	return printable, nil
}

func (s *examService) GetReviewTest(ctx context.Context, testID uuid.UUID) (*model.ReviewTest, error) {
	test, err := s.testRepo.FindByID(ctx, s.db, testID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "復習テストが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習テストの取得に失敗しました。", "", err)
	}

	// PDFが紐付くテストはダウンロード用の署名付きURLを添える。
	// 発行失敗はテスト取得自体を失敗にはしない。
	if test.PdfKey != nil {
		url, perr := s.artifacts.PresignGet(ctx, *test.PdfKey)
		if perr != nil {
			middleware.GetLogger(ctx).Warn("Failed to presign artifact URL", "error", perr, "test_id", testID.String())
		} else if url != "" {
			test.PdfURL = &url
		}
	}
	return test, nil
}

// SubmitResults はテストの採点結果を候補ストアへ反映します。
// テストが存在しない場合は (false, nil) を返します。
//
// テストに含まれていた全アイテムを処理対象とし、結果が無いアイテムは
// 「未回答」としてロックを解除します（スケジュールは据え置き）。
// アイテム単位の条件付き書き込み失敗は握りつぶし、残りの処理を続行します。
func (s *examService) SubmitResults(ctx context.Context, testID uuid.UUID, req *model.SubmitResultsRequest) (bool, error) {
	logger := middleware.GetLogger(ctx).With("test_id", testID.String())

	test, err := s.testRepo.FindByID(ctx, s.db, testID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		logger.Error("Failed to load review test", "error", err)
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "復習テストの取得に失敗しました。", "", err)
	}

	submittedDate := req.Date
	if submittedDate == "" {
		submittedDate = s.clock.TodayYmd()
	}
	if !scheduler.ValidYmd(submittedDate) {
		return false, model.NewAppError("VALIDATION_ERROR", "実施日はYYYY-MM-DD形式で指定してください。", "date", model.ErrInvalidInput)
	}

	// 先にテスト本体へ提出日と生の結果を記録する（監査証跡）。
	// 以降のアイテム反映が部分的に失敗しても提出自体は成立している。
	test.SubmittedDate = &submittedDate
	test.Results = model.ResultList(req.Results)
	if err := s.testRepo.Save(ctx, s.db, test); err != nil {
		logger.Error("Failed to save submitted test", "error", err)
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "採点結果の保存に失敗しました。", "", err)
	}

	resultByItem := make(map[uuid.UUID]*bool, len(req.Results))
	for i := range req.Results {
		resultByItem[req.Results[i].ID] = req.Results[i].IsCorrect
	}

	for _, itemID := range test.Questions {
		if isCorrect, ok := resultByItem[itemID]; ok && isCorrect != nil {
			s.applyResult(ctx, test, itemID, *isCorrect, submittedDate)
		} else {
			s.releaseUnanswered(ctx, test, itemID)
		}
	}

	logger.Info("Review test results submitted", "results", len(req.Results), "questions", len(test.Questions))
	return true, nil
}

// applyResult は1アイテム分の結果を候補ストアへ反映します。
// 旧候補のクローズと新候補の作成は同一トランザクションで行い、
// 前提条件不一致（別操作が先に処理済み）は黙ってスキップします。
func (s *examService) applyResult(ctx context.Context, test *model.ReviewTest, itemID uuid.UUID, isCorrect bool, baseYmd string) {
	logger := middleware.GetLogger(ctx).With("test_id", test.TestID.String(), "item_id", itemID.String())

	candidate, err := s.candRepo.FindActiveByItem(ctx, s.db, test.Subject, itemID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Debug("No active candidate for graded item, skipping")
			return
		}
		logger.Error("Failed to load candidate for graded item", "error", err)
		return
	}

	nextTime, nextCount, err := scheduler.NextReview(test.Mode, baseYmd, isCorrect, candidate.CorrectCount)
	if err != nil {
		logger.Error("Failed to compute next review", "error", err)
		return
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.candRepo.CloseIfMatch(ctx, tx, test.Subject, candidate.CandidateID, &test.TestID); err != nil {
			return err
		}
		return s.candRepo.Create(ctx, tx, &model.ReviewCandidate{
			CandidateID:  uuid.New(),
			Subject:      test.Subject,
			ItemID:       itemID,
			Mode:         test.Mode,
			CorrectCount: nextCount,
			NextTime:     nextTime,
		})
	})
	if err != nil {
		if errors.Is(err, model.ErrPreconditionFailed) || errors.Is(err, model.ErrConflict) {
			logger.Debug("Candidate already handled by another operation, skipping", "error", err)
			return
		}
		logger.Error("Failed to reschedule candidate", "error", err)
		return
	}

	attempt := &model.ReviewAttempt{
		AttemptID:    uuid.New(),
		Subject:      test.Subject,
		ItemID:       itemID,
		Mode:         test.Mode,
		IsCorrect:    isCorrect,
		ReviewTestID: &test.TestID,
		ReviewedOn:   baseYmd,
	}
	if err := s.attRepo.Create(ctx, s.db, attempt); err != nil {
		// 履歴の書き込み失敗はスケジューリング結果を巻き戻さない
		logger.Warn("Failed to record review attempt", "error", err)
	}
}

// releaseUnanswered は結果が提出されなかったアイテムのロックを解除します
func (s *examService) releaseUnanswered(ctx context.Context, test *model.ReviewTest, itemID uuid.UUID) {
	logger := middleware.GetLogger(ctx).With("test_id", test.TestID.String(), "item_id", itemID.String())

	candidate, err := s.candRepo.FindActiveByItem(ctx, s.db, test.Subject, itemID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load candidate for unanswered item", "error", err)
		}
		return
	}
	if candidate.Status != model.StatusLocked || candidate.TestID == nil || *candidate.TestID != test.TestID {
		return
	}

	err = s.candRepo.ReleaseIfMatch(ctx, s.db, test.Subject, candidate.CandidateID, test.TestID)
	if err != nil && !errors.Is(err, model.ErrPreconditionFailed) {
		logger.Error("Failed to release unanswered candidate", "error", err)
		return
	}
	logger.Debug("Released unanswered candidate", "candidate_id", candidate.CandidateID.String())
}

// UpdateStatus はテストのステータスを更新します。存在しない場合は ErrNotFound。
func (s *examService) UpdateStatus(ctx context.Context, testID uuid.UUID, status model.TestStatus) (*model.ReviewTest, error) {
	logger := middleware.GetLogger(ctx).With("test_id", testID.String())

	if err := s.testRepo.UpdateStatus(ctx, s.db, testID, status); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "復習テストが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to update test status", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ステータスの更新に失敗しました。", "", err)
	}

	test, err := s.testRepo.FindByID(ctx, s.db, testID)
	if err != nil {
		logger.Error("Failed to reload test after status update", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習テストの取得に失敗しました。", "", err)
	}
	logger.Info("Review test status updated", "status", string(status))
	return test, nil
}

// DeleteReviewTest はテストを削除し、まだこのテストにロックされたままの
// 候補をOPENに戻します。
func (s *examService) DeleteReviewTest(ctx context.Context, testID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("test_id", testID.String())

	test, err := s.testRepo.FindByID(ctx, s.db, testID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", "復習テストが見つかりません。", "", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "復習テストの取得に失敗しました。", "", err)
	}

	locked, err := s.candRepo.FindLockedByTest(ctx, s.db, testID)
	if err != nil {
		logger.Error("Failed to find locked candidates for deleted test", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の取得に失敗しました。", "", err)
	}
	for _, c := range locked {
		err := s.candRepo.ReleaseIfMatch(ctx, s.db, c.Subject, c.CandidateID, testID)
		if err != nil && !errors.Is(err, model.ErrPreconditionFailed) {
			logger.Error("Failed to release candidate on test delete", "error", err, "candidate_id", c.CandidateID.String())
		}
	}

	if err := s.testRepo.Delete(ctx, s.db, testID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 並行削除済みなら解放だけ済ませて成功扱い
			return nil
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "復習テストの削除に失敗しました。", "", err)
	}

	logger.Info("Review test deleted", "released", len(locked), "subject", test.Subject)
	return nil
}
