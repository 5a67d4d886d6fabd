// internal/service/exam_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"smart_exam/internal/model"
	"smart_exam/internal/repository/mocks"
	"smart_exam/internal/scheduler"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testToday = "2025-04-10"

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
// リポジトリはモックだが、サービスが張るトランザクションのために実DBが要る
func setupTestDBExam(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:exam_service_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for exam service testing")
	return db
}

type examServiceMocks struct {
	candRepo  *mocks.CandidateRepository
	testRepo  *mocks.ReviewTestRepository
	attRepo   *mocks.AttemptRepository
	kanjiRepo *mocks.KanjiWordRepository
}

func newTestExamService(t *testing.T, db *gorm.DB) (ExamService, *examServiceMocks) {
	t.Helper()
	m := &examServiceMocks{
		candRepo:  new(mocks.CandidateRepository),
		testRepo:  new(mocks.ReviewTestRepository),
		attRepo:   new(mocks.AttemptRepository),
		kanjiRepo: new(mocks.KanjiWordRepository),
	}
	svc := NewExamService(db, m.candRepo, m.testRepo, m.attRepo, m.kanjiRepo,
		NewNoopArtifactStore(), scheduler.FixedClock{Ymd: testToday})
	return svc, m
}

func openCandidate(subject string, mode model.Mode, nextTime string, count int) *model.ReviewCandidate {
	return &model.ReviewCandidate{
		CandidateID:  uuid.New(),
		Subject:      subject,
		ItemID:       uuid.New(),
		Mode:         mode,
		Status:       model.StatusOpen,
		CorrectCount: count,
		NextTime:     nextTime,
	}
}

func Test_examService_CreateReviewTest(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBExam(t)

	subject := "kokugo"
	c1 := openCandidate(subject, model.ModeKanji, "2025-04-01", 0)
	c2 := openCandidate(subject, model.ModeKanji, "2025-04-05", 1)
	c3 := openCandidate(subject, model.ModeKanji, testToday, 0)

	t.Run("正常系: 期日到来済みの候補から問題数ちょうど組み立てる", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.candRepo.On("FindDue", ctx, db, subject, mock.AnythingOfType("*model.Mode"), testToday).
			Return([]*model.ReviewCandidate{c1, c2, c3}, nil).Once()
		m.candRepo.On("LockIfOpen", ctx, db, subject, c1.CandidateID, mock.AnythingOfType("uuid.UUID")).
			Return(nil).Once()
		m.candRepo.On("LockIfOpen", ctx, db, subject, c2.CandidateID, mock.AnythingOfType("uuid.UUID")).
			Return(nil).Once()
		m.kanjiRepo.On("FindByIDs", ctx, db, mock.AnythingOfType("[]uuid.UUID")).
			Return([]*model.KanjiWord{}, nil).Once()
		m.testRepo.On("Create", ctx, db, mock.AnythingOfType("*model.ReviewTest")).
			Return(nil).Once()

		test, err := svc.CreateReviewTest(ctx, &model.CreateReviewTestRequest{
			Subject: subject, Mode: model.ModeKanji, Count: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, test.Count)
		assert.Equal(t, model.UUIDList{c1.ItemID, c2.ItemID}, test.Questions)
		assert.Equal(t, model.TestStatusInProgress, test.Status)
		assert.Equal(t, testToday, test.CreatedDate)
		assert.Nil(t, test.PdfKey) // 印字対象の漢字が無ければPDF参照は付かない
		m.candRepo.AssertExpectations(t)
		m.testRepo.AssertExpectations(t)
	})

	t.Run("正常系: ロックを取られた候補はスキップして次で埋める", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.candRepo.On("FindDue", ctx, db, subject, mock.AnythingOfType("*model.Mode"), testToday).
			Return([]*model.ReviewCandidate{c1, c2, c3}, nil).Once()
		m.candRepo.On("LockIfOpen", ctx, db, subject, c1.CandidateID, mock.AnythingOfType("uuid.UUID")).
			Return(model.ErrPreconditionFailed).Once()
		m.candRepo.On("LockIfOpen", ctx, db, subject, c2.CandidateID, mock.AnythingOfType("uuid.UUID")).
			Return(nil).Once()
		m.candRepo.On("LockIfOpen", ctx, db, subject, c3.CandidateID, mock.AnythingOfType("uuid.UUID")).
			Return(nil).Once()
		m.kanjiRepo.On("FindByIDs", ctx, db, mock.AnythingOfType("[]uuid.UUID")).
			Return([]*model.KanjiWord{}, nil).Once()
		m.testRepo.On("Create", ctx, db, mock.AnythingOfType("*model.ReviewTest")).
			Return(nil).Once()

		test, err := svc.CreateReviewTest(ctx, &model.CreateReviewTestRequest{
			Subject: subject, Mode: model.ModeKanji, Count: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, model.UUIDList{c2.ItemID, c3.ItemID}, test.Questions)
		m.candRepo.AssertExpectations(t)
	})

	t.Run("正常系: 候補が1件も無くても空のテストを作成する", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.candRepo.On("FindDue", ctx, db, subject, mock.AnythingOfType("*model.Mode"), testToday).
			Return([]*model.ReviewCandidate{}, nil).Once()
		// フォールバックプールにも期日到来済みは無い（未来の候補は前倒ししない）
		future := openCandidate(subject, model.ModeKanji, "2025-05-01", 0)
		m.candRepo.On("FindOpenBySubject", ctx, db, subject, mock.AnythingOfType("*model.Mode")).
			Return([]*model.ReviewCandidate{future}, nil).Once()
		m.testRepo.On("Create", ctx, db, mock.AnythingOfType("*model.ReviewTest")).
			Return(nil).Once()

		test, err := svc.CreateReviewTest(ctx, &model.CreateReviewTestRequest{
			Subject: subject, Mode: model.ModeKanji, Count: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, test.Count)
		assert.Empty(t, test.Questions)
		m.candRepo.AssertExpectations(t)
	})

	t.Run("正常系: 印字可能な漢字があればPDF参照が付く", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.candRepo.On("FindDue", ctx, db, subject, mock.AnythingOfType("*model.Mode"), testToday).
			Return([]*model.ReviewCandidate{c1}, nil).Once()
		m.candRepo.On("FindOpenBySubject", ctx, db, subject, mock.AnythingOfType("*model.Mode")).
			Return([]*model.ReviewCandidate{}, nil).Once()
		m.candRepo.On("LockIfOpen", ctx, db, subject, c1.CandidateID, mock.AnythingOfType("uuid.UUID")).
			Return(nil).Once()
		m.kanjiRepo.On("FindByIDs", ctx, db, mock.AnythingOfType("[]uuid.UUID")).
			Return([]*model.KanjiWord{
				{WordID: c1.ItemID, Text: "漢字", ReadingHiragana: "かんじ", UnderlineSpec: "0-1"},
			}, nil).Once()
		m.testRepo.On("Create", ctx, db, mock.AnythingOfType("*model.ReviewTest")).
			Return(nil).Once()

		test, err := svc.CreateReviewTest(ctx, &model.CreateReviewTestRequest{
			Subject: subject, Mode: model.ModeKanji, Count: 2,
		})
		require.NoError(t, err)
		require.NotNil(t, test.PdfKey)
		assert.Contains(t, *test.PdfKey, test.TestID.String())
	})

	t.Run("異常系: 候補取得でDBエラー", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.candRepo.On("FindDue", ctx, db, subject, mock.AnythingOfType("*model.Mode"), testToday).
			Return(nil, errors.New("db error")).Once()

		_, err := svc.CreateReviewTest(ctx, &model.CreateReviewTestRequest{
			Subject: subject, Mode: model.ModeKanji, Count: 2,
		})
		assert.Error(t, err)
	})
}

func Test_examService_SubmitResults(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBExam(t)

	subject := "kokugo"
	testID := uuid.New()
	answeredItem := uuid.New()
	unansweredItem := uuid.New()

	storedTest := func() *model.ReviewTest {
		return &model.ReviewTest{
			TestID:      testID,
			Subject:     subject,
			Mode:        model.ModeKanji,
			Status:      model.TestStatusInProgress,
			Count:       2,
			Questions:   model.UUIDList{answeredItem, unansweredItem},
			CreatedDate: "2025-04-01",
		}
	}

	t.Run("正常系: 存在しないテストは(false, nil)", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.testRepo.On("FindByID", ctx, db, testID).Return(nil, model.ErrNotFound).Once()

		found, err := svc.SubmitResults(ctx, testID, &model.SubmitResultsRequest{})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("正常系: 正解は再スケジュール、未回答はロック解除", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		isCorrect := true

		m.testRepo.On("FindByID", ctx, db, testID).Return(storedTest(), nil).Once()
		m.testRepo.On("Save", ctx, db, mock.AnythingOfType("*model.ReviewTest")).
			Run(func(args mock.Arguments) {
				saved := args.Get(2).(*model.ReviewTest)
				require.NotNil(t, saved.SubmittedDate)
				assert.Equal(t, testToday, *saved.SubmittedDate)
			}).Return(nil).Once()

		// 回答済みアイテム: クローズして新しい候補を作る
		answeredCand := &model.ReviewCandidate{
			CandidateID: uuid.New(), Subject: subject, ItemID: answeredItem,
			Mode: model.ModeKanji, Status: model.StatusLocked, CorrectCount: 0,
			NextTime: "2025-04-01", TestID: &testID,
		}
		m.candRepo.On("FindActiveByItem", ctx, db, subject, answeredItem).
			Return(answeredCand, nil).Once()
		m.candRepo.On("CloseIfMatch", ctx, mock.Anything, subject, answeredCand.CandidateID, &testID).
			Return(nil).Once()
		m.candRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.ReviewCandidate")).
			Run(func(args mock.Arguments) {
				created := args.Get(2).(*model.ReviewCandidate)
				assert.Equal(t, answeredItem, created.ItemID)
				assert.Equal(t, 1, created.CorrectCount)
				assert.Equal(t, "2025-05-10", created.NextTime) // 初回正解は30日後
			}).Return(nil).Once()
		m.attRepo.On("Create", ctx, db, mock.AnythingOfType("*model.ReviewAttempt")).
			Return(nil).Once()

		// 未回答アイテム: ロック解除のみ
		unansweredCand := &model.ReviewCandidate{
			CandidateID: uuid.New(), Subject: subject, ItemID: unansweredItem,
			Mode: model.ModeKanji, Status: model.StatusLocked, CorrectCount: 2,
			NextTime: "2025-04-05", TestID: &testID,
		}
		m.candRepo.On("FindActiveByItem", ctx, db, subject, unansweredItem).
			Return(unansweredCand, nil).Once()
		m.candRepo.On("ReleaseIfMatch", ctx, db, subject, unansweredCand.CandidateID, testID).
			Return(nil).Once()

		found, err := svc.SubmitResults(ctx, testID, &model.SubmitResultsRequest{
			Results: []model.ReviewResult{{ID: answeredItem, IsCorrect: &isCorrect}},
		})
		require.NoError(t, err)
		assert.True(t, found)
		m.candRepo.AssertExpectations(t)
		m.testRepo.AssertExpectations(t)
		m.attRepo.AssertExpectations(t)
	})

	t.Run("正常系: アイテム単位の前提条件不一致は握りつぶして続行", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		isCorrect := false

		m.testRepo.On("FindByID", ctx, db, testID).Return(storedTest(), nil).Once()
		m.testRepo.On("Save", ctx, db, mock.AnythingOfType("*model.ReviewTest")).Return(nil).Once()

		answeredCand := &model.ReviewCandidate{
			CandidateID: uuid.New(), Subject: subject, ItemID: answeredItem,
			Mode: model.ModeKanji, Status: model.StatusLocked, NextTime: "2025-04-01", TestID: &testID,
		}
		m.candRepo.On("FindActiveByItem", ctx, db, subject, answeredItem).
			Return(answeredCand, nil).Once()
		// 並行する別操作が先にクローズ済み
		m.candRepo.On("CloseIfMatch", ctx, mock.Anything, subject, answeredCand.CandidateID, &testID).
			Return(model.ErrPreconditionFailed).Once()

		// 未回答側の候補は既に消えている
		m.candRepo.On("FindActiveByItem", ctx, db, subject, unansweredItem).
			Return(nil, model.ErrNotFound).Once()

		found, err := svc.SubmitResults(ctx, testID, &model.SubmitResultsRequest{
			Results: []model.ReviewResult{{ID: answeredItem, IsCorrect: &isCorrect}},
		})
		require.NoError(t, err)
		assert.True(t, found)
		m.candRepo.AssertExpectations(t)
		m.candRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 実施日の形式が不正", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.testRepo.On("FindByID", ctx, db, testID).Return(storedTest(), nil).Once()

		_, err := svc.SubmitResults(ctx, testID, &model.SubmitResultsRequest{Date: "2025/04/10"})
		assert.Error(t, err)
	})
}

func Test_examService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBExam(t)
	testID := uuid.New()

	t.Run("正常系: 更新後のテストを返す", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.testRepo.On("UpdateStatus", ctx, db, testID, model.TestStatusCompleted).Return(nil).Once()
		m.testRepo.On("FindByID", ctx, db, testID).
			Return(&model.ReviewTest{TestID: testID, Status: model.TestStatusCompleted}, nil).Once()

		test, err := svc.UpdateStatus(ctx, testID, model.TestStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, model.TestStatusCompleted, test.Status)
	})

	t.Run("異常系: 存在しないテスト", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.testRepo.On("UpdateStatus", ctx, db, testID, model.TestStatusCompleted).
			Return(model.ErrNotFound).Once()

		_, err := svc.UpdateStatus(ctx, testID, model.TestStatusCompleted)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_examService_DeleteReviewTest(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBExam(t)

	subject := "kokugo"
	testID := uuid.New()

	t.Run("正常系: ロック中の候補を解放してから削除する", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		locked := &model.ReviewCandidate{
			CandidateID: uuid.New(), Subject: subject, ItemID: uuid.New(),
			Mode: model.ModeKanji, Status: model.StatusLocked, NextTime: "2025-04-01", TestID: &testID,
		}
		m.testRepo.On("FindByID", ctx, db, testID).
			Return(&model.ReviewTest{TestID: testID, Subject: subject}, nil).Once()
		m.candRepo.On("FindLockedByTest", ctx, db, testID).
			Return([]*model.ReviewCandidate{locked}, nil).Once()
		m.candRepo.On("ReleaseIfMatch", ctx, db, subject, locked.CandidateID, testID).
			Return(nil).Once()
		m.testRepo.On("Delete", ctx, db, testID).Return(nil).Once()

		err := svc.DeleteReviewTest(ctx, testID)
		require.NoError(t, err)
		m.candRepo.AssertExpectations(t)
		m.testRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないテスト", func(t *testing.T) {
		svc, m := newTestExamService(t, db)
		m.testRepo.On("FindByID", ctx, db, testID).Return(nil, model.ErrNotFound).Once()

		err := svc.DeleteReviewTest(ctx, testID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
