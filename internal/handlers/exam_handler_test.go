// internal/handlers/exam_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart_exam/internal/handlers"
	"smart_exam/internal/model"
	svc_mocks "smart_exam/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: JSONボディの作成 ---
func newJsonRequest(t *testing.T, method string, target string, body interface{}) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: chi の RouteContext を設定 ---
func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func TestExamHandler_CreateReviewTest(t *testing.T) {
	mockService := new(svc_mocks.ExamService)
	handler := handlers.NewExamHandler(mockService)

	createdTest := &model.ReviewTest{
		TestID:    uuid.New(),
		Subject:   "kokugo",
		Mode:      model.ModeKanji,
		Status:    model.TestStatusInProgress,
		Count:     2,
		Questions: model.UUIDList{uuid.New(), uuid.New()},
	}

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "正常系: テスト作成成功",
			reqBody: &model.CreateReviewTestRequest{Subject: "kokugo", Mode: model.ModeKanji, Count: 2},
			setupMock: func() {
				mockService.On("CreateReviewTest", mock.Anything, mock.AnythingOfType("*model.CreateReviewTestRequest")).
					Return(createdTest, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"test_id"`,
		},
		{
			name:           "異常系: modeが不正",
			reqBody:        map[string]interface{}{"subject": "kokugo", "mode": "BAD", "count": 2},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"VALIDATION_ERROR"`,
		},
		{
			name:           "異常系: countが0",
			reqBody:        map[string]interface{}{"subject": "kokugo", "mode": "KANJI", "count": 0},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"VALIDATION_ERROR"`,
		},
		{
			name:           "異常系: JSON形式が不正",
			reqBody:        `{"subject": "kokugo",`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"INVALID_REQUEST"`,
		},
		{
			name:    "異常系: サービスエラー",
			reqBody: &model.CreateReviewTestRequest{Subject: "kokugo", Mode: model.ModeKanji, Count: 2},
			setupMock: func() {
				mockService.On("CreateReviewTest", mock.Anything, mock.AnythingOfType("*model.CreateReviewTestRequest")).
					Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習候補の取得に失敗しました。", "", errors.New("db error"))).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"INTERNAL_SERVER_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodPost, "/review-tests", tt.reqBody)
			rr := httptest.NewRecorder()
			handler.CreateReviewTest(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestExamHandler_GetReviewTest(t *testing.T) {
	mockService := new(svc_mocks.ExamService)
	handler := handlers.NewExamHandler(mockService)

	testID := uuid.New()

	tests := []struct {
		name           string
		testIDParam    string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "正常系: テスト取得成功",
			testIDParam: testID.String(),
			setupMock: func() {
				mockService.On("GetReviewTest", mock.Anything, testID).
					Return(&model.ReviewTest{TestID: testID, Subject: "kokugo"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   testID.String(),
		},
		{
			name:           "異常系: 不正なID形式",
			testIDParam:    "not-a-uuid",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"INVALID_REQUEST"`,
		},
		{
			name:        "異常系: テストが存在しない",
			testIDParam: testID.String(),
			setupMock: func() {
				mockService.On("GetReviewTest", mock.Anything, testID).
					Return(nil, model.NewAppError("NOT_FOUND", "復習テストが見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"NOT_FOUND"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodGet, "/review-tests/"+tt.testIDParam, nil)
			req = req.WithContext(contextWithChiURLParam(req.Context(), "test_id", tt.testIDParam))

			rr := httptest.NewRecorder()
			handler.GetReviewTest(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestExamHandler_SubmitResults(t *testing.T) {
	mockService := new(svc_mocks.ExamService)
	handler := handlers.NewExamHandler(mockService)

	testID := uuid.New()
	itemID := uuid.New()
	isCorrect := true
	validBody := &model.SubmitResultsRequest{
		Results: []model.ReviewResult{{ID: itemID, IsCorrect: &isCorrect}},
	}

	tests := []struct {
		name           string
		testIDParam    string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "正常系: 結果送信成功は204",
			testIDParam: testID.String(),
			reqBody:     validBody,
			setupMock: func() {
				mockService.On("SubmitResults", mock.Anything, testID, mock.AnythingOfType("*model.SubmitResultsRequest")).
					Return(true, nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:        "異常系: テストが存在しない場合は404",
			testIDParam: testID.String(),
			reqBody:     validBody,
			setupMock: func() {
				mockService.On("SubmitResults", mock.Anything, testID, mock.AnythingOfType("*model.SubmitResultsRequest")).
					Return(false, nil).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"NOT_FOUND"`,
		},
		{
			name:           "異常系: resultsが無い",
			testIDParam:    testID.String(),
			reqBody:        map[string]interface{}{"date": "2025-04-10"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"VALIDATION_ERROR"`,
		},
		{
			name:           "異常系: dateの形式が不正",
			testIDParam:    testID.String(),
			reqBody:        map[string]interface{}{"results": []map[string]interface{}{{"id": itemID.String(), "is_correct": true}}, "date": "2025/04/10"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"VALIDATION_ERROR"`,
		},
		{
			name:           "異常系: 不正なID形式",
			testIDParam:    "bad-id",
			reqBody:        validBody,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"INVALID_REQUEST"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodPost, "/review-tests/"+tt.testIDParam+"/results", tt.reqBody)
			req = req.WithContext(contextWithChiURLParam(req.Context(), "test_id", tt.testIDParam))

			rr := httptest.NewRecorder()
			handler.SubmitResults(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			} else {
				assert.Empty(t, rr.Body.String())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestExamHandler_UpdateStatus(t *testing.T) {
	mockService := new(svc_mocks.ExamService)
	handler := handlers.NewExamHandler(mockService)

	testID := uuid.New()

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "正常系: COMPLETEDへ更新",
			reqBody: map[string]string{"status": "COMPLETED"},
			setupMock: func() {
				mockService.On("UpdateStatus", mock.Anything, testID, model.TestStatusCompleted).
					Return(&model.ReviewTest{TestID: testID, Status: model.TestStatusCompleted}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"COMPLETED"`,
		},
		{
			name:           "異常系: 未知のステータス",
			reqBody:        map[string]string{"status": "ARCHIVED"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"VALIDATION_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodPatch, "/review-tests/"+testID.String()+"/status", tt.reqBody)
			req = req.WithContext(contextWithChiURLParam(req.Context(), "test_id", testID.String()))

			rr := httptest.NewRecorder()
			handler.UpdateStatus(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestExamHandler_DeleteReviewTest(t *testing.T) {
	mockService := new(svc_mocks.ExamService)
	handler := handlers.NewExamHandler(mockService)

	testID := uuid.New()

	t.Run("正常系: 削除成功は204", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("DeleteReviewTest", mock.Anything, testID).Return(nil).Once()

		req := newJsonRequest(t, http.MethodDelete, "/review-tests/"+testID.String(), nil)
		req = req.WithContext(contextWithChiURLParam(req.Context(), "test_id", testID.String()))

		rr := httptest.NewRecorder()
		handler.DeleteReviewTest(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないテストは404", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("DeleteReviewTest", mock.Anything, testID).
			Return(model.NewAppError("NOT_FOUND", "復習テストが見つかりません。", "", model.ErrNotFound)).Once()

		req := newJsonRequest(t, http.MethodDelete, "/review-tests/"+testID.String(), nil)
		req = req.WithContext(contextWithChiURLParam(req.Context(), "test_id", testID.String()))

		rr := httptest.NewRecorder()
		handler.DeleteReviewTest(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}
