// internal/handlers/exam_handler.go
package handlers

import (
	"net/http"

	"smart_exam/internal/middleware"
	"smart_exam/internal/model"
	"smart_exam/internal/service"
	"smart_exam/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ExamHandler struct {
	service service.ExamService
}

func NewExamHandler(s service.ExamService) *ExamHandler {
	return &ExamHandler{service: s}
}

// CreateReviewTest は POST /review-tests を処理します。
// 期日到来済みの候補が1件も無くても空のテストを作成して201を返します。
func (h *ExamHandler) CreateReviewTest(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReviewTestRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	test, err := h.service.CreateReviewTest(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, test)
}

// GetReviewTest は GET /review-tests/{test_id} を処理します
func (h *ExamHandler) GetReviewTest(w http.ResponseWriter, r *http.Request) {
	testID, ok := parseTestID(w, r)
	if !ok {
		return
	}

	test, err := h.service.GetReviewTest(r.Context(), testID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, test)
}

// SubmitResults は POST /review-tests/{test_id}/results を処理します。
// 対象のテストが存在しない場合は404、反映に着手できれば204を返します。
func (h *ExamHandler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	testID, ok := parseTestID(w, r)
	if !ok {
		return
	}

	var req model.SubmitResultsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	found, err := h.service.SubmitResults(r.Context(), testID, &req)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	if !found {
		webutil.HandleError(w, model.NewAppError("NOT_FOUND", "復習テストが見つかりません。", "", model.ErrNotFound))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus は PATCH /review-tests/{test_id}/status を処理します
func (h *ExamHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	testID, ok := parseTestID(w, r)
	if !ok {
		return
	}

	var req model.UpdateTestStatusRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	test, err := h.service.UpdateStatus(r.Context(), testID, req.Status)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, test)
}

// DeleteReviewTest は DELETE /review-tests/{test_id} を処理します
func (h *ExamHandler) DeleteReviewTest(w http.ResponseWriter, r *http.Request) {
	testID, ok := parseTestID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReviewTest(r.Context(), testID); err != nil {
		webutil.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseTestID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "test_id")
	testID, err := uuid.Parse(idStr)
	if err != nil {
		logger := middleware.GetLogger(r.Context())
		logger.Warn("Invalid test ID format", "test_id", idStr)
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST", "テストIDの形式が正しくありません。", "test_id", model.ErrInvalidInput))
		return uuid.Nil, false
	}
	return testID, true
}
