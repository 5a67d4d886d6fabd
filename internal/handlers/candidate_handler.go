// internal/handlers/candidate_handler.go
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

type CandidateHandler struct {
	service service.CandidateService
}

func NewCandidateHandler(s service.CandidateService) *CandidateHandler {
	return &CandidateHandler{service: s}
}

// ListCandidates は GET /review-tests/candidates を処理します。
// subjectクエリは必須、modeクエリは任意の絞り込みです。
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")
	if subject == "" {
		webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "subjectクエリパラメータは必須です。", "subject", model.ErrInvalidInput))
		return
	}

	var mode *model.Mode
	if m := r.URL.Query().Get("mode"); m != "" {
		candidate := model.Mode(m)
		if !candidate.IsValid() {
			webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "modeはMATERIALまたはKANJIを指定してください。", "mode", model.ErrInvalidInput))
			return
		}
		mode = &candidate
	}

	candidates, err := h.service.ListCandidates(r.Context(), subject, mode)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	if candidates == nil {
		candidates = []*model.CandidateResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, candidates)
}

// MarkResult は PUT /items/{item_id}/result を処理します。
// テストを介さずに発生した正誤イベントを候補ストアへ反映します。
func (h *CandidateHandler) MarkResult(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var req model.MarkResultRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	if err := h.service.MarkResult(r.Context(), itemID, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterCandidate は POST /candidates を処理します（インポート・初期投入用）
func (h *CandidateHandler) RegisterCandidate(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterCandidateRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	candidate, err := h.service.RegisterCandidate(r.Context(), req.Subject, req.TargetID, req.Mode, req.NextTime)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, candidate)
}

// DeleteByItem は DELETE /items/{item_id}/candidates を処理します。
// アイテム本体の削除に追従して候補レコードを片付けます。
func (h *CandidateHandler) DeleteByItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	subject := r.URL.Query().Get("subject")
	if subject == "" {
		webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "subjectクエリパラメータは必須です。", "subject", model.ErrInvalidInput))
		return
	}

	if err := h.service.DeleteByItem(r.Context(), subject, itemID); err != nil {
		webutil.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "item_id")
	itemID, err := uuid.Parse(idStr)
	if err != nil {
		logger := middleware.GetLogger(r.Context())
		logger.Warn("Invalid item ID format", "item_id", idStr)
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST", "アイテムIDの形式が正しくありません。", "item_id", model.ErrInvalidInput))
		return uuid.Nil, false
	}
	return itemID, true
}
