package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"smart_exam/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードし、バリデーションを実行します
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST", "リクエストボディが必要です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}

	if err := Validator.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return NewValidationErrorResponse(validationErrs)
		}
		return model.NewAppError("INVALID_REQUEST", "入力値の検証に失敗しました。", "", model.ErrInvalidInput)
	}
	return nil
}
