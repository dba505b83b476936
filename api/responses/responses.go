package responses

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/types"
)

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.SuccessEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteError maps a typed error to its HTTP status and public shape.
// Untyped errors render as internal errors without leaking detail.
func WriteError(w http.ResponseWriter, err error) {
	code := apperrors.CodeInternal
	message := ""
	var details any

	if typed := apperrors.As(err); typed != nil {
		code = typed.Code()
		message = typed.Message()
		details = typed.Details()
	}

	meta := apperrors.MetadataFor(code)
	if message == "" {
		message = meta.PublicMessage
	}
	if !meta.DetailsAllowed {
		details = nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(meta.HTTPStatus)
	_ = json.NewEncoder(w).Encode(types.ErrorEnvelope{
		Success: false,
		Error: types.ErrorBody{
			Code:    string(code),
			Message: message,
			Details: details,
		},
	})
}
