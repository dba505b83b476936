package validators

import (
	"net/http"

	"github.com/google/uuid"

	apperrors "github.com/techstore/storefront-backend/pkg/errors"
)

// ParseQueryUUID reads an optional uuid query parameter. A missing
// parameter returns nil without error.
func ParseQueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid "+name+" parameter")
	}
	return &id, nil
}
