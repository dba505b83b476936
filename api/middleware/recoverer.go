package middleware

import (
	"fmt"
	"net/http"

	"github.com/techstore/storefront-backend/api/responses"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

// Recoverer turns panics into 500 responses instead of dropped
// connections.
func Recoverer(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := fmt.Errorf("panic: %v", rec)
					log.Error(r.Context(), "request panicked", err)
					responses.WriteError(w, apperrors.Wrap(apperrors.CodeInternal, err, "internal server error"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
