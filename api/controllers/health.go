package controllers

import (
	"fmt"
	"net/http"

	"go.uber.org/multierr"

	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/pkg/db"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/redis"
)

// Live answers as long as the process is serving.
func Live() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Ready reports whether both stores are reachable.
func Ready(dbClient *db.Client, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database": "ok",
			"redis":    "ok",
		}
		var unhealthy error

		if err := dbClient.Ping(r.Context()); err != nil {
			checks["database"] = err.Error()
			unhealthy = multierr.Append(unhealthy, fmt.Errorf("database: %w", err))
		}
		if err := redisClient.Ping(r.Context()); err != nil {
			checks["redis"] = err.Error()
			unhealthy = multierr.Append(unhealthy, fmt.Errorf("redis: %w", err))
		}

		if unhealthy != nil {
			responses.WriteError(w, apperrors.Wrap(apperrors.CodeDependency, unhealthy, "dependency unavailable").
				WithDetails(checks))
			return
		}

		responses.WriteSuccess(w, http.StatusOK, checks)
	}
}
