package routes

import (
	"io"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/techstore/storefront-backend/pkg/config"
	"github.com/techstore/storefront-backend/pkg/logger"
)

func TestRouterRegistersRoutes(t *testing.T) {
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	r := NewRouter(Dependencies{
		Config:   &config.Config{},
		Logger:   log,
		Registry: prometheus.NewRegistry(),
	})

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/v1/products"},
		{http.MethodGet, "/api/v1/featured"},
		{http.MethodGet, "/api/v1/search"},
		{http.MethodPost, "/api/v1/newsletter"},
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodPatch, "/api/v1/profile"},
		{http.MethodPost, "/api/v1/cart/items"},
		{http.MethodPost, "/api/v1/reviews"},
		{http.MethodGet, "/api/admin/v1/dashboard"},
		{http.MethodGet, "/api/admin/v1/products"},
		{http.MethodPost, "/api/admin/v1/products"},
		{http.MethodGet, "/api/admin/v1/reviews"},
		{http.MethodGet, "/api/admin/v1/blog"},
		{http.MethodPost, "/api/admin/v1/orders/0b26a4c6-7d51-4be0-9b68-1f6e9a4c2f10/status"},
	}

	for _, tc := range cases {
		rctx := chi.NewRouteContext()
		if !r.Match(rctx, tc.method, tc.path) {
			t.Errorf("no route for %s %s", tc.method, tc.path)
		}
	}
}
