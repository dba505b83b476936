package migrate

import (
	"context"
	"strings"
	"testing"

	"github.com/techstore/storefront-backend/pkg/config"
)

func TestAutoRunDisabled(t *testing.T) {
	cfg := &config.Config{}

	if err := AutoRun(context.Background(), cfg, nil); err != nil {
		t.Fatalf("AutoRun with flag off: %v", err)
	}
}

func TestAutoRunRejectsProd(t *testing.T) {
	cfg := &config.Config{
		App:          config.AppConfig{Env: config.AppEnvProd},
		FeatureFlags: config.FeatureFlagsConfig{AutoMigrate: true},
	}

	err := AutoRun(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("expected error in prod")
	}
}

func TestAutoRunRejectsSQLite(t *testing.T) {
	cfg := &config.Config{
		App:          config.AppConfig{Env: config.AppEnvDev},
		DB:           config.DBConfig{Driver: config.DBDriverSQLite},
		FeatureFlags: config.FeatureFlagsConfig{AutoMigrate: true},
	}

	err := AutoRun(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("expected error with sqlite driver")
	}
	if !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("unexpected error: %v", err)
	}
}
