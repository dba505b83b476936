package migrate

import (
	"context"
	"fmt"

	"github.com/techstore/storefront-backend/pkg/config"
	"github.com/techstore/storefront-backend/pkg/db"
)

// AutoRun applies pending migrations on boot when the auto-migrate flag
// is set. Intended for dev environments; prod deploys run the migrate
// binary explicitly.
func AutoRun(ctx context.Context, cfg *config.Config, client *db.Client) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}
	if !cfg.App.IsDev() {
		return fmt.Errorf("auto-migrate is only allowed in dev")
	}
	// The migrations use postgres DDL (extensions, text[]), so goose
	// cannot apply them to a sqlite database.
	if cfg.DB.IsSQLite() {
		return fmt.Errorf("auto-migrate requires the postgres driver")
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB handle: %w", err)
	}

	return Up(ctx, sqlDB, DefaultDir)
}
