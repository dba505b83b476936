package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// DefaultDir is where the SQL migrations live relative to the repo root.
const DefaultDir = "pkg/migrate/migrations"

func setDialect() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	return nil
}

func Up(ctx context.Context, db *sql.DB, dir string) error {
	if err := setDialect(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("running migrations up: %w", err)
	}
	return nil
}

func Down(ctx context.Context, db *sql.DB, dir string) error {
	if err := setDialect(); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, dir); err != nil {
		return fmt.Errorf("rolling back migration: %w", err)
	}
	return nil
}

func Status(ctx context.Context, db *sql.DB, dir string) error {
	if err := setDialect(); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, db, dir); err != nil {
		return fmt.Errorf("reading migration status: %w", err)
	}
	return nil
}

func Version(ctx context.Context, db *sql.DB, dir string) (int64, error) {
	if err := setDialect(); err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("reading migration version: %w", err)
	}
	return version, nil
}
