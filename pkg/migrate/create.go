package migrate

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

// Create scaffolds a new timestamped SQL migration file in dir.
func Create(dir, name string) error {
	if name == "" {
		return fmt.Errorf("migration name is required")
	}
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("creating migration: %w", err)
	}
	return nil
}
