package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/techstore/storefront-backend/pkg/config"
	"github.com/techstore/storefront-backend/pkg/migrate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	var (
		dir  = flag.String("dir", migrate.DefaultDir, "directory with migration files")
		name = flag.String("name", "", "name for the new migration (create only)")
	)
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		return fmt.Errorf("usage: migrate [flags] up|down|status|version|create")
	}

	if command == "create" {
		return migrate.Create(*dir, *name)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sqlDB, err := sql.Open("postgres", cfg.DB.DSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	ctx := context.Background()

	switch command {
	case "up":
		return migrate.Up(ctx, sqlDB, *dir)
	case "down":
		return migrate.Down(ctx, sqlDB, *dir)
	case "status":
		return migrate.Status(ctx, sqlDB, *dir)
	case "version":
		version, err := migrate.Version(ctx, sqlDB, *dir)
		if err != nil {
			return err
		}
		fmt.Printf("migration version: %d\n", version)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
