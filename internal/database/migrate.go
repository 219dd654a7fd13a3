package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// MigrateUp applies every *.up.sql file found in dir, in lexical order.
// Files are expected to be idempotent (CREATE TABLE IF NOT EXISTS et al.)
// since the runner keeps no version table.
func MigrateUp(ctx context.Context, db *sql.DB, dir string) error {
	return runMigrations(ctx, db, dir, "*.up.sql")
}

// MigrateDown applies every *.down.sql file in dir, in reverse lexical order.
func MigrateDown(ctx context.Context, db *sql.DB, dir string) error {
	return runMigrations(ctx, db, dir, "*.down.sql")
}

func runMigrations(ctx context.Context, db *sql.DB, dir, pattern string) error {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	sort.Strings(files)
	if pattern == "*.down.sql" {
		for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
			files[i], files[j] = files[j], files[i]
		}
	}
	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
	}
	return nil
}
