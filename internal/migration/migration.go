// Package migration applies the embedded SQL schema.
package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"property-listing/pkg/log"
)

//go:embed sql/*.sql
var files embed.FS

// Files returns the migration file names in apply order.
func Files() ([]string, error) {
	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Up applies every migration. Statements are idempotent (IF NOT EXISTS),
// so Up is safe to run on every start.
func Up(ctx context.Context, pool *pgxpool.Pool, l log.Logger) error {
	names, err := Files()
	if err != nil {
		return fmt.Errorf("migration: list files: %w", err)
	}

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("migration: read %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("migration: apply %s: %w", name, err)
		}
		l.Infof(ctx, "migration.Up: applied %s", name)
	}
	return nil
}
