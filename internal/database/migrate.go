package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
)

// Migrate applies every .sql file under dir in fsys, in lexical order.
// Migration files are expected to be idempotent (CREATE TABLE IF NOT EXISTS).
func Migrate(ctx context.Context, db *sqlx.DB, fsys fs.FS, dir string) error {
	names, err := fs.Glob(fsys, dir+"/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob(%s) > %w", dir, err)
	}
	sort.Strings(names)

	for _, name := range names {
		contents, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", name, err)
		}
	}
	return nil
}
