package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

// Name lookups back the duplicate check on every insert.
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_employees_name ON employees (name)`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP INDEX IF EXISTS idx_employees_name`)
		return err
	})
}
