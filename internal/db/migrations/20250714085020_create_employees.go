package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS employees (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	designation   TEXT NOT NULL DEFAULT '',
	date_of_join  DATE NOT NULL,
	salary        NUMERIC(18,2) NOT NULL,
	gender        TEXT NOT NULL DEFAULT '',
	state         TEXT NOT NULL DEFAULT '',
	date_of_birth DATE NOT NULL
)`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS employees`)
		return err
	})
}
