package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS drivers (
	id          TEXT PRIMARY KEY,
	pin_hash    TEXT NOT NULL,
	name        TEXT NOT NULL,
	vehicle     TEXT NOT NULL,
	rating      NUMERIC(2,1) NOT NULL DEFAULT 5.0,
	total_rides INTEGER NOT NULL DEFAULT 0,
	earnings    TEXT NOT NULL DEFAULT '$0.00',
	online_time TEXT NOT NULL DEFAULT '0h 00m',
	avatar      TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS drivers_id_upper_idx ON drivers (upper(id));
`

// EnsureSchema creates the tables used by the postgres store and credential table.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
