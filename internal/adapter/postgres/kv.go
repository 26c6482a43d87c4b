package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KVStore keeps driver portal session keys in the kv_store table. Writes are last-write-wins.
type KVStore struct {
	db *pgxpool.Pool
}

func NewKVStore(db *pgxpool.Pool) *KVStore {
	return &KVStore{db: db}
}

func (r *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "KVStore.Get"
	query := `SELECT value FROM kv_store WHERE key = $1`

	start := time.Now()
	var value string
	err := TxorDB(ctx, r.db).QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, observe(ctx, op, start, nil)
	}
	if err != nil {
		return "", false, observe(ctx, op, start, fmt.Errorf("%s: %w", op, err))
	}
	return value, true, observe(ctx, op, start, nil)
}

func (r *KVStore) Set(ctx context.Context, key, value string) error {
	const op = "KVStore.Set"
	query := `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	start := time.Now()
	if _, err := TxorDB(ctx, r.db).Exec(ctx, query, key, value); err != nil {
		return observe(ctx, op, start, fmt.Errorf("%s: %w", op, err))
	}
	return observe(ctx, op, start, nil)
}

// Delete removes key. Deleting a missing key is not an error.
func (r *KVStore) Delete(ctx context.Context, key string) error {
	const op = "KVStore.Delete"
	query := `DELETE FROM kv_store WHERE key = $1`

	start := time.Now()
	if _, err := TxorDB(ctx, r.db).Exec(ctx, query, key); err != nil {
		return observe(ctx, op, start, fmt.Errorf("%s: %w", op, err))
	}
	return observe(ctx, op, start, nil)
}
