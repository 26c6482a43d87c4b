package repo

import (
	"context"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/metrics"
	"github.com/Temutjin2k/ubar/pkg/trm"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

// TxorDB returns the transaction carried by ctx, or the pool when there is none.
func TxorDB(ctx context.Context, db *pgxpool.Pool) Querier {
	tx, ok := ctx.Value(trm.TxKey).(pgx.Tx)
	if !ok {
		return db
	}
	return tx
}

// observe records the query metrics of op and tags failures with the database action.
func observe(ctx context.Context, op string, start time.Time, err error) error {
	metrics.RecordDatabaseQuery(op, err, time.Since(start))
	if err == nil {
		return nil
	}
	return wrap.Error(wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed), err)
}
