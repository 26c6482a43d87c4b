package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/metrics"
	"github.com/dgraph-io/badger/v4"
)

// Store keeps driver portal session keys in an embedded badger database.
type Store struct {
	db *badger.DB
}

type Config struct {
	Path     string
	InMemory bool
}

// Open opens the database at cfg.Path, or a throwaway in-memory one when cfg.InMemory is set.
func Open(cfg Config, l logger.Logger) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{l: l})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "Store.Get"
	start := time.Now()

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		metrics.RecordDatabaseQuery(op, nil, time.Since(start))
		return "", false, nil
	}
	metrics.RecordDatabaseQuery(op, err, time.Since(start))
	if err != nil {
		return "", false, failed(ctx, op, err)
	}
	return string(value), true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	const op = "Store.Set"
	start := time.Now()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	metrics.RecordDatabaseQuery(op, err, time.Since(start))
	if err != nil {
		return failed(ctx, op, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	const op = "Store.Delete"
	start := time.Now()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	metrics.RecordDatabaseQuery(op, err, time.Since(start))
	if err != nil {
		return failed(ctx, op, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func failed(ctx context.Context, op string, err error) error {
	ctx = wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed)
	return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
}

// badgerLogger routes badger's internal logging into the service logger.
type badgerLogger struct {
	l logger.Logger
}

func (b badgerLogger) Errorf(format string, args ...any) {
	b.l.Error(context.Background(), "badger", fmt.Errorf(format, args...))
}

func (b badgerLogger) Warningf(format string, args ...any) {
	b.l.Warn(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}

func (b badgerLogger) Infof(format string, args ...any) {
	b.l.Debug(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}

func (b badgerLogger) Debugf(format string, args ...any) {
	b.l.Debug(context.Background(), fmt.Sprintf(format, args...), "component", "badger")
}
