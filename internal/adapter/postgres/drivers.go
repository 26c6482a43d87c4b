package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/pkg/passhash"
	"github.com/Temutjin2k/ubar/pkg/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDriverConflict = errors.New("driver id conflict")

// DriverRepo is the credential table backed by the drivers table. Pins are stored hashed.
type DriverRepo struct {
	db *pgxpool.Pool
}

func NewDriverRepo(db *pgxpool.Pool) *DriverRepo {
	return &DriverRepo{db: db}
}

// Lookup matches id case-insensitively and verifies pin against the stored hash.
func (r *DriverRepo) Lookup(ctx context.Context, id, pin string) (*models.DriverProfile, error) {
	const op = "DriverRepo.Lookup"
	query := `
		SELECT id, pin_hash, name, vehicle, rating, total_rides, earnings, online_time, avatar
		FROM drivers
		WHERE upper(id) = upper($1)`

	start := time.Now()
	var (
		d       models.DriverProfile
		pinHash string
	)
	err := TxorDB(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&d.ID, &pinHash, &d.Name, &d.Vehicle, &d.Rating, &d.TotalRides, &d.Earnings, &d.OnlineTime, &d.Avatar,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, observe(ctx, op, start, nil)
	}
	if err != nil {
		return nil, observe(ctx, op, start, fmt.Errorf("%s: %w", op, err))
	}
	if err := observe(ctx, op, start, nil); err != nil {
		return nil, err
	}

	ok, err := passhash.Verify(pin, pinHash)
	if err != nil {
		return nil, fmt.Errorf("%s: driver %s: %w", op, d.ID, err)
	}
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// Upsert stores d with its pin hashed. An existing driver with the same id is overwritten.
func (r *DriverRepo) Upsert(ctx context.Context, d models.DriverProfile) error {
	const op = "DriverRepo.Upsert"
	query := `
		INSERT INTO drivers (id, pin_hash, name, vehicle, rating, total_rides, earnings, online_time, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			pin_hash = EXCLUDED.pin_hash,
			name = EXCLUDED.name,
			vehicle = EXCLUDED.vehicle,
			rating = EXCLUDED.rating,
			total_rides = EXCLUDED.total_rides,
			earnings = EXCLUDED.earnings,
			online_time = EXCLUDED.online_time,
			avatar = EXCLUDED.avatar`

	pinHash, err := passhash.Hash(d.Pin)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	_, err = TxorDB(ctx, r.db).Exec(ctx, query,
		d.ID, pinHash, d.Name, d.Vehicle, d.Rating, d.TotalRides, d.Earnings, d.OnlineTime, d.Avatar,
	)
	if postgres.IsUniqueViolation(err) {
		err = fmt.Errorf("%w: id %q differs only in case from an existing driver", ErrDriverConflict, d.ID)
	}
	if err != nil {
		return observe(ctx, op, start, fmt.Errorf("%s: %w", op, err))
	}
	return observe(ctx, op, start, nil)
}

// Count returns the number of drivers on the roster.
func (r *DriverRepo) Count(ctx context.Context) (int, error) {
	const op = "DriverRepo.Count"

	start := time.Now()
	var n int
	if err := TxorDB(ctx, r.db).QueryRow(ctx, `SELECT count(*) FROM drivers`).Scan(&n); err != nil {
		return 0, observe(ctx, op, start, fmt.Errorf("%s: %w", op, err))
	}
	return n, observe(ctx, op, start, nil)
}
