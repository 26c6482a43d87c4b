package session

import (
	"context"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
)

/*=====================Persistence Store==========================*/

// Store is a string key-value store that survives restarts. Get reports ok=false for missing keys.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

/*======================Credential Table==========================*/

// Credentials looks up an authorized driver: id is matched case-insensitively, pin exactly.
// No match is (nil, nil).
type Credentials interface {
	Lookup(ctx context.Context, id, pin string) (*models.DriverProfile, error)
}

/*=======================Marker Issuer============================*/

// MarkerIssuer produces the persisted session marker, which doubles as the bearer token of the dashboard.
// Validate is consulted on startup: a marker it rejects is not restored.
type MarkerIssuer interface {
	IssueDriverToken(ctx context.Context, driverID, deviceID string) (models.IssuedToken, error)
	Validate(ctx context.Context, token string) (*models.DriverClaims, error)
}

/*========================Publisher===============================*/

type Publisher interface {
	PublishDriverStatus(ctx context.Context, msg models.DriverStatusMessage) error
	PublishDriverLocation(ctx context.Context, msg models.DriverLocationMessage) error
}

/*===========================Feed=================================*/

type Feed interface {
	Push(ctx context.Context, deviceID string, event types.FeedEvent, payload any) error
}

/*===========================Random===============================*/

// Rand yields uniform values in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}
