package geolocation

import (
	"context"
	"fmt"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
)

// Error codes a client sends when its device could not produce a position.
const (
	CodeUnsupported      = "unsupported"
	CodePermissionDenied = "permission_denied"
	CodeUnavailable      = "position_unavailable"
	CodeTimeout          = "timeout"
)

// Reported is the geolocation provider of the HTTP API: the position (or failure)
// the client read from its own device and sent along with the request.
type Reported struct {
	Latitude  *float64
	Longitude *float64
	Error     string
}

// CurrentPosition returns the reported coordinates. A report without a position is a failure;
// the "unsupported" code maps to types.ErrGeolocationUnsupported.
func (r Reported) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}

	switch {
	case r.Error == CodeUnsupported:
		return models.Coordinates{}, types.ErrGeolocationUnsupported
	case r.Error != "":
		return models.Coordinates{}, fmt.Errorf("%w: %s", types.ErrGeolocationFailed, r.Error)
	case r.Latitude == nil || r.Longitude == nil:
		return models.Coordinates{}, fmt.Errorf("%w: no position reported", types.ErrGeolocationFailed)
	}

	lat, lng := *r.Latitude, *r.Longitude
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return models.Coordinates{}, fmt.Errorf("%w: position out of range", types.ErrGeolocationFailed)
	}
	return models.Coordinates{Latitude: lat, Longitude: lng}, nil
}
