package booking

import (
	"context"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/google/uuid"
)

/*========================Publisher===============================*/

type Publisher interface {
	PublishBookingStatus(ctx context.Context, msg models.BookingStatusMessage) error
}

/*===========================Feed=================================*/

// Feed pushes live updates to the clients watching a booking.
type Feed interface {
	Push(ctx context.Context, bookingID uuid.UUID, event types.FeedEvent, payload any) error
}

/*=========================Concierge==============================*/

// Advisor delivers an advisory message through the booking's concierge chat.
type Advisor interface {
	Advise(ctx context.Context, bookingID uuid.UUID, text string)
	Forget(bookingID uuid.UUID)
}

/*=========================Geolocation============================*/

// Locator resolves the user's current position. It may block until the provider answers.
type Locator interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

/*===================== Address Geo Coder ========================*/

type GeoCoder interface {
	Search(ctx context.Context, query string) (models.Coordinates, error)
}
