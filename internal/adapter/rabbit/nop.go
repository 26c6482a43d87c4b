package rabbit

import (
	"context"

	"github.com/Temutjin2k/ubar/internal/domain/models"
)

// Nop drops every event. Used when the broker is disabled in config.
type Nop struct{}

func (Nop) PublishBookingStatus(context.Context, models.BookingStatusMessage) error   { return nil }
func (Nop) PublishDriverStatus(context.Context, models.DriverStatusMessage) error     { return nil }
func (Nop) PublishDriverLocation(context.Context, models.DriverLocationMessage) error { return nil }
