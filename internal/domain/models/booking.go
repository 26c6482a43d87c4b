package models

import (
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/google/uuid"
)

// BookingSnapshot is a point-in-time copy of a booking flow.
type BookingSnapshot struct {
	ID        uuid.UUID           `json:"id"`
	Status    types.BookingStatus `json:"status"`
	Pickup    string              `json:"pickup"`
	Dropoff   string              `json:"dropoff"`
	Position  *Position           `json:"driver_position,omitempty"` // only while confirmed
	Error     string              `json:"error,omitempty"`
	Locating  bool                `json:"locating"`
	MapFocus  MapFocus            `json:"map_focus"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// BookingStatusMessage is published on every booking status change.
type BookingStatusMessage struct {
	BookingID uuid.UUID           `json:"booking_id"`
	Status    types.BookingStatus `json:"status"`
	Pickup    string              `json:"pickup,omitempty"`
	Dropoff   string              `json:"dropoff,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// DriverPositionMessage carries one simulated driver position tick of a confirmed booking.
type DriverPositionMessage struct {
	BookingID uuid.UUID `json:"booking_id"`
	Position  Position  `json:"position"`
	Arrived   bool      `json:"arrived"`
	Timestamp time.Time `json:"timestamp"`
}
