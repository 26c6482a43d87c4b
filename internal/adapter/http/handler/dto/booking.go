package dto

import (
	"github.com/Temutjin2k/ubar/internal/adapter/geolocation"
	"github.com/Temutjin2k/ubar/pkg/validator"
)

// TextRequest is the body of the pickup and dropoff field updates.
type TextRequest struct {
	Text string `json:"text"`
}

func ValidateText(v *validator.Validator, req *TextRequest) {
	v.Check(len(req.Text) <= 500, "text", "must not be more than 500 bytes long")
}

// RideRequest is the body of POST /bookings/{booking_id}/request.
// Blank fields are not a validation error here: the booking records the message itself.
type RideRequest struct {
	Pickup  string `json:"pickup"`
	Dropoff string `json:"dropoff"`
}

func ValidateRideRequest(v *validator.Validator, req *RideRequest) {
	v.Check(len(req.Pickup) <= 500, "pickup", "must not be more than 500 bytes long")
	v.Check(len(req.Dropoff) <= 500, "dropoff", "must not be more than 500 bytes long")
}

// LocateRequest is what the client read from its device geolocation API.
type LocateRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func ValidateLocate(v *validator.Validator, req *LocateRequest) {
	v.Check(req.Error == "" || validator.PermittedValue(req.Error,
		geolocation.CodeUnsupported,
		geolocation.CodePermissionDenied,
		geolocation.CodeUnavailable,
		geolocation.CodeTimeout,
	), "error", "unknown geolocation error code")
}

func (r *LocateRequest) ToLocator() geolocation.Reported {
	return geolocation.Reported{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Error:     r.Error,
	}
}

type ConciergeRequest struct {
	Message string `json:"message"`
}

// ValidateConcierge only bounds the size; blank input is the service's call.
func ValidateConcierge(v *validator.Validator, req *ConciergeRequest) {
	v.Check(len(req.Message) <= 2000, "message", "must not be more than 2000 bytes long")
}

type SelectSuggestionRequest struct {
	Index *int `json:"index"`
}

func ValidateSelectSuggestion(v *validator.Validator, req *SelectSuggestionRequest) {
	v.Check(req.Index != nil, "index", "must be provided")
	if req.Index != nil {
		v.Check(*req.Index >= 0, "index", "must not be negative")
	}
}
