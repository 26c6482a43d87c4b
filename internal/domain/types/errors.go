package types

import "errors"

var (
	ErrNotFound = errors.New("requested item not found")

	// booking
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingInProgress = errors.New("booking already in progress")
	ErrMissingLocations  = errors.New("pickup and drop-off locations are required")

	// geolocation
	ErrGeolocationUnsupported = errors.New("geolocation is not supported")
	ErrGeolocationFailed      = errors.New("geolocation request failed")

	// driver session
	ErrSessionNotFound        = errors.New("driver session not found")
	ErrInvalidView            = errors.New("operation is not available on the current screen")
	ErrOperationPending       = errors.New("another operation is still pending")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrCredentialsLookup      = errors.New("credential lookup failed")
	ErrNoApplicationToDismiss = errors.New("no submitted application to dismiss")

	// concierge
	ErrEmptyMessage        = errors.New("message is empty")
	ErrSuggestionFailed    = errors.New("suggestion service failed")
	ErrMalformedSuggestion = errors.New("malformed suggestion payload")
	ErrSuggestionNotFound  = errors.New("suggestion not found")

	// content
	ErrPassNotFound = errors.New("pass not found")
	ErrFeedFailed   = errors.New("podcast feed unavailable")

	// auth
	ErrInvalidToken = errors.New("invalid token")
	ErrExpToken     = errors.New("expired token")
	ErrForbidden    = errors.New("action forbidden")
)
