package types

// FeedEvent is the type of a message pushed over the websocket feeds and the message broker.
type FeedEvent string

func (s FeedEvent) String() string {
	return string(s)
}

const (
	EventBookingStatus  FeedEvent = "BOOKING_STATUS"
	EventDriverPosition FeedEvent = "DRIVER_POSITION"
	EventMapFocus       FeedEvent = "MAP_FOCUS"
	EventAdvisory       FeedEvent = "ADVISORY"

	EventSessionView    FeedEvent = "SESSION_VIEW"
	EventDriverStatus   FeedEvent = "DRIVER_STATUS"
	EventDriverLocation FeedEvent = "DRIVER_LOCATION"
)
