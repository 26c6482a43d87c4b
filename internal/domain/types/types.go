package types

type ServiceMode string

// Booking Service - ride booking flow, live driver position and the concierge chat
// Driver Service - driver portal sessions, online/offline broadcast and GPS telemetry
// Content Service - passes, events and the podcast feed
const (
	BookingService ServiceMode = "booking-service"
	DriverService  ServiceMode = "driver-service"
	ContentService ServiceMode = "content-service"
)

// BookingStatus is the lifecycle of a single ride request.
type BookingStatus string

func (s BookingStatus) String() string {
	return string(s)
}

const (
	BookingIdle      BookingStatus = "idle"
	BookingSearching BookingStatus = "searching"
	BookingConfirmed BookingStatus = "confirmed"
)

// SessionView is the screen a driver portal session is on.
type SessionView string

func (v SessionView) String() string {
	return string(v)
}

const (
	ViewLoading   SessionView = "loading"
	ViewLogin     SessionView = "login"
	ViewRegister  SessionView = "register"
	ViewDashboard SessionView = "dashboard"
)

// Enum для статуса водителя
type DriverStatus string

const (
	OfflineStatus   DriverStatus = "OFFLINE"
	AvailableStatus DriverStatus = "AVAILABLE"
)

// Enum для роли пользователя
type UserRole string

func (r UserRole) String() string {
	return string(r)
}

const (
	DriverRole UserRole = "DRIVER"
)

// ChatRole is the author of a concierge chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// StoreBackend selects the persistence collaborator.
type StoreBackend string

const (
	StoreBadger   StoreBackend = "badger"
	StorePostgres StoreBackend = "postgres"
)

// CredentialSource selects the credential table.
type CredentialSource string

const (
	CredentialsStatic   CredentialSource = "static"
	CredentialsPostgres CredentialSource = "postgres"
)
