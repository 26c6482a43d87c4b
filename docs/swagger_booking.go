package docs

// @title           Booking Service API
// @version         1.0
// @description     Booking service runs the ride booking flow: pickup and dropoff capture, simulated driver search, live driver position and the concierge chat. Updates are pushed over a WebSocket per booking.

// @host      localhost:3000
// @BasePath  /
