package docs

// @title           Driver Portal API
// @version         1.0
// @description     Driver service runs the driver portal of each device: login, registration applications, online status and GPS telemetry. Session views and telemetry are pushed over a WebSocket per device.

// @host      localhost:3001
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token returned by login.
