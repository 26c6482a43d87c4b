package models

import (
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
)

// DriverProfile is an authorized driver. Pin never leaves the credential table.
type DriverProfile struct {
	ID         string  `json:"id"`
	Pin        string  `json:"-"`
	Name       string  `json:"name"`
	Vehicle    string  `json:"vehicle"`
	Rating     float64 `json:"rating"`
	TotalRides int     `json:"totalRides"`
	Earnings   string  `json:"earnings"`
	OnlineTime string  `json:"onlineTime"`
	Avatar     string  `json:"avatar"`
}

// DriverApplication is the data of the "join the fleet" form.
type DriverApplication struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	VehicleModel string `json:"vehicle_model"`
	LicensePlate string `json:"license_plate"`
}

// DriverSessionSnapshot is a point-in-time copy of a driver portal session.
type DriverSessionSnapshot struct {
	DeviceID        string            `json:"device_id"`
	View            types.SessionView `json:"view"`
	IsOnline        bool              `json:"is_online"`
	Driver          *DriverProfile    `json:"driver,omitempty"`
	Location        Coordinates       `json:"location"`
	Error           string            `json:"error,omitempty"`
	Pending         bool              `json:"pending"`
	ApplicationSent bool              `json:"application_sent"`
	LoginID         string            `json:"login_id,omitempty"`
}

// DriverStatusMessage is published when a driver goes online or offline.
type DriverStatusMessage struct {
	DriverID  string             `json:"driver_id"`
	DeviceID  string             `json:"device_id"`
	Status    types.DriverStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}

// DriverLocationMessage is one GPS telemetry broadcast of an online driver.
type DriverLocationMessage struct {
	DriverID  string      `json:"driver_id"`
	DeviceID  string      `json:"device_id"`
	Location  Coordinates `json:"location"`
	Timestamp time.Time   `json:"timestamp"`
}

// LoginResult is the outcome of a simulated login.
type LoginResult struct {
	Driver *DriverProfile
	Marker string
	Err    error
}
