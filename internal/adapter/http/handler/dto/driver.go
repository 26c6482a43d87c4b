package dto

import (
	"strings"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/pkg/validator"
)

type OpenSessionRequest struct {
	DeviceID string `json:"device_id"`
}

func ValidateOpenSession(v *validator.Validator, req *OpenSessionRequest) {
	v.Check(len(req.DeviceID) <= 128, "device_id", "must not be more than 128 bytes long")
	v.Check(!strings.ContainsAny(req.DeviceID, "/ "), "device_id", "must not contain slashes or spaces")
}

type LoginRequest struct {
	DriverID string `json:"driver_id"`
	Pin      string `json:"pin"`
}

func ValidateLogin(v *validator.Validator, req *LoginRequest) {
	v.Check(validator.NotBlank(req.DriverID), "driver_id", "must be provided")
	v.Check(req.Pin != "", "pin", "must be provided")
	v.Check(len(req.Pin) <= 32, "pin", "must not be more than 32 bytes long")
}

type ApplicationRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	VehicleModel string `json:"vehicle_model"`
	LicensePlate string `json:"license_plate"`
}

func ValidateApplication(v *validator.Validator, req *ApplicationRequest) {
	v.Check(validator.NotBlank(req.Name), "name", "must be provided")
	v.Check(len(req.Name) <= 500, "name", "must not be more than 500 bytes long")

	v.Check(req.Email != "", "email", "must be provided")
	v.Check(validator.Matches(req.Email, validator.EmailRX), "email", "must be a valid email address")

	v.Check(validator.NotBlank(req.VehicleModel), "vehicle_model", "must be provided")
	v.Check(validator.NotBlank(req.LicensePlate), "license_plate", "must be provided")
	v.Check(len(req.LicensePlate) <= 16, "license_plate", "must not be more than 16 bytes long")
}

func (r *ApplicationRequest) ToModel() models.DriverApplication {
	return models.DriverApplication{
		Name:         strings.TrimSpace(r.Name),
		Email:        strings.TrimSpace(r.Email),
		VehicleModel: strings.TrimSpace(r.VehicleModel),
		LicensePlate: strings.ToUpper(strings.TrimSpace(r.LicensePlate)),
	}
}
