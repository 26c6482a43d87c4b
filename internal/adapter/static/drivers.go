package static

import (
	"context"
	"strings"

	"github.com/Temutjin2k/ubar/internal/domain/models"
)

// AuthorizedDrivers is the built-in fleet roster.
var AuthorizedDrivers = []models.DriverProfile{
	{
		ID:         "UB-ADMIN",
		Pin:        "2026",
		Name:       "Neon Dave (Lead)",
		Vehicle:    "Sprinter VIP Lounge X1",
		Rating:     5.0,
		TotalRides: 1420,
		Earnings:   "$450.00",
		OnlineTime: "6h 30m",
		Avatar:     "https://images.unsplash.com/photo-1570295999919-56ceb5ecca61?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80",
	},
	{
		ID:         "UB-8842",
		Pin:        "1234",
		Name:       "Sarah Jenkins",
		Vehicle:    "Cadillac Escalade ESV",
		Rating:     4.9,
		TotalRides: 842,
		Earnings:   "$142.50",
		OnlineTime: "4h 12m",
		Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80",
	},
	{
		ID:         "UB-9901",
		Pin:        "7777",
		Name:       "Marcus Ford",
		Vehicle:    "Mercedes Sprinter Party Bus",
		Rating:     4.8,
		TotalRides: 120,
		Earnings:   "$85.00",
		OnlineTime: "1h 05m",
		Avatar:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80",
	},
}

// Credentials checks logins against an in-memory roster.
type Credentials struct {
	drivers []models.DriverProfile
}

// NewCredentials returns a credential table over drivers, or over AuthorizedDrivers when none are given.
func NewCredentials(drivers ...models.DriverProfile) *Credentials {
	if len(drivers) == 0 {
		drivers = AuthorizedDrivers
	}
	return &Credentials{drivers: drivers}
}

// Lookup matches id case-insensitively and pin exactly.
func (c *Credentials) Lookup(_ context.Context, id, pin string) (*models.DriverProfile, error) {
	for _, d := range c.drivers {
		if strings.EqualFold(d.ID, id) && d.Pin == pin {
			profile := d
			return &profile, nil
		}
	}
	return nil, nil
}
