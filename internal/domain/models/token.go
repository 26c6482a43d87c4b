package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/golang-jwt/jwt/v5"
)

const AccessToken = "access"

// DriverClaims are carried by the driver access token, which doubles as the persisted session marker.
type DriverClaims struct {
	TokenID   uuid.UUID `json:"jti"`
	TokenType string    `json:"typ"`
	DriverID  string    `json:"driver_id"`
	DeviceID  string    `json:"device_id"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

type claimsCtxKey struct{}

// WithClaims stores the authenticated driver claims in ctx.
func WithClaims(ctx context.Context, c *DriverClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, c)
}

// ClaimsFromContext returns the authenticated driver claims, or nil for anonymous requests.
func ClaimsFromContext(ctx context.Context) *DriverClaims {
	c, _ := ctx.Value(claimsCtxKey{}).(*DriverClaims)
	return c
}
