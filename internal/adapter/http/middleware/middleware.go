package middleware

import (
	"context"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/pkg/logger"
)

type (
	// TokenValidator checks a bearer token and returns its claims.
	TokenValidator interface {
		Validate(ctx context.Context, token string) (*models.DriverClaims, error)
	}

	Middleware struct {
		tokens TokenValidator
		log    logger.Logger
	}
)

// NewMiddleware returns the middleware set. tokens may be nil for services without protected routes.
func NewMiddleware(tokens TokenValidator, log logger.Logger) *Middleware {
	return &Middleware{
		tokens: tokens,
		log:    log,
	}
}
