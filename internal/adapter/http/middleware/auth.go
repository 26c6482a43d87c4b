package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

// --- base auth middleware ---

// Auth validates the bearer token, if any, and injects its claims into the context.
// Requests without a header pass through anonymously; protected routes reject them in RequireRoles.
func (h *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		header := r.Header.Get("Authorization")
		if header == "" || h.tokens == nil {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(header)
		if err != nil {
			errorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := h.tokens.Validate(ctx, token)
		if err != nil || claims == nil {
			h.log.Warn(wrap.ErrorCtx(ctx, err), "failed to authenticate driver", "error", fmt.Sprint(err))
			if errors.Is(err, types.ErrExpToken) {
				errorResponse(w, http.StatusUnauthorized, "token expired, log in again")
				return
			}
			errorResponse(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		ctx = wrap.WithDriverID(ctx, claims.DriverID)
		next.ServeHTTP(w, r.WithContext(models.WithClaims(ctx, claims)))
	})
}

// RequireRoles wraps a handler and allows only tokens with one of the given roles.
// Usage: mux.Handle("POST /x", m.RequireRoles(handler, types.DriverRole))
func (h *Middleware) RequireRoles(next http.HandlerFunc, allowedRoles ...types.UserRole) http.Handler {
	allowed := make(map[types.UserRole]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := models.ClaimsFromContext(r.Context())
		if claims == nil {
			errorResponse(w, http.StatusUnauthorized, "authorization required")
			return
		}
		if len(allowed) > 0 {
			if _, ok := allowed[types.UserRole(claims.Role)]; !ok {
				errorResponse(w, http.StatusForbidden, "forbidden: insufficient role")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// RequireDevice lets a request through only when the token was issued for the device in the path.
func (h *Middleware) RequireDevice(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := models.ClaimsFromContext(r.Context())
		if claims == nil || claims.DeviceID != r.PathValue("device_id") {
			errorResponse(w, http.StatusForbidden, types.ErrForbidden.Error())
			return
		}
		next.ServeHTTP(w, r)
	}
}

// --- header parser ---
func extractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("invalid Authorization header format")
	}
	return parts[1], nil
}
