package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

type fakeTokens map[string]*models.DriverClaims

func (f fakeTokens) Validate(_ context.Context, token string) (*models.DriverClaims, error) {
	if token == "expired" {
		return nil, types.ErrExpToken
	}
	c, ok := f[token]
	if !ok {
		return nil, types.ErrInvalidToken
	}
	return c, nil
}

func TestProtectedRoute(t *testing.T) {
	tokens := fakeTokens{
		"good":     {DriverID: "D-001", DeviceID: "dev-1", Role: types.DriverRole.String()},
		"no-role":  {DriverID: "D-001", DeviceID: "dev-1", Role: "PASSENGER"},
		"other-dv": {DriverID: "D-001", DeviceID: "dev-2", Role: types.DriverRole.String()},
	}
	m := NewMiddleware(tokens, logger.Discard())

	mux := http.NewServeMux()
	mux.Handle("POST /drivers/sessions/{device_id}/online", m.RequireRoles(m.RequireDevice(func(w http.ResponseWriter, r *http.Request) {
		if c := models.ClaimsFromContext(r.Context()); c == nil || c.DriverID != "D-001" {
			t.Errorf("claims not in context")
		}
		w.WriteHeader(http.StatusNoContent)
	}), types.DriverRole))
	h := m.Auth(mux)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "no header", header: "", want: http.StatusUnauthorized},
		{name: "malformed header", header: "Token good", want: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer expired", want: http.StatusUnauthorized},
		{name: "wrong role", header: "Bearer no-role", want: http.StatusForbidden},
		{name: "other device", header: "Bearer other-dv", want: http.StatusForbidden},
		{name: "ok", header: "Bearer good", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/drivers/sessions/dev-1/online", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	m := NewMiddleware(nil, logger.Discard())

	var seen string
	h := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = wrap.FromContext(r.Context()).RequestID
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("request id not propagated: ctx=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if seen == "" || seen == "abc-123" {
		t.Fatalf("expected a generated id, got %q", seen)
	}
}

func TestRecover(t *testing.T) {
	m := NewMiddleware(nil, logger.Discard())
	h := m.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
