package locationIQ

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantLat float64
		wantLon float64
		wantErr error
		anyErr  bool
	}{
		{
			name:    "first match",
			status:  http.StatusOK,
			body:    `[{"lat":"47.6097","lon":"-122.3422"},{"lat":"1","lon":"2"}]`,
			wantLat: 47.6097,
			wantLon: -122.3422,
		},
		{name: "empty result", status: http.StatusOK, body: `[]`, wantErr: ErrLocationNotFound},
		{name: "not found status", status: http.StatusNotFound, body: `{"error":"Unable to geocode"}`, wantErr: ErrLocationNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: ``, anyErr: true},
		{name: "bad latitude", status: http.StatusOK, body: `[{"lat":"north","lon":"1"}]`, anyErr: true},
		{name: "garbage", status: http.StatusOK, body: `<html>`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/search" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if got := r.URL.Query().Get("q"); got != "Pike Place Market" {
					t.Errorf("q = %q", got)
				}
				if got := r.URL.Query().Get("key"); got != "secret" {
					t.Errorf("key = %q", got)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New("secret", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
			got, err := c.Search(context.Background(), "Pike Place Market")

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.anyErr:
				if err == nil {
					t.Fatal("expected error")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.Latitude != tt.wantLat || got.Longitude != tt.wantLon {
					t.Errorf("got %+v, want %v,%v", got, tt.wantLat, tt.wantLon)
				}
			}
		})
	}
}
