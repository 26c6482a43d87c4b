package geolocation

import (
	"context"
	"errors"
	"testing"

	"github.com/Temutjin2k/ubar/internal/domain/types"
)

func f(v float64) *float64 { return &v }

func TestReported(t *testing.T) {
	tests := []struct {
		name    string
		in      Reported
		wantErr error
	}{
		{name: "position", in: Reported{Latitude: f(47.61), Longitude: f(-122.33)}},
		{name: "unsupported", in: Reported{Error: CodeUnsupported}, wantErr: types.ErrGeolocationUnsupported},
		{name: "denied", in: Reported{Error: CodePermissionDenied}, wantErr: types.ErrGeolocationFailed},
		{name: "error wins over position", in: Reported{Latitude: f(1), Longitude: f(1), Error: CodeTimeout}, wantErr: types.ErrGeolocationFailed},
		{name: "missing longitude", in: Reported{Latitude: f(1)}, wantErr: types.ErrGeolocationFailed},
		{name: "out of range", in: Reported{Latitude: f(91), Longitude: f(0)}, wantErr: types.ErrGeolocationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.CurrentPosition(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Latitude != *tt.in.Latitude || got.Longitude != *tt.in.Longitude {
				t.Errorf("got %+v", got)
			}
		})
	}
}
