package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
)

func TestIssueAndValidate(t *testing.T) {
	ctx := context.Background()
	s := NewTokenService("secret", time.Hour, logger.Discard())

	issued, err := s.IssueDriverToken(ctx, "UB-ADMIN", "device-1")
	if err != nil {
		t.Fatalf("IssueDriverToken() error = %v", err)
	}

	claims, err := s.Validate(ctx, issued.Token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.DriverID != "UB-ADMIN" || claims.DeviceID != "device-1" || claims.Role != types.DriverRole.String() {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateRejects(t *testing.T) {
	ctx := context.Background()
	s := NewTokenService("secret", time.Hour, logger.Discard())
	issued, err := s.IssueDriverToken(ctx, "UB-ADMIN", "device-1")
	if err != nil {
		t.Fatalf("IssueDriverToken() error = %v", err)
	}

	other := NewTokenService("other", time.Hour, logger.Discard())
	if _, err := other.Validate(ctx, issued.Token); !errors.Is(err, types.ErrInvalidToken) {
		t.Fatalf("foreign secret error = %v, want %v", err, types.ErrInvalidToken)
	}

	if _, err := s.Validate(ctx, "not-a-token"); !errors.Is(err, types.ErrInvalidToken) {
		t.Fatalf("garbage error = %v, want %v", err, types.ErrInvalidToken)
	}

	s.now = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }
	if _, err := s.Validate(ctx, issued.Token); !errors.Is(err, types.ErrExpToken) {
		t.Fatalf("expired error = %v, want %v", err, types.ErrExpToken)
	}
}

func TestIssueRequiresDevice(t *testing.T) {
	s := NewTokenService("secret", time.Hour, logger.Discard())
	if _, err := s.IssueDriverToken(context.Background(), "UB-ADMIN", ""); err == nil {
		t.Fatal("expected error for missing device")
	}
}
