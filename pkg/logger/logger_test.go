package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

func TestErrorCarriesLogContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test-service", LevelDebug)

	ctx := wrap.WithRequestID(context.Background(), "req-12345")
	inner := wrap.WithAction(wrap.WithBookingID(ctx, "booking-1"), "validate_stops")
	err := fmt.Errorf("failed to validate stops: %w", wrap.Error(inner, errors.New("pickup is empty")))

	l.Error(wrap.ErrorCtx(ctx, err), "failed to request ride", err)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not json: %v (%q)", err, buf.String())
	}
	want := map[string]string{
		"message":    "failed to request ride",
		"level":      "ERROR",
		"service":    "test-service",
		"request_id": "req-12345",
		"booking_id": "booking-1",
		"action":     "validate_stops",
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("%s = %v, want %q", k, rec[k], v)
		}
	}
	errGroup, _ := rec["error"].(map[string]any)
	if errGroup["msg"] != "failed to validate stops: pickup is empty" {
		t.Errorf("error.msg = %v", errGroup["msg"])
	}
}

func TestLevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test-service", LevelWarn)

	l.Info(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record written at warn level: %q", buf.String())
	}
	l.Warn(context.Background(), "kept")
	if !bytes.Contains(buf.Bytes(), []byte(`"message":"kept"`)) {
		t.Fatalf("warn record missing: %q", buf.String())
	}
}
