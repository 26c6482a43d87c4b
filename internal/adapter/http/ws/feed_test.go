package wshandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

func TestFeed_AttachAndPush(t *testing.T) {
	feed := NewFeed[uuid.UUID]("test", logger.Discard())
	defer feed.Close()

	id := uuid.New()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = feed.Attach(r.Context(), id, raw, types.EventBookingStatus, map[string]string{"status": "idle"})
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()
	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first struct {
		Type types.FeedEvent   `json:"type"`
		Data map[string]string `json:"data"`
	}
	if err := client.ReadJSON(&first); err != nil {
		t.Fatalf("read initial frame: %v", err)
	}
	if first.Type != types.EventBookingStatus || first.Data["status"] != "idle" {
		t.Fatalf("initial frame = %+v", first)
	}

	// the connection is registered right after the initial frame is written
	deadline := time.Now().Add(2 * time.Second)
	for feed.hub.Count(id) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("connection was never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := feed.Push(context.Background(), id, types.EventMapFocus, map[string]string{"query": "Nightlife Seattle WA"}); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	var next struct {
		Type types.FeedEvent   `json:"type"`
		Data map[string]string `json:"data"`
	}
	if err := client.ReadJSON(&next); err != nil {
		t.Fatalf("read pushed frame: %v", err)
	}
	if next.Type != types.EventMapFocus || next.Data["query"] != "Nightlife Seattle WA" {
		t.Fatalf("pushed frame = %+v", next)
	}
}

func TestFeed_PushWithoutWatchers(t *testing.T) {
	feed := NewFeed[string]("test", logger.Discard())
	defer feed.Close()

	if err := feed.Push(context.Background(), "device-x", types.EventDriverStatus, nil); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
}
