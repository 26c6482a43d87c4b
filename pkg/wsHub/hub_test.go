package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Temutjin2k/ubar/pkg/logger"
	"github.com/gorilla/websocket"
)

// dialPair starts a server that registers every connection under key and returns a client connection.
func dialPair(t *testing.T, hub *ConnectionHub[string], key string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		c := NewConn(context.Background(), raw)
		if err := hub.Add(key, c); err != nil {
			t.Errorf("add: %v", err)
			return
		}
		_ = c.Listen(nil)
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastReachesEveryWatcher(t *testing.T) {
	hub := NewConnHub[string](logger.Discard())
	defer hub.Close()

	a := dialPair(t, hub, "booking-1")
	b := dialPair(t, hub, "booking-1")
	waitFor(t, func() bool { return hub.Count("booking-1") == 2 })

	if n := hub.Broadcast(context.Background(), "booking-1", map[string]string{"type": "BOOKING_STATUS"}); n != 2 {
		t.Fatalf("delivered to %d connections, want 2", n)
	}
	if n := hub.Broadcast(context.Background(), "booking-2", "nobody"); n != 0 {
		t.Fatalf("delivered to %d connections for an unwatched key", n)
	}

	for _, c := range []*websocket.Conn{a, b} {
		_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
		var got map[string]string
		if err := c.ReadJSON(&got); err != nil {
			t.Fatalf("read: %v", err)
		}
		if got["type"] != "BOOKING_STATUS" {
			t.Errorf("got %v", got)
		}
	}
}

func TestHub_RemovesClosedConnections(t *testing.T) {
	hub := NewConnHub[string](logger.Discard())
	changes := make(chan int, 8)
	hub.OnChange = func(total int) { changes <- total }

	client := dialPair(t, hub, "device-1")
	waitFor(t, func() bool { return hub.Count("device-1") == 1 })

	_ = client.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	client.Close()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case total := <-changes:
			if total == 0 {
				hub.Close()
				return
			}
		case <-timeout:
			t.Fatal("connection was not removed after the peer closed it")
		}
	}
}

func TestHub_AddNil(t *testing.T) {
	hub := NewConnHub[int](logger.Discard())
	if err := hub.Add(1, nil); err != ErrEmptyConn {
		t.Fatalf("expected ErrEmptyConn, got %v", err)
	}
}
