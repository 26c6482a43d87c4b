package wshandler

import (
	"context"
	"fmt"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/metrics"
	ws "github.com/Temutjin2k/ubar/pkg/wsHub"
	"github.com/gorilla/websocket"
)

// Message is the envelope of every frame written to a feed.
type Message struct {
	Type      types.FeedEvent `json:"type"`
	Data      any             `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Feed fans live updates out to the websocket clients watching a key
// (a booking id or a driver device id).
type Feed[K comparable] struct {
	hub *ws.ConnectionHub[K]
	now func() time.Time
	l   logger.Logger
}

// NewFeed returns a feed named name; the name labels the connection gauge.
func NewFeed[K comparable](name string, l logger.Logger) *Feed[K] {
	hub := ws.NewConnHub[K](l)
	gauge := metrics.WebSocketConnectionsGauge.WithLabelValues(name)
	hub.OnChange = func(total int) { gauge.Set(float64(total)) }

	return &Feed[K]{
		hub: hub,
		now: time.Now,
		l:   l,
	}
}

// Push delivers one event to every watcher of key. Nobody watching is not an error.
func (f *Feed[K]) Push(ctx context.Context, key K, event types.FeedEvent, payload any) error {
	n := f.hub.Broadcast(ctx, key, Message{Type: event, Data: payload, Timestamp: f.now()})
	f.l.Debug(ctx, "feed event pushed", "event", event.String(), "receivers", n)
	return nil
}

// Attach registers an upgraded connection under key, writes the current state as the first
// frame and blocks until the client disconnects.
func (f *Feed[K]) Attach(ctx context.Context, key K, raw *websocket.Conn, event types.FeedEvent, initial any) error {
	conn := ws.NewConn(context.WithoutCancel(ctx), raw)

	if err := conn.Send(Message{Type: event, Data: initial, Timestamp: f.now()}); err != nil {
		_ = conn.Close()
		return fmt.Errorf("send initial state: %w", err)
	}
	if err := f.hub.Add(key, conn); err != nil {
		_ = conn.Close()
		return err
	}

	f.l.Debug(wrap.WithAction(ctx, "ws_attached"), "websocket client attached")

	// inbound frames carry nothing; reading only detects the disconnect
	return conn.Listen(nil)
}

// Disconnect closes every connection watching key.
func (f *Feed[K]) Disconnect(key K) {
	f.hub.Disconnect(key)
}

// Close closes all connections.
func (f *Feed[K]) Close() {
	f.hub.Close()
}
