package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

var ErrEmptyConn = errors.New("connection is empty")

// ConnectionHub хранит активные WebSocket соединения, сгруппированные по ключу.
// Several clients may watch the same key; Broadcast reaches all of them.
type ConnectionHub[K comparable] struct {
	clients map[K]map[*Conn]struct{}
	l       logger.Logger
	mu      sync.Mutex
	wg      sync.WaitGroup

	// OnChange is called with the total number of connections after every add or remove.
	OnChange func(total int)
}

func NewConnHub[K comparable](l logger.Logger) *ConnectionHub[K] {
	return &ConnectionHub[K]{
		clients: make(map[K]map[*Conn]struct{}),
		l:       l,
	}
}

// Add registers conn under key and removes it again once the connection is closed.
func (h *ConnectionHub[K]) Add(key K, conn *Conn) error {
	if conn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	set, ok := h.clients[key]
	if !ok {
		set = make(map[*Conn]struct{})
		h.clients[key] = set
	}
	set[conn] = struct{}{}
	total := h.countLocked()
	h.wg.Add(1)
	h.mu.Unlock()

	h.changed(total)

	go func() {
		<-conn.Done()
		h.remove(key, conn)
	}()
	return nil
}

func (h *ConnectionHub[K]) remove(key K, conn *Conn) {
	h.mu.Lock()
	set, ok := h.clients[key]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, ok := set[conn]; !ok {
		h.mu.Unlock()
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(h.clients, key)
	}
	total := h.countLocked()
	h.mu.Unlock()

	h.wg.Done()
	h.changed(total)
}

// Broadcast sends msg to every connection under key and closes the ones that fail.
// It returns the number of successful deliveries.
func (h *ConnectionHub[K]) Broadcast(ctx context.Context, key K, msg any) int {
	h.mu.Lock()
	conns := make([]*Conn, 0, len(h.clients[key]))
	for c := range h.clients[key] {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	sent := 0
	for _, c := range conns {
		if err := c.Send(msg); err != nil {
			h.l.Warn(wrap.WithAction(ctx, "ws_send_failed"), "dropping websocket connection", "key", key, "err", err.Error())
			_ = c.Close()
			continue
		}
		sent++
	}
	return sent
}

// Disconnect closes every connection under key.
func (h *ConnectionHub[K]) Disconnect(key K) {
	h.mu.Lock()
	conns := make([]*Conn, 0, len(h.clients[key]))
	for c := range h.clients[key] {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}

// Count returns the number of connections under key.
func (h *ConnectionHub[K]) Count(key K) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[key])
}

// Close закрывает каждое websocket соединение и ждёт их удаления
func (h *ConnectionHub[K]) Close() {
	ctx := wrap.WithAction(context.Background(), "hub_close")

	// копируем клиентов под локом
	h.mu.Lock()
	var conns []*Conn
	for _, set := range h.clients {
		for c := range set {
			conns = append(conns, c)
		}
	}
	h.mu.Unlock()

	// закрываем вне локов
	for _, c := range conns {
		_ = c.Close()
	}
	h.wg.Wait()

	h.l.Info(ctx, "all websocket connections closed gracefully")
}

func (h *ConnectionHub[K]) countLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

func (h *ConnectionHub[K]) changed(total int) {
	if h.OnChange != nil {
		h.OnChange(total)
	}
}
