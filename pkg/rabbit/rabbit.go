package rabbit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrClosed = errors.New("rabbitmq client is closed")

// Exchange is an exchange the client declares on every (re)connect.
type Exchange struct {
	Name string
	Kind string // topic, fanout, direct
}

type RabbitMQ struct {
	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	closed    bool
	dsn       string
	exchanges []Exchange

	log logger.Logger
}

// New connects to the broker and declares exchanges.
func New(ctx context.Context, dsn string, log logger.Logger, exchanges ...Exchange) (*RabbitMQ, error) {
	r := &RabbitMQ{
		dsn:       dsn,
		exchanges: exchanges,
		log:       log,
	}

	if err := r.connect(ctx); err != nil {
		return nil, err
	}

	log.Info(wrap.WithAction(ctx, types.ActionRabbitMQConnected), "connected to rabbitMQ")
	return r, nil
}

// connect dials, opens a channel and declares the topology. Must be called with r.mu held or before r is shared.
func (r *RabbitMQ) connect(ctx context.Context) error {
	conn, err := amqp.DialConfig(r.dsn, amqp.Config{
		Heartbeat: 10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open a channel: %w", err)
	}

	for _, ex := range r.exchanges {
		if err := ch.ExchangeDeclare(ex.Name, ex.Kind, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return fmt.Errorf("failed to declare exchange %s: %w", ex.Name, err)
		}
	}

	connClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	chClose := ch.NotifyClose(make(chan *amqp.Error, 1))

	r.conn = conn
	r.channel = ch
	go r.monitorConnection(ctx, conn, connClose, chClose)
	return nil
}

// monitorConnection logs when the connection or channel of one connect goes away.
func (r *RabbitMQ) monitorConnection(ctx context.Context, conn *amqp.Connection, connClose, chClose <-chan *amqp.Error) {
	var closeErr *amqp.Error
	select {
	case closeErr = <-connClose:
	case closeErr = <-chClose:
	}

	ctx = wrap.WithAction(context.WithoutCancel(ctx), types.ActionRabbitConnectionClosed)
	if closeErr != nil {
		r.log.Error(ctx, "RabbitMQ connection closed with error", closeErr)
	} else {
		r.log.Debug(ctx, "RabbitMQ connection closed gracefully")
	}

	r.mu.Lock()
	if r.conn == conn && closeErr != nil {
		// a channel-level error leaves the connection open; drop both so the next publish reconnects
		_ = conn.Close()
	}
	r.mu.Unlock()
}

// IsConnectionClosed checks if the connection is closed
func (r *RabbitMQ) IsConnectionClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.isClosedLocked()
}

func (r *RabbitMQ) isClosedLocked() bool {
	return r.conn == nil || r.conn.IsClosed() || r.channel == nil || r.channel.IsClosed()
}

// Publish sends body to exchange with routing key, reconnecting once if the connection dropped.
// Publishes are serialized: an amqp channel is not safe for concurrent use.
func (r *RabbitMQ) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.isClosedLocked() {
		r.log.Warn(ctx, "rabbit connection closed, reconnecting...")
		if err := r.reconnectLocked(ctx); err != nil {
			return err
		}
	}

	return r.channel.PublishWithContext(ctx, exchange, key, false, false, msg)
}

// reconnectLocked must be called with r.mu held.
func (r *RabbitMQ) reconnectLocked(ctx context.Context) error {
	var err error
	for i := range 3 {
		if err = r.connect(ctx); err == nil {
			r.log.Info(wrap.WithAction(ctx, types.ActionRabbitReconnected), "RabbitMQ reconnected successfully")
			return nil
		}

		wait := time.Duration(i+1) * 500 * time.Millisecond
		r.log.Debug(ctx, fmt.Sprintf("reconnect attempt %d failed, retrying in %v", i+1, wait))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("failed to reconnect to RabbitMQ: %w", err)
}

// Close closes rabbit connection
func (r *RabbitMQ) Close(ctx context.Context) error {
	ctx = wrap.WithAction(ctx, types.ActionRabbitConnectionClosing)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	ch, conn := r.channel, r.conn
	r.channel, r.conn = nil, nil
	r.mu.Unlock()

	if ch != nil {
		if err := closeWithCtxFunc(ctx, ch.Close); err != nil && ctx.Err() == nil {
			r.log.Error(ctx, "error closing channel", err)
		}
	}

	if conn != nil {
		if err := closeWithCtxFunc(ctx, conn.Close); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}

	r.log.Info(wrap.WithAction(ctx, types.ActionRabbitConnectionClosed), "rabbitMQ closed")
	return nil
}

// helper to close a resource with context cancellation safely
func closeWithCtxFunc(ctx context.Context, fn func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
