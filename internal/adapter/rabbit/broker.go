package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/metrics"
	"github.com/Temutjin2k/ubar/pkg/rabbit"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeBookingTopic = "booking_topic"
	ExchangeDriverTopic  = "driver_topic"
)

// Exchanges is the topology every service declares on connect.
var Exchanges = []rabbit.Exchange{
	{Name: ExchangeBookingTopic, Kind: "topic"},
	{Name: ExchangeDriverTopic, Kind: "topic"},
}

// Client is the part of the rabbit client the producers use.
type Client interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error
}

type broker struct {
	client Client
	l      logger.Logger
	now    func() time.Time
}

func (b *broker) publish(ctx context.Context, exchange, routingKey string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Body:          body,
		Timestamp:     b.now(),
		CorrelationId: wrap.FromContext(ctx).RequestID,
	}

	err = b.client.Publish(ctx, exchange, routingKey, pub)
	metrics.RecordRabbitMQPublish(exchange, err)
	if err != nil {
		return fmt.Errorf("publish %s to %s: %w", routingKey, exchange, err)
	}

	b.l.Debug(ctx, "message published", "exchange", exchange, "routing_key", routingKey)
	return nil
}
