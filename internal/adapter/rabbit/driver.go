package rabbit

import (
	"context"
	"fmt"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

type DriverProducer struct {
	broker
}

func NewDriverProducer(client Client, l logger.Logger) *DriverProducer {
	return &DriverProducer{
		broker: broker{client: client, l: l, now: time.Now},
	}
}

// PublishDriverStatus публикует смену статуса водителя (online/offline)
func (p *DriverProducer) PublishDriverStatus(ctx context.Context, msg models.DriverStatusMessage) error {
	ctx = wrap.WithAction(ctx, "publish_driver_status")
	key := fmt.Sprintf("driver.status.%s", msg.DriverID)

	if err := p.publish(ctx, ExchangeDriverTopic, key, msg); err != nil {
		return wrap.Error(ctx, err)
	}
	return nil
}

// PublishDriverLocation publishes one GPS telemetry sample.
func (p *DriverProducer) PublishDriverLocation(ctx context.Context, msg models.DriverLocationMessage) error {
	ctx = wrap.WithAction(ctx, "publish_driver_location")
	key := fmt.Sprintf("driver.location.%s", msg.DriverID)

	if err := p.publish(ctx, ExchangeDriverTopic, key, msg); err != nil {
		return wrap.Error(ctx, err)
	}
	return nil
}
