package rabbit

import (
	"context"
	"fmt"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

type BookingProducer struct {
	broker
}

func NewBookingProducer(client Client, l logger.Logger) *BookingProducer {
	return &BookingProducer{
		broker: broker{client: client, l: l, now: time.Now},
	}
}

// PublishBookingStatus publishes every booking status change to booking_topic.
func (p *BookingProducer) PublishBookingStatus(ctx context.Context, msg models.BookingStatusMessage) error {
	ctx = wrap.WithAction(ctx, "publish_booking_status")
	key := fmt.Sprintf("booking.status.%s", msg.BookingID)

	if err := p.publish(ctx, ExchangeBookingTopic, key, msg); err != nil {
		return wrap.Error(ctx, err)
	}
	return nil
}
