package concierge

import (
	"context"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/google/uuid"
)

// Suggester turns free text into venue suggestions. A malformed answer is an error.
type Suggester interface {
	Suggest(ctx context.Context, text string) ([]models.Suggestion, error)
}

type Feed interface {
	Push(ctx context.Context, bookingID uuid.UUID, event types.FeedEvent, payload any) error
}
