package handler

import (
	"context"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/internal/service/booking"
	"github.com/Temutjin2k/ubar/internal/service/session"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type BookingService interface {
	Create(ctx context.Context) *booking.Flow
	Get(id uuid.UUID) (*booking.Flow, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ConciergeService interface {
	Ask(ctx context.Context, bookingID uuid.UUID, text string) (models.Conversation, error)
	Select(bookingID uuid.UUID, index int) (models.Suggestion, error)
	Conversation(bookingID uuid.UUID) models.Conversation
}

type SessionService interface {
	Open(ctx context.Context, deviceID string) (*session.Session, bool)
	Get(deviceID string) (*session.Session, error)
	Drop(deviceID string) error
}

type ContentService interface {
	ListPasses(ctx context.Context, f models.Filters) ([]models.Pass, models.Metadata)
	GetPass(ctx context.Context, id string) (models.Pass, error)
	Events(ctx context.Context) []models.Event
	Podcast(ctx context.Context) (models.PodcastFeed, error)
}

// Feed attaches websocket clients to the live updates of a key.
type Feed[K comparable] interface {
	Attach(ctx context.Context, key K, raw *websocket.Conn, event types.FeedEvent, initial any) error
	Disconnect(key K)
}
