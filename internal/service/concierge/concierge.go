package concierge

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/metrics"
	"github.com/google/uuid"
)

const (
	FoundReply   = "I've found some premium spots for you tonight. Which one feels like the right vibe?"
	FailureReply = "I'm having trouble connecting to the nightlife grid. Try again in a moment?"
)

// Service keeps the concierge chat of every booking and asks the suggestion service for venues.
type Service struct {
	suggester Suggester
	feed      Feed
	l         logger.Logger

	mu    sync.Mutex
	chats map[uuid.UUID]*chat
}

type chat struct {
	messages    []models.ChatMessage
	suggestions []models.Suggestion
	asking      bool
}

func New(suggester Suggester, feed Feed, l logger.Logger) *Service {
	return &Service{
		suggester: suggester,
		feed:      feed,
		l:         l,
		chats:     make(map[uuid.UUID]*chat),
	}
}

// Ask posts a user message and waits for the suggestion service. A failed or malformed
// answer becomes the failure reply in the chat and is returned to the caller as well.
func (s *Service) Ask(ctx context.Context, bookingID uuid.UUID, text string) (models.Conversation, error) {
	const op = "Service.Ask"

	text = strings.TrimSpace(text)
	if text == "" {
		return models.Conversation{}, types.ErrEmptyMessage
	}

	s.mu.Lock()
	c := s.chat(bookingID)
	if c.asking {
		s.mu.Unlock()
		return models.Conversation{}, types.ErrOperationPending
	}
	c.asking = true
	s.appendLocked(c, types.ChatRoleUser, text)
	s.mu.Unlock()

	suggestions, err := s.suggester.Suggest(ctx, text)
	metrics.RecordSuggestion(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	c.asking = false
	if err != nil {
		s.l.Error(ctx, "failed to get venue suggestions", err)
		s.appendLocked(c, types.ChatRoleModel, FailureReply)
		return c.conversation(), wrap.Error(ctx, fmt.Errorf("%s: %w: %w", op, types.ErrSuggestionFailed, err))
	}

	c.suggestions = suggestions
	s.appendLocked(c, types.ChatRoleModel, FoundReply)
	return c.conversation(), nil
}

// Advise appends a model message that did not come from the suggestion service.
func (s *Service) Advise(ctx context.Context, bookingID uuid.UUID, text string) {
	s.mu.Lock()
	s.appendLocked(s.chat(bookingID), types.ChatRoleModel, text)
	s.mu.Unlock()

	if err := s.feed.Push(ctx, bookingID, types.EventAdvisory, text); err != nil {
		s.l.Warn(ctx, "failed to push advisory", "error", err)
	}
}

// Select returns the suggestion at index from the latest answer.
func (s *Service) Select(bookingID uuid.UUID, index int) (models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[bookingID]
	if !ok || index < 0 || index >= len(c.suggestions) {
		return models.Suggestion{}, types.ErrSuggestionNotFound
	}
	return c.suggestions[index], nil
}

func (s *Service) Conversation(bookingID uuid.UUID) models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[bookingID]
	if !ok {
		return models.Conversation{Messages: []models.ChatMessage{}, Suggestions: []models.Suggestion{}}
	}
	return c.conversation()
}

// Forget drops the chat of a deleted booking.
func (s *Service) Forget(bookingID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.chats, bookingID)
}

// chat must be called with s.mu held.
func (s *Service) chat(bookingID uuid.UUID) *chat {
	c, ok := s.chats[bookingID]
	if !ok {
		c = &chat{}
		s.chats[bookingID] = c
	}
	return c
}

// appendLocked must be called with s.mu held.
func (s *Service) appendLocked(c *chat, role types.ChatRole, text string) {
	c.messages = append(c.messages, models.ChatMessage{Role: role, Text: text, CreatedAt: time.Now().UTC()})
}

func (c *chat) conversation() models.Conversation {
	return models.Conversation{
		Messages:    append([]models.ChatMessage{}, c.messages...),
		Suggestions: append([]models.Suggestion{}, c.suggestions...),
	}
}
